// Package cli wires the themeport commands.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/themeport/themeport/internal/ansi"
	"github.com/themeport/themeport/internal/config"
	"github.com/themeport/themeport/internal/term"
)

var (
	flagVerbose bool
	flagNoColor bool
	flagYes     bool

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "themeport",
	Short: "Convert editor color themes and map them onto the ANSI palette",
	Long: "themeport converts color themes between the VSCode JSON format and the\n" +
		"TextMate plist format, and curates a mapping from theme colors onto the\n" +
		"16-slot ANSI palette so terminal tooling can render the theme faithfully.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := parseLogLevel(cfg.Log.Level)
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: flagNoColor}).
			Level(level).
			With().Timestamp().Logger()

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "assume yes for confirmation prompts")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return parsed
}

// colorOutput reports whether human-readable output may use color.
func colorOutput() bool {
	if flagNoColor {
		return false
	}
	if cfg != nil && !cfg.Output.Color {
		return false
	}
	return true
}

// confirm asks the user a yes/no question on stderr. --yes short-circuits.
func confirm(prompt string) bool {
	if flagYes {
		return true
	}

	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// terminalPalette builds the palette backed by the live terminal, using the
// configured query bounds.
func terminalPalette() *ansi.Palette {
	terminal := cfg.Terminal
	querier := term.NewQuerier(terminal.QueryTimeout, terminal.QueryRetries)
	return ansi.NewPalette(querier)
}
