package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/themeport/themeport/internal/mapping"
)

var convertAnsiMapping string

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertAnsiMapping, "ansi-mapping", "", "apply an ANSI mapping file before writing")
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a theme between VSCode and TextMate formats",
	Long: "Convert a theme file to the format implied by the output extension.\n" +
		"With --ansi-mapping, assigned colors are replaced by their ANSI slot\n" +
		"placeholders before writing.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, output := args[0], args[1]

		theme, err := loadTheme(input)
		if err != nil {
			return err
		}
		logger.Debug().Str("theme", theme.name()).Str("input", input).Msg("theme loaded")

		if convertAnsiMapping != "" {
			tm, err := mapping.Load(convertAnsiMapping)
			if err != nil {
				return err
			}

			applied, report := theme.applyMapping(tm)
			theme = applied

			for _, color := range report.Colors() {
				logger.Warn().Str("color", color).Msg("color has no ANSI slot assignment")
			}
			if report.Len() > 0 {
				fmt.Fprintf(os.Stderr, "%d colors left unmapped; run ansi-map show to review.\n", report.Len())
			}
		}

		if err := theme.save(output); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Converted %s to %s\n", input, output)
		return nil
	},
}
