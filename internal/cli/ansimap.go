package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/themeport/themeport/internal/mapping"
)

var ansiMapShowQuiet bool

func init() {
	rootCmd.AddCommand(ansiMapCmd)
	ansiMapCmd.AddCommand(ansiMapGenCmd)
	ansiMapCmd.AddCommand(ansiMapShowCmd)
	ansiMapCmd.AddCommand(ansiMapApplyCmd)

	ansiMapShowCmd.Flags().BoolVarP(&ansiMapShowQuiet, "quiet", "q", false, "omit usage sites")
}

var ansiMapCmd = &cobra.Command{
	Use:   "ansi-map",
	Short: "Manage ANSI color mappings",
	Long:  "Generate, inspect, and apply the mapping from theme colors to ANSI palette slots.",
}

var ansiMapGenCmd = &cobra.Command{
	Use:   "gen <theme> <mapping-file>",
	Short: "Collect a theme's colors into a mapping file",
	Long: "Harvest every distinct color in the theme together with its usage sites\n" +
		"and write the mapping file. If the mapping file already exists, slot\n" +
		"assignments from it are carried over for colors the theme still uses.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		themePath, mappingPath := args[0], args[1]

		theme, err := loadTheme(themePath)
		if err != nil {
			return err
		}

		tm := theme.collectMapping()
		logger.Debug().Str("theme", tm.ThemeName).Int("colors", tm.Len()).Msg("colors collected")

		if _, err := os.Stat(mappingPath); err == nil {
			prior, err := mapping.Load(mappingPath)
			if err != nil {
				return err
			}
			tm.MergeFrom(prior)

			if !confirm(fmt.Sprintf("Overwrite %s (existing slot assignments are kept)?", mappingPath)) {
				fmt.Fprintln(os.Stderr, "Aborted.")
				return nil
			}
		}

		if err := mapping.Save(mappingPath, tm); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Wrote %d color mappings for %q to %s\n", tm.Len(), tm.ThemeName, mappingPath)
		return nil
	},
}

var ansiMapShowCmd = &cobra.Command{
	Use:   "show <mapping-file>",
	Short: "List a mapping file's entries",
	Long: "List mapping entries ordered by palette family, unassigned colors last.\n" +
		"Usage sites are printed unless --quiet is given.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tm, err := mapping.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Theme: %s\n\n", tm.ThemeName)

		headers := []string{"COLOR", "SLOT", "USES"}
		rows := make([][]string, 0, tm.Len())
		for _, entry := range tm.EntriesByFamily() {
			slotName := "-"
			if entry.Slot != nil {
				slotName = entry.Slot.Name()
			}
			rows = append(rows, []string{
				renderSwatch(entry.ColorCode),
				slotName,
				strconv.Itoa(entry.UsageCount()),
			})
		}
		if err := writeTable(os.Stdout, headers, rows); err != nil {
			return err
		}

		if ansiMapShowQuiet {
			return nil
		}

		for _, entry := range tm.EntriesByFamily() {
			if entry.UsageCount() == 0 {
				continue
			}
			fmt.Fprintf(os.Stdout, "\n%s\n", renderSwatch(entry.ColorCode))
			for _, setting := range entry.SortedUISettings() {
				fmt.Fprintf(os.Stdout, "  setting  %s\n", setting)
			}
			for _, scope := range entry.SortedScopes() {
				fmt.Fprintf(os.Stdout, "  scope    %s\n", scope)
			}
		}
		return nil
	},
}

var ansiMapApplyCmd = &cobra.Command{
	Use:   "apply <theme> <mapping-file> <output>",
	Short: "Apply a mapping to a theme",
	Long: "Replace every assigned color in the theme with its ANSI slot placeholder\n" +
		"and write the result, keeping the input format unless the output\n" +
		"extension says otherwise.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		themePath, mappingPath, output := args[0], args[1], args[2]

		theme, err := loadTheme(themePath)
		if err != nil {
			return err
		}

		tm, err := mapping.Load(mappingPath)
		if err != nil {
			return err
		}

		applied, report := theme.applyMapping(tm)
		if err := applied.save(output); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Wrote %s\n", output)
		if report.Len() > 0 {
			fmt.Fprintf(os.Stderr, "Unmapped colors (%d):\n", report.Len())
			for _, color := range report.Colors() {
				fmt.Fprintf(os.Stderr, "  %s\n", renderSwatch(color))
			}
		}
		return nil
	},
}
