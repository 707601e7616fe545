package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/themeport/themeport/internal/contrast"
)

func init() {
	rootCmd.AddCommand(checkContrastCmd)
}

var checkContrastCmd = &cobra.Command{
	Use:   "check-contrast <bg-hex> <fg-hex>...",
	Short: "Grade foreground colors against a background",
	Long:  "Print the WCAG contrast ratio and conformance rating for each foreground color against the background.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bg := args[0]

		headers := []string{"FOREGROUND", "RATIO", "RATING"}
		rows := make([][]string, 0, len(args)-1)
		for _, fg := range args[1:] {
			ratio, err := contrast.Ratio(fg, bg)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				renderSwatch(fg),
				fmt.Sprintf("%.2f", ratio),
				renderRating(contrast.Rating(ratio)),
			})
		}

		fmt.Fprintf(os.Stdout, "Background: %s\n", renderSwatch(bg))
		return writeTable(os.Stdout, headers, rows)
	},
}
