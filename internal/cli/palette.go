package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/themeport/themeport/internal/ansi"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the terminal's current ANSI palette",
	Long: "Query the terminal for the real color behind each palette slot and list\n" +
		"all 18 slots in family order. Slots the terminal does not answer for\n" +
		"are shown as unknown.",
	RunE: func(cmd *cobra.Command, args []string) error {
		palette := terminalPalette()

		headers := []string{"NUM", "SLOT", "COLOR"}
		rows := make([][]string, 0, len(ansi.Family()))
		for _, slot := range ansi.Family() {
			colorCell := "unknown"
			if hex, ok := palette.ResolvedColor(slot); ok {
				colorCell = renderSwatch(hex)
			} else {
				logger.Debug().Str("slot", slot.Name()).Msg("terminal did not answer palette query")
			}
			rows = append(rows, []string{
				strconv.Itoa(int(slot)),
				slot.Title(),
				colorCell,
			})
		}

		fmt.Fprintln(os.Stdout, "Terminal palette:")
		return writeTable(os.Stdout, headers, rows)
	},
}
