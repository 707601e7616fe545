// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeCell(cell)
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	return writer.Flush()
}

// escapeCell brackets cells carrying ANSI styling so the embedded escape
// sequences do not skew column widths.
func escapeCell(cell string) string {
	if !strings.Contains(cell, "\x1b") {
		return cell
	}
	return string([]byte{tabwriter.Escape}) + cell + string([]byte{tabwriter.Escape})
}
