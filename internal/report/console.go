package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/ensigniasec/growth-bounds/internal/growth"
)

//nolint:gochecknoglobals // immutable helpers.
var (
	supFlattener = strings.NewReplacer("<sup>", "^", "</sup>", "")
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B80C2E"))
)

// Plain strips the <sup> markup from a cell for terminal output: "n<sup>2</sup>" becomes "n^2".
func Plain(cell string) string {
	return supFlattener.Replace(cell)
}

// PrintConsole echoes the table to w as a text grid.
func PrintConsole(w io.Writer, table *growth.ResultTable) {
	fmt.Fprintln(w, titleStyle.Render(table.Title()))

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(table.Headers())
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range table.Rows() {
		line := make([]string, 0, len(r.Cells)+1)
		line = append(line, Plain(r.Label))
		for _, c := range r.Cells {
			line = append(line, Plain(c))
		}
		tw.Append(line)
	}
	tw.Render()
}
