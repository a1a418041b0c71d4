package report

import (
	"html/template"
	"io"

	"github.com/ensigniasec/growth-bounds/internal/growth"
)

// Cells and labels already carry <sup> markup produced by the solvers, so they
// are passed to the template as trusted HTML.
const pageTemplate = `<html><head></head><body><h1>{{.Title}}</h1><table>
<thead>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Label}}</td>{{range .Cells}}<td style="text-align: right;">{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table></body></html>
`

//nolint:gochecknoglobals // parsed once, immutable.
var page = template.Must(template.New("page").Parse(pageTemplate))

type htmlRow struct {
	Label template.HTML
	Cells []template.HTML
}

type htmlPage struct {
	Title   string
	Headers []string
	Rows    []htmlRow
}

// RenderHTML writes table as a complete HTML document.
func RenderHTML(w io.Writer, table *growth.ResultTable) error {
	p := htmlPage{Title: table.Title(), Headers: table.Headers()}
	for _, r := range table.Rows() {
		row := htmlRow{Label: template.HTML(r.Label)} //nolint:gosec // solver output, not user input
		for _, c := range r.Cells {
			row.Cells = append(row.Cells, template.HTML(c)) //nolint:gosec // solver output, not user input
		}
		p.Rows = append(p.Rows, row)
	}
	return page.Execute(w, p)
}
