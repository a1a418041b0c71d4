package growth

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// rowHeader labels the function column.
const rowHeader = "f(n)"

// Row is one growth function's results, one cell per time budget.
type Row struct {
	Label string
	Cells []string
}

// ResultTable is the completed grid. It is immutable: accessors return copies.
type ResultTable struct {
	title   string
	headers []string
	rows    []Row
}

// Title returns the document heading.
func (t *ResultTable) Title() string { return t.title }

// Headers returns the header row: "f(n)" followed by one label per budget.
func (t *ResultTable) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Rows returns a copy of the data rows in catalog order.
func (t *ResultTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = Row{Label: r.Label, Cells: append([]string(nil), r.Cells...)}
	}
	return out
}

// BuildTable solves every catalog function against every budget threshold.
// Any solver error aborts the whole table.
func BuildTable(c Catalog) (*ResultTable, error) {
	thresholds, err := Thresholds(c.Budgets)
	if err != nil {
		return nil, err
	}

	headers := make([]string, 0, len(c.Budgets)+1)
	headers = append(headers, rowHeader)
	for _, b := range c.Budgets {
		headers = append(headers, b.Label)
	}

	rows := make([]Row, 0, len(c.Functions))
	for _, f := range c.Functions {
		solve, err := SolverFor(f.ID)
		if err != nil {
			return nil, err
		}
		cells := make([]string, 0, len(thresholds))
		for i, t := range thresholds {
			cell, err := solve(t)
			if err != nil {
				return nil, fmt.Errorf("solving %s for %s: %w", f.ID, c.Budgets[i].Label, err)
			}
			cells = append(cells, cell)
		}
		logrus.WithField("function", f.ID).Debugf("Solved row %v", cells)
		rows = append(rows, Row{Label: f.Label, Cells: cells})
	}

	return &ResultTable{title: c.Title, headers: headers, rows: rows}, nil
}
