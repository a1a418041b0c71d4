//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable_DefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	table, err := BuildTable(c)
	require.NoError(t, err)

	assert.Equal(t, "Comparison of Running Times", table.Title())
	assert.Equal(t, []string{
		"f(n)", "1 second", "1 minute", "1 hour", "1 day", "1 month", "1 year", "1 century",
	}, table.Headers())

	rows := table.Rows()
	require.Len(t, rows, 8)
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Label)
		assert.Len(t, r.Cells, 7)
	}
	assert.Equal(t, []string{
		"lg n", "√n", "n", "n lg n", "n<sup>2</sup>", "n<sup>3</sup>", "2<sup>n</sup>", "n!",
	}, labels)

	// First column ("1 second").
	assert.Equal(t, "10<sup>6</sup>", rows[2].Cells[0])
	assert.Equal(t, "1000", rows[4].Cells[0])
	assert.Equal(t, "19", rows[6].Cells[0])
	assert.Equal(t, "9", rows[7].Cells[0])
}

func TestBuildTable_IsImmutable(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	table, err := BuildTable(c)
	require.NoError(t, err)

	headers := table.Headers()
	headers[0] = "changed"
	rows := table.Rows()
	rows[0].Label = "changed"
	rows[0].Cells[0] = "changed"

	assert.Equal(t, "f(n)", table.Headers()[0])
	assert.Equal(t, "lg n", table.Rows()[0].Label)
	assert.Equal(t, "2<sup>10<sup>6</sup></sup>", table.Rows()[0].Cells[0])
}

func TestBuildTable_Errors(t *testing.T) {
	t.Run("unknown function", func(t *testing.T) {
		c := Catalog{
			Title:     "x",
			Budgets:   []TimeBudget{{Label: "a", Unit: "u", Numerator: 10}},
			Functions: []FunctionSpec{{ID: "bogus", Label: "?"}},
		}
		_, err := BuildTable(c)
		require.ErrorIs(t, err, ErrUnknownFunction)
	})

	t.Run("solver failure aborts table", func(t *testing.T) {
		c := Catalog{
			Title:     "x",
			Budgets:   []TimeBudget{{Label: "tiny", Unit: "u", Numerator: 1}},
			Functions: []FunctionSpec{{ID: N, Label: "n"}, {ID: NLogN, Label: "n lg n"}},
		}
		table, err := BuildTable(c)
		require.ErrorIs(t, err, ErrNoConvergence)
		assert.Nil(t, table)
	})

	t.Run("invalid budgets", func(t *testing.T) {
		_, err := BuildTable(Catalog{Title: "x"})
		require.ErrorIs(t, err, ErrInvalidCatalog)
	})
}
