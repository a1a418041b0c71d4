//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package growth

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		in       string
		mantissa string
		exponent int32
	}{
		{in: "1", mantissa: "1", exponent: 0},
		{in: "1000000", mantissa: "1", exponent: 6},
		{in: "60000000", mantissa: "6", exponent: 7},
		{in: "3600000000", mantissa: "3.6", exponent: 9},
		{in: "31536000000000", mantissa: "3.1536", exponent: 13},
		{in: "31536000000000.0000000000000000", mantissa: "3.1536", exponent: 13},
		{in: "0.00125", mantissa: "1.25", exponent: -3},
		{in: "9.99", mantissa: "9.99", exponent: 0},
		{in: "123456789012345678901234567890", mantissa: "1.2345678901234567890123456789", exponent: 29},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := decimal.RequireFromString(tt.in)
			m, e, err := Decompose(v)
			require.NoError(t, err)
			assert.Equal(t, tt.mantissa, m.String())
			assert.Equal(t, tt.exponent, e)

			// mantissa within [1, 10) and reconstruction is exact.
			assert.True(t, m.GreaterThanOrEqual(decimal.NewFromInt(1)))
			assert.True(t, m.LessThan(decimal.NewFromInt(10)))
			assert.True(t, m.Shift(e).Equal(v), "reconstructed %s from %s x 10^%d", v, m, e)
		})
	}
}

func TestDecompose_NonPositive(t *testing.T) {
	_, _, err := Decompose(decimal.Zero)
	require.ErrorIs(t, err, ErrNonPositive)

	_, _, err = Decompose(decimal.NewFromInt(-5))
	require.ErrorIs(t, err, ErrNonPositive)
}

func TestSciNotation(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		scale int
		want  string
	}{
		{name: "identity power of ten", in: "1000000", scale: 1, want: "10<sup>6</sup>"},
		{name: "identity with mantissa", in: "60000000", scale: 1, want: "6 x 10<sup>7</sup>"},
		{name: "square power of ten", in: "1000000", scale: 2, want: "10<sup>12</sup>"},
		// Squared mantissa is kept as-is rather than renormalised.
		{name: "square keeps mantissa", in: "60000000", scale: 2, want: "36 x 10<sup>14</sup>"},
		{name: "square fractional", in: "3600000000", scale: 2, want: "12.96 x 10<sup>18</sup>"},
		{name: "square year", in: "31536000000000", scale: 2, want: "9.94519296 x 10<sup>26</sup>"},
		{name: "square century", in: "3153600000000000", scale: 2, want: "9.94519296 x 10<sup>30</sup>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SciNotation(decimal.RequireFromString(tt.in), tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSciNotation_InvalidInput(t *testing.T) {
	_, err := SciNotation(decimal.NewFromInt(10), 0)
	require.ErrorIs(t, err, ErrNonPositive)

	_, err = SciNotation(decimal.Zero, 1)
	require.ErrorIs(t, err, ErrNonPositive)
}
