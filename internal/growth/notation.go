package growth

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

//nolint:gochecknoglobals // immutable constants used by the decomposition.
var (
	bigTen     = big.NewInt(10)
	decimalOne = decimal.NewFromInt(1)
)

// Decompose splits a positive value into mantissa and power-of-ten exponent,
// v = mantissa * 10^exponent with 1 <= mantissa < 10. It works on the decimal
// coefficient directly so no precision is lost for large exponents.
func Decompose(v decimal.Decimal) (decimal.Decimal, int32, error) {
	if !v.IsPositive() {
		return decimal.Zero, 0, fmt.Errorf("%w: %s", ErrNonPositive, v)
	}

	coef := v.Coefficient()
	exp := v.Exponent()
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(coef, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		coef.Set(q)
		exp++
	}

	digits := int32(len(coef.String()))
	return decimal.NewFromBigInt(coef, -(digits - 1)), digits + exp - 1, nil
}

// SciNotation formats t^scale in scientific notation with <sup> markup.
// The exponent of t's decomposition is multiplied by scale and the mantissa is
// raised to the same power; the scaled mantissa is not renormalised, so
// (6*10^7)^2 reads "36 x 10<sup>14</sup>". A mantissa of exactly 1 is omitted.
func SciNotation(t decimal.Decimal, scale int) (string, error) {
	if scale < 1 {
		return "", fmt.Errorf("%w: scale %d", ErrNonPositive, scale)
	}
	m, e, err := Decompose(t)
	if err != nil {
		return "", err
	}

	exponent := int64(e) * int64(scale)
	mantissa := decimalOne
	for i := 0; i < scale; i++ {
		mantissa = mantissa.Mul(m)
	}

	if mantissa.Equal(decimalOne) {
		return fmt.Sprintf("10<sup>%d</sup>", exponent), nil
	}
	return fmt.Sprintf("%s x 10<sup>%d</sup>", mantissa.String(), exponent), nil
}
