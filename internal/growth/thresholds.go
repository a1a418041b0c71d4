package growth

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// thresholdPrecision bounds the decimal places kept when a cumulative product
// does not divide evenly.
const thresholdPrecision = 16

// Thresholds converts the ordered budgets into cumulative thresholds:
// threshold(0) is the first factor and threshold(j) = threshold(j-1) * factor(j).
// Numerators and denominators are multiplied separately so that only one
// division happens per threshold and exact results stay exact.
func Thresholds(budgets []TimeBudget) ([]decimal.Decimal, error) {
	if len(budgets) == 0 {
		return nil, fmt.Errorf("%w: no time budgets", ErrInvalidCatalog)
	}

	num := big.NewInt(1)
	den := big.NewInt(1)
	out := make([]decimal.Decimal, 0, len(budgets))
	for i, b := range budgets {
		if b.Numerator <= 0 || b.denominator() <= 0 {
			return nil, fmt.Errorf("%w: budget %q has a non-positive factor %d/%d",
				ErrInvalidCatalog, b.Label, b.Numerator, b.denominator())
		}
		num.Mul(num, big.NewInt(b.Numerator))
		den.Mul(den, big.NewInt(b.denominator()))

		t := decimal.NewFromBigInt(num, 0).DivRound(decimal.NewFromBigInt(den, 0), thresholdPrecision)
		if i > 0 && !t.GreaterThan(out[i-1]) {
			return nil, fmt.Errorf("%w: threshold for %q (%s) does not exceed %q (%s)",
				ErrInvalidCatalog, b.Label, t, budgets[i-1].Label, out[i-1])
		}
		logrus.Debugf("Threshold %s = %s", b.Label, t)
		out = append(out, t)
	}
	return out, nil
}
