package growth

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Function identifies one of the tabulated growth functions.
type Function string

const (
	LogN       Function = "log_n"
	SqrtN      Function = "sqrt_n"
	N          Function = "n"
	NLogN      Function = "n_log_n"
	NSquared   Function = "n_squared"
	NCubed     Function = "n_cubed"
	TwoToN     Function = "two_to_n"
	NFactorial Function = "n_factorial"
)

// maxFixedPointIterations caps the n lg n iteration; the default catalog
// converges in at most a dozen steps.
const maxFixedPointIterations = 100

// Solver returns the largest n with f(n) <= t, formatted for display.
type Solver func(t decimal.Decimal) (string, error)

//nolint:gochecknoglobals // immutable dispatch table.
var solvers = map[Function]Solver{
	LogN:       solveLogN,
	SqrtN:      sciSolver(2),
	N:          sciSolver(1),
	NLogN:      solveNLogN,
	NSquared:   rootSolver(2),
	NCubed:     rootSolver(3),
	TwoToN:     solveTwoToN,
	NFactorial: solveFactorial,
}

// SolverFor returns the solver registered for f.
func SolverFor(f Function) (Solver, error) {
	s, ok := solvers[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, f)
	}
	return s, nil
}

// Solve runs f's solver against t.
func Solve(f Function, t decimal.Decimal) (string, error) {
	s, err := SolverFor(f)
	if err != nil {
		return "", err
	}
	return s(t)
}

// solveLogN: lg n <= t gives n = 2^t, shown as 2 raised to t in scientific notation.
func solveLogN(t decimal.Decimal) (string, error) {
	s, err := SciNotation(t, 1)
	if err != nil {
		return "", err
	}
	return "2<sup>" + s + "</sup>", nil
}

// sciSolver inverts n^(1/scale) <= t, i.e. n = t^scale.
func sciSolver(scale int) Solver {
	return func(t decimal.Decimal) (string, error) {
		return SciNotation(t, scale)
	}
}

// rootSolver inverts n^k <= t by rounding the k-th root of t.
func rootSolver(k int) Solver {
	return func(t decimal.Decimal) (string, error) {
		if !t.IsPositive() {
			return "", fmt.Errorf("%w: %s", ErrNonPositive, t)
		}
		n := math.RoundToEven(math.Pow(t.InexactFloat64(), 1/float64(k)))
		return formatInt(n), nil
	}
}

// solveNLogN iterates n <- round(t / lg n) from n = t until n is a fixed point.
func solveNLogN(t decimal.Decimal) (string, error) {
	tf := t.InexactFloat64()
	n := tf
	for i := 0; i < maxFixedPointIterations; i++ {
		if n < 2 {
			return "", fmt.Errorf("%w: n lg n at t=%s reached n=%v", ErrNoConvergence, t, n)
		}
		next := math.RoundToEven(tf / (math.Log(n) / math.Ln2))
		if next == n {
			return formatInt(n), nil
		}
		n = next
	}
	return "", fmt.Errorf("%w: n lg n at t=%s after %d iterations", ErrNoConvergence, t, maxFixedPointIterations)
}

// solveTwoToN finds the smallest n >= 1 with 2^n >= t and returns n-1.
func solveTwoToN(t decimal.Decimal) (string, error) {
	n := int64(1)
	p := big.NewInt(2)
	for decimal.NewFromBigInt(p, 0).LessThan(t) {
		n++
		p.Lsh(p, 1)
	}
	return strconv.FormatInt(n-1, 10), nil
}

// solveFactorial finds the smallest n >= 1 with n! >= t and returns n-1.
func solveFactorial(t decimal.Decimal) (string, error) {
	n := int64(1)
	f := big.NewInt(1)
	for decimal.NewFromBigInt(f, 0).LessThan(t) {
		n++
		f.Mul(f, big.NewInt(n))
	}
	return strconv.FormatInt(n-1, 10), nil
}

func formatInt(n float64) string {
	return strconv.FormatFloat(n, 'f', 0, 64)
}
