package growth

import "errors"

// Sentinel errors returned (wrapped) by catalog loading and the solvers.
var (
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrUnknownFunction = errors.New("unknown growth function")
	ErrNonPositive     = errors.New("value must be positive")
	ErrNoConvergence   = errors.New("fixed-point iteration did not converge")
)
