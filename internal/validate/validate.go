package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/growth/catalog.go
//   type TimeBudget struct {
//       ...
//       Numerator   int64  `yaml:"numerator" validate:"gt=0"`
//       Denominator int64  `yaml:"denominator,omitempty" validate:"omitempty,gt=0"`
//   }

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInst is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
