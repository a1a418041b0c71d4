package growth

import (
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/growth-bounds/internal/validate"
)

//go:embed catalog.yaml
var catalogYAML []byte

// TimeBudget is a named unit-conversion factor, e.g. 60 seconds per minute.
// Fractional factors are kept as an exact numerator/denominator pair.
type TimeBudget struct {
	Label       string `yaml:"label" validate:"required"`
	Unit        string `yaml:"unit" validate:"required"`
	Numerator   int64  `yaml:"numerator" validate:"gt=0"`
	Denominator int64  `yaml:"denominator,omitempty" validate:"omitempty,gt=0"`
}

// denominator returns the factor's denominator, defaulting to 1.
func (b TimeBudget) denominator() int64 {
	if b.Denominator == 0 {
		return 1
	}
	return b.Denominator
}

// FunctionSpec pairs a growth function with its display label.
// Labels may carry <sup> markup and are rendered as trusted HTML.
type FunctionSpec struct {
	ID    Function `yaml:"id" validate:"required"`
	Label string   `yaml:"label" validate:"required"`
}

// Catalog is the fixed set of time budgets and growth functions tabulated by the program.
type Catalog struct {
	Title     string         `yaml:"title" validate:"required"`
	Budgets   []TimeBudget   `yaml:"budgets" validate:"required,min=1,dive"`
	Functions []FunctionSpec `yaml:"functions" validate:"required,min=1,dive"`
}

// DefaultCatalog returns the embedded catalog: eight growth functions over seven
// budgets from one second to one century.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := validate.Struct(c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	for _, f := range c.Functions {
		if _, ok := solvers[f.ID]; !ok {
			return Catalog{}, fmt.Errorf("%w: %w: %q", ErrInvalidCatalog, ErrUnknownFunction, f.ID)
		}
	}
	logrus.Debugf("Loaded catalog %q: %d budgets, %d functions", c.Title, len(c.Budgets), len(c.Functions))
	return c, nil
}
