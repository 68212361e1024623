package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
)

const (
	defaultBudgetTolerance     = 0.01
	defaultBudgetMaxIterations = 50
)

// BudgetConfig asks for the largest value of one activity quantity that keeps
// the scenario's total footprint at or below MaxKg. Field is a form field
// name such as "beef" or "electricity".
type BudgetConfig struct {
	Field         string   `yaml:"field" mapstructure:"field"`
	MaxKg         float64  `yaml:"maxKg" mapstructure:"maxKg"`
	Min           *float64 `yaml:"min,omitempty" mapstructure:"min"`
	Max           *float64 `yaml:"max,omitempty" mapstructure:"max"`
	Tolerance     float64  `yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations int      `yaml:"maxIterations,omitempty" mapstructure:"maxIterations"`
}

// Normalize applies defaults before validation.
func (b *BudgetConfig) Normalize() {
	if b == nil {
		return
	}
	b.Field = strings.TrimSpace(b.Field)
	if q, ok := footprint.LookupQuantityField(b.Field); ok {
		b.Field = q.Name
	}
	if b.Min == nil {
		zero := 0.0
		b.Min = &zero
	}
	if b.Tolerance <= 0 {
		b.Tolerance = defaultBudgetTolerance
	}
	if b.MaxIterations <= 0 {
		b.MaxIterations = defaultBudgetMaxIterations
	}
}

// Validate returns an error when the budget directive cannot be run.
func (b *BudgetConfig) Validate() error {
	if b == nil {
		return fmt.Errorf("budget configuration cannot be nil")
	}

	b.Normalize()

	if _, ok := footprint.LookupQuantityField(b.Field); !ok {
		return fmt.Errorf("budget field %q is not a numeric activity field", b.Field)
	}
	if math.IsNaN(b.MaxKg) || math.IsInf(b.MaxKg, 0) || b.MaxKg < 0 {
		return fmt.Errorf("budget maxKg must be a non-negative number, got %g", b.MaxKg)
	}
	if b.Max == nil {
		return fmt.Errorf("budget requires a maximum bound")
	}
	if *b.Min < 0 {
		return fmt.Errorf("budget minimum %g cannot be negative", *b.Min)
	}
	if *b.Max < *b.Min {
		return fmt.Errorf("budget maximum %g is below minimum %g", *b.Max, *b.Min)
	}
	return nil
}
