// Package optimization provides shared data structures for optimization results.
package optimization

import (
	"fmt"
	"strconv"
)

// Summary captures the result of a single budget directive.
type Summary struct {
	Scenario   string   `json:"scenario" yaml:"scenario"`
	Field      string   `json:"field" yaml:"field"`
	Original   float64  `json:"original" yaml:"original"`
	Value      float64  `json:"value" yaml:"value"`
	BudgetKg   float64  `json:"budgetKg" yaml:"budgetKg"`
	TotalKg    float64  `json:"totalKg" yaml:"totalKg"`
	Headroom   float64  `json:"headroom" yaml:"headroom"`
	Iterations int      `json:"iterations" yaml:"iterations"`
	Converged  bool     `json:"converged" yaml:"converged"`
	Notes      []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// String renders the summary as one line of prose.
func (s Summary) String() string {
	value := strconv.FormatFloat(s.Value, 'f', -1, 64)
	original := strconv.FormatFloat(s.Original, 'f', -1, 64)
	if !s.Converged {
		return fmt.Sprintf("%s cannot keep the total within %.2f kg CO2e (%s gives %.2f kg)",
			s.Field, s.BudgetKg, value, s.TotalKg)
	}
	return fmt.Sprintf("%s up to %s keeps the total within %.2f kg CO2e (was %s, total %.2f kg)",
		s.Field, value, s.BudgetKg, original, s.TotalKg)
}
