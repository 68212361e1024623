package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/carbon-footprint/pkg/adapters"
	"github.com/iwvelando/carbon-footprint/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	validator := validation.ConfigValidator{
		Common: adapters.ActivityToValidation(c.Common.ActivityInput),
	}

	var warnings []string
	for _, scenario := range c.Scenarios {
		input, err := scenario.Activity(c.Common)
		if err != nil {
			if scenario.Active {
				warnings = append(warnings, err.Error())
			}
			input = c.Common.ActivityInput
		}
		if scenario.Active && scenario.Budget != nil {
			if err := scenario.Budget.Validate(); err != nil {
				warnings = append(warnings, fmt.Sprintf("Scenario '%s' budget: %v", scenario.Name, err))
			}
		}
		validator.Scenarios = append(validator.Scenarios,
			adapters.ScenarioToValidation(scenario.Name, scenario.Active, input))
	}
	warnings = append(warnings, validator.ValidateAll()...)

	if c.Factors.File != "" {
		if _, err := os.Stat(c.Factors.File); errors.Is(err, fs.ErrNotExist) {
			warnings = append(warnings, fmt.Sprintf("Factor table file '%s' does not exist", c.Factors.File))
		}
	}

	return warnings
}
