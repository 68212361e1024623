// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/carbon-footprint/pkg/constants"
)

// ValidatePeriod warns about reporting periods that are empty or
// implausibly long.
func ValidatePeriod(label string, days float64) string {
	if days <= 0 {
		return fmt.Sprintf("%s has a period of %g days - every period-based category will be zero", label, days)
	}
	if days > constants.MaxReasonablePeriodDays {
		return fmt.Sprintf("%s has a period of %g days, longer than %g days", label, days, constants.MaxReasonablePeriodDays)
	}
	return ""
}

// ValidateWeeklyFrequency warns when a per-week count exceeds the days in a week.
func ValidateWeeklyFrequency(label, field string, perWeek float64) string {
	if perWeek > constants.MaxDaysPerWeek {
		return fmt.Sprintf("%s %s is %g per week, more than %g", label, field, perWeek, constants.MaxDaysPerWeek)
	}
	return ""
}

// ValidateRecyclingFactor warns when the factor lies outside [0, 1]; such a
// scenario fails at calculation time.
func ValidateRecyclingFactor(label string, factor float64) string {
	if math.IsNaN(factor) || factor < 0 || factor > 1 {
		return fmt.Sprintf("%s recycling factor %g is outside [0, 1] and will be rejected", label, factor)
	}
	return ""
}

// ConfigValidator checks the effective activity of every scenario.
type ConfigValidator struct {
	Common    ActivityInfo
	Scenarios []ScenarioInfo
}

// ActivityInfo is the subset of an activity record that validation inspects.
type ActivityInfo struct {
	PeriodDays          float64
	RecyclingFactor     float64
	WorkDaysPerWeek     float64
	WeekendTripsPerWeek float64
}

// ScenarioInfo holds a scenario's effective activity, after overrides.
type ScenarioInfo struct {
	Name     string
	Active   bool
	Activity ActivityInfo
}

func validateActivity(label string, a ActivityInfo) []string {
	var warnings []string
	for _, w := range []string{
		ValidatePeriod(label, a.PeriodDays),
		ValidateRecyclingFactor(label, a.RecyclingFactor),
		ValidateWeeklyFrequency(label, "work days", a.WorkDaysPerWeek),
		ValidateWeeklyFrequency(label, "weekend trips", a.WeekendTripsPerWeek),
	} {
		if w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// ValidateAll performs all validation checks and returns warnings.
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	// With no scenarios the common section is reported on its own.
	if len(cv.Scenarios) == 0 {
		return validateActivity("Common", cv.Common)
	}

	seen := make(map[string]int, len(cv.Scenarios))
	active := 0
	for _, scenario := range cv.Scenarios {
		seen[scenario.Name]++
		if seen[scenario.Name] == 2 {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", scenario.Name))
		}
		if scenario.Name == "" {
			warnings = append(warnings, "Scenario without a name")
		}
		if !scenario.Active {
			continue
		}
		active++
		warnings = append(warnings, validateActivity(fmt.Sprintf("Scenario '%s'", scenario.Name), scenario.Activity)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios - nothing will be calculated")
	}

	return warnings
}
