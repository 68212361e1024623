// Package adapters provides adapter implementations between different package interfaces.
package adapters

import (
	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/validation"
)

// ActivityToValidation extracts the fields of an activity record that
// configuration validation inspects.
func ActivityToValidation(in footprint.ActivityInput) validation.ActivityInfo {
	return validation.ActivityInfo{
		PeriodDays:          in.PeriodDays,
		RecyclingFactor:     in.RecyclingFactor,
		WorkDaysPerWeek:     in.Commute.WorkDaysPerWeek,
		WeekendTripsPerWeek: in.Weekend.TripsPerWeek,
	}
}

// ScenarioToValidation wraps a scenario's effective activity for validation.
func ScenarioToValidation(name string, active bool, in footprint.ActivityInput) validation.ScenarioInfo {
	return validation.ScenarioInfo{
		Name:     name,
		Active:   active,
		Activity: ActivityToValidation(in),
	}
}
