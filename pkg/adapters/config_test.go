package adapters

import (
	"testing"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/validation"
)

func TestActivityToValidation(t *testing.T) {
	in := footprint.ActivityInput{
		PeriodDays:      30,
		RecyclingFactor: 0.5,
		Commute:         footprint.Commute{Mode: footprint.ModeBus, DistanceKm: 12, WorkDaysPerWeek: 5},
		Weekend:         footprint.WeekendTravel{Mode: footprint.ModeTaxi, TripsPerWeek: 2},
	}

	got := ActivityToValidation(in)
	want := validation.ActivityInfo{
		PeriodDays:          30,
		RecyclingFactor:     0.5,
		WorkDaysPerWeek:     5,
		WeekendTripsPerWeek: 2,
	}
	if got != want {
		t.Errorf("ActivityToValidation() = %+v, want %+v", got, want)
	}
}

func TestScenarioToValidation(t *testing.T) {
	in := footprint.ActivityInput{PeriodDays: 7, RecyclingFactor: 1}

	got := ScenarioToValidation("Commuter", true, in)
	if got.Name != "Commuter" {
		t.Errorf("expected name Commuter, got %s", got.Name)
	}
	if !got.Active {
		t.Errorf("expected scenario to be active")
	}
	if got.Activity.PeriodDays != 7 {
		t.Errorf("expected period 7, got %v", got.Activity.PeriodDays)
	}
}

func TestScenarioToValidationFeedsValidator(t *testing.T) {
	heavy := footprint.ActivityInput{
		PeriodDays:      30,
		RecyclingFactor: 1,
		Commute:         footprint.Commute{WorkDaysPerWeek: 9},
	}

	validator := validation.ConfigValidator{
		Scenarios: []validation.ScenarioInfo{ScenarioToValidation("heavy", true, heavy)},
	}
	warnings := validator.ValidateAll()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
}
