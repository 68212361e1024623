package adapters

import (
	"testing"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
)

func TestMapFormGet(t *testing.T) {
	form := MapForm{"beef": "100"}

	if got := form.Get("beef"); got != "100" {
		t.Errorf("Get(beef) = %q, want 100", got)
	}
	if got := form.Get("pork"); got != "" {
		t.Errorf("Get(pork) = %q, want empty", got)
	}
	if got := MapForm(nil).Get("beef"); got != "" {
		t.Errorf("nil map Get(beef) = %q, want empty", got)
	}
}

func TestActivityFromMap(t *testing.T) {
	in := ActivityFromMap(map[string]string{
		footprint.FieldPeriod:      "7",
		footprint.FieldRecycling:   "1",
		footprint.FieldBeef:        "100",
		footprint.FieldCommuteMode: " mtr ",
		footprint.FieldWorkDays:    "five",
	})

	if in.PeriodDays != 7 {
		t.Errorf("expected period 7, got %v", in.PeriodDays)
	}
	if in.Food.Beef != 100 {
		t.Errorf("expected 100 g of beef, got %v", in.Food.Beef)
	}
	if in.Commute.Mode != "mtr" {
		t.Errorf("expected trimmed mode mtr, got %q", in.Commute.Mode)
	}
	if in.Commute.WorkDaysPerWeek != 0 {
		t.Errorf("expected non-numeric work days to read as 0, got %v", in.Commute.WorkDaysPerWeek)
	}

	report, err := footprint.Calculate(in.WithDefaultSelectors())
	if err != nil {
		t.Fatalf("Calculate() returned error: %v", err)
	}
	if report.Breakdown.Food != 18.67 {
		t.Errorf("expected 18.67 kg food, got %v", report.Breakdown.Food)
	}
}
