package testutil

import (
	"os"
	"testing"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/output"
)

func TestFindScenario(t *testing.T) {
	results := []output.Result{
		{Name: "Scenario A", Report: footprint.Report{PeriodDays: 7}},
		{Name: "Scenario B", Report: footprint.Report{PeriodDays: 30}},
		{Name: "Another Scenario", Report: footprint.Report{PeriodDays: 365}},
	}

	tests := []struct {
		name         string
		searchName   string
		expectFound  bool
		expectedDays float64
	}{
		{
			name:         "Find existing scenario A",
			searchName:   "Scenario A",
			expectFound:  true,
			expectedDays: 7,
		},
		{
			name:         "Find scenario with longer name",
			searchName:   "Another Scenario",
			expectFound:  true,
			expectedDays: 365,
		},
		{
			name:        "Search for non-existent scenario",
			searchName:  "Non-existent",
			expectFound: false,
		},
		{
			name:        "Empty search name",
			searchName:  "",
			expectFound: false,
		},
		{
			name:        "Case sensitive search",
			searchName:  "scenario a",
			expectFound: false,
		},
		{
			name:        "Partial name match",
			searchName:  "Scenario",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindScenario(results, tt.searchName)

			if !tt.expectFound {
				if result != nil {
					t.Errorf("FindScenario() expected nil for scenario '%s' but got result with name '%s'",
						tt.searchName, result.Name)
				}
				return
			}
			if result == nil {
				t.Fatalf("FindScenario() expected to find scenario '%s' but got nil", tt.searchName)
			}
			if result.Name != tt.searchName {
				t.Errorf("FindScenario() returned scenario with name '%s', expected '%s'",
					result.Name, tt.searchName)
			}
			if result.Report.PeriodDays != tt.expectedDays {
				t.Errorf("FindScenario() returned period %v, expected %v",
					result.Report.PeriodDays, tt.expectedDays)
			}
		})
	}
}

func TestFindScenarioNilResults(t *testing.T) {
	if result := FindScenario(nil, "Any Scenario"); result != nil {
		t.Errorf("FindScenario() with nil results should return nil, got %v", result)
	}
}

func TestFindScenarioReturnsFirstMatch(t *testing.T) {
	results := []output.Result{
		{Name: "Duplicate", Report: footprint.Report{PeriodDays: 7}},
		{Name: "Duplicate", Report: footprint.Report{PeriodDays: 30}},
	}

	found := FindScenario(results, "Duplicate")
	if found == nil {
		t.Fatalf("FindScenario() returned nil")
	}
	if &results[0] != found {
		t.Errorf("FindScenario() should return pointer to first matching element")
	}
}

func TestBeefWeek(t *testing.T) {
	report, err := footprint.Calculate(BeefWeek())
	if err != nil {
		t.Fatalf("Calculate() returned error: %v", err)
	}
	if report.Breakdown.Total != 18.67 {
		t.Errorf("expected total 18.67, got %v", report.Breakdown.Total)
	}
	if report.Breakdown.Trees != 1 {
		t.Errorf("expected 1 tree, got %d", report.Breakdown.Trees)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "config.yaml", "common: {}\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() returned error: %v", err)
	}
	if string(data) != "common: {}\n" {
		t.Errorf("unexpected content %q", string(data))
	}
}
