// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/output"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []output.Result, name string) *output.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// BeefWeek returns one week of 100 g of beef a day with default selectors,
// the smallest input with a non-zero footprint (18.67 kg CO2e, 1 tree).
func BeefWeek() footprint.ActivityInput {
	in := footprint.ActivityInput{PeriodDays: 7, RecyclingFactor: 1}.WithDefaultSelectors()
	in.Food.Beef = 100
	return in
}

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
