package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
)

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name         string
		yaml         string
		wantWarnings []string
	}{
		{
			name: "Clean configuration",
			yaml: `
common:
  commute:
    workDaysPerWeek: 5
scenarios:
  - name: a
    active: true
`,
		},
		{
			name: "Too many work days in common",
			yaml: `
common:
  commute:
    workDaysPerWeek: 9
`,
			wantWarnings: []string{"work days"},
		},
		{
			name: "Duplicate names and out of range recycling",
			yaml: `
scenarios:
  - name: a
    active: true
  - name: a
    active: true
    recyclingFactor: 1.5
`,
			wantWarnings: []string{"more than once", "recycling factor"},
		},
		{
			name: "No active scenarios",
			yaml: `
scenarios:
  - name: a
    active: false
`,
			wantWarnings: []string{"No active scenarios"},
		},
		{
			name: "Bad scenario period",
			yaml: `
scenarios:
  - name: a
    active: true
    period: someday
`,
			wantWarnings: []string{"scenario 'a'"},
		},
		{
			name: "Budget without a maximum",
			yaml: `
scenarios:
  - name: a
    active: true
    budget:
      field: beef
      maxKg: 50
  - name: b
    active: false
    budget:
      field: nonsense
`,
			wantWarnings: []string{"Scenario 'a' budget: budget requires a maximum bound"},
		},
		{
			name: "Missing factor file",
			yaml: `
factors:
  file: /nonexistent/factors.yaml
`,
			wantWarnings: []string{"does not exist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LoadConfigurationFromReader(strings.NewReader(tt.yaml))
			require.NoError(t, err)

			warnings := conf.ValidateConfiguration()
			require.Len(t, warnings, len(tt.wantWarnings), "warnings: %v", warnings)
			for i, want := range tt.wantWarnings {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}

func TestLoadFactors(t *testing.T) {
	t.Run("Embedded table", func(t *testing.T) {
		conf := &Configuration{}
		factors, err := conf.LoadFactors(nil)
		require.NoError(t, err)
		assert.Equal(t, footprint.DefaultFactors().Info(), factors.Info())
	})

	t.Run("Embedded table constraint mismatch", func(t *testing.T) {
		conf := &Configuration{Factors: FactorsConfig{VersionConstraint: "< 2000"}}
		_, err := conf.LoadFactors(nil)
		assert.ErrorIs(t, err, footprint.ErrInvalidFactorVersion)
	})

	t.Run("Override file", func(t *testing.T) {
		spec := footprint.DefaultFactors().Spec()
		spec.Name = "custom"
		spec.Version = "2025.2.0"
		spec.Electricity[footprint.SupplierCLP] = 390
		custom, err := footprint.NewEmissionFactors(spec)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "factors.yaml")
		writeFactorTable(t, path, custom)

		conf := &Configuration{Factors: FactorsConfig{File: path, VersionConstraint: ">= 2025"}}
		factors, err := conf.LoadFactors(nil)
		require.NoError(t, err)
		assert.Equal(t, "custom", factors.Info().Name)

		rate, err := factors.Electricity(footprint.SupplierCLP)
		require.NoError(t, err)
		assert.Equal(t, 390.0, rate)
	})

	t.Run("Missing override file", func(t *testing.T) {
		conf := &Configuration{Factors: FactorsConfig{File: filepath.Join(t.TempDir(), "missing.yaml")}}
		_, err := conf.LoadFactors(nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func writeFactorTable(t *testing.T, path string, factors *footprint.EmissionFactors) {
	t.Helper()
	data, err := yaml.Marshal(factors)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}
