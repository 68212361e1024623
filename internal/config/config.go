// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
	"github.com/iwvelando/carbon-footprint/pkg/datetime"
)

// Configuration holds all configuration for carbon-footprint.
type Configuration struct {
	Common    Activity
	Scenarios []Scenario
	Factors   FactorsConfig `yaml:"factors,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv, json, yaml
	Language string `yaml:"language,omitempty"` // category label language, e.g. en or zh
}

// FactorsConfig selects the emission factor table.
type FactorsConfig struct {
	// File is a YAML factor table replacing the embedded one.
	File string `yaml:"file,omitempty"`
	// VersionConstraint is a semver constraint the table must satisfy.
	VersionConstraint string `yaml:"versionConstraint,omitempty"`
}

// Activity is the baseline activity shared by every scenario. Period, when
// set, takes precedence over PeriodDays and accepts "week", "month", "year"
// or a number of days.
type Activity struct {
	Period                  string `yaml:"period,omitempty"`
	footprint.ActivityInput `mapstructure:",squash" yaml:",inline"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A .env file in the working directory is loaded first
// when present; CARBON_* environment variables override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file, %w", err)
	}

	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML configuration from r. It does not
// consult .env files.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("common.periodDays", constants.DefaultPeriodDays)
	v.SetDefault("common.recyclingFactor", constants.DefaultRecyclingFactor)
	v.SetDefault("common.commute.mode", constants.DefaultTransportMode)
	v.SetDefault("common.weekend.mode", constants.DefaultTransportMode)
	v.SetDefault("common.flights.class", constants.DefaultCabinClass)
	v.SetDefault("common.electricity.supplier", constants.DefaultSupplier)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if configuration.Common.Period != "" {
		days, err := datetime.ParsePeriod(configuration.Common.Period)
		if err != nil {
			return nil, fmt.Errorf("common: %w", err)
		}
		configuration.Common.PeriodDays = days
	}
	return &configuration, nil
}
