package config

import (
	"fmt"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/datetime"
)

// BaselineScenarioName names the implicit scenario used when a configuration
// lists no scenarios.
const BaselineScenarioName = "baseline"

// Scenario is a what-if variation of the common activity. Every non-nil
// section replaces the matching common section; empty selectors inside a
// replaced section inherit the common selector.
type Scenario struct {
	Name   string
	Active bool

	Period          string                   `yaml:"period,omitempty"`
	PeriodDays      *float64                 `yaml:"periodDays,omitempty"`
	RecyclingFactor *float64                 `yaml:"recyclingFactor,omitempty"`
	Food            *footprint.FoodIntake    `yaml:"food,omitempty"`
	Commute         *footprint.Commute       `yaml:"commute,omitempty"`
	Weekend         *footprint.WeekendTravel `yaml:"weekend,omitempty"`
	Flights         *footprint.Flights       `yaml:"flights,omitempty"`
	Clothing        *footprint.Clothing      `yaml:"clothing,omitempty"`
	Household       *footprint.Household     `yaml:"household,omitempty"`
	Water           *footprint.WaterUse      `yaml:"water,omitempty"`
	Electricity     *footprint.Electricity   `yaml:"electricity,omitempty"`

	Budget *BudgetConfig `yaml:"budget,omitempty"`
}

// NamedActivity is the effective input of one scenario.
type NamedActivity struct {
	Name  string
	Input footprint.ActivityInput
}

// Activity merges the scenario over common.
func (s Scenario) Activity(common Activity) (footprint.ActivityInput, error) {
	base := common.ActivityInput
	out := base

	switch {
	case s.Period != "":
		days, err := datetime.ParsePeriod(s.Period)
		if err != nil {
			return footprint.ActivityInput{}, fmt.Errorf("scenario '%s': %w", s.Name, err)
		}
		out.PeriodDays = days
	case s.PeriodDays != nil:
		out.PeriodDays = *s.PeriodDays
	}
	if s.RecyclingFactor != nil {
		out.RecyclingFactor = *s.RecyclingFactor
	}
	if s.Food != nil {
		out.Food = *s.Food
	}
	if s.Commute != nil {
		out.Commute = *s.Commute
		if out.Commute.Mode == "" {
			out.Commute.Mode = base.Commute.Mode
		}
	}
	if s.Weekend != nil {
		out.Weekend = *s.Weekend
		if out.Weekend.Mode == "" {
			out.Weekend.Mode = base.Weekend.Mode
		}
	}
	if s.Flights != nil {
		out.Flights = *s.Flights
		if out.Flights.Class == "" {
			out.Flights.Class = base.Flights.Class
		}
	}
	if s.Clothing != nil {
		out.Clothing = *s.Clothing
	}
	if s.Household != nil {
		out.Household = *s.Household
	}
	if s.Water != nil {
		out.Water = *s.Water
	}
	if s.Electricity != nil {
		out.Electricity = *s.Electricity
		if out.Electricity.Supplier == "" {
			out.Electricity.Supplier = base.Electricity.Supplier
		}
	}

	return out.WithDefaultSelectors(), nil
}

// SetSection replaces the section of the scenario holding category with the
// matching section of in.
func (s *Scenario) SetSection(category footprint.Category, in footprint.ActivityInput) error {
	switch category {
	case footprint.CategoryFood:
		food := in.Food
		s.Food = &food
	case footprint.CategoryCommute:
		commute := in.Commute
		s.Commute = &commute
	case footprint.CategoryWeekend:
		weekend := in.Weekend
		s.Weekend = &weekend
	case footprint.CategoryFlight:
		flights := in.Flights
		s.Flights = &flights
	case footprint.CategoryClothing:
		clothing := in.Clothing
		s.Clothing = &clothing
	case footprint.CategoryHousehold:
		household := in.Household
		s.Household = &household
	case footprint.CategoryWater:
		water := in.Water
		s.Water = &water
	case footprint.CategoryElectricity:
		electricity := in.Electricity
		s.Electricity = &electricity
	default:
		return fmt.Errorf("scenario '%s': no section for category %s", s.Name, category)
	}
	return nil
}

// ActiveScenarios returns the effective input of every active scenario in
// configuration order. A configuration without scenarios yields the common
// activity as a single baseline scenario.
func (c *Configuration) ActiveScenarios() ([]NamedActivity, error) {
	if len(c.Scenarios) == 0 {
		return []NamedActivity{{
			Name:  BaselineScenarioName,
			Input: c.Common.ActivityInput.WithDefaultSelectors(),
		}}, nil
	}

	var out []NamedActivity
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		input, err := scenario.Activity(c.Common)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedActivity{Name: scenario.Name, Input: input})
	}
	return out, nil
}
