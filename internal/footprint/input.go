package footprint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iwvelando/carbon-footprint/pkg/constants"
	"github.com/iwvelando/carbon-footprint/pkg/mathutil"
)

// ActivityInput is one person's activity over a reporting period. Numeric
// fields are non-negative quantities; absent values are zero.
type ActivityInput struct {
	// PeriodDays is the length of the reporting window.
	PeriodDays float64 `json:"periodDays" yaml:"periodDays"`
	// RecyclingFactor scales the grand total. It must lie in [0, 1].
	RecyclingFactor float64 `json:"recyclingFactor" yaml:"recyclingFactor"`

	Food        FoodIntake    `json:"food" yaml:"food"`
	Commute     Commute       `json:"commute" yaml:"commute"`
	Weekend     WeekendTravel `json:"weekend" yaml:"weekend"`
	Flights     Flights       `json:"flights" yaml:"flights"`
	Clothing    Clothing      `json:"clothing" yaml:"clothing"`
	Household   Household     `json:"household" yaml:"household"`
	Water       WaterUse      `json:"water" yaml:"water"`
	Electricity Electricity   `json:"electricity" yaml:"electricity"`
}

// FoodIntake is grams eaten per day of each food.
type FoodIntake struct {
	Beef       float64 `json:"beef" yaml:"beef"`
	Pork       float64 `json:"pork" yaml:"pork"`
	Chicken    float64 `json:"chicken" yaml:"chicken"`
	Fish       float64 `json:"fish" yaml:"fish"`
	Egg        float64 `json:"egg" yaml:"egg"`
	Milk       float64 `json:"milk" yaml:"milk"`
	Vegetables float64 `json:"vegetables" yaml:"vegetables"`
	Rice       float64 `json:"rice" yaml:"rice"`
}

// Grams returns the daily grams eaten of one food.
func (f FoodIntake) Grams(food FoodType) float64 {
	switch food {
	case FoodBeef:
		return f.Beef
	case FoodPork:
		return f.Pork
	case FoodChicken:
		return f.Chicken
	case FoodFish:
		return f.Fish
	case FoodEgg:
		return f.Egg
	case FoodMilk:
		return f.Milk
	case FoodVegetables:
		return f.Vegetables
	case FoodRice:
		return f.Rice
	default:
		return 0
	}
}

// Commute is the weekday journey to work.
type Commute struct {
	Mode            TransportMode `json:"mode" yaml:"mode"`
	DistanceKm      float64       `json:"distanceKm" yaml:"distanceKm"` // one way
	WorkDaysPerWeek float64       `json:"workDaysPerWeek" yaml:"workDaysPerWeek"`
}

// WeekendTravel is leisure travel at the weekend.
type WeekendTravel struct {
	Mode         TransportMode `json:"mode" yaml:"mode"`
	DistanceKm   float64       `json:"distanceKm" yaml:"distanceKm"` // per trip
	TripsPerWeek float64       `json:"tripsPerWeek" yaml:"tripsPerWeek"`
}

// Flights counts return flights per distance band, all in one cabin class.
type Flights struct {
	Short  float64    `json:"short" yaml:"short"`
	Medium float64    `json:"medium" yaml:"medium"`
	Long   float64    `json:"long" yaml:"long"`
	Class  CabinClass `json:"class" yaml:"class"`
}

// Count returns the number of flights in a band.
func (f Flights) Count(band FlightBand) float64 {
	switch band {
	case BandShort:
		return f.Short
	case BandMedium:
		return f.Medium
	case BandLong:
		return f.Long
	default:
		return 0
	}
}

// Clothing is kilograms of new clothing bought in the period.
type Clothing struct {
	CottonKg    float64 `json:"cottonKg" yaml:"cottonKg"`
	SyntheticKg float64 `json:"syntheticKg" yaml:"syntheticKg"`
}

// Household is kilograms of household goods bought in the period.
type Household struct {
	PaperKg   float64 `json:"paperKg" yaml:"paperKg"`
	PlasticKg float64 `json:"plasticKg" yaml:"plasticKg"`
}

// WaterUse covers showers and laundry.
type WaterUse struct {
	ShowerMinutesPerDay float64 `json:"showerMinutesPerDay" yaml:"showerMinutesPerDay"`
	LaundryLoadsPerWeek float64 `json:"laundryLoadsPerWeek" yaml:"laundryLoadsPerWeek"`
}

// Electricity is household electricity use.
type Electricity struct {
	MonthlyKWh float64  `json:"monthlyKWh" yaml:"monthlyKWh"`
	Supplier   Supplier `json:"supplier" yaml:"supplier"`
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseOrDefault parses the leading number of a raw field, so "10km" reads as
// 10 and "1,000" as 1. Missing, non-numeric, negative and non-finite values
// all read as zero; this never fails.
func ParseOrDefault(raw string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return mathutil.NonNegative(v)
}

// Normalize returns a copy with every quantity clamped to a finite,
// non-negative value. Selectors and the recycling factor are left untouched;
// Calculate validates those.
func (in ActivityInput) Normalize() ActivityInput {
	nn := mathutil.NonNegative
	out := in
	out.PeriodDays = nn(in.PeriodDays)

	out.Food = FoodIntake{
		Beef:       nn(in.Food.Beef),
		Pork:       nn(in.Food.Pork),
		Chicken:    nn(in.Food.Chicken),
		Fish:       nn(in.Food.Fish),
		Egg:        nn(in.Food.Egg),
		Milk:       nn(in.Food.Milk),
		Vegetables: nn(in.Food.Vegetables),
		Rice:       nn(in.Food.Rice),
	}
	out.Commute.DistanceKm = nn(in.Commute.DistanceKm)
	out.Commute.WorkDaysPerWeek = nn(in.Commute.WorkDaysPerWeek)
	out.Weekend.DistanceKm = nn(in.Weekend.DistanceKm)
	out.Weekend.TripsPerWeek = nn(in.Weekend.TripsPerWeek)
	out.Flights.Short = nn(in.Flights.Short)
	out.Flights.Medium = nn(in.Flights.Medium)
	out.Flights.Long = nn(in.Flights.Long)
	out.Clothing = Clothing{CottonKg: nn(in.Clothing.CottonKg), SyntheticKg: nn(in.Clothing.SyntheticKg)}
	out.Household = Household{PaperKg: nn(in.Household.PaperKg), PlasticKg: nn(in.Household.PlasticKg)}
	out.Water = WaterUse{
		ShowerMinutesPerDay: nn(in.Water.ShowerMinutesPerDay),
		LaundryLoadsPerWeek: nn(in.Water.LaundryLoadsPerWeek),
	}
	out.Electricity.MonthlyKWh = nn(in.Electricity.MonthlyKWh)
	return out
}

// WithDefaultSelectors returns a copy with every empty selector set to its
// default: walk for both journeys, economy cabin and the CLP supplier.
// Non-empty selectors are kept as given, valid or not.
func (in ActivityInput) WithDefaultSelectors() ActivityInput {
	out := in
	if strings.TrimSpace(string(out.Commute.Mode)) == "" {
		out.Commute.Mode = TransportMode(constants.DefaultTransportMode)
	}
	if strings.TrimSpace(string(out.Weekend.Mode)) == "" {
		out.Weekend.Mode = TransportMode(constants.DefaultTransportMode)
	}
	if strings.TrimSpace(string(out.Flights.Class)) == "" {
		out.Flights.Class = CabinClass(constants.DefaultCabinClass)
	}
	if strings.TrimSpace(string(out.Electricity.Supplier)) == "" {
		out.Electricity.Supplier = Supplier(constants.DefaultSupplier)
	}
	return out
}
