package footprint

import (
	"github.com/iwvelando/carbon-footprint/pkg/constants"
)

// Calculator computes emissions against one factor table. It holds no other
// state and is safe for concurrent use.
type Calculator struct {
	factors Factors
}

// NewCalculator returns a calculator over factors, or over DefaultFactors
// when factors is nil.
func NewCalculator(factors Factors) *Calculator {
	if factors == nil {
		factors = DefaultFactors()
	}
	return &Calculator{factors: factors}
}

// Factors returns the table the calculator reads from.
func (c *Calculator) Factors() Factors {
	return c.factors
}

func weeks(periodDays float64) float64 {
	return periodDays / constants.DaysPerWeek
}

// Food returns grams CO2e for the daily intake eaten every day of the period.
func (c *Calculator) Food(in FoodIntake, periodDays float64) (float64, error) {
	var daily float64
	for _, food := range FoodTypes() {
		rate, err := c.factors.Food(food)
		if err != nil {
			return 0, withSelector(err, "food")
		}
		daily += in.Grams(food) * rate
	}
	return daily * periodDays, nil
}

// Commute returns grams CO2e for a round trip on every work day of the period.
func (c *Calculator) Commute(in Commute, periodDays float64) (float64, error) {
	rate, err := c.factors.Transport(in.Mode)
	if err != nil {
		return 0, withSelector(err, "commute.mode")
	}
	distance := in.DistanceKm * constants.CommuteTripsPerDay * in.WorkDaysPerWeek * weeks(periodDays)
	return distance * rate, nil
}

// Weekend returns grams CO2e for weekend trips over the period.
func (c *Calculator) Weekend(in WeekendTravel, periodDays float64) (float64, error) {
	rate, err := c.factors.Transport(in.Mode)
	if err != nil {
		return 0, withSelector(err, "weekend.mode")
	}
	distance := in.DistanceKm * in.TripsPerWeek * weeks(periodDays)
	return distance * rate, nil
}

// Flight returns grams CO2e for return flights. Each band uses the table's
// fixed average distance rather than a user distance.
func (c *Calculator) Flight(in Flights) (float64, error) {
	var total float64
	for _, band := range FlightBands() {
		rate, err := c.factors.Flight(band, in.Class)
		if err != nil {
			return 0, withSelector(err, "flights.class")
		}
		distance, err := c.factors.FlightDistance(band)
		if err != nil {
			return 0, withSelector(err, "flights.band")
		}
		total += in.Count(band) * distance * constants.FlightLegsPerTrip * rate
	}
	return total, nil
}

// Clothing returns grams CO2e for clothing bought in the period.
func (c *Calculator) Clothing(in Clothing) float64 {
	f := c.factors.Clothing()
	return in.CottonKg*constants.GramsPerKilogram*f.Cotton +
		in.SyntheticKg*constants.GramsPerKilogram*f.Synthetic
}

// Household returns grams CO2e for household goods bought in the period.
func (c *Calculator) Household(in Household) float64 {
	f := c.factors.Household()
	return in.PaperKg*constants.GramsPerKilogram*f.Paper +
		in.PlasticKg*constants.GramsPerKilogram*f.Plastic
}

// Water returns grams CO2e for shower and laundry water over the period.
func (c *Calculator) Water(in WaterUse, periodDays float64) float64 {
	shower := in.ShowerMinutesPerDay * constants.ShowerLitersPerMinute * periodDays
	laundry := in.LaundryLoadsPerWeek * constants.LaundryLitersPerLoad * weeks(periodDays)
	return (shower + laundry) * c.factors.WaterPerLiter()
}

// Electricity returns grams CO2e for monthly consumption prorated to the period.
func (c *Calculator) Electricity(in Electricity, periodDays float64) (float64, error) {
	rate, err := c.factors.Electricity(in.Supplier)
	if err != nil {
		return 0, withSelector(err, "electricity.supplier")
	}
	kwh := in.MonthlyKWh * (periodDays / constants.DaysPerMonth)
	return kwh * rate, nil
}
