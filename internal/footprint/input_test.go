package footprint

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrDefault(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "", want: 0},
		{raw: "12", want: 12},
		{raw: " 3.5 ", want: 3.5},
		{raw: "1e2", want: 100},
		{raw: "abc", want: 0},
		{raw: "12abc", want: 12},
		{raw: "10km", want: 10},
		{raw: "1,000", want: 1},
		{raw: ".5", want: 0.5},
		{raw: "2.", want: 2},
		{raw: "3e", want: 3},
		{raw: "1e400", want: 0},
		{raw: "km10", want: 0},
		{raw: "-4", want: 0},
		{raw: "NaN", want: 0},
		{raw: "Inf", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrDefault(tt.raw))
		})
	}
}

func TestNormalize(t *testing.T) {
	in := ActivityInput{
		PeriodDays:      -1,
		RecyclingFactor: -3,
		Food:            FoodIntake{Beef: -1, Rice: 200, Milk: math.NaN()},
		Commute:         Commute{Mode: "MTR", DistanceKm: math.Inf(1), WorkDaysPerWeek: 5},
		Flights:         Flights{Short: -2, Long: 1, Class: "first"},
		Water:           WaterUse{ShowerMinutesPerDay: 8, LaundryLoadsPerWeek: -1},
		Electricity:     Electricity{MonthlyKWh: 200, Supplier: "ACME"},
	}

	out := in.Normalize()

	assert.Zero(t, out.PeriodDays)
	assert.Equal(t, -3.0, out.RecyclingFactor, "the recycling factor is validated, not clamped")
	assert.Equal(t, FoodIntake{Rice: 200}, out.Food)
	assert.Equal(t, Commute{Mode: "MTR", WorkDaysPerWeek: 5}, out.Commute)
	assert.Equal(t, Flights{Long: 1, Class: "first"}, out.Flights)
	assert.Equal(t, WaterUse{ShowerMinutesPerDay: 8}, out.Water)
	assert.Equal(t, Electricity{MonthlyKWh: 200, Supplier: "ACME"}, out.Electricity)
	assert.Equal(t, -1.0, in.Food.Beef, "the receiver is not modified")
}

func TestWithDefaultSelectors(t *testing.T) {
	out := ActivityInput{}.WithDefaultSelectors()
	assert.Equal(t, ModeWalk, out.Commute.Mode)
	assert.Equal(t, ModeWalk, out.Weekend.Mode)
	assert.Equal(t, ClassEconomy, out.Flights.Class)
	assert.Equal(t, SupplierCLP, out.Electricity.Supplier)

	kept := ActivityInput{
		Commute:     Commute{Mode: "bicycle"},
		Electricity: Electricity{Supplier: SupplierHEC},
	}.WithDefaultSelectors()
	assert.Equal(t, TransportMode("bicycle"), kept.Commute.Mode)
	assert.Equal(t, SupplierHEC, kept.Electricity.Supplier)
}

func TestFromForm(t *testing.T) {
	form := url.Values{}
	form.Set(FieldPeriod, "7")
	form.Set(FieldRecycling, "0.8")
	form.Set(FieldBeef, "100")
	form.Set(FieldRice, "not a number")
	form.Set(FieldCommuteMode, " mtr ")
	form.Set(FieldCommuteDistance, "10")
	form.Set(FieldWorkDays, "5")
	form.Set(FieldWeekendMode, "taxi")
	form.Set(FieldWeekendTrips, "-2")
	form.Set(FieldFlightShort, "1")
	form.Set(FieldFlightClass, "business")
	form.Set(FieldClothingCotton, "0.5")
	form.Set(FieldPaper, "2")
	form.Set(FieldShowerTime, "10")
	form.Set(FieldLaundryFreq, "3")
	form.Set(FieldElectricity, "300")
	form.Set(FieldElectricitySource, "HEC")

	in := FromForm(form)

	assert.Equal(t, 7.0, in.PeriodDays)
	assert.Equal(t, 0.8, in.RecyclingFactor)
	assert.Equal(t, FoodIntake{Beef: 100}, in.Food)
	assert.Equal(t, Commute{Mode: ModeMTR, DistanceKm: 10, WorkDaysPerWeek: 5}, in.Commute)
	assert.Equal(t, WeekendTravel{Mode: ModeTaxi}, in.Weekend)
	assert.Equal(t, Flights{Short: 1, Class: ClassBusiness}, in.Flights)
	assert.Equal(t, Clothing{CottonKg: 0.5}, in.Clothing)
	assert.Equal(t, Household{PaperKg: 2}, in.Household)
	assert.Equal(t, WaterUse{ShowerMinutesPerDay: 10, LaundryLoadsPerWeek: 3}, in.Water)
	assert.Equal(t, Electricity{MonthlyKWh: 300, Supplier: SupplierHEC}, in.Electricity)
}

func TestFromFormEmpty(t *testing.T) {
	in := FromForm(url.Values{})
	assert.Equal(t, ActivityInput{}, in)
}
