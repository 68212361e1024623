package footprint

import "strings"

// Form field names accepted by FromForm. They match the field ids of the web
// calculator form so existing front ends can post unchanged.
const (
	FieldPeriod            = "period"
	FieldRecycling         = "recycling"
	FieldBeef              = "beef"
	FieldPork              = "pork"
	FieldChicken           = "chicken"
	FieldFish              = "fish"
	FieldEgg               = "egg"
	FieldMilk              = "milk"
	FieldVegetables        = "vegetables"
	FieldRice              = "rice"
	FieldCommuteMode       = "commuteMode"
	FieldCommuteDistance   = "commuteDistance"
	FieldWorkDays          = "workDays"
	FieldWeekendMode       = "weekendMode"
	FieldWeekendDistance   = "weekendDistance"
	FieldWeekendTrips      = "weekendTrips"
	FieldFlightShort       = "flightShort"
	FieldFlightMedium      = "flightMedium"
	FieldFlightLong        = "flightLong"
	FieldFlightClass       = "flightClass"
	FieldClothingCotton    = "clothingCotton"
	FieldClothingSynthetic = "clothingSynthetic"
	FieldPaper             = "paper"
	FieldPlastic           = "plastic"
	FieldShowerTime        = "showerTime"
	FieldLaundryFreq       = "laundryFreq"
	FieldElectricity       = "electricity"
	FieldElectricitySource = "electricitySource"
)

// FormValues is satisfied by url.Values.
type FormValues interface {
	Get(key string) string
}

// FromForm builds an ActivityInput from raw form strings. Every numeric field
// goes through ParseOrDefault, so malformed numbers read as zero. Selector
// strings are passed through trimmed and are checked by Calculate.
func FromForm(form FormValues) ActivityInput {
	num := func(field string) float64 {
		return ParseOrDefault(form.Get(field))
	}
	sel := func(field string) string {
		return strings.TrimSpace(form.Get(field))
	}

	return ActivityInput{
		PeriodDays:      num(FieldPeriod),
		RecyclingFactor: num(FieldRecycling),
		Food: FoodIntake{
			Beef:       num(FieldBeef),
			Pork:       num(FieldPork),
			Chicken:    num(FieldChicken),
			Fish:       num(FieldFish),
			Egg:        num(FieldEgg),
			Milk:       num(FieldMilk),
			Vegetables: num(FieldVegetables),
			Rice:       num(FieldRice),
		},
		Commute: Commute{
			Mode:            TransportMode(sel(FieldCommuteMode)),
			DistanceKm:      num(FieldCommuteDistance),
			WorkDaysPerWeek: num(FieldWorkDays),
		},
		Weekend: WeekendTravel{
			Mode:         TransportMode(sel(FieldWeekendMode)),
			DistanceKm:   num(FieldWeekendDistance),
			TripsPerWeek: num(FieldWeekendTrips),
		},
		Flights: Flights{
			Short:  num(FieldFlightShort),
			Medium: num(FieldFlightMedium),
			Long:   num(FieldFlightLong),
			Class:  CabinClass(sel(FieldFlightClass)),
		},
		Clothing: Clothing{
			CottonKg:    num(FieldClothingCotton),
			SyntheticKg: num(FieldClothingSynthetic),
		},
		Household: Household{
			PaperKg:   num(FieldPaper),
			PlasticKg: num(FieldPlastic),
		},
		Water: WaterUse{
			ShowerMinutesPerDay: num(FieldShowerTime),
			LaundryLoadsPerWeek: num(FieldLaundryFreq),
		},
		Electricity: Electricity{
			MonthlyKWh: num(FieldElectricity),
			Supplier:   Supplier(sel(FieldElectricitySource)),
		},
	}
}
