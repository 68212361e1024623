package footprint

import "strings"

// QuantityField addresses one numeric activity field by its form field name,
// e.g. "beef" or "commuteDistance".
type QuantityField struct {
	Name     string
	Category Category
	ref      func(*ActivityInput) *float64
}

// Get returns the field's value in in.
func (q QuantityField) Get(in ActivityInput) float64 {
	return *q.ref(&in)
}

// Set stores v in the field of in.
func (q QuantityField) Set(in *ActivityInput, v float64) {
	*q.ref(in) = v
}

var quantityFields = []QuantityField{
	{FieldBeef, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Beef }},
	{FieldPork, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Pork }},
	{FieldChicken, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Chicken }},
	{FieldFish, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Fish }},
	{FieldEgg, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Egg }},
	{FieldMilk, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Milk }},
	{FieldVegetables, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Vegetables }},
	{FieldRice, CategoryFood, func(in *ActivityInput) *float64 { return &in.Food.Rice }},
	{FieldCommuteDistance, CategoryCommute, func(in *ActivityInput) *float64 { return &in.Commute.DistanceKm }},
	{FieldWorkDays, CategoryCommute, func(in *ActivityInput) *float64 { return &in.Commute.WorkDaysPerWeek }},
	{FieldWeekendDistance, CategoryWeekend, func(in *ActivityInput) *float64 { return &in.Weekend.DistanceKm }},
	{FieldWeekendTrips, CategoryWeekend, func(in *ActivityInput) *float64 { return &in.Weekend.TripsPerWeek }},
	{FieldFlightShort, CategoryFlight, func(in *ActivityInput) *float64 { return &in.Flights.Short }},
	{FieldFlightMedium, CategoryFlight, func(in *ActivityInput) *float64 { return &in.Flights.Medium }},
	{FieldFlightLong, CategoryFlight, func(in *ActivityInput) *float64 { return &in.Flights.Long }},
	{FieldClothingCotton, CategoryClothing, func(in *ActivityInput) *float64 { return &in.Clothing.CottonKg }},
	{FieldClothingSynthetic, CategoryClothing, func(in *ActivityInput) *float64 { return &in.Clothing.SyntheticKg }},
	{FieldPaper, CategoryHousehold, func(in *ActivityInput) *float64 { return &in.Household.PaperKg }},
	{FieldPlastic, CategoryHousehold, func(in *ActivityInput) *float64 { return &in.Household.PlasticKg }},
	{FieldShowerTime, CategoryWater, func(in *ActivityInput) *float64 { return &in.Water.ShowerMinutesPerDay }},
	{FieldLaundryFreq, CategoryWater, func(in *ActivityInput) *float64 { return &in.Water.LaundryLoadsPerWeek }},
	{FieldElectricity, CategoryElectricity, func(in *ActivityInput) *float64 { return &in.Electricity.MonthlyKWh }},
}

// QuantityFields lists every addressable quantity in form order.
func QuantityFields() []QuantityField {
	out := make([]QuantityField, len(quantityFields))
	copy(out, quantityFields)
	return out
}

// LookupQuantityField finds a quantity by form field name, ignoring case.
func LookupQuantityField(name string) (QuantityField, bool) {
	name = strings.TrimSpace(name)
	for _, q := range quantityFields {
		if strings.EqualFold(q.Name, name) {
			return q, true
		}
	}
	return QuantityField{}, false
}
