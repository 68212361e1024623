package footprint

import "strings"

// TransportMode selects a ground transport coefficient.
type TransportMode string

// Transport modes known to the factor table.
const (
	ModeMTR     TransportMode = "mtr"
	ModeBus     TransportMode = "bus"
	ModeMinibus TransportMode = "minibus"
	ModeTram    TransportMode = "tram"
	ModeTaxi    TransportMode = "taxi"
	ModeFerry   TransportMode = "ferry"
	ModeWalk    TransportMode = "walk"
)

// TransportModes lists every transport mode in display order.
func TransportModes() []TransportMode {
	return []TransportMode{ModeMTR, ModeBus, ModeMinibus, ModeTram, ModeTaxi, ModeFerry, ModeWalk}
}

// ParseTransportMode matches s case-insensitively against the known modes.
func ParseTransportMode(s string) (TransportMode, error) {
	mode := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case ModeMTR, ModeBus, ModeMinibus, ModeTram, ModeTaxi, ModeFerry, ModeWalk:
		return mode, nil
	default:
		return "", unknownKey("transport mode", s)
	}
}

// FlightBand is a flight distance bucket.
type FlightBand string

// Flight distance bands.
const (
	BandShort  FlightBand = "short"
	BandMedium FlightBand = "medium"
	BandLong   FlightBand = "long"
)

// FlightBands lists the bands in the order flights are summed.
func FlightBands() []FlightBand {
	return []FlightBand{BandShort, BandMedium, BandLong}
}

// ParseFlightBand matches s case-insensitively against the known bands.
func ParseFlightBand(s string) (FlightBand, error) {
	band := FlightBand(strings.ToLower(strings.TrimSpace(s)))
	switch band {
	case BandShort, BandMedium, BandLong:
		return band, nil
	default:
		return "", unknownKey("flight band", s)
	}
}

// CabinClass selects the per-seat flight coefficient.
type CabinClass string

// Cabin classes.
const (
	ClassEconomy  CabinClass = "economy"
	ClassBusiness CabinClass = "business"
)

// CabinClasses lists the known cabin classes.
func CabinClasses() []CabinClass {
	return []CabinClass{ClassEconomy, ClassBusiness}
}

// ParseCabinClass matches s case-insensitively against the known classes.
func ParseCabinClass(s string) (CabinClass, error) {
	class := CabinClass(strings.ToLower(strings.TrimSpace(s)))
	switch class {
	case ClassEconomy, ClassBusiness:
		return class, nil
	default:
		return "", unknownKey("cabin class", s)
	}
}

// Supplier is an electricity supplier with its own grid intensity.
type Supplier string

// Electricity suppliers.
const (
	// SupplierCLP is CLP Power.
	SupplierCLP Supplier = "CLP"
	// SupplierHEC is the Hongkong Electric Company.
	SupplierHEC Supplier = "HEC"
)

// Suppliers lists the known electricity suppliers.
func Suppliers() []Supplier {
	return []Supplier{SupplierCLP, SupplierHEC}
}

// ParseSupplier matches s case-insensitively against the known suppliers.
func ParseSupplier(s string) (Supplier, error) {
	supplier := Supplier(strings.ToUpper(strings.TrimSpace(s)))
	switch supplier {
	case SupplierCLP, SupplierHEC:
		return supplier, nil
	default:
		return "", unknownKey("electricity supplier", s)
	}
}

// FoodType is a food with its own per-gram coefficient.
type FoodType string

// Food types.
const (
	FoodBeef       FoodType = "beef"
	FoodPork       FoodType = "pork"
	FoodChicken    FoodType = "chicken"
	FoodFish       FoodType = "fish"
	FoodEgg        FoodType = "egg"
	FoodMilk       FoodType = "milk"
	FoodVegetables FoodType = "vegetables"
	FoodRice       FoodType = "rice"
)

// FoodTypes lists the food types in the order they are summed.
func FoodTypes() []FoodType {
	return []FoodType{FoodBeef, FoodPork, FoodChicken, FoodFish, FoodEgg, FoodMilk, FoodVegetables, FoodRice}
}

// ParseFoodType matches s case-insensitively against the known foods.
func ParseFoodType(s string) (FoodType, error) {
	food := FoodType(strings.ToLower(strings.TrimSpace(s)))
	switch food {
	case FoodBeef, FoodPork, FoodChicken, FoodFish, FoodEgg, FoodMilk, FoodVegetables, FoodRice:
		return food, nil
	default:
		return "", unknownKey("food type", s)
	}
}
