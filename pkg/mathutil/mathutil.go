// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/carbon-footprint/pkg/constants"
)

// Round rounds a value to two decimals, the precision reports are displayed at.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// GramsToKilograms converts grams of CO2e to kilograms.
func GramsToKilograms(grams float64) float64 {
	return grams / constants.GramsPerKilogram
}

// KilogramsToGrams converts kilograms to grams.
func KilogramsToGrams(kg float64) float64 {
	return kg * constants.GramsPerKilogram
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// NonNegative returns val, or 0 when val is negative or not finite.
func NonNegative(val float64) float64 {
	if !IsFinite(val) || val < 0 {
		return 0
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CeilCount returns the smallest integer not less than value/unit. A zero or
// negative value yields 0, and a count beyond the int range saturates at
// math.MaxInt.
func CeilCount(value, unit float64) int {
	if !IsFinite(value) || value <= 0 || unit <= 0 {
		return 0
	}
	count := math.Ceil(value / unit)
	if count >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(count)
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * 100
}
