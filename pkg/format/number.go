// Package format renders emission quantities for display.
package format

import (
	"math"

	"github.com/iwvelando/carbon-footprint/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Number returns value with two decimals and thousands separators
// (e.g., "-1,234.56").
func Number(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.00"
	}
	return printer.Sprint(number.Decimal(mathutil.Round(value), number.Scale(2)))
}

// Kilograms returns value as kilograms of CO2e (e.g., "1,234.56 kg CO2e").
func Kilograms(value float64) string {
	return Number(value) + " kg CO2e"
}

// Count returns an integer with thousands separators.
func Count(n int) string {
	return printer.Sprint(number.Decimal(n))
}
