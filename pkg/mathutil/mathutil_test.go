package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Beef week in kilograms", 18.670820, 18.67},
		{"MTR month in kilograms", 3.342857, 3.34},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Large number", 12345.678, 12345.68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGramsToKilograms(t *testing.T) {
	if got := GramsToKilograms(18670.82); math.Abs(got-18.67082) > 1e-9 {
		t.Errorf("GramsToKilograms(18670.82) = %v, expected 18.67082", got)
	}
	if got := KilogramsToGrams(0.1); math.Abs(got-100) > 1e-9 {
		t.Errorf("KilogramsToGrams(0.1) = %v, expected 100", got)
	}
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Positive passes through", 12.5, 12.5},
		{"Zero passes through", 0, 0},
		{"Negative clamps to zero", -3, 0},
		{"NaN clamps to zero", math.NaN(), 0},
		{"Positive infinity clamps to zero", math.Inf(1), 0},
		{"Negative infinity clamps to zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NonNegative(tt.input); got != tt.expected {
				t.Errorf("NonNegative(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCeilCount(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     float64
		expected int
	}{
		{"Zero value", 0, 23, 0},
		{"Negative value", -5, 23, 0},
		{"Below one unit", 18.67, 23, 1},
		{"Exactly one unit", 23, 23, 1},
		{"Just above one unit", 23.01, 23, 2},
		{"Many units", 1000, 23, 44},
		{"Zero unit", 10, 0, 0},
		{"Saturates beyond int range", 1e300, 23, math.MaxInt},
		{"Infinite value", math.Inf(1), 23, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CeilCount(tt.value, tt.unit); got != tt.expected {
				t.Errorf("CeilCount(%v, %v) = %d, expected %d", tt.value, tt.unit, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Zero tolerance exact match", 1.0, 1.0, 0.0, true},
		{"Zero tolerance no match", 1.0, 1.001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(25, 100); got != 25 {
		t.Errorf("CalculatePercentage(25, 100) = %v, expected 25", got)
	}
	if got := CalculatePercentage(25, 0); got != 0 {
		t.Errorf("CalculatePercentage(25, 0) = %v, expected 0", got)
	}
}
