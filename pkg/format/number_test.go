package format

import (
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Zero", value: 0, expected: "0.00"},
		{name: "Small", value: 3.34, expected: "3.34"},
		{name: "Rounds to cents", value: 18.6708, expected: "18.67"},
		{name: "Thousands", value: 1234.5, expected: "1,234.50"},
		{name: "Millions", value: 1234567.891, expected: "1,234,567.89"},
		{name: "Negative", value: -1234.56, expected: "-1,234.56"},
		{name: "NaN", value: math.NaN(), expected: "0.00"},
		{name: "Infinity", value: math.Inf(1), expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.value); got != tt.expected {
				t.Errorf("Number(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestKilograms(t *testing.T) {
	if got := Kilograms(2048.1); got != "2,048.10 kg CO2e" {
		t.Errorf("Kilograms() = %q", got)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{n: 0, expected: "0"},
		{n: 23, expected: "23"},
		{n: 18248, expected: "18,248"},
	}
	for _, tt := range tests {
		if got := Count(tt.n); got != tt.expected {
			t.Errorf("Count(%d) = %q, expected %q", tt.n, got, tt.expected)
		}
	}
}
