package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectors(t *testing.T) {
	t.Run("Transport modes", func(t *testing.T) {
		for _, mode := range TransportModes() {
			got, err := ParseTransportMode(string(mode))
			require.NoError(t, err)
			assert.Equal(t, mode, got)
		}
		got, err := ParseTransportMode(" Minibus ")
		require.NoError(t, err)
		assert.Equal(t, ModeMinibus, got)
	})

	t.Run("Cabin classes", func(t *testing.T) {
		got, err := ParseCabinClass("ECONOMY")
		require.NoError(t, err)
		assert.Equal(t, ClassEconomy, got)
		assert.Len(t, CabinClasses(), 2)
	})

	t.Run("Suppliers are upper-cased", func(t *testing.T) {
		got, err := ParseSupplier("clp")
		require.NoError(t, err)
		assert.Equal(t, SupplierCLP, got)
		assert.Len(t, Suppliers(), 2)
	})

	t.Run("Flight bands and foods", func(t *testing.T) {
		assert.Equal(t, []FlightBand{BandShort, BandMedium, BandLong}, FlightBands())
		for _, food := range FoodTypes() {
			got, err := ParseFoodType(string(food))
			require.NoError(t, err)
			assert.Equal(t, food, got)
		}
	})
}

func TestParseSelectorsRejectUnknown(t *testing.T) {
	tests := []struct {
		name     string
		parse    func() error
		selector string
	}{
		{"bicycle", func() error { _, err := ParseTransportMode("bicycle"); return err }, "transport mode"},
		{"empty mode", func() error { _, err := ParseTransportMode(""); return err }, "transport mode"},
		{"first class", func() error { _, err := ParseCabinClass("first"); return err }, "cabin class"},
		{"unknown supplier", func() error { _, err := ParseSupplier("ACME"); return err }, "electricity supplier"},
		{"unknown band", func() error { _, err := ParseFlightBand("orbital"); return err }, "flight band"},
		{"unknown food", func() error { _, err := ParseFoodType("tofu"); return err }, "food type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			require.ErrorIs(t, err, ErrUnknownCategoryKey)
			var keyErr *KeyError
			require.ErrorAs(t, err, &keyErr)
			assert.Equal(t, tt.selector, keyErr.Selector)
		})
	}
}
