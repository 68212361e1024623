package adapters

import "github.com/iwvelando/carbon-footprint/internal/footprint"

// MapForm adapts a plain string map to footprint.FormValues, so key=value
// pairs from the command line can be read like a posted form.
type MapForm map[string]string

// Get returns the value for key, or "" when absent.
func (m MapForm) Get(key string) string {
	return m[key]
}

// ActivityFromMap builds an activity record from raw form fields.
func ActivityFromMap(fields map[string]string) footprint.ActivityInput {
	return footprint.FromForm(MapForm(fields))
}
