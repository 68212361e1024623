// Package datetime converts reporting periods between day counts and the
// names used in configuration files and reports.
package datetime

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/carbon-footprint/pkg/constants"
)

// Named periods accepted by ParsePeriod.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var namedPeriods = map[string]float64{
	PeriodWeek:  constants.DaysPerWeek,
	PeriodMonth: constants.DaysPerMonth,
	PeriodYear:  constants.DaysPerYear,
}

// PeriodLabel returns a display label for a reporting period of days.
func PeriodLabel(days float64) string {
	switch days {
	case constants.DaysPerWeek:
		return "one week"
	case constants.DaysPerMonth:
		return "one month"
	case constants.DaysPerYear:
		return "one year"
	}
	if days == 1 {
		return "1 day"
	}
	return strconv.FormatFloat(days, 'f', -1, 64) + " days"
}

// ParsePeriod parses "week", "month", "year" or a plain number of days.
func ParsePeriod(s string) (float64, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if days, ok := namedPeriods[raw]; ok {
		return days, nil
	}
	num := strings.TrimSuffix(strings.TrimSuffix(raw, "days"), "d")
	days, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid period %q: expected week, month, year or a number of days", s)
	}
	if math.IsNaN(days) || math.IsInf(days, 0) || days <= 0 {
		return 0, fmt.Errorf("invalid period %q: must be a positive number of days", s)
	}
	return days, nil
}
