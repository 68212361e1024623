// Package footprint computes a personal carbon footprint from lifestyle
// activity and an emission factor table.
//
// The calculation is a single pure pass: each category calculator turns its
// slice of ActivityInput into grams of CO2e, the aggregator sums and scales the
// categories and converts them to kilograms, and the advisory generator
// thresholds the rounded kilogram values into recommendations.
package footprint

import (
	"fmt"

	"github.com/iwvelando/carbon-footprint/pkg/datetime"
	"github.com/iwvelando/carbon-footprint/pkg/mathutil"
)

// CategoryGrams holds unrounded emissions in grams CO2e.
type CategoryGrams struct {
	Food                  float64 `json:"food" yaml:"food"`
	Commute               float64 `json:"commute" yaml:"commute"`
	Weekend               float64 `json:"weekend" yaml:"weekend"`
	Flight                float64 `json:"flight" yaml:"flight"`
	Clothing              float64 `json:"clothing" yaml:"clothing"`
	Household             float64 `json:"household" yaml:"household"`
	Water                 float64 `json:"water" yaml:"water"`
	Electricity           float64 `json:"electricity" yaml:"electricity"`
	TotalBeforeMitigation float64 `json:"totalBeforeMitigation" yaml:"totalBeforeMitigation"`
	Total                 float64 `json:"total" yaml:"total"`
}

// finite reports the first category whose gram value is NaN or infinite.
func (g CategoryGrams) finite() (string, bool) {
	values := []struct {
		name  string
		grams float64
	}{
		{string(CategoryFood), g.Food},
		{string(CategoryCommute), g.Commute},
		{string(CategoryWeekend), g.Weekend},
		{string(CategoryFlight), g.Flight},
		{string(CategoryClothing), g.Clothing},
		{string(CategoryHousehold), g.Household},
		{string(CategoryWater), g.Water},
		{string(CategoryElectricity), g.Electricity},
		{"total", g.TotalBeforeMitigation},
		{"total", g.Total},
	}
	for _, v := range values {
		if !mathutil.IsFinite(v.grams) {
			return v.name, false
		}
	}
	return "", true
}

func (g CategoryGrams) sum() float64 {
	return g.Food + g.Commute + g.Weekend + g.Flight +
		g.Clothing + g.Household + g.Water + g.Electricity
}

// Breakdown is the per-category result in kilograms CO2e. Every kilogram
// value is rounded to two decimals on its own, so the rounded categories may
// not add up exactly to the rounded total.
type Breakdown struct {
	Food        float64 `json:"food" yaml:"food"`
	Commute     float64 `json:"commute" yaml:"commute"`
	Weekend     float64 `json:"weekend" yaml:"weekend"`
	Flight      float64 `json:"flight" yaml:"flight"`
	Clothing    float64 `json:"clothing" yaml:"clothing"`
	Household   float64 `json:"household" yaml:"household"`
	Water       float64 `json:"water" yaml:"water"`
	Electricity float64 `json:"electricity" yaml:"electricity"`

	// TotalBeforeMitigation is the category sum before the recycling factor.
	TotalBeforeMitigation float64 `json:"totalBeforeMitigation" yaml:"totalBeforeMitigation"`
	// Total is the category sum scaled by the recycling factor.
	Total           float64 `json:"total" yaml:"total"`
	RecyclingFactor float64 `json:"recyclingFactor" yaml:"recyclingFactor"`
	// Trees is the number of trees whose yearly absorption offsets Total.
	Trees int `json:"trees" yaml:"trees"`

	Grams CategoryGrams `json:"grams" yaml:"grams"`
}

// Value returns the rounded kilograms of one category, or 0 for a category
// that is not an emission source.
func (b Breakdown) Value(c Category) float64 {
	switch c {
	case CategoryFood:
		return b.Food
	case CategoryCommute:
		return b.Commute
	case CategoryWeekend:
		return b.Weekend
	case CategoryFlight:
		return b.Flight
	case CategoryClothing:
		return b.Clothing
	case CategoryHousehold:
		return b.Household
	case CategoryWater:
		return b.Water
	case CategoryElectricity:
		return b.Electricity
	default:
		return 0
	}
}

// Report is the full result of one calculation.
type Report struct {
	PeriodDays  float64   `json:"periodDays" yaml:"periodDays"`
	PeriodLabel string    `json:"periodLabel" yaml:"periodLabel"`
	Breakdown   Breakdown `json:"breakdown" yaml:"breakdown"`
	Advisory    Advisory  `json:"advisory" yaml:"advisory"`
	FactorTable TableInfo `json:"factorTable" yaml:"factorTable"`
}

// Calculate runs every category calculator, aggregates the result and derives
// the advisory. Any unknown selector or an out-of-range recycling factor fails
// the whole calculation and no partial report is returned, as do quantities
// large enough to overflow a total.
func (c *Calculator) Calculate(in ActivityInput) (Report, error) {
	factor := in.RecyclingFactor
	if !mathutil.IsFinite(factor) || factor < 0 || factor > 1 {
		return Report{}, fmt.Errorf("%w: %v is not within [0, 1]", ErrRecyclingFactorOutOfRange, factor)
	}

	in = in.Normalize()
	period := in.PeriodDays

	var (
		g   CategoryGrams
		err error
	)
	if g.Food, err = c.Food(in.Food, period); err != nil {
		return Report{}, err
	}
	if g.Commute, err = c.Commute(in.Commute, period); err != nil {
		return Report{}, err
	}
	if g.Weekend, err = c.Weekend(in.Weekend, period); err != nil {
		return Report{}, err
	}
	if g.Flight, err = c.Flight(in.Flights); err != nil {
		return Report{}, err
	}
	g.Clothing = c.Clothing(in.Clothing)
	g.Household = c.Household(in.Household)
	g.Water = c.Water(in.Water, period)
	if g.Electricity, err = c.Electricity(in.Electricity, period); err != nil {
		return Report{}, err
	}

	g.TotalBeforeMitigation = g.sum()
	g.Total = g.TotalBeforeMitigation * factor
	if name, ok := g.finite(); !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrTotalOutOfRange, name)
	}

	breakdown := Aggregate(g, factor, c.factors.TreeAbsorptionGrams())
	return Report{
		PeriodDays:  period,
		PeriodLabel: datetime.PeriodLabel(period),
		Breakdown:   breakdown,
		Advisory:    GenerateAdvisory(breakdown),
		FactorTable: c.factors.Info(),
	}, nil
}

// Aggregate converts gram totals to a rounded kilogram breakdown and derives
// the tree count from the unrounded total.
func Aggregate(g CategoryGrams, recyclingFactor, treeAbsorptionGrams float64) Breakdown {
	kg := func(grams float64) float64 {
		return mathutil.Round(mathutil.GramsToKilograms(grams))
	}
	return Breakdown{
		Food:                  kg(g.Food),
		Commute:               kg(g.Commute),
		Weekend:               kg(g.Weekend),
		Flight:                kg(g.Flight),
		Clothing:              kg(g.Clothing),
		Household:             kg(g.Household),
		Water:                 kg(g.Water),
		Electricity:           kg(g.Electricity),
		TotalBeforeMitigation: kg(g.TotalBeforeMitigation),
		Total:                 kg(g.Total),
		RecyclingFactor:       recyclingFactor,
		Trees: mathutil.CeilCount(
			mathutil.GramsToKilograms(g.Total),
			mathutil.GramsToKilograms(treeAbsorptionGrams),
		),
		Grams: g,
	}
}

// Calculate runs the default calculator over in.
func Calculate(in ActivityInput) (Report, error) {
	return NewCalculator(nil).Calculate(in)
}
