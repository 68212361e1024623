// Package optimizer runs the budget directives of a configuration: for each
// scenario with a budget it searches for the largest value of one activity
// quantity that keeps the scenario's total within the budget, then writes
// that value back into the scenario.
package optimizer

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/iwvelando/carbon-footprint/internal/config"
	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
	"github.com/iwvelando/carbon-footprint/pkg/mathutil"
	"github.com/iwvelando/carbon-footprint/pkg/optimization"
	"github.com/iwvelando/carbon-footprint/pkg/output"
)

// Runner applies the budget directives of one configuration.
type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
	calc   *footprint.Calculator
}

type budgetTarget struct {
	scenarioIndex int
	scenarioName  string
	budget        *config.BudgetConfig
	field         footprint.QuantityField
	input         footprint.ActivityInput
	original      float64
}

type evaluation struct {
	value       float64
	totalKg     float64
	totalGrams  float64
	budgetGrams float64
}

// Sub-totals never decrease as a quantity grows, so feasibility is monotonic
// in the searched value.
func (e evaluation) feasible() bool {
	return e.totalGrams <= e.budgetGrams
}

func (e evaluation) headroom(budgetKg float64) float64 {
	return mathutil.Round(budgetKg - e.totalKg)
}

// Result summarizes budget adjustments keyed by scenario name.
type Result struct {
	Summaries map[string]optimization.Summary
}

// Empty indicates whether any budget adjustments were produced.
func (r Result) Empty() bool {
	return len(r.Summaries) == 0
}

// Apply attaches budget summaries to the matching scenario results.
func (r Result) Apply(results []output.Result) {
	if len(r.Summaries) == 0 {
		return
	}
	for i := range results {
		summary, ok := r.Summaries[results[i].Name]
		if !ok {
			continue
		}
		results[i].Budget = &summary
	}
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration, calc *footprint.Calculator) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = footprint.NewCalculator(nil)
	}
	return &Runner{logger: logger, conf: conf, calc: calc}, nil
}

// Run executes all budget directives and mutates the configuration in place.
func (r *Runner) Run() (*Result, error) {
	targets, err := r.collectTargets()
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]optimization.Summary, len(targets))
	for _, target := range targets {
		summary, err := r.optimize(target)
		if err != nil {
			return nil, err
		}

		adjusted := target.input
		target.field.Set(&adjusted, summary.Value)
		if err := r.conf.Scenarios[target.scenarioIndex].SetSection(target.field.Category, adjusted); err != nil {
			return nil, err
		}
		summaries[target.scenarioName] = summary

		r.logger.Info("optimizer adjusted activity field",
			zap.String("op", "optimizer.Run"),
			zap.String("scenario", target.scenarioName),
			zap.String("field", summary.Field),
			zap.Float64("original", summary.Original),
			zap.Float64("optimized", summary.Value),
			zap.Float64("budgetKg", summary.BudgetKg),
			zap.Float64("totalKg", summary.TotalKg),
			zap.Float64("headroom", summary.Headroom),
			zap.Int("iterations", summary.Iterations),
			zap.Bool("converged", summary.Converged),
		)
	}

	return &Result{Summaries: summaries}, nil
}

func (r *Runner) collectTargets() ([]budgetTarget, error) {
	var targets []budgetTarget

	// Summaries are matched to results by name.
	active := make(map[string]int, len(r.conf.Scenarios))
	for _, scenario := range r.conf.Scenarios {
		if scenario.Active {
			active[scenario.Name]++
		}
	}

	for i := range r.conf.Scenarios {
		scenario := &r.conf.Scenarios[i]
		if !scenario.Active || scenario.Budget == nil {
			continue
		}
		if active[scenario.Name] > 1 {
			return nil, fmt.Errorf("scenario '%s': a budget needs a unique scenario name", scenario.Name)
		}
		if err := scenario.Budget.Validate(); err != nil {
			return nil, fmt.Errorf("scenario '%s': %w", scenario.Name, err)
		}
		field, _ := footprint.LookupQuantityField(scenario.Budget.Field)

		input, err := scenario.Activity(r.conf.Common)
		if err != nil {
			return nil, err
		}
		targets = append(targets, budgetTarget{
			scenarioIndex: i,
			scenarioName:  scenario.Name,
			budget:        scenario.Budget,
			field:         field,
			input:         input,
			original:      field.Get(input),
		})
	}

	return targets, nil
}

func (r *Runner) optimize(target budgetTarget) (optimization.Summary, error) {
	cfg := target.budget
	minVal := *cfg.Min
	maxVal := *cfg.Max

	summary := optimization.Summary{
		Scenario: target.scenarioName,
		Field:    target.field.Name,
		Original: target.original,
		BudgetKg: cfg.MaxKg,
	}
	finish := func(eval evaluation, iterations int) optimization.Summary {
		summary.Value = eval.value
		summary.TotalKg = eval.totalKg
		summary.Headroom = eval.headroom(cfg.MaxKg)
		summary.Iterations = iterations
		summary.Converged = eval.feasible()
		if !summary.Converged {
			summary.Notes = []string{fmt.Sprintf(
				"unable to stay within %.2f kg CO2e for %s between %s and %s",
				cfg.MaxKg, target.field.Name, formatValue(minVal), formatValue(maxVal),
			)}
		}
		return summary
	}

	lowerEval, err := r.evaluate(target, minVal)
	if err != nil {
		return optimization.Summary{}, err
	}
	if !lowerEval.feasible() {
		return finish(lowerEval, 0), nil
	}
	upperEval, err := r.evaluate(target, maxVal)
	if err != nil {
		return optimization.Summary{}, err
	}
	if upperEval.feasible() {
		return finish(upperEval, 0), nil
	}

	iterations := 0
	finalEval := lowerEval
	lower := lowerEval.value
	upper := upperEval.value
	for iterations < cfg.MaxIterations && !mathutil.WithinTolerance(upper, lower, cfg.Tolerance) {
		mid := lower + (upper-lower)/2
		evalMid, err := r.evaluate(target, mid)
		if err != nil {
			return optimization.Summary{}, err
		}
		iterations++
		if evalMid.feasible() {
			finalEval = evalMid
			if evalMid.value == lower {
				break
			}
			lower = evalMid.value
		} else {
			if evalMid.value == upper {
				break
			}
			upper = evalMid.value
		}
	}

	// Report a value at display precision that is still within budget.
	snapped := math.Max(minVal, math.Floor(finalEval.value*constants.DecimalPrecision)/constants.DecimalPrecision)
	if snapped != finalEval.value {
		if finalEval, err = r.evaluate(target, snapped); err != nil {
			return optimization.Summary{}, err
		}
	}
	return finish(finalEval, iterations), nil
}

func (r *Runner) evaluate(target budgetTarget, value float64) (evaluation, error) {
	in := target.input
	target.field.Set(&in, value)

	report, err := r.calc.Calculate(in)
	if err != nil {
		return evaluation{}, fmt.Errorf("budget for scenario '%s': %w", target.scenarioName, err)
	}
	return evaluation{
		value:       value,
		totalKg:     report.Breakdown.Total,
		totalGrams:  report.Breakdown.Grams.Total,
		budgetGrams: mathutil.KilogramsToGrams(target.budget.MaxKg),
	}, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
