// Package report computes the footprint of every active scenario in a
// configuration.
package report

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iwvelando/carbon-footprint/internal/config"
	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/pkg/output"
)

// Generate calculates one report per active scenario, in configuration order.
// Scenarios are calculated concurrently; the first failure is returned and no
// results are.
func Generate(logger *zap.Logger, conf *config.Configuration, calc *footprint.Calculator) ([]output.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = footprint.NewCalculator(nil)
	}

	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "report.Generate"),
			)
		}
	}

	scenarios, err := conf.ActiveScenarios()
	if err != nil {
		return nil, err
	}

	results := make([]output.Result, len(scenarios))
	var g errgroup.Group
	for i, scenario := range scenarios {
		g.Go(func() error {
			rep, err := calc.Calculate(scenario.Input)
			if err != nil {
				return fmt.Errorf("scenario '%s': %w", scenario.Name, err)
			}
			results[i] = output.Result{Name: scenario.Name, Report: rep}
			logger.Debug("calculated scenario",
				zap.String("op", "report.Generate"),
				zap.String("scenario", scenario.Name),
				zap.Float64("totalKg", rep.Breakdown.Total),
				zap.Int("trees", rep.Breakdown.Trees),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
