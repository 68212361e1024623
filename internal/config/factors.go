package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/iwvelando/carbon-footprint/internal/footprint"
)

// LoadFactors returns the factor table selected by the configuration.
func (c *Configuration) LoadFactors(logger *zap.Logger) (*footprint.EmissionFactors, error) {
	return c.Factors.Load(logger)
}

// Load returns the override table when File is set, otherwise the embedded
// table. Either way the table must satisfy VersionConstraint.
func (f FactorsConfig) Load(logger *zap.Logger) (*footprint.EmissionFactors, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if f.File == "" {
		table := footprint.DefaultFactors()
		if err := table.Satisfies(f.VersionConstraint); err != nil {
			return nil, err
		}
		return table, nil
	}

	file, err := os.Open(f.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open factor table %s: %w", f.File, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("failed to close factor table",
				zap.String("op", "config.LoadFactors"),
				zap.String("file", f.File),
				zap.Error(closeErr),
			)
		}
	}()

	table, err := footprint.LoadFactorsWithConstraint(file, f.VersionConstraint)
	if err != nil {
		return nil, fmt.Errorf("factor table %s: %w", f.File, err)
	}

	info := table.Info()
	logger.Debug("loaded factor table",
		zap.String("op", "config.LoadFactors"),
		zap.String("file", f.File),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
	)
	return table, nil
}
