package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/iwvelando/carbon-footprint/internal/config"
	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/internal/optimizer"
	"github.com/iwvelando/carbon-footprint/internal/report"
	"github.com/iwvelando/carbon-footprint/internal/server"
	"github.com/iwvelando/carbon-footprint/pkg/adapters"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
	"github.com/iwvelando/carbon-footprint/pkg/output"
	"github.com/iwvelando/carbon-footprint/pkg/validation"
)

// formScenarioName names the single result computed from --form fields.
const formScenarioName = "form"

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd(ver string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "carbon-footprint",
		Short:         "Personal carbon footprint calculator",
		Long:          "carbon-footprint estimates the CO2e emitted by everyday activities over a period and suggests where to cut back.",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newCalculateCmd(&logLevel),
		newServeCmd(&logLevel, ver),
		newFactorsCmd(&logLevel),
		newVersionCmd(ver),
	)
	return cmd
}

func newCalculateCmd(logLevel *string) *cobra.Command {
	var (
		configLocation string
		outputFormat   string
		lang           string
		form           map[string]string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the footprint of every scenario in a configuration file",
		Example: `  carbon-footprint calculate --config config.yaml
  carbon-footprint calculate --output-format csv
  carbon-footprint calculate --form beef=100 --form period=7 --lang zh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadCalculateConfig(configLocation, cmd.Flags().Changed("config"), len(form) > 0)
			if err != nil {
				return err
			}

			logger, err := initializeLogger(conf.Logging, *logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			// CLI overrides take precedence over config
			format := conf.Output.Format
			if outputFormat != "" {
				format = outputFormat
			}
			if format == "" {
				format = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(format); err != nil {
				logger.Error(err.Error(), zap.String("op", "main.calculate"))
				return err
			}
			if lang == "" {
				lang = conf.Output.Language
			}

			factors, err := conf.LoadFactors(logger)
			if err != nil {
				logger.Error("failed to load factor table",
					zap.String("op", "main.calculate"),
					zap.Error(err),
				)
				return err
			}
			calc := footprint.NewCalculator(factors)

			var results []output.Result
			if len(form) > 0 {
				results, err = calculateForm(calc, form)
			} else {
				for _, warning := range conf.ValidateConfiguration() {
					logger.Warn("Configuration warning: "+warning,
						zap.String("op", "main.calculate"),
					)
				}
				results, err = calculateScenarios(logger, conf, calc)
			}
			if err != nil {
				logger.Error("failed to compute footprint",
					zap.String("op", "main.calculate"),
					zap.Error(err),
				)
				return err
			}

			out := cmd.OutOrStdout()
			return output.Write(out, format, results, output.PrettyOptions{
				Language: footprint.ParseLanguage(lang),
				Styled:   isTerminal(out),
			})
		},
	}

	cmd.Flags().StringVar(&configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv, json, yaml")
	cmd.Flags().StringVar(&lang, "lang", "", "label language override, e.g. en or zh")
	cmd.Flags().StringToStringVar(&form, "form", nil, "calculate a single activity from form fields (key=value) instead of the config scenarios")
	return cmd
}

// loadCalculateConfig loads the configuration file. With form fields the
// default file is optional, since it only supplies logging, output and
// factor settings.
func loadCalculateConfig(path string, explicit, fromForm bool) (*config.Configuration, error) {
	if fromForm && !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return &config.Configuration{}, nil
		}
	}
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
	}
	return conf, nil
}

// calculateScenarios runs the budget directives, which adjust their
// scenarios, and then reports every active scenario.
func calculateScenarios(logger *zap.Logger, conf *config.Configuration, calc *footprint.Calculator) ([]output.Result, error) {
	runner, err := optimizer.NewRunner(logger, conf, calc)
	if err != nil {
		return nil, err
	}
	budgets, err := runner.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run budget directives: %w", err)
	}

	results, err := report.Generate(logger, conf, calc)
	if err != nil {
		return nil, err
	}
	budgets.Apply(results)
	return results, nil
}

// calculateForm computes one report from raw form fields. Omitted period and
// recycling factor take their defaults, as for a posted form.
func calculateForm(calc *footprint.Calculator, form map[string]string) ([]output.Result, error) {
	input := adapters.ActivityFromMap(form).WithDefaultSelectors()
	if _, ok := form[footprint.FieldPeriod]; !ok {
		input.PeriodDays = constants.DefaultPeriodDays
	}
	if _, ok := form[footprint.FieldRecycling]; !ok {
		input.RecyclingFactor = constants.DefaultRecyclingFactor
	}

	rep, err := calc.Calculate(input)
	if err != nil {
		return nil, err
	}
	return []output.Result{{Name: formScenarioName, Report: rep}}, nil
}

func newServeCmd(logLevel *string, ver string) *cobra.Command {
	var (
		serverConfig string
		address      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := server.LoadConfig(serverConfig)
			if err != nil {
				return fmt.Errorf("failed to load server configuration at %s: %w", serverConfig, err)
			}
			if address != "" {
				cfg.Address = address
			}

			logger, err := initializeLogger(cfg.Logging, *logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx, logger, cfg, ver); err != nil {
				logger.Error("server stopped",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	return cmd
}

func newFactorsCmd(logLevel *string) *cobra.Command {
	var (
		factorsConfig config.FactorsConfig
		outputFormat  string
	)

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Print the emission factor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := initializeLogger(config.LoggingConfig{}, *logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			factors, err := factorsConfig.Load(logger)
			if err != nil {
				return err
			}
			return output.FactorsFormat(cmd.OutOrStdout(), outputFormat, factors)
		},
	}

	cmd.Flags().StringVar(&factorsConfig.File, "factors-file", "", "YAML factor table to print instead of the embedded one")
	cmd.Flags().StringVar(&factorsConfig.VersionConstraint, "version-constraint", "", "semver constraint the table must satisfy, e.g. \">= 2024.1.0\"")
	cmd.Flags().StringVar(&outputFormat, "output-format", constants.OutputFormatYAML, "yaml or json")
	return cmd
}

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and the embedded factor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := footprint.DefaultFactors().Info()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "carbon-footprint %s\nfactor table %s %s\n", ver, info.Name, info.Version)
			return err
		},
	}
}
