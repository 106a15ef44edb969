package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paydown/paydown/internal/config"
	"github.com/paydown/paydown/internal/report"
	"github.com/paydown/paydown/internal/store"
	"github.com/paydown/paydown/pkg/constants"
	"github.com/paydown/paydown/pkg/datetime"
	"github.com/paydown/paydown/pkg/output"
	"github.com/paydown/paydown/pkg/planner"
	"github.com/paydown/paydown/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	asOfFlag := flag.String("as-of", "", "progress date override in YYYY-MM format (defaults to the current month)")
	loanName := flag.String("loan", "", "restrict output to the loan with this name")
	showSchedulesFlag := flag.Bool("schedule", false, "print the amortization schedule for each loan")
	showBaselinesFlag := flag.Bool("baseline", false, "print the baseline schedule (no early payments) for each loan")
	targetMonths := flag.Int("target", 0, "payoff target in months; computes the extra monthly payment needed to meet it")
	storePathFlag := flag.String("store", "", "path override for the SQLite store")
	noStore := flag.Bool("no-store", false, "skip persisting loan summaries to the store")
	exportPath := flag.String("export", "", "write loan summaries to this YAML file")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Mint ids for loans and events that lack them so store rows stay stable
	// across runs.
	conf.EnsureIDs()

	// Resolve the as-of date (CLI override takes precedence over config).
	asOfValue := *asOfFlag
	if asOfValue == "" {
		asOfValue = conf.AsOfDate
	}
	if asOfValue == "" {
		asOfValue = time.Now().Format(constants.DateTimeLayout)
	}
	asOf, err := datetime.ParseMonth(asOfValue)
	if err != nil {
		logger.Fatal("failed to parse as-of date",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Build the amortization reports for all loans.
	reports, err := report.Build(logger, conf, asOf)
	if err != nil {
		logger.Fatal("failed to build loan reports",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	specsByID := make(map[string]config.LoanSpec, len(conf.Loans))
	for _, loan := range conf.Loans {
		specsByID[loan.ID] = loan
	}

	// Persist every computed loan before any output filtering.
	if !*noStore && !conf.Storage.Disabled {
		location := conf.StorageFile()
		if *storePathFlag != "" {
			location = *storePathFlag
		}
		if err := persistReports(logger, location, specsByID, reports); err != nil {
			logger.Fatal("failed to persist loan summaries",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if *loanName != "" {
		var filtered []report.LoanReport
		for _, r := range reports {
			if r.Name == *loanName {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			logger.Fatal(fmt.Sprintf("no loan named %s in configuration", *loanName),
				zap.String("op", "main"),
			)
		}
		reports = filtered
	}

	if *exportPath != "" {
		if err := output.YamlExport(*exportPath, reports); err != nil {
			logger.Fatal("failed to export loan summaries",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Compute payoff plans when a target was requested.
	plans := make(map[string]planner.Plan)
	if *targetMonths > 0 {
		p := planner.NewPlanner(logger)
		for _, r := range reports {
			spec := specsByID[r.LoanID]
			plan, err := p.ExtraPaymentForTarget(r.Parameters, spec.RateAdjustmentEvents(), *targetMonths)
			if err != nil {
				logger.Fatal(fmt.Sprintf("failed to compute payoff plan for loan %s", r.Name),
					zap.String("op", "main"),
					zap.Error(err),
				)
			}
			plans[r.LoanID] = plan
		}
	}

	showSchedules := *showSchedulesFlag || conf.Output.ShowSchedules
	showBaselines := *showBaselinesFlag || conf.Output.ShowBaselines

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(reports)
		for _, r := range reports {
			if plan, ok := plans[r.LoanID]; ok {
				fmt.Printf("\n")
				output.PrettyPlan(r.Name, plan)
			}
			if showSchedules {
				fmt.Printf("\n")
				output.PrettySchedule(r.Name, r.Schedule)
			}
			if showBaselines {
				fmt.Printf("\n")
				output.PrettySchedule(r.Name+" (baseline)", r.Baseline)
			}
		}
	case constants.OutputFormatCSV:
		output.CsvFormat(reports)
		for _, r := range reports {
			if plan, ok := plans[r.LoanID]; ok {
				output.CsvPlan(r.Name, plan)
			}
			if showSchedules {
				output.CsvSchedule(r.Name, r.Schedule)
			}
			if showBaselines {
				output.CsvSchedule(r.Name+" (baseline)", r.Baseline)
			}
		}
	}

}

// persistReports caches each loan's definition and computed summary in the
// SQLite store so later runs can be compared against this one.
func persistReports(logger *zap.Logger, location string, specsByID map[string]config.LoanSpec, reports []report.LoanReport) error {
	st, err := store.Open(location, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = st.Close()
	}()

	for _, r := range reports {
		spec, ok := specsByID[r.LoanID]
		if !ok {
			continue
		}
		record := store.LoanRecord{
			Spec: spec,
			Summary: store.Summary{
				MonthlyPayment:   r.MonthlyPayment,
				TotalPayment:     r.Savings.ActualTotalPayment,
				TotalInterest:    r.Savings.TotalInterest,
				InterestSaved:    r.Savings.InterestSaved,
				PeriodsShortened: r.Savings.PeriodsShortened,
				PayoffDate:       datetime.FormatMonth(r.Savings.PayoffDate),
				RemainingBalance: r.RemainingBalance,
			},
		}
		if err := st.SaveLoan(record); err != nil {
			return err
		}
	}
	return nil
}
