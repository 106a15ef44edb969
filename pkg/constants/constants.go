// Package constants provides shared constants for the paydown application.
package constants

// DateTimeLayout is the month format expected in config files and is also the
// output date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// BalanceEpsilon is the threshold below which a remaining balance is
	// treated as floating-point residue and clamped to zero. It sits well
	// under a cent so genuine sub-dollar balances survive to the next period.
	BalanceEpsilon = 1e-6
)

// Term unit constants
const (
	// TermUnitMonths marks a term entered directly in months
	TermUnitMonths = "months"

	// TermUnitYears marks a term entered in years (converted once, at load)
	TermUnitYears = "years"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultStoreFile is the default SQLite database file name
	DefaultStoreFile = "paydown.db"
)

// Planner defaults
const (
	// PlannerTolerance is the bisection convergence tolerance in dollars
	PlannerTolerance = 0.01

	// PlannerMaxIterations bounds the bisection search
	PlannerMaxIterations = 64
)
