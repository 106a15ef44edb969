// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/paydown/paydown/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons and for display/storage boundaries;
// the schedule engine itself never rounds per period.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within currency tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ClampResidue treats balances within constants.BalanceEpsilon of zero (or
// below zero) as fully paid and returns zero; any other value is unchanged.
func ClampResidue(balance float64) float64 {
	if balance < constants.BalanceEpsilon {
		return 0
	}
	return balance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
