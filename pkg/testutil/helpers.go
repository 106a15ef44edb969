// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/paydown/paydown/internal/report"
)

// FindReport finds a loan report by name in the results slice.
// Returns a pointer to the report if found, nil otherwise.
func FindReport(results []report.LoanReport, name string) *report.LoanReport {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
