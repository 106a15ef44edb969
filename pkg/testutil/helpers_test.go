package testutil

import (
	"fmt"
	"testing"

	"github.com/paydown/paydown/internal/report"
)

func TestFindReport(t *testing.T) {
	results := []report.LoanReport{
		{
			Name:             "Mortgage",
			MonthlyPayment:   886.70,
			RemainingBalance: 170000.00,
		},
		{
			Name:             "Car Loan",
			MonthlyPayment:   493.95,
			RemainingBalance: 21000.00,
		},
		{
			Name:             "Another Loan",
			MonthlyPayment:   125.00,
			RemainingBalance: 4000.00,
		},
	}

	tests := []struct {
		name            string
		searchName      string
		expectFound     bool
		expectedPayment float64
	}{
		{
			name:            "Find existing mortgage",
			searchName:      "Mortgage",
			expectFound:     true,
			expectedPayment: 886.70,
		},
		{
			name:            "Find existing car loan",
			searchName:      "Car Loan",
			expectFound:     true,
			expectedPayment: 493.95,
		},
		{
			name:            "Find loan with longer name",
			searchName:      "Another Loan",
			expectFound:     true,
			expectedPayment: 125.00,
		},
		{
			name:        "Search for non-existent loan",
			searchName:  "Non-existent",
			expectFound: false,
		},
		{
			name:        "Empty search name",
			searchName:  "",
			expectFound: false,
		},
		{
			name:        "Case sensitive search",
			searchName:  "mortgage", // lowercase
			expectFound: false,
		},
		{
			name:        "Partial name match",
			searchName:  "Car", // partial
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindReport(results, tt.searchName)

			if tt.expectFound {
				if result == nil {
					t.Errorf("expected to find report %q but got nil", tt.searchName)
					return
				}
				if result.Name != tt.searchName {
					t.Errorf("expected report name %q, got %q", tt.searchName, result.Name)
				}
				if result.MonthlyPayment != tt.expectedPayment {
					t.Errorf("expected payment %.2f, got %.2f", tt.expectedPayment, result.MonthlyPayment)
				}
			} else {
				if result != nil {
					t.Errorf("expected nil for %q but found report %q", tt.searchName, result.Name)
				}
			}
		})
	}
}

func TestFindReportEmptySlice(t *testing.T) {
	if result := FindReport([]report.LoanReport{}, "Any"); result != nil {
		t.Errorf("expected nil for empty results, got %v", result)
	}
	if result := FindReport(nil, "Any"); result != nil {
		t.Errorf("expected nil for nil results, got %v", result)
	}
}

func TestFindReportReturnsPointerIntoSlice(t *testing.T) {
	results := []report.LoanReport{
		{Name: "Mortgage", MonthlyPayment: 886.70},
	}

	found := FindReport(results, "Mortgage")
	if found == nil {
		t.Fatal("expected to find report")
	}

	found.MonthlyPayment = 900.00
	if results[0].MonthlyPayment != 900.00 {
		t.Errorf("expected pointer into the slice, got %s", fmt.Sprintf("%.2f", results[0].MonthlyPayment))
	}
}
