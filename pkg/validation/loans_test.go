package validation

import (
	"strings"
	"testing"

	"github.com/paydown/paydown/pkg/amortize"
)

func TestValidateEarlyPayments(t *testing.T) {
	tests := []struct {
		name          string
		termMonths    int
		earlyPayments []amortize.EarlyPayment
		wantWarnings  int
		wantContains  string
	}{
		{
			name:       "valid events",
			termMonths: 60,
			earlyPayments: []amortize.EarlyPayment{
				{ID: "a", Kind: amortize.OneTime, Amount: 1000, StartPeriod: 5},
				{ID: "b", Kind: amortize.Recurring, Amount: 100, StartPeriod: 1, FrequencyMonths: 1},
			},
			wantWarnings: 0,
		},
		{
			name:       "invalid amount",
			termMonths: 60,
			earlyPayments: []amortize.EarlyPayment{
				{ID: "bad", Kind: amortize.OneTime, Amount: -50, StartPeriod: 5},
			},
			wantWarnings: 1,
			wantContains: "invalid and will be ignored",
		},
		{
			name:       "starts after term",
			termMonths: 60,
			earlyPayments: []amortize.EarlyPayment{
				{ID: "late", Kind: amortize.OneTime, Amount: 500, StartPeriod: 61},
			},
			wantWarnings: 1,
			wantContains: "after the 60-month term",
		},
		{
			name:          "no events",
			termMonths:    60,
			earlyPayments: nil,
			wantWarnings:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateEarlyPayments("Test Loan", tt.termMonths, tt.earlyPayments)
			if len(warnings) != tt.wantWarnings {
				t.Fatalf("ValidateEarlyPayments() returned %d warnings, expected %d: %v",
					len(warnings), tt.wantWarnings, warnings)
			}
			if tt.wantContains != "" && !strings.Contains(warnings[0], tt.wantContains) {
				t.Errorf("warning = %q, expected to contain %q", warnings[0], tt.wantContains)
			}
		})
	}
}

func TestValidateRateAdjustments(t *testing.T) {
	tests := []struct {
		name         string
		termMonths   int
		adjustments  []amortize.RateAdjustment
		wantWarnings int
		wantContains string
	}{
		{
			name:       "valid adjustment",
			termMonths: 120,
			adjustments: []amortize.RateAdjustment{
				{ID: "refi", EffectivePeriod: 25, NewAnnualRatePercent: 4.0},
			},
			wantWarnings: 0,
		},
		{
			name:       "invalid period",
			termMonths: 120,
			adjustments: []amortize.RateAdjustment{
				{ID: "bad", EffectivePeriod: 0, NewAnnualRatePercent: 4.0},
			},
			wantWarnings: 1,
			wantContains: "invalid and will be ignored",
		},
		{
			name:       "after term",
			termMonths: 120,
			adjustments: []amortize.RateAdjustment{
				{ID: "late", EffectivePeriod: 121, NewAnnualRatePercent: 4.0},
			},
			wantWarnings: 1,
			wantContains: "after the 120-month term",
		},
		{
			name:       "shared period",
			termMonths: 120,
			adjustments: []amortize.RateAdjustment{
				{ID: "first", EffectivePeriod: 13, NewAnnualRatePercent: 5.0},
				{ID: "second", EffectivePeriod: 13, NewAnnualRatePercent: 3.0},
			},
			wantWarnings: 1,
			wantContains: "share period 13",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateRateAdjustments("Test Loan", tt.termMonths, tt.adjustments)
			if len(warnings) != tt.wantWarnings {
				t.Fatalf("ValidateRateAdjustments() returned %d warnings, expected %d: %v",
					len(warnings), tt.wantWarnings, warnings)
			}
			if tt.wantContains != "" && !strings.Contains(warnings[0], tt.wantContains) {
				t.Errorf("warning = %q, expected to contain %q", warnings[0], tt.wantContains)
			}
		})
	}
}
