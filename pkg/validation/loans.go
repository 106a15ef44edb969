// Package validation provides loan configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/paydown/paydown/pkg/amortize"
)

// ValidateEarlyPayments returns warnings for early payment events that are
// malformed or can never apply within the loan's term.
func ValidateEarlyPayments(loanName string, termMonths int, earlyPayments []amortize.EarlyPayment) []string {
	var warnings []string

	for _, event := range earlyPayments {
		if err := event.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' early payment '%s' is invalid and will be ignored: %v",
				loanName, event.ID, err))
			continue
		}
		if event.StartPeriod > termMonths {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' early payment '%s' starts at period %d, after the %d-month term",
				loanName, event.ID, event.StartPeriod, termMonths))
		}
	}

	return warnings
}

// ValidateRateAdjustments returns warnings for rate adjustment events that
// are malformed or take effect after the loan's term ends. Adjustments that
// share an effective period are also flagged since only the last one applies.
func ValidateRateAdjustments(loanName string, termMonths int, adjustments []amortize.RateAdjustment) []string {
	var warnings []string

	seen := make(map[int]string)
	for _, adjustment := range adjustments {
		if err := adjustment.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' rate adjustment '%s' is invalid and will be ignored: %v",
				loanName, adjustment.ID, err))
			continue
		}
		if adjustment.EffectivePeriod > termMonths {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' rate adjustment '%s' takes effect at period %d, after the %d-month term",
				loanName, adjustment.ID, adjustment.EffectivePeriod, termMonths))
		}
		if previous, exists := seen[adjustment.EffectivePeriod]; exists {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' rate adjustments '%s' and '%s' share period %d; the later one wins",
				loanName, previous, adjustment.ID, adjustment.EffectivePeriod))
		}
		seen[adjustment.EffectivePeriod] = adjustment.ID
	}

	return warnings
}
