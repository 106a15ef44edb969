// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/paydown/paydown/pkg/amortize"
	"github.com/paydown/paydown/pkg/constants"
	"github.com/paydown/paydown/pkg/datetime"
)

// LoanSpec indicates a loan and its parameters as configured.
type LoanSpec struct {
	ID              string               `yaml:"id,omitempty"`
	Name            string               `yaml:"name"`
	Principal       float64              `yaml:"principal"`
	InterestRate    float64              `yaml:"interestRate"` // annual percentage, e.g. 4.5
	Term            TermSpec             `yaml:"term"`
	StartDate       string               `yaml:"startDate"` // YYYY-MM
	EarlyPayments   []EarlyPaymentSpec   `yaml:"earlyPayments,omitempty"`
	RateAdjustments []RateAdjustmentSpec `yaml:"rateAdjustments,omitempty"`
}

// TermSpec holds the user-facing term as a value plus unit pair.
type TermSpec struct {
	Value int    `yaml:"value"`
	Unit  string `yaml:"unit,omitempty"` // months (default) or years
}

// Months converts the term to a month count. The conversion happens exactly
// once, here, before any scheduling.
func (t TermSpec) Months() (int, error) {
	switch t.Unit {
	case constants.TermUnitMonths, "":
		return t.Value, nil
	case constants.TermUnitYears:
		return t.Value * constants.MonthsPerYear, nil
	default:
		return 0, fmt.Errorf("unknown term unit %q, expected %s or %s",
			t.Unit, constants.TermUnitMonths, constants.TermUnitYears)
	}
}

// EarlyPaymentSpec indicates an extra principal contribution as configured.
type EarlyPaymentSpec struct {
	ID              string  `yaml:"id,omitempty"`
	Kind            string  `yaml:"kind"` // oneTime or recurring
	Amount          float64 `yaml:"amount"`
	StartPeriod     int     `yaml:"startPeriod"`
	FrequencyMonths int     `yaml:"frequencyMonths,omitempty"`
}

// RateAdjustmentSpec indicates a mid-schedule rate change as configured.
type RateAdjustmentSpec struct {
	ID              string  `yaml:"id,omitempty"`
	EffectivePeriod int     `yaml:"effectivePeriod"`
	NewInterestRate float64 `yaml:"newInterestRate"` // annual percentage
}

// EnsureIDs mints identifiers for loans and events that were configured
// without one, so storage and log references stay stable within a run.
func (c *Configuration) EnsureIDs() {
	for i := range c.Loans {
		loan := &c.Loans[i]
		if loan.ID == "" {
			loan.ID = uuid.NewString()
		}
		for j := range loan.EarlyPayments {
			if loan.EarlyPayments[j].ID == "" {
				loan.EarlyPayments[j].ID = uuid.NewString()
			}
		}
		for j := range loan.RateAdjustments {
			if loan.RateAdjustments[j].ID == "" {
				loan.RateAdjustments[j].ID = uuid.NewString()
			}
		}
	}
}

// Parameters converts the configured loan to engine loan parameters.
func (loan *LoanSpec) Parameters() (amortize.LoanParameters, error) {
	termMonths, err := loan.Term.Months()
	if err != nil {
		return amortize.LoanParameters{}, fmt.Errorf("loan %s: %w", loan.Name, err)
	}

	startDate, err := datetime.ParseMonth(loan.StartDate)
	if err != nil {
		return amortize.LoanParameters{}, fmt.Errorf("loan %s: %w", loan.Name, err)
	}

	return amortize.LoanParameters{
		Principal:         loan.Principal,
		AnnualRatePercent: loan.InterestRate,
		TermMonths:        termMonths,
		StartDate:         startDate,
	}, nil
}

// EarlyPaymentEvents converts the configured early payments to engine events.
func (loan *LoanSpec) EarlyPaymentEvents() []amortize.EarlyPayment {
	events := make([]amortize.EarlyPayment, 0, len(loan.EarlyPayments))
	for _, spec := range loan.EarlyPayments {
		events = append(events, amortize.EarlyPayment{
			ID:              spec.ID,
			Kind:            amortize.PaymentKind(spec.Kind),
			Amount:          spec.Amount,
			StartPeriod:     spec.StartPeriod,
			FrequencyMonths: spec.FrequencyMonths,
		})
	}
	return events
}

// RateAdjustmentEvents converts the configured rate adjustments to engine
// events, preserving input order since the last adjustment at a shared
// period wins.
func (loan *LoanSpec) RateAdjustmentEvents() []amortize.RateAdjustment {
	events := make([]amortize.RateAdjustment, 0, len(loan.RateAdjustments))
	for _, spec := range loan.RateAdjustments {
		events = append(events, amortize.RateAdjustment{
			ID:                   spec.ID,
			EffectivePeriod:      spec.EffectivePeriod,
			NewAnnualRatePercent: spec.NewInterestRate,
		})
	}
	return events
}
