// Package amortize computes fixed-payment loan amortization schedules,
// including extra principal contributions and mid-schedule rate changes.
package amortize

import (
	"errors"
	"fmt"
	"time"
)

// Engine input validation errors. Callers can match them with errors.Is.
var (
	ErrInvalidLoanParameters = errors.New("invalid loan parameters")
	ErrInvalidEarlyPayment   = errors.New("invalid early payment")
	ErrInvalidRateAdjustment = errors.New("invalid rate adjustment")
)

// LoanParameters describes a loan at origination. Period i (1-indexed) is
// due on StartDate plus i-1 months.
type LoanParameters struct {
	Principal         float64
	AnnualRatePercent float64
	TermMonths        int
	StartDate         time.Time
}

// Validate checks the parameters against the engine's contract.
func (p LoanParameters) Validate() error {
	if p.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %.2f", ErrInvalidLoanParameters, p.Principal)
	}
	if p.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: annual rate must be non-negative, got %.4f", ErrInvalidLoanParameters, p.AnnualRatePercent)
	}
	if p.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be positive, got %d months", ErrInvalidLoanParameters, p.TermMonths)
	}
	return nil
}

// PaymentKind distinguishes one-time from recurring extra payments.
type PaymentKind string

const (
	OneTime   PaymentKind = "oneTime"
	Recurring PaymentKind = "recurring"
)

// EarlyPayment is an extra principal contribution applied on top of the
// regular payment. It holds the payment amount fixed and shortens the term.
type EarlyPayment struct {
	ID              string
	Kind            PaymentKind
	Amount          float64
	StartPeriod     int
	FrequencyMonths int
}

// Validate checks the event against the engine's contract.
func (e EarlyPayment) Validate() error {
	if e.Kind != OneTime && e.Kind != Recurring {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEarlyPayment, e.Kind)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %.2f", ErrInvalidEarlyPayment, e.Amount)
	}
	if e.StartPeriod <= 0 {
		return fmt.Errorf("%w: start period must be positive, got %d", ErrInvalidEarlyPayment, e.StartPeriod)
	}
	if e.Kind == Recurring && e.FrequencyMonths <= 0 {
		return fmt.Errorf("%w: recurring payments need a positive frequency, got %d", ErrInvalidEarlyPayment, e.FrequencyMonths)
	}
	return nil
}

// AppliesAt reports whether this payment contributes at the given 1-indexed
// period. OneTime payments hit exactly StartPeriod; Recurring payments hit
// every FrequencyMonths periods from StartPeriod onward.
func (e EarlyPayment) AppliesAt(period int) bool {
	switch e.Kind {
	case OneTime:
		return period == e.StartPeriod
	case Recurring:
		if e.FrequencyMonths <= 0 {
			return false
		}
		return period >= e.StartPeriod && (period-e.StartPeriod)%e.FrequencyMonths == 0
	default:
		return false
	}
}

// RateAdjustment changes the loan's interest rate from EffectivePeriod
// onward. The regular payment is recomputed over the remaining original term
// so the payoff date holds and the payment amount absorbs the change.
type RateAdjustment struct {
	ID                   string
	EffectivePeriod      int
	NewAnnualRatePercent float64
}

// Validate checks the event against the engine's contract.
func (r RateAdjustment) Validate() error {
	if r.EffectivePeriod <= 0 {
		return fmt.Errorf("%w: effective period must be positive, got %d", ErrInvalidRateAdjustment, r.EffectivePeriod)
	}
	if r.NewAnnualRatePercent < 0 {
		return fmt.Errorf("%w: new annual rate must be non-negative, got %.4f", ErrInvalidRateAdjustment, r.NewAnnualRatePercent)
	}
	return nil
}

// PaymentRecord is one row of an amortization schedule. PaymentAmount always
// equals PrincipalPortion plus InterestPortion; in the final period it may be
// less than the regular payment.
type PaymentRecord struct {
	PeriodNumber     int
	Date             time.Time
	PaymentAmount    float64
	PrincipalPortion float64
	InterestPortion  float64
	RemainingBalance float64
}
