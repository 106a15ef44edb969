package amortize

import (
	"fmt"
	"time"

	"github.com/paydown/paydown/pkg/datetime"
	"github.com/paydown/paydown/pkg/mathutil"
	"go.uber.org/zap"
)

// ScheduleGenerator produces amortization schedules. It is stateless beyond
// its logger; schedules are recomputed from scratch on every call, so a
// single generator is safe for concurrent use.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the complete amortization schedule for a loan,
// applying extra principal contributions and rate adjustments per period.
// The schedule terminates early when the balance reaches zero, so its length
// never exceeds params.TermMonths. Events that fail validation are ignored
// and contribute nothing.
func (g *ScheduleGenerator) GenerateSchedule(params LoanParameters, earlyPayments []EarlyPayment, adjustments []RateAdjustment) ([]PaymentRecord, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	quote, err := QuotePayment(params.Principal, params.AnnualRatePercent, params.TermMonths)
	if err != nil {
		return nil, err
	}

	earlyPayments = g.validEarlyPayments(earlyPayments)
	adjustments = g.validRateAdjustments(adjustments)

	schedule := make([]PaymentRecord, 0, params.TermMonths)
	balance := params.Principal
	currentRate := params.AnnualRatePercent
	currentPayment := quote.MonthlyPayment

	for period := 1; period <= params.TermMonths; period++ {
		// Re-amortize the remaining balance over the remaining original
		// term at each adjustment boundary; the payoff date holds and the
		// payment amount absorbs the change. When several adjustments
		// share a period the last one in input order wins.
		for _, adjustment := range adjustments {
			if adjustment.EffectivePeriod != period {
				continue
			}
			requote, err := QuotePayment(balance, adjustment.NewAnnualRatePercent, params.TermMonths-period+1)
			if err != nil {
				return nil, err
			}
			currentRate = adjustment.NewAnnualRatePercent
			currentPayment = requote.MonthlyPayment
			g.logger.Debug(fmt.Sprintf("period %d: rate adjusted to %.4f%%, payment recomputed to %.2f",
				period, currentRate, currentPayment),
				zap.String("op", "amortize.GenerateSchedule"),
			)
		}

		interest := MonthlyInterest(balance, currentRate)
		totalDue := currentPayment + ExtraContribution(earlyPayments, period)

		// Cap the principal portion at the remaining balance so the loan
		// cannot be over-paid; the final payment may come in under the
		// regular amount.
		principal := mathutil.Min(totalDue-interest, balance)
		balance = mathutil.ClampResidue(balance - principal)

		schedule = append(schedule, PaymentRecord{
			PeriodNumber:     period,
			Date:             datetime.AddMonths(params.StartDate, period-1),
			PaymentAmount:    interest + principal,
			PrincipalPortion: principal,
			InterestPortion:  interest,
			RemainingBalance: balance,
		})

		if balance == 0 {
			g.logger.Debug(fmt.Sprintf("balance reached zero at period %d of %d", period, params.TermMonths),
				zap.String("op", "amortize.GenerateSchedule"),
			)
			break
		}
	}

	return schedule, nil
}

// BaselineSchedule creates the comparison schedule: no extra contributions,
// but the same rate adjustments. It is used purely to measure savings and is
// never persisted as the loan's actual schedule.
func (g *ScheduleGenerator) BaselineSchedule(params LoanParameters, adjustments []RateAdjustment) ([]PaymentRecord, error) {
	return g.GenerateSchedule(params, nil, adjustments)
}

// validEarlyPayments drops events that fail validation so they contribute
// zero, logging each rejection.
func (g *ScheduleGenerator) validEarlyPayments(earlyPayments []EarlyPayment) []EarlyPayment {
	valid := make([]EarlyPayment, 0, len(earlyPayments))
	for _, event := range earlyPayments {
		if err := event.Validate(); err != nil {
			g.logger.Debug(fmt.Sprintf("ignoring early payment %s: %v", event.ID, err),
				zap.String("op", "amortize.GenerateSchedule"),
			)
			continue
		}
		valid = append(valid, event)
	}
	return valid
}

// validRateAdjustments drops events that fail validation so the prior rate
// stays in force, logging each rejection.
func (g *ScheduleGenerator) validRateAdjustments(adjustments []RateAdjustment) []RateAdjustment {
	valid := make([]RateAdjustment, 0, len(adjustments))
	for _, adjustment := range adjustments {
		if err := adjustment.Validate(); err != nil {
			g.logger.Debug(fmt.Sprintf("ignoring rate adjustment %s: %v", adjustment.ID, err),
				zap.String("op", "amortize.GenerateSchedule"),
			)
			continue
		}
		valid = append(valid, adjustment)
	}
	return valid
}

// ProgressAt reports how many schedule periods fall on or before the asOf
// month, plus the balance remaining after the last of them. The engine never
// reads a clock; callers supply the reference date explicitly.
func ProgressAt(schedule []PaymentRecord, asOf time.Time) (periodsElapsed int, remainingBalance float64) {
	if len(schedule) == 0 {
		return 0, 0
	}
	remainingBalance = schedule[0].RemainingBalance + schedule[0].PrincipalPortion
	for _, record := range schedule {
		if datetime.MonthsBetween(record.Date, asOf) < 0 {
			break
		}
		periodsElapsed++
		remainingBalance = record.RemainingBalance
	}
	return periodsElapsed, remainingBalance
}
