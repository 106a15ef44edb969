// Package report builds per-loan amortization reports from configuration.
package report

import (
	"fmt"
	"time"

	"github.com/paydown/paydown/internal/config"
	"github.com/paydown/paydown/pkg/amortize"
	"github.com/paydown/paydown/pkg/datetime"
	"go.uber.org/zap"
)

// LoanReport holds all computed results for a single loan: the schedule with
// extra payments applied, the baseline used for comparison, and the summary
// aggregates derived from both.
type LoanReport struct {
	LoanID           string
	Name             string
	Parameters       amortize.LoanParameters
	MonthlyPayment   float64
	Schedule         []amortize.PaymentRecord
	Baseline         []amortize.PaymentRecord
	Savings          amortize.Savings
	PeriodsElapsed   int
	RemainingBalance float64
}

// PayoffDate returns the date of the final scheduled payment.
func (r *LoanReport) PayoffDate() time.Time {
	return r.Savings.PayoffDate
}

// Build computes reports for every configured loan. The asOf date locates
// the current position within each schedule; it is supplied by the caller so
// results stay reproducible.
func Build(logger *zap.Logger, conf *config.Configuration, asOf time.Time) ([]LoanReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	generator := amortize.NewScheduleGenerator(logger)
	reports := make([]LoanReport, 0, len(conf.Loans))

	for i := range conf.Loans {
		loan := &conf.Loans[i]
		loanReport, err := buildLoan(logger, generator, loan, asOf)
		if err != nil {
			return nil, fmt.Errorf("loan %s: %w", loan.Name, err)
		}
		reports = append(reports, loanReport)
	}

	return reports, nil
}

func buildLoan(logger *zap.Logger, generator *amortize.ScheduleGenerator, loan *config.LoanSpec, asOf time.Time) (LoanReport, error) {
	params, err := loan.Parameters()
	if err != nil {
		return LoanReport{}, err
	}

	quote, err := amortize.QuotePayment(params.Principal, params.AnnualRatePercent, params.TermMonths)
	if err != nil {
		return LoanReport{}, err
	}

	earlyPayments := loan.EarlyPaymentEvents()
	adjustments := loan.RateAdjustmentEvents()

	schedule, err := generator.GenerateSchedule(params, earlyPayments, adjustments)
	if err != nil {
		return LoanReport{}, err
	}
	baseline, err := generator.BaselineSchedule(params, adjustments)
	if err != nil {
		return LoanReport{}, err
	}
	savings, err := generator.CompareSavings(params, earlyPayments, adjustments)
	if err != nil {
		return LoanReport{}, err
	}

	periodsElapsed, remainingBalance := amortize.ProgressAt(schedule, asOf)

	logger.Debug(fmt.Sprintf("built report for loan %s: %d periods, payoff %s",
		loan.Name, len(schedule), datetime.FormatMonth(savings.PayoffDate)),
		zap.String("op", "report.Build"),
	)

	return LoanReport{
		LoanID:           loan.ID,
		Name:             loan.Name,
		Parameters:       params,
		MonthlyPayment:   quote.MonthlyPayment,
		Schedule:         schedule,
		Baseline:         baseline,
		Savings:          savings,
		PeriodsElapsed:   periodsElapsed,
		RemainingBalance: remainingBalance,
	}, nil
}
