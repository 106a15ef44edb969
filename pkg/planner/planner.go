// Package planner searches for the extra payment needed to hit a payoff target.
package planner

import (
	"fmt"

	"github.com/paydown/paydown/pkg/amortize"
	"github.com/paydown/paydown/pkg/constants"
	"go.uber.org/zap"
)

// Plan describes the recurring monthly extra payment that meets a payoff
// target, along with how the search for it went.
type Plan struct {
	ExtraMonthly    float64
	TargetMonths    int
	ProjectedMonths int
	InterestSaved   float64
	Iterations      int
	Converged       bool
}

// Planner runs payoff-target searches over the schedule engine.
type Planner struct {
	logger    *zap.Logger
	generator *amortize.ScheduleGenerator
}

// NewPlanner constructs a Planner.
func NewPlanner(logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		logger:    logger,
		generator: amortize.NewScheduleGenerator(logger),
	}
}

// ExtraPaymentForTarget finds the smallest recurring monthly extra payment
// that pays the loan off within targetMonths. The search bisects between
// zero and the full principal, which always pays off in a single period.
func (p *Planner) ExtraPaymentForTarget(params amortize.LoanParameters, adjustments []amortize.RateAdjustment, targetMonths int) (Plan, error) {
	if err := params.Validate(); err != nil {
		return Plan{}, err
	}
	if targetMonths <= 0 {
		return Plan{}, fmt.Errorf("payoff target must be positive, got %d months", targetMonths)
	}

	baseline, err := p.generator.BaselineSchedule(params, adjustments)
	if err != nil {
		return Plan{}, err
	}

	if len(baseline) <= targetMonths {
		return Plan{
			TargetMonths:    targetMonths,
			ProjectedMonths: len(baseline),
			Converged:       true,
		}, nil
	}

	lower := 0.00
	upper := params.Principal
	iterations := 0

	for iterations < constants.PlannerMaxIterations && upper-lower > constants.PlannerTolerance {
		mid := lower + (upper-lower)/2
		months, err := p.payoffMonths(params, adjustments, mid)
		if err != nil {
			return Plan{}, err
		}
		if months <= targetMonths {
			upper = mid
		} else {
			lower = mid
		}
		iterations++
	}

	extras := p.recurringExtra(upper)
	months, err := p.payoffMonths(params, adjustments, upper)
	if err != nil {
		return Plan{}, err
	}
	savings, err := p.generator.CompareSavings(params, extras, adjustments)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		ExtraMonthly:    upper,
		TargetMonths:    targetMonths,
		ProjectedMonths: months,
		InterestSaved:   savings.InterestSaved,
		Iterations:      iterations,
		Converged:       upper-lower <= constants.PlannerTolerance,
	}

	p.logger.Debug(fmt.Sprintf("target %d months reached with %.2f extra per month after %d iterations",
		targetMonths, plan.ExtraMonthly, plan.Iterations),
		zap.String("op", "planner.ExtraPaymentForTarget"),
	)

	return plan, nil
}

func (p *Planner) payoffMonths(params amortize.LoanParameters, adjustments []amortize.RateAdjustment, extra float64) (int, error) {
	schedule, err := p.generator.GenerateSchedule(params, p.recurringExtra(extra), adjustments)
	if err != nil {
		return 0, err
	}
	return len(schedule), nil
}

func (p *Planner) recurringExtra(amount float64) []amortize.EarlyPayment {
	return []amortize.EarlyPayment{
		{
			ID:              "planner-extra",
			Kind:            amortize.Recurring,
			Amount:          amount,
			StartPeriod:     1,
			FrequencyMonths: 1,
		},
	}
}
