package amortize

import "time"

// Savings summarizes what extra contributions achieve relative to the
// baseline schedule. InterestSaved is zero when there are no early payments
// since both schedules then coincide.
type Savings struct {
	ActualTotalPayment float64
	TotalInterest      float64
	InterestSaved      float64
	PeriodsShortened   int
	PayoffDate         time.Time
	BaselinePayoffDate time.Time
}

// CompareSavings generates the adjusted and baseline schedules for a loan
// and diffs them. Rate adjustments apply to both sides so the comparison
// isolates the effect of the extra contributions.
func (g *ScheduleGenerator) CompareSavings(params LoanParameters, earlyPayments []EarlyPayment, adjustments []RateAdjustment) (Savings, error) {
	adjusted, err := g.GenerateSchedule(params, earlyPayments, adjustments)
	if err != nil {
		return Savings{}, err
	}
	baseline, err := g.BaselineSchedule(params, adjustments)
	if err != nil {
		return Savings{}, err
	}

	var savings Savings
	for _, record := range adjusted {
		savings.ActualTotalPayment += record.PaymentAmount
	}
	baselineTotalPayment := 0.00
	for _, record := range baseline {
		baselineTotalPayment += record.PaymentAmount
	}

	savings.TotalInterest = savings.ActualTotalPayment - params.Principal
	baselineTotalInterest := baselineTotalPayment - params.Principal
	savings.InterestSaved = baselineTotalInterest - savings.TotalInterest
	savings.PeriodsShortened = len(baseline) - len(adjusted)
	savings.PayoffDate = adjusted[len(adjusted)-1].Date
	savings.BaselinePayoffDate = baseline[len(baseline)-1].Date
	return savings, nil
}
