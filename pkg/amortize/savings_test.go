package amortize

import (
	"math"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCompareSavingsNoExtras(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())
	params := testLoan(150000, 5.5, 240)

	savings, err := generator.CompareSavings(params, nil, nil)
	if err != nil {
		t.Fatalf("CompareSavings() error = %v", err)
	}

	if savings.InterestSaved != 0 {
		t.Errorf("InterestSaved = %v, expected 0 with no early payments", savings.InterestSaved)
	}
	if savings.PeriodsShortened != 0 {
		t.Errorf("PeriodsShortened = %d, expected 0 with no early payments", savings.PeriodsShortened)
	}
	if !savings.PayoffDate.Equal(savings.BaselinePayoffDate) {
		t.Errorf("PayoffDate %v should equal BaselinePayoffDate %v",
			savings.PayoffDate, savings.BaselinePayoffDate)
	}
}

func TestCompareSavingsWithRecurringExtra(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())
	params := testLoan(100000, 6.0, 120)
	extras := []EarlyPayment{
		{ID: "extra", Kind: Recurring, Amount: 200, StartPeriod: 1, FrequencyMonths: 1},
	}

	savings, err := generator.CompareSavings(params, extras, nil)
	if err != nil {
		t.Fatalf("CompareSavings() error = %v", err)
	}

	if savings.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %.2f, expected positive", savings.InterestSaved)
	}
	if savings.PeriodsShortened <= 0 {
		t.Errorf("PeriodsShortened = %d, expected positive", savings.PeriodsShortened)
	}
	if !savings.PayoffDate.Before(savings.BaselinePayoffDate) {
		t.Errorf("PayoffDate %v should precede BaselinePayoffDate %v",
			savings.PayoffDate, savings.BaselinePayoffDate)
	}

	adjusted, err := generator.GenerateSchedule(params, extras, nil)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	totalPayment := 0.00
	for _, record := range adjusted {
		totalPayment += record.PaymentAmount
	}
	if math.Abs(savings.ActualTotalPayment-totalPayment) > 1e-6 {
		t.Errorf("ActualTotalPayment = %.6f, expected schedule sum %.6f",
			savings.ActualTotalPayment, totalPayment)
	}
	if math.Abs(savings.TotalInterest-(totalPayment-params.Principal)) > 1e-6 {
		t.Errorf("TotalInterest = %.6f, expected %.6f",
			savings.TotalInterest, totalPayment-params.Principal)
	}
	if !savings.PayoffDate.Equal(adjusted[len(adjusted)-1].Date) {
		t.Errorf("PayoffDate = %v, expected final schedule date %v",
			savings.PayoffDate, adjusted[len(adjusted)-1].Date)
	}
}

func TestCompareSavingsWithRateAdjustment(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())
	params := testLoan(100000, 6.0, 120)
	extras := []EarlyPayment{
		{ID: "extra", Kind: Recurring, Amount: 300, StartPeriod: 1, FrequencyMonths: 1},
	}
	adjustments := []RateAdjustment{
		{ID: "refi", EffectivePeriod: 25, NewAnnualRatePercent: 4.5},
	}

	savings, err := generator.CompareSavings(params, extras, adjustments)
	if err != nil {
		t.Fatalf("CompareSavings() error = %v", err)
	}

	// Rate adjustments apply to both schedules, so the savings still come
	// from the extra contributions alone.
	if savings.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %.2f, expected positive", savings.InterestSaved)
	}
	if savings.PeriodsShortened <= 0 {
		t.Errorf("PeriodsShortened = %d, expected positive", savings.PeriodsShortened)
	}

	withoutAdjustment, err := generator.CompareSavings(params, extras, nil)
	if err != nil {
		t.Fatalf("CompareSavings() error = %v", err)
	}
	if math.Abs(savings.InterestSaved-withoutAdjustment.InterestSaved) < 1e-9 {
		t.Errorf("savings with and without the rate adjustment should differ")
	}
}

func TestCompareSavingsInvalidParameters(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())
	params := LoanParameters{
		Principal:         -5,
		AnnualRatePercent: 4.0,
		TermMonths:        12,
		StartDate:         time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	if _, err := generator.CompareSavings(params, nil, nil); err == nil {
		t.Fatalf("CompareSavings() expected error for invalid parameters")
	}
}
