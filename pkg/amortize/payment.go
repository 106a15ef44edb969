package amortize

import (
	"fmt"
	"math"

	"github.com/paydown/paydown/pkg/constants"
)

// PaymentQuote holds the regular payment amounts for a loan before any
// acceleration. TotalPayment is the undiscounted nominal sum over the full
// term.
type PaymentQuote struct {
	MonthlyPayment float64
	TotalPayment   float64
}

// QuotePayment calculates the regular monthly payment for a loan using the
// standard fixed-payment amortization formula. A zero rate falls back to
// straight-line repayment.
func QuotePayment(principal, annualRatePercent float64, termMonths int) (PaymentQuote, error) {
	if principal <= 0 || annualRatePercent < 0 || termMonths <= 0 {
		return PaymentQuote{}, fmt.Errorf("%w: principal=%.2f rate=%.4f termMonths=%d",
			ErrInvalidLoanParameters, principal, annualRatePercent, termMonths)
	}

	if annualRatePercent == 0 {
		monthly := principal / float64(termMonths)
		return PaymentQuote{
			MonthlyPayment: monthly,
			TotalPayment:   monthly * float64(termMonths),
		}, nil
	}

	periodicInterestRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	monthly := principal * periodicInterestRate / discountFactor
	return PaymentQuote{
		MonthlyPayment: monthly,
		TotalPayment:   monthly * float64(termMonths),
	}, nil
}

// MonthlyInterest calculates the interest portion of one payment on the
// given remaining balance.
func MonthlyInterest(balance, annualRatePercent float64) float64 {
	return balance * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// ExtraContribution calculates the total extra principal applicable at a
// given period across all early payment events.
func ExtraContribution(earlyPayments []EarlyPayment, period int) float64 {
	amount := 0.00
	for _, event := range earlyPayments {
		if event.AppliesAt(period) {
			amount += event.Amount
		}
	}
	return amount
}
