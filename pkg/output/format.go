// Package output provides utilities for formatting and displaying loan reports.
package output

import (
	"fmt"

	"github.com/paydown/paydown/internal/report"
	"github.com/paydown/paydown/pkg/amortize"
	"github.com/paydown/paydown/pkg/datetime"
	"github.com/paydown/paydown/pkg/format"
	"github.com/paydown/paydown/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable summary for each loan report.
func PrettyFormat(reports []report.LoanReport) {
	p := message.NewPrinter(language.English)
	for i, r := range reports {
		fmt.Printf("--- Loan %s ---\n", r.Name)
		fmt.Printf("Principal:          %s\n", format.Currency(r.Parameters.Principal))
		fmt.Printf("Interest rate:      %s\n", format.Percent(r.Parameters.AnnualRatePercent))
		fmt.Printf("Term:               %s\n", format.Term(r.Parameters.TermMonths))
		_, _ = p.Printf("Monthly payment:    $%.2f\n", r.MonthlyPayment)
		_, _ = p.Printf("Total payment:      $%.2f\n", r.Savings.ActualTotalPayment)
		_, _ = p.Printf("Total interest:     $%.2f\n", r.Savings.TotalInterest)
		fmt.Printf("Payoff date:        %s\n", datetime.FormatMonth(r.Savings.PayoffDate))
		if r.Savings.PeriodsShortened > 0 || !mathutil.IsZero(r.Savings.InterestSaved) {
			_, _ = p.Printf("Interest saved:     $%.2f\n", r.Savings.InterestSaved)
			_, _ = p.Printf("Periods shortened:  %d (baseline payoff %s)\n",
				r.Savings.PeriodsShortened, datetime.FormatMonth(r.Savings.BaselinePayoffDate))
		}
		_, _ = p.Printf("Progress:           %d of %d periods paid, $%.2f remaining\n",
			r.PeriodsElapsed, len(r.Schedule), r.RemainingBalance)
		if i < len(reports)-1 {
			fmt.Printf("\n")
		}
	}
}

// PrettySchedule outputs a human-readable amortization table.
func PrettySchedule(name string, schedule []amortize.PaymentRecord) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Schedule for %s ---\n", name)
	fmt.Printf("Period | Date    | Payment      | Principal    | Interest     | Balance\n")
	fmt.Printf("______ | ____    | _______      | _________    | ________     | _______\n")
	for _, record := range schedule {
		_, _ = p.Printf("%6d | %s | $%.2f | $%.2f | $%.2f | $%.2f\n",
			record.PeriodNumber,
			datetime.FormatMonth(record.Date),
			record.PaymentAmount,
			record.PrincipalPortion,
			record.InterestPortion,
			record.RemainingBalance,
		)
	}
}

// CsvFormat outputs one summary row per loan in comma-separated value format.
func CsvFormat(reports []report.LoanReport) {
	fmt.Printf(`"loan","principal","interestRate","termMonths","monthlyPayment","totalPayment","totalInterest","interestSaved","periodsShortened","payoffDate","periodsElapsed","remainingBalance"`)
	fmt.Printf("\n")
	for _, r := range reports {
		fmt.Printf(`"%s","%.2f","%.4f","%d","%.2f","%.2f","%.2f","%.2f","%d","%s","%d","%.2f"`,
			r.Name,
			r.Parameters.Principal,
			r.Parameters.AnnualRatePercent,
			r.Parameters.TermMonths,
			r.MonthlyPayment,
			r.Savings.ActualTotalPayment,
			r.Savings.TotalInterest,
			r.Savings.InterestSaved,
			r.Savings.PeriodsShortened,
			datetime.FormatMonth(r.Savings.PayoffDate),
			r.PeriodsElapsed,
			r.RemainingBalance,
		)
		fmt.Printf("\n")
	}
}

// CsvSchedule outputs amortization rows in comma-separated value format.
func CsvSchedule(name string, schedule []amortize.PaymentRecord) {
	fmt.Printf(`"loan","period","date","payment","principal","interest","balance"`)
	fmt.Printf("\n")
	for _, record := range schedule {
		fmt.Printf(`"%s","%d","%s","%.2f","%.2f","%.2f","%.2f"`,
			name,
			record.PeriodNumber,
			datetime.FormatMonth(record.Date),
			record.PaymentAmount,
			record.PrincipalPortion,
			record.InterestPortion,
			record.RemainingBalance,
		)
		fmt.Printf("\n")
	}
}
