package output

import (
	"fmt"

	"github.com/paydown/paydown/pkg/planner"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyPlan outputs a human-readable payoff plan for a loan.
func PrettyPlan(name string, plan planner.Plan) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Payoff plan for %s ---\n", name)
	fmt.Printf("Target:             %d months\n", plan.TargetMonths)
	if plan.ExtraMonthly == 0 {
		fmt.Printf("Already on target:  pays off in %d months with no extra payment\n", plan.ProjectedMonths)
		return
	}
	_, _ = p.Printf("Extra per month:    $%.2f\n", plan.ExtraMonthly)
	fmt.Printf("Projected payoff:   %d months\n", plan.ProjectedMonths)
	_, _ = p.Printf("Interest saved:     $%.2f\n", plan.InterestSaved)
	if !plan.Converged {
		fmt.Printf("Note:               search stopped after %d iterations without converging\n", plan.Iterations)
	}
}

// CsvPlan outputs the payoff plan in comma-separated value format.
func CsvPlan(name string, plan planner.Plan) {
	fmt.Printf(`"loan","targetMonths","extraMonthly","projectedMonths","interestSaved","converged"`)
	fmt.Printf("\n")
	fmt.Printf(`"%s","%d","%.2f","%d","%.2f","%t"`,
		name,
		plan.TargetMonths,
		plan.ExtraMonthly,
		plan.ProjectedMonths,
		plan.InterestSaved,
		plan.Converged,
	)
	fmt.Printf("\n")
}
