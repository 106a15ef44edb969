package output

import (
	"fmt"
	"os"

	"github.com/paydown/paydown/internal/report"
	"github.com/paydown/paydown/pkg/datetime"
	"github.com/paydown/paydown/pkg/mathutil"
	"gopkg.in/yaml.v3"
)

// yamlSummary is the exported shape of one loan report. Money fields are
// rounded to cents so the file diffs cleanly between runs.
type yamlSummary struct {
	ID                 string  `yaml:"id"`
	Name               string  `yaml:"name"`
	Principal          float64 `yaml:"principal"`
	InterestRate       float64 `yaml:"interestRate"`
	TermMonths         int     `yaml:"termMonths"`
	MonthlyPayment     float64 `yaml:"monthlyPayment"`
	TotalPayment       float64 `yaml:"totalPayment"`
	TotalInterest      float64 `yaml:"totalInterest"`
	InterestSaved      float64 `yaml:"interestSaved"`
	PeriodsShortened   int     `yaml:"periodsShortened"`
	PayoffDate         string  `yaml:"payoffDate"`
	BaselinePayoffDate string  `yaml:"baselinePayoffDate"`
	PeriodsElapsed     int     `yaml:"periodsElapsed"`
	RemainingBalance   float64 `yaml:"remainingBalance"`
}

type yamlDocument struct {
	Loans []yamlSummary `yaml:"loans"`
}

// YamlExport writes the loan summaries to path as a YAML document.
func YamlExport(path string, reports []report.LoanReport) error {
	doc := yamlDocument{Loans: make([]yamlSummary, 0, len(reports))}
	for _, r := range reports {
		doc.Loans = append(doc.Loans, yamlSummary{
			ID:                 r.LoanID,
			Name:               r.Name,
			Principal:          r.Parameters.Principal,
			InterestRate:       r.Parameters.AnnualRatePercent,
			TermMonths:         r.Parameters.TermMonths,
			MonthlyPayment:     mathutil.Round(r.MonthlyPayment),
			TotalPayment:       mathutil.Round(r.Savings.ActualTotalPayment),
			TotalInterest:      mathutil.Round(r.Savings.TotalInterest),
			InterestSaved:      mathutil.Round(r.Savings.InterestSaved),
			PeriodsShortened:   r.Savings.PeriodsShortened,
			PayoffDate:         datetime.FormatMonth(r.Savings.PayoffDate),
			BaselinePayoffDate: datetime.FormatMonth(r.Savings.BaselinePayoffDate),
			PeriodsElapsed:     r.PeriodsElapsed,
			RemainingBalance:   mathutil.Round(r.RemainingBalance),
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal loan summaries: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
