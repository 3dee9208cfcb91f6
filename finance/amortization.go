package finance

import (
	"math"

	"investment-engine/domain"
)

const monthsPerYear = 12

func validateTerms(terms domain.LoanTerms) error {
	if terms.Principal <= 0 || math.IsNaN(terms.Principal) || math.IsInf(terms.Principal, 0) {
		return &domain.InvalidTermsError{Field: "principal", Reason: "must be positive"}
	}
	if terms.TermYears <= 0 {
		return &domain.InvalidTermsError{Field: "term_years", Reason: "must be positive"}
	}
	if terms.AnnualRatePercent < 0 || math.IsNaN(terms.AnnualRatePercent) || math.IsInf(terms.AnnualRatePercent, 0) {
		return &domain.InvalidTermsError{Field: "annual_rate_percent", Reason: "must not be negative"}
	}
	return nil
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / monthsPerYear
}

func payment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	growth := math.Pow(1+r, float64(n))
	return principal * r * growth / (growth - 1)
}

// MonthlyPayment returns the fixed payment that retires the loan in
// TermYears*12 equal installments.
func MonthlyPayment(terms domain.LoanTerms) (float64, error) {
	if err := validateTerms(terms); err != nil {
		return 0, err
	}
	return payment(terms.Principal, monthlyRate(terms.AnnualRatePercent), terms.TermYears*monthsPerYear), nil
}

// GenerateSchedule builds the full amortization table. The first payment is
// due on StartDate and each following one a calendar month later. The last row absorbs floating point drift
// so the balance closes at exactly zero.
func GenerateSchedule(terms domain.LoanTerms) ([]domain.AmortizationRow, error) {
	if err := validateTerms(terms); err != nil {
		return nil, err
	}

	r := monthlyRate(terms.AnnualRatePercent)
	n := terms.TermYears * monthsPerYear
	pmt := payment(terms.Principal, r, n)

	rows := make([]domain.AmortizationRow, 0, n)
	balance := terms.Principal

	for period := 1; period <= n; period++ {
		interest := balance * r
		principal := pmt - interest
		total := pmt

		if period == n {
			principal = balance
			total = principal + interest
		}

		balance -= principal
		if period == n {
			balance = 0
		}

		rows = append(rows, domain.AmortizationRow{
			Period:           period,
			Date:             addMonths(terms.StartDate, period-1),
			Payment:          total,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	return rows, nil
}

// SummarizeSchedule totals a schedule produced by GenerateSchedule.
func SummarizeSchedule(rows []domain.AmortizationRow) domain.ScheduleSummary {
	if len(rows) == 0 {
		return domain.ScheduleSummary{}
	}

	var summary domain.ScheduleSummary
	for _, row := range rows {
		summary.TotalPayment += row.Payment
		summary.TotalInterest += row.Interest
	}
	summary.MonthlyPayment = rows[0].Payment
	summary.Periods = len(rows)
	summary.PayoffDate = rows[len(rows)-1].Date

	return summary
}

// BalanceAfter returns the outstanding balance once the given number of
// payments has been made. Zero payments means the original principal.
func BalanceAfter(rows []domain.AmortizationRow, payments int) float64 {
	if len(rows) == 0 {
		return 0
	}
	if payments <= 0 {
		first := rows[0]
		return first.RemainingBalance + first.Principal
	}
	if payments >= len(rows) {
		return rows[len(rows)-1].RemainingBalance
	}
	return rows[payments-1].RemainingBalance
}
