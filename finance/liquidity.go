package finance

import (
	"fmt"
	"time"

	"investment-engine/domain"
)

// PlanFromTerms builds a portfolio entry from loan terms. The plan is active
// from the first to the last payment date.
func PlanFromTerms(id, lender string, terms domain.LoanTerms) (domain.FinancingPlan, error) {
	rows, err := GenerateSchedule(terms)
	if err != nil {
		return domain.FinancingPlan{}, err
	}

	return domain.FinancingPlan{
		ID:                  id,
		Lender:              lender,
		LoanAmount:          terms.Principal,
		StartDate:           rows[0].Date,
		EndDate:             rows[len(rows)-1].Date,
		InterestRatePercent: terms.AnnualRatePercent,
		MonthlyPayment:      rows[0].Payment,
		Schedule:            rows,
	}, nil
}

type activeWindow struct {
	from time.Time
	to   time.Time
}

func (w activeWindow) contains(month time.Time) bool {
	return !month.Before(w.from) && !month.After(w.to)
}

func windows(plans []domain.FinancingPlan) ([]activeWindow, error) {
	out := make([]activeWindow, len(plans))
	for i, plan := range plans {
		if plan.EndDate.Before(plan.StartDate) {
			return nil, &domain.InvalidParameterError{
				Field:  fmt.Sprintf("plans[%d].end_date", i),
				Reason: "is before start_date",
			}
		}
		out[i] = activeWindow{from: monthStart(plan.StartDate), to: monthStart(plan.EndDate)}
	}
	return out, nil
}

// Aggregate merges the plans into one monthly timeline running from the
// earliest start month to the latest end month. Each month sums the payment
// of every plan active in it. Inputs are read only.
func Aggregate(plans []domain.FinancingPlan) ([]domain.LiquiditySample, error) {
	wins, err := windows(plans)
	if err != nil {
		return nil, err
	}

	timeline := []domain.LiquiditySample{}
	if len(plans) == 0 {
		return timeline, nil
	}

	earliest, latest := wins[0].from, wins[0].to
	for _, w := range wins[1:] {
		if w.from.Before(earliest) {
			earliest = w.from
		}
		if w.to.After(latest) {
			latest = w.to
		}
	}

	for i := 0; ; i++ {
		month := addMonths(earliest, i)
		if month.After(latest) {
			break
		}

		sample := domain.LiquiditySample{Month: month, Label: MonthLabel(month)}
		for j, w := range wins {
			if w.contains(month) {
				sample.TotalPayment += plans[j].MonthlyPayment
				sample.ActivePlans++
			}
		}
		timeline = append(timeline, sample)
	}

	return timeline, nil
}

// Summarize reports portfolio totals as of the given instant.
func Summarize(plans []domain.FinancingPlan, asOf time.Time) (domain.PortfolioSummary, error) {
	timeline, err := Aggregate(plans)
	if err != nil {
		return domain.PortfolioSummary{}, err
	}

	summary := domain.PortfolioSummary{
		PlanCount:        len(plans),
		PaymentsByLender: make(map[string]float64),
		PaymentsByYear:   make(map[int]float64),
	}

	var weightedRate float64
	for _, plan := range plans {
		summary.TotalLoanAmount += plan.LoanAmount
		summary.TotalMonthlyPayment += plan.MonthlyPayment
		summary.TotalRemainingPrincipal += remainingPrincipal(plan, asOf)
		summary.PaymentsByLender[plan.Lender] += plan.MonthlyPayment * monthsPerYear
		weightedRate += plan.InterestRatePercent * plan.LoanAmount
	}
	if summary.TotalLoanAmount > 0 {
		summary.WeightedAverageRate = weightedRate / summary.TotalLoanAmount
	}

	for _, sample := range timeline {
		summary.PaymentsByYear[sample.Month.Year()] += sample.TotalPayment
	}

	return summary, nil
}

// remainingPrincipal reads the balance from the latest schedule row dated on
// or before asOf. Without such a row the whole loan is outstanding.
func remainingPrincipal(plan domain.FinancingPlan, asOf time.Time) float64 {
	var latest *domain.AmortizationRow
	for i := range plan.Schedule {
		row := &plan.Schedule[i]
		if row.Date.After(asOf) {
			continue
		}
		if latest == nil || row.Date.After(latest.Date) {
			latest = row
		}
	}
	if latest == nil {
		return plan.LoanAmount
	}
	return latest.RemainingBalance
}
