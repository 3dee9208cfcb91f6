package report

import (
	"investment-engine/domain"
)

func Schedule(result domain.LoanResult) domain.LoanResult {
	out := domain.LoanResult{
		Terms: result.Terms,
		Summary: domain.ScheduleSummary{
			MonthlyPayment: Money(result.Summary.MonthlyPayment),
			TotalPayment:   Money(result.Summary.TotalPayment),
			TotalInterest:  Money(result.Summary.TotalInterest),
			Periods:        result.Summary.Periods,
			PayoffDate:     result.Summary.PayoffDate,
		},
		Schedule: make([]domain.AmortizationRow, len(result.Schedule)),
	}

	for i, row := range result.Schedule {
		out.Schedule[i] = domain.AmortizationRow{
			Period:           row.Period,
			Date:             row.Date,
			Payment:          Money(row.Payment),
			Principal:        Money(row.Principal),
			Interest:         Money(row.Interest),
			RemainingBalance: Money(row.RemainingBalance),
		}
	}

	return out
}

func Metrics(m domain.PeriodMetrics) domain.PeriodMetrics {
	return domain.PeriodMetrics{
		EffectiveIncome:         Money(m.EffectiveIncome),
		NetOperatingIncome:      Money(m.NetOperatingIncome),
		CashFlow:                Money(m.CashFlow),
		CashOnCashReturnPercent: Percent(m.CashOnCashReturnPercent),
		CapRatePercent:          Percent(m.CapRatePercent),
	}
}

func Projections(projections []domain.Projection) []domain.Projection {
	out := make([]domain.Projection, len(projections))
	for i, p := range projections {
		out[i] = projection(p)
	}
	return out
}

func projection(p domain.Projection) domain.Projection {
	out := p
	out.InitialInvestment = Money(p.InitialInvestment)
	out.FirstYearCashOnCash = Percent(p.FirstYearCashOnCash)
	out.FirstYearCapRate = Percent(p.FirstYearCapRate)
	out.TotalCashFlow = Money(p.TotalCashFlow)
	out.FinalEquity = Money(p.FinalEquity)
	out.TotalReturnPercent = Percent(p.TotalReturnPercent)

	out.Years = make([]domain.YearlyCashFlow, len(p.Years))
	for i, y := range p.Years {
		out.Years[i] = domain.YearlyCashFlow{
			Year:               y.Year,
			GrossIncome:        Money(y.GrossIncome),
			EffectiveIncome:    Money(y.EffectiveIncome),
			OperatingExpenses:  Money(y.OperatingExpenses),
			FinancingCost:      Money(y.FinancingCost),
			TotalExpenses:      Money(y.TotalExpenses),
			CashFlow:           Money(y.CashFlow),
			CumulativeCashFlow: Money(y.CumulativeCashFlow),
			PropertyValue:      Money(y.PropertyValue),
			LoanBalance:        Money(y.LoanBalance),
			Equity:             Money(y.Equity),
		}
	}
	return out
}

func Liquidity(r domain.LiquidityReport) domain.LiquidityReport {
	out := domain.LiquidityReport{
		Timeline: make([]domain.LiquiditySample, len(r.Timeline)),
		Summary: domain.PortfolioSummary{
			PlanCount:               r.Summary.PlanCount,
			TotalLoanAmount:         Money(r.Summary.TotalLoanAmount),
			TotalRemainingPrincipal: Money(r.Summary.TotalRemainingPrincipal),
			TotalMonthlyPayment:     Money(r.Summary.TotalMonthlyPayment),
			WeightedAverageRate:     Rate(r.Summary.WeightedAverageRate),
			PaymentsByLender:        make(map[string]float64, len(r.Summary.PaymentsByLender)),
			PaymentsByYear:          make(map[int]float64, len(r.Summary.PaymentsByYear)),
		},
	}

	for i, s := range r.Timeline {
		s.TotalPayment = Money(s.TotalPayment)
		out.Timeline[i] = s
	}
	for lender, v := range r.Summary.PaymentsByLender {
		out.Summary.PaymentsByLender[lender] = Money(v)
	}
	for year, v := range r.Summary.PaymentsByYear {
		out.Summary.PaymentsByYear[year] = Money(v)
	}

	return out
}
