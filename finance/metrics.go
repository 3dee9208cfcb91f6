package finance

import "investment-engine/domain"

// ratio returns num/den*100, or 0 when the denominator is not positive.
// These are display metrics; an undefined ratio reads as zero.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}

// ComputePeriodMetrics derives cash flow and return ratios for one period.
// Cap rate ignores financing by definition.
func ComputePeriodMetrics(in domain.PeriodInput) domain.PeriodMetrics {
	periods := in.PeriodsPerYear
	if periods <= 0 {
		periods = 1
	}

	effective := in.GrossIncome * (1 - in.VacancyRatePercent/100)
	noi := effective - in.OperatingExpenses
	cashFlow := effective - (in.OperatingExpenses + in.FinancingCost)

	return domain.PeriodMetrics{
		EffectiveIncome:         effective,
		NetOperatingIncome:      noi,
		CashFlow:                cashFlow,
		CashOnCashReturnPercent: ratio(cashFlow*float64(periods), in.InitialInvestment),
		CapRatePercent:          ratio(noi*float64(periods), in.PurchasePrice),
	}
}
