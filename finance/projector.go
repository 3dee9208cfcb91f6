package finance

import (
	"investment-engine/domain"
)

// operatingCosts are the escalating annual expense categories. Management
// fees are not listed: they follow collected rent.
type operatingCosts struct {
	propertyTax float64
	insurance   float64
	maintenance float64
	utilities   float64
	hoa         float64
	other       float64
}

func (c operatingCosts) total() float64 {
	return c.propertyTax + c.insurance + c.maintenance + c.utilities + c.hoa + c.other
}

func (c operatingCosts) grow(rate float64) operatingCosts {
	f := 1 + rate/100
	return operatingCosts{
		propertyTax: c.propertyTax * f,
		insurance:   c.insurance * f,
		maintenance: c.maintenance * f,
		utilities:   c.utilities * f,
		hoa:         c.hoa * f,
		other:       c.other * f,
	}
}

// yearState is the running state of a projection. Each step returns a new
// value; nothing is shared with the caller's DealParameters.
type yearState struct {
	monthlyRent   float64
	costs         operatingCosts
	propertyValue float64
	cumulative    float64
}

type scenarioRates struct {
	appreciation float64
	rentIncrease float64
	expenseRise  float64
	vacancy      float64
}

func adjustRates(deal domain.DealParameters, adj domain.ScenarioAdjustment) scenarioRates {
	return scenarioRates{
		appreciation: deal.AppreciationRatePercent * adj.Appreciation,
		rentIncrease: deal.RentIncreasePercent * adj.RentIncrease,
		expenseRise:  deal.ExpenseIncreasePercent * adj.ExpenseIncrease,
		vacancy:      deal.VacancyRatePercent * adj.Vacancy,
	}
}

func (s yearState) escalate(rates scenarioRates) yearState {
	return yearState{
		monthlyRent:   s.monthlyRent * (1 + rates.rentIncrease/100),
		costs:         s.costs.grow(rates.expenseRise),
		propertyValue: s.propertyValue * (1 + rates.appreciation/100),
		cumulative:    s.cumulative,
	}
}

// financing returns the constant annual debt service and the schedule used
// for balance reporting. An all-cash deal has neither.
func financing(deal domain.DealParameters) (float64, []domain.AmortizationRow, error) {
	if deal.Loan == nil || deal.Loan.Principal == 0 {
		return 0, nil, nil
	}
	rows, err := GenerateSchedule(*deal.Loan)
	if err != nil {
		return 0, nil, err
	}
	return rows[0].Payment * monthsPerYear, rows, nil
}

// Project simulates the deal year by year under one scenario adjustment.
// Each year's row is computed from the current state, and the state is then
// escalated for the following year.
func Project(
	deal domain.DealParameters,
	years int,
	adj domain.ScenarioAdjustment,
) (domain.Projection, error) {

	if years <= 0 {
		return domain.Projection{}, &domain.InvalidParameterError{Field: "simulation_years", Reason: "must be positive"}
	}

	annualDebtService, schedule, err := financing(deal)
	if err != nil {
		return domain.Projection{}, err
	}

	rates := adjustRates(deal, adj)
	investment := deal.InitialInvestment()

	state := yearState{
		monthlyRent: deal.MonthlyRent,
		costs: operatingCosts{
			propertyTax: deal.PropertyTax,
			insurance:   deal.Insurance,
			maintenance: deal.Maintenance,
			utilities:   deal.Utilities,
			hoa:         deal.HOA,
			other:       deal.OtherExpenses,
		},
		propertyValue: deal.PurchasePrice,
	}

	result := domain.Projection{
		Adjustment:        adj,
		Years:             make([]domain.YearlyCashFlow, 0, years),
		InitialInvestment: investment,
	}

	for year := 1; year <= years; year++ {
		gross := state.monthlyRent * monthsPerYear
		effective := gross * (1 - rates.vacancy/100)
		operating := state.costs.total() + effective*deal.ManagementFeePercent/100

		metrics := ComputePeriodMetrics(domain.PeriodInput{
			GrossIncome:        gross,
			VacancyRatePercent: rates.vacancy,
			OperatingExpenses:  operating,
			FinancingCost:      annualDebtService,
			InitialInvestment:  investment,
			PurchasePrice:      deal.PurchasePrice,
		})

		next := state.escalate(rates)
		next.cumulative = state.cumulative + metrics.CashFlow

		balance := 0.0
		if schedule != nil {
			balance = BalanceAfter(schedule, year*monthsPerYear)
		}

		result.Years = append(result.Years, domain.YearlyCashFlow{
			Year:               year,
			GrossIncome:        gross,
			EffectiveIncome:    metrics.EffectiveIncome,
			OperatingExpenses:  operating,
			FinancingCost:      annualDebtService,
			TotalExpenses:      operating + annualDebtService,
			CashFlow:           metrics.CashFlow,
			CumulativeCashFlow: next.cumulative,
			PropertyValue:      next.propertyValue,
			LoanBalance:        balance,
			Equity:             next.propertyValue - balance,
		})

		if year == 1 {
			result.FirstYearCashOnCash = metrics.CashOnCashReturnPercent
			result.FirstYearCapRate = metrics.CapRatePercent
		}
		if result.BreakEvenYear == 0 && next.cumulative > 0 {
			result.BreakEvenYear = year
		}

		state = next
	}

	last := result.Years[len(result.Years)-1]
	result.TotalCashFlow = last.CumulativeCashFlow
	result.FinalEquity = last.Equity
	result.TotalReturnPercent = ratio(last.CumulativeCashFlow+last.Equity-investment, investment)

	return result, nil
}
