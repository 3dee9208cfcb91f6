package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"investment-engine/domain"
)

func TestComputePeriodMetrics_Monthly(t *testing.T) {
	m := ComputePeriodMetrics(domain.PeriodInput{
		GrossIncome:        3000,
		VacancyRatePercent: 5,
		OperatingExpenses:  500,
		FinancingCost:      1200,
		InitialInvestment:  100000,
		PurchasePrice:      400000,
		PeriodsPerYear:     12,
	})

	assert.InDelta(t, 2850.0, m.EffectiveIncome, 1e-9)
	assert.InDelta(t, 2350.0, m.NetOperatingIncome, 1e-9)
	assert.InDelta(t, 1150.0, m.CashFlow, 1e-9)
	assert.InDelta(t, 13.8, m.CashOnCashReturnPercent, 1e-9)
	assert.InDelta(t, 7.05, m.CapRatePercent, 1e-9)
}

func TestComputePeriodMetrics_AnnualByDefault(t *testing.T) {
	m := ComputePeriodMetrics(domain.PeriodInput{
		GrossIncome:       36000,
		OperatingExpenses: 6000,
		FinancingCost:     20000,
		InitialInvestment: 50000,
		PurchasePrice:     300000,
	})

	assert.InDelta(t, 10000.0, m.CashFlow, 1e-9)
	assert.InDelta(t, 20.0, m.CashOnCashReturnPercent, 1e-9)
	assert.InDelta(t, 10.0, m.CapRatePercent, 1e-9)
}

func TestComputePeriodMetrics_CapRateIgnoresFinancing(t *testing.T) {
	in := domain.PeriodInput{GrossIncome: 24000, OperatingExpenses: 4000, PurchasePrice: 200000, InitialInvestment: 40000}

	cash := ComputePeriodMetrics(in)
	in.FinancingCost = 15000
	levered := ComputePeriodMetrics(in)

	assert.Equal(t, cash.CapRatePercent, levered.CapRatePercent)
	assert.Less(t, levered.CashOnCashReturnPercent, cash.CashOnCashReturnPercent)
}

func TestComputePeriodMetrics_DivisionGuard(t *testing.T) {
	m := ComputePeriodMetrics(domain.PeriodInput{
		GrossIncome:       1000,
		OperatingExpenses: 100,
		InitialInvestment: 0,
		PurchasePrice:     -5,
	})

	assert.Equal(t, 0.0, m.CashOnCashReturnPercent)
	assert.Equal(t, 0.0, m.CapRatePercent)
	assert.InDelta(t, 900.0, m.CashFlow, 1e-9)
}
