package finance

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-engine/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSchedule_ThirtyYearMortgage(t *testing.T) {
	rows, err := GenerateSchedule(domain.LoanTerms{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         30,
		StartDate:         date(2024, time.January, 1),
	})
	require.NoError(t, err)
	require.Len(t, rows, 360)

	assert.InDelta(t, 1520.06, rows[0].Payment, 0.005)

	summary := SummarizeSchedule(rows)
	assert.InDelta(t, 247220.13, summary.TotalInterest, 0.01)
	assert.Equal(t, 360, summary.Periods)
	assert.Equal(t, date(2053, time.December, 1), summary.PayoffDate)

	// Quoted figure uses the payment rounded to cents.
	rounded := math.Round(rows[0].Payment*100) / 100
	assert.InDelta(t, 247221.60, rounded*360-300000, 0.01)
}

func TestGenerateSchedule_Closure(t *testing.T) {
	cases := []domain.LoanTerms{
		{Principal: 300000, AnnualRatePercent: 4.5, TermYears: 30},
		{Principal: 12345.67, AnnualRatePercent: 19.99, TermYears: 3},
		{Principal: 1_000_000, AnnualRatePercent: 0.125, TermYears: 40},
		{Principal: 5000, AnnualRatePercent: 7, TermYears: 1},
		{Principal: 250000, AnnualRatePercent: 0, TermYears: 15},
	}

	for _, terms := range cases {
		terms.StartDate = date(2024, time.March, 15)
		rows, err := GenerateSchedule(terms)
		require.NoError(t, err)
		require.Len(t, rows, terms.TermYears*12)

		var principalSum float64
		prevBalance := terms.Principal
		for i, row := range rows {
			assert.Equal(t, i+1, row.Period)
			assert.InDelta(t, row.Payment, row.Principal+row.Interest, 1e-9)
			assert.LessOrEqual(t, row.RemainingBalance, prevBalance)
			prevBalance = row.RemainingBalance
			principalSum += row.Principal
		}

		assert.InDelta(t, terms.Principal, principalSum, terms.Principal*1e-6)
		assert.Equal(t, 0.0, rows[len(rows)-1].RemainingBalance)
	}
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	rows, err := GenerateSchedule(domain.LoanTerms{
		Principal:         120000,
		AnnualRatePercent: 0,
		TermYears:         10,
		StartDate:         date(2024, time.January, 1),
	})
	require.NoError(t, err)
	require.Len(t, rows, 120)

	for _, row := range rows {
		assert.InDelta(t, 1000.0, row.Principal, 1e-9)
		assert.Equal(t, 0.0, row.Interest)
	}
	assert.Equal(t, 0.0, rows[119].RemainingBalance)
}

func TestGenerateSchedule_CalendarMonths(t *testing.T) {
	rows, err := GenerateSchedule(domain.LoanTerms{
		Principal:         10000,
		AnnualRatePercent: 6,
		TermYears:         2,
		StartDate:         date(2024, time.January, 31),
	})
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 31), rows[0].Date)
	assert.Equal(t, date(2024, time.February, 29), rows[1].Date)
	assert.Equal(t, date(2024, time.March, 31), rows[2].Date)
	assert.Equal(t, date(2024, time.April, 30), rows[3].Date)
	assert.Equal(t, date(2025, time.January, 31), rows[12].Date)
	assert.Equal(t, date(2025, time.February, 28), rows[13].Date)
}

func TestGenerateSchedule_InvalidTerms(t *testing.T) {
	cases := map[string]domain.LoanTerms{
		"zero principal":     {Principal: 0, AnnualRatePercent: 5, TermYears: 30},
		"negative principal": {Principal: -1, AnnualRatePercent: 5, TermYears: 30},
		"zero term":          {Principal: 1000, AnnualRatePercent: 5, TermYears: 0},
		"negative rate":      {Principal: 1000, AnnualRatePercent: -0.5, TermYears: 30},
		"nan rate":           {Principal: 1000, AnnualRatePercent: math.NaN(), TermYears: 30},
	}

	for name, terms := range cases {
		t.Run(name, func(t *testing.T) {
			rows, err := GenerateSchedule(terms)
			assert.Nil(t, rows)

			var termsErr *domain.InvalidTermsError
			assert.True(t, errors.As(err, &termsErr), "expected InvalidTermsError, got %v", err)

			_, err = MonthlyPayment(terms)
			assert.True(t, errors.As(err, &termsErr))
		})
	}
}

func TestGenerateSchedule_Deterministic(t *testing.T) {
	terms := domain.LoanTerms{Principal: 215000, AnnualRatePercent: 6.875, TermYears: 25, StartDate: date(2023, time.May, 1)}

	first, err := GenerateSchedule(terms)
	require.NoError(t, err)
	second, err := GenerateSchedule(terms)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMonthlyPayment_MatchesSchedule(t *testing.T) {
	terms := domain.LoanTerms{Principal: 400000, AnnualRatePercent: 3.5, TermYears: 30}

	pmt, err := MonthlyPayment(terms)
	require.NoError(t, err)
	assert.InDelta(t, 1796.18, pmt, 0.005)

	rows, err := GenerateSchedule(terms)
	require.NoError(t, err)
	assert.Equal(t, pmt, rows[0].Payment)
}

func TestBalanceAfter(t *testing.T) {
	rows, err := GenerateSchedule(domain.LoanTerms{Principal: 50000, AnnualRatePercent: 5, TermYears: 5})
	require.NoError(t, err)

	assert.InDelta(t, 50000.0, BalanceAfter(rows, 0), 1e-6)
	assert.Equal(t, rows[11].RemainingBalance, BalanceAfter(rows, 12))
	assert.Equal(t, 0.0, BalanceAfter(rows, 60))
	assert.Equal(t, 0.0, BalanceAfter(rows, 600))
	assert.Equal(t, 0.0, BalanceAfter(nil, 12))
}

func TestSummarizeSchedule_Empty(t *testing.T) {
	assert.Equal(t, domain.ScheduleSummary{}, SummarizeSchedule(nil))
}
