package domain

import "time"

// LoanTerms describes a fixed-rate, fully amortizing loan.
type LoanTerms struct {
	Principal         float64   `json:"principal"`
	AnnualRatePercent float64   `json:"annual_rate_percent"`
	TermYears         int       `json:"term_years"`
	StartDate         time.Time `json:"start_date"`
}

// AmortizationRow is one payment period of a schedule.
type AmortizationRow struct {
	Period           int       `json:"period"`
	Date             time.Time `json:"date"`
	Payment          float64   `json:"payment"`
	Principal        float64   `json:"principal"`
	Interest         float64   `json:"interest"`
	RemainingBalance float64   `json:"remaining_balance"`
}

type ScheduleSummary struct {
	MonthlyPayment float64   `json:"monthly_payment"`
	TotalPayment   float64   `json:"total_payment"`
	TotalInterest  float64   `json:"total_interest"`
	Periods        int       `json:"periods"`
	PayoffDate     time.Time `json:"payoff_date"`
}

type LoanResult struct {
	Terms    LoanTerms         `json:"terms"`
	Summary  ScheduleSummary   `json:"summary"`
	Schedule []AmortizationRow `json:"schedule"`
}

// CalculationRecord is an entry of the recent-calculations log.
type CalculationRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	CacheKey  string    `json:"cache_key"`
	CacheHit  bool      `json:"cache_hit"`
	CreatedAt time.Time `json:"created_at"`
}
