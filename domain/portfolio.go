package domain

import "time"

// FinancingPlan is one loan in a portfolio, with its own active window.
type FinancingPlan struct {
	ID                  string            `json:"id"`
	Lender              string            `json:"lender"`
	LoanAmount          float64           `json:"loan_amount"`
	StartDate           time.Time         `json:"start_date"`
	EndDate             time.Time         `json:"end_date"`
	InterestRatePercent float64           `json:"interest_rate_percent"`
	MonthlyPayment      float64           `json:"monthly_payment"`
	Schedule            []AmortizationRow `json:"schedule,omitempty"`
}

type LiquiditySample struct {
	Month        time.Time `json:"month"`
	Label        string    `json:"label"`
	TotalPayment float64   `json:"total_payment"`
	ActivePlans  int       `json:"active_plans"`
}

type PortfolioSummary struct {
	PlanCount               int                `json:"plan_count"`
	TotalLoanAmount         float64            `json:"total_loan_amount"`
	TotalRemainingPrincipal float64            `json:"total_remaining_principal"`
	TotalMonthlyPayment     float64            `json:"total_monthly_payment"`
	WeightedAverageRate     float64            `json:"weighted_average_rate"`
	PaymentsByLender        map[string]float64 `json:"payments_by_lender"`
	PaymentsByYear          map[int]float64    `json:"payments_by_year"`
}

type LiquidityReport struct {
	Timeline []LiquiditySample `json:"timeline"`
	Summary  PortfolioSummary  `json:"summary"`
}
