package domain

// DealParameters is a snapshot of a rental property purchase. Rates are
// percentages, expenses are annual amounts.
type DealParameters struct {
	PurchasePrice   float64 `json:"purchase_price"`
	DownPayment     float64 `json:"down_payment"`
	ClosingCosts    float64 `json:"closing_costs"`
	RenovationCosts float64 `json:"renovation_costs"`

	MonthlyRent          float64 `json:"monthly_rent"`
	VacancyRatePercent   float64 `json:"vacancy_rate_percent"`
	ManagementFeePercent float64 `json:"management_fee_percent"`

	PropertyTax   float64 `json:"property_tax"`
	Insurance     float64 `json:"insurance"`
	Maintenance   float64 `json:"maintenance"`
	Utilities     float64 `json:"utilities"`
	HOA           float64 `json:"hoa"`
	OtherExpenses float64 `json:"other_expenses"`

	AppreciationRatePercent float64 `json:"appreciation_rate_percent"`
	RentIncreasePercent     float64 `json:"rent_increase_percent"`
	ExpenseIncreasePercent  float64 `json:"expense_increase_percent"`

	// Loan is nil for an all-cash purchase.
	Loan *LoanTerms `json:"loan,omitempty"`
}

// InitialInvestment is the cash the buyer brings to closing.
func (d DealParameters) InitialInvestment() float64 {
	return d.DownPayment + d.ClosingCosts + d.RenovationCosts
}

// ScenarioAdjustment scales the base growth/decay rates of a deal.
type ScenarioAdjustment struct {
	Appreciation    float64 `json:"appreciation"`
	RentIncrease    float64 `json:"rent_increase"`
	ExpenseIncrease float64 `json:"expense_increase"`
	Vacancy         float64 `json:"vacancy"`
}

type PeriodInput struct {
	GrossIncome        float64 `json:"gross_income"`
	VacancyRatePercent float64 `json:"vacancy_rate_percent"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	FinancingCost      float64 `json:"financing_cost"`
	InitialInvestment  float64 `json:"initial_investment"`
	PurchasePrice      float64 `json:"purchase_price"`
	// PeriodsPerYear annualizes the ratios; 12 for monthly figures. Zero means annual.
	PeriodsPerYear int `json:"periods_per_year"`
}

type PeriodMetrics struct {
	EffectiveIncome         float64 `json:"effective_income"`
	NetOperatingIncome      float64 `json:"net_operating_income"`
	CashFlow                float64 `json:"cash_flow"`
	CashOnCashReturnPercent float64 `json:"cash_on_cash_return_percent"`
	CapRatePercent          float64 `json:"cap_rate_percent"`
}

type YearlyCashFlow struct {
	Year               int     `json:"year"`
	GrossIncome        float64 `json:"gross_income"`
	EffectiveIncome    float64 `json:"effective_income"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	FinancingCost      float64 `json:"financing_cost"`
	TotalExpenses      float64 `json:"total_expenses"`
	CashFlow           float64 `json:"cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	PropertyValue      float64 `json:"property_value"`
	LoanBalance        float64 `json:"loan_balance"`
	Equity             float64 `json:"equity"`
}

type Projection struct {
	Scenario            string             `json:"scenario"`
	Adjustment          ScenarioAdjustment `json:"adjustment"`
	Years               []YearlyCashFlow   `json:"years"`
	BreakEvenYear       int                `json:"break_even_year"`
	InitialInvestment   float64            `json:"initial_investment"`
	FirstYearCashOnCash float64            `json:"first_year_cash_on_cash"`
	FirstYearCapRate    float64            `json:"first_year_cap_rate"`
	TotalCashFlow       float64            `json:"total_cash_flow"`
	FinalEquity         float64            `json:"final_equity"`
	TotalReturnPercent  float64            `json:"total_return_percent"`
}
