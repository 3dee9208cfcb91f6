package http

import (
	"fmt"
	"time"

	"investment-engine/domain"
	"investment-engine/service"
)

const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, &domain.InvalidParameterError{Field: field, Reason: "must be a YYYY-MM-DD date"}
	}
	return t, nil
}

type LoanTermsRequest struct {
	Principal         float64 `json:"principal" validate:"gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"gte=0"`
	TermYears         int     `json:"term_years" validate:"gt=0"`
	StartDate         string  `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func (r LoanTermsRequest) toDomain(field string) (domain.LoanTerms, error) {
	start, err := parseDate(field+".start_date", r.StartDate)
	if err != nil {
		return domain.LoanTerms{}, err
	}
	return domain.LoanTerms{
		Principal:         r.Principal,
		AnnualRatePercent: r.AnnualRatePercent,
		TermYears:         r.TermYears,
		StartDate:         start,
	}, nil
}

type PeriodRequest struct {
	GrossIncome        float64 `json:"gross_income" validate:"gte=0"`
	VacancyRatePercent float64 `json:"vacancy_rate_percent" validate:"gte=0,lte=100"`
	OperatingExpenses  float64 `json:"operating_expenses" validate:"gte=0"`
	FinancingCost      float64 `json:"financing_cost" validate:"gte=0"`
	InitialInvestment  float64 `json:"initial_investment"`
	PurchasePrice      float64 `json:"purchase_price"`
	PeriodsPerYear     int     `json:"periods_per_year" validate:"omitempty,oneof=1 2 4 12 52"`
}

func (r PeriodRequest) toDomain() domain.PeriodInput {
	return domain.PeriodInput{
		GrossIncome:        r.GrossIncome,
		VacancyRatePercent: r.VacancyRatePercent,
		OperatingExpenses:  r.OperatingExpenses,
		FinancingCost:      r.FinancingCost,
		InitialInvestment:  r.InitialInvestment,
		PurchasePrice:      r.PurchasePrice,
		PeriodsPerYear:     r.PeriodsPerYear,
	}
}

type DealRequest struct {
	PurchasePrice   float64 `json:"purchase_price" validate:"gt=0"`
	DownPayment     float64 `json:"down_payment" validate:"gte=0"`
	ClosingCosts    float64 `json:"closing_costs" validate:"gte=0"`
	RenovationCosts float64 `json:"renovation_costs" validate:"gte=0"`

	MonthlyRent          float64 `json:"monthly_rent" validate:"gte=0"`
	VacancyRatePercent   float64 `json:"vacancy_rate_percent" validate:"gte=0,lte=100"`
	ManagementFeePercent float64 `json:"management_fee_percent" validate:"gte=0,lte=100"`

	PropertyTax   float64 `json:"property_tax" validate:"gte=0"`
	Insurance     float64 `json:"insurance" validate:"gte=0"`
	Maintenance   float64 `json:"maintenance" validate:"gte=0"`
	Utilities     float64 `json:"utilities" validate:"gte=0"`
	HOA           float64 `json:"hoa" validate:"gte=0"`
	OtherExpenses float64 `json:"other_expenses" validate:"gte=0"`

	AppreciationRatePercent float64 `json:"appreciation_rate_percent"`
	RentIncreasePercent     float64 `json:"rent_increase_percent"`
	ExpenseIncreasePercent  float64 `json:"expense_increase_percent"`

	Loan *LoanTermsRequest `json:"loan" validate:"omitempty"`
}

type AdjustmentRequest struct {
	Appreciation    float64 `json:"appreciation"`
	RentIncrease    float64 `json:"rent_increase"`
	ExpenseIncrease float64 `json:"expense_increase"`
	Vacancy         float64 `json:"vacancy"`
}

type ProjectionRequest struct {
	Deal            DealRequest        `json:"deal"`
	SimulationYears int                `json:"simulation_years" validate:"gt=0"`
	Custom          *AdjustmentRequest `json:"custom" validate:"omitempty"`
}

func (r ProjectionRequest) toService() (service.ProjectionRequest, error) {
	d := r.Deal
	deal := domain.DealParameters{
		PurchasePrice:           d.PurchasePrice,
		DownPayment:             d.DownPayment,
		ClosingCosts:            d.ClosingCosts,
		RenovationCosts:         d.RenovationCosts,
		MonthlyRent:             d.MonthlyRent,
		VacancyRatePercent:      d.VacancyRatePercent,
		ManagementFeePercent:    d.ManagementFeePercent,
		PropertyTax:             d.PropertyTax,
		Insurance:               d.Insurance,
		Maintenance:             d.Maintenance,
		Utilities:               d.Utilities,
		HOA:                     d.HOA,
		OtherExpenses:           d.OtherExpenses,
		AppreciationRatePercent: d.AppreciationRatePercent,
		RentIncreasePercent:     d.RentIncreasePercent,
		ExpenseIncreasePercent:  d.ExpenseIncreasePercent,
	}

	if d.Loan != nil {
		terms, err := d.Loan.toDomain("deal.loan")
		if err != nil {
			return service.ProjectionRequest{}, err
		}
		deal.Loan = &terms
	}

	req := service.ProjectionRequest{Deal: deal, SimulationYears: r.SimulationYears}
	if r.Custom != nil {
		req.Custom = &domain.ScenarioAdjustment{
			Appreciation:    r.Custom.Appreciation,
			RentIncrease:    r.Custom.RentIncrease,
			ExpenseIncrease: r.Custom.ExpenseIncrease,
			Vacancy:         r.Custom.Vacancy,
		}
	}
	return req, nil
}

type PlanRequest struct {
	ID                  string  `json:"id"`
	Lender              string  `json:"lender" validate:"required"`
	LoanAmount          float64 `json:"loan_amount" validate:"gte=0"`
	StartDate           string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate             string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	InterestRatePercent float64 `json:"interest_rate_percent" validate:"gte=0"`
	MonthlyPayment      float64 `json:"monthly_payment" validate:"gte=0"`
}

type PortfolioLoanRequest struct {
	ID     string           `json:"id"`
	Lender string           `json:"lender" validate:"required"`
	Terms  LoanTermsRequest `json:"terms"`
}

type PortfolioRequest struct {
	Plans []PlanRequest          `json:"plans" validate:"dive"`
	Loans []PortfolioLoanRequest `json:"loans" validate:"dive"`
	AsOf  string                 `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

func (r PortfolioRequest) toService() (service.PortfolioRequest, error) {
	out := service.PortfolioRequest{
		Plans: make([]domain.FinancingPlan, 0, len(r.Plans)),
		Loans: make([]service.PortfolioLoan, 0, len(r.Loans)),
	}

	for i, p := range r.Plans {
		field := fmt.Sprintf("plans[%d]", i)
		start, err := parseDate(field+".start_date", p.StartDate)
		if err != nil {
			return service.PortfolioRequest{}, err
		}
		end, err := parseDate(field+".end_date", p.EndDate)
		if err != nil {
			return service.PortfolioRequest{}, err
		}
		out.Plans = append(out.Plans, domain.FinancingPlan{
			ID:                  p.ID,
			Lender:              p.Lender,
			LoanAmount:          p.LoanAmount,
			StartDate:           start,
			EndDate:             end,
			InterestRatePercent: p.InterestRatePercent,
			MonthlyPayment:      p.MonthlyPayment,
		})
	}

	for i, l := range r.Loans {
		terms, err := l.Terms.toDomain(fmt.Sprintf("loans[%d].terms", i))
		if err != nil {
			return service.PortfolioRequest{}, err
		}
		out.Loans = append(out.Loans, service.PortfolioLoan{ID: l.ID, Lender: l.Lender, Terms: terms})
	}

	if r.AsOf != "" {
		asOf, err := parseDate("as_of", r.AsOf)
		if err != nil {
			return service.PortfolioRequest{}, err
		}
		out.AsOf = asOf
	}

	return out, nil
}
