package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"investment-engine/domain"
	"investment-engine/finance"
	"investment-engine/repository"
)

// PortfolioLoan describes a plan by its loan terms; the schedule, end date
// and payment are derived.
type PortfolioLoan struct {
	ID     string           `json:"id"`
	Lender string           `json:"lender"`
	Terms  domain.LoanTerms `json:"terms"`
}

type PortfolioRequest struct {
	Plans []domain.FinancingPlan `json:"plans"`
	Loans []PortfolioLoan        `json:"loans"`
	// AsOf defaults to the current time.
	AsOf time.Time `json:"as_of"`
}

type PortfolioService struct {
	loanService *LoanService
	run         *runner
	limits      Limits
}

func NewPortfolioService(
	loanService *LoanService,
	repo repository.CalculationRepository,
	opts Options,
	logger *zap.Logger,
) *PortfolioService {
	return &PortfolioService{
		loanService: loanService,
		run:         newRunner(repo, nil, 0, logger),
		limits:      opts.Limits,
	}
}

// Liquidity merges every plan into one monthly payment timeline and
// summarizes the portfolio. Results depend on AsOf, so they are not cached.
func (s *PortfolioService) Liquidity(
	_ context.Context,
	req PortfolioRequest,
) (domain.LiquidityReport, error) {

	total := len(req.Plans) + len(req.Loans)
	if s.limits.MaxPlans > 0 && total > s.limits.MaxPlans {
		return domain.LiquidityReport{}, &domain.InvalidParameterError{
			Field:  "plans",
			Reason: fmt.Sprintf("exceeds the maximum of %d", s.limits.MaxPlans),
		}
	}

	plans := make([]domain.FinancingPlan, 0, total)
	plans = append(plans, req.Plans...)

	for i, loan := range req.Loans {
		if err := s.loanService.CheckTerms(loan.Terms); err != nil {
			return domain.LiquidityReport{}, fmt.Errorf("loans[%d]: %w", i, err)
		}
		plan, err := finance.PlanFromTerms(loan.ID, loan.Lender, loan.Terms)
		if err != nil {
			return domain.LiquidityReport{}, fmt.Errorf("loans[%d]: %w", i, err)
		}
		plans = append(plans, plan)
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = s.run.now()
	}

	timeline, err := finance.Aggregate(plans)
	if err != nil {
		return domain.LiquidityReport{}, fmt.Errorf("aggregate plans: %w", err)
	}
	summary, err := finance.Summarize(plans, asOf)
	if err != nil {
		return domain.LiquidityReport{}, fmt.Errorf("summarize plans: %w", err)
	}

	s.run.logger.Info("liquidity aggregated",
		zap.Int("plans", len(plans)),
		zap.Int("months", len(timeline)),
		zap.Float64("total_monthly_payment", summary.TotalMonthlyPayment))
	s.run.record(KindLiquidity, "", false)

	return domain.LiquidityReport{Timeline: timeline, Summary: summary}, nil
}
