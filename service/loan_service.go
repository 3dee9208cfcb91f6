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

type Options struct {
	CacheTTL time.Duration
	Limits   Limits
}

type LoanService struct {
	run    *runner
	limits Limits
}

// NewLoanService creates a LoanService. cache may be nil to disable caching.
func NewLoanService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	opts Options,
	logger *zap.Logger,
) *LoanService {
	return &LoanService{
		run:    newRunner(repo, cache, opts.CacheTTL, logger),
		limits: opts.Limits,
	}
}

// CheckTerms applies the service limits on top of the generator's own
// validation.
func (s *LoanService) CheckTerms(terms domain.LoanTerms) error {
	if s.limits.MaxLoanAmount > 0 && terms.Principal > s.limits.MaxLoanAmount {
		return &domain.InvalidParameterError{
			Field:  "principal",
			Reason: fmt.Sprintf("exceeds the maximum of %.2f", s.limits.MaxLoanAmount),
		}
	}
	if s.limits.MaxInterestRate > 0 && terms.AnnualRatePercent > s.limits.MaxInterestRate {
		return &domain.InvalidParameterError{
			Field:  "annual_rate_percent",
			Reason: fmt.Sprintf("exceeds the maximum of %.2f%%", s.limits.MaxInterestRate),
		}
	}
	if s.limits.MaxTermYears > 0 && terms.TermYears > s.limits.MaxTermYears {
		return &domain.InvalidParameterError{
			Field:  "term_years",
			Reason: fmt.Sprintf("exceeds the maximum of %d years", s.limits.MaxTermYears),
		}
	}
	return nil
}

// GenerateSchedule returns the amortization table and its totals.
func (s *LoanService) GenerateSchedule(
	ctx context.Context,
	terms domain.LoanTerms,
) (domain.LoanResult, error) {

	if err := s.CheckTerms(terms); err != nil {
		return domain.LoanResult{}, err
	}

	return cached(ctx, s.run, KindSchedule, terms, func() (domain.LoanResult, error) {
		rows, err := finance.GenerateSchedule(terms)
		if err != nil {
			return domain.LoanResult{}, fmt.Errorf("generate schedule: %w", err)
		}
		return domain.LoanResult{
			Terms:    terms,
			Summary:  finance.SummarizeSchedule(rows),
			Schedule: rows,
		}, nil
	})
}
