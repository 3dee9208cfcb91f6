package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"investment-engine/domain"
	"investment-engine/finance"
	"investment-engine/repository"
)

type ProjectionRequest struct {
	Deal            domain.DealParameters      `json:"deal"`
	SimulationYears int                        `json:"simulation_years"`
	Custom          *domain.ScenarioAdjustment `json:"custom,omitempty"`
}

type ProjectionService struct {
	loanService *LoanService
	run         *runner
	limits      Limits
}

func NewProjectionService(
	loanService *LoanService,
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	opts Options,
	logger *zap.Logger,
) *ProjectionService {
	return &ProjectionService{
		loanService: loanService,
		run:         newRunner(repo, cache, opts.CacheTTL, logger),
		limits:      opts.Limits,
	}
}

// Project runs the base, optimistic and pessimistic scenarios (plus the
// custom one when supplied) for the same deal.
func (s *ProjectionService) Project(
	ctx context.Context,
	req ProjectionRequest,
) ([]domain.Projection, error) {

	if s.limits.MaxSimulationYears > 0 && req.SimulationYears > s.limits.MaxSimulationYears {
		return nil, &domain.InvalidParameterError{
			Field:  "simulation_years",
			Reason: fmt.Sprintf("exceeds the maximum of %d", s.limits.MaxSimulationYears),
		}
	}
	if req.Deal.Loan != nil {
		if err := s.loanService.CheckTerms(*req.Deal.Loan); err != nil {
			return nil, err
		}
	}

	return cached(ctx, s.run, KindProjection, req, func() ([]domain.Projection, error) {
		projections, err := finance.ProjectAll(req.Deal, req.SimulationYears, req.Custom)
		if err != nil {
			return nil, fmt.Errorf("project deal: %w", err)
		}
		return projections, nil
	})
}

// Metrics evaluates a single period. It is cheap enough to skip the cache.
func (s *ProjectionService) Metrics(in domain.PeriodInput) domain.PeriodMetrics {
	m := finance.ComputePeriodMetrics(in)
	s.run.record(KindMetrics, "", false)
	return m
}
