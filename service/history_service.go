package service

import (
	"investment-engine/domain"
	"investment-engine/repository"
)

type HistoryService struct {
	repo repository.CalculationRepository
}

func NewHistoryService(repo repository.CalculationRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Recent lists the latest calculations, newest first.
func (s *HistoryService) Recent(limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.Recent(limit)
}
