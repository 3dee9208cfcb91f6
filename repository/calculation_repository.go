package repository

import "investment-engine/domain"

type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
	Recent(limit int) ([]domain.CalculationRecord, error)
}
