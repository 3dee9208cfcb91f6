package repository

import (
	"sync"

	"investment-engine/domain"
)

// CalculationRepositoryMemory keeps the most recent calculations in a
// bounded in-memory ring.
type CalculationRepositoryMemory struct {
	mu       sync.Mutex
	capacity int
	data     []domain.CalculationRecord
}

func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity <= 0 {
		capacity = 100
	}
	return &CalculationRepositoryMemory{
		capacity: capacity,
		data:     []domain.CalculationRecord{},
	}
}

// Save stores the record, evicting the oldest one when full.
func (r *CalculationRepositoryMemory) Save(record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if len(r.data) > r.capacity {
		r.data = r.data[len(r.data)-r.capacity:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *CalculationRepositoryMemory) Recent(limit int) ([]domain.CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}

	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
