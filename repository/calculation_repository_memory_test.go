package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-engine/domain"
)

func TestCalculationRepositoryMemory_RecentNewestFirst(t *testing.T) {
	repo := NewCalculationRepositoryMemory(3)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Save(domain.CalculationRecord{ID: fmt.Sprint(i)}))
	}

	records, err := repo.Recent(0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"5", "4", "3"}, []string{records[0].ID, records[1].ID, records[2].ID})

	records, err = repo.Recent(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "5", records[0].ID)
}

func TestCalculationRepositoryMemory_Empty(t *testing.T) {
	repo := NewCalculationRepositoryMemory(0)

	records, err := repo.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
