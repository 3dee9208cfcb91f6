package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, err := cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	value := []byte("payload")
	require.NoError(t, cache.Set(ctx, "k", value, 0))
	value[0] = 'X'

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

	now = now.Add(30 * time.Second)
	_, err := cache.Get(ctx, "k")
	assert.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, 0, cache.Len())
}
