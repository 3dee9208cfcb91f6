package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository used when Redis is disabled
// and in tests.
type MemoryCache struct {
	mu   sync.Mutex
	data map[string]memoryEntry
	now  func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		delete(m.data, key)
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
