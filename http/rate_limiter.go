package http

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter hands each client a bucket of capacity tokens that refills in
// full once per window. Calculation endpoints are CPU-bound, so the limit is
// per client address rather than global.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, window, time.Now)
	go rl.cleanupLoop()
	return rl
}

func newRateLimiter(capacity int, window time.Duration, now func() time.Time) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	return &RateLimiter{
		capacity:    capacity,
		window:      window,
		clients:     make(map[string]*clientBucket),
		now:         now,
		stopCleanup: make(chan struct{}),
	}
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, client)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[client]

	if !exists {
		r.clients[client] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.window {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

func (r *RateLimiter) clientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}
