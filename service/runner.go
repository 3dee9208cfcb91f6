package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"investment-engine/domain"
	"investment-engine/repository"
)

// runner holds what every calculation shares: the result cache and the
// calculation log. Neither is required for a calculation to succeed.
type runner struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func newRunner(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &runner{repo: repo, cache: cache, ttl: ttl, logger: logger, now: time.Now}
}

// cacheKey hashes the JSON form of the input.
func cacheKey(kind string, input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode %s input: %w", kind, err)
	}
	sum := sha256.Sum256(data)
	return kind + ":" + hex.EncodeToString(sum[:]), nil
}

func (r *runner) record(kind, key string, hit bool) {
	if r.repo == nil {
		return
	}
	rec := domain.CalculationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		CacheKey:  key,
		CacheHit:  hit,
		CreatedAt: r.now().UTC(),
	}
	if err := r.repo.Save(rec); err != nil {
		r.logger.Warn("failed to save calculation record", zap.String("kind", kind), zap.Error(err))
	}
}

// cached returns the cached result for input when present, otherwise runs
// compute and stores its result.
func cached[T any](
	ctx context.Context,
	r *runner,
	kind string,
	input any,
	compute func() (T, error),
) (T, error) {
	var zero T

	key, err := cacheKey(kind, input)
	if err != nil {
		return zero, err
	}

	if r.cache != nil {
		data, err := r.cache.Get(ctx, key)
		switch {
		case err == nil:
			var out T
			jsonErr := json.Unmarshal(data, &out)
			if jsonErr == nil {
				r.logger.Debug("cache hit", zap.String("kind", kind), zap.String("key", key))
				r.record(kind, key, true)
				return out, nil
			}
			r.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(jsonErr))
		case !errors.Is(err, repository.ErrCacheMiss):
			r.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		}
	}

	out, err := compute()
	if err != nil {
		return zero, err
	}

	if r.cache != nil {
		if data, err := json.Marshal(out); err != nil {
			r.logger.Warn("failed to encode result for cache", zap.String("kind", kind), zap.Error(err))
		} else if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
		}
	}

	r.logger.Info("calculation completed", zap.String("kind", kind), zap.String("key", key))
	r.record(kind, key, false)
	return out, nil
}

// IsInvalidInput reports whether err was caused by the caller's input.
func IsInvalidInput(err error) bool {
	var termsErr *domain.InvalidTermsError
	var paramErr *domain.InvalidParameterError
	return errors.As(err, &termsErr) || errors.As(err, &paramErr)
}
