// api/ratelimit/ratelimit.go
package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/lotr/api/cache"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
)

const keyPrefix = "rate_limit:"

// Limiter bounds request rate per identity with a fixed window counter
// kept in the shared cache. The counter's TTL is re-applied in full on
// every admitted request, so sustained traffic keeps pushing the reset
// forward.
type Limiter struct {
	cache  cache.Cache
	limit  int
	window time.Duration
}

func NewLimiter(c cache.Cache, limit int, window time.Duration) *Limiter {
	return &Limiter{
		cache:  c,
		limit:  limit,
		window: window,
	}
}

func (l *Limiter) Limit() int {
	return l.limit
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

// Check reports whether the request for the given identity is admitted.
// Rejected requests do not increment the counter and do not extend its
// TTL. The read and the increment are separate cache calls: concurrent
// requests can both observe a pre-limit count and both be admitted,
// briefly exceeding the limit. Accepted margin for this service.
func (l *Limiter) Check(ctx context.Context, identity string) (bool, error) {
	key := keyPrefix + identity

	current, err := l.cache.Get(ctx, key)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		return false, err
	}
	if err == nil {
		count, convErr := strconv.Atoi(current)
		if convErr == nil && count >= l.limit {
			logger.Warn("Rate limit exceeded",
				zap.Int("count", count),
				zap.Int("limit", l.limit),
				zap.Duration("window", l.window))
			return false, nil
		}
	}

	count, err := l.cache.Increment(ctx, key, l.window)
	if err != nil {
		return false, err
	}

	logger.Debug("Rate limit check",
		zap.Int64("count", count),
		zap.Int("limit", l.limit),
		zap.Duration("window", l.window))
	return true, nil
}
