// Package retry wraps external calls with per-attempt timeouts and capped
// exponential backoff.
package retry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts    = 3
	DefaultAttemptTimeout = 30 * time.Second

	baseBackoff = 1 * time.Second
	maxBackoff  = 5 * time.Second
)

// sleepFunc is the sleep function used between attempts (injectable for tests).
var sleepFunc = time.Sleep

// Config controls one wrapped call. Zero values fall back to the defaults.
type Config struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = DefaultAttemptTimeout
	}
	return c
}

// Do invokes fn until it succeeds or attempts are exhausted. Each attempt
// runs under its own timeout context so a slow attempt is cancelled rather
// than left pending. The last observed failure is surfaced to the caller.
func Do[T any](ctx context.Context, logger *zap.Logger, op string, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	cfg = cfg.withDefaults()

	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.AttemptTimeout)
		result, err := fn(attemptCtx)
		cancel()

		if err == nil {
			logger.Debug("external call succeeded",
				zap.String("op", op),
				zap.Int("attempt", attempt+1))
			return result, nil
		}

		lastErr = err
		logger.Warn("external call attempt failed",
			zap.String("op", op),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", cfg.MaxAttempts),
			zap.Error(err))

		// Parent cancelled; retrying would only burn attempts.
		if ctx.Err() != nil {
			break
		}

		if attempt < cfg.MaxAttempts-1 {
			sleepFunc(backoffDelay(attempt))
		}
	}

	return zero, fmt.Errorf("%s: %w", op, lastErr)
}

// backoffDelay returns min(1s * 2^attempt, 5s).
func backoffDelay(attempt int) time.Duration {
	d := baseBackoff << uint(attempt)
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
