package journal

import (
	"context"
	"database/sql/driver"
	"errors"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultMaxAttempts  = 1
	defaultBaseDelay    = 10 * time.Millisecond
	defaultJitterFactor = 0.3

	logMsgRetryingAppend = "retrying journal append"
	logAttrAttempt       = "attempt"
	logAttrDelayMS       = "delay_ms"
)

type retryConfig struct {
	maxAttempts int
	baseDelay   time.Duration
}

func defaultRetryConfig() retryConfig {
	return retryConfig{
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}
}

// withRetries runs fn until it succeeds, fails with a non-retryable error or maxAttempts is reached.
//
// Retry schedule: baseDelay, baseDelay*2, baseDelay*4, ... each with up to 30% jitter.
func (j Journal) withRetries(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < j.retry.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := j.retry.baseDelay * time.Duration(1<<(attempt-1))
			jitter := rand.Float64() * float64(delay) * defaultJitterFactor //nolint:gosec //math/rand is sufficient for jitter
			backoffDelay := delay + time.Duration(jitter)

			if j.logger != nil {
				j.logger.Warn(
					logMsgRetryingAppend,
					logAttrAttempt, attempt+1,
					logAttrDelayMS, toMilliseconds(backoffDelay),
					logAttrError, lastErr.Error())
			}

			select {
			case <-time.After(backoffDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if !isRetryableError(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// isRetryableError reports connection failures that happened before the statement reached the server.
// Timeouts are not retried.
func isRetryableError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	return errors.Is(err, driver.ErrBadConn) || pgconn.SafeToRetry(err)
}
