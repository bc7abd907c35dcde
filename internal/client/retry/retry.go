// Package retry is the bounded-retry policy applied by callers on top of
// the HTTP client, which itself never retries. Only transport failures
// and server-side (5xx) errors are retried; client-side failures are
// final.
package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	retrylib "github.com/sethvargo/go-retry"

	"github.com/rastroagro/rastro/internal/client/api"
)

// Defaults for public lookups from the CLI.
const (
	DefaultAttempts = 3
	DefaultBase     = 500 * time.Millisecond
)

// Linear returns a backoff whose n-th delay is n*base.
func Linear(base time.Duration) retrylib.Backoff {
	var attempt int64
	return retrylib.BackoffFunc(func() (time.Duration, bool) {
		n := atomic.AddInt64(&attempt, 1)
		return time.Duration(n) * base, false
	})
}

// Do runs fn with up to attempts total tries and linear backoff between
// them. fn's error is retried only when Retryable reports it transient.
func Do(ctx context.Context, attempts uint64, base time.Duration, fn func(ctx context.Context) error) error {
	if attempts == 0 {
		attempts = DefaultAttempts
	}
	if base <= 0 {
		base = DefaultBase
	}

	backoff := retrylib.WithMaxRetries(attempts-1, Linear(base))

	return retrylib.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			if Retryable(err) {
				return retrylib.RetryableError(err)
			}
			return err
		}
		return nil
	})
}

// Retryable reports whether an error is worth another attempt: transport
// failures and 5xx responses are; any other API failure is final.
func Retryable(err error) bool {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	// Not an API response at all: the request never completed.
	return true
}
