package aigen

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WithRetry runs fn up to maxAttempts times with pure exponential backoff:
// the delay before attempt i (1-indexed, i >= 2) is baseDelay * 2^(i-2), no
// jitter. Only errors classified as retryable (rate limit, provider 5xx)
// are retried; everything else fails on the first occurrence. Attempts are
// strictly sequential and the backoff sleep respects ctx cancellation.
func WithRetry[T any](ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() (T, error)) (T, error) {
	var out T

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = baseDelay
	expo.RandomizationFactor = 0
	expo.Multiplier = 2
	expo.MaxInterval = 30 * time.Second
	expo.MaxElapsedTime = 0
	expo.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(maxAttempts-1)), ctx)

	op := func() error {
		v, err := fn()
		if err != nil {
			if !Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}

	if err := backoff.Retry(op, policy); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
