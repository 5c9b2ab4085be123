package cache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// retryWithBackoff runs fn until it succeeds or maxRetries extra attempts
// have failed, doubling the wait between attempts.
func retryWithBackoff(ctx context.Context, maxRetries int, base time.Duration, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt < maxRetries {
			backoff := base << uint(attempt)
			logrus.WithError(lastErr).WithField("attempt", attempt+1).Debugf("retrying in %s", backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
