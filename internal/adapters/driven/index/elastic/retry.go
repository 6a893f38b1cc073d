package elastic

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/docsindex/internal/logger"
)

// permanentError marks a failure that must not be retried.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error {
	return &permanentError{err: err}
}

// shouldRetry reports whether another attempt may succeed.
func shouldRetry(err error) bool {
	var pe *permanentError
	if errors.As(err, &pe) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.retryable()
	}
	return true
}

// retryWithBackoff runs operation up to maxAttempts times, doubling the
// delay after each retryable failure. The last error is returned with any
// permanent marker removed.
func retryWithBackoff(ctx context.Context, maxAttempts int, baseDelay time.Duration, operation func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				logger.Debug("index request succeeded after %d attempts", attempt)
			}
			return nil
		}
		if !shouldRetry(lastErr) || attempt == maxAttempts {
			break
		}

		logger.Debug("index request failed (attempt %d/%d), retrying in %s: %v", attempt, maxAttempts, delay, lastErr)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	var pe *permanentError
	if errors.As(lastErr, &pe) {
		return pe.err
	}
	return lastErr
}
