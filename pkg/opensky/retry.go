package opensky

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"
)

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string

	// RetryAfter is the server-requested backoff, zero when the
	// Retry-After header was absent or unparseable
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// IsRateLimited reports whether err is a 429 response and, if so, returns it.
func IsRateLimited(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests {
		return se, true
	}
	return nil, false
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// RetryConfig configures retry behavior with exponential backoff.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts
	MaxRetries int

	// InitialDelay is the first backoff delay
	InitialDelay time.Duration

	// MaxDelay caps the backoff delay
	MaxDelay time.Duration

	// Multiplier grows the delay between attempts
	Multiplier float64
}

// DefaultRetryConfig returns sensible defaults for one-shot fetches.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     60 * time.Second,
		Multiplier:   2.0,
	}
}

// StatesWithRetry fetches the state snapshot, retrying with exponential
// backoff on failure. A 429 response with a Retry-After header overrides the
// computed delay for the next attempt.
//
// Not intended for interactive refresh loops, where a blocked fetch stalls
// the caller; the display degrades and retries on its own schedule instead.
func (c *Client) StatesWithRetry(ctx context.Context, cfg RetryConfig) ([]StateVector, error) {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("retry cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
		}

		states, err := c.States(ctx)
		if err == nil {
			return states, nil
		}
		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		next := time.Duration(float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt)))
		if next > cfg.MaxDelay {
			next = cfg.MaxDelay
		}
		delay = next

		if se, ok := IsRateLimited(err); ok && se.RetryAfter > 0 {
			delay = se.RetryAfter
		}
	}

	return nil, fmt.Errorf("max retries (%d) exceeded: %w", cfg.MaxRetries, lastErr)
}
