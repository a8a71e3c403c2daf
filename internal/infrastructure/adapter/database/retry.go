package database

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError runs operation until it succeeds, fails with a non-transient
// error, the attempts run out or ctx is done
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	var err error
	var attempt int

	for attempt = 0; attempt < config.MaxRetries; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}

		if !IsTransientError(err) {
			return err
		}
		if attempt == config.MaxRetries-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts":    attempt + 1,
				"max_retries": config.MaxRetries,
				"error":       ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts":    attempt + 1,
		"max_retries": config.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}

// IsTransientError checks if a database error is transient and the operation can be retried
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"deadlock",
		"serialization",
		"connection reset",
		"connection refused",
		"timeout",
		"too many connections",
		"server closed",
		"broken pipe",
		"database is locked",
		"eof",
	} {
		if strings.Contains(errMsg, marker) {
			return true
		}
	}
	return false
}
