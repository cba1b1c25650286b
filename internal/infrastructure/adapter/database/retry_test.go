package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/logger"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()

	t.Run("Transient failure is retried until success", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetryConfig(3), func() error {
			calls++
			if calls < 2 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Non-transient failure returns immediately", func(t *testing.T) {
		calls := 0
		permanent := errors.New("password authentication failed")
		err := RetryOnTransientError(ctx, fastRetryConfig(3), func() error {
			calls++
			return permanent
		}, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("Exhausted budget returns the last error", func(t *testing.T) {
		calls := 0
		transient := errors.New("read: connection reset by peer")
		err := RetryOnTransientError(ctx, fastRetryConfig(3), func() error {
			calls++
			return transient
		}, log)

		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 3, calls)
	})

	t.Run("Cancelled context stops the backoff wait", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		err := RetryOnTransientError(cancelCtx, RetryConfig{
			MaxRetries:    3,
			RetryInterval: time.Minute,
			MaxInterval:   time.Minute,
		}, func() error {
			return errors.New("dial tcp: i/o timeout")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsTransientError(t *testing.T) {
	assert.False(t, isTransientError(nil))
	assert.True(t, isTransientError(errors.New("deadlock detected")))
	assert.True(t, isTransientError(errors.New("pq: too many connections")))
	// Constraint violations are terminal, never worth replaying
	assert.False(t, isTransientError(errors.New(`duplicate key value violates unique constraint "idx_booking_number"`)))
}
