package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	mockcache "github.com/rsvtravel/booking-engine/mocks/port/cache"
)

func TestPeriodLock_Acquire(t *testing.T) {
	ctx := context.Background()
	rng := oracleRange(t)
	key := "booking_lock:42:2026-06-10:2026-06-13"
	ttl := 30 * time.Second

	t.Run("Free lock is granted", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockStore.EXPECT().SetIfAbsentWithTTL(mock.Anything, key, "attempt-1", ttl).
			Return(true, nil).Once()

		lock := NewPeriodLock(mockStore, quietLogger(t), ttl)
		result, err := lock.Acquire(ctx, 42, rng, "attempt-1")

		require.NoError(t, err)
		assert.True(t, result.Granted)
		assert.Equal(t, "attempt-1", result.HolderID)
		assert.False(t, result.Degraded)
	})

	t.Run("Held lock is denied with the holder", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockStore.EXPECT().SetIfAbsentWithTTL(mock.Anything, key, "attempt-2", ttl).
			Return(false, nil).Once()
		mockStore.EXPECT().Get(mock.Anything, key).Return("attempt-1", true, nil).Once()

		lock := NewPeriodLock(mockStore, quietLogger(t), ttl)
		result, err := lock.Acquire(ctx, 42, rng, "attempt-2")

		require.NoError(t, err)
		assert.False(t, result.Granted)
		assert.Equal(t, "attempt-1", result.HolderID)
	})

	t.Run("Unreachable store grants a degraded lock", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockStore.EXPECT().SetIfAbsentWithTTL(mock.Anything, key, "attempt-3", ttl).
			Return(false, errs.ErrCacheUnavailable).Once()

		lock := NewPeriodLock(mockStore, quietLogger(t), ttl)
		result, err := lock.Acquire(ctx, 42, rng, "attempt-3")

		require.NoError(t, err)
		assert.True(t, result.Granted)
		assert.True(t, result.Degraded)
	})
}

func TestPeriodLock_Release(t *testing.T) {
	ctx := context.Background()
	rng := oracleRange(t)
	key := "booking_lock:42:2026-06-10:2026-06-13"
	ttl := 30 * time.Second

	t.Run("Holder releases its own lock", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockStore.EXPECT().Get(mock.Anything, key).Return("attempt-1", true, nil).Once()
		mockStore.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

		lock := NewPeriodLock(mockStore, quietLogger(t), ttl)
		lock.Release(ctx, 42, rng, "attempt-1")
	})

	t.Run("A lock held by someone else is left alone", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockStore.EXPECT().Get(mock.Anything, key).Return("attempt-2", true, nil).Once()

		lock := NewPeriodLock(mockStore, quietLogger(t), ttl)
		lock.Release(ctx, 42, rng, "attempt-1")
	})

	t.Run("An expired lock is left alone", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockStore.EXPECT().Get(mock.Anything, key).Return("", false, nil).Once()

		lock := NewPeriodLock(mockStore, quietLogger(t), ttl)
		lock.Release(ctx, 42, rng, "attempt-1")
	})

	t.Run("Store failure leaves the lock to expire by TTL", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockStore.EXPECT().Get(mock.Anything, key).
			Return("", false, errs.ErrCacheUnavailable).Once()

		lock := NewPeriodLock(mockStore, quietLogger(t), ttl)
		lock.Release(ctx, 42, rng, "attempt-1")
	})
}

func TestPeriodLock_Peek(t *testing.T) {
	ctx := context.Background()
	rng := oracleRange(t)
	key := "booking_lock:42:2026-06-10:2026-06-13"

	mockStore := mockcache.NewMockKeyValueStore(t)
	mockStore.EXPECT().Get(mock.Anything, key).Return("attempt-1", true, nil).Once()

	lock := NewPeriodLock(mockStore, quietLogger(t), 30*time.Second)
	holder, found, err := lock.Peek(ctx, 42, rng)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "attempt-1", holder)
}
