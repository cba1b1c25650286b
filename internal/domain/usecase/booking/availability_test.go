package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	mockcache "github.com/rsvtravel/booking-engine/mocks/port/cache"
	mockcore "github.com/rsvtravel/booking-engine/mocks/port/core"
	mockpersistence "github.com/rsvtravel/booking-engine/mocks/port/persistence"
)

func oracleRange(t *testing.T) entity.DateRange {
	t.Helper()
	rng, err := entity.ValidateDateRange("2026-06-10", "2026-06-13", entity.DateRangeOptions{})
	require.NoError(t, err)
	return *rng
}

func quietLogger(t *testing.T) *mockcore.MockLogger {
	t.Helper()
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestAvailabilityOracle_Check(t *testing.T) {
	ctx := context.Background()
	rng := oracleRange(t)
	key := "availability:42:2026-06-10:2026-06-13"

	t.Run("Cache hit returns the cached answer", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		cached, err := json.Marshal(AvailabilityResult{Available: true})
		require.NoError(t, err)
		mockStore.EXPECT().Get(mock.Anything, key).Return(string(cached), true, nil).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		result, err := oracle.Check(ctx, 42, rng)

		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.True(t, result.FromCache)
	})

	t.Run("Cache miss queries the database and caches the answer", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		mockStore.EXPECT().Get(mock.Anything, key).Return("", false, nil).Once()
		mockRepo.EXPECT().FindConflicts(mock.Anything, uint64(42), rng, uint64(0)).
			Return(nil, nil).Once()
		mockStore.EXPECT().SetWithTTL(mock.Anything, key, mock.Anything, 5*time.Minute).
			Return(nil).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		result, err := oracle.Check(ctx, 42, rng)

		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.False(t, result.FromCache)
		assert.Zero(t, result.ConflictingCount)
	})

	t.Run("Conflicting reservations make the range unavailable", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		mockStore.EXPECT().Get(mock.Anything, key).Return("", false, nil).Once()
		mockRepo.EXPECT().FindConflicts(mock.Anything, uint64(42), rng, uint64(0)).
			Return([]*entity.Reservation{{ID: 11}, {ID: 12}}, nil).Once()
		mockStore.EXPECT().SetWithTTL(mock.Anything, key, mock.Anything, mock.Anything).
			Return(nil).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		result, err := oracle.Check(ctx, 42, rng)

		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, 2, result.ConflictingCount)
		assert.Equal(t, []uint64{11, 12}, result.ConflictingIDs)
	})

	t.Run("Corrupt cache entry is dropped and the database answers", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		mockStore.EXPECT().Get(mock.Anything, key).Return("{not json", true, nil).Once()
		mockStore.EXPECT().Delete(mock.Anything, key).Return(nil).Once()
		mockRepo.EXPECT().FindConflicts(mock.Anything, uint64(42), rng, uint64(0)).
			Return(nil, nil).Once()
		mockStore.EXPECT().SetWithTTL(mock.Anything, key, mock.Anything, mock.Anything).
			Return(nil).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		result, err := oracle.Check(ctx, 42, rng)

		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.False(t, result.FromCache)
	})

	t.Run("Unreachable cache falls through to the database", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		mockStore.EXPECT().Get(mock.Anything, key).
			Return("", false, errs.ErrCacheUnavailable).Once()
		mockRepo.EXPECT().FindConflicts(mock.Anything, uint64(42), rng, uint64(0)).
			Return(nil, nil).Once()
		mockStore.EXPECT().SetWithTTL(mock.Anything, key, mock.Anything, mock.Anything).
			Return(errs.ErrCacheUnavailable).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		result, err := oracle.Check(ctx, 42, rng)

		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("Database failure is returned", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		dbErr := errors.New("connection reset")
		mockStore.EXPECT().Get(mock.Anything, key).Return("", false, nil).Once()
		mockRepo.EXPECT().FindConflicts(mock.Anything, uint64(42), rng, uint64(0)).
			Return(nil, dbErr).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		result, err := oracle.Check(ctx, 42, rng)

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, result)
	})
}

func TestAvailabilityOracle_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Drops every cached answer for the property", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		mockStore.EXPECT().DeletePattern(mock.Anything, "availability:42:*").Return(nil).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		oracle.Invalidate(ctx, 42)
	})

	t.Run("Store failure is absorbed", func(t *testing.T) {
		mockStore := mockcache.NewMockKeyValueStore(t)
		mockRepo := mockpersistence.NewMockReservationRepository(t)

		mockStore.EXPECT().DeletePattern(mock.Anything, "availability:42:*").
			Return(errs.ErrCacheUnavailable).Once()

		oracle := NewAvailabilityOracle(mockStore, mockRepo, quietLogger(t), 5*time.Minute)
		oracle.Invalidate(ctx, 42)
	})
}
