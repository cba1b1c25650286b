package booking

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	mockcache "github.com/rsvtravel/booking-engine/mocks/port/cache"
	mockcore "github.com/rsvtravel/booking-engine/mocks/port/core"
	mockpersistence "github.com/rsvtravel/booking-engine/mocks/port/persistence"
)

var fixedServiceNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestStatusCodeFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"ValidationError", errs.NewValidationError("check_in", "format", errs.ErrInvalidDateFormat), http.StatusBadRequest},
		{"DateInPast", errs.ErrDateInPast, http.StatusBadRequest},
		{"AvailabilityConflict", errs.NewAvailabilityConflictError(42, "2026-06-10", "2026-06-13", nil), http.StatusConflict},
		{"VersionConflict", errs.NewVersionConflictError(101, 3, 5), http.StatusConflict},
		{"PeriodLocked", errs.NewPeriodLockedError(42, "2026-06-10", "2026-06-13", "attempt-1"), http.StatusConflict},
		{"ReservationNotFound", errs.ErrReservationNotFound, http.StatusNotFound},
		{"PropertyNotFound", errs.ErrPropertyNotFound, http.StatusNotFound},
		{"TransactionConflict", errs.ErrTransactionConflict, http.StatusInternalServerError},
		{"Internal", errs.ErrInternalServer, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusCodeFor(tc.err))
		})
	}
}

func TestService_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T, store *mockcache.MockKeyValueStore, repo *mockpersistence.MockReservationRepository) *Service {
		t.Helper()
		mockTimeProvider := mockcore.NewMockTimeProvider(t)
		mockTimeProvider.EXPECT().Now().Return(fixedServiceNow).Maybe()

		logger := quietLogger(t)
		validator := NewBookingValidator(mockTimeProvider, 1, 30)
		oracle := NewAvailabilityOracle(store, repo, logger, DefaultCacheTTL)
		metrics := mockcore.NewMockBookingMetrics(t)
		return NewBookingService(nil, oracle, validator, metrics, logger)
	}

	t.Run("Valid question reaches the oracle", func(t *testing.T) {
		store := mockcache.NewMockKeyValueStore(t)
		repo := mockpersistence.NewMockReservationRepository(t)

		store.EXPECT().Get(mock.Anything, "availability:42:2026-06-10:2026-06-13").
			Return("", false, nil).Once()
		repo.EXPECT().FindConflicts(mock.Anything, uint64(42), mock.Anything, uint64(0)).
			Return(nil, nil).Once()
		store.EXPECT().SetWithTTL(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Maybe()

		svc := newService(t, store, repo)
		result, err := svc.CheckAvailability(ctx, 42, "2026-06-10", "2026-06-13")

		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("Zero property ID is rejected", func(t *testing.T) {
		svc := newService(t, mockcache.NewMockKeyValueStore(t), mockpersistence.NewMockReservationRepository(t))

		result, err := svc.CheckAvailability(ctx, 0, "2026-06-10", "2026-06-13")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidPropertyID)
	})

	t.Run("Malformed dates are rejected before any lookup", func(t *testing.T) {
		svc := newService(t, mockcache.NewMockKeyValueStore(t), mockpersistence.NewMockReservationRepository(t))

		result, err := svc.CheckAvailability(ctx, 42, "garbage", "2026-06-13")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidDateFormat)
	})
}
