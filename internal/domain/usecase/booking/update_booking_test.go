package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
)

func storedReservation(t *testing.T) *entity.Reservation {
	t.Helper()
	return &entity.Reservation{
		ID:          101,
		PropertyID:  42,
		CustomerID:  7,
		Range:       oracleRange(t),
		GuestsCount: 2,
		Pricing:     entity.ComputePricing(3, 10000, 5000),
		Status:      entity.ReservationPending,
		Version:     3,
	}
}

func ptr[T any](v T) *T { return &v }

func TestBookingManager_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Guest count update bumps the version", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		f.metrics.EXPECT().IncAttempts().Return().Once()
		f.metrics.EXPECT().IncSuccesses().Return().Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(storedReservation(t), nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.dispatcher.EXPECT().Dispatch(mock.Anything, uint64(7), notifport.EventBookingUpdated, mock.Anything).
			Return(nil).Once()

		reservation, err := f.manager.Update(ctx, UpdateBookingRequest{
			ReservationID:   101,
			ExpectedVersion: 3,
			GuestsCount:     ptr(3),
		})

		require.NoError(t, err)
		assert.Equal(t, 3, reservation.GuestsCount)
		assert.Equal(t, uint64(4), reservation.Version)
	})

	t.Run("Stale version surfaces the current one and is not retried", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		f.metrics.EXPECT().IncAttempts().Return().Once()
		f.metrics.EXPECT().IncVersionConflicts().Return().Once()
		f.metrics.EXPECT().IncFailures().Return().Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(nil, errs.NewVersionConflictError(101, 3, 5)).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		reservation, err := f.manager.Update(ctx, UpdateBookingRequest{
			ReservationID:   101,
			ExpectedVersion: 3,
			GuestsCount:     ptr(3),
		})

		assert.Nil(t, reservation)
		assert.True(t, errs.IsVersionConflictError(err))

		var conflict *errs.VersionConflictError
		require.True(t, errs.AsVersionConflictError(err, &conflict))
		assert.Equal(t, uint64(5), conflict.CurrentVersion)
	})

	t.Run("Date change re-checks conflicts excluding itself", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		newRng, rErr := entity.ValidateDateRange("2026-07-01", "2026-07-04", entity.DateRangeOptions{})
		require.NoError(t, rErr)

		f.metrics.EXPECT().IncAttempts().Return().Once()
		f.metrics.EXPECT().IncSuccesses().Return().Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(storedReservation(t), nil).Once()
		f.txRepo.EXPECT().FindConflictsForUpdate(mock.Anything, uint64(42), *newRng, uint64(101)).
			Return(nil, nil).Once()
		f.uow.EXPECT().GetPropertyRepository(mock.Anything).Return(f.properties).Once()
		f.properties.EXPECT().GetByID(mock.Anything, uint64(42)).Return(testProperty(), nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.store.EXPECT().DeletePattern(mock.Anything, "availability:42:*").Return(nil).Once()
		f.dispatcher.EXPECT().Dispatch(mock.Anything, uint64(7), notifport.EventBookingUpdated, mock.Anything).
			Return(nil).Once()

		reservation, err := f.manager.Update(ctx, UpdateBookingRequest{
			ReservationID:   101,
			ExpectedVersion: 3,
			CheckIn:         ptr("2026-07-01"),
			CheckOut:        ptr("2026-07-04"),
		})

		require.NoError(t, err)
		assert.Equal(t, "2026-07-01", reservation.Range.CheckInString())
		assert.Equal(t, "2026-07-04", reservation.Range.CheckOutString())
		// Pricing follows the new range
		assert.Equal(t, int64(38000), reservation.Pricing.TotalCents)
	})

	t.Run("Date change into a taken range is rejected", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		newRng, rErr := entity.ValidateDateRange("2026-07-01", "2026-07-04", entity.DateRangeOptions{})
		require.NoError(t, rErr)

		f.metrics.EXPECT().IncAttempts().Return().Once()
		f.metrics.EXPECT().IncAvailabilityConflicts().Return().Once()
		f.metrics.EXPECT().IncFailures().Return().Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(storedReservation(t), nil).Once()
		f.txRepo.EXPECT().FindConflictsForUpdate(mock.Anything, uint64(42), *newRng, uint64(101)).
			Return([]*entity.Reservation{{ID: 55}}, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		reservation, err := f.manager.Update(ctx, UpdateBookingRequest{
			ReservationID:   101,
			ExpectedVersion: 3,
			CheckIn:         ptr("2026-07-01"),
			CheckOut:        ptr("2026-07-04"),
		})

		assert.Nil(t, reservation)
		assert.True(t, errs.IsAvailabilityConflictError(err))
	})

	t.Run("Missing expected version is rejected", func(t *testing.T) {
		f := newManagerFixture(t, 3)

		f.metrics.EXPECT().IncAttempts().Return().Once()
		f.metrics.EXPECT().IncFailures().Return().Once()

		reservation, err := f.manager.Update(ctx, UpdateBookingRequest{
			ReservationID: 101,
			GuestsCount:   ptr(3),
		})

		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestBookingManager_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending reservation is confirmed", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(storedReservation(t), nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.dispatcher.EXPECT().Dispatch(mock.Anything, uint64(7), notifport.EventBookingConfirmed, mock.Anything).
			Return(nil).Once()

		reservation, err := f.manager.Confirm(ctx, 101, 3)

		require.NoError(t, err)
		assert.Equal(t, entity.ReservationConfirmed, reservation.Status)
		assert.Equal(t, uint64(4), reservation.Version)
		assert.NotNil(t, reservation.ConfirmedAt)
	})

	t.Run("Completed reservation cannot be confirmed", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		completed := storedReservation(t)
		completed.Status = entity.ReservationCompleted

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(completed, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		reservation, err := f.manager.Confirm(ctx, 101, 3)

		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("Stale version is rejected before any write", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		f.metrics.EXPECT().IncVersionConflicts().Return().Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(nil, errs.NewVersionConflictError(101, 3, 5)).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		reservation, err := f.manager.Confirm(ctx, 101, 3)

		assert.Nil(t, reservation)
		var conflict *errs.VersionConflictError
		require.True(t, errs.AsVersionConflictError(err, &conflict))
		assert.Equal(t, uint64(5), conflict.CurrentVersion)
	})

	t.Run("Missing expected version is rejected", func(t *testing.T) {
		f := newManagerFixture(t, 3)

		reservation, err := f.manager.Confirm(ctx, 101, 0)

		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestBookingManager_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancellation frees the dates", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(storedReservation(t), nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		// The reservation stopped blocking its range
		f.store.EXPECT().DeletePattern(mock.Anything, "availability:42:*").Return(nil).Once()
		f.dispatcher.EXPECT().Dispatch(mock.Anything, uint64(7), notifport.EventBookingCancelled, mock.Anything).
			Return(nil).Once()

		reservation, err := f.manager.Cancel(ctx, 101, 3, "change of plans")

		require.NoError(t, err)
		assert.Equal(t, entity.ReservationCancelled, reservation.Status)
		assert.Equal(t, "change of plans", reservation.CancellationReason)
		assert.Equal(t, uint64(4), reservation.Version)
	})

	t.Run("Stale version leaves the reservation untouched", func(t *testing.T) {
		f := newManagerFixture(t, 3)
		txCtx := context.Background()

		f.metrics.EXPECT().IncVersionConflicts().Return().Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().GetByIDForUpdateWithVersion(mock.Anything, uint64(101), uint64(3)).
			Return(nil, errs.NewVersionConflictError(101, 3, 5)).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		reservation, err := f.manager.Cancel(ctx, 101, 3, "change of plans")

		assert.Nil(t, reservation)
		var conflict *errs.VersionConflictError
		require.True(t, errs.AsVersionConflictError(err, &conflict))
		assert.Equal(t, uint64(5), conflict.CurrentVersion)
	})
}

func TestBookingManager_Get(t *testing.T) {
	f := newManagerFixture(t, 3)

	f.uow.EXPECT().GetReservationRepository(mock.Anything).Return(f.txRepo).Once()
	f.txRepo.EXPECT().GetByID(mock.Anything, uint64(101)).Return(storedReservation(t), nil).Once()

	reservation, err := f.manager.Get(context.Background(), 101)

	require.NoError(t, err)
	assert.Equal(t, uint64(101), reservation.ID)
}
