package booking

import (
	"context"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
)

// UpdateBookingRequest represents a versioned modification of a reservation.
// ExpectedVersion must match the version the caller last read; nil optional
// fields leave the stored value untouched.
type UpdateBookingRequest struct {
	ReservationID   uint64
	ExpectedVersion uint64
	CheckIn         *string
	CheckOut        *string
	GuestsCount     *int
	SpecialRequests *string
	Metadata        map[string]any
}

// Update applies a versioned change to a reservation. A stale version is
// reported back with the current one and is never retried here; the caller
// decides whether to re-read and resubmit.
func (m *BookingManager) Update(ctx context.Context, req UpdateBookingRequest) (reservation *entity.Reservation, err error) {
	start := m.timeProvider.Now()
	defer func() {
		m.metrics.AddDuration(m.timeProvider.Since(start).Std())
	}()
	m.metrics.IncAttempts()

	if req.ReservationID == 0 {
		m.metrics.IncFailures()
		return nil, errs.ErrReservationNotFound
	}
	if req.ExpectedVersion == 0 {
		m.metrics.IncFailures()
		return nil, errs.NewValidationError("expected_version", "positive", errs.ErrInvalidRequest)
	}

	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		m.metrics.IncFailures()
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := m.uow.Rollback(txCtx); rbErr != nil {
				m.logger.Error("Failed to roll back booking update", map[string]any{
					"reservation_id": req.ReservationID,
					"error":          rbErr.Error(),
				})
			}
		}
	}()

	repo := m.uow.GetReservationRepository(txCtx)

	reservation, err = repo.GetByIDForUpdateWithVersion(txCtx, req.ReservationID, req.ExpectedVersion)
	if err != nil {
		if errs.IsVersionConflictError(err) {
			m.metrics.IncVersionConflicts()
		}
		m.metrics.IncFailures()
		return nil, err
	}

	datesChanged := false
	newRange := reservation.Range
	if req.CheckIn != nil || req.CheckOut != nil {
		checkIn := reservation.Range.CheckInString()
		checkOut := reservation.Range.CheckOutString()
		if req.CheckIn != nil {
			checkIn = *req.CheckIn
		}
		if req.CheckOut != nil {
			checkOut = *req.CheckOut
		}
		validated, vErr := m.validator.ValidateUpdateDates(checkIn, checkOut)
		if vErr != nil {
			err = vErr
			m.metrics.IncFailures()
			return nil, err
		}
		if !validated.CheckIn.Equal(reservation.Range.CheckIn) || !validated.CheckOut.Equal(reservation.Range.CheckOut) {
			datesChanged = true
			newRange = *validated
		}
	}

	if datesChanged {
		conflicts, cErr := repo.FindConflictsForUpdate(txCtx, reservation.PropertyID, newRange, reservation.ID)
		if cErr != nil {
			err = cErr
			m.metrics.IncFailures()
			return nil, err
		}
		if len(conflicts) > 0 {
			ids := make([]uint64, 0, len(conflicts))
			for _, c := range conflicts {
				ids = append(ids, c.ID)
			}
			err = errs.NewAvailabilityConflictError(reservation.PropertyID, newRange.CheckInString(), newRange.CheckOutString(), ids)
			m.metrics.IncAvailabilityConflicts()
			m.metrics.IncFailures()
			return nil, err
		}

		property, pErr := m.uow.GetPropertyRepository(txCtx).GetByID(txCtx, reservation.PropertyID)
		if pErr != nil {
			err = pErr
			m.metrics.IncFailures()
			return nil, err
		}
		reservation.Range = newRange
		reservation.Pricing = entity.ComputePricing(newRange.Nights(), property.NightlyRateCents, property.CleaningFeeCents)
	}

	if req.GuestsCount != nil {
		if *req.GuestsCount <= 0 {
			err = errs.NewValidationError("guests_count", "positive", errs.ErrInvalidGuestCount)
			m.metrics.IncFailures()
			return nil, err
		}
		reservation.GuestsCount = *req.GuestsCount
	}
	if req.SpecialRequests != nil {
		reservation.SpecialRequests = *req.SpecialRequests
	}
	if req.Metadata != nil {
		reservation.Metadata = req.Metadata
	}

	reservation.Version++
	reservation.UpdatedAt = m.timeProvider.Now()

	if err = repo.Update(txCtx, reservation); err != nil {
		m.metrics.IncFailures()
		return nil, err
	}
	if err = m.uow.Commit(txCtx); err != nil {
		m.metrics.IncFailures()
		return nil, err
	}

	m.metrics.IncSuccesses()
	if datesChanged {
		m.oracle.Invalidate(ctx, reservation.PropertyID)
	}
	m.notify(ctx, reservation.CustomerID, notifport.EventBookingUpdated, reservation)
	return reservation, nil
}

// Confirm moves a pending reservation to confirmed. The caller supplies the
// version it last read, exactly as for Update.
func (m *BookingManager) Confirm(ctx context.Context, reservationID uint64, expectedVersion uint64) (*entity.Reservation, error) {
	return m.transition(ctx, reservationID, expectedVersion, notifport.EventBookingConfirmed, func(r *entity.Reservation) error {
		return r.Confirm(m.timeProvider)
	})
}

// Cancel cancels a reservation and frees its dates. Like Confirm, it demands
// the caller's last-read version.
func (m *BookingManager) Cancel(ctx context.Context, reservationID uint64, expectedVersion uint64, reason string) (*entity.Reservation, error) {
	return m.transition(ctx, reservationID, expectedVersion, notifport.EventBookingCancelled, func(r *entity.Reservation) error {
		return r.Cancel(reason, m.timeProvider)
	})
}

// Get retrieves a reservation by ID
func (m *BookingManager) Get(ctx context.Context, reservationID uint64) (*entity.Reservation, error) {
	return m.uow.GetReservationRepository(ctx).GetByID(ctx, reservationID)
}

// transition applies a lifecycle change under a row lock. Lifecycle moves
// carry the same version contract as field updates: a stale caller gets the
// current version back and nothing is written.
func (m *BookingManager) transition(
	ctx context.Context,
	reservationID uint64,
	expectedVersion uint64,
	event string,
	apply func(*entity.Reservation) error,
) (reservation *entity.Reservation, err error) {
	if reservationID == 0 {
		return nil, errs.ErrReservationNotFound
	}
	if expectedVersion == 0 {
		return nil, errs.NewValidationError("expected_version", "positive", errs.ErrInvalidRequest)
	}

	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := m.uow.Rollback(txCtx); rbErr != nil {
				m.logger.Error("Failed to roll back status transition", map[string]any{
					"reservation_id": reservationID,
					"error":          rbErr.Error(),
				})
			}
		}
	}()

	repo := m.uow.GetReservationRepository(txCtx)
	reservation, err = repo.GetByIDForUpdateWithVersion(txCtx, reservationID, expectedVersion)
	if err != nil {
		if errs.IsVersionConflictError(err) {
			m.metrics.IncVersionConflicts()
		}
		return nil, err
	}

	wasBlocking := reservation.IsBlocking()
	if err = apply(reservation); err != nil {
		return nil, err
	}
	reservation.Version++
	reservation.UpdatedAt = m.timeProvider.Now()

	if err = repo.Update(txCtx, reservation); err != nil {
		return nil, err
	}
	if err = m.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	if wasBlocking && !reservation.IsBlocking() {
		m.oracle.Invalidate(ctx, reservation.PropertyID)
	}
	m.notify(ctx, reservation.CustomerID, event, reservation)
	return reservation, nil
}
