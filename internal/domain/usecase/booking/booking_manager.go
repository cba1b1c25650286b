package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
	"github.com/rsvtravel/booking-engine/internal/domain/port/persistence"
)

// CreateBookingRequest represents a request to create a booking
type CreateBookingRequest struct {
	PropertyID      uint64
	CustomerID      uint64
	CheckIn         string
	CheckOut        string
	GuestsCount     int
	SpecialRequests string
	Metadata        map[string]any
}

// BookingManager coordinates booking writes. Creates run pessimistically:
// the overlap check and the insert share one transaction, with conflicting
// rows locked FOR UPDATE. Updates run optimistically against the version
// column and are never replayed automatically.
type BookingManager struct {
	uow          persistence.UnitOfWork
	properties   persistence.PropertyRepository
	oracle       *AvailabilityOracle
	lock         *PeriodLock
	validator    *BookingValidator
	metrics      coreport.BookingMetrics
	dispatcher   notifport.Dispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBookingManager creates a new BookingManager
func NewBookingManager(
	uow persistence.UnitOfWork,
	properties persistence.PropertyRepository,
	oracle *AvailabilityOracle,
	lock *PeriodLock,
	validator *BookingValidator,
	metrics coreport.BookingMetrics,
	dispatcher notifport.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxRetries int,
	retryBaseDelay time.Duration,
) *BookingManager {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &BookingManager{
		uow:            uow,
		properties:     properties,
		oracle:         oracle,
		lock:           lock,
		validator:      validator,
		metrics:        metrics,
		dispatcher:     dispatcher,
		timeProvider:   timeProvider,
		logger:         logger,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Create books a property for the requested range. Transient transaction
// failures are retried with exponential backoff; availability conflicts are
// definitive and returned immediately.
func (m *BookingManager) Create(ctx context.Context, req CreateBookingRequest) (*entity.Reservation, error) {
	start := m.timeProvider.Now()
	defer func() {
		m.metrics.AddDuration(m.timeProvider.Since(start).Std())
	}()

	rng, err := m.validator.ValidateCreate(req)
	if err != nil {
		return nil, err
	}

	property, err := m.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsBookable() {
		return nil, errs.ErrPropertyNotFound
	}
	if req.GuestsCount > property.MaxGuests {
		return nil, errs.NewValidationError("guests_count", "max_guests", errs.ErrInvalidGuestCount)
	}

	// Advisory fast path: reject before doing any transactional work
	// when the range is already taken
	availability, err := m.oracle.Check(ctx, req.PropertyID, *rng)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		m.metrics.IncAttempts()
		m.metrics.IncAvailabilityConflicts()
		m.metrics.IncFailures()
		return nil, errs.NewAvailabilityConflictError(req.PropertyID, rng.CheckInString(), rng.CheckOutString(), availability.ConflictingIDs)
	}

	attemptID := uuid.NewString()
	lockResult, err := m.lock.Acquire(ctx, req.PropertyID, *rng, attemptID)
	if err != nil {
		return nil, err
	}
	if !lockResult.Granted {
		m.metrics.IncAttempts()
		m.metrics.IncFailures()
		return nil, errs.NewPeriodLockedError(req.PropertyID, rng.CheckInString(), rng.CheckOutString(), lockResult.HolderID)
	}
	defer m.lock.Release(ctx, req.PropertyID, *rng, attemptID)

	var lastErr error
	for attempt := 0; attempt < m.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := m.retryBaseDelay * (1 << attempt)
			m.logger.Warn("Retrying booking transaction", map[string]any{
				"property_id": req.PropertyID,
				"attempt":     attempt + 1,
				"backoff_ms":  backoff.Milliseconds(),
				"error":       lastErr.Error(),
			})
			m.timeProvider.Sleep(coreport.Duration(backoff))
		}

		m.metrics.IncAttempts()
		reservation, err := m.createOnce(ctx, property, req, rng)
		if err == nil {
			m.metrics.IncSuccesses()
			m.oracle.Invalidate(ctx, req.PropertyID)
			m.notify(ctx, reservation.CustomerID, notifport.EventBookingCreated, reservation)
			return reservation, nil
		}
		if errs.IsAvailabilityConflictError(err) {
			m.metrics.IncAvailabilityConflicts()
			m.metrics.IncFailures()
			return nil, err
		}
		if !errs.IsRetryableError(err) {
			m.metrics.IncFailures()
			return nil, err
		}
		lastErr = err
	}

	m.metrics.IncAvailabilityConflicts()
	m.metrics.IncFailures()
	m.logger.Error("Booking transaction exhausted retries", map[string]any{
		"property_id": req.PropertyID,
		"max_retries": m.maxRetries,
		"error":       lastErr.Error(),
	})
	return nil, errs.NewAvailabilityConflictError(req.PropertyID, rng.CheckInString(), rng.CheckOutString(), nil)
}

// createOnce runs a single transactional attempt: lock overlapping rows,
// decide, insert, commit
func (m *BookingManager) createOnce(
	ctx context.Context,
	property *entity.Property,
	req CreateBookingRequest,
	rng *entity.DateRange,
) (reservation *entity.Reservation, err error) {
	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := m.uow.Rollback(txCtx); rbErr != nil {
				m.logger.Error("Failed to roll back booking transaction", map[string]any{
					"property_id": req.PropertyID,
					"error":       rbErr.Error(),
				})
			}
		}
	}()

	repo := m.uow.GetReservationRepository(txCtx)

	conflicts, err := repo.FindConflictsForUpdate(txCtx, req.PropertyID, *rng, 0)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		ids := make([]uint64, 0, len(conflicts))
		for _, c := range conflicts {
			ids = append(ids, c.ID)
		}
		return nil, errs.NewAvailabilityConflictError(req.PropertyID, rng.CheckInString(), rng.CheckOutString(), ids)
	}

	pricing := entity.ComputePricing(rng.Nights(), property.NightlyRateCents, property.CleaningFeeCents)
	reservation, err = entity.NewReservation(req.PropertyID, req.CustomerID, *rng, req.GuestsCount, pricing, m.timeProvider)
	if err != nil {
		return nil, err
	}
	reservation.SpecialRequests = req.SpecialRequests
	reservation.Metadata = req.Metadata

	if err = repo.Create(txCtx, reservation); err != nil {
		return nil, err
	}
	if err = m.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return reservation, nil
}

// notify delivers a booking event without letting delivery problems reach
// the caller
func (m *BookingManager) notify(ctx context.Context, recipientID uint64, event string, reservation *entity.Reservation) {
	payload := map[string]any{
		"reservation_id": reservation.ID,
		"booking_number": reservation.BookingNumber,
		"property_id":    reservation.PropertyID,
		"check_in":       reservation.Range.CheckInString(),
		"check_out":      reservation.Range.CheckOutString(),
		"status":         string(reservation.Status),
	}
	if err := m.dispatcher.Dispatch(ctx, recipientID, event, payload); err != nil {
		m.logger.Warn("Failed to dispatch booking notification", map[string]any{
			"event":          event,
			"recipient_id":   recipientID,
			"reservation_id": reservation.ID,
			"error":          err.Error(),
		})
	}
}
