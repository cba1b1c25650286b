package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
)

// BookingResponse represents the response after a booking operation
type BookingResponse struct {
	Success        bool
	Reservation    *entity.Reservation
	ErrorMessage   string
	ErrorCode      int
	CurrentVersion uint64
	StatusCode     int
}

// Service is the main booking service implementation that ties together
// validation, availability, locking and the transaction manager
type Service struct {
	manager   *BookingManager
	oracle    *AvailabilityOracle
	validator *BookingValidator
	metrics   coreport.BookingMetrics
	logger    coreport.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	manager *BookingManager,
	oracle *AvailabilityOracle,
	validator *BookingValidator,
	metrics coreport.BookingMetrics,
	logger coreport.Logger,
) *Service {
	return &Service{
		manager:   manager,
		oracle:    oracle,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// CreateBooking processes a create request and returns an appropriate response
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	reservation, err := s.manager.Create(ctx, req)
	if err != nil {
		return s.failure("Booking creation failed", err, map[string]any{
			"property_id": req.PropertyID,
			"customer_id": req.CustomerID,
		}), err
	}
	return s.success(reservation, http.StatusCreated), nil
}

// UpdateBooking processes a versioned update request
func (s *Service) UpdateBooking(ctx context.Context, req UpdateBookingRequest) (*BookingResponse, error) {
	reservation, err := s.manager.Update(ctx, req)
	if err != nil {
		return s.failure("Booking update failed", err, map[string]any{
			"reservation_id":   req.ReservationID,
			"expected_version": req.ExpectedVersion,
		}), err
	}
	return s.success(reservation, http.StatusOK), nil
}

// ConfirmBooking moves a reservation to confirmed under the caller's version
func (s *Service) ConfirmBooking(ctx context.Context, reservationID uint64, expectedVersion uint64) (*BookingResponse, error) {
	reservation, err := s.manager.Confirm(ctx, reservationID, expectedVersion)
	if err != nil {
		return s.failure("Booking confirmation failed", err, map[string]any{
			"reservation_id":   reservationID,
			"expected_version": expectedVersion,
		}), err
	}
	return s.success(reservation, http.StatusOK), nil
}

// CancelBooking cancels a reservation under the caller's version
func (s *Service) CancelBooking(ctx context.Context, reservationID uint64, expectedVersion uint64, reason string) (*BookingResponse, error) {
	reservation, err := s.manager.Cancel(ctx, reservationID, expectedVersion, reason)
	if err != nil {
		return s.failure("Booking cancellation failed", err, map[string]any{
			"reservation_id":   reservationID,
			"expected_version": expectedVersion,
		}), err
	}
	return s.success(reservation, http.StatusOK), nil
}

// GetBooking retrieves a reservation
func (s *Service) GetBooking(ctx context.Context, reservationID uint64) (*BookingResponse, error) {
	reservation, err := s.manager.Get(ctx, reservationID)
	if err != nil {
		return s.failure("Booking lookup failed", err, map[string]any{
			"reservation_id": reservationID,
		}), err
	}
	return s.success(reservation, http.StatusOK), nil
}

// CheckAvailability answers an availability question for raw date strings
func (s *Service) CheckAvailability(ctx context.Context, propertyID uint64, checkIn, checkOut string) (*AvailabilityResult, error) {
	if propertyID == 0 {
		return nil, errs.NewValidationError("property_id", "positive", errs.ErrInvalidPropertyID)
	}
	rng, err := s.validator.ValidateUpdateDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return s.oracle.Check(ctx, propertyID, *rng)
}

// MetricsSnapshot returns the current booking telemetry
func (s *Service) MetricsSnapshot() coreport.BookingMetricsSnapshot {
	return s.metrics.Snapshot()
}

// ResetMetrics zeroes the booking telemetry
func (s *Service) ResetMetrics() {
	s.metrics.Reset()
	s.logger.Info("Booking metrics reset", nil)
}

func (s *Service) success(reservation *entity.Reservation, status int) *BookingResponse {
	return &BookingResponse{
		Success:     true,
		Reservation: reservation,
		StatusCode:  status,
	}
}

// failure maps known errors to HTTP status codes and logs the detail
func (s *Service) failure(message string, err error, fields map[string]any) *BookingResponse {
	resp := &BookingResponse{
		Success:      false,
		ErrorMessage: err.Error(),
		ErrorCode:    errs.ErrorCode(err),
		StatusCode:   StatusCodeFor(err),
	}

	var versionErr *errs.VersionConflictError
	if errs.AsVersionConflictError(err, &versionErr) {
		resp.CurrentVersion = versionErr.CurrentVersion
	}

	fields["error"] = err.Error()
	fields["status_code"] = resp.StatusCode
	s.logger.Error(message, fields)
	return resp
}

// StatusCodeFor maps domain errors to HTTP status codes
func StatusCodeFor(err error) int {
	switch {
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsAvailabilityConflictError(err), errs.IsVersionConflictError(err), errs.IsPeriodLockedError(err):
		return http.StatusConflict
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DefaultCacheTTL is the availability cache lifetime when config omits one
const DefaultCacheTTL = 5 * time.Minute

// DefaultLockTTL is the period lock lifetime when config omits one
const DefaultLockTTL = 15 * time.Minute
