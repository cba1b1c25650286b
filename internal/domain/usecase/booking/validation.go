package booking

import (
	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
)

// BookingValidator provides validation for booking requests
type BookingValidator struct {
	timeProvider coreport.TimeProvider
	minStay      int
	maxStay      int
}

// NewBookingValidator creates a new BookingValidator
func NewBookingValidator(timeProvider coreport.TimeProvider, minStay, maxStay int) *BookingValidator {
	return &BookingValidator{
		timeProvider: timeProvider,
		minStay:      minStay,
		maxStay:      maxStay,
	}
}

// ValidateCreate validates a create request and returns the normalized date range
func (v *BookingValidator) ValidateCreate(req CreateBookingRequest) (*entity.DateRange, error) {
	if req.PropertyID == 0 {
		return nil, errs.NewValidationError("property_id", "positive", errs.ErrInvalidPropertyID)
	}
	if req.CustomerID == 0 {
		return nil, errs.NewValidationError("customer_id", "positive", errs.ErrInvalidCustomerID)
	}
	if req.GuestsCount <= 0 {
		return nil, errs.NewValidationError("guests_count", "positive", errs.ErrInvalidGuestCount)
	}

	return v.validateRange(req.CheckIn, req.CheckOut)
}

// ValidateUpdateDates validates the replacement date range of an update request
func (v *BookingValidator) ValidateUpdateDates(checkIn, checkOut string) (*entity.DateRange, error) {
	return v.validateRange(checkIn, checkOut)
}

func (v *BookingValidator) validateRange(checkIn, checkOut string) (*entity.DateRange, error) {
	return entity.ValidateDateRange(checkIn, checkOut, entity.DateRangeOptions{
		MinStayNights: v.minStay,
		MaxStayNights: v.maxStay,
		Reference:     v.timeProvider.Now(),
	})
}
