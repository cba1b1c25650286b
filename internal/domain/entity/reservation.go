package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
)

// ReservationStatus defines the lifecycle states of a reservation
type ReservationStatus string

// Reservation lifecycle states
const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationInProgress ReservationStatus = "in_progress"
	ReservationCompleted  ReservationStatus = "completed"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// PaymentStatus defines the payment states of a reservation
type PaymentStatus string

// Payment states
const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// ServiceFeePercent is the platform fee applied on the base price
const ServiceFeePercent = 10

// BlockingStatuses are the reservation states that claim the property's dates.
// Only these participate in overlap conflicts.
var BlockingStatuses = []ReservationStatus{
	ReservationPending,
	ReservationConfirmed,
	ReservationInProgress,
}

// Reservation represents a tenant's claim on a property for a date range
type Reservation struct {
	ID            uint64
	BookingNumber string
	PropertyID    uint64
	CustomerID    uint64
	Range         DateRange
	GuestsCount   int
	Pricing       PricingBreakdown
	Status        ReservationStatus
	PaymentStatus PaymentStatus
	// Version increases by exactly 1 on every successful mutation; starts at 1
	Version            uint64
	SpecialRequests    string
	Metadata           map[string]any
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PricingBreakdown is the monetary composition of a reservation, in cents
type PricingBreakdown struct {
	BaseCents     int64
	CleaningCents int64
	ServiceCents  int64
	TotalCents    int64
}

// ComputePricing derives the monetary breakdown for a stay:
// nights x nightly rate, plus the cleaning fee, plus the service fee
func ComputePricing(nights int, nightlyRateCents, cleaningFeeCents int64) PricingBreakdown {
	base := int64(nights) * nightlyRateCents
	service := base * ServiceFeePercent / 100
	return PricingBreakdown{
		BaseCents:     base,
		CleaningCents: cleaningFeeCents,
		ServiceCents:  service,
		TotalCents:    base + cleaningFeeCents + service,
	}
}

// TotalString returns the total as a 2-decimal string
func (p PricingBreakdown) TotalString() string {
	return AmountInCentsToString(p.TotalCents)
}

// NewReservation creates a pending reservation with version 1
func NewReservation(
	propertyID uint64,
	customerID uint64,
	rng DateRange,
	guestsCount int,
	pricing PricingBreakdown,
	timeProvider coreport.TimeProvider,
) (*Reservation, error) {
	if propertyID == 0 {
		return nil, errs.ErrInvalidPropertyID
	}
	if customerID == 0 {
		return nil, errs.ErrInvalidCustomerID
	}
	if guestsCount <= 0 {
		return nil, errs.ErrInvalidGuestCount
	}

	now := timeProvider.Now()
	return &Reservation{
		BookingNumber: generateBookingNumber(now),
		PropertyID:    propertyID,
		CustomerID:    customerID,
		Range:         rng,
		GuestsCount:   guestsCount,
		Pricing:       pricing,
		Status:        ReservationPending,
		PaymentStatus: PaymentPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsBlocking reports whether the reservation's status claims its dates
func (r *Reservation) IsBlocking() bool {
	for _, s := range BlockingStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the reservation reached a terminal state
func (r *Reservation) IsTerminal() bool {
	return r.Status == ReservationCompleted || r.Status == ReservationCancelled
}

// CanTransitionTo validates a lifecycle transition
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	if r.IsTerminal() {
		return false
	}
	switch r.Status {
	case ReservationPending:
		return next == ReservationConfirmed || next == ReservationCancelled
	case ReservationConfirmed:
		return next == ReservationInProgress || next == ReservationCancelled
	case ReservationInProgress:
		return next == ReservationCompleted || next == ReservationCancelled
	default:
		return false
	}
}

// Confirm marks the reservation confirmed
func (r *Reservation) Confirm(timeProvider coreport.TimeProvider) error {
	if !r.CanTransitionTo(ReservationConfirmed) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, r.Status, ReservationConfirmed)
	}
	now := timeProvider.Now()
	r.Status = ReservationConfirmed
	r.ConfirmedAt = &now
	r.UpdatedAt = now
	return nil
}

// Cancel marks the reservation cancelled with a reason
func (r *Reservation) Cancel(reason string, timeProvider coreport.TimeProvider) error {
	if !r.CanTransitionTo(ReservationCancelled) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, r.Status, ReservationCancelled)
	}
	now := timeProvider.Now()
	r.Status = ReservationCancelled
	r.CancellationReason = reason
	r.CancelledAt = &now
	r.UpdatedAt = now
	return nil
}

// IsValidReservationStatus validates a status string against the lifecycle set
func IsValidReservationStatus(status string) bool {
	switch ReservationStatus(status) {
	case ReservationPending, ReservationConfirmed, ReservationInProgress,
		ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// IsValidPaymentStatus validates a payment status string
func IsValidPaymentStatus(status string) bool {
	switch PaymentStatus(status) {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

// generateBookingNumber builds a human-readable reservation reference. The
// random suffix keeps same-instant creations from colliding; the database
// index on booking_number remains the final uniqueness barrier.
func generateBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("RSV%d%s", now.UnixMilli(), suffix)
}
