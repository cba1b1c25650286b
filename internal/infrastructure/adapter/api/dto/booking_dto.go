package dto

import (
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
)

// CreateBookingRequest represents the API request for creating a booking
type CreateBookingRequest struct {
	PropertyID      uint64         `json:"propertyId" binding:"required"`
	CustomerID      uint64         `json:"customerId" binding:"required"`
	CheckIn         string         `json:"checkIn" binding:"required"`
	CheckOut        string         `json:"checkOut" binding:"required"`
	GuestsCount     int            `json:"guestsCount" binding:"required,min=1"`
	SpecialRequests string         `json:"specialRequests"`
	Metadata        map[string]any `json:"metadata"`
}

// UpdateBookingRequest represents the API request for a versioned update.
// Omitted fields keep their current values.
type UpdateBookingRequest struct {
	ExpectedVersion uint64         `json:"expectedVersion" binding:"required"`
	CheckIn         *string        `json:"checkIn"`
	CheckOut        *string        `json:"checkOut"`
	GuestsCount     *int           `json:"guestsCount"`
	SpecialRequests *string        `json:"specialRequests"`
	Metadata        map[string]any `json:"metadata"`
}

// ConfirmBookingRequest carries the version the caller last read
type ConfirmBookingRequest struct {
	ExpectedVersion uint64 `json:"expectedVersion" binding:"required"`
}

// CancelBookingRequest carries the caller's version and an optional reason
type CancelBookingRequest struct {
	ExpectedVersion uint64 `json:"expectedVersion" binding:"required"`
	Reason          string `json:"reason"`
}

// PricingResponse breaks down the reservation price as 2-decimal amounts
type PricingResponse struct {
	BaseAmount  string `json:"baseAmount"`
	CleaningFee string `json:"cleaningFee"`
	ServiceFee  string `json:"serviceFee"`
	TotalAmount string `json:"totalAmount"`
}

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ID              uint64          `json:"id"`
	BookingNumber   string          `json:"bookingNumber"`
	PropertyID      uint64          `json:"propertyId"`
	CustomerID      uint64          `json:"customerId"`
	CheckIn         string          `json:"checkIn"`
	CheckOut        string          `json:"checkOut"`
	Nights          int             `json:"nights"`
	GuestsCount     int             `json:"guestsCount"`
	Pricing         PricingResponse `json:"pricing"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	Version         uint64          `json:"version"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	ConfirmedAt     *time.Time      `json:"confirmedAt,omitempty"`
	CancelledAt     *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewReservationResponse maps a reservation entity to its API shape
func NewReservationResponse(r *entity.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID,
		BookingNumber: r.BookingNumber,
		PropertyID:    r.PropertyID,
		CustomerID:    r.CustomerID,
		CheckIn:       r.Range.CheckIn.Format(entity.DateLayout),
		CheckOut:      r.Range.CheckOut.Format(entity.DateLayout),
		Nights:        r.Range.Nights(),
		GuestsCount:   r.GuestsCount,
		Pricing: PricingResponse{
			BaseAmount:  entity.AmountInCentsToString(r.Pricing.BaseCents),
			CleaningFee: entity.AmountInCentsToString(r.Pricing.CleaningCents),
			ServiceFee:  entity.AmountInCentsToString(r.Pricing.ServiceCents),
			TotalAmount: entity.AmountInCentsToString(r.Pricing.TotalCents),
		},
		Status:          string(r.Status),
		PaymentStatus:   string(r.PaymentStatus),
		Version:         r.Version,
		SpecialRequests: r.SpecialRequests,
		ConfirmedAt:     r.ConfirmedAt,
		CancelledAt:     r.CancelledAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// AvailabilityResponse answers an availability question
type AvailabilityResponse struct {
	PropertyID       uint64 `json:"propertyId"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	Available        bool   `json:"available"`
	ConflictingCount int    `json:"conflictingCount"`
}

// BookingMetricsResponse exposes the booking telemetry counters
type BookingMetricsResponse struct {
	Attempts              uint64  `json:"attempts"`
	Successes             uint64  `json:"successes"`
	Failures              uint64  `json:"failures"`
	VersionConflicts      uint64  `json:"versionConflicts"`
	AvailabilityConflicts uint64  `json:"availabilityConflicts"`
	SuccessRate           float64 `json:"successRate"`
	AverageDurationMs     int64   `json:"averageDurationMs"`
}
