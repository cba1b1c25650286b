package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	mockcore "github.com/rsvtravel/booking-engine/mocks/port/core"
)

func TestBookingValidator_ValidateCreate(t *testing.T) {
	fixedTime := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mockTimeProvider := mockcore.NewMockTimeProvider(t)
	mockTimeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	validator := NewBookingValidator(mockTimeProvider, 1, 30)

	validRequest := func() CreateBookingRequest {
		return CreateBookingRequest{
			PropertyID:  42,
			CustomerID:  7,
			CheckIn:     "2026-06-10",
			CheckOut:    "2026-06-13",
			GuestsCount: 2,
		}
	}

	t.Run("Valid request", func(t *testing.T) {
		rng, err := validator.ValidateCreate(validRequest())

		require.NoError(t, err)
		assert.Equal(t, 3, rng.Nights())
	})

	t.Run("Zero property ID", func(t *testing.T) {
		req := validRequest()
		req.PropertyID = 0

		_, err := validator.ValidateCreate(req)
		assert.ErrorIs(t, err, errs.ErrInvalidPropertyID)
	})

	t.Run("Zero customer ID", func(t *testing.T) {
		req := validRequest()
		req.CustomerID = 0

		_, err := validator.ValidateCreate(req)
		assert.ErrorIs(t, err, errs.ErrInvalidCustomerID)
	})

	t.Run("Zero guests", func(t *testing.T) {
		req := validRequest()
		req.GuestsCount = 0

		_, err := validator.ValidateCreate(req)
		assert.ErrorIs(t, err, errs.ErrInvalidGuestCount)
	})

	t.Run("Past check-in", func(t *testing.T) {
		req := validRequest()
		req.CheckIn = "2026-04-30"
		req.CheckOut = "2026-05-03"

		_, err := validator.ValidateCreate(req)
		assert.ErrorIs(t, err, errs.ErrDateInPast)
	})

	t.Run("Malformed dates", func(t *testing.T) {
		req := validRequest()
		req.CheckIn = "10/06/2026"

		_, err := validator.ValidateCreate(req)
		assert.ErrorIs(t, err, errs.ErrInvalidDateFormat)
	})

	t.Run("Stay longer than the maximum", func(t *testing.T) {
		req := validRequest()
		req.CheckIn = "2026-06-01"
		req.CheckOut = "2026-07-15"

		_, err := validator.ValidateCreate(req)
		assert.ErrorIs(t, err, errs.ErrStayTooLong)
	})
}

func TestBookingValidator_ValidateUpdateDates(t *testing.T) {
	fixedTime := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mockTimeProvider := mockcore.NewMockTimeProvider(t)
	mockTimeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	validator := NewBookingValidator(mockTimeProvider, 1, 30)

	t.Run("Valid replacement range", func(t *testing.T) {
		rng, err := validator.ValidateUpdateDates("2026-07-01", "2026-07-05")

		require.NoError(t, err)
		assert.Equal(t, 4, rng.Nights())
	})

	t.Run("Check-out not after check-in", func(t *testing.T) {
		_, err := validator.ValidateUpdateDates("2026-07-05", "2026-07-05")
		assert.ErrorIs(t, err, errs.ErrCheckOutNotAfterCheckIn)
	})
}
