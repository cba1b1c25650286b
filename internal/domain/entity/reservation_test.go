package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coremocks "github.com/rsvtravel/booking-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRange(t *testing.T) DateRange {
	t.Helper()
	rng, err := ValidateDateRange("2026-06-10", "2026-06-13", DateRangeOptions{})
	require.NoError(t, err)
	return *rng
}

func TestComputePricing(t *testing.T) {
	testCases := []struct {
		name             string
		nights           int
		nightlyRateCents int64
		cleaningFeeCents int64
		expected         PricingBreakdown
	}{
		{
			name:             "Three nights with cleaning fee",
			nights:           3,
			nightlyRateCents: 10000,
			cleaningFeeCents: 5000,
			expected: PricingBreakdown{
				BaseCents:     30000,
				CleaningCents: 5000,
				ServiceCents:  3000,
				TotalCents:    38000,
			},
		},
		{
			name:             "Single night without cleaning fee",
			nights:           1,
			nightlyRateCents: 12345,
			cleaningFeeCents: 0,
			expected: PricingBreakdown{
				BaseCents:     12345,
				CleaningCents: 0,
				ServiceCents:  1234,
				TotalCents:    13579,
			},
		},
		{
			name:             "Service fee truncates toward zero",
			nights:           1,
			nightlyRateCents: 99,
			cleaningFeeCents: 0,
			expected: PricingBreakdown{
				BaseCents:     99,
				CleaningCents: 0,
				ServiceCents:  9,
				TotalCents:    108,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePricing(tc.nights, tc.nightlyRateCents, tc.cleaningFeeCents)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPricingTotalString(t *testing.T) {
	p := ComputePricing(3, 10000, 5000)
	assert.Equal(t, "380.00", p.TotalString())
}

func TestNewReservation(t *testing.T) {
	fixedTime := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	rng := testRange(t)
	pricing := ComputePricing(rng.Nights(), 10000, 5000)

	t.Run("Valid reservation creation", func(t *testing.T) {
		r, err := NewReservation(42, 7, rng, 2, pricing, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), r.PropertyID)
		assert.Equal(t, uint64(7), r.CustomerID)
		assert.Equal(t, 2, r.GuestsCount)
		assert.Equal(t, ReservationPending, r.Status)
		assert.Equal(t, PaymentPending, r.PaymentStatus)
		assert.Equal(t, uint64(1), r.Version)
		assert.Equal(t, pricing, r.Pricing)
		assert.Equal(t, fixedTime, r.CreatedAt)
		assert.Equal(t, fixedTime, r.UpdatedAt)
		assert.True(t, strings.HasPrefix(r.BookingNumber, "RSV"))
	})

	t.Run("Same-instant creations get distinct booking numbers", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			r, err := NewReservation(42, 7, rng, 2, pricing, mockTime)
			require.NoError(t, err)
			assert.False(t, seen[r.BookingNumber], "booking number %q repeated", r.BookingNumber)
			seen[r.BookingNumber] = true
		}
	})

	t.Run("Zero property ID should return error", func(t *testing.T) {
		r, err := NewReservation(0, 7, rng, 2, pricing, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidPropertyID)
		assert.Nil(t, r)
	})

	t.Run("Zero customer ID should return error", func(t *testing.T) {
		r, err := NewReservation(42, 0, rng, 2, pricing, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidCustomerID)
		assert.Nil(t, r)
	})

	t.Run("Non-positive guest count should return error", func(t *testing.T) {
		for _, guests := range []int{0, -1} {
			r, err := NewReservation(42, 7, rng, guests, pricing, mockTime)

			assert.ErrorIs(t, err, errs.ErrInvalidGuestCount)
			assert.Nil(t, r)
		}
	})
}

func TestReservationIsBlocking(t *testing.T) {
	testCases := []struct {
		status   ReservationStatus
		blocking bool
	}{
		{ReservationPending, true},
		{ReservationConfirmed, true},
		{ReservationInProgress, true},
		{ReservationCompleted, false},
		{ReservationCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			r := &Reservation{Status: tc.status}
			assert.Equal(t, tc.blocking, r.IsBlocking())
		})
	}
}

func TestReservationIsTerminal(t *testing.T) {
	assert.False(t, (&Reservation{Status: ReservationPending}).IsTerminal())
	assert.False(t, (&Reservation{Status: ReservationInProgress}).IsTerminal())
	assert.True(t, (&Reservation{Status: ReservationCompleted}).IsTerminal())
	assert.True(t, (&Reservation{Status: ReservationCancelled}).IsTerminal())
}

func TestReservationCanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{ReservationPending, ReservationConfirmed, true},
		{ReservationPending, ReservationCancelled, true},
		{ReservationPending, ReservationInProgress, false},
		{ReservationPending, ReservationCompleted, false},
		{ReservationConfirmed, ReservationInProgress, true},
		{ReservationConfirmed, ReservationCancelled, true},
		{ReservationConfirmed, ReservationCompleted, false},
		{ReservationConfirmed, ReservationPending, false},
		{ReservationInProgress, ReservationCompleted, true},
		{ReservationInProgress, ReservationCancelled, true},
		{ReservationInProgress, ReservationConfirmed, false},
		{ReservationCompleted, ReservationCancelled, false},
		{ReservationCancelled, ReservationPending, false},
		{ReservationCancelled, ReservationConfirmed, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			r := &Reservation{Status: tc.from}
			assert.Equal(t, tc.allowed, r.CanTransitionTo(tc.to))
		})
	}
}

func TestReservationConfirm(t *testing.T) {
	confirmTime := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Pending reservation can be confirmed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(confirmTime).Once()

		r := &Reservation{Status: ReservationPending}
		err := r.Confirm(mockTime)

		require.NoError(t, err)
		assert.Equal(t, ReservationConfirmed, r.Status)
		require.NotNil(t, r.ConfirmedAt)
		assert.Equal(t, confirmTime, *r.ConfirmedAt)
		assert.Equal(t, confirmTime, r.UpdatedAt)
	})

	t.Run("Cancelled reservation cannot be confirmed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		r := &Reservation{Status: ReservationCancelled}
		err := r.Confirm(mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, ReservationCancelled, r.Status)
	})
}

func TestReservationCancel(t *testing.T) {
	cancelTime := time.Date(2026, 5, 3, 16, 0, 0, 0, time.UTC)

	t.Run("Confirmed reservation can be cancelled", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(cancelTime).Once()

		r := &Reservation{Status: ReservationConfirmed}
		err := r.Cancel("change of plans", mockTime)

		require.NoError(t, err)
		assert.Equal(t, ReservationCancelled, r.Status)
		assert.Equal(t, "change of plans", r.CancellationReason)
		require.NotNil(t, r.CancelledAt)
		assert.Equal(t, cancelTime, *r.CancelledAt)
	})

	t.Run("Completed reservation cannot be cancelled", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		r := &Reservation{Status: ReservationCompleted}
		err := r.Cancel("too late", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, ReservationCompleted, r.Status)
	})
}

func TestIsValidReservationStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "in_progress", "completed", "cancelled"} {
		assert.True(t, IsValidReservationStatus(s), s)
	}
	for _, s := range []string{"", "active", "PENDING", "done"} {
		assert.False(t, IsValidReservationStatus(s), s)
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"pending", "partial", "paid"} {
		assert.True(t, IsValidPaymentStatus(s), s)
	}
	for _, s := range []string{"", "unpaid", "PAID"} {
		assert.False(t, IsValidPaymentStatus(s), s)
	}
}
