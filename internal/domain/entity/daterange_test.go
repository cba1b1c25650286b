package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
)

func TestValidateDateRange(t *testing.T) {
	reference := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)

	t.Run("Valid range", func(t *testing.T) {
		rng, err := ValidateDateRange("2026-06-10", "2026-06-13", DateRangeOptions{Reference: reference})
		require.NoError(t, err)
		assert.Equal(t, 3, rng.Nights())
		assert.Equal(t, "2026-06-10", rng.CheckInString())
		assert.Equal(t, "2026-06-13", rng.CheckOutString())
	})

	t.Run("Single night", func(t *testing.T) {
		rng, err := ValidateDateRange("2026-06-10", "2026-06-11", DateRangeOptions{Reference: reference})
		require.NoError(t, err)
		assert.Equal(t, 1, rng.Nights())
	})

	t.Run("Check-out equal to check-in is rejected", func(t *testing.T) {
		_, err := ValidateDateRange("2026-06-10", "2026-06-10", DateRangeOptions{Reference: reference})
		assert.ErrorIs(t, err, errs.ErrCheckOutNotAfterCheckIn)
	})

	t.Run("Check-out before check-in is rejected", func(t *testing.T) {
		_, err := ValidateDateRange("2026-06-13", "2026-06-10", DateRangeOptions{Reference: reference})
		assert.ErrorIs(t, err, errs.ErrCheckOutNotAfterCheckIn)
	})

	t.Run("Past check-in is rejected", func(t *testing.T) {
		_, err := ValidateDateRange("2026-05-31", "2026-06-05", DateRangeOptions{Reference: reference})
		assert.ErrorIs(t, err, errs.ErrDateInPast)
	})

	t.Run("Check-in today is accepted", func(t *testing.T) {
		// The reference carries a time of day; only the calendar date matters
		rng, err := ValidateDateRange("2026-06-01", "2026-06-03", DateRangeOptions{Reference: reference})
		require.NoError(t, err)
		assert.Equal(t, 2, rng.Nights())
	})

	t.Run("Past check-in allowed when AllowPast", func(t *testing.T) {
		_, err := ValidateDateRange("2026-05-01", "2026-05-05", DateRangeOptions{
			AllowPast: true,
			Reference: reference,
		})
		assert.NoError(t, err)
	})

	t.Run("Zero reference disables the past rule", func(t *testing.T) {
		_, err := ValidateDateRange("2020-01-01", "2020-01-05", DateRangeOptions{})
		assert.NoError(t, err)
	})

	t.Run("Malformed dates", func(t *testing.T) {
		testCases := []struct {
			name     string
			checkIn  string
			checkOut string
		}{
			{"Wrong layout", "10-06-2026", "2026-06-13"},
			{"Short string", "2026-6-1", "2026-06-13"},
			{"Garbage", "not-a-date", "2026-06-13"},
			{"Empty", "", "2026-06-13"},
			{"Malformed check-out", "2026-06-10", "13/06/2026"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ValidateDateRange(tc.checkIn, tc.checkOut, DateRangeOptions{Reference: reference})
				assert.ErrorIs(t, err, errs.ErrInvalidDateFormat)
			})
		}
	})

	t.Run("Calendar-impossible dates", func(t *testing.T) {
		testCases := []struct {
			name    string
			checkIn string
		}{
			{"February 30th", "2026-02-30"},
			{"Month 13", "2026-13-01"},
			{"Day zero", "2026-06-00"},
			{"Non-leap-year Feb 29", "2027-02-29"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ValidateDateRange(tc.checkIn, "2027-06-13", DateRangeOptions{Reference: reference})
				assert.Error(t, err)
				assert.True(t, errs.IsValidationError(err))
			})
		}
	})

	t.Run("Leap-year Feb 29 is accepted", func(t *testing.T) {
		_, err := ValidateDateRange("2028-02-29", "2028-03-02", DateRangeOptions{Reference: reference})
		assert.NoError(t, err)
	})

	t.Run("Minimum stay", func(t *testing.T) {
		opts := DateRangeOptions{Reference: reference, MinStayNights: 2}

		_, err := ValidateDateRange("2026-06-10", "2026-06-11", opts)
		assert.ErrorIs(t, err, errs.ErrStayTooShort)

		_, err = ValidateDateRange("2026-06-10", "2026-06-12", opts)
		assert.NoError(t, err)
	})

	t.Run("Maximum stay", func(t *testing.T) {
		opts := DateRangeOptions{Reference: reference, MaxStayNights: 30}

		_, err := ValidateDateRange("2026-06-01", "2026-07-02", opts)
		assert.ErrorIs(t, err, errs.ErrStayTooLong)

		_, err = ValidateDateRange("2026-06-01", "2026-07-01", opts)
		assert.NoError(t, err)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	mustRange := func(in, out string) *DateRange {
		rng, err := ValidateDateRange(in, out, DateRangeOptions{})
		require.NoError(t, err)
		return rng
	}

	testCases := []struct {
		name     string
		a        *DateRange
		b        *DateRange
		overlaps bool
	}{
		{
			name:     "Identical ranges",
			a:        mustRange("2026-06-10", "2026-06-13"),
			b:        mustRange("2026-06-10", "2026-06-13"),
			overlaps: true,
		},
		{
			name:     "Partial overlap at the end",
			a:        mustRange("2026-06-10", "2026-06-13"),
			b:        mustRange("2026-06-12", "2026-06-15"),
			overlaps: true,
		},
		{
			name:     "One contains the other",
			a:        mustRange("2026-06-10", "2026-06-20"),
			b:        mustRange("2026-06-12", "2026-06-14"),
			overlaps: true,
		},
		{
			name:     "Back to back stays do not overlap",
			a:        mustRange("2026-06-10", "2026-06-13"),
			b:        mustRange("2026-06-13", "2026-06-16"),
			overlaps: false,
		},
		{
			name:     "Disjoint ranges",
			a:        mustRange("2026-06-10", "2026-06-13"),
			b:        mustRange("2026-06-20", "2026-06-23"),
			overlaps: false,
		},
		{
			name:     "Single shared night",
			a:        mustRange("2026-06-10", "2026-06-13"),
			b:        mustRange("2026-06-12", "2026-06-13"),
			overlaps: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// Overlap is symmetric
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	rng, err := ValidateDateRange("2026-06-10", "2026-06-13", DateRangeOptions{})
	require.NoError(t, err)

	assert.True(t, rng.Contains(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rng.Contains(time.Date(2026, 6, 12, 18, 45, 0, 0, time.UTC)))
	// Check-out day is excluded
	assert.False(t, rng.Contains(time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)))
	assert.False(t, rng.Contains(time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)))
}

func TestDateRangeString(t *testing.T) {
	rng, err := ValidateDateRange("2026-06-10", "2026-06-13", DateRangeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-10:2026-06-13", rng.String())
}
