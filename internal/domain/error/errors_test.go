package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrAvailabilityConflict.Error() != "property is not available for the requested dates" {
		t.Errorf("ErrAvailabilityConflict has unexpected message: %s", ErrAvailabilityConflict.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrVersionConflict.Error() != "reservation was modified by another writer" {
		t.Errorf("ErrVersionConflict has unexpected message: %s", ErrVersionConflict.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidDateFormat", ErrInvalidDateFormat, 4001},
		{"StayTooShort", ErrStayTooShort, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidPropertyID", ErrInvalidPropertyID, 4003},
		{"AvailabilityConflict", ErrAvailabilityConflict, 4090},
		{"VersionConflict", ErrVersionConflict, 4091},
		{"PeriodLocked", ErrPeriodLocked, 4092},
		{"BidTooLow", ErrBidTooLow, 4220},
		{"AuctionNotActive", ErrAuctionNotActive, 4221},
		{"ReservationNotFound", ErrReservationNotFound, 4040},
		{"AuctionNotFound", ErrAuctionNotFound, 4041},
		{"PropertyNotFound", ErrPropertyNotFound, 4042},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrAvailabilityConflict), 4090},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	baseErr := ErrCheckOutNotAfterCheckIn
	valErr := &ValidationError{
		Field: "check_out",
		Rule:  "after_check_in",
		Err:   baseErr,
	}

	// Test Error method
	expectedErrMsg := "validation failed on check_out (after_check_in): check-out must be after check-in"
	if valErr.Error() != expectedErrMsg {
		t.Errorf("ValidationError.Error() = %s, want %s", valErr.Error(), expectedErrMsg)
	}

	// Test Unwrap method
	if !errors.Is(valErr, baseErr) {
		t.Errorf("errors.Is(valErr, baseErr) = false, want true")
	}

	// Test through helper function
	if !IsValidationError(valErr) {
		t.Errorf("IsValidationError(valErr) = false, want true")
	}
	if IsValidationError(ErrAvailabilityConflict) {
		t.Errorf("IsValidationError(ErrAvailabilityConflict) = true, want false")
	}
}

func TestAvailabilityConflictError(t *testing.T) {
	err := NewAvailabilityConflictError(42, "2026-06-10", "2026-06-13", []uint64{7, 9})
	if err == nil {
		t.Fatal("NewAvailabilityConflictError returned nil")
	}

	// Test Error method
	expectedErrMsg := "property 42 is not available for 2026-06-10 to 2026-06-13 (2 conflicting reservations)"
	if err.Error() != expectedErrMsg {
		t.Errorf("AvailabilityConflictError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(err, ErrAvailabilityConflict) {
		t.Errorf("errors.Is(err, ErrAvailabilityConflict) = false, want true")
	}

	// Test through helper function
	if !IsAvailabilityConflictError(err) {
		t.Errorf("IsAvailabilityConflictError(err) = false, want true")
	}
}

func TestVersionConflictError(t *testing.T) {
	err := NewVersionConflictError(17, 3, 5)
	if err == nil {
		t.Fatal("NewVersionConflictError returned nil")
	}

	expectedErrMsg := "reservation 17 was modified by another writer: expected version 3, current version 5"
	if err.Error() != expectedErrMsg {
		t.Errorf("VersionConflictError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrVersionConflict) {
		t.Errorf("errors.Is(err, ErrVersionConflict) = false, want true")
	}
	if !IsVersionConflictError(err) {
		t.Errorf("IsVersionConflictError(err) = false, want true")
	}

	// The current version must be recoverable for the API response
	var vce *VersionConflictError
	if !AsVersionConflictError(err, &vce) {
		t.Fatal("AsVersionConflictError(err) = false, want true")
	}
	if vce.CurrentVersion != 5 {
		t.Errorf("vce.CurrentVersion = %d, want 5", vce.CurrentVersion)
	}
}

func TestPeriodLockedError(t *testing.T) {
	err := NewPeriodLockedError(42, "2026-06-10", "2026-06-13", "attempt-abc")
	if err == nil {
		t.Fatal("NewPeriodLockedError returned nil")
	}

	expectedErrMsg := "period 2026-06-10 to 2026-06-13 on property 42 is locked by attempt attempt-abc"
	if err.Error() != expectedErrMsg {
		t.Errorf("PeriodLockedError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrPeriodLocked) {
		t.Errorf("errors.Is(err, ErrPeriodLocked) = false, want true")
	}
	if !IsPeriodLockedError(err) {
		t.Errorf("IsPeriodLockedError(err) = false, want true")
	}
}

func TestBidTooLowError(t *testing.T) {
	err := NewBidTooLowError(9, 10000, 10500)
	if err == nil {
		t.Fatal("NewBidTooLowError returned nil")
	}

	expectedErrMsg := "bid of 10000 cents on auction 9 is below the minimum of 10500 cents"
	if err.Error() != expectedErrMsg {
		t.Errorf("BidTooLowError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrBidTooLow) {
		t.Errorf("errors.Is(err, ErrBidTooLow) = false, want true")
	}
	if !IsBidTooLowError(err) {
		t.Errorf("IsBidTooLowError(err) = false, want true")
	}

	var btl *BidTooLowError
	if !AsBidTooLowError(err, &btl) {
		t.Fatal("AsBidTooLowError(err) = false, want true")
	}
	if btl.MinimumCents != 10500 {
		t.Errorf("btl.MinimumCents = %d, want 10500", btl.MinimumCents)
	}
}

func TestIsNotFoundError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ReservationNotFound", ErrReservationNotFound, true},
		{"PropertyNotFound", ErrPropertyNotFound, true},
		{"AuctionNotFound", ErrAuctionNotFound, true},
		{"GenericNotFound", ErrNotFound, true},
		{"WrappedNotFound", fmt.Errorf("lookup: %w", ErrReservationNotFound), true},
		{"OtherError", ErrVersionConflict, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"TransactionConflict", ErrTransactionConflict, true},
		{"DatabaseConnection", ErrDatabaseConnection, true},
		{"WrappedConflict", fmt.Errorf("create: %w", ErrTransactionConflict), true},
		{"VersionConflict", ErrVersionConflict, false},
		{"AvailabilityConflict", ErrAvailabilityConflict, false},
		{"Nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryableError(tc.err); got != tc.expected {
				t.Errorf("IsRetryableError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestIsCacheUnavailableError(t *testing.T) {
	wrapped := fmt.Errorf("%w: get availability:42: connection refused", ErrCacheUnavailable)
	if !IsCacheUnavailableError(wrapped) {
		t.Errorf("IsCacheUnavailableError(wrapped) = false, want true")
	}
	if IsCacheUnavailableError(ErrVersionConflict) {
		t.Errorf("IsCacheUnavailableError(ErrVersionConflict) = true, want false")
	}
}
