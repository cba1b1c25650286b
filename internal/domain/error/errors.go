package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidDateRange     = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidPropertyID    = 4003
	CodeReservationNotFound  = 4040
	CodeAuctionNotFound      = 4041
	CodePropertyNotFound     = 4042
	CodeAvailabilityConflict = 4090
	CodeVersionConflict      = 4091
	CodePeriodLocked         = 4092
	CodeBidTooLow            = 4220
	CodeAuctionNotActive     = 4221

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidDateFormat is returned when a date string is not YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

	// ErrInvalidCalendarDate is returned when a date string names a day that does not exist
	ErrInvalidCalendarDate = errors.New("date does not exist in the calendar")

	// ErrCheckOutNotAfterCheckIn is returned when check-out is not strictly after check-in
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")

	// ErrDateInPast is returned when the range starts before today and past dates are disallowed
	ErrDateInPast = errors.New("date range cannot start in the past")

	// ErrStayTooShort is returned when the stay is shorter than the configured minimum
	ErrStayTooShort = errors.New("stay is shorter than the minimum allowed")

	// ErrStayTooLong is returned when the stay is longer than the configured maximum
	ErrStayTooLong = errors.New("stay is longer than the maximum allowed")

	// ErrInvalidAmount is returned when a monetary amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidPropertyID is returned when the property ID is not a positive integer
	ErrInvalidPropertyID = errors.New("property ID must be positive")

	// ErrInvalidCustomerID is returned when the customer ID is not a positive integer
	ErrInvalidCustomerID = errors.New("customer ID must be positive")

	// ErrInvalidGuestCount is returned when the guest count is zero
	ErrInvalidGuestCount = errors.New("guest count must be positive")

	// ErrAvailabilityConflict is returned when the property is not free for the requested range
	ErrAvailabilityConflict = errors.New("property is not available for the requested dates")

	// ErrVersionConflict is returned when an optimistic update carries a stale version
	ErrVersionConflict = errors.New("reservation was modified by another writer")

	// ErrPeriodLocked is returned when another booking attempt holds the period lock
	ErrPeriodLocked = errors.New("period is temporarily locked by another booking attempt")

	// ErrReservationNotFound is returned when the requested reservation doesn't exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrPropertyNotFound is returned when the requested property doesn't exist
	ErrPropertyNotFound = errors.New("property not found")

	// ErrAuctionNotFound is returned when the requested auction doesn't exist
	ErrAuctionNotFound = errors.New("auction not found")

	// ErrAuctionNotActive is returned when a bid is placed on a non-active auction
	ErrAuctionNotActive = errors.New("auction is not active")

	// ErrBidTooLow is returned when a bid does not reach current_bid + min_increment
	ErrBidTooLow = errors.New("bid is below the minimum allowed amount")

	// ErrNoEligibleBidder is returned when a forfeiture finds no runner-up to promote
	ErrNoEligibleBidder = errors.New("no eligible bidder to promote")

	// ErrInvalidStatusTransition is returned on an illegal lifecycle transition
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrCacheUnavailable marks a degraded cache/lock store; absorbed internally,
	// never surfaced to callers while the relational store still answers
	ErrCacheUnavailable = errors.New("cache store unavailable")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTransactionConflict is returned when the database aborts a transaction
	// because of concurrent access (deadlock or serialization failure)
	ErrTransactionConflict = errors.New("transaction aborted due to concurrent access")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case IsValidationError(err):
		return CodeInvalidDateRange
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidPropertyID):
		return CodeInvalidPropertyID
	case errors.Is(err, ErrAvailabilityConflict):
		return CodeAvailabilityConflict
	case errors.Is(err, ErrVersionConflict):
		return CodeVersionConflict
	case errors.Is(err, ErrPeriodLocked):
		return CodePeriodLocked
	case errors.Is(err, ErrBidTooLow):
		return CodeBidTooLow
	case errors.Is(err, ErrAuctionNotActive):
		return CodeAuctionNotActive
	case errors.Is(err, ErrReservationNotFound):
		return CodeReservationNotFound
	case errors.Is(err, ErrAuctionNotFound):
		return CodeAuctionNotFound
	case errors.Is(err, ErrPropertyNotFound):
		return CodePropertyNotFound
	default:
		return CodeInternalServer
	}
}

// ValidationError names the field and rule a date-range or request check violated
type ValidationError struct {
	Field string
	Rule  string
	Err   error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s (%s): %v", e.Field, e.Rule, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"rule":       e.Rule,
		"error":      e.Err.Error(),
	}
}

// NewValidationError creates a validation error for a named field and rule
func NewValidationError(field, rule string, err error) error {
	return &ValidationError{Field: field, Rule: rule, Err: err}
}

// AvailabilityConflictError carries the conflicting reservations found for a range
type AvailabilityConflictError struct {
	PropertyID       uint64
	CheckIn          string
	CheckOut         string
	ConflictingCount int
	ConflictingIDs   []uint64
}

// Error implements the error interface
func (e *AvailabilityConflictError) Error() string {
	return fmt.Sprintf("property %d is not available for %s to %s (%d conflicting reservations)",
		e.PropertyID, e.CheckIn, e.CheckOut, e.ConflictingCount)
}

// Is checks if the target error is an ErrAvailabilityConflict
func (e *AvailabilityConflictError) Is(target error) bool {
	return target == ErrAvailabilityConflict
}

// LogFields returns a map of fields for structured logging
func (e *AvailabilityConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "availability_conflict",
		"property_id":       e.PropertyID,
		"check_in":          e.CheckIn,
		"check_out":         e.CheckOut,
		"conflicting_count": e.ConflictingCount,
		"error_code":        CodeAvailabilityConflict,
	}
}

// NewAvailabilityConflictError creates a detailed availability conflict error
func NewAvailabilityConflictError(propertyID uint64, checkIn, checkOut string, ids []uint64) error {
	return &AvailabilityConflictError{
		PropertyID:       propertyID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		ConflictingCount: len(ids),
		ConflictingIDs:   ids,
	}
}

// VersionConflictError reports a stale optimistic version together with the actual
// current version so the caller can re-fetch and resubmit against fresh data
type VersionConflictError struct {
	ReservationID   uint64
	ExpectedVersion uint64
	CurrentVersion  uint64
}

// Error implements the error interface
func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("reservation %d was modified by another writer: expected version %d, current version %d",
		e.ReservationID, e.ExpectedVersion, e.CurrentVersion)
}

// Is checks if the target error is an ErrVersionConflict
func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// LogFields returns a map of fields for structured logging
func (e *VersionConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "version_conflict",
		"reservation_id":   e.ReservationID,
		"expected_version": e.ExpectedVersion,
		"current_version":  e.CurrentVersion,
		"error_code":       CodeVersionConflict,
	}
}

// NewVersionConflictError creates a detailed version conflict error
func NewVersionConflictError(reservationID, expected, current uint64) error {
	return &VersionConflictError{
		ReservationID:   reservationID,
		ExpectedVersion: expected,
		CurrentVersion:  current,
	}
}

// PeriodLockedError reports which booking attempt currently holds the period lock
type PeriodLockedError struct {
	PropertyID uint64
	CheckIn    string
	CheckOut   string
	HolderID   string
}

// Error implements the error interface
func (e *PeriodLockedError) Error() string {
	return fmt.Sprintf("period %s to %s on property %d is locked by attempt %s",
		e.CheckIn, e.CheckOut, e.PropertyID, e.HolderID)
}

// Is checks if the target error is an ErrPeriodLocked
func (e *PeriodLockedError) Is(target error) bool {
	return target == ErrPeriodLocked
}

// NewPeriodLockedError creates a new PeriodLockedError
func NewPeriodLockedError(propertyID uint64, checkIn, checkOut, holderID string) error {
	return &PeriodLockedError{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		HolderID:   holderID,
	}
}

// BidTooLowError carries the minimum acceptable bid for the auction
type BidTooLowError struct {
	AuctionID    uint64
	AmountCents  int64
	MinimumCents int64
}

// Error implements the error interface
func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid of %d cents on auction %d is below the minimum of %d cents",
		e.AmountCents, e.AuctionID, e.MinimumCents)
}

// Is checks if the target error is an ErrBidTooLow
func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// LogFields returns a map of fields for structured logging
func (e *BidTooLowError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "bid_too_low",
		"auction_id":    e.AuctionID,
		"amount_cents":  e.AmountCents,
		"minimum_cents": e.MinimumCents,
		"error_code":    CodeBidTooLow,
	}
}

// NewBidTooLowError creates a new BidTooLowError
func NewBidTooLowError(auctionID uint64, amountCents, minimumCents int64) error {
	return &BidTooLowError{
		AuctionID:    auctionID,
		AmountCents:  amountCents,
		MinimumCents: minimumCents,
	}
}

// IsValidationError checks if the error is any date-range or request validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidCalendarDate) ||
		errors.Is(err, ErrCheckOutNotAfterCheckIn) ||
		errors.Is(err, ErrDateInPast) ||
		errors.Is(err, ErrStayTooShort) ||
		errors.Is(err, ErrStayTooLong)
}

// IsAvailabilityConflictError checks if the error is an availability conflict
func IsAvailabilityConflictError(err error) bool {
	return errors.Is(err, ErrAvailabilityConflict)
}

// IsVersionConflictError checks if the error is a stale-version conflict
func IsVersionConflictError(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrPropertyNotFound) ||
		errors.Is(err, ErrAuctionNotFound)
}

// IsPeriodLockedError checks if the error is a held period lock
func IsPeriodLockedError(err error) bool {
	return errors.Is(err, ErrPeriodLocked)
}

// IsBidTooLowError checks if the error is a rejected low bid
func IsBidTooLowError(err error) bool {
	return errors.Is(err, ErrBidTooLow)
}

// AsBidTooLowError extracts a BidTooLowError from the error chain
func AsBidTooLowError(err error, target **BidTooLowError) bool {
	return errors.As(err, target)
}

// IsAuctionNotActiveError checks if the error is a bid on an inactive auction
func IsAuctionNotActiveError(err error) bool {
	return errors.Is(err, ErrAuctionNotActive)
}

// IsInvalidStatusTransitionError checks if the error is an illegal lifecycle move
func IsInvalidStatusTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidStatusTransition)
}

// AsVersionConflictError extracts a VersionConflictError from the error chain
func AsVersionConflictError(err error, target **VersionConflictError) bool {
	return errors.As(err, target)
}

// IsRetryableError reports whether the operation may succeed when replayed
// on a fresh transaction
func IsRetryableError(err error) bool {
	return errors.Is(err, ErrTransactionConflict) || errors.Is(err, ErrDatabaseConnection)
}

// IsCacheUnavailableError checks if the error marks a degraded cache/lock store
func IsCacheUnavailableError(err error) bool {
	return errors.Is(err, ErrCacheUnavailable)
}
