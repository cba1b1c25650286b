package entity

import (
	"fmt"
	"time"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// DateRangeOptions configures the calendar rules applied by ValidateDateRange
type DateRangeOptions struct {
	// AllowPast permits ranges starting before Reference
	AllowPast bool
	// MinStayNights is the minimum number of nights; 0 means no minimum
	MinStayNights int
	// MaxStayNights is the maximum number of nights; 0 means no maximum
	MaxStayNights int
	// Reference is "today" for the past-date rule; zero value disables the rule
	Reference time.Time
}

// DateRange is a validated, normalized half-open interval [CheckIn, CheckOut).
// The end date is excluded, so adjacent stays do not overlap.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ValidateDateRange validates two date strings against calendar semantics and
// returns the normalized pair. It is pure: no I/O, no shared state. All typed
// failures name the field and rule that was violated.
func ValidateDateRange(checkIn, checkOut string, opts DateRangeOptions) (*DateRange, error) {
	in, err := parseDate("check_in", checkIn)
	if err != nil {
		return nil, err
	}

	out, err := parseDate("check_out", checkOut)
	if err != nil {
		return nil, err
	}

	if !out.After(in) {
		return nil, errs.NewValidationError("check_out", "after_check_in", errs.ErrCheckOutNotAfterCheckIn)
	}

	if !opts.AllowPast && !opts.Reference.IsZero() {
		today := truncateToDay(opts.Reference)
		if in.Before(today) {
			return nil, errs.NewValidationError("check_in", "not_in_past", errs.ErrDateInPast)
		}
	}

	r := &DateRange{CheckIn: in, CheckOut: out}

	if opts.MinStayNights > 0 && r.Nights() < opts.MinStayNights {
		return nil, errs.NewValidationError("check_out", "min_stay",
			fmt.Errorf("%w: %d nights required", errs.ErrStayTooShort, opts.MinStayNights))
	}
	if opts.MaxStayNights > 0 && r.Nights() > opts.MaxStayNights {
		return nil, errs.NewValidationError("check_out", "max_stay",
			fmt.Errorf("%w: %d nights allowed", errs.ErrStayTooLong, opts.MaxStayNights))
	}

	return r, nil
}

// Nights returns the number of nights covered by the range
func (r *DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
// Touching endpoints do not overlap.
func (r *DateRange) Overlaps(other *DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Contains reports whether the given date falls inside the range
func (r *DateRange) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

// CheckInString returns the check-in date in wire format
func (r *DateRange) CheckInString() string {
	return r.CheckIn.Format(DateLayout)
}

// CheckOutString returns the check-out date in wire format
func (r *DateRange) CheckOutString() string {
	return r.CheckOut.Format(DateLayout)
}

// String formats the range for logs and cache keys
func (r *DateRange) String() string {
	return r.CheckInString() + ":" + r.CheckOutString()
}

// parseDate parses a wire-format date and rejects both malformed strings and
// dates that do not exist in the calendar
func parseDate(field, value string) (time.Time, error) {
	if len(value) != len(DateLayout) {
		return time.Time{}, errs.NewValidationError(field, "format", errs.ErrInvalidDateFormat)
	}

	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errs.NewValidationError(field, "format",
			fmt.Errorf("%w: %q", errs.ErrInvalidDateFormat, value))
	}

	if t.Format(DateLayout) != value {
		return time.Time{}, errs.NewValidationError(field, "calendar",
			fmt.Errorf("%w: %q", errs.ErrInvalidCalendarDate, value))
	}

	return t, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
