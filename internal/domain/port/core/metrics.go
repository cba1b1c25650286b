package core

import "time"

// BookingMetricsSnapshot is a read-only view of the transaction telemetry
type BookingMetricsSnapshot struct {
	Attempts              uint64
	Successes             uint64
	Failures              uint64
	TotalDuration         time.Duration
	VersionConflicts      uint64
	AvailabilityConflicts uint64
}

// SuccessRate returns the fraction of attempts that succeeded
func (s BookingMetricsSnapshot) SuccessRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Attempts)
}

// AverageDuration returns the mean latency per attempt
func (s BookingMetricsSnapshot) AverageDuration() time.Duration {
	if s.Attempts == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Attempts)
}

// BookingMetrics is the telemetry sink for the booking transaction manager.
// Implementations must be safe for concurrent use; counters are process-wide,
// used for operational visibility only, never for correctness.
type BookingMetrics interface {
	// IncAttempts records the start of a create/update sequence
	IncAttempts()
	// IncSuccesses records a committed transaction
	IncSuccesses()
	// IncFailures records a terminally failed sequence
	IncFailures()
	// IncVersionConflicts records a stale-version rejection
	IncVersionConflicts()
	// IncAvailabilityConflicts records an overlap conflict
	IncAvailabilityConflicts()
	// AddDuration accumulates end-to-end latency
	AddDuration(d time.Duration)
	// Snapshot returns the current counter values
	Snapshot() BookingMetricsSnapshot
	// Reset zeroes all counters
	Reset()
}
