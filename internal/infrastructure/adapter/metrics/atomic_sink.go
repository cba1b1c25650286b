package metrics

import (
	"sync/atomic"
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/port/core"
)

// AtomicSink implements BookingMetrics with lock-free counters. Snapshot
// reads the counters individually, so a snapshot taken during a burst of
// writes may be torn across counters; that is acceptable for telemetry.
type AtomicSink struct {
	attempts              atomic.Uint64
	successes             atomic.Uint64
	failures              atomic.Uint64
	versionConflicts      atomic.Uint64
	availabilityConflicts atomic.Uint64
	totalDurationNanos    atomic.Int64
}

// NewAtomicSink creates a zeroed metrics sink
func NewAtomicSink() *AtomicSink {
	return &AtomicSink{}
}

func (s *AtomicSink) IncAttempts()              { s.attempts.Add(1) }
func (s *AtomicSink) IncSuccesses()             { s.successes.Add(1) }
func (s *AtomicSink) IncFailures()              { s.failures.Add(1) }
func (s *AtomicSink) IncVersionConflicts()      { s.versionConflicts.Add(1) }
func (s *AtomicSink) IncAvailabilityConflicts() { s.availabilityConflicts.Add(1) }

func (s *AtomicSink) AddDuration(d time.Duration) {
	s.totalDurationNanos.Add(int64(d))
}

// Snapshot returns the current counter values
func (s *AtomicSink) Snapshot() core.BookingMetricsSnapshot {
	return core.BookingMetricsSnapshot{
		Attempts:              s.attempts.Load(),
		Successes:             s.successes.Load(),
		Failures:              s.failures.Load(),
		VersionConflicts:      s.versionConflicts.Load(),
		AvailabilityConflicts: s.availabilityConflicts.Load(),
		TotalDuration:         time.Duration(s.totalDurationNanos.Load()),
	}
}

// Reset zeroes all counters
func (s *AtomicSink) Reset() {
	s.attempts.Store(0)
	s.successes.Store(0)
	s.failures.Store(0)
	s.versionConflicts.Store(0)
	s.availabilityConflicts.Store(0)
	s.totalDurationNanos.Store(0)
}

var _ core.BookingMetrics = (*AtomicSink)(nil)
