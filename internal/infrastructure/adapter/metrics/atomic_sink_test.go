package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtomicSink_Snapshot(t *testing.T) {
	sink := NewAtomicSink()

	sink.IncAttempts()
	sink.IncAttempts()
	sink.IncSuccesses()
	sink.IncFailures()
	sink.IncVersionConflicts()
	sink.IncAvailabilityConflicts()
	sink.AddDuration(10 * time.Millisecond)
	sink.AddDuration(30 * time.Millisecond)

	snap := sink.Snapshot()

	assert.Equal(t, uint64(2), snap.Attempts)
	assert.Equal(t, uint64(1), snap.Successes)
	assert.Equal(t, uint64(1), snap.Failures)
	assert.Equal(t, uint64(1), snap.VersionConflicts)
	assert.Equal(t, uint64(1), snap.AvailabilityConflicts)
	assert.Equal(t, 40*time.Millisecond, snap.TotalDuration)
	assert.Equal(t, 20*time.Millisecond, snap.AverageDuration())
}

func TestAtomicSink_Reset(t *testing.T) {
	sink := NewAtomicSink()

	sink.IncAttempts()
	sink.IncFailures()
	sink.AddDuration(time.Second)
	sink.Reset()

	snap := sink.Snapshot()

	assert.Zero(t, snap.Attempts)
	assert.Zero(t, snap.Failures)
	assert.Zero(t, snap.TotalDuration)
	assert.Zero(t, snap.AverageDuration())
}

func TestAtomicSink_ConcurrentWrites(t *testing.T) {
	sink := NewAtomicSink()

	const goroutines = 16
	const perGoroutine = 1000

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				sink.IncAttempts()
				sink.IncSuccesses()
				sink.AddDuration(time.Microsecond)
			}
		}()
	}
	wg.Wait()

	snap := sink.Snapshot()

	assert.Equal(t, uint64(goroutines*perGoroutine), snap.Attempts)
	assert.Equal(t, uint64(goroutines*perGoroutine), snap.Successes)
	assert.Equal(t, time.Duration(goroutines*perGoroutine)*time.Microsecond, snap.TotalDuration)
}
