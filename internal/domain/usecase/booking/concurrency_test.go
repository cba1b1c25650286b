package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockpersistence "github.com/rsvtravel/booking-engine/mocks/port/persistence"
)

// memoryStore is an in-memory KeyValueStore used for concurrency tests,
// where mock call ordering cannot express racing writers.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]memoryEntry{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *memoryStore) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) SetIfAbsentWithTTL(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[key]; ok && time.Now().Before(entry.expiresAt) {
		return false, nil
	}
	s.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return true, nil
}

func (s *memoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *memoryStore) DeletePattern(_ context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *memoryStore) Ping(context.Context) error { return nil }

func TestPeriodLockConcurrentAcquire(t *testing.T) {
	ctx := context.Background()
	rng := oracleRange(t)
	lock := NewPeriodLock(newMemoryStore(), quietLogger(t), 30*time.Second)

	const attempts = 16
	var wg sync.WaitGroup
	granted := make(chan string, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			attemptID := fmt.Sprintf("attempt-%d", n)
			result, err := lock.Acquire(ctx, 42, rng, attemptID)
			assert.NoError(t, err)
			if result.Granted {
				assert.False(t, result.Degraded)
				granted <- attemptID
			}
		}(i)
	}
	wg.Wait()
	close(granted)

	var winners []string
	for id := range granted {
		winners = append(winners, id)
	}
	require.Len(t, winners, 1)

	// The winner's release hands the slot to the next acquirer
	lock.Release(ctx, 42, rng, winners[0])
	result, err := lock.Acquire(ctx, 42, rng, "late-attempt")
	require.NoError(t, err)
	assert.True(t, result.Granted)
}

func TestPeriodLockExpiresByTTL(t *testing.T) {
	ctx := context.Background()
	rng := oracleRange(t)
	lock := NewPeriodLock(newMemoryStore(), quietLogger(t), 20*time.Millisecond)

	first, err := lock.Acquire(ctx, 42, rng, "first")
	require.NoError(t, err)
	require.True(t, first.Granted)

	time.Sleep(30 * time.Millisecond)

	second, err := lock.Acquire(ctx, 42, rng, "second")
	require.NoError(t, err)
	assert.True(t, second.Granted)
}

func TestAvailabilityOracleConcurrentChecks(t *testing.T) {
	ctx := context.Background()
	rng := oracleRange(t)
	store := newMemoryStore()

	mockRepo := mockpersistence.NewMockReservationRepository(t)
	// Uncached goroutines may race past the cache before the first write
	// lands, so the repository sees at least one call but possibly more.
	mockRepo.EXPECT().FindConflicts(mock.Anything, uint64(42), rng, uint64(0)).
		Return(nil, nil)

	oracle := NewAvailabilityOracle(store, mockRepo, quietLogger(t), 5*time.Minute)

	const checks = 8
	var wg sync.WaitGroup
	for i := 0; i < checks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := oracle.Check(ctx, 42, rng)
			assert.NoError(t, err)
			assert.True(t, result.Available)
		}()
	}
	wg.Wait()

	// A follow-up check is served from the cache
	cached, err := oracle.Check(ctx, 42, rng)
	require.NoError(t, err)
	assert.True(t, cached.FromCache)
}
