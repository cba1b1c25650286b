package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	cacheport "github.com/rsvtravel/booking-engine/internal/domain/port/cache"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
)

// LockResult describes the outcome of a lock acquisition attempt
type LockResult struct {
	Granted  bool
	HolderID string
	// Degraded marks a grant issued while the lock store was unreachable.
	// The row-level locks inside the transaction remain the correctness
	// barrier, so a degraded store widens the advisory gate instead of
	// closing it.
	Degraded bool
}

// PeriodLock is a short-lived advisory lock over (property, range) that
// keeps concurrent booking attempts from doing redundant transactional work
type PeriodLock struct {
	store  cacheport.KeyValueStore
	logger coreport.Logger
	ttl    time.Duration
}

// NewPeriodLock creates a new PeriodLock
func NewPeriodLock(store cacheport.KeyValueStore, logger coreport.Logger, ttl time.Duration) *PeriodLock {
	return &PeriodLock{
		store:  store,
		logger: logger,
		ttl:    ttl,
	}
}

// Acquire attempts to take the lock for attemptID. When the store is
// unreachable the lock fails open.
func (l *PeriodLock) Acquire(ctx context.Context, propertyID uint64, rng entity.DateRange, attemptID string) (*LockResult, error) {
	key := lockKey(propertyID, rng)

	acquired, err := l.store.SetIfAbsentWithTTL(ctx, key, attemptID, l.ttl)
	if err != nil {
		l.logger.Warn("Lock store unreachable, proceeding without advisory lock", map[string]any{
			"property_id": propertyID,
			"lock_key":    key,
			"error":       err.Error(),
		})
		return &LockResult{Granted: true, HolderID: attemptID, Degraded: true}, nil
	}
	if acquired {
		return &LockResult{Granted: true, HolderID: attemptID}, nil
	}

	holder, _, peekErr := l.store.Get(ctx, key)
	if peekErr != nil {
		holder = ""
	}
	return &LockResult{Granted: false, HolderID: holder}, nil
}

// Release frees the lock if attemptID still holds it. A lock that expired
// or changed hands is left alone.
func (l *PeriodLock) Release(ctx context.Context, propertyID uint64, rng entity.DateRange, attemptID string) {
	key := lockKey(propertyID, rng)

	holder, found, err := l.store.Get(ctx, key)
	if err != nil {
		l.logger.Warn("Failed to read lock before release", map[string]any{
			"lock_key": key,
			"error":    err.Error(),
		})
		return
	}
	if !found || holder != attemptID {
		return
	}
	if err := l.store.Delete(ctx, key); err != nil {
		l.logger.Warn("Failed to release period lock, it will expire by TTL", map[string]any{
			"lock_key": key,
			"error":    err.Error(),
		})
	}
}

// Peek reports the current holder of the lock, if any
func (l *PeriodLock) Peek(ctx context.Context, propertyID uint64, rng entity.DateRange) (string, bool, error) {
	holder, found, err := l.store.Get(ctx, lockKey(propertyID, rng))
	if err != nil {
		return "", false, err
	}
	return holder, found, nil
}

func lockKey(propertyID uint64, rng entity.DateRange) string {
	return fmt.Sprintf("booking_lock:%d:%s:%s", propertyID, rng.CheckInString(), rng.CheckOutString())
}
