package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	cacheport "github.com/rsvtravel/booking-engine/internal/domain/port/cache"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"github.com/rsvtravel/booking-engine/internal/domain/port/persistence"
)

// AvailabilityResult is the answer to an availability question
type AvailabilityResult struct {
	Available        bool     `json:"available"`
	ConflictingCount int      `json:"conflicting_count"`
	ConflictingIDs   []uint64 `json:"conflicting_ids,omitempty"`
	FromCache        bool     `json:"-"`
}

// AvailabilityOracle answers whether a property is free for a date range.
// The relational store is authoritative; the cache is a fast path that is
// never trusted on failure and never used to report availability it cannot
// prove.
type AvailabilityOracle struct {
	store        cacheport.KeyValueStore
	reservations persistence.ReservationRepository
	logger       coreport.Logger
	cacheTTL     time.Duration
}

// NewAvailabilityOracle creates a new AvailabilityOracle
func NewAvailabilityOracle(
	store cacheport.KeyValueStore,
	reservations persistence.ReservationRepository,
	logger coreport.Logger,
	cacheTTL time.Duration,
) *AvailabilityOracle {
	return &AvailabilityOracle{
		store:        store,
		reservations: reservations,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// Check reports whether the property is free for the range. A degraded cache
// falls through to the authoritative query and never fails the call.
func (o *AvailabilityOracle) Check(ctx context.Context, propertyID uint64, rng entity.DateRange) (*AvailabilityResult, error) {
	key := availabilityKey(propertyID, rng)

	raw, found, err := o.store.Get(ctx, key)
	if err != nil {
		o.logger.Warn("Availability cache read failed, falling back to database", map[string]any{
			"property_id": propertyID,
			"cache_key":   key,
			"error":       err.Error(),
		})
	} else if found {
		var cached AvailabilityResult
		if unmarshalErr := json.Unmarshal([]byte(raw), &cached); unmarshalErr == nil {
			cached.FromCache = true
			return &cached, nil
		}
		o.logger.Warn("Availability cache entry is corrupt, dropping it", map[string]any{
			"property_id": propertyID,
			"cache_key":   key,
		})
		if delErr := o.store.Delete(ctx, key); delErr != nil {
			o.logger.Warn("Failed to drop corrupt cache entry", map[string]any{
				"cache_key": key,
				"error":     delErr.Error(),
			})
		}
	}

	conflicts, err := o.reservations.FindConflicts(ctx, propertyID, rng, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting reservations: %w", err)
	}

	result := &AvailabilityResult{
		Available:        len(conflicts) == 0,
		ConflictingCount: len(conflicts),
	}
	for _, c := range conflicts {
		result.ConflictingIDs = append(result.ConflictingIDs, c.ID)
	}

	o.cache(ctx, key, result)
	return result, nil
}

// Invalidate removes every cached availability answer for the property
func (o *AvailabilityOracle) Invalidate(ctx context.Context, propertyID uint64) {
	pattern := fmt.Sprintf("availability:%d:*", propertyID)
	if err := o.store.DeletePattern(ctx, pattern); err != nil {
		o.logger.Warn("Failed to invalidate availability cache", map[string]any{
			"property_id": propertyID,
			"pattern":     pattern,
			"error":       err.Error(),
		})
	}
}

func (o *AvailabilityOracle) cache(ctx context.Context, key string, result *AvailabilityResult) {
	encoded, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := o.store.SetWithTTL(ctx, key, string(encoded), o.cacheTTL); err != nil {
		o.logger.Warn("Failed to cache availability result", map[string]any{
			"cache_key": key,
			"error":     err.Error(),
		})
	}
}

func availabilityKey(propertyID uint64, rng entity.DateRange) string {
	return fmt.Sprintf("availability:%d:%s:%s", propertyID, rng.CheckInString(), rng.CheckOutString())
}
