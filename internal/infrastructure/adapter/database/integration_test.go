package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/logger"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/repository"
)

// Exercises the reservation repository against a real Postgres. Skipped
// unless TEST_DB_INTEGRATION is set; connection details come from the
// TEST_DB_* variables.
func TestReservationRepositoryIntegration(t *testing.T) {
	if os.Getenv("TEST_DB_INTEGRATION") == "" {
		t.Skip("set TEST_DB_INTEGRATION=1 to run database-backed tests")
	}

	log := logger.NewNoopLogger()
	mgr := NewTestDBManager(t, log)
	require.NoError(t, mgr.Connect(t))
	defer mgr.Close(t)

	mgr.SetupTestDB(t)
	mgr.CreateTestProperty(t, 1, 10, 12000)

	ctx := context.Background()
	repo := repository.NewReservationRepository(mgr.Manager.DB(), mgr.TimeProvider, log)

	rng, err := entity.ValidateDateRange("2027-03-01", "2027-03-04", entity.DateRangeOptions{})
	require.NoError(t, err)

	now := time.Now().UTC()
	stored := &entity.Reservation{
		BookingNumber: "RSV2027030100010001",
		PropertyID:    1,
		CustomerID:    7,
		Range:         *rng,
		GuestsCount:   2,
		Pricing:       entity.ComputePricing(rng.Nights(), 12000, 0),
		Status:        entity.ReservationPending,
		PaymentStatus: entity.PaymentPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Create(ctx, stored))
	require.NotZero(t, stored.ID)

	t.Run("Overlapping range is reported as a conflict", func(t *testing.T) {
		overlap, rErr := entity.ValidateDateRange("2027-03-03", "2027-03-06", entity.DateRangeOptions{})
		require.NoError(t, rErr)

		conflicts, cErr := repo.FindConflicts(ctx, 1, *overlap, 0)
		require.NoError(t, cErr)
		require.Len(t, conflicts, 1)
		assert.Equal(t, stored.ID, conflicts[0].ID)
	})

	t.Run("Back-to-back range is free", func(t *testing.T) {
		adjacent, rErr := entity.ValidateDateRange("2027-03-04", "2027-03-07", entity.DateRangeOptions{})
		require.NoError(t, rErr)

		conflicts, cErr := repo.FindConflicts(ctx, 1, *adjacent, 0)
		require.NoError(t, cErr)
		assert.Empty(t, conflicts)
	})

	t.Run("Stale version read returns the current version", func(t *testing.T) {
		_, vErr := repo.GetByIDForUpdateWithVersion(ctx, stored.ID, stored.Version+10)
		var conflict *errs.VersionConflictError
		require.True(t, errs.AsVersionConflictError(vErr, &conflict))
		assert.Equal(t, stored.Version, conflict.CurrentVersion)
	})

	t.Run("Truncate leaves the schema usable", func(t *testing.T) {
		mgr.TruncateAllTables(t)

		conflicts, cErr := repo.FindConflicts(ctx, 1, *rng, 0)
		require.NoError(t, cErr)
		assert.Empty(t, conflicts)
	})
}
