package migration

import (
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Composite index backing the overlap query; check_in/check_out keep
	// the range scan off the heap
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_property_dates
		ON reservations (property_id, check_in, check_out)
	`).Error; err != nil {
		m.logger.Error("Failed to create property date composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index covering only the rows that block availability
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_blocking
		ON reservations (property_id, check_in, check_out)
		WHERE status IN ('pending', 'confirmed', 'in_progress')
	`).Error; err != nil {
		m.logger.Error("Failed to create blocking reservations partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Version lookups for optimistic updates hit id + version directly
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_id_version
		ON reservations (id, version)
	`).Error; err != nil {
		m.logger.Error("Failed to create id_version index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Highest-bid lookups order by amount within an auction
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_auction_bids_auction_amount
		ON auction_bids (auction_id, amount_cents DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create bid amount composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// One aggregate row per (auction, bidder)
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_participants_auction_bidder
		ON auction_participants (auction_id, bidder_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create participant unique index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Sweeper scans by status and deadline
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_auctions_status_times
		ON auctions (status, start_time, end_time)
	`).Error; err != nil {
		m.logger.Error("Failed to create auction status composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_created_at_brin
		ON reservations USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Set fillfactor for the reservation table, its rows update in place
	// on every version bump
	if err := m.db.Exec(`
		ALTER TABLE reservations SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for reservations table", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	// Set statistics target for better query planning
	if err := m.db.Exec(`
		ALTER TABLE reservations ALTER COLUMN property_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for property_id", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
