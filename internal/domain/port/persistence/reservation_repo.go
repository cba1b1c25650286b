package persistence

import (
	"context"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
)

// ReservationRepository defines essential methods to interact with reservation data
type ReservationRepository interface {
	// GetByID retrieves a reservation by ID
	//
	// Possible errors:
	// - ErrReservationNotFound: If reservation with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Reservation, error)

	// Create saves a new reservation
	// Must be called inside a transaction after FindConflictsForUpdate
	// locked the overlapping rows
	//
	// Possible errors:
	// - ErrConstraintViolation: If reservation data violates a database constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, reservation *entity.Reservation) error

	// Update persists changes to an existing reservation
	//
	// Possible errors:
	// - ErrReservationNotFound: If reservation doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, reservation *entity.Reservation) error

	// GetByIDForUpdateWithVersion loads a reservation row with a FOR UPDATE
	// lock, but only if it still carries the expected version. Returns
	// ErrVersionConflict when the row exists at a different version.
	//
	// Possible errors:
	// - ErrReservationNotFound: If reservation with specified ID doesn't exist
	// - ErrVersionConflict: If the stored version differs from expectedVersion
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdateWithVersion(ctx context.Context, id uint64, expectedVersion uint64) (*entity.Reservation, error)

	// FindConflictsForUpdate returns the blocking reservations for a property
	// whose ranges overlap the candidate range, locking the matched rows with
	// FOR UPDATE. excludeID skips one reservation (0 means exclude none).
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindConflictsForUpdate(ctx context.Context, propertyID uint64, rng entity.DateRange, excludeID uint64) ([]*entity.Reservation, error)

	// FindConflicts is the lock-free variant used for availability reads
	// outside a transaction
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindConflicts(ctx context.Context, propertyID uint64, rng entity.DateRange, excludeID uint64) ([]*entity.Reservation, error)

	// ListByCustomer retrieves reservations belonging to a customer,
	// newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByCustomer(ctx context.Context, customerID uint64, limit, offset int) ([]*entity.Reservation, error)
}
