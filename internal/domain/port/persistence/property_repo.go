package persistence

import (
	"context"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
)

// PropertyRepository defines essential methods to interact with property data
type PropertyRepository interface {
	// GetByID retrieves a property by ID
	//
	// Possible errors:
	// - ErrPropertyNotFound: If property with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Property, error)

	// Create saves a new property
	//
	// Possible errors:
	// - ErrConstraintViolation: If property data violates a database constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, property *entity.Property) error

	// Update persists changes to an existing property
	//
	// Possible errors:
	// - ErrPropertyNotFound: If property doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, property *entity.Property) error
}
