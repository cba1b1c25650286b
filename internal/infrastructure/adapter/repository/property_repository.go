package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PropertyRepository implements PropertyRepository interface using GORM
type PropertyRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPropertyRepository creates a new PropertyRepository instance
func NewPropertyRepository(db *gorm.DB, logger coreport.Logger) *PropertyRepository {
	return &PropertyRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PropertyRepository) modelToEntity(m *model.Property) *entity.Property {
	return &entity.Property{
		ID:               m.ID,
		HostID:           m.HostID,
		Title:            m.Title,
		NightlyRateCents: m.NightlyRateCents,
		CleaningFeeCents: m.CleaningFeeCents,
		MaxGuests:        m.MaxGuests,
		Status:           entity.PropertyStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *PropertyRepository) entityToModel(p *entity.Property) *model.Property {
	return &model.Property{
		ID:               p.ID,
		HostID:           p.HostID,
		Title:            p.Title,
		NightlyRateCents: p.NightlyRateCents,
		CleaningFeeCents: p.CleaningFeeCents,
		MaxGuests:        p.MaxGuests,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (r *PropertyRepository) handleDatabaseError(operation string, err error, propertyID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"property_id": propertyID,
		"error":       err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPropertyNotFound
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uint64) (*entity.Property, error) {
	var m model.Property
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting property", result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// Create saves a new property
func (r *PropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	m := r.entityToModel(property)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating property", err, 0)
	}
	property.ID = m.ID
	return nil
}

// Update persists changes to an existing property
func (r *PropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	result := r.db.WithContext(ctx).Save(r.entityToModel(property))
	if result.Error != nil {
		return r.handleDatabaseError("updating property", result.Error, property.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPropertyNotFound
	}
	return nil
}
