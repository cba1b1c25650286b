package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationRepository implements ReservationRepository interface using GORM
type ReservationRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReservationRepository creates a new ReservationRepository instance
func NewReservationRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a reservation model to an entity
func (r *ReservationRepository) modelToEntity(m *model.Reservation) (*entity.Reservation, error) {
	var metadata map[string]any
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &metadata); err != nil {
			r.logger.Warn("Reservation metadata is not valid JSON, ignoring it", map[string]any{
				"reservation_id": m.ID,
			})
		}
	}

	return &entity.Reservation{
		ID:            m.ID,
		BookingNumber: m.BookingNumber,
		PropertyID:    m.PropertyID,
		CustomerID:    m.CustomerID,
		Range: entity.DateRange{
			CheckIn:  m.CheckIn,
			CheckOut: m.CheckOut,
		},
		GuestsCount: m.GuestsCount,
		Pricing: entity.PricingBreakdown{
			BaseCents:     m.BaseCents,
			CleaningCents: m.CleaningCents,
			ServiceCents:  m.ServiceCents,
			TotalCents:    m.TotalCents,
		},
		Status:             entity.ReservationStatus(m.Status),
		PaymentStatus:      entity.PaymentStatus(m.PaymentStatus),
		Version:            m.Version,
		SpecialRequests:    m.SpecialRequests,
		Metadata:           metadata,
		ConfirmedAt:        m.ConfirmedAt,
		CancelledAt:        m.CancelledAt,
		CancellationReason: m.CancellationReason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

// entityToModel converts a reservation entity to a model
func (r *ReservationRepository) entityToModel(res *entity.Reservation) (*model.Reservation, error) {
	metadata := "{}"
	if res.Metadata != nil {
		encoded, err := json.Marshal(res.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode reservation metadata: %s", errs.ErrInternalServer, err.Error())
		}
		metadata = string(encoded)
	}

	return &model.Reservation{
		ID:                 res.ID,
		BookingNumber:      res.BookingNumber,
		PropertyID:         res.PropertyID,
		CustomerID:         res.CustomerID,
		CheckIn:            res.Range.CheckIn,
		CheckOut:           res.Range.CheckOut,
		GuestsCount:        res.GuestsCount,
		BaseCents:          res.Pricing.BaseCents,
		CleaningCents:      res.Pricing.CleaningCents,
		ServiceCents:       res.Pricing.ServiceCents,
		TotalCents:         res.Pricing.TotalCents,
		Status:             string(res.Status),
		PaymentStatus:      string(res.PaymentStatus),
		Version:            res.Version,
		SpecialRequests:    res.SpecialRequests,
		Metadata:           metadata,
		ConfirmedAt:        res.ConfirmedAt,
		CancelledAt:        res.CancelledAt,
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *ReservationRepository) handleDatabaseError(operation string, err error, reservationID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"reservation_id": reservationID,
		"error":          err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Reservation not found", map[string]any{
			"reservation_id": reservationID,
		})
		return errs.ErrReservationNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransactionConflict, err.Error())
	}

	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id uint64) (*entity.Reservation, error) {
	var m model.Reservation
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting reservation", result.Error, id)
	}
	return r.modelToEntity(&m)
}

// GetByIDForUpdateWithVersion retrieves a reservation by ID and version with
// a row lock. When the version no longer matches, the row is re-read without
// the version filter so the caller learns the current one.
func (r *ReservationRepository) GetByIDForUpdateWithVersion(ctx context.Context, id uint64, expectedVersion uint64) (*entity.Reservation, error) {
	var m model.Reservation
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND version = ?", id, expectedVersion).
		First(&m)
	if result.Error == nil {
		return r.modelToEntity(&m)
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, r.handleDatabaseError("locking reservation by version", result.Error, id)
	}

	// Distinguish a missing row from a stale version
	var current model.Reservation
	reread := r.db.WithContext(ctx).First(&current, id)
	if reread.Error != nil {
		return nil, r.handleDatabaseError("re-reading reservation", reread.Error, id)
	}

	r.logger.Warn("Reservation version mismatch", map[string]any{
		"reservation_id":   id,
		"expected_version": expectedVersion,
		"current_version":  current.Version,
	})
	return nil, errs.NewVersionConflictError(id, expectedVersion, current.Version)
}

// FindConflictsForUpdate returns the blocking overlapping reservations with
// the matched rows locked FOR UPDATE
func (r *ReservationRepository) FindConflictsForUpdate(ctx context.Context, propertyID uint64, rng entity.DateRange, excludeID uint64) ([]*entity.Reservation, error) {
	return r.findConflicts(ctx, propertyID, rng, excludeID, true)
}

// FindConflicts returns the blocking overlapping reservations without locking
func (r *ReservationRepository) FindConflicts(ctx context.Context, propertyID uint64, rng entity.DateRange, excludeID uint64) ([]*entity.Reservation, error) {
	return r.findConflicts(ctx, propertyID, rng, excludeID, false)
}

func (r *ReservationRepository) findConflicts(ctx context.Context, propertyID uint64, rng entity.DateRange, excludeID uint64, lock bool) ([]*entity.Reservation, error) {
	statuses := make([]string, 0, len(entity.BlockingStatuses))
	for _, s := range entity.BlockingStatuses {
		statuses = append(statuses, string(s))
	}

	// Half-open ranges overlap when each starts before the other ends
	query := r.db.WithContext(ctx).
		Where("property_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
			propertyID, statuses, rng.CheckOut, rng.CheckIn)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var models []model.Reservation
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("finding conflicting reservations", err, 0)
	}

	reservations := make([]*entity.Reservation, 0, len(models))
	for i := range models {
		res, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// Create saves a new reservation
func (r *ReservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	m, err := r.entityToModel(reservation)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating reservation", err, 0)
	}

	reservation.ID = m.ID
	r.logger.Debug("Reservation created", map[string]any{
		"reservation_id": m.ID,
		"booking_number": m.BookingNumber,
		"property_id":    m.PropertyID,
	})
	return nil
}

// Update persists changes to an existing reservation
func (r *ReservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	m, err := r.entityToModel(reservation)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return r.handleDatabaseError("updating reservation", result.Error, reservation.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrReservationNotFound
	}
	return nil
}

// ListByCustomer retrieves reservations belonging to a customer, newest first
func (r *ReservationRepository) ListByCustomer(ctx context.Context, customerID uint64, limit, offset int) ([]*entity.Reservation, error) {
	var models []model.Reservation
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing reservations", err, 0)
	}

	reservations := make([]*entity.Reservation, 0, len(models))
	for i := range models {
		res, convErr := r.modelToEntity(&models[i])
		if convErr != nil {
			return nil, convErr
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}
