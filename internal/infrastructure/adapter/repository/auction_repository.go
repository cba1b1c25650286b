package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuctionRepository implements AuctionRepository interface using GORM
type AuctionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAuctionRepository creates a new AuctionRepository instance
func NewAuctionRepository(db *gorm.DB, logger coreport.Logger) *AuctionRepository {
	return &AuctionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *AuctionRepository) modelToEntity(m *model.Auction) *entity.Auction {
	return &entity.Auction{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		HostID:     m.HostID,
		Range: entity.DateRange{
			CheckIn:  m.CheckIn,
			CheckOut: m.CheckOut,
		},
		StartPriceCents:   m.StartPriceCents,
		CurrentBidCents:   m.CurrentBidCents,
		MinIncrementCents: m.MinIncrementCents,
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		ExtendedTime:      m.ExtendedTime,
		Status:            entity.AuctionStatus(m.Status),
		WinnerID:          m.WinnerID,
		BidsCount:         m.BidsCount,
		ParticipantsCount: m.ParticipantsCount,
		PaymentCompleted:  m.PaymentCompleted,
		PaymentDeadline:   m.PaymentDeadline,
		MaxGuests:         m.MaxGuests,
		Description:       m.Description,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *AuctionRepository) entityToModel(a *entity.Auction) *model.Auction {
	return &model.Auction{
		ID:                a.ID,
		PropertyID:        a.PropertyID,
		HostID:            a.HostID,
		CheckIn:           a.Range.CheckIn,
		CheckOut:          a.Range.CheckOut,
		StartPriceCents:   a.StartPriceCents,
		CurrentBidCents:   a.CurrentBidCents,
		MinIncrementCents: a.MinIncrementCents,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		ExtendedTime:      a.ExtendedTime,
		Status:            string(a.Status),
		WinnerID:          a.WinnerID,
		BidsCount:         a.BidsCount,
		ParticipantsCount: a.ParticipantsCount,
		PaymentCompleted:  a.PaymentCompleted,
		PaymentDeadline:   a.PaymentDeadline,
		MaxGuests:         a.MaxGuests,
		Description:       a.Description,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (r *AuctionRepository) handleDatabaseError(operation string, err error, auctionID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"auction_id": auctionID,
		"error":      err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAuctionNotFound
	}
	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransactionConflict, err.Error())
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an auction by ID
func (r *AuctionRepository) GetByID(ctx context.Context, id uint64) (*entity.Auction, error) {
	var m model.Auction
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting auction", result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// GetByIDForUpdate retrieves an auction by ID with a row lock
func (r *AuctionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Auction, error) {
	var m model.Auction
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking auction", result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// Create saves a new auction
func (r *AuctionRepository) Create(ctx context.Context, auction *entity.Auction) error {
	m := r.entityToModel(auction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating auction", err, 0)
	}
	auction.ID = m.ID
	return nil
}

// Update persists changes to an existing auction
func (r *AuctionRepository) Update(ctx context.Context, auction *entity.Auction) error {
	result := r.db.WithContext(ctx).Save(r.entityToModel(auction))
	if result.Error != nil {
		return r.handleDatabaseError("updating auction", result.Error, auction.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAuctionNotFound
	}
	return nil
}

// ListDueToStart returns scheduled auctions whose start time has passed
func (r *AuctionRepository) ListDueToStart(ctx context.Context, now time.Time) ([]*entity.Auction, error) {
	return r.list(ctx, "status = ? AND start_time <= ?", string(entity.AuctionStatusScheduled), now)
}

// ListDueToEnd returns active auctions whose effective end time has passed
func (r *AuctionRepository) ListDueToEnd(ctx context.Context, now time.Time) ([]*entity.Auction, error) {
	return r.list(ctx, "status = ? AND COALESCE(extended_time, end_time) <= ?", string(entity.AuctionStatusActive), now)
}

// ListPaymentOverdue returns ended auctions whose winner missed the payment deadline
func (r *AuctionRepository) ListPaymentOverdue(ctx context.Context, now time.Time) ([]*entity.Auction, error) {
	return r.list(ctx,
		"status = ? AND winner_id IS NOT NULL AND payment_completed = false AND payment_deadline <= ?",
		string(entity.AuctionStatusEnded), now)
}

func (r *AuctionRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Auction, error) {
	var models []model.Auction
	if err := r.db.WithContext(ctx).Where(query, args...).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing auctions", err, 0)
	}

	auctions := make([]*entity.Auction, 0, len(models))
	for i := range models {
		auctions = append(auctions, r.modelToEntity(&models[i]))
	}
	return auctions, nil
}
