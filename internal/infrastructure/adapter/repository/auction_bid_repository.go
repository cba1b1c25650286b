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
	"gorm.io/gorm/clause"
)

// AuctionBidRepository implements AuctionBidRepository interface using GORM
type AuctionBidRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAuctionBidRepository creates a new AuctionBidRepository instance
func NewAuctionBidRepository(db *gorm.DB, logger coreport.Logger) *AuctionBidRepository {
	return &AuctionBidRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func bidModelToEntity(m *model.AuctionBid) *entity.AuctionBid {
	return &entity.AuctionBid{
		ID:             m.ID,
		AuctionID:      m.AuctionID,
		BidderID:       m.BidderID,
		AmountCents:    m.AmountCents,
		IsWinningBid:   m.IsWinningBid,
		IsAutoBid:      m.IsAutoBid,
		MaxAmountCents: m.MaxAmountCents,
		Forfeited:      m.Forfeited,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *AuctionBidRepository) handleDatabaseError(operation string, err error, auctionID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"auction_id": auctionID,
		"error":      err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransactionConflict, err.Error())
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new bid
func (r *AuctionBidRepository) Create(ctx context.Context, bid *entity.AuctionBid) error {
	m := &model.AuctionBid{
		AuctionID:      bid.AuctionID,
		BidderID:       bid.BidderID,
		AmountCents:    bid.AmountCents,
		IsWinningBid:   bid.IsWinningBid,
		IsAutoBid:      bid.IsAutoBid,
		MaxAmountCents: bid.MaxAmountCents,
		CreatedAt:      bid.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating bid", err, bid.AuctionID)
	}
	bid.ID = m.ID
	return nil
}

// ClearWinningFlags marks every bid on the auction as non-winning
func (r *AuctionBidRepository) ClearWinningFlags(ctx context.Context, auctionID uint64) error {
	err := r.db.WithContext(ctx).
		Model(&model.AuctionBid{}).
		Where("auction_id = ? AND is_winning_bid = true", auctionID).
		Update("is_winning_bid", false).Error
	if err != nil {
		return r.handleDatabaseError("clearing winning flags", err, auctionID)
	}
	return nil
}

// MarkWinning flags a single bid as the winning one
func (r *AuctionBidRepository) MarkWinning(ctx context.Context, bidID uint64) error {
	result := r.db.WithContext(ctx).
		Model(&model.AuctionBid{}).
		Where("id = ?", bidID).
		Update("is_winning_bid", true)
	if result.Error != nil {
		return r.handleDatabaseError("marking winning bid", result.Error, 0)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListByAuction retrieves bids for an auction, newest first
func (r *AuctionBidRepository) ListByAuction(ctx context.Context, auctionID uint64, limit, offset int) ([]*entity.AuctionBid, error) {
	var models []model.AuctionBid
	err := r.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing bids", err, auctionID)
	}

	bids := make([]*entity.AuctionBid, 0, len(models))
	for i := range models {
		bids = append(bids, bidModelToEntity(&models[i]))
	}
	return bids, nil
}

// HighestEligible returns the best non-forfeited bid on the auction, or nil
// when no such bid exists
func (r *AuctionBidRepository) HighestEligible(ctx context.Context, auctionID uint64) (*entity.AuctionBid, error) {
	var m model.AuctionBid
	err := r.db.WithContext(ctx).
		Where("auction_id = ? AND forfeited = false", auctionID).
		Order("amount_cents DESC, created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("finding highest eligible bid", err, auctionID)
	}
	return bidModelToEntity(&m), nil
}

// MarkBidderForfeited flags every bid the bidder placed on the auction as
// forfeited
func (r *AuctionBidRepository) MarkBidderForfeited(ctx context.Context, auctionID uint64, bidderID uint64) error {
	err := r.db.WithContext(ctx).
		Model(&model.AuctionBid{}).
		Where("auction_id = ? AND bidder_id = ?", auctionID, bidderID).
		Update("forfeited", true).Error
	if err != nil {
		return r.handleDatabaseError("marking forfeited bids", err, auctionID)
	}
	return nil
}

// AuctionParticipantRepository implements AuctionParticipantRepository using GORM
type AuctionParticipantRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAuctionParticipantRepository creates a new AuctionParticipantRepository instance
func NewAuctionParticipantRepository(db *gorm.DB, logger coreport.Logger) *AuctionParticipantRepository {
	return &AuctionParticipantRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Upsert inserts the participant row or merges it into the existing one
func (r *AuctionParticipantRepository) Upsert(ctx context.Context, participant *entity.AuctionParticipant) error {
	m := &model.AuctionParticipant{
		AuctionID:     participant.AuctionID,
		BidderID:      participant.BidderID,
		BidsCount:     participant.BidsCount,
		TotalBidCents: participant.TotalBidCents,
		FirstBidAt:    participant.FirstBidAt,
		LastBidAt:     participant.LastBidAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "auction_id"}, {Name: "bidder_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"bids_count":      gorm.Expr("auction_participants.bids_count + ?", participant.BidsCount),
			"total_bid_cents": gorm.Expr("auction_participants.total_bid_cents + ?", participant.TotalBidCents),
			"last_bid_at":     participant.LastBidAt,
		}),
	}).Create(m).Error
	if err != nil {
		return r.handleDatabaseError("upserting participant", err, participant.AuctionID)
	}

	participant.ID = m.ID
	return nil
}

// CountByAuction returns the number of distinct bidders on the auction
func (r *AuctionParticipantRepository) CountByAuction(ctx context.Context, auctionID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AuctionParticipant{}).
		Where("auction_id = ?", auctionID).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting participants", err, auctionID)
	}
	return count, nil
}

// ListByAuction retrieves every participant aggregate for the auction
func (r *AuctionParticipantRepository) ListByAuction(ctx context.Context, auctionID uint64) ([]*entity.AuctionParticipant, error) {
	var models []model.AuctionParticipant
	err := r.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("last_bid_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing participants", err, auctionID)
	}

	participants := make([]*entity.AuctionParticipant, 0, len(models))
	for i := range models {
		m := models[i]
		participants = append(participants, &entity.AuctionParticipant{
			ID:            m.ID,
			AuctionID:     m.AuctionID,
			BidderID:      m.BidderID,
			BidsCount:     m.BidsCount,
			TotalBidCents: m.TotalBidCents,
			FirstBidAt:    m.FirstBidAt,
			LastBidAt:     m.LastBidAt,
		})
	}
	return participants, nil
}

func (r *AuctionParticipantRepository) handleDatabaseError(operation string, err error, auctionID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"auction_id": auctionID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
