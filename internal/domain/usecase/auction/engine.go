package auction

import (
	"context"
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
	"github.com/rsvtravel/booking-engine/internal/domain/port/persistence"
)

// Engine runs the auction lifecycle and bid placement
type Engine struct {
	uow          persistence.UnitOfWork
	dispatcher   notifport.Dispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	paymentWindow time.Duration
	extendWindow  time.Duration
}

// NewEngine creates a new auction engine
func NewEngine(
	uow persistence.UnitOfWork,
	dispatcher notifport.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	paymentWindow time.Duration,
	extendWindow time.Duration,
) *Engine {
	if paymentWindow <= 0 {
		paymentWindow = DefaultPaymentWindow
	}
	return &Engine{
		uow:           uow,
		dispatcher:    dispatcher,
		timeProvider:  timeProvider,
		logger:        logger,
		paymentWindow: paymentWindow,
		extendWindow:  extendWindow,
	}
}

// DefaultPaymentWindow is how long a winner has to pay after the auction ends
const DefaultPaymentWindow = 24 * time.Hour

// CreateAuctionRequest represents a request to create an auction
type CreateAuctionRequest struct {
	PropertyID        uint64
	HostID            uint64
	CheckIn           string
	CheckOut          string
	StartPriceCents   int64
	MinIncrementCents int64
	StartTime         time.Time
	EndTime           time.Time
	MaxGuests         int
	Description       string
}

// Create registers a new auction for a property stay
func (e *Engine) Create(ctx context.Context, req CreateAuctionRequest) (*entity.Auction, error) {
	if req.PropertyID == 0 {
		return nil, errs.NewValidationError("property_id", "positive", errs.ErrInvalidPropertyID)
	}
	if req.HostID == 0 {
		return nil, errs.NewValidationError("host_id", "positive", errs.ErrInvalidCustomerID)
	}
	if req.StartPriceCents <= 0 {
		return nil, errs.NewValidationError("start_price", "positive", errs.ErrNegativeAmount)
	}
	if req.MinIncrementCents <= 0 {
		return nil, errs.NewValidationError("min_increment", "positive", errs.ErrNegativeAmount)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, errs.NewValidationError("end_time", "after_start_time", errs.ErrInvalidRequest)
	}

	now := e.timeProvider.Now()
	rng, err := entity.ValidateDateRange(req.CheckIn, req.CheckOut, entity.DateRangeOptions{Reference: now})
	if err != nil {
		return nil, err
	}

	properties := e.uow.GetPropertyRepository(ctx)
	property, err := properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsBookable() {
		return nil, errs.ErrPropertyNotFound
	}

	status := entity.AuctionStatusScheduled
	if !req.StartTime.After(now) {
		status = entity.AuctionStatusActive
	}

	auction := &entity.Auction{
		PropertyID:        req.PropertyID,
		HostID:            req.HostID,
		Range:             *rng,
		StartPriceCents:   req.StartPriceCents,
		CurrentBidCents:   req.StartPriceCents,
		MinIncrementCents: req.MinIncrementCents,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Status:            status,
		MaxGuests:         req.MaxGuests,
		Description:       req.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := e.uow.GetAuctionRepository(ctx).Create(ctx, auction); err != nil {
		return nil, err
	}
	return auction, nil
}

// Get retrieves an auction by ID
func (e *Engine) Get(ctx context.Context, auctionID uint64) (*entity.Auction, error) {
	return e.uow.GetAuctionRepository(ctx).GetByID(ctx, auctionID)
}

// Activate moves a scheduled auction to active once its start time passes
func (e *Engine) Activate(ctx context.Context, auctionID uint64) (*entity.Auction, error) {
	return e.mutate(ctx, auctionID, func(txCtx context.Context, auction *entity.Auction, now time.Time) error {
		if auction.Status != entity.AuctionStatusScheduled {
			return errs.ErrInvalidStatusTransition
		}
		if !auction.DueToStart(now) {
			return errs.ErrInvalidStatusTransition
		}
		auction.Status = entity.AuctionStatusActive
		return nil
	}, func(ctx context.Context, auction *entity.Auction) {
		e.notifyHost(ctx, auction, notifport.EventAuctionStarted, map[string]any{
			"auction_id":  auction.ID,
			"property_id": auction.PropertyID,
			"end_time":    auction.EndTime,
		})
	})
}

// End closes an active auction, promoting the highest bidder to winner
func (e *Engine) End(ctx context.Context, auctionID uint64) (*entity.Auction, error) {
	return e.mutate(ctx, auctionID, func(txCtx context.Context, auction *entity.Auction, now time.Time) error {
		if auction.Status != entity.AuctionStatusActive {
			return errs.ErrInvalidStatusTransition
		}
		auction.Status = entity.AuctionStatusEnded
		if auction.BidsCount == 0 {
			return nil
		}

		best, err := e.uow.GetAuctionBidRepository(txCtx).HighestEligible(txCtx, auction.ID)
		if err != nil {
			return err
		}
		if best == nil {
			return nil
		}
		deadline := now.Add(e.paymentWindow)
		auction.WinnerID = &best.BidderID
		auction.PaymentDeadline = &deadline
		return nil
	}, func(ctx context.Context, auction *entity.Auction) {
		payload := map[string]any{
			"auction_id": auction.ID,
			"final_bid":  entity.AmountInCentsToString(auction.CurrentBidCents),
		}
		e.notifyHost(ctx, auction, notifport.EventAuctionEnded, payload)
		if auction.WinnerID != nil {
			if err := e.dispatcher.Dispatch(ctx, *auction.WinnerID, notifport.EventAuctionEnded, payload); err != nil {
				e.logger.Warn("Failed to notify auction winner", map[string]any{
					"auction_id": auction.ID,
					"winner_id":  *auction.WinnerID,
					"error":      err.Error(),
				})
			}
		}
	})
}

// ForfeitWinner strips a non-paying winner and promotes the next-highest
// distinct bidder at that bidder's own best amount. With nobody left to
// promote, the auction is cancelled.
func (e *Engine) ForfeitWinner(ctx context.Context, auctionID uint64) (*entity.Auction, error) {
	var forfeited uint64
	return e.mutate(ctx, auctionID, func(txCtx context.Context, auction *entity.Auction, now time.Time) error {
		if auction.Status != entity.AuctionStatusEnded || auction.WinnerID == nil {
			return errs.ErrInvalidStatusTransition
		}
		if auction.PaymentCompleted {
			return errs.ErrInvalidStatusTransition
		}
		forfeited = *auction.WinnerID

		bids := e.uow.GetAuctionBidRepository(txCtx)
		if err := bids.MarkBidderForfeited(txCtx, auction.ID, forfeited); err != nil {
			return err
		}

		// Earlier forfeited bidders stay excluded, so repeated forfeitures
		// walk down the remaining field
		next, err := bids.HighestEligible(txCtx, auction.ID)
		if err != nil {
			return err
		}
		if next == nil {
			auction.Status = entity.AuctionStatusCancelled
			auction.WinnerID = nil
			auction.PaymentDeadline = nil
			return nil
		}

		if err := bids.ClearWinningFlags(txCtx, auction.ID); err != nil {
			return err
		}
		if err := bids.MarkWinning(txCtx, next.ID); err != nil {
			return err
		}
		deadline := now.Add(e.paymentWindow)
		auction.WinnerID = &next.BidderID
		auction.CurrentBidCents = next.AmountCents
		auction.PaymentDeadline = &deadline
		return nil
	}, func(ctx context.Context, auction *entity.Auction) {
		payload := map[string]any{
			"auction_id":          auction.ID,
			"forfeited_bidder_id": forfeited,
		}
		if auction.WinnerID != nil {
			payload["promoted_bidder_id"] = *auction.WinnerID
			payload["winning_bid"] = entity.AmountInCentsToString(auction.CurrentBidCents)
			if err := e.dispatcher.Dispatch(ctx, *auction.WinnerID, notifport.EventWinnerForfeited, payload); err != nil {
				e.logger.Warn("Failed to notify promoted bidder", map[string]any{
					"auction_id": auction.ID,
					"error":      err.Error(),
				})
			}
		}
		e.notifyHost(ctx, auction, notifport.EventWinnerForfeited, payload)
	})
}

// CompletePayment records the winner's payment
func (e *Engine) CompletePayment(ctx context.Context, auctionID uint64) (*entity.Auction, error) {
	return e.mutate(ctx, auctionID, func(txCtx context.Context, auction *entity.Auction, now time.Time) error {
		if auction.Status != entity.AuctionStatusEnded || auction.WinnerID == nil {
			return errs.ErrInvalidStatusTransition
		}
		auction.PaymentCompleted = true
		return nil
	}, nil)
}

// mutate loads the auction FOR UPDATE, applies the change and commits.
// afterCommit runs only on success.
func (e *Engine) mutate(
	ctx context.Context,
	auctionID uint64,
	apply func(context.Context, *entity.Auction, time.Time) error,
	afterCommit func(context.Context, *entity.Auction),
) (auction *entity.Auction, err error) {
	if auctionID == 0 {
		return nil, errs.ErrAuctionNotFound
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
				e.logger.Error("Failed to roll back auction change", map[string]any{
					"auction_id": auctionID,
					"error":      rbErr.Error(),
				})
			}
		}
	}()

	auctions := e.uow.GetAuctionRepository(txCtx)
	auction, err = auctions.GetByIDForUpdate(txCtx, auctionID)
	if err != nil {
		return nil, err
	}

	now := e.timeProvider.Now()
	if err = apply(txCtx, auction, now); err != nil {
		return nil, err
	}
	auction.UpdatedAt = now

	if err = auctions.Update(txCtx, auction); err != nil {
		return nil, err
	}
	if err = e.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	if afterCommit != nil {
		afterCommit(ctx, auction)
	}
	return auction, nil
}

func (e *Engine) notifyHost(ctx context.Context, auction *entity.Auction, event string, payload map[string]any) {
	if err := e.dispatcher.Dispatch(ctx, auction.HostID, event, payload); err != nil {
		e.logger.Warn("Failed to notify auction host", map[string]any{
			"auction_id": auction.ID,
			"event":      event,
			"error":      err.Error(),
		})
	}
}
