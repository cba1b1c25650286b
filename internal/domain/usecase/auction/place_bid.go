package auction

import (
	"context"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
)

// PlaceBidRequest represents a request to place a bid
type PlaceBidRequest struct {
	AuctionID      uint64
	BidderID       uint64
	AmountCents    int64
	IsAutoBid      bool
	MaxAmountCents *int64
}

// PlaceBidResult carries the accepted bid and the auction state after it
type PlaceBidResult struct {
	Bid     *entity.AuctionBid
	Auction *entity.Auction
}

// PlaceBid accepts or rejects a bid as one atomic unit. The auction row is
// locked FOR UPDATE for the whole decision, so two bids on the same auction
// serialize and the loser re-evaluates against the winner's amount.
func (e *Engine) PlaceBid(ctx context.Context, req PlaceBidRequest) (result *PlaceBidResult, err error) {
	if req.AuctionID == 0 {
		return nil, errs.ErrAuctionNotFound
	}
	if req.BidderID == 0 {
		return nil, errs.NewValidationError("bidder_id", "positive", errs.ErrInvalidCustomerID)
	}
	if req.AmountCents <= 0 {
		return nil, errs.NewValidationError("amount", "positive", errs.ErrNegativeAmount)
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
				e.logger.Error("Failed to roll back bid transaction", map[string]any{
					"auction_id": req.AuctionID,
					"error":      rbErr.Error(),
				})
			}
		}
	}()

	auctions := e.uow.GetAuctionRepository(txCtx)
	bids := e.uow.GetAuctionBidRepository(txCtx)
	participants := e.uow.GetAuctionParticipantRepository(txCtx)

	auction, err := auctions.GetByIDForUpdate(txCtx, req.AuctionID)
	if err != nil {
		return nil, err
	}

	now := e.timeProvider.Now()
	if !auction.IsActive() || auction.DueToEnd(now) {
		err = errs.ErrAuctionNotActive
		return nil, err
	}
	if req.BidderID == auction.HostID {
		err = errs.NewValidationError("bidder_id", "not_host", errs.ErrInvalidRequest)
		return nil, err
	}

	minimum := auction.MinimumNextBid()
	if req.AmountCents < minimum {
		err = errs.NewBidTooLowError(auction.ID, req.AmountCents, minimum)
		return nil, err
	}

	if err = bids.ClearWinningFlags(txCtx, auction.ID); err != nil {
		return nil, err
	}

	bid := &entity.AuctionBid{
		AuctionID:      auction.ID,
		BidderID:       req.BidderID,
		AmountCents:    req.AmountCents,
		IsWinningBid:   true,
		IsAutoBid:      req.IsAutoBid,
		MaxAmountCents: req.MaxAmountCents,
		CreatedAt:      now,
	}
	if err = bids.Create(txCtx, bid); err != nil {
		return nil, err
	}

	if err = participants.Upsert(txCtx, &entity.AuctionParticipant{
		AuctionID:     auction.ID,
		BidderID:      req.BidderID,
		BidsCount:     1,
		TotalBidCents: req.AmountCents,
		FirstBidAt:    now,
		LastBidAt:     now,
	}); err != nil {
		return nil, err
	}

	participantCount, err := participants.CountByAuction(txCtx, auction.ID)
	if err != nil {
		return nil, err
	}

	auction.CurrentBidCents = req.AmountCents
	auction.BidsCount++
	auction.ParticipantsCount = int(participantCount)
	auction.UpdatedAt = now

	// A bid near the deadline pushes the effective end out so other
	// bidders get a chance to respond
	if e.extendWindow > 0 {
		endsAt := auction.EndTime
		if auction.ExtendedTime != nil && auction.ExtendedTime.After(endsAt) {
			endsAt = *auction.ExtendedTime
		}
		if endsAt.Sub(now) < e.extendWindow {
			extended := now.Add(e.extendWindow)
			auction.ExtendedTime = &extended
		}
	}

	if err = auctions.Update(txCtx, auction); err != nil {
		return nil, err
	}
	if err = e.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	e.notifyOthers(ctx, auction, req.BidderID)
	return &PlaceBidResult{Bid: bid, Auction: auction}, nil
}

// GetBids lists the bids on an auction, newest first
func (e *Engine) GetBids(ctx context.Context, auctionID uint64, limit, offset int) ([]*entity.AuctionBid, error) {
	if auctionID == 0 {
		return nil, errs.ErrAuctionNotFound
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return e.uow.GetAuctionBidRepository(ctx).ListByAuction(ctx, auctionID, limit, offset)
}

// notifyOthers tells every other participant they have been outbid
func (e *Engine) notifyOthers(ctx context.Context, auction *entity.Auction, bidderID uint64) {
	all, err := e.uow.GetAuctionParticipantRepository(ctx).ListByAuction(ctx, auction.ID)
	if err != nil {
		e.logger.Warn("Failed to load participants for outbid notification", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
		return
	}

	recipients := make([]uint64, 0, len(all))
	for _, p := range all {
		if p.BidderID != bidderID {
			recipients = append(recipients, p.BidderID)
		}
	}
	if len(recipients) == 0 {
		return
	}

	payload := map[string]any{
		"auction_id":       auction.ID,
		"current_bid":      entity.AmountInCentsToString(auction.CurrentBidCents),
		"minimum_next_bid": entity.AmountInCentsToString(auction.MinimumNextBid()),
		"bids_count":       auction.BidsCount,
	}
	if err := e.dispatcher.Broadcast(ctx, recipients, notifport.EventBidOutbid, payload); err != nil {
		e.logger.Warn("Failed to broadcast outbid notification", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
	}
}
