package auction

import (
	"context"
	"errors"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
)

// SweepActivations activates every scheduled auction whose start time has
// passed. Returns the number of auctions activated.
func (e *Engine) SweepActivations(ctx context.Context) int {
	now := e.timeProvider.Now()
	due, err := e.uow.GetAuctionRepository(ctx).ListDueToStart(ctx, now)
	if err != nil {
		e.logger.Error("Failed to list auctions due to start", map[string]any{
			"error": err.Error(),
		})
		return 0
	}

	activated := 0
	for _, a := range due {
		if _, err := e.Activate(ctx, a.ID); err != nil {
			if errors.Is(err, errs.ErrInvalidStatusTransition) {
				continue
			}
			e.logger.Error("Failed to activate auction", map[string]any{
				"auction_id": a.ID,
				"error":      err.Error(),
			})
			continue
		}
		activated++
	}
	return activated
}

// SweepEndings ends every active auction whose effective end time has
// passed. Returns the number of auctions ended.
func (e *Engine) SweepEndings(ctx context.Context) int {
	now := e.timeProvider.Now()
	due, err := e.uow.GetAuctionRepository(ctx).ListDueToEnd(ctx, now)
	if err != nil {
		e.logger.Error("Failed to list auctions due to end", map[string]any{
			"error": err.Error(),
		})
		return 0
	}

	ended := 0
	for _, a := range due {
		if _, err := e.End(ctx, a.ID); err != nil {
			if errors.Is(err, errs.ErrInvalidStatusTransition) {
				continue
			}
			e.logger.Error("Failed to end auction", map[string]any{
				"auction_id": a.ID,
				"error":      err.Error(),
			})
			continue
		}
		ended++
	}
	return ended
}

// SweepForfeitures forfeits every winner whose payment deadline expired
// without payment. Returns the number of forfeitures processed.
func (e *Engine) SweepForfeitures(ctx context.Context) int {
	now := e.timeProvider.Now()
	overdue, err := e.uow.GetAuctionRepository(ctx).ListPaymentOverdue(ctx, now)
	if err != nil {
		e.logger.Error("Failed to list auctions with overdue payment", map[string]any{
			"error": err.Error(),
		})
		return 0
	}

	forfeited := 0
	for _, a := range overdue {
		if _, err := e.ForfeitWinner(ctx, a.ID); err != nil {
			if errors.Is(err, errs.ErrInvalidStatusTransition) {
				continue
			}
			e.logger.Error("Failed to forfeit auction winner", map[string]any{
				"auction_id": a.ID,
				"error":      err.Error(),
			})
			continue
		}
		forfeited++
	}
	return forfeited
}
