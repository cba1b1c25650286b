package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
)

func TestEngine_SweepActivations(t *testing.T) {
	ctx := context.Background()

	t.Run("Due auctions are activated", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		scheduled := activeAuction()
		scheduled.Status = entity.AuctionStatusScheduled
		scheduled.StartTime = fixedNow.Add(-time.Minute)

		f.uow.EXPECT().GetAuctionRepository(mock.Anything).Return(f.auctions)
		f.auctions.EXPECT().ListDueToStart(mock.Anything, fixedNow).
			Return([]*entity.Auction{{ID: 9}}, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(scheduled, nil).Once()
		f.auctions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.dispatcher.EXPECT().Dispatch(mock.Anything, uint64(1), notifport.EventAuctionStarted, mock.Anything).
			Return(nil).Once()

		assert.Equal(t, 1, f.engine.SweepActivations(ctx))
	})

	t.Run("An auction activated by a competing sweep is skipped", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		f.uow.EXPECT().GetAuctionRepository(mock.Anything).Return(f.auctions)
		f.auctions.EXPECT().ListDueToStart(mock.Anything, fixedNow).
			Return([]*entity.Auction{{ID: 9}}, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(activeAuction(), nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		assert.Equal(t, 0, f.engine.SweepActivations(ctx))
	})

	t.Run("Listing failure sweeps nothing", func(t *testing.T) {
		f := newEngineFixture(t)

		f.uow.EXPECT().GetAuctionRepository(mock.Anything).Return(f.auctions)
		f.auctions.EXPECT().ListDueToStart(mock.Anything, fixedNow).
			Return(nil, errors.New("connection reset")).Once()

		assert.Equal(t, 0, f.engine.SweepActivations(ctx))
	})
}

func TestEngine_SweepEndings(t *testing.T) {
	ctx := context.Background()

	t.Run("Expired auctions are ended", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		expired := activeAuction()
		expired.EndTime = fixedNow.Add(-time.Minute)

		f.uow.EXPECT().GetAuctionRepository(mock.Anything).Return(f.auctions)
		f.auctions.EXPECT().ListDueToEnd(mock.Anything, fixedNow).
			Return([]*entity.Auction{{ID: 9}}, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(expired, nil).Once()
		f.auctions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.dispatcher.EXPECT().Dispatch(mock.Anything, uint64(1), notifport.EventAuctionEnded, mock.Anything).
			Return(nil).Once()

		assert.Equal(t, 1, f.engine.SweepEndings(ctx))
	})
}

func TestEngine_SweepForfeitures(t *testing.T) {
	ctx := context.Background()

	t.Run("Overdue winners are forfeited", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		winner := uint64(7)
		deadline := fixedNow.Add(-time.Hour)
		overdue := activeAuction()
		overdue.Status = entity.AuctionStatusEnded
		overdue.WinnerID = &winner
		overdue.PaymentDeadline = &deadline

		f.uow.EXPECT().GetAuctionRepository(mock.Anything).Return(f.auctions)
		f.auctions.EXPECT().ListPaymentOverdue(mock.Anything, fixedNow).
			Return([]*entity.Auction{{ID: 9}}, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(overdue, nil).Once()
		f.uow.EXPECT().GetAuctionBidRepository(mock.Anything).Return(f.bids)
		f.bids.EXPECT().MarkBidderForfeited(mock.Anything, uint64(9), uint64(7)).Return(nil).Once()
		f.bids.EXPECT().HighestEligible(mock.Anything, uint64(9)).
			Return(nil, nil).Once()
		f.auctions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.dispatcher.EXPECT().Dispatch(mock.Anything, uint64(1), notifport.EventWinnerForfeited, mock.Anything).
			Return(nil).Once()

		assert.Equal(t, 1, f.engine.SweepForfeitures(ctx))
	})
}
