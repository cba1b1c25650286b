package auction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	notifport "github.com/rsvtravel/booking-engine/internal/domain/port/notification"
)

// expectBidRepos wires the repository getters the bid path picks up right
// after Begin
func (f *engineFixture) expectBidRepos(txCtx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	f.uow.EXPECT().GetAuctionRepository(mock.Anything).Return(f.auctions)
	f.uow.EXPECT().GetAuctionBidRepository(mock.Anything).Return(f.bids)
	f.uow.EXPECT().GetAuctionParticipantRepository(mock.Anything).Return(f.participants)
}

func validBidRequest() PlaceBidRequest {
	return PlaceBidRequest{
		AuctionID:   9,
		BidderID:    7,
		AmountCents: 51000,
	}
}

func TestEngine_PlaceBid(t *testing.T) {
	ctx := context.Background()

	t.Run("Bid exactly at the minimum is accepted", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		f.expectBidRepos(txCtx)
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(activeAuction(), nil).Once()
		f.bids.EXPECT().ClearWinningFlags(mock.Anything, uint64(9)).Return(nil).Once()
		f.bids.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, bid *entity.AuctionBid) {
				bid.ID = 77
			}).Return(nil).Once()
		f.participants.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
		f.participants.EXPECT().CountByAuction(mock.Anything, uint64(9)).Return(int64(2), nil).Once()
		f.auctions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		f.participants.EXPECT().ListByAuction(mock.Anything, uint64(9)).
			Return([]*entity.AuctionParticipant{{BidderID: 7}, {BidderID: 8}}, nil).Once()
		f.dispatcher.EXPECT().Broadcast(mock.Anything, []uint64{8}, notifport.EventBidOutbid, mock.Anything).
			Return(nil).Once()

		result, err := f.engine.PlaceBid(ctx, validBidRequest())

		require.NoError(t, err)
		assert.Equal(t, uint64(77), result.Bid.ID)
		assert.True(t, result.Bid.IsWinningBid)
		assert.Equal(t, int64(51000), result.Auction.CurrentBidCents)
		assert.Equal(t, 1, result.Auction.BidsCount)
		assert.Equal(t, 2, result.Auction.ParticipantsCount)
		assert.Equal(t, int64(52000), result.Auction.MinimumNextBid())
		// End time is far away, no extension
		assert.Nil(t, result.Auction.ExtendedTime)
	})

	t.Run("Bid below the minimum reports it", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		f.expectBidRepos(txCtx)
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(activeAuction(), nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		req := validBidRequest()
		req.AmountCents = 50999
		result, err := f.engine.PlaceBid(ctx, req)

		assert.Nil(t, result)
		assert.True(t, errs.IsBidTooLowError(err))

		var tooLow *errs.BidTooLowError
		require.True(t, errs.AsBidTooLowError(err, &tooLow))
		assert.Equal(t, int64(51000), tooLow.MinimumCents)
	})

	t.Run("Ended auction rejects bids", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		ended := activeAuction()
		ended.Status = entity.AuctionStatusEnded

		f.expectBidRepos(txCtx)
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(ended, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := f.engine.PlaceBid(ctx, validBidRequest())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAuctionNotActive)
	})

	t.Run("Active auction past its end time rejects bids", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		expired := activeAuction()
		expired.EndTime = fixedNow.Add(-time.Minute)

		f.expectBidRepos(txCtx)
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(expired, nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := f.engine.PlaceBid(ctx, validBidRequest())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAuctionNotActive)
	})

	t.Run("Host cannot bid on their own auction", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		f.expectBidRepos(txCtx)
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(activeAuction(), nil).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		req := validBidRequest()
		req.BidderID = 1
		result, err := f.engine.PlaceBid(ctx, req)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Bid near the deadline extends the auction", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		closing := activeAuction()
		closing.EndTime = fixedNow.Add(2 * time.Minute)

		f.expectBidRepos(txCtx)
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(closing, nil).Once()
		f.bids.EXPECT().ClearWinningFlags(mock.Anything, uint64(9)).Return(nil).Once()
		f.bids.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.participants.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
		f.participants.EXPECT().CountByAuction(mock.Anything, uint64(9)).Return(int64(1), nil).Once()
		f.auctions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.participants.EXPECT().ListByAuction(mock.Anything, uint64(9)).
			Return([]*entity.AuctionParticipant{{BidderID: 7}}, nil).Once()

		result, err := f.engine.PlaceBid(ctx, validBidRequest())

		require.NoError(t, err)
		require.NotNil(t, result.Auction.ExtendedTime)
		assert.Equal(t, fixedNow.Add(5*time.Minute), *result.Auction.ExtendedTime)
	})

	t.Run("Auto-bid ceiling is stored with the bid", func(t *testing.T) {
		f := newEngineFixture(t)
		txCtx := context.Background()

		f.expectBidRepos(txCtx)
		f.auctions.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(activeAuction(), nil).Once()
		f.bids.EXPECT().ClearWinningFlags(mock.Anything, uint64(9)).Return(nil).Once()
		f.bids.EXPECT().Create(mock.Anything, mock.MatchedBy(func(bid *entity.AuctionBid) bool {
			return bid.IsAutoBid && bid.MaxAmountCents != nil && *bid.MaxAmountCents == 80000
		})).Return(nil).Once()
		f.participants.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
		f.participants.EXPECT().CountByAuction(mock.Anything, uint64(9)).Return(int64(1), nil).Once()
		f.auctions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.participants.EXPECT().ListByAuction(mock.Anything, uint64(9)).
			Return([]*entity.AuctionParticipant{{BidderID: 7}}, nil).Once()

		maxAmount := int64(80000)
		req := validBidRequest()
		req.IsAutoBid = true
		req.MaxAmountCents = &maxAmount
		result, err := f.engine.PlaceBid(ctx, req)

		require.NoError(t, err)
		assert.True(t, result.Bid.IsAutoBid)
	})

	t.Run("Invalid bid requests", func(t *testing.T) {
		f := newEngineFixture(t)

		testCases := []struct {
			name   string
			mutate func(*PlaceBidRequest)
		}{
			{"Zero auction", func(r *PlaceBidRequest) { r.AuctionID = 0 }},
			{"Zero bidder", func(r *PlaceBidRequest) { r.BidderID = 0 }},
			{"Zero amount", func(r *PlaceBidRequest) { r.AmountCents = 0 }},
			{"Negative amount", func(r *PlaceBidRequest) { r.AmountCents = -100 }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := validBidRequest()
				tc.mutate(&req)

				result, err := f.engine.PlaceBid(ctx, req)
				assert.Error(t, err)
				assert.Nil(t, result)
			})
		}
	})
}

func TestEngine_GetBids(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists bids with defaulted pagination", func(t *testing.T) {
		f := newEngineFixture(t)

		f.uow.EXPECT().GetAuctionBidRepository(mock.Anything).Return(f.bids)
		f.bids.EXPECT().ListByAuction(mock.Anything, uint64(9), 50, 0).
			Return([]*entity.AuctionBid{{ID: 77}}, nil).Once()

		bids, err := f.engine.GetBids(ctx, 9, 0, -5)

		require.NoError(t, err)
		assert.Len(t, bids, 1)
	})

	t.Run("Zero auction ID", func(t *testing.T) {
		f := newEngineFixture(t)

		bids, err := f.engine.GetBids(ctx, 0, 10, 0)

		assert.Nil(t, bids)
		assert.ErrorIs(t, err, errs.ErrAuctionNotFound)
	})
}
