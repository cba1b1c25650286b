package persistence

import (
	"context"
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
)

// AuctionRepository defines essential methods to interact with auction data
type AuctionRepository interface {
	// GetByID retrieves an auction by ID
	//
	// Possible errors:
	// - ErrAuctionNotFound: If auction with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Auction, error)

	// GetByIDForUpdate loads an auction row with a FOR UPDATE lock so a
	// bid placement serializes against concurrent bids on the same auction
	//
	// Possible errors:
	// - ErrAuctionNotFound: If auction with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Auction, error)

	// Create saves a new auction
	//
	// Possible errors:
	// - ErrConstraintViolation: If auction data violates a database constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, auction *entity.Auction) error

	// Update persists changes to an existing auction
	//
	// Possible errors:
	// - ErrAuctionNotFound: If auction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, auction *entity.Auction) error

	// ListDueToStart returns scheduled auctions whose start time has passed
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListDueToStart(ctx context.Context, now time.Time) ([]*entity.Auction, error)

	// ListDueToEnd returns active auctions whose effective end time has passed
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListDueToEnd(ctx context.Context, now time.Time) ([]*entity.Auction, error)

	// ListPaymentOverdue returns ended auctions with a winner whose payment
	// deadline has passed without payment
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListPaymentOverdue(ctx context.Context, now time.Time) ([]*entity.Auction, error)
}

// AuctionBidRepository defines methods to interact with bid data
type AuctionBidRepository interface {
	// Create saves a new bid
	//
	// Possible errors:
	// - ErrConstraintViolation: If bid data violates a database constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, bid *entity.AuctionBid) error

	// ClearWinningFlags marks every bid on the auction as non-winning,
	// called just before inserting the new winning bid
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ClearWinningFlags(ctx context.Context, auctionID uint64) error

	// MarkWinning flags a single bid as the winning one
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	MarkWinning(ctx context.Context, bidID uint64) error

	// ListByAuction retrieves bids for an auction, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByAuction(ctx context.Context, auctionID uint64, limit, offset int) ([]*entity.AuctionBid, error)

	// HighestEligible returns the best non-forfeited bid on the auction, or
	// nil when no such bid exists. Used to pick the winner at close and the
	// runner-up after a forfeiture.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	HighestEligible(ctx context.Context, auctionID uint64) (*entity.AuctionBid, error)

	// MarkBidderForfeited flags every bid the bidder placed on the auction
	// as forfeited, removing them from runner-up eligibility
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	MarkBidderForfeited(ctx context.Context, auctionID uint64, bidderID uint64) error
}

// AuctionParticipantRepository defines methods to interact with
// per-bidder aggregates
type AuctionParticipantRepository interface {
	// Upsert inserts the participant row or merges it into the existing one,
	// accumulating bid count and total amount
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Upsert(ctx context.Context, participant *entity.AuctionParticipant) error

	// CountByAuction returns the number of distinct bidders on the auction
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CountByAuction(ctx context.Context, auctionID uint64) (int64, error)

	// ListByAuction retrieves every participant aggregate for the auction
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByAuction(ctx context.Context, auctionID uint64) ([]*entity.AuctionParticipant, error)
}
