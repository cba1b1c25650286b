package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating booking and auction
// operations inside a single database transaction to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetReservationRepository returns a reservation repository bound to the current transaction
	GetReservationRepository(ctx context.Context) ReservationRepository

	// GetPropertyRepository returns a property repository bound to the current transaction
	GetPropertyRepository(ctx context.Context) PropertyRepository

	// GetAuctionRepository returns an auction repository bound to the current transaction
	GetAuctionRepository(ctx context.Context) AuctionRepository

	// GetAuctionBidRepository returns a bid repository bound to the current transaction
	GetAuctionBidRepository(ctx context.Context) AuctionBidRepository

	// GetAuctionParticipantRepository returns a participant repository bound to the current transaction
	GetAuctionParticipantRepository(ctx context.Context) AuctionParticipantRepository
}
