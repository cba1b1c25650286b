package notification

import "context"

// Event names emitted by the booking and auction flows
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventAuctionStarted   = "auction.started"
	EventAuctionEnded     = "auction.ended"
	EventBidPlaced        = "auction.bid_placed"
	EventBidOutbid        = "auction.outbid"
	EventWinnerForfeited  = "auction.winner_forfeited"
)

// Dispatcher delivers domain events to interested parties. Delivery is
// best effort and happens after the owning transaction commits; failures
// are logged and never propagate to the caller.
type Dispatcher interface {
	// Dispatch sends an event to a single recipient
	Dispatch(ctx context.Context, recipientID uint64, event string, payload map[string]any) error

	// Broadcast sends an event to multiple recipients
	Broadcast(ctx context.Context, recipientIDs []uint64, event string, payload map[string]any) error
}
