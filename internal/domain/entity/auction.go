package entity

import (
	"time"
)

// AuctionStatus defines the lifecycle states of an auction
type AuctionStatus string

// Auction lifecycle states
const (
	AuctionStatusScheduled AuctionStatus = "scheduled"
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusEnded     AuctionStatus = "ended"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

// Auction represents a time-boxed competitive sale of a property/date-range slot
type Auction struct {
	ID         uint64
	PropertyID uint64
	HostID     uint64
	Range      DateRange

	StartPriceCents   int64
	CurrentBidCents   int64
	MinIncrementCents int64

	StartTime    time.Time
	EndTime      time.Time
	ExtendedTime *time.Time

	Status   AuctionStatus
	WinnerID *uint64

	BidsCount         int
	ParticipantsCount int

	PaymentCompleted bool
	PaymentDeadline  *time.Time

	MaxGuests   int
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MinimumNextBid returns the smallest bid amount the auction will accept.
// A bid of exactly current_bid + min_increment is accepted; anything below is not.
func (a *Auction) MinimumNextBid() int64 {
	return a.CurrentBidCents + a.MinIncrementCents
}

// IsActive reports whether the auction accepts bids
func (a *Auction) IsActive() bool {
	return a.Status == AuctionStatusActive
}

// DueToStart reports whether a scheduled auction should be activated
func (a *Auction) DueToStart(now time.Time) bool {
	return a.Status == AuctionStatusScheduled && !now.Before(a.StartTime)
}

// DueToEnd reports whether an active auction has run out of time,
// honoring a soft-close extension when one was granted
func (a *Auction) DueToEnd(now time.Time) bool {
	if a.Status != AuctionStatusActive {
		return false
	}
	end := a.EndTime
	if a.ExtendedTime != nil && a.ExtendedTime.After(end) {
		end = *a.ExtendedTime
	}
	return !now.Before(end)
}

// PaymentOverdue reports whether the winner missed the payment deadline
func (a *Auction) PaymentOverdue(now time.Time) bool {
	return a.Status == AuctionStatusEnded &&
		!a.PaymentCompleted &&
		a.WinnerID != nil &&
		a.PaymentDeadline != nil &&
		now.After(*a.PaymentDeadline)
}

// AuctionBid represents a single bid. Immutable once created except for the
// IsWinningBid flag, which the engine clears on all prior bids of the same
// auction when a new winning bid is accepted.
type AuctionBid struct {
	ID             uint64
	AuctionID      uint64
	BidderID       uint64
	AmountCents    int64
	IsWinningBid   bool
	IsAutoBid      bool
	MaxAmountCents *int64
	// Forfeited marks bids of a winner who failed to pay; forfeited bids
	// never qualify for runner-up promotion again.
	Forfeited bool
	CreatedAt time.Time
}

// AmountString returns the bid amount as a 2-decimal string
func (b *AuctionBid) AmountString() string {
	return AmountInCentsToString(b.AmountCents)
}

// AuctionParticipant aggregates a bidder's activity on one auction
type AuctionParticipant struct {
	ID            uint64
	AuctionID     uint64
	BidderID      uint64
	BidsCount     int
	TotalBidCents int64
	FirstBidAt    time.Time
	LastBidAt     time.Time
}

// IsValidAuctionStatus validates a status string against the lifecycle set
func IsValidAuctionStatus(status string) bool {
	switch AuctionStatus(status) {
	case AuctionStatusScheduled, AuctionStatusActive, AuctionStatusEnded, AuctionStatusCancelled:
		return true
	}
	return false
}
