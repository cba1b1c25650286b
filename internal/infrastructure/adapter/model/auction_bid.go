package model

import (
	"time"
)

// AuctionBid represents the database model for bids
type AuctionBid struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	AuctionID      uint64 `gorm:"not null;index:idx_bids_auction_amount,priority:1"`
	BidderID       uint64 `gorm:"not null;index"`
	AmountCents    int64  `gorm:"not null;index:idx_bids_auction_amount,priority:2,sort:desc"`
	IsWinningBid   bool   `gorm:"not null;default:false"`
	IsAutoBid      bool   `gorm:"not null;default:false"`
	MaxAmountCents *int64
	Forfeited      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null"`

	// Define relationships
	Auction Auction `gorm:"foreignKey:AuctionID;references:ID"`
}

// TableName specifies the table name for AuctionBid
func (AuctionBid) TableName() string {
	return "auction_bids"
}

// AuctionParticipant represents the database model for per-bidder aggregates
type AuctionParticipant struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	AuctionID     uint64    `gorm:"not null;uniqueIndex:idx_participants_auction_bidder,priority:1"`
	BidderID      uint64    `gorm:"not null;uniqueIndex:idx_participants_auction_bidder,priority:2"`
	BidsCount     int       `gorm:"not null;default:0"`
	TotalBidCents int64     `gorm:"not null;default:0"`
	FirstBidAt    time.Time `gorm:"not null"`
	LastBidAt     time.Time `gorm:"not null"`

	// Define relationships
	Auction Auction `gorm:"foreignKey:AuctionID;references:ID"`
}

// TableName specifies the table name for AuctionParticipant
func (AuctionParticipant) TableName() string {
	return "auction_participants"
}
