package dto

import (
	"time"

	"github.com/rsvtravel/booking-engine/internal/domain/entity"
)

// CreateAuctionRequest represents the API request for creating an auction
type CreateAuctionRequest struct {
	PropertyID        uint64    `json:"propertyId" binding:"required"`
	HostID            uint64    `json:"hostId" binding:"required"`
	CheckIn           string    `json:"checkIn" binding:"required"`
	CheckOut          string    `json:"checkOut" binding:"required"`
	StartPriceCents   int64     `json:"startPriceCents" binding:"required,min=1"`
	MinIncrementCents int64     `json:"minIncrementCents" binding:"required,min=1"`
	StartTime         time.Time `json:"startTime" binding:"required"`
	EndTime           time.Time `json:"endTime" binding:"required"`
	MaxGuests         int       `json:"maxGuests" binding:"required,min=1"`
	Description       string    `json:"description"`
}

// PlaceBidRequest represents the API request for placing a bid
type PlaceBidRequest struct {
	BidderID       uint64 `json:"bidderId" binding:"required"`
	AmountCents    int64  `json:"amountCents" binding:"required,min=1"`
	IsAutoBid      bool   `json:"isAutoBid"`
	MaxAmountCents *int64 `json:"maxAmountCents"`
}

// AuctionResponse represents an auction in API responses
type AuctionResponse struct {
	ID                uint64     `json:"id"`
	PropertyID        uint64     `json:"propertyId"`
	HostID            uint64     `json:"hostId"`
	CheckIn           string     `json:"checkIn"`
	CheckOut          string     `json:"checkOut"`
	StartPrice        string     `json:"startPrice"`
	CurrentBid        string     `json:"currentBid"`
	MinIncrement      string     `json:"minIncrement"`
	MinimumNextBid    string     `json:"minimumNextBid"`
	StartTime         time.Time  `json:"startTime"`
	EndTime           time.Time  `json:"endTime"`
	ExtendedTime      *time.Time `json:"extendedTime,omitempty"`
	Status            string     `json:"status"`
	WinnerID          *uint64    `json:"winnerId,omitempty"`
	BidsCount         int        `json:"bidsCount"`
	ParticipantsCount int        `json:"participantsCount"`
	PaymentDeadline   *time.Time `json:"paymentDeadline,omitempty"`
	MaxGuests         int        `json:"maxGuests"`
	Description       string     `json:"description,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// NewAuctionResponse maps an auction entity to its API shape
func NewAuctionResponse(a *entity.Auction) *AuctionResponse {
	return &AuctionResponse{
		ID:                a.ID,
		PropertyID:        a.PropertyID,
		HostID:            a.HostID,
		CheckIn:           a.Range.CheckIn.Format(entity.DateLayout),
		CheckOut:          a.Range.CheckOut.Format(entity.DateLayout),
		StartPrice:        entity.AmountInCentsToString(a.StartPriceCents),
		CurrentBid:        entity.AmountInCentsToString(a.CurrentBidCents),
		MinIncrement:      entity.AmountInCentsToString(a.MinIncrementCents),
		MinimumNextBid:    entity.AmountInCentsToString(a.MinimumNextBid()),
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		ExtendedTime:      a.ExtendedTime,
		Status:            string(a.Status),
		WinnerID:          a.WinnerID,
		BidsCount:         a.BidsCount,
		ParticipantsCount: a.ParticipantsCount,
		PaymentDeadline:   a.PaymentDeadline,
		MaxGuests:         a.MaxGuests,
		Description:       a.Description,
		CreatedAt:         a.CreatedAt,
	}
}

// BidResponse represents a bid in API responses
type BidResponse struct {
	ID           uint64    `json:"id"`
	AuctionID    uint64    `json:"auctionId"`
	BidderID     uint64    `json:"bidderId"`
	Amount       string    `json:"amount"`
	IsWinningBid bool      `json:"isWinningBid"`
	IsAutoBid    bool      `json:"isAutoBid"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewBidResponse maps a bid entity to its API shape
func NewBidResponse(b *entity.AuctionBid) *BidResponse {
	return &BidResponse{
		ID:           b.ID,
		AuctionID:    b.AuctionID,
		BidderID:     b.BidderID,
		Amount:       b.AmountString(),
		IsWinningBid: b.IsWinningBid,
		IsAutoBid:    b.IsAutoBid,
		CreatedAt:    b.CreatedAt,
	}
}

// NewBidListResponse maps a slice of bids
func NewBidListResponse(bids []*entity.AuctionBid) []*BidResponse {
	out := make([]*BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}
