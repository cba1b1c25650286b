package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuctionMinimumNextBid(t *testing.T) {
	a := &Auction{CurrentBidCents: 50000, MinIncrementCents: 1000}
	assert.Equal(t, int64(51000), a.MinimumNextBid())

	// Before any bid the floor is the start price held in CurrentBidCents
	fresh := &Auction{StartPriceCents: 20000, CurrentBidCents: 20000, MinIncrementCents: 500}
	assert.Equal(t, int64(20500), fresh.MinimumNextBid())
}

func TestAuctionIsActive(t *testing.T) {
	assert.True(t, (&Auction{Status: AuctionStatusActive}).IsActive())
	assert.False(t, (&Auction{Status: AuctionStatusScheduled}).IsActive())
	assert.False(t, (&Auction{Status: AuctionStatusEnded}).IsActive())
	assert.False(t, (&Auction{Status: AuctionStatusCancelled}).IsActive())
}

func TestAuctionDueToStart(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status AuctionStatus
		now    time.Time
		due    bool
	}{
		{"Scheduled before start", AuctionStatusScheduled, start.Add(-time.Minute), false},
		{"Scheduled exactly at start", AuctionStatusScheduled, start, true},
		{"Scheduled after start", AuctionStatusScheduled, start.Add(time.Minute), true},
		{"Already active", AuctionStatusActive, start.Add(time.Minute), false},
		{"Cancelled", AuctionStatusCancelled, start.Add(time.Minute), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Auction{Status: tc.status, StartTime: start}
			assert.Equal(t, tc.due, a.DueToStart(tc.now))
		})
	}
}

func TestAuctionDueToEnd(t *testing.T) {
	end := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)
	extended := end.Add(5 * time.Minute)
	stale := end.Add(-time.Hour)

	testCases := []struct {
		name         string
		status       AuctionStatus
		extendedTime *time.Time
		now          time.Time
		due          bool
	}{
		{"Active before end", AuctionStatusActive, nil, end.Add(-time.Minute), false},
		{"Active exactly at end", AuctionStatusActive, nil, end, true},
		{"Active after end", AuctionStatusActive, nil, end.Add(time.Minute), true},
		{"Extension keeps it open past the original end", AuctionStatusActive, &extended, end.Add(time.Minute), false},
		{"Extension expired", AuctionStatusActive, &extended, extended, true},
		{"Extension before the original end is ignored", AuctionStatusActive, &stale, end.Add(-time.Minute), false},
		{"Already ended", AuctionStatusEnded, nil, end.Add(time.Hour), false},
		{"Scheduled", AuctionStatusScheduled, nil, end.Add(time.Hour), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Auction{Status: tc.status, EndTime: end, ExtendedTime: tc.extendedTime}
			assert.Equal(t, tc.due, a.DueToEnd(tc.now))
		})
	}
}

func TestAuctionPaymentOverdue(t *testing.T) {
	deadline := time.Date(2026, 6, 3, 10, 0, 0, 0, time.UTC)
	winner := uint64(7)

	testCases := []struct {
		name             string
		status           AuctionStatus
		paymentCompleted bool
		winnerID         *uint64
		paymentDeadline  *time.Time
		now              time.Time
		overdue          bool
	}{
		{"Past deadline unpaid", AuctionStatusEnded, false, &winner, &deadline, deadline.Add(time.Minute), true},
		{"Exactly at deadline", AuctionStatusEnded, false, &winner, &deadline, deadline, false},
		{"Before deadline", AuctionStatusEnded, false, &winner, &deadline, deadline.Add(-time.Minute), false},
		{"Payment completed", AuctionStatusEnded, true, &winner, &deadline, deadline.Add(time.Minute), false},
		{"No winner", AuctionStatusEnded, false, nil, &deadline, deadline.Add(time.Minute), false},
		{"No deadline set", AuctionStatusEnded, false, &winner, nil, deadline.Add(time.Minute), false},
		{"Still active", AuctionStatusActive, false, &winner, &deadline, deadline.Add(time.Minute), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Auction{
				Status:           tc.status,
				PaymentCompleted: tc.paymentCompleted,
				WinnerID:         tc.winnerID,
				PaymentDeadline:  tc.paymentDeadline,
			}
			assert.Equal(t, tc.overdue, a.PaymentOverdue(tc.now))
		})
	}
}

func TestAuctionBidAmountString(t *testing.T) {
	b := &AuctionBid{AmountCents: 105099}
	assert.Equal(t, "1050.99", b.AmountString())
}

func TestIsValidAuctionStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "active", "ended", "cancelled"} {
		assert.True(t, IsValidAuctionStatus(s), s)
	}
	for _, s := range []string{"", "open", "ACTIVE", "closed"} {
		assert.False(t, IsValidAuctionStatus(s), s)
	}
}
