package model

import (
	"time"
)

// Auction represents the database model for auctions
type Auction struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	PropertyID        uint64    `gorm:"not null;index"`
	HostID            uint64    `gorm:"not null;index"`
	CheckIn           time.Time `gorm:"type:date;not null"`
	CheckOut          time.Time `gorm:"type:date;not null"`
	StartPriceCents   int64     `gorm:"not null"`
	CurrentBidCents   int64     `gorm:"not null"`
	MinIncrementCents int64     `gorm:"not null"`
	StartTime         time.Time `gorm:"not null;index"`
	EndTime           time.Time `gorm:"not null;index"`
	ExtendedTime      *time.Time
	Status            string `gorm:"not null;size:50;index"`
	WinnerID          *uint64
	BidsCount         int  `gorm:"not null;default:0"`
	ParticipantsCount int  `gorm:"not null;default:0"`
	PaymentCompleted  bool `gorm:"not null;default:false"`
	PaymentDeadline   *time.Time
	MaxGuests         int       `gorm:"not null;default:1"`
	Description       string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`

	// Define relationships
	Property Property `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName specifies the table name for Auction
func (Auction) TableName() string {
	return "auctions"
}
