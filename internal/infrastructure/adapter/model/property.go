package model

import (
	"time"
)

// Property represents the database model for properties
type Property struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement"`
	HostID           uint64    `gorm:"not null;index"`
	Title            string    `gorm:"not null;size:255"`
	NightlyRateCents int64     `gorm:"not null"`
	CleaningFeeCents int64     `gorm:"not null;default:0"`
	MaxGuests        int       `gorm:"not null;default:1"`
	Status           string    `gorm:"not null;size:50;default:'active'"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}
