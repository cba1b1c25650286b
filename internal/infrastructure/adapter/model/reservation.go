package model

import (
	"time"
)

// Reservation represents the database model for reservations
type Reservation struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	BookingNumber      string    `gorm:"uniqueIndex;not null;size:50"`
	PropertyID         uint64    `gorm:"not null;index:idx_reservations_property_dates,priority:1"`
	CustomerID         uint64    `gorm:"not null;index"`
	CheckIn            time.Time `gorm:"type:date;not null;index:idx_reservations_property_dates,priority:2"`
	CheckOut           time.Time `gorm:"type:date;not null;index:idx_reservations_property_dates,priority:3"`
	GuestsCount        int       `gorm:"not null"`
	BaseCents          int64     `gorm:"not null"`
	CleaningCents      int64     `gorm:"not null"`
	ServiceCents       int64     `gorm:"not null"`
	TotalCents         int64     `gorm:"not null"`
	Status             string    `gorm:"not null;size:50;index"`
	PaymentStatus      string    `gorm:"not null;size:50"`
	Version            uint64    `gorm:"not null;default:1"`
	SpecialRequests    string    `gorm:"type:text"`
	Metadata           string    `gorm:"type:jsonb;default:'{}'"`
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`

	// Define relationships
	Property Property `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName specifies the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}
