package entity

import "time"

// PropertyStatus represents the lifecycle state of a listed property
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
)

// Property represents a bookable lodging listing
type Property struct {
	ID               uint64
	HostID           uint64
	Title            string
	NightlyRateCents int64
	CleaningFeeCents int64
	MaxGuests        int
	Status           PropertyStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsBookable reports whether the property can accept new reservations
func (p *Property) IsBookable() bool {
	return p.Status == PropertyStatusActive
}

// NightlyRateString returns the nightly rate formatted as a decimal string
func (p *Property) NightlyRateString() string {
	return AmountInCentsToString(p.NightlyRateCents)
}
