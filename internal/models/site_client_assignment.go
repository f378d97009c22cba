package models

import "time"

// SiteClientAssignment is the canonical record of a client consuming one
// provider slot at a site on a given day.
type SiteClientAssignment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SiteID     uint   `gorm:"index;not null" json:"site_id"`
	ProviderID uint   `gorm:"index;not null" json:"provider_id"`
	ClientID   uint   `gorm:"not null" json:"client_id"`
	DayOfWeek  string `gorm:"size:12;not null" json:"day_of_week"`
	IsActive   bool   `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LegacySiteClientSlot predates SiteClientAssignment. Rows can exist in both
// tables for the same client and day.
type LegacySiteClientSlot struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SiteID     uint   `gorm:"index;not null" json:"site_id"`
	ProviderID uint   `gorm:"index;not null" json:"provider_id"`
	ClientID   uint   `gorm:"not null" json:"client_id"`
	DayOfWeek  string `gorm:"size:12;not null" json:"day_of_week"`
	Active     bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
