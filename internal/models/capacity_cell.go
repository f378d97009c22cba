package models

import "time"

type CapacityCell struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteID     uint   `gorm:"uniqueIndex:ux_capacity_cells_site_provider_day;not null" json:"site_id"`
	ProviderID uint   `gorm:"uniqueIndex:ux_capacity_cells_site_provider_day;not null" json:"provider_id"`
	DayOfWeek  string `gorm:"uniqueIndex:ux_capacity_cells_site_provider_day;size:12;not null" json:"day_of_week"`

	SlotsTotal     int `gorm:"not null;default:0" json:"slots_total"`
	SlotsAvailable int `gorm:"not null;default:0" json:"slots_available"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	IsActive            bool  `gorm:"not null" json:"is_active"`
	AcceptingNewClients *bool `json:"accepting_new_clients"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
