package models

import "time"

type StandingAssignment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OfficeID   uint `gorm:"index;not null" json:"office_id"`
	RoomID     uint `gorm:"not null" json:"room_id"`
	ProviderID uint `gorm:"index;not null" json:"provider_id"`

	Weekday int `gorm:"not null" json:"weekday"`
	Hour    int `gorm:"not null" json:"hour"`

	AssignedFrequency string `gorm:"size:20" json:"assigned_frequency"`

	AvailabilityMode   string     `gorm:"size:20;not null;default:'AVAILABLE'" json:"availability_mode"`
	TemporaryUntilDate *time.Time `gorm:"type:date" json:"temporary_until_date"`
	AvailableSinceDate *time.Time `gorm:"type:date" json:"available_since_date"`

	LastTwoWeekConfirmedAt *time.Time `json:"last_two_week_confirmed_at"`
	LastSixWeekCheckedAt   *time.Time `json:"last_six_week_checked_at"`

	IsActive bool `gorm:"not null;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
