package models

import "time"

// BookingPlan rows are unique per standing assignment while active; the
// partial index is created in db.Migrate.
type BookingPlan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StandingAssignmentID uint `gorm:"index;not null" json:"standing_assignment_id"`

	BookedFrequency       string    `gorm:"size:20;not null" json:"booked_frequency"`
	BookingStartDate      time.Time `gorm:"type:date;not null" json:"booking_start_date"`
	ActiveUntilDate       time.Time `gorm:"type:date;not null" json:"active_until_date"`
	BookedOccurrenceCount *int      `json:"booked_occurrence_count"`

	LastConfirmedAt *time.Time `json:"last_confirmed_at"`
	IsActive        bool       `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
