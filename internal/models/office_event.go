package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventStatusScheduled = "scheduled"
	EventStatusBooked    = "booked"
	EventStatusCancelled = "cancelled"

	CalendarSyncPending = "pending"
	CalendarSyncSynced  = "synced"
	CalendarSyncFailed  = "failed"
)

// OfficeEvent is a dated occurrence produced by the materialization job.
type OfficeEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OfficeID             uint  `gorm:"index;not null" json:"office_id"`
	RoomID               uint  `gorm:"not null" json:"room_id"`
	StandingAssignmentID *uint `gorm:"index" json:"standing_assignment_id"`
	ProviderID           *uint `gorm:"index" json:"provider_id"`

	StartsAt time.Time `gorm:"not null" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`

	Status     string     `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	BookedAt   *time.Time `json:"booked_at"`
	BookedByID *uint      `json:"booked_by_id"`

	CalendarID         string         `gorm:"size:255" json:"calendar_id"`
	ExternalEventID    string         `gorm:"size:255" json:"external_event_id"`
	MeetLink           string         `gorm:"size:255" json:"meet_link"`
	CalendarSyncStatus string         `gorm:"size:20" json:"calendar_sync_status"`
	CalendarSyncError  string         `gorm:"type:text" json:"calendar_sync_error"`
	CalendarSyncedAt   *time.Time     `json:"calendar_synced_at"`
	CalendarSyncResult datatypes.JSON `json:"calendar_sync_result"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
