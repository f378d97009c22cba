package dto

import (
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/models"
	"github.com/BruksfildServices01/office-scheduler/internal/timezone"
)

type AssignmentDTO struct {
	ID                     uint       `json:"id"`
	OfficeID               uint       `json:"officeId"`
	RoomID                 uint       `json:"roomId"`
	ProviderID             uint       `json:"providerId"`
	Weekday                int        `json:"weekday"`
	Hour                   int        `json:"hour"`
	AvailabilityMode       string     `json:"availabilityMode"`
	TemporaryUntilDate     *string    `json:"temporaryUntilDate"`
	LastTwoWeekConfirmedAt *time.Time `json:"lastTwoWeekConfirmedAt"`
	IsActive               bool       `json:"isActive"`
}

type BookingPlanDTO struct {
	ID                    uint       `json:"id"`
	StandingAssignmentID  uint       `json:"standingAssignmentId"`
	BookedFrequency       string     `json:"bookedFrequency"`
	BookingStartDate      string     `json:"bookingStartDate"`
	ActiveUntilDate       string     `json:"activeUntilDate"`
	BookedOccurrenceCount *int       `json:"bookedOccurrenceCount"`
	LastConfirmedAt       *time.Time `json:"lastConfirmedAt"`
	IsActive              bool       `json:"isActive"`
}

type EventDTO struct {
	ID                   uint       `json:"id"`
	OfficeID             uint       `json:"officeId"`
	RoomID               uint       `json:"roomId"`
	StandingAssignmentID *uint      `json:"standingAssignmentId"`
	ProviderID           *uint      `json:"providerId"`
	StartsAt             time.Time  `json:"startsAt"`
	EndsAt               time.Time  `json:"endsAt"`
	Status               string     `json:"status"`
	BookedAt             *time.Time `json:"bookedAt"`
	BookedByID           *uint      `json:"bookedById"`
	CalendarSyncStatus   string     `json:"calendarSyncStatus"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timezone.FormatDate(*t)
	return &s
}

func NewAssignmentDTO(a *models.StandingAssignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                     a.ID,
		OfficeID:               a.OfficeID,
		RoomID:                 a.RoomID,
		ProviderID:             a.ProviderID,
		Weekday:                a.Weekday,
		Hour:                   a.Hour,
		AvailabilityMode:       a.AvailabilityMode,
		TemporaryUntilDate:     formatDatePtr(a.TemporaryUntilDate),
		LastTwoWeekConfirmedAt: a.LastTwoWeekConfirmedAt,
		IsActive:               a.IsActive,
	}
}

func NewBookingPlanDTO(p *models.BookingPlan) BookingPlanDTO {
	return BookingPlanDTO{
		ID:                    p.ID,
		StandingAssignmentID:  p.StandingAssignmentID,
		BookedFrequency:       p.BookedFrequency,
		BookingStartDate:      timezone.FormatDate(p.BookingStartDate),
		ActiveUntilDate:       timezone.FormatDate(p.ActiveUntilDate),
		BookedOccurrenceCount: p.BookedOccurrenceCount,
		LastConfirmedAt:       p.LastConfirmedAt,
		IsActive:              p.IsActive,
	}
}

func NewEventDTO(ev *models.OfficeEvent) EventDTO {
	return EventDTO{
		ID:                   ev.ID,
		OfficeID:             ev.OfficeID,
		RoomID:               ev.RoomID,
		StandingAssignmentID: ev.StandingAssignmentID,
		ProviderID:           ev.ProviderID,
		StartsAt:             ev.StartsAt,
		EndsAt:               ev.EndsAt,
		Status:               ev.Status,
		BookedAt:             ev.BookedAt,
		BookedByID:           ev.BookedByID,
		CalendarSyncStatus:   ev.CalendarSyncStatus,
	}
}
