package review

import (
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type PlanStatus struct {
	ID                    uint       `json:"id"`
	BookedFrequency       string     `json:"booked_frequency"`
	BookingStartDate      string     `json:"booking_start_date"`
	ActiveUntilDate       string     `json:"active_until_date"`
	BookedOccurrenceCount *int       `json:"booked_occurrence_count"`
	LastConfirmedAt       *time.Time `json:"last_confirmed_at"`
}

type AssignmentReview struct {
	AssignmentID           uint        `json:"assignment_id"`
	OfficeID               uint        `json:"office_id"`
	RoomID                 uint        `json:"room_id"`
	Weekday                int         `json:"weekday"`
	Hour                   int         `json:"hour"`
	AvailabilityMode       string      `json:"availability_mode"`
	TemporaryUntilDate     *string     `json:"temporary_until_date"`
	TemporaryActive        bool        `json:"temporary_active"`
	LastTwoWeekConfirmedAt *time.Time  `json:"last_two_week_confirmed_at"`
	NeedsTwoWeekReview     bool        `json:"needs_two_week_review"`
	NeedsSixWeekConfirm    bool        `json:"needs_six_week_confirm"`
	BookingPlan            *PlanStatus `json:"booking_plan"`
}

type Summary struct {
	NeedsTwoWeekReview  int                `json:"needs_two_week_review"`
	NeedsSixWeekConfirm int                `json:"needs_six_week_confirm"`
	TemporaryActive     int                `json:"temporary_active"`
	Assignments         []AssignmentReview `json:"assignments"`
}

// Build evaluates every assignment against the cadence rules. plans is keyed
// by standing assignment id and holds active plans only.
func Build(
	assignments []models.StandingAssignment,
	plans map[uint]models.BookingPlan,
	now time.Time,
	today time.Time,
) Summary {
	out := Summary{Assignments: make([]AssignmentReview, 0, len(assignments))}

	for _, a := range assignments {
		plan, hasPlan := plans[a.ID]

		item := AssignmentReview{
			AssignmentID:           a.ID,
			OfficeID:               a.OfficeID,
			RoomID:                 a.RoomID,
			Weekday:                a.Weekday,
			Hour:                   a.Hour,
			AvailabilityMode:       a.AvailabilityMode,
			TemporaryActive:        IsTemporaryActive(a.AvailabilityMode, a.TemporaryUntilDate, today),
			LastTwoWeekConfirmedAt: a.LastTwoWeekConfirmedAt,
			NeedsTwoWeekReview:     NeedsTwoWeekReview(a.LastTwoWeekConfirmedAt, now),
		}
		if a.TemporaryUntilDate != nil {
			s := a.TemporaryUntilDate.Format("2006-01-02")
			item.TemporaryUntilDate = &s
		}

		var lastPlanConfirm *time.Time
		if hasPlan {
			lastPlanConfirm = plan.LastConfirmedAt
			item.BookingPlan = &PlanStatus{
				ID:                    plan.ID,
				BookedFrequency:       plan.BookedFrequency,
				BookingStartDate:      plan.BookingStartDate.Format("2006-01-02"),
				ActiveUntilDate:       plan.ActiveUntilDate.Format("2006-01-02"),
				BookedOccurrenceCount: plan.BookedOccurrenceCount,
				LastConfirmedAt:       plan.LastConfirmedAt,
			}
		}
		item.NeedsSixWeekConfirm = NeedsSixWeekConfirm(hasPlan, lastPlanConfirm, now)

		if item.NeedsTwoWeekReview {
			out.NeedsTwoWeekReview++
		}
		if item.NeedsSixWeekConfirm {
			out.NeedsSixWeekConfirm++
		}
		if item.TemporaryActive {
			out.TemporaryActive++
		}
		out.Assignments = append(out.Assignments, item)
	}

	return out
}
