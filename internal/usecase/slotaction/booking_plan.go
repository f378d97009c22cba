package slotaction

import (
	"context"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/bookingplan"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

// ======================================================
// PLAN UPSERT
// ======================================================

// PlanTerms are the validated terms of a booking plan.
type PlanTerms struct {
	Frequency       bookingplan.Frequency
	StartDate       time.Time
	ActiveUntil     *time.Time
	OccurrenceCount *int
}

// ParsePlanTerms validates raw request values.
func ParsePlanTerms(
	frequency string,
	startDate string,
	activeUntil string,
	occurrenceCount *int,
) (PlanTerms, error) {

	f, err := bookingplan.ParseFrequency(frequency)
	if err != nil {
		return PlanTerms{}, err
	}

	start, err := bookingplan.ParseStartDate(startDate)
	if err != nil {
		return PlanTerms{}, err
	}

	if err := bookingplan.ValidateOccurrenceCount(occurrenceCount); err != nil {
		return PlanTerms{}, err
	}

	return PlanTerms{
		Frequency:       f,
		StartDate:       start,
		ActiveUntil:     bookingplan.ParseActiveUntil(activeUntil),
		OccurrenceCount: occurrenceCount,
	}, nil
}

// upsertActivePlan updates the assignment's active plan in place or inserts
// one. Either way the plan counts as confirmed now. It must run inside a
// transaction that holds the assignment row lock.
func upsertActivePlan(
	ctx context.Context,
	r standing.Repository,
	assignmentID uint,
	terms PlanTerms,
	now time.Time,
) (*models.BookingPlan, bool, error) {

	activeUntil := bookingplan.NormalizeActiveUntil(terms.StartDate, terms.ActiveUntil)

	plan, err := r.GetActivePlan(ctx, assignmentID)
	if err != nil {
		return nil, false, err
	}

	if plan != nil {
		plan.BookedFrequency = string(terms.Frequency)
		plan.BookingStartDate = terms.StartDate
		plan.ActiveUntilDate = activeUntil
		plan.BookedOccurrenceCount = terms.OccurrenceCount
		plan.LastConfirmedAt = &now

		if err := r.SavePlan(ctx, plan); err != nil {
			return nil, false, err
		}
		return plan, false, nil
	}

	plan = &models.BookingPlan{
		StandingAssignmentID:  assignmentID,
		BookedFrequency:       string(terms.Frequency),
		BookingStartDate:      terms.StartDate,
		ActiveUntilDate:       activeUntil,
		BookedOccurrenceCount: terms.OccurrenceCount,
		LastConfirmedAt:       &now,
		IsActive:              true,
	}
	if err := r.CreatePlan(ctx, plan); err != nil {
		return nil, false, err
	}
	return plan, true, nil
}

// ======================================================
// SET BOOKING PLAN
// ======================================================

type SetBookingPlan struct {
	repo  standing.Repository
	audit audit.Recorder
	now   Clock
}

func NewSetBookingPlan(
	repo standing.Repository,
	audit audit.Recorder,
	now Clock,
) *SetBookingPlan {
	return &SetBookingPlan{
		repo:  repo,
		audit: audit,
		now:   clockOrDefault(now),
	}
}

// Execute returns the resulting plan and whether it was newly created.
func (uc *SetBookingPlan) Execute(
	ctx context.Context,
	actor access.Actor,
	officeID uint,
	assignmentID uint,
	terms PlanTerms,
) (*models.BookingPlan, bool, error) {

	var (
		plan    *models.BookingPlan
		created bool
	)
	err := uc.repo.Transaction(ctx, func(r standing.Repository) error {
		_, a, err := lockScopedAssignment(ctx, r, actor, officeID, assignmentID)
		if err != nil {
			return err
		}

		if err := standing.RequireOwnerOrScheduler(a, actor); err != nil {
			return err
		}

		now := uc.now().UTC()
		plan, created, err = upsertActivePlan(ctx, r, a.ID, terms, now)
		if err != nil {
			return err
		}

		if standing.ConfirmByBooking(a, now) {
			return r.SaveAssignment(ctx, a)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	action := "booking_plan_updated"
	if created {
		action = "booking_plan_created"
	}
	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   action,
		Entity:   "booking_plan",
		EntityID: &plan.ID,
		Metadata: map[string]any{
			"standing_assignment_id": assignmentID,
			"booked_frequency":       plan.BookedFrequency,
		},
	})

	return plan, created, nil
}

// ======================================================
// CONFIRM BOOKING PLAN
// ======================================================

type ConfirmBookingPlan struct {
	repo  standing.Repository
	audit audit.Recorder
	now   Clock
}

func NewConfirmBookingPlan(
	repo standing.Repository,
	audit audit.Recorder,
	now Clock,
) *ConfirmBookingPlan {
	return &ConfirmBookingPlan{
		repo:  repo,
		audit: audit,
		now:   clockOrDefault(now),
	}
}

// Execute re-affirms an unchanged plan by stamping lastConfirmedAt.
func (uc *ConfirmBookingPlan) Execute(
	ctx context.Context,
	actor access.Actor,
	planID uint,
	confirmed bool,
) (*models.BookingPlan, error) {

	if !confirmed {
		return nil, httperr.ErrValidation("confirmation_required", "confirmed must be true.")
	}

	var out *models.BookingPlan
	err := uc.repo.Transaction(ctx, func(r standing.Repository) error {
		plan, err := r.LockPlan(ctx, planID)
		if err != nil {
			return err
		}

		a, err := r.GetAssignment(ctx, plan.StandingAssignmentID)
		if err != nil {
			return err
		}

		// Plans of other tenants are reported as missing.
		if _, err := r.GetOffice(ctx, actor.TenantID, a.OfficeID); err != nil {
			return httperr.ErrNotFound("booking_plan_not_found", "Booking plan not found.")
		}

		if err := standing.RequireOwner(a, actor); err != nil {
			return err
		}

		if !plan.IsActive {
			return httperr.ErrConflict("booking_plan_inactive", "The booking plan is no longer active.", nil)
		}

		now := uc.now().UTC()
		plan.LastConfirmedAt = &now
		if err := r.SavePlan(ctx, plan); err != nil {
			return err
		}

		out = plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   "booking_plan_confirmed",
		Entity:   "booking_plan",
		EntityID: &out.ID,
	})

	return out, nil
}
