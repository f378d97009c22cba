package slotaction

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/calendarsync"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

func requireScheduler(actor access.Actor) error {
	if !actor.IsSchedulerPrivileged() {
		return httperr.ErrAccessDenied("scheduler_role_required", "Only schedulers can perform this action.")
	}
	return nil
}

// ======================================================
// STAFF BOOK EVENT
// ======================================================

type StaffBookEvent struct {
	repo  standing.Repository
	sync  calendarsync.Enqueuer
	audit audit.Recorder
	now   Clock
}

func NewStaffBookEvent(
	repo standing.Repository,
	sync calendarsync.Enqueuer,
	audit audit.Recorder,
	now Clock,
) *StaffBookEvent {
	return &StaffBookEvent{
		repo:  repo,
		sync:  sync,
		audit: audit,
		now:   clockOrDefault(now),
	}
}

// Execute marks a materialized occurrence as booked. The calendar push is
// queued only after the booking commits and its outcome never changes the
// result of this call.
func (uc *StaffBookEvent) Execute(
	ctx context.Context,
	actor access.Actor,
	officeID uint,
	eventID uint,
) (*models.OfficeEvent, error) {

	if err := requireScheduler(actor); err != nil {
		return nil, err
	}

	var out *models.OfficeEvent
	err := uc.repo.Transaction(ctx, func(r standing.Repository) error {
		office, err := r.GetOffice(ctx, actor.TenantID, officeID)
		if err != nil {
			return err
		}

		ev, err := r.LockEvent(ctx, office.ID, eventID)
		if err != nil {
			return err
		}

		if ev.ProviderID == nil {
			return httperr.ErrValidation("no_assigned_provider", "The event has no assigned provider.")
		}

		if ev.Status == models.EventStatusCancelled {
			return httperr.ErrConflict("event_cancelled", "Cancelled events cannot be booked.", nil)
		}

		if ev.StandingAssignmentID != nil {
			a, err := r.GetAssignment(ctx, *ev.StandingAssignmentID)
			if err != nil {
				return err
			}
			if !a.IsActive {
				return httperr.ErrConflict("assignment_forfeited", "The event's standing assignment has been forfeited.", nil)
			}
		}

		if ev.Status != models.EventStatusBooked {
			now := uc.now().UTC()
			ev.Status = models.EventStatusBooked
			ev.BookedAt = &now
			ev.BookedByID = &actor.UserID
		}
		ev.CalendarSyncStatus = models.CalendarSyncPending

		if err := r.SaveEvent(ctx, ev); err != nil {
			return err
		}

		out = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   "event_booked",
		Entity:   "office_event",
		EntityID: &out.ID,
	})

	uc.sync.Enqueue(out.ID)

	return out, nil
}

// ======================================================
// PREVIEW CALENDAR SYNC
// ======================================================

type PreviewCalendarSync struct {
	repo    standing.Repository
	adapter calendar.Adapter
}

func NewPreviewCalendarSync(
	repo standing.Repository,
	adapter calendar.Adapter,
) *PreviewCalendarSync {
	return &PreviewCalendarSync{
		repo:    repo,
		adapter: adapter,
	}
}

func (uc *PreviewCalendarSync) Execute(
	ctx context.Context,
	actor access.Actor,
	officeID uint,
	eventID uint,
) (calendar.Result, error) {

	if err := requireScheduler(actor); err != nil {
		return calendar.Result{}, err
	}

	office, err := uc.repo.GetOffice(ctx, actor.TenantID, officeID)
	if err != nil {
		return calendar.Result{}, err
	}

	ev, err := uc.repo.GetEvent(ctx, office.ID, eventID)
	if err != nil {
		return calendar.Result{}, err
	}

	return uc.adapter.DryRun(ctx, ev.ID), nil
}
