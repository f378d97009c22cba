package slotaction

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type Forfeit struct {
	repo  standing.Repository
	audit audit.Recorder
}

func NewForfeit(
	repo standing.Repository,
	audit audit.Recorder,
) *Forfeit {
	return &Forfeit{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Forfeit) Execute(
	ctx context.Context,
	actor access.Actor,
	officeID uint,
	assignmentID uint,
	acknowledged bool,
) (*models.StandingAssignment, error) {

	if err := standing.RequireAcknowledged(acknowledged); err != nil {
		return nil, err
	}

	var (
		out         *models.StandingAssignment
		plansClosed int64
	)
	err := uc.repo.Transaction(ctx, func(r standing.Repository) error {
		_, a, err := lockScopedAssignment(ctx, r, actor, officeID, assignmentID)
		if err != nil {
			return err
		}

		if err := standing.RequireOwnerOrScheduler(a, actor); err != nil {
			return err
		}

		// Validate before touching the plan so a forfeited row stays as is.
		if err := standing.Forfeit(a); err != nil {
			return err
		}

		plansClosed, err = r.DeactivatePlansByAssignment(ctx, a.ID)
		if err != nil {
			return err
		}

		if err := r.SaveAssignment(ctx, a); err != nil {
			return err
		}

		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   "assignment_forfeited",
		Entity:   "standing_assignment",
		EntityID: &out.ID,
		Metadata: map[string]any{"booking_plans_deactivated": plansClosed},
	})

	return out, nil
}
