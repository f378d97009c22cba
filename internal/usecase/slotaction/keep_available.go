package slotaction

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type KeepAvailable struct {
	repo  standing.Repository
	audit audit.Recorder
	now   Clock
}

func NewKeepAvailable(
	repo standing.Repository,
	audit audit.Recorder,
	now Clock,
) *KeepAvailable {
	return &KeepAvailable{
		repo:  repo,
		audit: audit,
		now:   clockOrDefault(now),
	}
}

func (uc *KeepAvailable) Execute(
	ctx context.Context,
	actor access.Actor,
	officeID uint,
	assignmentID uint,
	acknowledged bool,
) (*models.StandingAssignment, error) {

	if err := standing.RequireAcknowledged(acknowledged); err != nil {
		return nil, err
	}

	var out *models.StandingAssignment
	err := uc.repo.Transaction(ctx, func(r standing.Repository) error {
		_, a, err := lockScopedAssignment(ctx, r, actor, officeID, assignmentID)
		if err != nil {
			return err
		}

		if err := standing.RequireOwner(a, actor); err != nil {
			return err
		}

		if err := standing.KeepAvailable(a, uc.now().UTC()); err != nil {
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
		Action:   "assignment_kept_available",
		Entity:   "standing_assignment",
		EntityID: &out.ID,
	})

	return out, nil
}
