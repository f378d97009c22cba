package slotaction

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type SetTemporary struct {
	repo  standing.Repository
	audit audit.Recorder
	now   Clock
}

func NewSetTemporary(
	repo standing.Repository,
	audit audit.Recorder,
	now Clock,
) *SetTemporary {
	return &SetTemporary{
		repo:  repo,
		audit: audit,
		now:   clockOrDefault(now),
	}
}

// Execute places the assignment on a temporary hold. weeks may be nil;
// see standing.NormalizeWeeks for the fallback.
func (uc *SetTemporary) Execute(
	ctx context.Context,
	actor access.Actor,
	officeID uint,
	assignmentID uint,
	weeks *float64,
) (*models.StandingAssignment, error) {

	n := standing.NormalizeWeeks(weeks)

	var out *models.StandingAssignment
	err := uc.repo.Transaction(ctx, func(r standing.Repository) error {
		office, a, err := lockScopedAssignment(ctx, r, actor, officeID, assignmentID)
		if err != nil {
			return err
		}

		if err := standing.RequireOwner(a, actor); err != nil {
			return err
		}

		now := uc.now()
		if err := standing.SetTemporary(a, n, today(office, now), now.UTC()); err != nil {
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
		Action:   "assignment_set_temporary",
		Entity:   "standing_assignment",
		EntityID: &out.ID,
		Metadata: map[string]any{"weeks": n, "until": out.TemporaryUntilDate},
	})

	return out, nil
}
