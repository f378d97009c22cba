package slotaction

import (
	"context"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
	"github.com/BruksfildServices01/office-scheduler/internal/timezone"
)

// Clock returns the current instant; use cases default to time.Now.
type Clock func() time.Time

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// lockScopedAssignment resolves the office inside the actor's tenant and
// locks the assignment row. Out of scope lookups surface as not found.
func lockScopedAssignment(
	ctx context.Context,
	r standing.Repository,
	actor access.Actor,
	officeID uint,
	assignmentID uint,
) (*models.Office, *models.StandingAssignment, error) {

	office, err := r.GetOffice(ctx, actor.TenantID, officeID)
	if err != nil {
		return nil, nil, err
	}

	a, err := r.LockAssignment(ctx, office.ID, assignmentID)
	if err != nil {
		return nil, nil, err
	}

	return office, a, nil
}

func today(office *models.Office, now time.Time) time.Time {
	return timezone.DateIn(now, office.Timezone)
}
