package slotaction

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/review"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
	"github.com/BruksfildServices01/office-scheduler/internal/timezone"
)

type GetReviewSummary struct {
	repo standing.Repository
	now  Clock
}

func NewGetReviewSummary(
	repo standing.Repository,
	now Clock,
) *GetReviewSummary {
	return &GetReviewSummary{
		repo: repo,
		now:  clockOrDefault(now),
	}
}

// Execute aggregates the review flags of the actor's active assignments,
// optionally limited to one office. It is read only.
func (uc *GetReviewSummary) Execute(
	ctx context.Context,
	actor access.Actor,
	officeID *uint,
) (review.Summary, error) {

	var tz string
	if officeID != nil {
		office, err := uc.repo.GetOffice(ctx, actor.TenantID, *officeID)
		if err != nil {
			return review.Summary{}, err
		}
		tz = office.Timezone
	}

	assignments, err := uc.repo.ListAssignments(ctx, standing.AssignmentFilter{
		TenantID:   actor.TenantID,
		ProviderID: actor.UserID,
		OfficeID:   officeID,
		ActiveOnly: true,
	})
	if err != nil {
		return review.Summary{}, err
	}

	ids := make([]uint, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ID)
	}

	plans, err := uc.repo.ListActivePlans(ctx, ids)
	if err != nil {
		return review.Summary{}, err
	}

	byAssignment := make(map[uint]models.BookingPlan, len(plans))
	for _, p := range plans {
		byAssignment[p.StandingAssignmentID] = p
	}

	now := uc.now()
	return review.Build(assignments, byAssignment, now.UTC(), timezone.DateIn(now, tz)), nil
}
