package capacity

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type SetDays struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewSetDays(
	repo domain.Repository,
	audit audit.Recorder,
) *SetDays {
	return &SetDays{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a batch of day edits in one transaction. The first failing
// day aborts the batch and nothing is written.
func (uc *SetDays) Execute(
	ctx context.Context,
	actor access.Actor,
	pair domain.Pair,
	scope Scope,
	inputs []domain.DayInput,
) ([]models.CapacityCell, error) {

	allowed, err := authorize(ctx, uc.repo, actor, pair, scope)
	if err != nil {
		return nil, err
	}

	var out []models.CapacityCell
	err = uc.repo.Transaction(ctx, func(r domain.Repository) error {
		cells, err := r.LockCells(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}

		byDay := make(map[domain.Day]*models.CapacityCell, len(cells))
		for i := range cells {
			byDay[domain.Day(cells[i].DayOfWeek)] = &cells[i]
		}

		for _, in := range inputs {
			day, err := allowed.Normalize(in.DayOfWeek)
			if err != nil {
				return err
			}

			cell, ok := byDay[day]
			if !ok {
				cell = &models.CapacityCell{
					SiteID:     pair.SiteID,
					ProviderID: pair.ProviderID,
					DayOfWeek:  string(day),
				}
				byDay[day] = cell
			}

			if _, err := domain.ApplyDay(cell, in, day); err != nil {
				return err
			}

			if err := r.SaveCell(ctx, cell); err != nil {
				return err
			}
		}

		out, err = r.ListCells(ctx, pair.SiteID, pair.ProviderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	days := make([]string, 0, len(inputs))
	for _, in := range inputs {
		days = append(days, in.DayOfWeek)
	}
	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   "capacity_days_updated",
		Entity:   "capacity_cell",
		Metadata: map[string]any{
			"site_id":     pair.SiteID,
			"provider_id": pair.ProviderID,
			"days":        days,
		},
	})

	return out, nil
}

// ======================================================
// LIST
// ======================================================

type ListDays struct {
	repo domain.Repository
}

func NewListDays(repo domain.Repository) *ListDays {
	return &ListDays{repo: repo}
}

func (uc *ListDays) Execute(
	ctx context.Context,
	actor access.Actor,
	pair domain.Pair,
	scope Scope,
) ([]models.CapacityCell, error) {

	if _, err := authorize(ctx, uc.repo, actor, pair, scope); err != nil {
		return nil, err
	}
	return uc.repo.ListCells(ctx, pair.SiteID, pair.ProviderID)
}
