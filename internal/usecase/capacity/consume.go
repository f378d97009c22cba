package capacity

import (
	"context"
	"slices"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

func cellFor(cells []models.CapacityCell, day domain.Day) *models.CapacityCell {
	for i := range cells {
		if domain.Day(cells[i].DayOfWeek) == day {
			return &cells[i]
		}
	}
	return nil
}

// ======================================================
// RESERVE
// ======================================================

// ReserveSlot assigns a client to one of the provider's slots on a day and
// takes one unit of availability on the soft path.
type ReserveSlot struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewReserveSlot(
	repo domain.Repository,
	audit audit.Recorder,
) *ReserveSlot {
	return &ReserveSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReserveSlot) Execute(
	ctx context.Context,
	actor access.Actor,
	pair domain.Pair,
	clientID uint,
	dayName string,
) (*models.CapacityCell, error) {

	if err := requireScheduler(ctx, uc.repo, actor, pair); err != nil {
		return nil, err
	}

	day, err := domain.AllDays.Normalize(dayName)
	if err != nil {
		return nil, err
	}

	var out *models.CapacityCell
	err = uc.repo.Transaction(ctx, func(r domain.Repository) error {
		cells, err := r.LockCells(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}

		cell := cellFor(cells, day)
		if cell == nil || !cell.IsActive {
			return httperr.ErrConflict("day_not_configured", "The provider has no active capacity on this day.", map[string]any{"day_of_week": string(day)})
		}
		if cell.AcceptingNewClients != nil && !*cell.AcceptingNewClients {
			return httperr.ErrConflict("not_accepting_new_clients", "The provider is not accepting new clients on this day.", map[string]any{"day_of_week": string(day)})
		}

		canonical, err := r.Canonical().List(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}
		legacy, err := r.Fallback().List(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}
		for _, c := range slices.Concat(canonical, legacy) {
			if c.ClientID == clientID && c.DayOfWeek == day {
				return httperr.ErrConflict("client_already_assigned", "The client already holds a slot on this day.", nil)
			}
		}

		if cell.SlotsAvailable <= 0 {
			return httperr.ErrConflict("no_slots_available", "No slots are available on this day.", map[string]any{"day_of_week": string(day)})
		}

		if err := r.CreateConsumption(ctx, &models.SiteClientAssignment{
			SiteID:     pair.SiteID,
			ProviderID: pair.ProviderID,
			ClientID:   clientID,
			DayOfWeek:  string(day),
			IsActive:   true,
		}); err != nil {
			return err
		}

		used := domain.Used(cell.SlotsTotal, cell.SlotsAvailable) + 1
		cell.SlotsAvailable = domain.SoftAvailable(cell.SlotsTotal, used)
		if err := r.SaveCell(ctx, cell); err != nil {
			return err
		}

		out = cell
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   "client_slot_reserved",
		Entity:   "capacity_cell",
		EntityID: &out.ID,
		Metadata: map[string]any{"client_id": clientID, "day_of_week": string(day)},
	})

	return out, nil
}

// ======================================================
// RELEASE
// ======================================================

type ReleaseSlot struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewReleaseSlot(
	repo domain.Repository,
	audit audit.Recorder,
) *ReleaseSlot {
	return &ReleaseSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReleaseSlot) Execute(
	ctx context.Context,
	actor access.Actor,
	pair domain.Pair,
	clientID uint,
	dayName string,
) (*models.CapacityCell, error) {

	if err := requireScheduler(ctx, uc.repo, actor, pair); err != nil {
		return nil, err
	}

	day, err := domain.AllDays.Normalize(dayName)
	if err != nil {
		return nil, err
	}

	var out *models.CapacityCell
	err = uc.repo.Transaction(ctx, func(r domain.Repository) error {
		cells, err := r.LockCells(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}

		released, err := r.ReleaseConsumption(ctx, pair.SiteID, pair.ProviderID, clientID, day)
		if err != nil {
			return err
		}
		if released == 0 {
			return httperr.ErrNotFound("client_assignment_not_found", "The client holds no slot on this day.")
		}

		cell := cellFor(cells, day)
		if cell == nil {
			return nil
		}

		used := max(0, domain.Used(cell.SlotsTotal, cell.SlotsAvailable)-int(released))
		cell.SlotsAvailable = domain.SoftAvailable(cell.SlotsTotal, used)
		if err := r.SaveCell(ctx, cell); err != nil {
			return err
		}

		out = cell
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   "client_slot_released",
		Entity:   "capacity_cell",
		Metadata: map[string]any{"client_id": clientID, "day_of_week": string(day)},
	})

	return out, nil
}
