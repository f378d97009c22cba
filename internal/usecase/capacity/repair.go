package capacity

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/logging"
)

// ReportArchive keeps a copy of each repair report for later inspection.
type ReportArchive interface {
	Put(ctx context.Context, report domain.RepairReport) (string, error)
}

type NopArchive struct{}

func (NopArchive) Put(context.Context, domain.RepairReport) (string, error) { return "", nil }

type RepairSlots struct {
	repo    domain.Repository
	archive ReportArchive
	audit   audit.Recorder
	now     Clock
}

func NewRepairSlots(
	repo domain.Repository,
	archive ReportArchive,
	audit audit.Recorder,
	now Clock,
) *RepairSlots {
	if archive == nil {
		archive = NopArchive{}
	}
	return &RepairSlots{
		repo:    repo,
		archive: archive,
		audit:   audit,
		now:     clockOrDefault(now),
	}
}

// Execute is the staff entry point.
func (uc *RepairSlots) Execute(
	ctx context.Context,
	actor access.Actor,
	pair domain.Pair,
) (domain.RepairReport, error) {

	if err := requireScheduler(ctx, uc.repo, actor, pair); err != nil {
		return domain.RepairReport{}, err
	}

	report, err := uc.Run(ctx, pair)
	if err != nil {
		return domain.RepairReport{}, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		UserID:   &actor.UserID,
		Action:   "capacity_repaired",
		Entity:   "capacity_cell",
		Metadata: report,
	})

	return report, nil
}

// Run reconciles every cell of the pair against ground-truth consumption
// and archives the report after commit. An archive failure is logged and
// leaves ArchiveKey empty.
func (uc *RepairSlots) Run(
	ctx context.Context,
	pair domain.Pair,
) (domain.RepairReport, error) {

	report := domain.RepairReport{
		RunID:      uuid.NewString(),
		SiteID:     pair.SiteID,
		ProviderID: pair.ProviderID,
		RanAt:      uc.now().UTC(),
	}

	err := uc.repo.Transaction(ctx, func(r domain.Repository) error {
		cells, err := r.LockCells(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}

		canonicalSrc, fallbackSrc := r.Canonical(), r.Fallback()

		canonical, err := canonicalSrc.List(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}
		fallback, err := fallbackSrc.List(ctx, pair.SiteID, pair.ProviderID)
		if err != nil {
			return err
		}

		report.Sources = []string{canonicalSrc.Name(), fallbackSrc.Name()}
		report.Days = domain.Reconcile(cells, domain.MergeConsumption(canonical, fallback))

		for i := range cells {
			if err := r.SaveCell(ctx, &cells[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.RepairReport{}, err
	}

	log := logging.FromContext(ctx).With("run_id", report.RunID, "site_id", pair.SiteID, "provider_id", pair.ProviderID)

	key, err := uc.archive.Put(ctx, report)
	if err != nil {
		log.Warn("repair report archive failed", "error", err)
	}
	report.ArchiveKey = key

	log.Info("capacity repaired", "days", len(report.Days))
	return report, nil
}
