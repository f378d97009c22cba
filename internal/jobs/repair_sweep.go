package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/logging"
)

type pairLister interface {
	ListActivePairs(ctx context.Context) ([]capacity.Pair, error)
}

type pairRepairer interface {
	Run(ctx context.Context, pair capacity.Pair) (capacity.RepairReport, error)
}

// RepairSweep reconciles every pair that has an active cell. Each pair is
// repaired in its own transaction, so one failure does not block the rest.
type RepairSweep struct {
	pairs   pairLister
	repair  pairRepairer
	logger  *slog.Logger
	timeout time.Duration
}

func NewRepairSweep(pairs pairLister, repair pairRepairer, logger *slog.Logger) *RepairSweep {
	if logger == nil {
		logger = slog.Default()
	}
	return &RepairSweep{
		pairs:   pairs,
		repair:  repair,
		logger:  logger,
		timeout: 10 * time.Minute,
	}
}

// RunOnce returns the number of pairs repaired and failed.
func (s *RepairSweep) RunOnce(ctx context.Context) (int, int) {
	log := s.logger.With("job", "repair_sweep")
	ctx = logging.ContextWithLogger(ctx, log)

	pairs, err := s.pairs.ListActivePairs(ctx)
	if err != nil {
		log.Error("listing capacity pairs failed", "error", err)
		return 0, 0
	}

	var ok, failed int
	for _, p := range pairs {
		if ctx.Err() != nil {
			break
		}
		if _, err := s.repair.Run(ctx, p); err != nil {
			failed++
			log.Error("repair failed", "site_id", p.SiteID, "provider_id", p.ProviderID, "error", err)
			continue
		}
		ok++
	}

	log.Info("repair sweep finished", "pairs", len(pairs), "repaired", ok, "failed", failed)
	return ok, failed
}

// Start schedules the sweep. An empty schedule disables it and returns nil.
func (s *RepairSweep) Start(schedule string) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.RunOnce(ctx)
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
