// Package calendarsync pushes booked events to the external calendar after
// the booking transaction has committed. Failures are recorded on the event
// and logged; they never reach the caller that booked the event.
package calendarsync

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/calendar"
)

// Store persists the outcome of a sync attempt on the event row.
type Store interface {
	RecordSyncResult(ctx context.Context, eventID uint, result calendar.Result, at time.Time) error
}

// Guard prevents two workers from pushing the same event at once. Release
// only drops the guard when token still matches the one Acquire returned.
type Guard interface {
	Acquire(ctx context.Context, eventID uint) (token string, acquired bool, err error)
	Release(ctx context.Context, eventID uint, token string) error
}

type Service struct {
	adapter calendar.Adapter
	store   Store
	guard   Guard
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(adapter calendar.Adapter, store Store, guard Guard, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		adapter: adapter,
		store:   store,
		guard:   guard,
		logger:  logger,
		now:     time.Now,
	}
}

// Sync runs one upsert attempt and records its result. The returned Result
// is informational; a skipped attempt (guard held elsewhere) returns OK=false
// with an explanatory error and records nothing.
func (s *Service) Sync(ctx context.Context, eventID uint) calendar.Result {
	log := s.logger.With("event_id", eventID)

	token, acquired, err := s.guard.Acquire(ctx, eventID)
	if err != nil {
		// Guard outage: push unguarded.
		log.Warn("calendar sync guard unavailable", "error", err)
	} else if !acquired {
		log.Info("calendar sync already in progress, skipping")
		return calendar.Result{Error: "sync already in progress"}
	} else {
		defer func() {
			if err := s.guard.Release(context.WithoutCancel(ctx), eventID, token); err != nil {
				log.Warn("calendar sync guard release failed", "error", err)
			}
		}()
	}

	result := s.adapter.Upsert(ctx, eventID)
	if !result.OK {
		log.Error("calendar sync failed", "error", result.Error)
	}

	if err := s.store.RecordSyncResult(context.WithoutCancel(ctx), eventID, result, s.now().UTC()); err != nil {
		log.Error("recording calendar sync result failed", "ok", result.OK, "error", err)
	}

	return result
}
