package calendarsync

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Enqueuer schedules a sync without blocking the caller.
type Enqueuer interface {
	Enqueue(eventID uint)
}

type Dispatcher struct {
	service *Service
	logger  *slog.Logger
	timeout time.Duration
	queue   chan uint
	wg      sync.WaitGroup
}

func NewDispatcher(service *Service, logger *slog.Logger, timeout time.Duration, workers int) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 1
	}
	d := &Dispatcher{
		service: service,
		logger:  logger,
		timeout: timeout,
		queue:   make(chan uint, 100),
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for eventID := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		d.service.Sync(ctx, eventID)
		cancel()
	}
}

// Enqueue drops the request when the queue is full; the event keeps its
// pending sync status so it can be retried by hand.
func (d *Dispatcher) Enqueue(eventID uint) {
	select {
	case d.queue <- eventID:
	default:
		d.logger.Warn("calendar sync queue full, leaving event pending", "event_id", eventID)
	}
}

// Close drains queued syncs and stops the workers.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

// Inline runs the sync on the caller's goroutine after the caller has
// committed. Used in tests and single-shot tools.
type Inline struct {
	Service *Service
}

func (i Inline) Enqueue(eventID uint) {
	i.Service.Sync(context.Background(), eventID)
}

var (
	_ Enqueuer = (*Dispatcher)(nil)
	_ Enqueuer = Inline{}
)
