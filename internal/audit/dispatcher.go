package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	TenantID uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder accepts audit events without blocking the caller.
type Recorder interface {
	Dispatch(ev Event)
}

type sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink   sink
	logger *slog.Logger
	queue  chan Event
	wg     sync.WaitGroup
}

func NewDispatcher(logger *Logger, log *slog.Logger) *Dispatcher {
	return newDispatcher(logger, log, 100)
}

func newDispatcher(s sink, log *slog.Logger, size int) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		sink:   s,
		logger: log,
		queue:  make(chan Event, size),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "entity", ev.Entity, "error", err)
		}
	}
}

// Dispatch never blocks: when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action, "entity", ev.Entity)
	}
}

// Close drains pending events and stops the worker. Dispatch must not be
// called afterwards.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

// Nop discards events.
type Nop struct{}

func (Nop) Dispatch(Event) {}
