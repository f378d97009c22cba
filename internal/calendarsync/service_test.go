package calendarsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/calendar"
)

type fakeAdapter struct {
	result calendar.Result
	calls  int
	mu     sync.Mutex
}

func (f *fakeAdapter) Upsert(context.Context, uint) calendar.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.result
}

func (f *fakeAdapter) DryRun(context.Context, uint) calendar.Result {
	return calendar.Result{OK: true, CalendarID: "preview"}
}

type fakeStore struct {
	mu      sync.Mutex
	results map[uint]calendar.Result
	err     error
}

func (f *fakeStore) RecordSyncResult(_ context.Context, eventID uint, r calendar.Result, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.results == nil {
		f.results = map[uint]calendar.Result{}
	}
	f.results[eventID] = r
	return f.err
}

type heldGuard struct{ err error }

func (g heldGuard) Acquire(context.Context, uint) (string, bool, error) { return "", false, g.err }
func (heldGuard) Release(context.Context, uint, string) error            { return nil }

type openGuard struct {
	released []uint
	tokens   []string
}

func (g *openGuard) Acquire(_ context.Context, id uint) (string, bool, error) {
	return fmt.Sprintf("tok-%d", id), true, nil
}
func (g *openGuard) Release(_ context.Context, id uint, token string) error {
	g.released = append(g.released, id)
	g.tokens = append(g.tokens, token)
	return nil
}

func TestSync_RecordsFailureWithoutPanicking(t *testing.T) {
	adapter := &fakeAdapter{result: calendar.Result{Error: "quota exceeded"}}
	store := &fakeStore{}
	guard := &openGuard{}

	res := NewService(adapter, store, guard, nil).Sync(context.Background(), 5)

	if res.OK {
		t.Fatalf("expected failure result")
	}
	if got := store.results[5]; got.Error != "quota exceeded" {
		t.Fatalf("expected failure recorded, got %+v", got)
	}
	if len(guard.released) != 1 || guard.released[0] != 5 || guard.tokens[0] != "tok-5" {
		t.Fatalf("expected guard released for event 5 with its token, got %v %v", guard.released, guard.tokens)
	}
}

func TestSync_SkipsWhenGuardHeld(t *testing.T) {
	adapter := &fakeAdapter{result: calendar.Result{OK: true}}
	store := &fakeStore{}

	NewService(adapter, store, heldGuard{}, nil).Sync(context.Background(), 5)

	if adapter.calls != 0 || len(store.results) != 0 {
		t.Fatalf("held guard must skip the push")
	}
}

func TestSync_GuardErrorStillPushes(t *testing.T) {
	adapter := &fakeAdapter{result: calendar.Result{OK: true, ExternalEventID: "x"}}
	store := &fakeStore{err: errors.New("db gone")}

	res := NewService(adapter, store, heldGuard{err: errors.New("redis down")}, nil).Sync(context.Background(), 9)

	if !res.OK || adapter.calls != 1 {
		t.Fatalf("expected push despite guard error, got %+v calls=%d", res, adapter.calls)
	}
}

func TestDispatcher_ProcessesQueue(t *testing.T) {
	adapter := &fakeAdapter{result: calendar.Result{OK: true}}
	store := &fakeStore{}
	svc := NewService(adapter, store, &openGuard{}, nil)

	d := NewDispatcher(svc, nil, time.Second, 1)
	d.Enqueue(1)
	d.Enqueue(2)
	d.Close()

	if adapter.calls != 2 || len(store.results) != 2 {
		t.Fatalf("expected both events synced, calls=%d results=%d", adapter.calls, len(store.results))
	}
}
