package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
)

type staticPairs []capacity.Pair

func (s staticPairs) ListActivePairs(context.Context) ([]capacity.Pair, error) { return s, nil }

type recordingRepairer struct {
	seen []capacity.Pair
	fail uint
}

func (r *recordingRepairer) Run(_ context.Context, p capacity.Pair) (capacity.RepairReport, error) {
	r.seen = append(r.seen, p)
	if p.SiteID == r.fail {
		return capacity.RepairReport{}, errors.New("lock timeout")
	}
	return capacity.RepairReport{SiteID: p.SiteID, ProviderID: p.ProviderID}, nil
}

func TestRepairSweep_ContinuesPastFailures(t *testing.T) {
	pairs := staticPairs{{SiteID: 1, ProviderID: 5}, {SiteID: 2, ProviderID: 5}, {SiteID: 3, ProviderID: 6}}
	rep := &recordingRepairer{fail: 2}

	ok, failed := NewRepairSweep(pairs, rep, nil).RunOnce(context.Background())
	if ok != 2 || failed != 1 {
		t.Fatalf("ok=%d failed=%d", ok, failed)
	}
	if len(rep.seen) != 3 {
		t.Fatalf("visited %d pairs", len(rep.seen))
	}
}

func TestRepairSweep_Start(t *testing.T) {
	s := NewRepairSweep(staticPairs{}, &recordingRepairer{}, nil)

	c, err := s.Start("")
	if err != nil || c != nil {
		t.Fatalf("empty schedule: %v %v", c, err)
	}

	if _, err := s.Start("not a cron schedule"); err == nil {
		t.Fatal("expected parse error")
	}

	c, err = s.Start("*/5 * * * *")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Stop()
}
