package bookingplan

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeActiveUntil(t *testing.T) {
	start := day(2026, 1, 10)
	limit := start.AddDate(0, 0, 364)
	inside := day(2026, 6, 30)

	cases := []struct {
		name      string
		requested *time.Time
		want      time.Time
	}{
		{"missing", nil, limit},
		{"before start", func() *time.Time { d := day(2025, 12, 1); return &d }(), limit},
		{"equal to start", &start, limit},
		{"inside window", &inside, inside},
		{"exactly cap", &limit, limit},
		{"beyond cap", func() *time.Time { d := limit.AddDate(0, 0, 30); return &d }(), limit},
	}

	for _, tc := range cases {
		got := NormalizeActiveUntil(start, tc.requested)
		if !got.Equal(tc.want) {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
		if got.After(limit) {
			t.Fatalf("%s: %s exceeds the cap", tc.name, got)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	for _, s := range []string{"WEEKLY", "biweekly", " Monthly "} {
		if _, err := ParseFrequency(s); err != nil {
			t.Fatalf("%q should parse: %v", s, err)
		}
	}
	for _, s := range []string{"", "DAILY", "weekly-ish"} {
		if _, err := ParseFrequency(s); httperr.KindOf(err) != httperr.KindValidation {
			t.Fatalf("%q: expected validation error, got %v", s, err)
		}
	}
}

func TestParseDates(t *testing.T) {
	if _, err := ParseStartDate("2026-13-01"); httperr.KindOf(err) != httperr.KindValidation {
		t.Fatalf("expected invalid start date to fail")
	}
	if d, err := ParseStartDate("2026-03-02"); err != nil || !d.Equal(day(2026, 3, 2)) {
		t.Fatalf("unexpected start date %v %v", d, err)
	}
	if ParseActiveUntil("garbage") != nil || ParseActiveUntil("") != nil {
		t.Fatalf("invalid active-until values must be treated as absent")
	}
}

func TestValidateOccurrenceCount(t *testing.T) {
	zero, five := 0, 5
	if ValidateOccurrenceCount(nil) != nil || ValidateOccurrenceCount(&five) != nil {
		t.Fatalf("nil and positive counts are valid")
	}
	if httperr.KindOf(ValidateOccurrenceCount(&zero)) != httperr.KindValidation {
		t.Fatalf("zero count must be rejected")
	}
}
