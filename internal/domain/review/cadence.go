// Package review holds the periodic re-confirmation policy for standing
// assignments and booking plans. Everything here is a pure function of the
// stored timestamps and the current time.
package review

import (
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
)

const (
	TwoWeekWindow = 14 * 24 * time.Hour
	SixWeekWindow = 42 * 24 * time.Hour
)

func NeedsTwoWeekReview(lastConfirmedAt *time.Time, now time.Time) bool {
	return lastConfirmedAt == nil || now.Sub(*lastConfirmedAt) > TwoWeekWindow
}

func NeedsSixWeekConfirm(hasActivePlan bool, lastPlanConfirmedAt *time.Time, now time.Time) bool {
	if !hasActivePlan {
		return false
	}
	return lastPlanConfirmedAt == nil || now.Sub(*lastPlanConfirmedAt) > SixWeekWindow
}

// IsTemporaryActive compares calendar dates; the hold is still in force on
// its last day.
func IsTemporaryActive(mode string, temporaryUntil *time.Time, today time.Time) bool {
	if standing.Mode(mode) != standing.ModeTemporary || temporaryUntil == nil {
		return false
	}
	return !today.After(*temporaryUntil)
}
