package capacity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

// DayInput is one entry of a per-day capacity update.
type DayInput struct {
	DayOfWeek           string
	StartTime           *string
	EndTime             *string
	SlotsTotal          *int
	IsActive            bool
	AcceptingNewClients *bool
}

// DayReport is the per-day outcome of a repair.
type DayReport struct {
	DayOfWeek       string `json:"day_of_week"`
	SlotsTotal      int    `json:"slots_total"`
	Used            int    `json:"used"`
	AvailableBefore int    `json:"available_before"`
	AvailableAfter  int    `json:"available_after"`
}

// Used derives consumed capacity from the stored counters.
func Used(total, available int) int {
	return max(0, total-available)
}

// SoftAvailable is the availability written by routine edits. It never goes
// negative.
func SoftAvailable(total, used int) int {
	return max(0, total-used)
}

// RepairAvailable is the availability written by reconciliation. It is not
// clamped, so overbooking shows up as a negative balance.
func RepairAvailable(total, used int) int {
	return total - used
}

// ParseClock parses HH:MM into minutes after midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// DefaultTotal is one slot per started hour of the window.
func DefaultTotal(minutes int) int {
	return (minutes + 59) / 60
}

// ApplyDay validates in and writes the soft-path result onto cell. cell is
// the locked existing row or a fresh row for the day; the returned used
// count is carried forward from before the edit.
func ApplyDay(cell *models.CapacityCell, in DayInput, day Day) (int, error) {
	used := Used(cell.SlotsTotal, cell.SlotsAvailable)

	start, end := cell.StartTime, cell.EndTime
	if in.StartTime != nil {
		start = strings.TrimSpace(*in.StartTime)
	}
	if in.EndTime != nil {
		end = strings.TrimSpace(*in.EndTime)
	}

	total := cell.SlotsTotal
	if start != "" && end != "" {
		startMin, err := ParseClock(start)
		if err != nil {
			return used, invalidTime(day, "startTime", start)
		}
		endMin, err := ParseClock(end)
		if err != nil {
			return used, invalidTime(day, "endTime", end)
		}
		if endMin <= startMin {
			return used, httperr.BusinessError{
				Kind:    httperr.KindValidation,
				Code:    "end_before_start",
				Message: "endTime must be after startTime.",
				Details: map[string]any{"day_of_week": string(day)},
			}
		}
		if in.SlotsTotal == nil && (in.StartTime != nil || in.EndTime != nil) {
			total = DefaultTotal(endMin - startMin)
		}
	}

	if in.SlotsTotal != nil {
		if *in.SlotsTotal < 0 {
			return used, httperr.BusinessError{
				Kind:    httperr.KindValidation,
				Code:    "invalid_slots_total",
				Message: "slotsTotal must not be negative.",
				Details: map[string]any{"day_of_week": string(day)},
			}
		}
		total = *in.SlotsTotal
	}

	if !in.IsActive && used > 0 {
		return used, httperr.ErrConflict(
			"capacity_in_use",
			fmt.Sprintf("%s has %d slot(s) in use and cannot be deactivated.", day, used),
			map[string]any{"day_of_week": string(day), "in_use": used},
		)
	}

	cell.DayOfWeek = string(day)
	cell.StartTime = start
	cell.EndTime = end
	cell.SlotsTotal = total
	cell.SlotsAvailable = SoftAvailable(total, used)
	cell.IsActive = in.IsActive
	if in.AcceptingNewClients != nil {
		cell.AcceptingNewClients = in.AcceptingNewClients
	}

	return used, nil
}

func invalidTime(day Day, field, value string) error {
	return httperr.BusinessError{
		Kind:    httperr.KindValidation,
		Code:    "invalid_time",
		Message: field + " must be HH:MM.",
		Details: map[string]any{"day_of_week": string(day), "field": field, "value": value},
	}
}

// Reconcile rewrites cells from ground-truth usage and reports each change.
// cells are expected to be locked by the caller.
func Reconcile(cells []models.CapacityCell, usedByDay map[Day]int) []DayReport {
	out := make([]DayReport, 0, len(cells))
	for i := range cells {
		cell := &cells[i]
		used := usedByDay[Day(cell.DayOfWeek)]
		before := cell.SlotsAvailable
		cell.SlotsAvailable = RepairAvailable(cell.SlotsTotal, used)

		out = append(out, DayReport{
			DayOfWeek:       cell.DayOfWeek,
			SlotsTotal:      cell.SlotsTotal,
			Used:            used,
			AvailableBefore: before,
			AvailableAfter:  cell.SlotsAvailable,
		})
	}
	return out
}

// RepairReport is the outcome of one reconciliation run for a pair.
type RepairReport struct {
	RunID      string      `json:"run_id"`
	SiteID     uint        `json:"site_id"`
	ProviderID uint        `json:"provider_id"`
	RanAt      time.Time   `json:"ran_at"`
	Sources    []string    `json:"sources"`
	Days       []DayReport `json:"days"`
	ArchiveKey string      `json:"archive_key,omitempty"`
}
