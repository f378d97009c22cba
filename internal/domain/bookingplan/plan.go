package bookingplan

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/timezone"
)

type Frequency string

const (
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyBiweekly Frequency = "BIWEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
)

// MaxActiveDays caps how far past its start a plan may stay active.
const MaxActiveDays = 364

func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(strings.ToUpper(strings.TrimSpace(s))); f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return f, nil
	}
	return "", httperr.ErrValidation("invalid_booked_frequency", "bookedFrequency must be WEEKLY, BIWEEKLY or MONTHLY.")
}

func ParseStartDate(s string) (time.Time, error) {
	d, err := timezone.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_booking_start_date", "bookingStartDate must be a YYYY-MM-DD date.")
	}
	return d, nil
}

// ParseActiveUntil is lenient: an unparsable value is treated as absent and
// NormalizeActiveUntil substitutes the cap.
func ParseActiveUntil(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := timezone.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &d
}

// NormalizeActiveUntil clamps the requested end date into (start, start+364d].
// Missing values and values on or before start resolve to the cap.
func NormalizeActiveUntil(start time.Time, requested *time.Time) time.Time {
	limit := start.AddDate(0, 0, MaxActiveDays)
	if requested == nil || !requested.After(start) || requested.After(limit) {
		return limit
	}
	return *requested
}

func ValidateOccurrenceCount(count *int) error {
	if count != nil && *count <= 0 {
		return httperr.ErrValidation("invalid_booked_occurrence_count", "bookedOccurrenceCount must be positive.")
	}
	return nil
}
