package timezone

import "time"

const DateLayout = "2006-01-02"

var defaultTimezone = "America/New_York"

// SetDefault replaces the fallback zone used for offices without a valid
// timezone. Invalid names are ignored.
func SetDefault(tz string) {
	if IsValid(tz) {
		defaultTimezone = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DateIn returns the calendar date of t as observed in tz, normalized to
// midnight UTC. Calendar dates are stored and compared in this form.
func DateIn(t time.Time, tz string) time.Time {
	local := t.In(Location(tz))
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
