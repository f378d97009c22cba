package capacity

import (
	"strings"

	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
)

type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// DaySet is the set of day names a caller may configure.
type DaySet []Day

var (
	// Weekdays is the provider and site self-service set.
	Weekdays = DaySet{Monday, Tuesday, Wednesday, Thursday, Friday}
	// AllDays is available to scheduler driven configuration.
	AllDays = DaySet{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
)

var dayOrder = map[Day]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3, Friday: 4, Saturday: 5, Sunday: 6,
}

// Normalize accepts full or three-letter day names in any case.
func (s DaySet) Normalize(name string) (Day, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, d := range s {
		if n == string(d) || (len(n) == 3 && strings.HasPrefix(string(d), n)) {
			return d, nil
		}
	}
	return "", httperr.BusinessError{
		Kind:    httperr.KindValidation,
		Code:    "invalid_day_of_week",
		Message: "dayOfWeek is not one of the configurable days.",
		Details: map[string]any{"day_of_week": name},
	}
}

// Order returns the position of d in the week, Monday first.
func Order(d Day) int {
	if o, ok := dayOrder[d]; ok {
		return o
	}
	return len(dayOrder)
}
