package capacity

import "context"

// Consumption is one client occupying one provider slot on a day.
type Consumption struct {
	ClientID  uint
	DayOfWeek Day
}

// ConsumptionSource lists ground-truth consumption for a (site, provider)
// pair. The canonical source and the legacy fallback source both implement
// it.
type ConsumptionSource interface {
	Name() string
	List(ctx context.Context, siteID, providerID uint) ([]Consumption, error)
}

// MergeConsumption counts usage per day. A fallback record whose
// (client, day) already appears in canonical is excluded, so a client
// present in both tables is counted once.
func MergeConsumption(canonical, fallback []Consumption) map[Day]int {
	seen := make(map[Consumption]struct{}, len(canonical)+len(fallback))
	used := make(map[Day]int)

	for _, c := range canonical {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		used[c.DayOfWeek]++
	}

	for _, c := range fallback {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		used[c.DayOfWeek]++
	}

	return used
}
