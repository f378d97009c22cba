package capacity

import (
	"context"
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
)

// Scope selects who is editing a pair and, with it, the configurable days.
type Scope int

const (
	// ScopeSelf is a provider editing their own affiliation.
	ScopeSelf Scope = iota
	// ScopeScheduler is staff editing any provider at a site.
	ScopeScheduler
)

type Clock func() time.Time

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// authorize checks the actor's role for the scope, then that the pair's site
// belongs to the actor's tenant.
func authorize(ctx context.Context, repo domain.Repository, actor access.Actor, pair domain.Pair, scope Scope) (domain.DaySet, error) {
	allowed, err := allowedDays(actor, pair, scope)
	if err != nil {
		return nil, err
	}
	if _, err := repo.GetSite(ctx, actor.TenantID, pair.SiteID); err != nil {
		return nil, err
	}
	return allowed, nil
}

func allowedDays(actor access.Actor, pair domain.Pair, scope Scope) (domain.DaySet, error) {
	switch scope {
	case ScopeSelf:
		if pair.ProviderID != actor.UserID {
			return nil, httperr.ErrAccessDenied("not_affiliation_owner", "Providers can only edit their own affiliation.")
		}
		return domain.Weekdays, nil
	case ScopeScheduler:
		if !actor.IsSchedulerPrivileged() {
			return nil, httperr.ErrAccessDenied("scheduler_role_required", "Only schedulers can perform this action.")
		}
		return domain.AllDays, nil
	}
	return nil, httperr.ErrAccessDenied("unknown_scope", "Access denied.")
}

func requireScheduler(ctx context.Context, repo domain.Repository, actor access.Actor, pair domain.Pair) error {
	_, err := authorize(ctx, repo, actor, pair, ScopeScheduler)
	return err
}
