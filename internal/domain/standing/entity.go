package standing

import (
	"time"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

// ===============================
// Authorization
// ===============================

func IsOwner(a *models.StandingAssignment, actor access.Actor) bool {
	return a.ProviderID == actor.UserID
}

func RequireOwner(a *models.StandingAssignment, actor access.Actor) error {
	if !IsOwner(a, actor) {
		return httperr.ErrAccessDenied("not_assignment_owner", "Only the assigned provider can change this assignment.")
	}
	return nil
}

func RequireOwnerOrScheduler(a *models.StandingAssignment, actor access.Actor) error {
	if IsOwner(a, actor) || actor.IsSchedulerPrivileged() {
		return nil
	}
	return httperr.ErrAccessDenied("not_owner_or_scheduler", "Only the assigned provider or a scheduler can change this assignment.")
}

// ===============================
// Transitions
// ===============================

func requireActive(a *models.StandingAssignment) error {
	if !a.IsActive {
		return httperr.ErrConflict("already_forfeited", "The assignment has been forfeited.", nil)
	}
	return nil
}

func KeepAvailable(a *models.StandingAssignment, now time.Time) error {
	if err := requireActive(a); err != nil {
		return err
	}

	a.AvailabilityMode = string(ModeAvailable)
	a.TemporaryUntilDate = nil
	a.LastTwoWeekConfirmedAt = &now
	return nil
}

// SetTemporary holds the assignment until today + weeks*7 days. Setting a
// hold counts as a two-week confirmation.
func SetTemporary(a *models.StandingAssignment, weeks int, today, now time.Time) error {
	if err := requireActive(a); err != nil {
		return err
	}

	until := today.AddDate(0, 0, weeks*7)
	a.AvailabilityMode = string(ModeTemporary)
	a.TemporaryUntilDate = &until
	a.LastTwoWeekConfirmedAt = &now
	return nil
}

// Forfeit terminates the assignment. Callers deactivate the booking plan
// first.
func Forfeit(a *models.StandingAssignment) error {
	if err := requireActive(a); err != nil {
		return err
	}

	a.IsActive = false
	return nil
}

// ConfirmByBooking stamps the two-week confirmation when a booking plan is
// set. Forfeited rows are left untouched.
func ConfirmByBooking(a *models.StandingAssignment, now time.Time) bool {
	if !a.IsActive {
		return false
	}
	a.LastTwoWeekConfirmedAt = &now
	return true
}
