package standing

import (
	"math"

	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
)

// ===============================
// Availability Mode
// ===============================

type Mode string

const (
	ModeAvailable Mode = "AVAILABLE"
	ModeTemporary Mode = "TEMPORARY"
)

const (
	DefaultTemporaryWeeks = 4
	MaxTemporaryWeeks     = 52
)

// NormalizeWeeks resolves the requested hold length in whole weeks. Missing,
// non-finite or non-positive values fall back to DefaultTemporaryWeeks;
// longer holds are capped at MaxTemporaryWeeks.
func NormalizeWeeks(weeks *float64) int {
	if weeks == nil || math.IsNaN(*weeks) || math.IsInf(*weeks, 0) {
		return DefaultTemporaryWeeks
	}
	if *weeks >= MaxTemporaryWeeks {
		return MaxTemporaryWeeks
	}
	w := int(math.Floor(*weeks))
	if w <= 0 {
		return DefaultTemporaryWeeks
	}
	return w
}

// RequireAcknowledged fails unless the caller explicitly acknowledged the
// consequences of the transition.
func RequireAcknowledged(acknowledged bool) error {
	if !acknowledged {
		return httperr.ErrValidation("acknowledgement_required", "The action must be acknowledged.")
	}
	return nil
}
