package standing

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

// AssignmentFilter scopes a provider's assignment listing.
type AssignmentFilter struct {
	TenantID   uint
	ProviderID uint
	OfficeID   *uint
	ActiveOnly bool
}

type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction. Any returned error rolls it back.
	Transaction(
		ctx context.Context,
		fn func(r Repository) error,
	) error

	// -------- Office --------
	GetOffice(
		ctx context.Context,
		tenantID uint,
		officeID uint,
	) (*models.Office, error)

	// -------- Standing assignment --------
	LockAssignment(
		ctx context.Context,
		officeID uint,
		assignmentID uint,
	) (*models.StandingAssignment, error)

	GetAssignment(
		ctx context.Context,
		assignmentID uint,
	) (*models.StandingAssignment, error)

	SaveAssignment(
		ctx context.Context,
		a *models.StandingAssignment,
	) error

	ListAssignments(
		ctx context.Context,
		filter AssignmentFilter,
	) ([]models.StandingAssignment, error)

	// -------- Booking plan --------
	GetActivePlan(
		ctx context.Context,
		assignmentID uint,
	) (*models.BookingPlan, error)

	LockPlan(
		ctx context.Context,
		planID uint,
	) (*models.BookingPlan, error)

	CreatePlan(
		ctx context.Context,
		p *models.BookingPlan,
	) error

	SavePlan(
		ctx context.Context,
		p *models.BookingPlan,
	) error

	DeactivatePlansByAssignment(
		ctx context.Context,
		assignmentID uint,
	) (int64, error)

	ListActivePlans(
		ctx context.Context,
		assignmentIDs []uint,
	) ([]models.BookingPlan, error)

	// -------- Events --------
	LockEvent(
		ctx context.Context,
		officeID uint,
		eventID uint,
	) (*models.OfficeEvent, error)

	GetEvent(
		ctx context.Context,
		officeID uint,
		eventID uint,
	) (*models.OfficeEvent, error)

	SaveEvent(
		ctx context.Context,
		ev *models.OfficeEvent,
	) error
}
