package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/standing"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type OfficeGormRepository struct {
	db *gorm.DB
}

func NewOfficeGormRepository(db *gorm.DB) *OfficeGormRepository {
	return &OfficeGormRepository{db: db}
}

func (r *OfficeGormRepository) Transaction(
	ctx context.Context,
	fn func(repo standing.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OfficeGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Office
// --------------------------------------------------

func (r *OfficeGormRepository) GetOffice(
	ctx context.Context,
	tenantID uint,
	officeID uint,
) (*models.Office, error) {

	var office models.Office
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", officeID, tenantID).
		First(&office).Error; err != nil {
		return nil, notFound(err, "office_not_found", "Office not found.")
	}
	return &office, nil
}

// --------------------------------------------------
// Standing assignment
// --------------------------------------------------

func (r *OfficeGormRepository) LockAssignment(
	ctx context.Context,
	officeID uint,
	assignmentID uint,
) (*models.StandingAssignment, error) {

	var a models.StandingAssignment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND office_id = ?", assignmentID, officeID).
		First(&a).Error; err != nil {
		return nil, notFound(err, "assignment_not_found", "Standing assignment not found.")
	}
	return &a, nil
}

func (r *OfficeGormRepository) GetAssignment(
	ctx context.Context,
	assignmentID uint,
) (*models.StandingAssignment, error) {

	var a models.StandingAssignment
	if err := r.db.WithContext(ctx).First(&a, assignmentID).Error; err != nil {
		return nil, notFound(err, "assignment_not_found", "Standing assignment not found.")
	}
	return &a, nil
}

func (r *OfficeGormRepository) SaveAssignment(
	ctx context.Context,
	a *models.StandingAssignment,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *OfficeGormRepository) ListAssignments(
	ctx context.Context,
	filter standing.AssignmentFilter,
) ([]models.StandingAssignment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.StandingAssignment{}).
		Joins("JOIN offices ON offices.id = standing_assignments.office_id").
		Where("offices.tenant_id = ? AND standing_assignments.provider_id = ?", filter.TenantID, filter.ProviderID)

	if filter.OfficeID != nil {
		q = q.Where("standing_assignments.office_id = ?", *filter.OfficeID)
	}
	if filter.ActiveOnly {
		q = q.Where("standing_assignments.is_active = ?", true)
	}

	var out []models.StandingAssignment
	if err := q.
		Order("standing_assignments.office_id ASC, standing_assignments.weekday ASC, standing_assignments.hour ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Booking plan
// --------------------------------------------------

// GetActivePlan returns nil, nil when the assignment has no active plan.
func (r *OfficeGormRepository) GetActivePlan(
	ctx context.Context,
	assignmentID uint,
) (*models.BookingPlan, error) {

	var p models.BookingPlan
	err := r.db.WithContext(ctx).
		Where("standing_assignment_id = ? AND is_active = ?", assignmentID, true).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OfficeGormRepository) LockPlan(
	ctx context.Context,
	planID uint,
) (*models.BookingPlan, error) {

	var p models.BookingPlan
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, planID).Error; err != nil {
		return nil, notFound(err, "booking_plan_not_found", "Booking plan not found.")
	}
	return &p, nil
}

func (r *OfficeGormRepository) CreatePlan(
	ctx context.Context,
	p *models.BookingPlan,
) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict("active_plan_exists", "Another active booking plan was created concurrently.", nil)
		}
		return err
	}
	return nil
}

func (r *OfficeGormRepository) SavePlan(
	ctx context.Context,
	p *models.BookingPlan,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *OfficeGormRepository) DeactivatePlansByAssignment(
	ctx context.Context,
	assignmentID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.BookingPlan{}).
		Where("standing_assignment_id = ? AND is_active = ?", assignmentID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *OfficeGormRepository) ListActivePlans(
	ctx context.Context,
	assignmentIDs []uint,
) ([]models.BookingPlan, error) {

	if len(assignmentIDs) == 0 {
		return []models.BookingPlan{}, nil
	}

	var plans []models.BookingPlan
	if err := r.db.WithContext(ctx).
		Where("standing_assignment_id IN ? AND is_active = ?", assignmentIDs, true).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// --------------------------------------------------
// Events
// --------------------------------------------------

func (r *OfficeGormRepository) LockEvent(
	ctx context.Context,
	officeID uint,
	eventID uint,
) (*models.OfficeEvent, error) {

	var ev models.OfficeEvent
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND office_id = ?", eventID, officeID).
		First(&ev).Error; err != nil {
		return nil, notFound(err, "event_not_found", "Event not found.")
	}
	return &ev, nil
}

func (r *OfficeGormRepository) GetEvent(
	ctx context.Context,
	officeID uint,
	eventID uint,
) (*models.OfficeEvent, error) {

	var ev models.OfficeEvent
	if err := r.db.WithContext(ctx).
		Where("id = ? AND office_id = ?", eventID, officeID).
		First(&ev).Error; err != nil {
		return nil, notFound(err, "event_not_found", "Event not found.")
	}
	return &ev, nil
}

func (r *OfficeGormRepository) SaveEvent(
	ctx context.Context,
	ev *models.OfficeEvent,
) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

func notFound(err error, code, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code, message)
	}
	return err
}

// Compile-time check
var _ standing.Repository = (*OfficeGormRepository)(nil)
