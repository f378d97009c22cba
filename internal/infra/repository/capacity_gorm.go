package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type CapacityGormRepository struct {
	db *gorm.DB
}

func NewCapacityGormRepository(db *gorm.DB) *CapacityGormRepository {
	return &CapacityGormRepository{db: db}
}

func (r *CapacityGormRepository) Transaction(
	ctx context.Context,
	fn func(repo capacity.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CapacityGormRepository{db: tx})
	})
}

func (r *CapacityGormRepository) GetSite(
	ctx context.Context,
	tenantID uint,
	siteID uint,
) (*models.Site, error) {

	var site models.Site
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", siteID, tenantID).
		First(&site).Error; err != nil {
		return nil, notFound(err, "site_not_found", "Site not found.")
	}
	return &site, nil
}

func (r *CapacityGormRepository) LockCells(
	ctx context.Context,
	siteID uint,
	providerID uint,
) ([]models.CapacityCell, error) {

	var cells []models.CapacityCell
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("site_id = ? AND provider_id = ?", siteID, providerID).
		Order("id ASC").
		Find(&cells).Error; err != nil {
		return nil, err
	}

	sortByDay(cells)
	return cells, nil
}

func (r *CapacityGormRepository) ListCells(
	ctx context.Context,
	siteID uint,
	providerID uint,
) ([]models.CapacityCell, error) {

	var cells []models.CapacityCell
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND provider_id = ?", siteID, providerID).
		Find(&cells).Error; err != nil {
		return nil, err
	}

	sortByDay(cells)
	return cells, nil
}

func (r *CapacityGormRepository) SaveCell(
	ctx context.Context,
	cell *models.CapacityCell,
) error {
	if err := r.db.WithContext(ctx).Save(cell).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict("concurrent_capacity_update", "The day was configured concurrently; retry the update.", nil)
		}
		return err
	}
	return nil
}

func (r *CapacityGormRepository) CreateConsumption(
	ctx context.Context,
	row *models.SiteClientAssignment,
) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *CapacityGormRepository) ReleaseConsumption(
	ctx context.Context,
	siteID uint,
	providerID uint,
	clientID uint,
	day capacity.Day,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.SiteClientAssignment{}).
		Where(
			"site_id = ? AND provider_id = ? AND client_id = ? AND day_of_week = ? AND is_active = ?",
			siteID, providerID, clientID, string(day), true,
		).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *CapacityGormRepository) ListActivePairs(
	ctx context.Context,
) ([]capacity.Pair, error) {

	var pairs []capacity.Pair
	if err := r.db.WithContext(ctx).
		Model(&models.CapacityCell{}).
		Distinct("site_id", "provider_id").
		Where("is_active = ?", true).
		Order("site_id ASC, provider_id ASC").
		Scan(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}

func (r *CapacityGormRepository) Canonical() capacity.ConsumptionSource {
	return NewCanonicalConsumption(r.db)
}

func (r *CapacityGormRepository) Fallback() capacity.ConsumptionSource {
	return NewLegacyConsumption(r.db)
}

func sortByDay(cells []models.CapacityCell) {
	sort.SliceStable(cells, func(i, j int) bool {
		return capacity.Order(capacity.Day(cells[i].DayOfWeek)) < capacity.Order(capacity.Day(cells[j].DayOfWeek))
	})
}

// Compile-time check
var _ capacity.Repository = (*CapacityGormRepository)(nil)
