package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

type consumptionRow struct {
	ClientID  uint
	DayOfWeek string
}

func toConsumption(rows []consumptionRow) []capacity.Consumption {
	out := make([]capacity.Consumption, 0, len(rows))
	for _, row := range rows {
		out = append(out, capacity.Consumption{
			ClientID:  row.ClientID,
			DayOfWeek: capacity.Day(row.DayOfWeek),
		})
	}
	return out
}

// --------------------------------------------------
// Canonical: site_client_assignments
// --------------------------------------------------

type CanonicalConsumption struct {
	db *gorm.DB
}

func NewCanonicalConsumption(db *gorm.DB) *CanonicalConsumption {
	return &CanonicalConsumption{db: db}
}

func (s *CanonicalConsumption) Name() string { return "site_client_assignments" }

func (s *CanonicalConsumption) List(
	ctx context.Context,
	siteID uint,
	providerID uint,
) ([]capacity.Consumption, error) {

	var rows []consumptionRow
	if err := s.db.WithContext(ctx).
		Model(&models.SiteClientAssignment{}).
		Select("client_id", "day_of_week").
		Where("site_id = ? AND provider_id = ? AND is_active = ?", siteID, providerID, true).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toConsumption(rows), nil
}

// --------------------------------------------------
// Fallback: legacy_site_client_slots
// --------------------------------------------------

// LegacyConsumption reads the legacy table, excluding rows that the
// canonical table already represents.
type LegacyConsumption struct {
	db *gorm.DB
}

func NewLegacyConsumption(db *gorm.DB) *LegacyConsumption {
	return &LegacyConsumption{db: db}
}

func (s *LegacyConsumption) Name() string { return "legacy_site_client_slots" }

func (s *LegacyConsumption) List(
	ctx context.Context,
	siteID uint,
	providerID uint,
) ([]capacity.Consumption, error) {

	var rows []consumptionRow
	if err := s.db.WithContext(ctx).
		Table("legacy_site_client_slots AS l").
		Select("l.client_id", "l.day_of_week").
		Where("l.site_id = ? AND l.provider_id = ? AND l.active = ?", siteID, providerID, true).
		Where(`NOT EXISTS (
			SELECT 1 FROM site_client_assignments c
			WHERE c.site_id = l.site_id
			  AND c.provider_id = l.provider_id
			  AND c.client_id = l.client_id
			  AND c.day_of_week = l.day_of_week
			  AND c.is_active = ?
		)`, true).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toConsumption(rows), nil
}

var (
	_ capacity.ConsumptionSource = (*CanonicalConsumption)(nil)
	_ capacity.ConsumptionSource = (*LegacyConsumption)(nil)
)
