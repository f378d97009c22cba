package testfixtures

import (
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

const (
	TenantID   uint = 1
	ProviderID uint = 42
)

func SeedOffice(t *testing.T, db *gorm.DB, tenantID uint, tz string) *models.Office {
	t.Helper()
	office := &models.Office{TenantID: tenantID, Name: "Main St", Timezone: tz}
	if err := db.Create(office).Error; err != nil {
		t.Fatalf("seed office: %v", err)
	}
	return office
}

const SiteID uint = 10

// SeedSite creates the site with a fixed id so tests can address it directly.
func SeedSite(t *testing.T, db *gorm.DB, id, tenantID uint) *models.Site {
	t.Helper()
	site := &models.Site{ID: id, TenantID: tenantID, Name: "Clinic"}
	if err := db.Create(site).Error; err != nil {
		t.Fatalf("seed site: %v", err)
	}
	return site
}

func SeedAssignment(t *testing.T, db *gorm.DB, officeID, providerID uint) *models.StandingAssignment {
	t.Helper()
	a := &models.StandingAssignment{
		OfficeID:          officeID,
		RoomID:            3,
		ProviderID:        providerID,
		Weekday:           2,
		Hour:              10,
		AssignedFrequency: "WEEKLY",
		AvailabilityMode:  "AVAILABLE",
		IsActive:          true,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return a
}

func SeedCell(t *testing.T, db *gorm.DB, siteID, providerID uint, day string, total, available int) *models.CapacityCell {
	t.Helper()
	cell := &models.CapacityCell{
		SiteID:         siteID,
		ProviderID:     providerID,
		DayOfWeek:      day,
		SlotsTotal:     total,
		SlotsAvailable: available,
		StartTime:      "09:00",
		EndTime:        "17:00",
		IsActive:       true,
	}
	if err := db.Create(cell).Error; err != nil {
		t.Fatalf("seed cell: %v", err)
	}
	return cell
}

// MustReload re-reads dest by primary key.
func MustReload[T any](t *testing.T, db *gorm.DB, dest *T, id uint) {
	t.Helper()
	if err := db.First(dest, id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
}
