package db

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

func TestMigrate_ActivePlanIndexRejectsSecondActivePlan(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	plan := func(active bool) *models.BookingPlan {
		return &models.BookingPlan{
			StandingAssignmentID: 7,
			BookedFrequency:      "WEEKLY",
			BookingStartDate:     start,
			ActiveUntilDate:      start.AddDate(0, 0, 364),
			IsActive:             active,
		}
	}

	if err := db.Create(plan(true)).Error; err != nil {
		t.Fatalf("first active plan: %v", err)
	}
	if err := db.Create(plan(true)).Error; err == nil {
		t.Fatalf("expected second active plan to violate the partial index")
	}

	if err := db.Create(plan(false)).Error; err != nil {
		t.Fatalf("inactive plan should be allowed: %v", err)
	}

	// Migrate is re-runnable.
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
