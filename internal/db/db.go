package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/office-scheduler/internal/config"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates the schema. The partial unique index allows at most one
// active plan per assignment; postgres and sqlite accept the same statement.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Office{},
		&models.Site{},
		&models.StandingAssignment{},
		&models.BookingPlan{},
		&models.CapacityCell{},
		&models.SiteClientAssignment{},
		&models.LegacySiteClientSlot{},
		&models.OfficeEvent{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_booking_plans_active_assignment
		ON booking_plans (standing_assignment_id)
		WHERE is_active = true
	`).Error; err != nil {
		return fmt.Errorf("create active plan index: %w", err)
	}

	return nil
}
