package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/calendarsync"
	"github.com/BruksfildServices01/office-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/office-scheduler/internal/db"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/office-scheduler/internal/infra/cache"
	infraCalendar "github.com/BruksfildServices01/office-scheduler/internal/infra/calendar"
	infraRepo "github.com/BruksfildServices01/office-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/office-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/office-scheduler/internal/jobs"
	"github.com/BruksfildServices01/office-scheduler/internal/logging"
	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
	"github.com/BruksfildServices01/office-scheduler/internal/routes"
	"github.com/BruksfildServices01/office-scheduler/internal/timezone"
	ucCapacity "github.com/BruksfildServices01/office-scheduler/internal/usecase/capacity"
)

func main() {

	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.SlogLevel())
	slog.SetDefault(logger)

	timezone.SetDefault(cfg.DefaultTimezone)

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// CALENDAR SYNC
	// ======================================================
	var adapter calendar.Adapter = infraCalendar.Disabled{}
	if cfg.CalendarSyncURL != "" {
		adapter = infraCalendar.NewWebhookAdapter(cfg.CalendarSyncURL, cfg.CalendarSyncTimeout)
	}

	var guard calendarsync.Guard = cache.NopGuard{}
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, calendar sync guard will retry per call", "error", err)
		}
		defer client.Close()
		guard = cache.NewRedisGuard(client, "calendar-sync", 3*cfg.CalendarSyncTimeout)
	}

	syncService := calendarsync.NewService(adapter, infraRepo.NewEventSyncGormRepository(db), guard, logger)
	syncDispatcher := calendarsync.NewDispatcher(syncService, logger, cfg.CalendarSyncTimeout, 4)

	// ======================================================
	// AUDIT + ARCHIVE
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)

	var archive ucCapacity.ReportArchive = ucCapacity.NopArchive{}
	if cfg.S3Bucket != "" {
		archive = storage.NewS3Archive(storage.NewS3Client(cfg), cfg.S3Bucket)
	}

	// ======================================================
	// REPAIR SWEEP
	// ======================================================
	capacityRepo := infraRepo.NewCapacityGormRepository(db)
	sweep := jobs.NewRepairSweep(
		capacityRepo,
		ucCapacity.NewRepairSlots(capacityRepo, archive, auditDispatcher, nil),
		logger,
	)
	scheduler, err := sweep.Start(cfg.RepairCron)
	if err != nil {
		logger.Error("invalid REPAIR_CRON, repair sweep disabled", "schedule", cfg.RepairCron, "error", err)
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Audit:    auditDispatcher,
		Sync:     syncDispatcher,
		Calendar: adapter,
		Archive:  archive,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	// Requests are drained; flush what they queued.
	syncDispatcher.Close()
	auditDispatcher.Close()
}
