package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/calendarsync"
	"github.com/BruksfildServices01/office-scheduler/internal/config"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/office-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/office-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
	ucCapacity "github.com/BruksfildServices01/office-scheduler/internal/usecase/capacity"
	ucSlot "github.com/BruksfildServices01/office-scheduler/internal/usecase/slotaction"
)

// Deps are the process level collaborators built in main.
type Deps struct {
	Audit    audit.Recorder
	Sync     calendarsync.Enqueuer
	Calendar calendar.Adapter
	Archive  ucCapacity.ReportArchive
	// Clock defaults to time.Now when nil.
	Clock func() time.Time
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	officeRepo := infraRepo.NewOfficeGormRepository(db)
	capacityRepo := infraRepo.NewCapacityGormRepository(db)

	// ======================================================
	// USE CASES: SLOT ACTIONS
	// ======================================================
	keepAvailableUC := ucSlot.NewKeepAvailable(officeRepo, deps.Audit, deps.Clock)
	setTemporaryUC := ucSlot.NewSetTemporary(officeRepo, deps.Audit, deps.Clock)
	forfeitUC := ucSlot.NewForfeit(officeRepo, deps.Audit)
	setPlanUC := ucSlot.NewSetBookingPlan(officeRepo, deps.Audit, deps.Clock)
	confirmPlanUC := ucSlot.NewConfirmBookingPlan(officeRepo, deps.Audit, deps.Clock)
	bookEventUC := ucSlot.NewStaffBookEvent(officeRepo, deps.Sync, deps.Audit, deps.Clock)
	previewUC := ucSlot.NewPreviewCalendarSync(officeRepo, deps.Calendar)
	summaryUC := ucSlot.NewGetReviewSummary(officeRepo, deps.Clock)

	// ======================================================
	// USE CASES: CAPACITY
	// ======================================================
	listDaysUC := ucCapacity.NewListDays(capacityRepo)
	setDaysUC := ucCapacity.NewSetDays(capacityRepo, deps.Audit)
	repairUC := ucCapacity.NewRepairSlots(capacityRepo, deps.Archive, deps.Audit, deps.Clock)
	reserveUC := ucCapacity.NewReserveSlot(capacityRepo, deps.Audit)
	releaseUC := ucCapacity.NewReleaseSlot(capacityRepo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	assignmentHandler := handlers.NewAssignmentHandler(keepAvailableUC, setTemporaryUC, forfeitUC, setPlanUC)
	eventHandler := handlers.NewEventHandler(bookEventUC, previewUC)
	reviewHandler := handlers.NewReviewHandler(summaryUC, confirmPlanUC)
	capacityHandler := handlers.NewCapacityHandler(listDaysUC, setDaysUC, repairUC, reserveUC, releaseUC)
	meHandler := handlers.NewMeHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.GetMe)
		api.GET("/audit-logs", middleware.RequireScheduler(), auditLogsHandler.List)

		// ------------------------------
		// OFFICE ASSIGNMENTS
		// ------------------------------
		assignments := api.Group("/offices/:officeId/assignments/:assignmentId")
		{
			assignments.POST("/keep-available", assignmentHandler.KeepAvailable)
			assignments.POST("/temporary", assignmentHandler.SetTemporary)
			assignments.POST("/forfeit", assignmentHandler.Forfeit)
			assignments.POST("/booking-plan", assignmentHandler.SetBookingPlan)
		}

		// ------------------------------
		// EVENTS (staff)
		// ------------------------------
		events := api.Group("/offices/:officeId/events/:eventId", middleware.RequireScheduler())
		{
			events.POST("/book", eventHandler.Book)
			events.GET("/calendar-preview", eventHandler.CalendarPreview)
		}

		// ------------------------------
		// REVIEW
		// ------------------------------
		api.GET("/me/office-review/summary", reviewHandler.Summary)
		api.POST("/me/office-review/booking-plans/:planId/confirm", reviewHandler.ConfirmPlan)

		// ------------------------------
		// CAPACITY
		// ------------------------------
		api.GET("/me/affiliations/:siteId/assignments", capacityHandler.ListMine)
		api.PUT("/me/affiliations/:siteId/assignments", capacityHandler.SetMine)

		staff := api.Group("/providers/:providerId/affiliations/:siteId", middleware.RequireScheduler())
		{
			staff.GET("/assignments", capacityHandler.ListForProvider)
			staff.PUT("/assignments", capacityHandler.SetForProvider)
			staff.POST("/repair-slots", capacityHandler.Repair)
			staff.POST("/clients", capacityHandler.ReserveClient)
			staff.DELETE("/clients/:clientId", capacityHandler.ReleaseClient)
		}
	}
}
