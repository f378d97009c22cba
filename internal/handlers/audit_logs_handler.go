package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/office-scheduler/internal/audit"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
	"github.com/BruksfildServices01/office-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List pages through the tenant's audit trail. Unparsable dates are ignored.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		TenantID: middleware.ActorFrom(c).TenantID,
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from, err := timezone.ParseDate(c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := timezone.ParseDate(c.Query("to")); err == nil {
		f.To = &to
	}

	logs, total, f, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
