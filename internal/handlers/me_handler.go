package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe echoes the caller as resolved from the token.
func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":                   actor.UserID,
			"tenant_id":            actor.TenantID,
			"role":                 actor.Role,
			"scheduler_privileged": actor.IsSchedulerPrivileged(),
		},
	})
}
