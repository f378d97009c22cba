package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/office-scheduler/internal/dto"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
	ucSlot "github.com/BruksfildServices01/office-scheduler/internal/usecase/slotaction"
)

type ReviewHandler struct {
	summary *ucSlot.GetReviewSummary
	confirm *ucSlot.ConfirmBookingPlan
}

func NewReviewHandler(
	summary *ucSlot.GetReviewSummary,
	confirm *ucSlot.ConfirmBookingPlan,
) *ReviewHandler {
	return &ReviewHandler{
		summary: summary,
		confirm: confirm,
	}
}

type ConfirmPlanRequest struct {
	Confirmed bool `json:"confirmed"`
}

func (h *ReviewHandler) Summary(c *gin.Context) {
	officeID, ok := optionalUintQuery(c, "officeId")
	if !ok {
		return
	}

	s, err := h.summary.Execute(c.Request.Context(), middleware.ActorFrom(c), officeID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ReviewHandler) ConfirmPlan(c *gin.Context) {
	planID, ok := uintParam(c, "planId")
	if !ok {
		return
	}

	var req ConfirmPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	plan, err := h.confirm.Execute(c.Request.Context(), middleware.ActorFrom(c), planID, req.Confirmed)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "bookingPlan": dto.NewBookingPlanDTO(plan)})
}
