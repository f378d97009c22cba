package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/office-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/office-scheduler/internal/dto"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
	ucCapacity "github.com/BruksfildServices01/office-scheduler/internal/usecase/capacity"
)

// ======================================================
// HANDLER
// ======================================================

type CapacityHandler struct {
	list    *ucCapacity.ListDays
	set     *ucCapacity.SetDays
	repair  *ucCapacity.RepairSlots
	reserve *ucCapacity.ReserveSlot
	release *ucCapacity.ReleaseSlot
}

func NewCapacityHandler(
	list *ucCapacity.ListDays,
	set *ucCapacity.SetDays,
	repair *ucCapacity.RepairSlots,
	reserve *ucCapacity.ReserveSlot,
	release *ucCapacity.ReleaseSlot,
) *CapacityHandler {
	return &CapacityHandler{
		list:    list,
		set:     set,
		repair:  repair,
		reserve: reserve,
		release: release,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DayRequest struct {
	DayOfWeek           string  `json:"dayOfWeek" binding:"required"`
	StartTime           *string `json:"startTime"`
	EndTime             *string `json:"endTime"`
	SlotsTotal          *int    `json:"slotsTotal"`
	IsActive            *bool   `json:"isActive"`
	AcceptingNewClients *bool   `json:"acceptingNewClients"`
}

type SetDaysRequest struct {
	Days []DayRequest `json:"days" binding:"required,min=1,dive"`
}

type ReserveRequest struct {
	ClientID  uint   `json:"clientId" binding:"required"`
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
}

func (r DayRequest) toInput() domain.DayInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.DayInput{
		DayOfWeek:           r.DayOfWeek,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		SlotsTotal:          r.SlotsTotal,
		IsActive:            active,
		AcceptingNewClients: r.AcceptingNewClients,
	}
}

// selfPair resolves /me/affiliations/:siteId for the caller.
func selfPair(c *gin.Context) (domain.Pair, bool) {
	siteID, ok := uintParam(c, "siteId")
	if !ok {
		return domain.Pair{}, false
	}
	return domain.Pair{SiteID: siteID, ProviderID: middleware.ActorFrom(c).UserID}, true
}

// providerPair resolves /providers/:providerId/affiliations/:siteId.
func providerPair(c *gin.Context) (domain.Pair, bool) {
	providerID, ok := uintParam(c, "providerId")
	if !ok {
		return domain.Pair{}, false
	}
	siteID, ok := uintParam(c, "siteId")
	if !ok {
		return domain.Pair{}, false
	}
	return domain.Pair{SiteID: siteID, ProviderID: providerID}, true
}

// ======================================================
// DAYS
// ======================================================

func (h *CapacityHandler) listDays(c *gin.Context, pair domain.Pair, scope ucCapacity.Scope) {
	cells, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), pair, scope)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewCapacityDayDTOs(cells))
}

func (h *CapacityHandler) setDays(c *gin.Context, pair domain.Pair, scope ucCapacity.Scope) {
	var req SetDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "days must be a non-empty list with a dayOfWeek on each entry.")
		return
	}

	inputs := make([]domain.DayInput, 0, len(req.Days))
	for _, d := range req.Days {
		inputs = append(inputs, d.toInput())
	}

	cells, err := h.set.Execute(c.Request.Context(), middleware.ActorFrom(c), pair, scope, inputs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewCapacityDayDTOs(cells))
}

func (h *CapacityHandler) ListMine(c *gin.Context) {
	if pair, ok := selfPair(c); ok {
		h.listDays(c, pair, ucCapacity.ScopeSelf)
	}
}

func (h *CapacityHandler) SetMine(c *gin.Context) {
	if pair, ok := selfPair(c); ok {
		h.setDays(c, pair, ucCapacity.ScopeSelf)
	}
}

func (h *CapacityHandler) ListForProvider(c *gin.Context) {
	if pair, ok := providerPair(c); ok {
		h.listDays(c, pair, ucCapacity.ScopeScheduler)
	}
}

func (h *CapacityHandler) SetForProvider(c *gin.Context) {
	if pair, ok := providerPair(c); ok {
		h.setDays(c, pair, ucCapacity.ScopeScheduler)
	}
}

// ======================================================
// REPAIR
// ======================================================

func (h *CapacityHandler) Repair(c *gin.Context) {
	pair, ok := providerPair(c)
	if !ok {
		return
	}

	report, err := h.repair.Execute(c.Request.Context(), middleware.ActorFrom(c), pair)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, report)
}

// ======================================================
// CLIENTS
// ======================================================

func (h *CapacityHandler) ReserveClient(c *gin.Context) {
	pair, ok := providerPair(c)
	if !ok {
		return
	}

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "clientId and dayOfWeek are required.")
		return
	}

	cell, err := h.reserve.Execute(c.Request.Context(), middleware.ActorFrom(c), pair, req.ClientID, req.DayOfWeek)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, gin.H{"ok": true, "day": dto.NewCapacityDayDTO(cell)})
}

func (h *CapacityHandler) ReleaseClient(c *gin.Context) {
	pair, ok := providerPair(c)
	if !ok {
		return
	}
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}

	cell, err := h.release.Execute(c.Request.Context(), middleware.ActorFrom(c), pair, clientID, c.Query("day"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := gin.H{"ok": true}
	if cell != nil {
		body["day"] = dto.NewCapacityDayDTO(cell)
	}
	httpresp.OK(c, body)
}
