package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/office-scheduler/internal/dto"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
	ucSlot "github.com/BruksfildServices01/office-scheduler/internal/usecase/slotaction"
)

// ======================================================
// HANDLER
// ======================================================

type AssignmentHandler struct {
	keepAvailable *ucSlot.KeepAvailable
	setTemporary  *ucSlot.SetTemporary
	forfeit       *ucSlot.Forfeit
	setPlan       *ucSlot.SetBookingPlan
}

func NewAssignmentHandler(
	keepAvailable *ucSlot.KeepAvailable,
	setTemporary *ucSlot.SetTemporary,
	forfeit *ucSlot.Forfeit,
	setPlan *ucSlot.SetBookingPlan,
) *AssignmentHandler {
	return &AssignmentHandler{
		keepAvailable: keepAvailable,
		setTemporary:  setTemporary,
		forfeit:       forfeit,
		setPlan:       setPlan,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AcknowledgeRequest struct {
	Acknowledged bool `json:"acknowledged"`
}

type TemporaryRequest struct {
	Weeks json.RawMessage `json:"weeks"`
}

// WeeksValue accepts a JSON number or a numeric string. Anything else is
// reported as missing so the default hold length applies.
func (r TemporaryRequest) WeeksValue() *float64 {
	raw := bytes.TrimSpace(r.Weeks)
	if len(raw) == 0 {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return nil
	}
	return &n
}

type BookingPlanRequest struct {
	BookedFrequency       string `json:"bookedFrequency"`
	BookingStartDate      string `json:"bookingStartDate"`
	ActiveUntilDate       string `json:"activeUntilDate"`
	BookedOccurrenceCount *int   `json:"bookedOccurrenceCount"`
}

func assignmentParams(c *gin.Context) (uint, uint, bool) {
	officeID, ok := uintParam(c, "officeId")
	if !ok {
		return 0, 0, false
	}
	assignmentID, ok := uintParam(c, "assignmentId")
	if !ok {
		return 0, 0, false
	}
	return officeID, assignmentID, true
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AssignmentHandler) KeepAvailable(c *gin.Context) {
	officeID, assignmentID, ok := assignmentParams(c)
	if !ok {
		return
	}

	var req AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	a, err := h.keepAvailable.Execute(c.Request.Context(), middleware.ActorFrom(c), officeID, assignmentID, req.Acknowledged)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "assignment": dto.NewAssignmentDTO(a)})
}

func (h *AssignmentHandler) SetTemporary(c *gin.Context) {
	officeID, assignmentID, ok := assignmentParams(c)
	if !ok {
		return
	}

	// The body is optional; weeks falls back to the default.
	raw, err := c.GetRawData()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	var req TemporaryRequest
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request body.")
			return
		}
	}

	a, err := h.setTemporary.Execute(c.Request.Context(), middleware.ActorFrom(c), officeID, assignmentID, req.WeeksValue())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := dto.NewAssignmentDTO(a)
	httpresp.OK(c, gin.H{"ok": true, "temporaryUntilDate": out.TemporaryUntilDate, "assignment": out})
}

func (h *AssignmentHandler) Forfeit(c *gin.Context) {
	officeID, assignmentID, ok := assignmentParams(c)
	if !ok {
		return
	}

	var req AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if _, err := h.forfeit.Execute(c.Request.Context(), middleware.ActorFrom(c), officeID, assignmentID, req.Acknowledged); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// BOOKING PLAN
// ======================================================

func (h *AssignmentHandler) SetBookingPlan(c *gin.Context) {
	officeID, assignmentID, ok := assignmentParams(c)
	if !ok {
		return
	}

	var req BookingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	terms, err := ucSlot.ParsePlanTerms(req.BookedFrequency, req.BookingStartDate, req.ActiveUntilDate, req.BookedOccurrenceCount)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	plan, created, err := h.setPlan.Execute(c.Request.Context(), middleware.ActorFrom(c), officeID, assignmentID, terms)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := gin.H{"ok": true, "bookingPlan": dto.NewBookingPlanDTO(plan)}
	if created {
		httpresp.Created(c, body)
		return
	}
	httpresp.OK(c, body)
}
