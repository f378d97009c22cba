package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/office-scheduler/internal/dto"
	"github.com/BruksfildServices01/office-scheduler/internal/httperr"
	"github.com/BruksfildServices01/office-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/office-scheduler/internal/middleware"
	ucSlot "github.com/BruksfildServices01/office-scheduler/internal/usecase/slotaction"
)

type EventHandler struct {
	book    *ucSlot.StaffBookEvent
	preview *ucSlot.PreviewCalendarSync
}

func NewEventHandler(
	book *ucSlot.StaffBookEvent,
	preview *ucSlot.PreviewCalendarSync,
) *EventHandler {
	return &EventHandler{
		book:    book,
		preview: preview,
	}
}

func eventParams(c *gin.Context) (uint, uint, bool) {
	officeID, ok := uintParam(c, "officeId")
	if !ok {
		return 0, 0, false
	}
	eventID, ok := uintParam(c, "eventId")
	if !ok {
		return 0, 0, false
	}
	return officeID, eventID, true
}

// Book responds once the booking commits. The calendar push happens later
// and its outcome is stored on the event.
func (h *EventHandler) Book(c *gin.Context) {
	officeID, eventID, ok := eventParams(c)
	if !ok {
		return
	}

	ev, err := h.book.Execute(c.Request.Context(), middleware.ActorFrom(c), officeID, eventID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "event": dto.NewEventDTO(ev)})
}

func (h *EventHandler) CalendarPreview(c *gin.Context) {
	officeID, eventID, ok := eventParams(c)
	if !ok {
		return
	}

	result, err := h.preview.Execute(c.Request.Context(), middleware.ActorFrom(c), officeID, eventID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, result)
}
