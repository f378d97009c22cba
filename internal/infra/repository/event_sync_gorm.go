package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/office-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

// EventSyncGormRepository records calendar sync outcomes on office events.
type EventSyncGormRepository struct {
	db *gorm.DB
}

func NewEventSyncGormRepository(db *gorm.DB) *EventSyncGormRepository {
	return &EventSyncGormRepository{db: db}
}

func (r *EventSyncGormRepository) RecordSyncResult(
	ctx context.Context,
	eventID uint,
	result calendar.Result,
	at time.Time,
) error {

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	updates := map[string]any{
		"calendar_sync_result": datatypes.JSON(payload),
	}

	if result.OK {
		updates["calendar_sync_status"] = models.CalendarSyncSynced
		updates["calendar_sync_error"] = ""
		updates["calendar_synced_at"] = at
		if result.CalendarID != "" {
			updates["calendar_id"] = result.CalendarID
		}
		if result.ExternalEventID != "" {
			updates["external_event_id"] = result.ExternalEventID
		}
		if result.MeetLink != "" {
			updates["meet_link"] = result.MeetLink
		}
	} else {
		updates["calendar_sync_status"] = models.CalendarSyncFailed
		updates["calendar_sync_error"] = result.Error
	}

	return r.db.WithContext(ctx).
		Model(&models.OfficeEvent{}).
		Where("id = ?", eventID).
		Updates(updates).Error
}
