// Package calendar defines the contract of the external calendar
// integration. The core only depends on the result shape.
package calendar

import "context"

type Result struct {
	OK              bool   `json:"ok"`
	CalendarID      string `json:"calendar_id,omitempty"`
	ExternalEventID string `json:"external_event_id,omitempty"`
	MeetLink        string `json:"meet_link,omitempty"`
	Error           string `json:"error,omitempty"`
}

type Adapter interface {
	// Upsert creates or patches the external event for an occurrence.
	Upsert(ctx context.Context, eventID uint) Result
	// DryRun reports what Upsert would do without side effects.
	DryRun(ctx context.Context, eventID uint) Result
}
