package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domain "github.com/BruksfildServices01/office-scheduler/internal/domain/calendar"
)

// WebhookAdapter delegates calendar work to the integration service that
// owns the calendar credentials. It posts {event_id, dry_run} and expects a
// calendar.Result body.
type WebhookAdapter struct {
	url    string
	client *http.Client
}

func NewWebhookAdapter(url string, timeout time.Duration) *WebhookAdapter {
	return &WebhookAdapter{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookRequest struct {
	EventID uint `json:"event_id"`
	DryRun  bool `json:"dry_run"`
}

func (a *WebhookAdapter) Upsert(ctx context.Context, eventID uint) domain.Result {
	return a.call(ctx, webhookRequest{EventID: eventID})
}

func (a *WebhookAdapter) DryRun(ctx context.Context, eventID uint) domain.Result {
	return a.call(ctx, webhookRequest{EventID: eventID, DryRun: true})
}

func (a *WebhookAdapter) call(ctx context.Context, body webhookRequest) domain.Result {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.Result{Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
	if err != nil {
		return domain.Result{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.Result{Error: err.Error()}
	}
	defer resp.Body.Close()

	var out domain.Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Result{Error: fmt.Sprintf("decode calendar response (status %d): %v", resp.StatusCode, err)}
	}
	if resp.StatusCode >= 300 {
		out.OK = false
		if out.Error == "" {
			out.Error = fmt.Sprintf("calendar service returned status %d", resp.StatusCode)
		}
	}
	return out
}

// Disabled is used when no calendar integration is configured.
type Disabled struct{}

func (Disabled) Upsert(context.Context, uint) domain.Result {
	return domain.Result{Error: "calendar sync is not configured"}
}

func (Disabled) DryRun(context.Context, uint) domain.Result {
	return domain.Result{Error: "calendar sync is not configured"}
}

var (
	_ domain.Adapter = (*WebhookAdapter)(nil)
	_ domain.Adapter = Disabled{}
)
