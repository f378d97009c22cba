package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWebhookAdapter_Upsert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body webhookRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		if body.EventID != 12 || body.DryRun {
			t.Errorf("unexpected request %+v", body)
		}
		_, _ = w.Write([]byte(`{"ok":true,"calendar_id":"cal-1","external_event_id":"ext-9","meet_link":"https://meet/x"}`))
	}))
	defer srv.Close()

	res := NewWebhookAdapter(srv.URL, time.Second).Upsert(context.Background(), 12)

	if !res.OK || res.ExternalEventID != "ext-9" || res.MeetLink != "https://meet/x" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestWebhookAdapter_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	res := NewWebhookAdapter(srv.URL, time.Second).DryRun(context.Background(), 1)

	if res.OK || res.Error == "" {
		t.Fatalf("expected failure with message, got %+v", res)
	}
}

func TestWebhookAdapter_ErrorStatusOverridesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"ok":true,"error":"event locked","external_event_id":"ext-1"}`))
	}))
	defer srv.Close()

	res := NewWebhookAdapter(srv.URL, time.Second).Upsert(context.Background(), 1)

	if res.OK || res.Error != "event locked" {
		t.Fatalf("expected failure keeping the service error, got %+v", res)
	}
}

func TestWebhookAdapter_Unreachable(t *testing.T) {
	res := NewWebhookAdapter("http://127.0.0.1:1", 200*time.Millisecond).Upsert(context.Background(), 1)
	if res.OK || res.Error == "" {
		t.Fatalf("expected transport failure, got %+v", res)
	}
}

func TestDisabled(t *testing.T) {
	if res := (Disabled{}).Upsert(context.Background(), 1); res.OK {
		t.Fatalf("disabled adapter must never succeed")
	}
}
