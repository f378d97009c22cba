package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CALENDAR_SYNC_TIMEOUT_SECONDS", "")
	t.Setenv("REPAIR_CRON", "")

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.CalendarSyncTimeout != 10*time.Second {
		t.Fatalf("expected 10s sync timeout, got %s", cfg.CalendarSyncTimeout)
	}
	if cfg.RepairCron != "" {
		t.Fatalf("expected repair sweep disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CALENDAR_SYNC_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPAIR_CRON", "0 3 * * *")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr())
	}
	if cfg.CalendarSyncTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %s", cfg.CalendarSyncTimeout)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.SlogLevel())
	}
	if cfg.RepairCron != "0 3 * * *" {
		t.Fatalf("unexpected cron %q", cfg.RepairCron)
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("CALENDAR_SYNC_TIMEOUT_SECONDS", "-2")

	if got := Load().CalendarSyncTimeout; got != 10*time.Second {
		t.Fatalf("expected fallback to 10s, got %s", got)
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := Load()

	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", cfg.CORSAllowedOrigins)
	}
}
