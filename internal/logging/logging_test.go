package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo).With("request_id", "abc")

	ctx := ContextWithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello")

	if !strings.Contains(buf.String(), `"request_id":"abc"`) {
		t.Fatalf("expected request id in output, got %s", buf.String())
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Fatalf("expected default logger")
	}
}
