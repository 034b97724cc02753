package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"none", LevelNone},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestContextRequestLoggerFallsBackToDefault(t *testing.T) {
	if got := ContextRequestLogger(context.Background()); got != slog.Default() {
		t.Error("expected the default logger when none is stored in the context")
	}
}

func TestRequestLoggingWritesFinalLine(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestLogging(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ContextWithLogAttrs(r.Context(), slog.String("caller_id", "user-1"))
		w.WriteHeader(http.StatusNotFound)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders/9999", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a single JSON log line, got %q: %v", buf.String(), err)
	}

	if line["msg"] != "request completed" {
		t.Errorf("msg = %v", line["msg"])
	}
	if line["status"] != float64(http.StatusNotFound) {
		t.Errorf("status = %v, want 404", line["status"])
	}
	if line["caller_id"] != "user-1" {
		t.Errorf("caller_id = %v, want user-1", line["caller_id"])
	}
	if line["path"] != "/orders/9999" {
		t.Errorf("path = %v", line["path"])
	}
}

func TestContextWithLogAttrsOutsideMiddleware(t *testing.T) {
	// must not panic
	ContextWithLogAttrs(context.Background(), slog.String("k", "v"))
}
