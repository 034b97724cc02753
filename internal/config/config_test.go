package config

import (
	"os"
	"testing"
	"time"
)

func TestNewServerConfigDefaults(t *testing.T) {
	// go-env only applies defaults to variables that are not set at all
	unsetAll(t, "ENVIRONMENT", "HOST", "PORT", "LOG_LEVEL", "ROUTE_PREFIX", "CATALOG_PATH",
		"CALLER_ID_HEADER", "CALLER_EMAIL_HEADER", "MAX_REQUEST_BYTES", "REQUEST_TIMEOUT")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("NewServerConfig() error = %v", err)
	}

	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.Port != 0 {
		t.Errorf("Port = %d, want 0", cfg.Port)
	}
	if got := cfg.PortOrDefault(8001); got != 8001 {
		t.Errorf("PortOrDefault(8001) = %d, want 8001", got)
	}
	if cfg.CallerIDHeader != "X-Caller-Id" || cfg.CallerEmailHeader != "X-Caller-Email" {
		t.Errorf("caller headers = %q/%q", cfg.CallerIDHeader, cfg.CallerEmailHeader)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %v, want 60s", cfg.RequestTimeout)
	}
	if cfg.RoutePrefix != "" {
		t.Errorf("RoutePrefix = %q, want empty", cfg.RoutePrefix)
	}
}

func TestNewServerConfigOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("ROUTE_PREFIX", "v1/")
	t.Setenv("CALLER_ID_HEADER", "X-Forwarded-User")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("NewServerConfig() error = %v", err)
	}
	if cfg.PortOrDefault(8001) != 9090 {
		t.Errorf("PortOrDefault = %d, want 9090", cfg.PortOrDefault(8001))
	}
	if cfg.RoutePrefix != "/v1" {
		t.Errorf("RoutePrefix = %q, want /v1", cfg.RoutePrefix)
	}
	if cfg.CallerIDHeader != "X-Forwarded-User" {
		t.Errorf("CallerIDHeader = %q", cfg.CallerIDHeader)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() ServerEnvironment {
		return ServerEnvironment{
			Environment:       "test",
			Port:              8080,
			RequestTimeout:    time.Second,
			CallerIDHeader:    "X-Caller-Id",
			CallerEmailHeader: "X-Caller-Email",
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ServerEnvironment)
		wantErr bool
	}{
		{"valid", func(cfg *ServerEnvironment) {}, false},
		{"port zero uses service default", func(cfg *ServerEnvironment) { cfg.Port = 0 }, false},
		{"port too large", func(cfg *ServerEnvironment) { cfg.Port = 70000 }, true},
		{"negative port", func(cfg *ServerEnvironment) { cfg.Port = -1 }, true},
		{"unknown environment", func(cfg *ServerEnvironment) { cfg.Environment = "qa" }, true},
		{"negative max request bytes", func(cfg *ServerEnvironment) { cfg.MaxRequestBytes = -1 }, true},
		{"zero request timeout", func(cfg *ServerEnvironment) { cfg.RequestTimeout = 0 }, true},
		{"route pattern in prefix", func(cfg *ServerEnvironment) { cfg.RoutePrefix = "/{v}" }, true},
		{"empty caller id header", func(cfg *ServerEnvironment) { cfg.CallerIDHeader = "" }, true},
		{"header with colon", func(cfg *ServerEnvironment) { cfg.CallerEmailHeader = "X-Email:" }, true},
		{"same header twice", func(cfg *ServerEnvironment) { cfg.CallerEmailHeader = "x-caller-id" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"/":     "",
		"v1":    "/v1",
		"/v1":   "/v1",
		"/api/": "/api",
		" api ": "/api",
	}
	for in, want := range tests {
		if got := normalizePrefix(in); got != want {
			t.Errorf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

// unsetAll removes the variables for the duration of the test and restores them afterwards.
func unsetAll(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}
