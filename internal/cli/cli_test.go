package cli

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gateway-delegation/lookup-services/internal/config"
)

func TestLoadService(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{"orders", "orders-api", false},
		{"pricing", "pricing-api", false},
		{"inventory", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := loadService(tt.name, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadService() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && svc.Info().Name != tt.wantName {
				t.Errorf("service name = %q, want %q", svc.Info().Name, tt.wantName)
			}
		})
	}

	if _, err := loadService("orders", "does-not-exist.yaml"); err == nil {
		t.Error("expected an error for a missing catalog file")
	}
}

func TestServiceNames(t *testing.T) {
	if got := serviceNames(); !slices.Equal(got, []string{"orders", "pricing"}) {
		t.Errorf("serviceNames() = %v", got)
	}
}

func TestApplyServerFlags(t *testing.T) {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	addServerFlags(fs)

	if err := fs.Parse([]string{"--port", "9001", "--route-prefix", "v1"}); err != nil {
		t.Fatal(err)
	}

	c := &config.ServerEnvironment{
		Environment:       "test",
		Host:              "0.0.0.0",
		Port:              0,
		RequestTimeout:    1,
		CallerIDHeader:    "X-Caller-Id",
		CallerEmailHeader: "X-Caller-Email",
	}
	if err := applyServerFlags(fs, c); err != nil {
		t.Fatalf("applyServerFlags() error = %v", err)
	}

	if c.Port != 9001 {
		t.Errorf("Port = %d, want 9001", c.Port)
	}
	if c.RoutePrefix != "/v1" {
		t.Errorf("RoutePrefix = %q, want /v1", c.RoutePrefix)
	}
	// not set on the command line
	if c.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", c.Host)
	}

	bad := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	addServerFlags(bad)
	if err := bad.Parse([]string{"--port", "70000"}); err != nil {
		t.Fatal(err)
	}
	if err := applyServerFlags(bad, c); err == nil {
		t.Error("expected a validation error for port 70000")
	}
}

func TestCatalogCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "none")
	t.Setenv("ENVIRONMENT", "test")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"catalog", "pricing"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("catalog command failed: %v", err)
	}

	var summary catalogSummary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("invalid output %q: %v", out.String(), err)
	}
	want := catalogSummary{
		Service:   "pricing-api",
		DBRecords: 3,
		Keys:      []string{"SKU-001", "SKU-002", "SKU-003"},
	}
	if summary.Service != want.Service || summary.DBRecords != want.DBRecords || !slices.Equal(summary.Keys, want.Keys) {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
}
