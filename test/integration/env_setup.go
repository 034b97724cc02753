//go:build integration

package integration

// Test environment setup and server lifecycle management.
//
// The integration tests start lookup-server in-process and run requests against it.
//
// By default the server logs are not included in the test output, you can enable them with:
//
//	ENABLE_SERVER_LOGS=true go test -tags=integration -v ./test/integration
//

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gateway-delegation/lookup-services/internal/config"
	"github.com/gateway-delegation/lookup-services/internal/logger"
	"github.com/gateway-delegation/lookup-services/internal/lookup"
	"github.com/gateway-delegation/lookup-services/internal/orders"
	"github.com/gateway-delegation/lookup-services/internal/pricing"
	"github.com/gateway-delegation/lookup-services/internal/server"
)

// testEnv provides access to the running server for integration tests
type testEnv struct {
	baseURL  string
	cfg      *config.ServerEnvironment
	service  lookup.Endpoint
	shutdown func()
}

// startInProcessServer starts the named service ("orders" or "pricing") in-process.
// extraEnv is applied on top of the default test configuration.
func startInProcessServer(t *testing.T, serviceName string, extraEnv map[string]string) *testEnv {
	t.Helper()

	testEnv := &testEnv{}

	t.Logf("Starting in-process %s server...", serviceName)

	var (
		ctx         = context.Background()
		host        = "localhost"
		port        = findFreePort(t)
		environment = "test"
		logLevel    = "none"
	)

	if os.Getenv("ENABLE_SERVER_LOGS") == "true" {
		logLevel = "debug"
	}

	testEnvVars := map[string]string{
		"HOST":        host,
		"PORT":        fmt.Sprintf("%d", port),
		"ENVIRONMENT": environment,
		"LOG_LEVEL":   logLevel,
	}
	for key, value := range extraEnv {
		testEnvVars[key] = value
	}

	// t.Setenv restores the original values when the test completes
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	cfg, err := config.NewServerConfig()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	switch serviceName {
	case "orders":
		cat, err := orders.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			t.Fatalf("Failed to load orders catalog: %v", err)
		}
		testEnv.service = orders.NewService(cat)
	case "pricing":
		cat, err := pricing.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			t.Fatalf("Failed to load pricing catalog: %v", err)
		}
		testEnv.service = pricing.NewService(cat)
	default:
		t.Fatalf("service %s not supported (use orders or pricing)", serviceName)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverInstance := server.NewServer(testEnv.service, cfg, appLogger)

	serverCtx, serverCancel := context.WithCancel(ctx)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := serverInstance.Start(serverCtx); err != nil {
			serverDone <- err
		}
	}()

	testEnv.shutdown = func() {
		t.Log("Stopping server...")

		serverCancel()

		select {
		case err := <-serverDone:
			if err != nil {
				t.Logf("❌ Server shutdown with error: %v", err)
			} else {
				t.Log("✅ Server shut down gracefully")
			}
		case <-time.After(5 * time.Second):
			t.Log("⚠️ Server shutdown timeout")
		}
	}

	testEnv.baseURL = fmt.Sprintf("http://localhost:%d", port)
	testEnv.cfg = cfg

	if !waitForServer(t, testEnv.baseURL+"/health", 30*time.Second) {
		testEnv.shutdown()
		t.Fatal("Server failed to start within timeout")
	}

	t.Log("✅ Server started")
	return testEnv
}

func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer listener.Close()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.Port
}

func waitForServer(t *testing.T, url string, timeout time.Duration) bool {
	t.Helper()

	client := &http.Client{Timeout: 1 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
