package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=dev"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=0"`
	LogLevel              string        `env:"LOG_LEVEL,default=info"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT,default=60s"`
	MaxRequestBytes       int64         `env:"MAX_REQUEST_BYTES,default=1024"`

	// routing - the container deployment serves lookups under /v1, the function deployment under /api
	RoutePrefix string `env:"ROUTE_PREFIX"`

	// optional YAML file replacing the built-in catalog
	CatalogPath string `env:"CATALOG_PATH"`

	// identity headers set by the gateway after it has authenticated the caller
	CallerIDHeader    string `env:"CALLER_ID_HEADER,default=X-Caller-Id"`
	CallerEmailHeader string `env:"CALLER_EMAIL_HEADER,default=X-Caller-Email"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	cfg.RoutePrefix = normalizePrefix(cfg.RoutePrefix)

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate re-checks the configuration, e.g. after command line flags have been applied.
func (cfg *ServerEnvironment) Validate() error {
	cfg.RoutePrefix = normalizePrefix(cfg.RoutePrefix)
	return validateConfig(cfg)
}

// PortOrDefault returns the configured port, or def when PORT was left unset (0).
func (cfg *ServerEnvironment) PortOrDefault(def int) int {
	if cfg.Port == 0 {
		return def
	}
	return cfg.Port
}

// normalizePrefix turns "v1", "/v1/" and "/v1" into "/v1". An empty or "/" prefix means no prefix.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// validateConfig checks for invalid env variables
func validateConfig(cfg *ServerEnvironment) error {
	// 0 means "use the service default port"
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if cfg.MaxRequestBytes < 0 {
		return fmt.Errorf("MAX_REQUEST_BYTES must be 0 or greater")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be greater than 0")
	}
	if strings.ContainsAny(cfg.RoutePrefix, "{}*") {
		return fmt.Errorf("ROUTE_PREFIX must not contain route patterns: %s", cfg.RoutePrefix)
	}

	for name, header := range map[string]string{
		"CALLER_ID_HEADER":    cfg.CallerIDHeader,
		"CALLER_EMAIL_HEADER": cfg.CallerEmailHeader,
	} {
		if header == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if strings.ContainsAny(header, " :\t") {
			return fmt.Errorf("%s is not a valid header name: %q", name, header)
		}
	}
	if http.CanonicalHeaderKey(cfg.CallerIDHeader) == http.CanonicalHeaderKey(cfg.CallerEmailHeader) {
		return fmt.Errorf("CALLER_ID_HEADER and CALLER_EMAIL_HEADER must differ")
	}

	return nil
}
