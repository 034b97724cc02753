package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gateway-delegation/lookup-services/internal/config"
	"github.com/gateway-delegation/lookup-services/internal/server"
	"github.com/gateway-delegation/lookup-services/internal/version"
)

var serveCmd = &cobra.Command{
	Use:       "serve <orders|pricing>",
	Short:     "Run a lookup service",
	Long:      `Load the service catalog and serve lookups over HTTP until interrupted`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: serviceNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyServerFlags(cmd.Flags(), cfg); err != nil {
			return err
		}
		return runServer(cmd.Context(), args[0])
	},
}

func init() {
	addServerFlags(serveCmd.Flags())
}

// addServerFlags registers flags that override the environment configuration.
func addServerFlags(fs *pflag.FlagSet) {
	fs.String("host", "", "listen host (overrides HOST)")
	fs.Int("port", 0, "listen port (overrides PORT, default 8001 for orders and 8002 for pricing)")
	fs.String("catalog", "", "YAML catalog file replacing the built-in records (overrides CATALOG_PATH)")
	fs.String("route-prefix", "", "prefix for the lookup route, e.g. /v1 (overrides ROUTE_PREFIX)")
}

// applyServerFlags copies the flags that were set on the command line into cfg.
func applyServerFlags(fs *pflag.FlagSet, cfg *config.ServerEnvironment) error {
	if fs.Changed("host") {
		host, err := fs.GetString("host")
		if err != nil {
			return err
		}
		cfg.Host = host
	}
	if fs.Changed("port") {
		port, err := fs.GetInt("port")
		if err != nil {
			return err
		}
		cfg.Port = port
	}
	if fs.Changed("catalog") {
		path, err := fs.GetString("catalog")
		if err != nil {
			return err
		}
		cfg.CatalogPath = path
	}
	if fs.Changed("route-prefix") {
		prefix, err := fs.GetString("route-prefix")
		if err != nil {
			return err
		}
		cfg.RoutePrefix = prefix
	}
	return cfg.Validate()
}

func runServer(ctx context.Context, name string) error {
	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("ROUTE_PREFIX", cfg.RoutePrefix),
		slog.String("CATALOG_PATH", cfg.CatalogPath),
		slog.String("CALLER_ID_HEADER", cfg.CallerIDHeader),
		slog.String("CALLER_EMAIL_HEADER", cfg.CallerEmailHeader),
	)

	// the catalog is loaded once, before the first request is served, and never changes
	svc, err := loadService(name, cfg.CatalogPath)
	if err != nil {
		appLogger.Error("Failed to load catalog", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("Starting server",
		slog.String("service", svc.Info().Name),
		slog.String("version", version.Get().Version))

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(svc, cfg, appLogger)
	if err := srv.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
