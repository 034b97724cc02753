package cli

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gateway-delegation/lookup-services/internal/config"
	"github.com/gateway-delegation/lookup-services/internal/logger"
	"github.com/gateway-delegation/lookup-services/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.ServerEnvironment
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:               "lookup-server",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:      true,
	Short:             "Read-only lookup services behind an API gateway",
	Long: `lookup-server runs the orders and pricing lookup services.

The services do no authentication, authorization or rate limiting: they expect to be
reachable only through an API gateway that has already authenticated the caller and
forwards the caller identity in the x-caller-id and x-caller-email headers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewServerConfig()
		if err != nil {
			log.Printf("failed to load configuration: %v", err.Error())
			return err
		}

		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
		return nil
	},
}

func Execute() {
	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}
