package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/wirecheck/internal/app"
	"github.com/giantswarm/wirecheck/internal/config"
)

var (
	// serveHost and servePort override the server section of config.yaml.
	serveHost string
	servePort int

	// serveNotifySystemd sends READY=1 and STOPPING=1 to systemd.
	serveNotifySystemd bool
)

// serveCmd starts the application the way production does: validate first,
// then serve health, readiness, metrics and the dependency graph.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Validate dependencies, then serve diagnostics",
	Long: `Composes and validates the services. If any circular dependency is found
the command exits with code 3 before anything is served.

Otherwise an HTTP server is started with:
  /healthz                 liveness
  /readyz                  readiness
  /metrics                 Prometheus metrics
  /debug/validation        the last validation result
  /debug/dependencies      the dependency graph

The server runs until interrupted (SIGINT, SIGTERM).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg := newAppConfig()

	wc, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		wc.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		wc.Server.Port = servePort
	}
	if cmd.Flags().Changed("notify-systemd") {
		wc.Server.NotifySystemd = serveNotifySystemd
	}
	cfg.ConfigPath = resolveConfigPath()
	cfg.WirecheckConfig = &wc

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetDefaultConfigPathOrPanic()
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultHost, "Address to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveNotifySystemd, "notify-systemd", false, "Notify systemd when ready and when stopping")
}
