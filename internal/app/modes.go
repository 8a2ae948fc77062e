package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/server"
	"github.com/giantswarm/wirecheck/pkg/logging"
)

// runServer serves the diagnostics endpoints until ctx is done or SIGINT or
// SIGTERM arrives. Suitable for systemd services and containers.
func runServer(ctx context.Context, a *Application) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.watchConfig(ctx)

	srv := server.New(a.config.WirecheckConfig.Server, a.result, a.services.Metrics)
	if err := srv.Run(ctx); err != nil {
		logging.Error("Server", err, "Diagnostics server stopped with an error")
		return err
	}
	logging.Info("Server", "Stopped")
	return nil
}

// watchConfig follows config.yaml while serving and applies logging level
// changes. The composition is validated once, so other settings take effect
// on the next start.
func (a *Application) watchConfig(ctx context.Context) {
	if a.config.ConfigPath == "" {
		return
	}
	w := config.NewWatcher(a.config.ConfigPath, 0, func(wc config.WirecheckConfig) {
		initLogging(a.config, wc.Logging.Level)
		logging.Info("ConfigWatcher", "Applied logging level %q", wc.Logging.Level)
	})
	if err := w.Start(ctx); err != nil {
		logging.Warn("ConfigWatcher", "Configuration changes will not be applied: %v", err)
	}
}
