package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/formatting"
	"github.com/giantswarm/wirecheck/internal/validation"
	"github.com/giantswarm/wirecheck/pkg/logging"
)

// Application represents the main application structure that bootstraps and
// runs wirecheck.
//
// The Application follows a two-phase initialization pattern:
//  1. Bootstrap phase: load configuration, initialize logging, compose services
//  2. Validation phase: check the composed services for circular dependencies
//
// NewApplication runs both and refuses to return an application whose
// services contain a cycle. Run then serves diagnostics until cancelled.
type Application struct {
	config   *Config
	services *Services
	result   validation.Result
}

// Bootstrap loads configuration, sets up logging and composes the services
// without validating them.
func Bootstrap(cfg *Config) (*Application, error) {
	initLogging(cfg, "")

	if cfg.WirecheckConfig == nil {
		if cfg.ConfigPath == "" {
			dir, err := config.GetUserConfigDir()
			if err != nil {
				return nil, err
			}
			cfg.ConfigPath = dir
		}
		wc, err := config.LoadConfig(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		cfg.WirecheckConfig = &wc
	}
	initLogging(cfg, cfg.WirecheckConfig.Logging.Level)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// NewApplication bootstraps the application and validates its dependencies.
// A *validation.CircularDependencyError aborts startup.
func NewApplication(cfg *Config) (*Application, error) {
	a, err := Bootstrap(cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.WirecheckConfig.Validation.Enabled {
		logging.Warn("Bootstrap", "Dependency validation is disabled by configuration")
		return a, nil
	}

	if _, err := a.Validate(); err != nil {
		return nil, fmt.Errorf("startup aborted: %w", err)
	}
	return a, nil
}

// Validate runs dependency validation over the composed services. The result
// is kept for the diagnostics server and, when enabled, saved as a report.
func (a *Application) Validate() (validation.Result, error) {
	v := validation.New(
		validation.WithLogger(logging.Logger()),
		validation.WithObserver(a.services.Metrics),
	)
	res, err := v.Validate(a.services.Container)
	a.result = res

	if a.config.WirecheckConfig.Validation.SaveReports {
		if saveErr := a.saveReport(res); saveErr != nil {
			logging.Warn("Bootstrap", "Failed to save validation report %s: %v", res.RunID, saveErr)
		}
	}
	return res, err
}

func (a *Application) saveReport(res validation.Result) error {
	data, err := yaml.Marshal(formatting.NewResultView(res))
	if err != nil {
		return err
	}
	if err := a.services.Storage.Save(config.ReportsDir, res.RunID, data); err != nil {
		return err
	}
	removed, err := a.services.Storage.Prune(config.ReportsDir, a.config.WirecheckConfig.Validation.MaxReports)
	if removed > 0 {
		logging.Debug("Bootstrap", "Removed %d old validation reports", removed)
	}
	return err
}

// Result returns the last validation result.
func (a *Application) Result() validation.Result {
	return a.result
}

// Services returns the composed services.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run serves diagnostics until ctx is cancelled or the process is signalled.
func (a *Application) Run(ctx context.Context) error {
	return runServer(ctx, a)
}

// initLogging configures the process logger. --debug wins over the
// configured level.
func initLogging(cfg *Config, configured string) {
	level := logging.LevelInfo
	if configured != "" {
		if parsed, err := logging.ParseLevel(configured); err == nil {
			level = parsed
		}
	}
	if cfg.Debug {
		level = logging.LevelDebug
	}

	var out io.Writer = os.Stderr
	if cfg.LogOutput != nil {
		out = cfg.LogOutput
	}
	if cfg.Silent {
		out = io.Discard
	}
	logging.InitForCLI(level, out)
}
