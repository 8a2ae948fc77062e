package app

import (
	"io"

	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/container"
)

// Registration adds services to the container after the built-in
// composition.
type Registration func(c *container.Container) error

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Silent suppresses all log output.
	Silent bool

	// Directory holding config.yaml and saved reports.
	ConfigPath string

	// LogOutput defaults to os.Stderr so that command output on stdout stays
	// machine readable.
	LogOutput io.Writer

	// Loaded wirecheck configuration. When set before bootstrap, config.yaml
	// is not read.
	WirecheckConfig *config.WirecheckConfig

	// Extra registrations, applied in order after ComposeServices.
	Extra []Registration
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}
