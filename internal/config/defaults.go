package config

import "time"

const (
	// DefaultHost is the default listen address of the diagnostics server.
	DefaultHost = "localhost"

	// DefaultPort is the default port of the diagnostics server.
	DefaultPort = 8095

	// DefaultShutdownTimeout bounds graceful shutdown of the server.
	DefaultShutdownTimeout = 10 * time.Second
)

// GetDefaultConfig returns the configuration used when no config.yaml exists.
func GetDefaultConfig() WirecheckConfig {
	return WirecheckConfig{
		Validation: ValidationConfig{
			Enabled:    true,
			Output:     OutputText,
			MaxReports: 20,
		},
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
