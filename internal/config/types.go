package config

import "time"

// WirecheckConfig is the top-level configuration structure for wirecheck.
type WirecheckConfig struct {
	Validation ValidationConfig `yaml:"validation"`
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Output formats understood by the validate and graph commands.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// ValidationConfig controls startup dependency validation.
type ValidationConfig struct {
	Enabled     bool   `yaml:"enabled"`               // Validate before serving (default: true)
	Output      string `yaml:"output,omitempty"`      // Default output format of `wirecheck validate`
	SaveReports bool   `yaml:"saveReports,omitempty"` // Keep every validation result under <config>/reports
	MaxReports  int    `yaml:"maxReports,omitempty"`  // Oldest saved reports beyond this are removed (0 = unlimited)
}

// ServerConfig defines the diagnostics server.
type ServerConfig struct {
	Host            string        `yaml:"host,omitempty"`            // Host to bind to (default: localhost)
	Port            int           `yaml:"port,omitempty"`            // Port to listen on (default: 8095)
	NotifySystemd   bool          `yaml:"notifySystemd,omitempty"`   // Send READY=1 once validation passed
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty"` // Grace period for in-flight requests
}

// LoggingConfig sets the log level used by every command.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error (default: info)
}
