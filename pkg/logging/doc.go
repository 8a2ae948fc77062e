// Package logging provides a structured logging system for wirecheck with
// subsystem-tagged helpers on top of Go's standard slog package.
//
// # Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//   - **Critical**: Conditions that stop the application from starting
//
// # Usage Examples
//
//	import "github.com/giantswarm/wirecheck/pkg/logging"
//
//	// Initialize with Info level logging to stdout
//	logging.InitForCLI(logging.LevelInfo, os.Stdout)
//
//	logging.Info("Bootstrap", "Application starting up")
//	logging.Debug("Config", "Loaded configuration from %s", configPath)
//	logging.Warn("DependencyValidation", "Registry cannot be inspected")
//	logging.Critical("DependencyValidation", err, "Circular dependencies detected")
//
// Components that take an optional *slog.Logger use Logger() when the
// caller passes nil, so everything ends up in the same handler.
//
// # Subsystem Organization
//
//   - **Bootstrap**: Application initialization and startup
//   - **Config**: Configuration loading and validation
//   - **Container**: Service registration and resolution
//   - **DependencyValidation**: Startup dependency-graph validation
//   - **Server**: Diagnostics HTTP server
//
// # Thread Safety
//
// InitForCLI and Logger are safe for concurrent use; slog handlers
// serialize writes.
package logging
