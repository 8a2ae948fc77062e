package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/validation"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfigError indicates config.yaml could not be read or is invalid.
	ExitCodeConfigError = 2
	// ExitCodeCircularDependency indicates the service registrations contain
	// at least one cycle.
	ExitCodeCircularDependency = 3
)

var (
	// configPath is the directory holding config.yaml and saved reports.
	configPath string

	// debug enables verbose logging across the application.
	debug bool
)

// rootCmd represents the base command for the wirecheck application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wirecheck",
	Short: "Validate service dependencies before startup",
	Long: `wirecheck composes the application's services and checks the
resulting dependency graph for circular dependencies before anything is
constructed. A cycle is reported with every service on it and stops startup.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	// Errors are printed by Execute so that cycle reports are not printed twice.
	SilenceErrors: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
		os.Exit(getExitCode(err))
	}
}

// printError writes err to stderr. Cycle reports have already been logged
// and rendered by the command that found them.
func printError(cmd *cobra.Command, err error) {
	var cycleErr *validation.CircularDependencyError
	if errors.As(err, &cycleErr) {
		return
	}

	var cfgErr config.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), cfgErr.DetailedError())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var cycleErr *validation.CircularDependencyError
	if errors.As(err, &cycleErr) {
		return ExitCodeCircularDependency
	}

	var cfgErr config.ConfigurationError
	if errors.As(err, &cfgErr) {
		return ExitCodeConfigError
	}

	// Default to general error
	return ExitCodeError
}

// versionTemplate is used by --version and matches `wirecheck version`.
const versionTemplate = `{{printf "wirecheck version %s\n" .Version}}`

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newGraphCmd())
	rootCmd.AddCommand(newReportsCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Configuration directory (default is $HOME/.config/wirecheck)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
