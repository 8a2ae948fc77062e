package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/wirecheck/internal/app"
	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/formatting"
)

var validOutputFormats = []string{
	string(formatting.FormatText),
	string(formatting.FormatJSON),
	string(formatting.FormatYAML),
	string(formatting.FormatTable),
}

// newAppConfig builds the application configuration from the global flags.
func newAppConfig() *app.Config {
	cfg := app.NewConfig(debug, configPath)
	cfg.LogOutput = os.Stderr
	return cfg
}

// newFormatter returns a formatter writing to the command's output. An empty
// format falls back to the configured default.
func newFormatter(cmd *cobra.Command, format string, wc *config.WirecheckConfig) (formatting.Formatter, error) {
	if format == "" && wc != nil {
		format = wc.Validation.Output
	}
	if format == "" {
		format = string(formatting.FormatText)
	}
	if err := config.ValidateOneOf("output", format, validOutputFormats); err != nil {
		return nil, fmt.Errorf("invalid output format: %w", err)
	}

	return formatting.NewFactory().CreateFormatter(formatting.Options{
		Format: formatting.OutputFormat(format),
		Output: cmd.OutOrStdout(),
	}), nil
}
