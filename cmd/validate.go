package cmd

import (
	"github.com/spf13/cobra"

	"github.com/giantswarm/wirecheck/internal/app"
	"github.com/giantswarm/wirecheck/internal/formatting"
)

// newValidateCmd creates the command that validates the composed services
// once and reports the result.
func newValidateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the service registrations for circular dependencies",
		Long: `Composes the services, builds their dependency graph and reports every
circular dependency in it. Validation runs even when it is disabled in
config.yaml.

Exit codes:
  0  no cycles
  2  configuration error
  3  circular dependencies detected`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.Bootstrap(newAppConfig())
			if err != nil {
				return err
			}

			formatter, err := newFormatter(cmd, output, application.Config().WirecheckConfig)
			if err != nil {
				return err
			}

			res, validateErr := application.Validate()
			if err := formatter.FormatResult(formatting.NewResultView(res)); err != nil {
				return err
			}
			return validateErr
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (text, json, yaml, table)")
	return cmd
}
