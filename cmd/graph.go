package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/giantswarm/wirecheck/internal/app"
	"github.com/giantswarm/wirecheck/internal/formatting"
	"github.com/giantswarm/wirecheck/internal/validation"
)

// newGraphCmd creates the command that prints the dependency graph of the
// composed services.
func newGraphCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the service dependency graph",
		Long: `Prints every validated service with the services it depends on and the
services depending on it. The graph is printed even when it contains cycles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := newAppConfig()
			application, err := app.Bootstrap(cfg)
			if err != nil {
				return err
			}

			formatter, err := newFormatter(cmd, output, cfg.WirecheckConfig)
			if err != nil {
				return err
			}

			res, err := application.Validate()
			if err != nil && !errors.Is(err, validation.ErrCircularDependency) {
				return err
			}
			return formatter.FormatGraph(formatting.NewGraphView(res.Graph))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (text, json, yaml, table)")
	return cmd
}
