package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/formatting"
)

// newReportsCmd creates the command group for reports saved by earlier
// validation runs (validation.saveReports in config.yaml).
func newReportsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Inspect saved validation reports",
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (text, json, yaml, table)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved reports, oldest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				names, err := config.NewStorage(configPath).List(config.ReportsDir)
				if err != nil {
					return err
				}
				formatter, err := newFormatter(cmd, output, nil)
				if err != nil {
					return err
				}
				return formatter.FormatData(names)
			},
		},
		&cobra.Command{
			Use:   "show RUN_ID",
			Short: "Show a saved report",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := config.NewStorage(configPath).Load(config.ReportsDir, args[0])
				if err != nil {
					return err
				}
				var view formatting.ResultView
				if err := yaml.Unmarshal(data, &view); err != nil {
					return fmt.Errorf("report %s is corrupt: %w", args[0], err)
				}
				formatter, err := newFormatter(cmd, output, nil)
				if err != nil {
					return err
				}
				return formatter.FormatResult(view)
			},
		},
		&cobra.Command{
			Use:   "delete RUN_ID",
			Short: "Delete a saved report",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.NewStorage(configPath).Delete(config.ReportsDir, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
