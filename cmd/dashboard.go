package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	dashrender "github.com/htdinh/pfob-cli/internal/adapters/render/dashboard"
	"github.com/htdinh/pfob-cli/internal/application"
)

func newDashboardCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the 30-day finance overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			var data application.DashboardData
			fetch := func(ctx context.Context) error {
				var err error
				data, err = app.dashboard.Overview(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd, data)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching overview...", fetch); err != nil {
				return err
			}

			output, err := dashrender.Render(data, dashrender.RenderOptions{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
