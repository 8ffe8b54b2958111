package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/money"
)

func newConvertPointsCmd(app *app) *cobra.Command {
	var (
		accountID int64
		points    float64
	)

	cmd := &cobra.Command{
		Use:   "convert-points",
		Short: "Convert ESG points into account balance",
		Long:  fmt.Sprintf("Exchanges ESG points for balance at the fixed rate of %s VND per point.", money.PointExchangeRate),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Converting %s points (≈ %s VND)...\n",
				app.format.Points(points),
				app.format.Number(money.PointsToVND(points)),
			)

			req := domain.ConvertRequest{AccountID: domain.AccountID(accountID), Points: points}
			fetch := func(ctx context.Context) error {
				_, err := app.transfers.ConvertPoints(ctx, req)
				return err
			}
			return runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Converting points...", fetch)
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "Account receiving the converted balance")
	cmd.Flags().Float64Var(&points, "points", 0, "ESG points to convert")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}
