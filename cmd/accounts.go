package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	accountsrender "github.com/htdinh/pfob-cli/internal/adapters/render/accounts"
	"github.com/htdinh/pfob-cli/internal/domain"
)

func newAccountsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage linked bank accounts",
	}

	cmd.AddCommand(
		newAccountsListCmd(app),
		newAccountsLinkCmd(app),
		newAccountsSyncCmd(app),
	)

	return cmd
}

func newAccountsListCmd(app *app) *cobra.Command {
	var cached, asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List linked and suggested accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			var overview domain.AccountOverview
			opts := accountsrender.RenderOptions{}

			if cached {
				snapshot, err := app.accounts.CachedOverview(cmd.Context())
				if err != nil {
					return err
				}
				overview = domain.AccountOverview{Linked: snapshot.Linked, Suggested: snapshot.Suggested}
				opts.SyncedAt = snapshot.SyncedAt
			} else {
				fetch := func(ctx context.Context) error {
					var err error
					overview, err = app.accounts.Overview(ctx)
					return err
				}
				if asJSON {
					if err := fetch(cmd.Context()); err != nil {
						return err
					}
				} else {
					if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching accounts...", fetch); err != nil {
						return err
					}
				}
			}

			if asJSON {
				return writeJSON(cmd, overview)
			}

			output, err := accountsrender.Render(overview, opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "Serve from the local snapshot without fetching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAccountsLinkCmd(app *app) *cobra.Command {
	var institutionID, accountNumber string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link a suggested account through Open Banking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			_, err := app.accounts.Link(cmd.Context(), domain.LinkRequest{
				InstitutionID: institutionID,
				AccountNumber: accountNumber,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&institutionID, "institution", "", "Institution identifier")
	cmd.Flags().StringVar(&accountNumber, "number", "", "Account number at the institution")
	_ = cmd.MarkFlagRequired("institution")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}

func newAccountsSyncCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <account-id>",
		Short: "Pull fresh transactions for a linked account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}

			_, err = app.accounts.Sync(cmd.Context(), id)
			return err
		},
	}
}

func parseAccountID(raw string) (domain.AccountID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid account id %q", raw)
	}

	return domain.AccountID(id), nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
