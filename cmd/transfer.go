package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/htdinh/pfob-cli/internal/domain"
)

// maxRecipientNameDistance bounds how fuzzy a recipient name match may be
// before we refuse to guess.
const maxRecipientNameDistance = 3

func newTransferCmd(app *app) *cobra.Command {
	var (
		from        int64
		to          string
		amount      int64
		description string
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Run an ESG-scored transfer between accounts",
		Long:  "Scores the prospective transfer first, then submits it carrying the score. The recipient may be given as an account id or a (fuzzy-matched) owner name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			target, err := resolveRecipient(cmd.Context(), app, to)
			if err != nil {
				return err
			}

			req := domain.TransferRequest{
				SourceAccountID: domain.AccountID(from),
				TargetAccountID: target,
				Amount:          amount,
				Description:     description,
			}

			fetch := func(ctx context.Context) error {
				_, err := app.transfers.Execute(ctx, req)
				return err
			}
			return runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Processing transfer...", fetch)
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "Source account id")
	cmd.Flags().StringVar(&to, "to", "", "Recipient account id or owner name")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Amount in VND")
	cmd.Flags().StringVar(&description, "desc", "", "Transfer description")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// resolveRecipient turns the --to value into an account id. Numeric input is
// taken as-is; anything else is matched against the recipient list by owner
// name, tolerating small typos.
func resolveRecipient(ctx context.Context, app *app, to string) (domain.AccountID, error) {
	if id, err := strconv.ParseInt(to, 10, 64); err == nil && id > 0 {
		return domain.AccountID(id), nil
	}

	recipients, err := app.accounts.Recipients(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve recipient %q: %w", to, err)
	}

	wanted := strings.ToLower(strings.TrimSpace(to))
	best := domain.AccountID(0)
	bestDistance := maxRecipientNameDistance + 1
	ambiguous := false

	for _, recipient := range recipients {
		distance := levenshtein.ComputeDistance(wanted, strings.ToLower(recipient.OwnerName))
		switch {
		case distance < bestDistance:
			best = recipient.ID
			bestDistance = distance
			ambiguous = false
		case distance == bestDistance:
			ambiguous = true
		}
	}

	if best == 0 {
		return 0, fmt.Errorf("resolve recipient %q: %w", to, domain.ErrRecipientNotFound)
	}
	if ambiguous {
		return 0, fmt.Errorf("recipient name %q is ambiguous, use the account id", to)
	}

	return best, nil
}
