package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	txrender "github.com/htdinh/pfob-cli/internal/adapters/render/transactions"
	"github.com/htdinh/pfob-cli/internal/domain"
)

const (
	dateFlagLayout    = "2006-01-02"
	defaultWindowDays = 30
)

func newTransactionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Browse transactions",
	}

	cmd.AddCommand(
		newTransactionsListCmd(app),
		newTransactionsSummaryCmd(app),
		newTransactionsBreakdownCmd(app),
	)

	return cmd
}

type transactionFilterFlags struct {
	accountID int64
	txType    string
	from      string
	to        string
}

func (f *transactionFilterFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.accountID, "account", 0, "Limit to one account")
	cmd.Flags().StringVar(&f.txType, "type", "", "Limit to income or expense")
	cmd.Flags().StringVar(&f.from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "End date (YYYY-MM-DD)")
}

func (f *transactionFilterFlags) filter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{AccountID: domain.AccountID(f.accountID)}

	switch f.txType {
	case "":
	case string(domain.TypeIncome), string(domain.TypeExpense):
		filter.Type = domain.TransactionType(f.txType)
	default:
		return domain.TransactionFilter{}, fmt.Errorf("invalid type %q: want income or expense", f.txType)
	}

	if f.from != "" {
		start, err := time.Parse(dateFlagLayout, f.from)
		if err != nil {
			return domain.TransactionFilter{}, fmt.Errorf("invalid start date %q: %w", f.from, err)
		}
		filter.Start = start
	} else {
		filter.Start = time.Now().AddDate(0, 0, -defaultWindowDays)
	}
	if f.to != "" {
		end, err := time.Parse(dateFlagLayout, f.to)
		if err != nil {
			return domain.TransactionFilter{}, fmt.Errorf("invalid end date %q: %w", f.to, err)
		}
		// push the boundary past midnight so the end day itself is included
		filter.End = end.AddDate(0, 0, 1)
	}

	return filter, nil
}

func newTransactionsListCmd(app *app) *cobra.Command {
	var flags transactionFilterFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			filter, err := flags.filter()
			if err != nil {
				return err
			}

			var transactions []domain.Transaction
			fetch := func(ctx context.Context) error {
				var err error
				transactions, err = app.tx.Transactions(ctx, filter)
				return err
			}
			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd, transactions)
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching transactions...", fetch); err != nil {
				return err
			}

			output, err := txrender.Render(transactions)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newTransactionsSummaryCmd(app *app) *cobra.Command {
	var flags transactionFilterFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income/expense totals for the period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			filter, err := flags.filter()
			if err != nil {
				return err
			}

			summary, err := app.tx.Summary(cmd.Context(), filter)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), txrender.RenderSummary(summary))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newTransactionsBreakdownCmd(app *app) *cobra.Command {
	var flags transactionFilterFlags

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			filter, err := flags.filter()
			if err != nil {
				return err
			}

			rows, err := app.tx.Breakdown(cmd.Context(), filter)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), txrender.RenderBreakdown(rows))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
