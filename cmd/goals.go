package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	goalsrender "github.com/htdinh/pfob-cli/internal/adapters/render/goals"
	"github.com/htdinh/pfob-cli/internal/domain"
)

func newGoalsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage spending-limit goals",
	}

	cmd.AddCommand(
		newGoalsListCmd(app),
		newGoalsAlertsCmd(app),
		newGoalsCreateCmd(app),
		newGoalsUpdateCmd(app),
		newGoalsDeleteCmd(app),
	)

	return cmd
}

func newGoalsListCmd(app *app) *cobra.Command {
	var accountID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals with their current spend and alerts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			var (
				goals  []domain.Goal
				alerts []domain.GoalAlert
			)
			fetch := func(ctx context.Context) error {
				var err error
				if accountID > 0 {
					goals, err = app.goals.AccountGoals(ctx, domain.AccountID(accountID))
				} else {
					goals, err = app.goals.List(ctx)
				}
				if err != nil {
					return err
				}

				alerts, err = app.goals.Alerts(ctx)
				return err
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching goals...", fetch); err != nil {
				return err
			}

			output, err := goalsrender.Render(goals, alerts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "Limit to one account's goals")

	return cmd
}

func newGoalsAlertsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show goals close to or over their limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			alerts, err := app.goals.Alerts(cmd.Context())
			if err != nil {
				return err
			}

			if len(alerts) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No goal alerts.")
				return nil
			}

			for _, alert := range alerts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", alert.Level, alert.Purpose, alert.Message)
			}
			return nil
		},
	}
}

func newGoalsCreateCmd(app *app) *cobra.Command {
	var (
		accountID   int64
		purpose     string
		limitAmount int64
		cycle       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a spending-limit goal on an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			spec, err := goalSpecFromFlags(purpose, limitAmount, cycle)
			if err != nil {
				return err
			}

			_, err = app.goals.Create(cmd.Context(), domain.AccountID(accountID), spec)
			return err
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "Account the goal applies to")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Spending category the goal limits")
	cmd.Flags().Int64Var(&limitAmount, "limit", 0, "Limit amount in VND")
	cmd.Flags().StringVar(&cycle, "cycle", "monthly", "Reset cycle: daily, weekly, monthly or yearly")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("purpose")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func newGoalsUpdateCmd(app *app) *cobra.Command {
	var (
		accountID   int64
		goalID      int64
		purpose     string
		limitAmount int64
		cycle       string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a goal's purpose, limit or cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			spec, err := goalSpecFromFlags(purpose, limitAmount, cycle)
			if err != nil {
				return err
			}

			_, err = app.goals.Update(cmd.Context(), domain.AccountID(accountID), domain.GoalID(goalID), spec)
			return err
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "Account the goal belongs to")
	cmd.Flags().Int64Var(&goalID, "goal", 0, "Goal to update")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Spending category the goal limits")
	cmd.Flags().Int64Var(&limitAmount, "limit", 0, "Limit amount in VND")
	cmd.Flags().StringVar(&cycle, "cycle", "monthly", "Reset cycle: daily, weekly, monthly or yearly")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("purpose")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func newGoalsDeleteCmd(app *app) *cobra.Command {
	var accountID, goalID int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer app.flushNotices(cmd.ErrOrStderr())

			return app.goals.Delete(cmd.Context(), domain.AccountID(accountID), domain.GoalID(goalID))
		},
	}

	cmd.Flags().Int64Var(&accountID, "account", 0, "Account the goal belongs to")
	cmd.Flags().Int64Var(&goalID, "goal", 0, "Goal to delete")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func goalSpecFromFlags(purpose string, limitAmount int64, cycle string) (domain.GoalSpec, error) {
	parsed := domain.GoalCycle(cycle)
	if !parsed.Valid() {
		return domain.GoalSpec{}, fmt.Errorf("invalid cycle %q: want daily, weekly, monthly or yearly", cycle)
	}
	if limitAmount <= 0 {
		return domain.GoalSpec{}, fmt.Errorf("invalid limit %s: must be positive", strconv.FormatInt(limitAmount, 10))
	}

	return domain.GoalSpec{Purpose: purpose, LimitAmount: limitAmount, Cycle: parsed}, nil
}
