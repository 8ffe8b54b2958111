package api

import (
	"context"
	"fmt"

	"github.com/htdinh/pfob-cli/internal/domain"
)

func (c *Client) Goals(ctx context.Context) ([]domain.Goal, error) {
	var payload struct {
		Goals []goalPayload `json:"goals"`
	}
	if err := c.get(ctx, "/goals", nil, &payload); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]domain.Goal, 0, len(payload.Goals))
	for _, goal := range payload.Goals {
		goals = append(goals, goal.toDomain())
	}

	return goals, nil
}

func (c *Client) Alerts(ctx context.Context) ([]domain.GoalAlert, error) {
	var payload struct {
		Alerts []struct {
			GoalID        int64   `json:"goalId"`
			BankAccountID int64   `json:"bankAccountId"`
			Purpose       string  `json:"purpose"`
			Message       string  `json:"message"`
			Level         string  `json:"level"`
			Ratio         float64 `json:"ratio"`
		} `json:"alerts"`
	}
	if err := c.get(ctx, "/goals/alerts", nil, &payload); err != nil {
		return nil, fmt.Errorf("list goal alerts: %w", err)
	}

	alerts := make([]domain.GoalAlert, 0, len(payload.Alerts))
	for _, alert := range payload.Alerts {
		alerts = append(alerts, domain.GoalAlert{
			GoalID:        domain.GoalID(alert.GoalID),
			BankAccountID: domain.AccountID(alert.BankAccountID),
			Purpose:       alert.Purpose,
			Message:       alert.Message,
			Level:         alert.Level,
			Ratio:         alert.Ratio,
		})
	}

	return alerts, nil
}
