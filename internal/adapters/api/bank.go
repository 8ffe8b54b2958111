package api

import (
	"context"
	"fmt"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type accountPayload struct {
	ID            int64         `json:"id"`
	InstitutionID string        `json:"institutionId"`
	BankName      string        `json:"bankName"`
	AccountNumber string        `json:"accountNumber"`
	MaskedAccount string        `json:"maskedAccount"`
	OwnerName     string        `json:"ownerName"`
	Balance       int64         `json:"balance"`
	ESGPoint      float64       `json:"esgPoint"`
	Goals         []goalPayload `json:"goals"`
}

func (p accountPayload) toDomain() domain.Account {
	account := domain.Account{
		ID:            domain.AccountID(p.ID),
		InstitutionID: p.InstitutionID,
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		MaskedAccount: p.MaskedAccount,
		OwnerName:     p.OwnerName,
		Balance:       p.Balance,
		ESGPoint:      p.ESGPoint,
	}
	for _, goal := range p.Goals {
		account.Goals = append(account.Goals, goal.toDomain())
	}
	return account
}

type goalPayload struct {
	ID            int64  `json:"id"`
	BankAccountID int64  `json:"bankAccountId"`
	Purpose       string `json:"purpose"`
	LimitAmount   int64  `json:"limitAmount"`
	Cycle         string `json:"cycle"`
	Spent         int64  `json:"spent"`
	BankName      string `json:"bankName"`
	MaskedAccount string `json:"maskedAccount"`
}

func (p goalPayload) toDomain() domain.Goal {
	return domain.Goal{
		ID:            domain.GoalID(p.ID),
		BankAccountID: domain.AccountID(p.BankAccountID),
		Purpose:       p.Purpose,
		LimitAmount:   p.LimitAmount,
		Cycle:         domain.GoalCycle(p.Cycle),
		Spent:         p.Spent,
		BankName:      p.BankName,
		MaskedAccount: p.MaskedAccount,
	}
}

func (c *Client) Accounts(ctx context.Context) (domain.AccountOverview, error) {
	var payload struct {
		Linked    []accountPayload `json:"linked"`
		Suggested []struct {
			InstitutionID string `json:"institutionId"`
			AccountNumber string `json:"accountNumber"`
			BankName      string `json:"bankName"`
			OwnerName     string `json:"ownerName"`
		} `json:"suggested"`
	}
	if err := c.get(ctx, "/bank/accounts", nil, &payload); err != nil {
		return domain.AccountOverview{}, fmt.Errorf("list accounts: %w", err)
	}

	overview := domain.AccountOverview{}
	for _, account := range payload.Linked {
		overview.Linked = append(overview.Linked, account.toDomain())
	}
	for _, suggestion := range payload.Suggested {
		overview.Suggested = append(overview.Suggested, domain.SuggestedAccount{
			InstitutionID: suggestion.InstitutionID,
			AccountNumber: suggestion.AccountNumber,
			BankName:      suggestion.BankName,
			OwnerName:     suggestion.OwnerName,
		})
	}

	return overview, nil
}

func (c *Client) LinkAccount(ctx context.Context, req domain.LinkRequest) (domain.Account, error) {
	body := struct {
		InstitutionID string `json:"institutionId"`
		AccountNumber string `json:"accountNumber"`
	}{InstitutionID: req.InstitutionID, AccountNumber: req.AccountNumber}

	var payload accountPayload
	if err := c.post(ctx, "/bank/accounts/link", body, &payload); err != nil {
		return domain.Account{}, fmt.Errorf("link account: %w", err)
	}

	return payload.toDomain(), nil
}

func (c *Client) SyncAccount(ctx context.Context, id domain.AccountID) (domain.SyncResult, error) {
	var payload struct {
		Inserted int `json:"inserted"`
		Skipped  int `json:"skipped"`
	}
	if err := c.post(ctx, fmt.Sprintf("/bank/accounts/%d/sync", id), nil, &payload); err != nil {
		return domain.SyncResult{}, fmt.Errorf("sync account %d: %w", id, err)
	}

	return domain.SyncResult{Inserted: payload.Inserted, Skipped: payload.Skipped}, nil
}

func (c *Client) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	var payload struct {
		Recipients []struct {
			ID            int64  `json:"id"`
			OwnerName     string `json:"ownerName"`
			BankName      string `json:"bankName"`
			AccountNumber string `json:"accountNumber"`
		} `json:"recipients"`
	}
	if err := c.get(ctx, "/bank/accounts/recipients", nil, &payload); err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	recipients := make([]domain.Recipient, 0, len(payload.Recipients))
	for _, recipient := range payload.Recipients {
		recipients = append(recipients, domain.Recipient{
			ID:            domain.AccountID(recipient.ID),
			OwnerName:     recipient.OwnerName,
			BankName:      recipient.BankName,
			AccountNumber: recipient.AccountNumber,
		})
	}

	return recipients, nil
}

func (c *Client) AccountGoals(ctx context.Context, accountID domain.AccountID) ([]domain.Goal, error) {
	var payload struct {
		Goals []goalPayload `json:"goals"`
	}
	if err := c.get(ctx, fmt.Sprintf("/bank/accounts/%d/goals", accountID), nil, &payload); err != nil {
		return nil, fmt.Errorf("list goals for account %d: %w", accountID, err)
	}

	goals := make([]domain.Goal, 0, len(payload.Goals))
	for _, goal := range payload.Goals {
		goals = append(goals, goal.toDomain())
	}

	return goals, nil
}

type goalSpecBody struct {
	Purpose     string `json:"purpose"`
	LimitAmount int64  `json:"limitAmount"`
	Cycle       string `json:"cycle"`
}

func (c *Client) CreateGoal(ctx context.Context, accountID domain.AccountID, spec domain.GoalSpec) (domain.Goal, error) {
	body := goalSpecBody{Purpose: spec.Purpose, LimitAmount: spec.LimitAmount, Cycle: string(spec.Cycle)}

	var payload struct {
		Goal goalPayload `json:"goal"`
	}
	if err := c.post(ctx, fmt.Sprintf("/bank/accounts/%d/goals", accountID), body, &payload); err != nil {
		return domain.Goal{}, fmt.Errorf("create goal: %w", err)
	}

	return payload.Goal.toDomain(), nil
}

func (c *Client) UpdateGoal(ctx context.Context, accountID domain.AccountID, goalID domain.GoalID, spec domain.GoalSpec) (domain.Goal, error) {
	body := goalSpecBody{Purpose: spec.Purpose, LimitAmount: spec.LimitAmount, Cycle: string(spec.Cycle)}

	var payload struct {
		Goal goalPayload `json:"goal"`
	}
	if err := c.put(ctx, fmt.Sprintf("/bank/accounts/%d/goals/%d", accountID, goalID), body, &payload); err != nil {
		return domain.Goal{}, fmt.Errorf("update goal %d: %w", goalID, err)
	}

	return payload.Goal.toDomain(), nil
}

func (c *Client) DeleteGoal(ctx context.Context, accountID domain.AccountID, goalID domain.GoalID) error {
	if err := c.delete(ctx, fmt.Sprintf("/bank/accounts/%d/goals/%d", accountID, goalID)); err != nil {
		return fmt.Errorf("delete goal %d: %w", goalID, err)
	}

	return nil
}
