package ports

import (
	"context"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.Registration, error)
	Profile(ctx context.Context) (domain.User, error)
}

type BankAPI interface {
	Accounts(ctx context.Context) (domain.AccountOverview, error)
	LinkAccount(ctx context.Context, req domain.LinkRequest) (domain.Account, error)
	SyncAccount(ctx context.Context, id domain.AccountID) (domain.SyncResult, error)
	Recipients(ctx context.Context) ([]domain.Recipient, error)
	AccountGoals(ctx context.Context, accountID domain.AccountID) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, accountID domain.AccountID, spec domain.GoalSpec) (domain.Goal, error)
	UpdateGoal(ctx context.Context, accountID domain.AccountID, goalID domain.GoalID, spec domain.GoalSpec) (domain.Goal, error)
	DeleteGoal(ctx context.Context, accountID domain.AccountID, goalID domain.GoalID) error
}

type GoalsAPI interface {
	Goals(ctx context.Context) ([]domain.Goal, error)
	Alerts(ctx context.Context) ([]domain.GoalAlert, error)
}

type TransactionsAPI interface {
	Transactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	Summary(ctx context.Context, filter domain.TransactionFilter) (domain.Summary, error)
	Breakdown(ctx context.Context, filter domain.TransactionFilter) ([]domain.BreakdownRow, error)
	// ScoreTransfer computes the ESG score for a prospective transfer without
	// persisting anything.
	ScoreTransfer(ctx context.Context, req domain.TransferRequest) (domain.ESGScore, error)
	// Transfer persists the transfer and applies its monetary and ESG-point
	// effects.
	Transfer(ctx context.Context, req domain.TransferRequest) (domain.TransferReceipt, error)
	ConvertPoints(ctx context.Context, req domain.ConvertRequest) (domain.ConvertResult, error)
}
