package domain

import "time"

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

type Transaction struct {
	ID            int64
	BankAccountID AccountID
	Date          time.Time
	Type          TransactionType
	Amount        int64
	Category      string
	Description   string
	ESGScore      *float64
}

type Summary struct {
	TotalIncome  int64
	TotalExpense int64
	Net          int64
}

// BreakdownRow is one category/type bucket from the server-side breakdown.
type BreakdownRow struct {
	Category    string
	Type        TransactionType
	TotalAmount int64
}

// TransactionFilter narrows list/summary/breakdown queries. Zero values mean
// "no constraint" for that field.
type TransactionFilter struct {
	AccountID AccountID
	Type      TransactionType
	Start     time.Time
	End       time.Time
}
