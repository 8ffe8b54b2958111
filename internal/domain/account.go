package domain

import "time"

type AccountID int64

// Account is a linked bank account authorized for Open Banking sync.
type Account struct {
	ID            AccountID
	InstitutionID string
	BankName      string
	AccountNumber string
	MaskedAccount string
	OwnerName     string
	Balance       int64
	ESGPoint      float64
	Goals         []Goal
}

// SuggestedAccount is an account detected as belonging to the user but not
// yet linked.
type SuggestedAccount struct {
	InstitutionID string
	AccountNumber string
	BankName      string
	OwnerName     string
}

// Recipient is an account owned by another user that can receive transfers.
type Recipient struct {
	ID            AccountID
	OwnerName     string
	BankName      string
	AccountNumber string
}

type AccountOverview struct {
	Linked    []Account
	Suggested []SuggestedAccount
}

type LinkRequest struct {
	InstitutionID string
	AccountNumber string
}

type SyncResult struct {
	Inserted int
	Skipped  int
}

// Snapshot is the locally cached view of the account panes, refreshed after
// every successful fetch so commands can fall back to it offline.
type Snapshot struct {
	Linked     []Account
	Suggested  []SuggestedAccount
	Recipients []Recipient
	SyncedAt   time.Time
}
