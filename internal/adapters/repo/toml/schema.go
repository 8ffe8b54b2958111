package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int                      `toml:"version"`
	SyncedAt   string                   `toml:"synced_at,omitempty"`
	Linked     []accountSchema          `toml:"linked"`
	Suggested  []suggestedAccountSchema `toml:"suggested"`
	Recipients []recipientSchema        `toml:"recipients"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported snapshot schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ID            int64        `toml:"id"`
	InstitutionID string       `toml:"institution_id"`
	BankName      string       `toml:"bank_name"`
	AccountNumber string       `toml:"account_number"`
	MaskedAccount string       `toml:"masked_account"`
	OwnerName     string       `toml:"owner_name"`
	Balance       int64        `toml:"balance"`
	ESGPoint      float64      `toml:"esg_point"`
	Goals         []goalSchema `toml:"goals,omitempty"`
}

type goalSchema struct {
	ID            int64  `toml:"id"`
	BankAccountID int64  `toml:"bank_account_id"`
	Purpose       string `toml:"purpose"`
	LimitAmount   int64  `toml:"limit_amount"`
	Cycle         string `toml:"cycle"`
	Spent         int64  `toml:"spent"`
}

type suggestedAccountSchema struct {
	InstitutionID string `toml:"institution_id"`
	AccountNumber string `toml:"account_number"`
	BankName      string `toml:"bank_name"`
	OwnerName     string `toml:"owner_name"`
}

type recipientSchema struct {
	ID            int64  `toml:"id"`
	OwnerName     string `toml:"owner_name"`
	BankName      string `toml:"bank_name"`
	AccountNumber string `toml:"account_number"`
}
