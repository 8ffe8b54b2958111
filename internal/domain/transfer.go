package domain

// MaxTransferDescriptionLen bounds the optional transfer description.
const MaxTransferDescriptionLen = 200

// TransferRequest describes a prospective transfer between two linked
// accounts. Amount is in minor currency units. ESGScore is nil until the
// scoring step of the workflow fills it in.
type TransferRequest struct {
	SourceAccountID AccountID
	TargetAccountID AccountID
	Amount          int64
	Description     string
	ESGScore        *float64
}

// Validate enforces the client-side invariants that must hold before any
// network call is issued.
func (r TransferRequest) Validate() error {
	if r.TargetAccountID == r.SourceAccountID {
		return ErrSameAccount
	}
	if r.Amount <= 0 {
		return ErrAmountNotPositive
	}
	if len([]rune(r.Description)) > MaxTransferDescriptionLen {
		return ErrDescriptionTooLong
	}

	return nil
}

// ESGScore is the scoring endpoint's verdict for a prospective transfer.
// AccountPoints is the source account's updated ESG point balance.
type ESGScore struct {
	Score         float64
	Grade         string
	Message       string
	AccountPoints float64
}

// TransferReceipt is the transfer endpoint's acknowledgement.
type TransferReceipt struct {
	TransactionID int64
	Message       string
}

type ConvertRequest struct {
	AccountID AccountID
	Points    float64
}

type ConvertResult struct {
	AmountReceived  int64
	NewBalance      int64
	RemainingPoints float64
}
