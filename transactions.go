package finapex

import (
	"fmt"
	"time"
)

// TxType is the direction of a transaction: money flowing in or out of a wallet.
type TxType string

const (
	// In marks an income transaction.
	In TxType = "in"
	// Out marks an expense transaction.
	Out TxType = "out"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case In:
		return In, nil
	case Out:
		return Out, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Signed returns the amount with the sign implied by the direction:
// positive for income, negative for expense.
func (t TxType) Signed(a Amount) Amount {
	if t == Out {
		return a.Neg()
	}
	return a
}

// Transaction is one movement in the ledger. A transaction is immutable once
// created; updates replace the stored record and reconcile balances.
type Transaction struct {
	ID        string    `json:"id"`
	WalletID  string    `json:"walletId"`
	Type      TxType    `json:"type"`
	Amount    Amount    `json:"amount"`
	Category  string    `json:"category"`
	Date      Date      `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MarshalJSON writes the transaction with a canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("walletId", t.WalletID)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Append("date", t.Date)
	w.Optional("notes", t.Notes)
	w.Append("createdAt", t.CreatedAt.Format(time.RFC3339))
	return w.MarshalJSON()
}

// TransactionInput carries the user-supplied fields of a new transaction.
// The id and creation timestamp are generated by the store.
type TransactionInput struct {
	WalletID string
	Type     TxType
	Amount   Amount
	Category string
	Date     Date
	Notes    string
}

// Validate checks the input against the wallet set of a snapshot.
func (in TransactionInput) Validate(s *Snapshot) error {
	if _, err := ParseTxType(string(in.Type)); err != nil {
		return err
	}
	if !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if _, ok := s.Wallet(in.WalletID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWallet, in.WalletID)
	}
	return nil
}

// TransactionPatch carries the fields of an update. Nil fields are preserved
// from the stored record.
type TransactionPatch struct {
	WalletID *string
	Type     *TxType
	Amount   *Amount
	Category *string
	Date     *Date
	Notes    *string
}

// mergeOver returns a copy of old with the patch fields applied. The id and
// creation timestamp are never touched.
func (p TransactionPatch) mergeOver(old Transaction) Transaction {
	merged := old
	if p.WalletID != nil {
		merged.WalletID = *p.WalletID
	}
	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.Notes != nil {
		merged.Notes = *p.Notes
	}
	return merged
}
