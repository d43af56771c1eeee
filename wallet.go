package finapex

import "time"

// PrimaryWalletID is the reserved id of the default wallet. The primary
// wallet exists in every snapshot and cannot be deleted.
const PrimaryWalletID = "main"

// Wallet is a named balance-holding account within the ledger.
//
// Balance is derived but cached: it always equals the wallet's initial
// balance plus the signed sum of the transactions routed to it. The store
// maintains it incrementally, one arithmetic delta per mutation, instead of
// recomputing it from the log.
type Wallet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   Amount    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// MarshalJSON writes the wallet with a canonical field order.
func (w Wallet) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("id", w.ID)
	jw.Append("name", w.Name)
	jw.Append("balance", w.Balance)
	jw.Append("createdAt", w.CreatedAt.Format(time.RFC3339))
	return jw.MarshalJSON()
}

// SavingsTarget is a savings goal. It is carried through persistence and
// backup untouched; no mutation operates on it.
type SavingsTarget struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Target  Amount `json:"targetAmount"`
	Current Amount `json:"currentAmount"`
}

// MarshalJSON writes the savings target with a canonical field order.
func (t SavingsTarget) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("id", t.ID)
	jw.Append("name", t.Name)
	jw.Append("targetAmount", t.Target)
	jw.Append("currentAmount", t.Current)
	return jw.MarshalJSON()
}
