package finapex

import (
	"slices"
	"time"
)

// defaultItemsPerPage is the page size of the transaction table.
const defaultItemsPerPage = 10

// DefaultCategories seeds the category set of a fresh snapshot.
var DefaultCategories = []string{"Gaji", "Makan", "Transport", "Belanja", "Investasi", "Lainnya"}

// Snapshot is the complete application state at one instant: the transaction
// log, the wallets, the savings targets, the category set and the display
// settings. Snapshots are treated as immutable: mutations clone the current
// snapshot and commit the copy, never write in place.
type Snapshot struct {
	Transactions   []Transaction   `json:"transactions"`
	Wallets        []Wallet        `json:"wallets"`
	SavingsTargets []SavingsTarget `json:"savingsTargets"`
	Categories     []string        `json:"categories"`
	Settings       Settings        `json:"settings"`
	UI             UIState         `json:"ui"`
}

// NewSnapshot creates the initial state of a fresh profile: one primary
// wallet with a zero balance, the default category set, and dark Indonesian
// defaults matching the original application.
func NewSnapshot(now time.Time) *Snapshot {
	return &Snapshot{
		Transactions: []Transaction{},
		Wallets: []Wallet{
			{ID: PrimaryWalletID, Name: "Saldo Utama", CreatedAt: now},
		},
		SavingsTargets: []SavingsTarget{},
		Categories:     slices.Clone(DefaultCategories),
		Settings:       Settings{Currency: "IDR", Theme: ThemeDark, Language: "id"},
		UI:             UIState{CurrentView: ViewDashboard, CurrentPage: 1, ItemsPerPage: defaultItemsPerPage},
	}
}

// Clone returns a deep structural copy of the snapshot. Entity values contain
// no shared references, so cloning the slices is enough.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Transactions:   slices.Clone(s.Transactions),
		Wallets:        slices.Clone(s.Wallets),
		SavingsTargets: slices.Clone(s.SavingsTargets),
		Categories:     slices.Clone(s.Categories),
		Settings:       s.Settings,
		UI:             s.UI,
	}
}

// Wallet returns the wallet with the given id.
func (s *Snapshot) Wallet(id string) (Wallet, bool) {
	for _, w := range s.Wallets {
		if w.ID == id {
			return w, true
		}
	}
	return Wallet{}, false
}

// WalletName resolves a wallet id to its name, or "Unknown" when the wallet
// no longer exists. Dangling ids can arrive via restored backups, which are
// accepted verbatim.
func (s *Snapshot) WalletName(id string) string {
	if w, ok := s.Wallet(id); ok {
		return w.Name
	}
	return "Unknown"
}

// Transaction returns the transaction with the given id.
func (s *Snapshot) Transaction(id string) (Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// SignedSum computes the signed sum of all transactions routed to a wallet:
// +amount for income, -amount for expense. A wallet balance always equals its
// initial balance plus this sum.
func (s *Snapshot) SignedSum(walletID string) Amount {
	var sum Amount
	for _, t := range s.Transactions {
		if t.WalletID == walletID {
			sum = sum.Add(t.Type.Signed(t.Amount))
		}
	}
	return sum
}

// TotalNet computes the total net worth, the sum of all wallet balances.
func (s *Snapshot) TotalNet() Amount {
	var sum Amount
	for _, w := range s.Wallets {
		sum = sum.Add(w.Balance)
	}
	return sum
}

// adjustBalance applies a signed delta to the balance of the wallet with the
// given id, in place on this snapshot. A missing wallet is left untouched:
// reversals of transactions whose wallet is gone have nothing to reconcile.
func (s *Snapshot) adjustBalance(walletID string, delta Amount) {
	for i, w := range s.Wallets {
		if w.ID == walletID {
			s.Wallets[i].Balance = w.Balance.Add(delta)
			return
		}
	}
}

// appendCategory adds a category to the set if it is new. The set is
// append-only and preserves first-seen order.
func (s *Snapshot) appendCategory(category string) {
	if category == "" || slices.Contains(s.Categories, category) {
		return
	}
	s.Categories = append(s.Categories, category)
}

// MarshalJSON writes the snapshot with a canonical field order. Nil
// collections, possible after restoring a sparse backup, encode as empty
// arrays so the persisted shape stays stable.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("transactions", notNil(s.Transactions))
	w.Append("wallets", notNil(s.Wallets))
	w.Append("savingsTargets", notNil(s.SavingsTargets))
	w.Append("categories", notNil(s.Categories))
	w.Append("settings", s.Settings)
	w.Append("ui", s.UI)
	return w.MarshalJSON()
}

func notNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
