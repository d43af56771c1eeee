package finapex

import (
	"fmt"
	"slices"
	"time"
)

// This file holds the ledger consistency engine: every mutation is a pure
// function from an old snapshot to a new one. The balance update and the
// corresponding change to the transaction log land in the same snapshot, so
// they are applied together or not at all.

// addTransaction prepends a new transaction to the log and applies its signed
// amount to the referenced wallet. A new category is appended to the set in
// first-seen order. Routing to an unknown wallet is a validation error.
func addTransaction(s *Snapshot, in TransactionInput, id string, now time.Time) (*Snapshot, Transaction, error) {
	if err := in.Validate(s); err != nil {
		return nil, Transaction{}, err
	}
	tx := Transaction{
		ID:        id,
		WalletID:  in.WalletID,
		Type:      in.Type,
		Amount:    in.Amount,
		Category:  in.Category,
		Date:      in.Date,
		Notes:     in.Notes,
		CreatedAt: now,
	}
	next := s.Clone()
	next.Transactions = append([]Transaction{tx}, next.Transactions...)
	next.adjustBalance(tx.WalletID, tx.Type.Signed(tx.Amount))
	next.appendCategory(tx.Category)
	return next, tx, nil
}

// updateTransaction replaces the stored record with the patch merged over it
// and reconciles balances in two steps, in exactly this order: first the old
// transaction's effect is reversed on its old wallet, then the merged
// transaction's effect is applied on its (possibly different) new wallet.
// This covers wallet reassignment (the balance moves from one wallet to the
// other) and direction changes (the sign flips).
func updateTransaction(s *Snapshot, id string, patch TransactionPatch) (*Snapshot, error) {
	old, ok := s.Transaction(id)
	if !ok {
		return nil, fmt.Errorf("%w: transaction %q", ErrNotFound, id)
	}
	merged := patch.mergeOver(old)
	if _, err := ParseTxType(string(merged.Type)); err != nil {
		return nil, err
	}
	if !merged.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, ok := s.Wallet(merged.WalletID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWallet, merged.WalletID)
	}

	next := s.Clone()
	next.adjustBalance(old.WalletID, old.Type.Signed(old.Amount).Neg())
	next.adjustBalance(merged.WalletID, merged.Type.Signed(merged.Amount))
	for i, t := range next.Transactions {
		if t.ID == id {
			next.Transactions[i] = merged
			break
		}
	}
	next.appendCategory(merged.Category)
	return next, nil
}

// deleteTransaction reverses the transaction's balance effect on its wallet
// and removes it from the log.
func deleteTransaction(s *Snapshot, id string) (*Snapshot, error) {
	tx, ok := s.Transaction(id)
	if !ok {
		return nil, fmt.Errorf("%w: transaction %q", ErrNotFound, id)
	}
	next := s.Clone()
	next.adjustBalance(tx.WalletID, tx.Type.Signed(tx.Amount).Neg())
	next.Transactions = slices.DeleteFunc(next.Transactions, func(t Transaction) bool {
		return t.ID == id
	})
	return next, nil
}

// addWallet appends a wallet with the given name and initial balance.
func addWallet(s *Snapshot, name string, initial Amount, id string, now time.Time) (*Snapshot, Wallet, error) {
	w := Wallet{ID: id, Name: name, Balance: initial, CreatedAt: now}
	next := s.Clone()
	next.Wallets = append(next.Wallets, w)
	return next, w, nil
}

// deleteWallet removes a wallet from the set. The primary wallet is
// protected. The deleted wallet's transactions are not dropped: they are
// reassigned to the primary wallet, and their signed sum is folded into the
// primary balance so the balance identity holds for every remaining wallet.
func deleteWallet(s *Snapshot, id string) (*Snapshot, error) {
	if id == PrimaryWalletID {
		return nil, ErrProtected
	}
	if _, ok := s.Wallet(id); !ok {
		return nil, fmt.Errorf("%w: wallet %q", ErrNotFound, id)
	}
	next := s.Clone()
	next.adjustBalance(PrimaryWalletID, next.SignedSum(id))
	for i, t := range next.Transactions {
		if t.WalletID == id {
			next.Transactions[i].WalletID = PrimaryWalletID
		}
	}
	next.Wallets = slices.DeleteFunc(next.Wallets, func(w Wallet) bool {
		return w.ID == id
	})
	return next, nil
}

// Presentation state mutations. They commit like any other mutation, even
// when the new value equals the old one.

func switchView(s *Snapshot, view string) (*Snapshot, error) {
	v, err := ParseView(view)
	if err != nil {
		return nil, err
	}
	next := s.Clone()
	next.UI.CurrentView = v
	return next, nil
}

func setSearchQuery(s *Snapshot, query string) (*Snapshot, error) {
	next := s.Clone()
	next.UI.SearchQuery = query
	next.UI.CurrentPage = 1
	return next, nil
}

func setPage(s *Snapshot, page int) (*Snapshot, error) {
	if page < 1 {
		return nil, fmt.Errorf("invalid page number: %d", page)
	}
	next := s.Clone()
	next.UI.CurrentPage = page
	return next, nil
}

func setLanguage(s *Snapshot, lang string) (*Snapshot, error) {
	l, err := ResolveLanguage(lang)
	if err != nil {
		return nil, err
	}
	next := s.Clone()
	next.Settings.Language = l
	return next, nil
}

func setCurrency(s *Snapshot, code string) (*Snapshot, error) {
	c, err := ParseCurrency(code)
	if err != nil {
		return nil, err
	}
	next := s.Clone()
	next.Settings.Currency = c
	return next, nil
}

func setTheme(s *Snapshot, theme string) (*Snapshot, error) {
	t, err := ParseTheme(theme)
	if err != nil {
		return nil, err
	}
	next := s.Clone()
	next.Settings.Theme = t
	return next, nil
}
