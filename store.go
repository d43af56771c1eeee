package finapex

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Persister writes a committed snapshot to durable storage.
type Persister interface {
	Save(*Snapshot) error
}

// Store is the state container of the application. It owns the current
// snapshot and applies mutations by committing the snapshot a pure mutation
// function produced. Every commit persists the whole snapshot and invokes
// the redraw hook unconditionally.
//
// The store is single-threaded by design: each user action runs to
// completion before the next one, so no locking discipline is needed.
type Store struct {
	snapshot *Snapshot
	persist  Persister
	onCommit func(*Snapshot)

	// collaborators supplied by the host, injectable for tests
	newID func() string
	now   func() time.Time
}

// NewStore creates a store around an initial snapshot.
func NewStore(snapshot *Snapshot, persist Persister) *Store {
	return &Store{
		snapshot: snapshot,
		persist:  persist,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// OnCommit registers the redraw hook, called after every commit with the new
// snapshot.
func (st *Store) OnCommit(fn func(*Snapshot)) { st.onCommit = fn }

// SetIDGenerator replaces the unique-id collaborator.
func (st *Store) SetIDGenerator(fn func() string) { st.newID = fn }

// SetClock replaces the timestamp collaborator.
func (st *Store) SetClock(fn func() time.Time) { st.now = fn }

// GetSnapshot returns the current snapshot. Callers must treat it as
// read-only; mutations go through the store operations.
func (st *Store) GetSnapshot() *Snapshot { return st.snapshot }

// Commit replaces the current snapshot with next, persists it and triggers
// the redraw hook. A persistence failure is reported as a *PersistenceError
// but the in-memory snapshot stays applied, and the redraw still runs.
func (st *Store) Commit(next *Snapshot) error {
	st.snapshot = next

	var perr error
	if st.persist != nil {
		if err := st.persist.Save(next); err != nil {
			perr = &PersistenceError{Err: err}
			log.Printf("warning: %v", perr)
		}
	}
	if st.onCommit != nil {
		st.onCommit(next)
	}
	return perr
}

// AddTransaction records a new transaction and adjusts the referenced
// wallet's balance.
func (st *Store) AddTransaction(in TransactionInput) (Transaction, error) {
	next, tx, err := addTransaction(st.snapshot, in, st.newID(), st.now())
	if err != nil {
		return Transaction{}, err
	}
	return tx, st.Commit(next)
}

// UpdateTransaction merges the patch over the stored record, reversing the
// old balance effect before applying the new one.
func (st *Store) UpdateTransaction(id string, patch TransactionPatch) error {
	next, err := updateTransaction(st.snapshot, id, patch)
	if err != nil {
		return err
	}
	return st.Commit(next)
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (st *Store) DeleteTransaction(id string) error {
	next, err := deleteTransaction(st.snapshot, id)
	if err != nil {
		return err
	}
	return st.Commit(next)
}

// AddWallet creates a wallet. Empty or malformed initial balances coerce
// to zero.
func (st *Store) AddWallet(name, initial string) (Wallet, error) {
	next, w, err := addWallet(st.snapshot, name, LenientAmount(initial), st.newID(), st.now())
	if err != nil {
		return Wallet{}, err
	}
	return w, st.Commit(next)
}

// DeleteWallet removes a wallet, reassigning its transactions to the primary
// wallet. Deleting the primary wallet returns ErrProtected.
func (st *Store) DeleteWallet(id string) error {
	next, err := deleteWallet(st.snapshot, id)
	if err != nil {
		return err
	}
	return st.Commit(next)
}

// RestoreFromBackup replaces the entire snapshot with the backup payload.
func (st *Store) RestoreFromBackup(payload []byte) error {
	next, err := RestoreBackup(payload)
	if err != nil {
		return err
	}
	return st.Commit(next)
}

// SwitchView changes the current view.
func (st *Store) SwitchView(view string) error {
	return st.commitOf(switchView(st.snapshot, view))
}

// SetSearchQuery updates the live search filter and resets pagination.
func (st *Store) SetSearchQuery(query string) error {
	return st.commitOf(setSearchQuery(st.snapshot, query))
}

// SetPage moves the transaction table to the given page.
func (st *Store) SetPage(page int) error {
	return st.commitOf(setPage(st.snapshot, page))
}

// SetLanguage changes the display language.
func (st *Store) SetLanguage(lang string) error {
	return st.commitOf(setLanguage(st.snapshot, lang))
}

// SetCurrency changes the display currency.
func (st *Store) SetCurrency(code string) error {
	return st.commitOf(setCurrency(st.snapshot, code))
}

// SetTheme changes the display theme.
func (st *Store) SetTheme(theme string) error {
	return st.commitOf(setTheme(st.snapshot, theme))
}

func (st *Store) commitOf(next *Snapshot, err error) error {
	if err != nil {
		return err
	}
	return st.Commit(next)
}
