package finapex

import (
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)

var testDay = NewDate(2025, time.July, 15)

// memPersister records every persisted snapshot, or fails on demand.
type memPersister struct {
	saves []*Snapshot
	err   error
}

func (p *memPersister) Save(s *Snapshot) error {
	if p.err != nil {
		return p.err
	}
	p.saves = append(p.saves, s)
	return nil
}

// newTestStore builds a store over a fresh snapshot with a deterministic id
// sequence (id-1, id-2, ...) and a fixed clock.
func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	st := NewStore(NewSnapshot(testNow), p)
	var seq int
	st.SetIDGenerator(func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	})
	st.SetClock(func() time.Time { return testNow })
	return st, p
}

func income(wallet string, amount float64, category string) TransactionInput {
	return TransactionInput{WalletID: wallet, Type: In, Amount: A(amount), Category: category, Date: testDay}
}

func expense(wallet string, amount float64, category string) TransactionInput {
	return TransactionInput{WalletID: wallet, Type: Out, Amount: A(amount), Category: category, Date: testDay}
}

// checkBalances asserts the balance identity: each wallet balance equals its
// initial balance plus the signed sum of the transactions routed to it.
func checkBalances(t *testing.T, s *Snapshot, initials map[string]Amount) {
	t.Helper()
	for _, w := range s.Wallets {
		want := initials[w.ID].Add(s.SignedSum(w.ID))
		if !w.Balance.Equal(want) {
			t.Errorf("wallet %q balance = %v, want %v", w.ID, w.Balance, want)
		}
	}
}

func balanceOf(t *testing.T, s *Snapshot, id string) Amount {
	t.Helper()
	w, ok := s.Wallet(id)
	if !ok {
		t.Fatalf("wallet %q does not exist", id)
	}
	return w.Balance
}
