package finapex

import (
	"strings"
	"testing"
)

func TestNewSnapshotSeeds(t *testing.T) {
	s := NewSnapshot(testNow)

	w, ok := s.Wallet(PrimaryWalletID)
	if !ok {
		t.Fatal("fresh snapshot has no primary wallet")
	}
	if w.Name != "Saldo Utama" || !w.Balance.IsZero() {
		t.Errorf("primary wallet = %+v, want Saldo Utama with zero balance", w)
	}
	if len(s.Categories) != len(DefaultCategories) {
		t.Errorf("seeded %d categories, want %d", len(s.Categories), len(DefaultCategories))
	}
	if s.Settings.Currency != "IDR" || s.Settings.Theme != ThemeDark || s.Settings.Language != "id" {
		t.Errorf("default settings = %+v", s.Settings)
	}
	if s.UI.CurrentView != ViewDashboard || s.UI.CurrentPage != 1 || s.UI.ItemsPerPage != 10 {
		t.Errorf("default ui = %+v", s.UI)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSnapshot(testNow)
	s.Transactions = []Transaction{{ID: "t1", WalletID: PrimaryWalletID, Type: In, Amount: A(5), Date: testDay}}

	c := s.Clone()
	c.Transactions[0].Amount = A(99)
	c.Wallets[0].Balance = A(99)
	c.Categories[0] = "changed"
	c.Settings.Theme = ThemeLight

	if !s.Transactions[0].Amount.Equal(A(5)) || !s.Wallets[0].Balance.IsZero() {
		t.Error("mutating the clone changed the original entities")
	}
	if s.Categories[0] == "changed" || s.Settings.Theme != ThemeDark {
		t.Error("mutating the clone changed the original categories or settings")
	}
}

func TestWalletNameFallback(t *testing.T) {
	s := NewSnapshot(testNow)
	if got := s.WalletName(PrimaryWalletID); got != "Saldo Utama" {
		t.Errorf("WalletName(primary) = %q", got)
	}
	if got := s.WalletName("gone"); got != "Unknown" {
		t.Errorf("WalletName(dangling) = %q, want Unknown", got)
	}
}

func TestSnapshotMarshalIsCanonical(t *testing.T) {
	s := NewSnapshot(testNow)
	// nil collections, as a sparse restored backup would leave them
	s.SavingsTargets = nil
	s.Categories = nil

	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	// fixed key order
	keys := []string{`"transactions"`, `"wallets"`, `"savingsTargets"`, `"categories"`, `"settings"`, `"ui"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(got, k)
		if i < 0 {
			t.Fatalf("marshaled snapshot is missing %s:\n%s", k, got)
		}
		if i < last {
			t.Fatalf("key %s is out of order:\n%s", k, got)
		}
		last = i
	}
	// nil collections encode as empty arrays
	if strings.Contains(got, "null") {
		t.Errorf("marshaled snapshot contains null collections:\n%s", got)
	}
}
