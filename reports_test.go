package finapex

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildSummary(t *testing.T) {
	st, _ := newTestStore(t)
	for _, in := range []TransactionInput{
		income(PrimaryWalletID, 100, "Gaji"),
		expense(PrimaryWalletID, 30, "Makan"),
		expense(PrimaryWalletID, 20, "Makan"),
	} {
		if _, err := st.AddTransaction(in); err != nil {
			t.Fatal(err)
		}
	}
	// same month of a different year must not count
	old := income(PrimaryWalletID, 999, "Gaji")
	old.Date = NewDate(2024, time.July, 15)
	if _, err := st.AddTransaction(old); err != nil {
		t.Fatal(err)
	}

	sum := BuildSummary(st.GetSnapshot(), testDay)
	if !sum.MonthIncome.Equal(A(100)) {
		t.Errorf("month income = %v, want 100", sum.MonthIncome)
	}
	if !sum.MonthExpense.Equal(A(50)) {
		t.Errorf("month expense = %v, want 50", sum.MonthExpense)
	}
	if !sum.TotalNet.Equal(A(1049)) {
		t.Errorf("total net = %v, want 1049", sum.TotalNet)
	}
}

func TestFilterTransactions(t *testing.T) {
	st, _ := newTestStore(t)
	groceries := expense(PrimaryWalletID, 30, "Makan")
	groceries.Notes = "Grocery run"
	coffee := expense(PrimaryWalletID, 5, "Makan")
	coffee.Notes = "Coffee"
	for _, in := range []TransactionInput{groceries, coffee} {
		if _, err := st.AddTransaction(in); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"gro", 1},   // matches notes, case-insensitive
		{"makan", 2}, // matches category
		{"xyz", 0},
	}
	for _, tc := range tests {
		t.Run("q="+tc.query, func(t *testing.T) {
			if err := st.SetSearchQuery(tc.query); err != nil {
				t.Fatal(err)
			}
			if got := FilterTransactions(st.GetSnapshot()); len(got) != tc.want {
				t.Errorf("filter matched %d transactions, want %d", len(got), tc.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	txs := make([]Transaction, 25)
	tests := []struct {
		name          string
		page, perPage int
		want          int
	}{
		{"first page", 1, 10, 10},
		{"last partial page", 3, 10, 5},
		{"beyond the end", 4, 10, 0},
		{"invalid page", 0, 10, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Paginate(txs, tc.page, tc.perPage); len(got) != tc.want {
				t.Errorf("Paginate(%d, %d) returned %d rows, want %d", tc.page, tc.perPage, len(got), tc.want)
			}
		})
	}

	if got := Pages(25, 10); got != 3 {
		t.Errorf("Pages(25, 10) = %d, want 3", got)
	}
	if got := Pages(0, 10); got != 1 {
		t.Errorf("Pages(0, 10) = %d, want 1", got)
	}
}

func TestExpenseByCategory(t *testing.T) {
	st, _ := newTestStore(t)
	for _, in := range []TransactionInput{
		expense(PrimaryWalletID, 30, "Makan"),
		expense(PrimaryWalletID, 10, "Transport"),
		expense(PrimaryWalletID, 20, "Makan"),
		income(PrimaryWalletID, 100, "Gaji"), // income never aggregates
	} {
		if _, err := st.AddTransaction(in); err != nil {
			t.Fatal(err)
		}
	}

	got := ExpenseByCategory(st.GetSnapshot())
	// first-appearance order over the log, which is newest first
	want := []CategoryTotal{
		{Category: "Makan", Total: A(50)},
		{Category: "Transport", Total: A(10)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Category != want[i].Category || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("aggregate[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildDashboardIsPure(t *testing.T) {
	st, _ := newTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := st.AddTransaction(expense(PrimaryWalletID, 1, "Makan")); err != nil {
			t.Fatal(err)
		}
	}
	s := st.GetSnapshot()
	before, err := s.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	first := BuildDashboard(s, testDay)
	second := BuildDashboard(s, testDay)
	if !reflect.DeepEqual(first, second) {
		t.Error("two builds over the same snapshot differ")
	}
	if len(first.Transactions) != 10 || first.PageCount != 2 {
		t.Errorf("page holds %d rows over %d pages, want 10 over 2", len(first.Transactions), first.PageCount)
	}

	after, err := s.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("building the dashboard mutated the snapshot")
	}
}
