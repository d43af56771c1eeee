package finapex

import "strings"

// This file computes the read models of the presentation layer. Everything
// here is a pure function of a snapshot: computing the same report twice on
// the same snapshot yields the same result, and no function mutates state.

// Summary holds the headline figures of the dashboard.
type Summary struct {
	Date         Date   // the day the summary was computed for
	TotalNet     Amount // sum of all wallet balances
	MonthIncome  Amount // income recorded in Date's calendar month
	MonthExpense Amount // expense recorded in Date's calendar month
}

// BuildSummary computes the headline figures. Month-to-date sums match on
// month and year of today.
func BuildSummary(s *Snapshot, today Date) Summary {
	sum := Summary{Date: today, TotalNet: s.TotalNet()}
	for _, t := range s.Transactions {
		if !t.Date.SameMonth(today) {
			continue
		}
		switch t.Type {
		case In:
			sum.MonthIncome = sum.MonthIncome.Add(t.Amount)
		case Out:
			sum.MonthExpense = sum.MonthExpense.Add(t.Amount)
		}
	}
	return sum
}

// FilterTransactions applies the snapshot's live search query: a
// case-insensitive substring match over notes and category. An empty query
// matches everything.
func FilterTransactions(s *Snapshot) []Transaction {
	query := strings.ToLower(s.UI.SearchQuery)
	filtered := make([]Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		if strings.Contains(strings.ToLower(t.Notes), query) ||
			strings.Contains(strings.ToLower(t.Category), query) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Paginate slices one page out of the transaction list. Pages are 1-based;
// a page beyond the end is empty.
func Paginate(txs []Transaction, page, perPage int) []Transaction {
	if page < 1 || perPage < 1 {
		return []Transaction{}
	}
	start := (page - 1) * perPage
	if start >= len(txs) {
		return []Transaction{}
	}
	end := min(start+perPage, len(txs))
	return txs[start:end]
}

// Pages returns the number of pages the transaction list spans.
func Pages(total, perPage int) int {
	if perPage < 1 || total == 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// CategoryTotal is one slice of the expense-by-category aggregation.
type CategoryTotal struct {
	Category string
	Total    Amount
}

// ExpenseByCategory aggregates expense transactions per category, in the
// order categories first appear in the log.
func ExpenseByCategory(s *Snapshot) []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)
	for _, t := range s.Transactions {
		if t.Type != Out {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Category: t.Category})
		}
		totals[i].Total = totals[i].Total.Add(t.Amount)
	}
	return totals
}

// CategoryList returns the category set with duplicates removed, preserving
// first-seen order, for input assistance.
func CategoryList(s *Snapshot) []string {
	seen := make(map[string]struct{}, len(s.Categories))
	out := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Dashboard is the full read model the presentation layer redraws from.
type Dashboard struct {
	Summary      Summary
	Transactions []Transaction // filtered and paginated
	Page         int
	PageCount    int
	Wallets      []Wallet
	Categories   []string
	Expenses     []CategoryTotal
}

// BuildDashboard recomputes everything visible from the snapshot. It is
// invoked after every commit; there is no incremental diffing, a full
// recompute every time.
func BuildDashboard(s *Snapshot, today Date) *Dashboard {
	filtered := FilterTransactions(s)
	return &Dashboard{
		Summary:      BuildSummary(s, today),
		Transactions: Paginate(filtered, s.UI.CurrentPage, s.UI.ItemsPerPage),
		Page:         s.UI.CurrentPage,
		PageCount:    Pages(len(filtered), s.UI.ItemsPerPage),
		Wallets:      notNil(s.Wallets),
		Categories:   CategoryList(s),
		Expenses:     ExpenseByCategory(s),
	}
}
