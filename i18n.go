package finapex

import (
	"fmt"

	"golang.org/x/text/language"
)

// translations holds the localization string tables. Missing entries fall
// back to the key itself, so a new string id degrades gracefully instead of
// breaking the display.
var translations = map[string]map[string]string{
	"en": {
		"title":         "FINAPEX",
		"dashboard":     "Dashboard",
		"savingsMenu":   "Savings Menu",
		"totalNet":      "Total Net Worth",
		"income":        "Income (Month)",
		"expense":       "Expense (Month)",
		"noData":        "No records found.",
		"deleteConfirm": "Are you sure?",
		"mainBalance":   "Primary Fund",
		"accounts":      "Accounts",
		"goals":         "Savings Goals",
		"addAccount":    "Add Account",
		"addGoal":       "Set Goal",
		"walletName":    "Account Name",
		"goalName":      "Goal Name",
		"transactions":  "Transactions",
		"categories":    "Categories",
		"byCategory":    "Expense by Category",
		"date":          "Date",
		"category":      "Category",
		"notes":         "Notes",
		"amount":        "Amount",
		"wallet":        "Wallet",
		"balance":       "Balance",
		"created":       "Created",
		"page":          "Page",
	},
	"id": {
		"title":         "FINAPEX",
		"dashboard":     "Dashboard",
		"savingsMenu":   "Menu Tabungan",
		"totalNet":      "Total Kekayaan",
		"income":        "Pemasukan (Bulan)",
		"expense":       "Pengeluaran (Bulan)",
		"noData":        "Data tidak ditemukan.",
		"deleteConfirm": "Hapus data ini?",
		"mainBalance":   "Saldo Utama",
		"accounts":      "Daftar Celengan",
		"goals":         "Target Tabungan",
		"addAccount":    "Tambah Celengan",
		"addGoal":       "Buat Target",
		"walletName":    "Nama Celengan",
		"goalName":      "Nama Target",
		"transactions":  "Transaksi",
		"categories":    "Kategori",
		"byCategory":    "Pengeluaran per Kategori",
		"date":          "Tanggal",
		"category":      "Kategori",
		"notes":         "Catatan",
		"amount":        "Jumlah",
		"wallet":        "Celengan",
		"balance":       "Saldo",
		"created":       "Dibuat",
		"page":          "Halaman",
	},
}

// supported lists the languages with a string table, in matching priority
// order. English wins for unrelated tags.
var supported = []language.Tag{
	language.English,
	language.Indonesian,
}

var matcher = language.NewMatcher(supported)

// ResolveLanguage normalizes a language tag ("en", "en-US", "id", ...) to one
// of the supported table keys.
func ResolveLanguage(tag string) (string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("unknown language: %q", tag)
	}
	_, i, _ := matcher.Match(parsed)
	base, _ := supported[i].Base()
	return base.String(), nil
}

// T looks up a translated string by language and string id, falling back to
// the key itself when missing.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return key
}
