package finapex

import (
	"fmt"

	money "github.com/Rhymond/go-money"
)

// Themes supported by the presentation layer.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (string, error) {
	switch s {
	case ThemeDark, ThemeLight:
		return s, nil
	default:
		return "", fmt.Errorf("unknown theme: %q", s)
	}
}

// ParseCurrency validates an ISO 4217 currency code.
func ParseCurrency(code string) (string, error) {
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("unknown currency code: %q", code)
	}
	return code, nil
}

// Settings is pure presentation configuration. It carries no accounting
// invariant beyond the validity of its enum-like values.
type Settings struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// MarshalJSON writes the settings with a canonical field order.
func (s Settings) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", s.Currency)
	w.Append("theme", s.Theme)
	w.Append("language", s.Language)
	return w.MarshalJSON()
}

// Views the UI can display.
const (
	ViewDashboard = "dashboard"
	ViewSavings   = "savings"
)

// ParseView validates a view name.
func ParseView(s string) (string, error) {
	switch s {
	case ViewDashboard, ViewSavings:
		return s, nil
	default:
		return "", fmt.Errorf("unknown view: %q", s)
	}
}

// UIState is the ephemeral filter state of the presentation layer. It is
// persisted with the snapshot but takes no part in accounting invariants.
type UIState struct {
	CurrentView  string `json:"currentView"`
	SearchQuery  string `json:"searchQuery"`
	CurrentPage  int    `json:"currentPage"`
	ItemsPerPage int    `json:"itemsPerPage"`
}

// MarshalJSON writes the UI state with a canonical field order.
func (u UIState) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currentView", u.CurrentView)
	w.Append("searchQuery", u.SearchQuery)
	w.Append("currentPage", u.CurrentPage)
	w.Append("itemsPerPage", u.ItemsPerPage)
	return w.MarshalJSON()
}
