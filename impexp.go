package finapex

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file handles the backup surface: JSON export/restore and CSV export.
// The JSON backup is the persisted snapshot, byte for byte.

// ExportBackup writes the snapshot to w in the backup format.
func ExportBackup(w io.Writer, s *Snapshot) error {
	return EncodeSnapshot(w, s)
}

// RestoreBackup parses a backup payload and returns the snapshot it holds.
//
// Validation is deliberately minimal: the payload must be valid JSON
// (ErrBadPayload otherwise) and must carry both a transactions and a wallets
// field (ErrBadFormat otherwise). Per-record shape is not checked beyond what
// decoding requires; the snapshot replaces the current one verbatim, no merge.
func RestoreBackup(payload []byte) (*Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if _, ok := fields["transactions"]; !ok {
		return nil, ErrBadFormat
	}
	if _, ok := fields["wallets"]; !ok {
		return nil, ErrBadFormat
	}
	var s Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	// Entity data is taken as-is, but a sparse backup can leave the paging
	// state at zero, which would blank the transaction table. Those values
	// fall back to the defaults of a fresh snapshot.
	if s.UI.CurrentPage < 1 {
		s.UI.CurrentPage = 1
	}
	if s.UI.ItemsPerPage < 1 {
		s.UI.ItemsPerPage = defaultItemsPerPage
	}
	return &s, nil
}

// csvHeader is the column layout of the CSV export.
const csvHeader = "Date,Category,Amount,Type,Notes,Wallet"

// ExportCSV writes one row per transaction. The free-text columns Category,
// Notes and Wallet are always quote-wrapped, with internal quotes doubled;
// date and numeric columns stay plain. The wallet column holds the wallet
// name resolved against the current wallet set, or "Unknown" when the
// referenced wallet no longer exists.
func ExportCSV(w io.Writer, s *Snapshot) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, t := range s.Transactions {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s\n",
			t.Date,
			csvQuote(t.Category),
			t.Amount,
			t.Type,
			csvQuote(t.Notes),
			csvQuote(s.WalletName(t.WalletID)))
		if err != nil {
			return fmt.Errorf("cannot write CSV row for transaction %q: %w", t.ID, err)
		}
	}
	return nil
}

// csvQuote wraps a text field in double quotes, doubling any internal quote.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
