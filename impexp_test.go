package finapex

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBackupRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)
	if _, err := st.AddWallet("Celengan B", "20"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.AddTransaction(expense(PrimaryWalletID, 30, "Makan")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportBackup(&buf, st.GetSnapshot()); err != nil {
		t.Fatal(err)
	}

	restored, err := RestoreBackup(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	// the export is the persisted shape byte for byte, so re-exporting the
	// restored snapshot reproduces the original payload
	var again bytes.Buffer
	if err := ExportBackup(&again, restored); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Errorf("round trip drifted:\n%s\n%s", buf.String(), again.String())
	}
}

func TestRestoreBackupValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"not json", `{truncated`, ErrBadPayload},
		{"missing wallets", `{"transactions":[]}`, ErrBadFormat},
		{"missing transactions", `{"wallets":[]}`, ErrBadFormat},
		{"wrong field types", `{"transactions":{},"wallets":[]}`, ErrBadPayload},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := RestoreBackup([]byte(tc.payload)); !errors.Is(err, tc.want) {
				t.Errorf("RestoreBackup() error = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("minimal payload", func(t *testing.T) {
		s, err := RestoreBackup([]byte(`{"transactions":[],"wallets":[]}`))
		if err != nil {
			t.Fatal(err)
		}
		if len(s.Wallets) != 0 {
			t.Error("sparse backups are accepted verbatim, nothing is merged in")
		}
		// zero paging state falls back to the defaults, so the transaction
		// table is not blanked by a sparse backup
		if s.UI.CurrentPage != 1 || s.UI.ItemsPerPage != defaultItemsPerPage {
			t.Errorf("restored ui paging = %+v, want the fresh snapshot defaults", s.UI)
		}
	})
}

func TestExportCSV(t *testing.T) {
	st, _ := newTestStore(t)
	in := expense(PrimaryWalletID, 30.5, "Makan")
	in.Notes = `say "hi", ok`
	if _, err := st.AddTransaction(in); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, st.GetSnapshot()); err != nil {
		t.Fatal(err)
	}

	// text columns are always quote-wrapped, internal quotes doubled
	want := "Date,Category,Amount,Type,Notes,Wallet\n" +
		"2025-07-15,\"Makan\",30.5,out,\"say \"\"hi\"\", ok\",\"Saldo Utama\"\n"
	if buf.String() != want {
		t.Errorf("CSV export:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestExportCSVDanglingWallet(t *testing.T) {
	s := NewSnapshot(testNow)
	s.Transactions = []Transaction{{
		ID: "t1", WalletID: "gone", Type: In, Amount: A(5), Category: "Gaji", Date: testDay, CreatedAt: testNow,
	}}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Unknown") {
		t.Errorf("dangling wallet id did not resolve to Unknown:\n%s", buf.String())
	}
}
