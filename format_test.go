package finapex

import (
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(A(1250), "IDR"); !strings.Contains(got, "Rp") {
		t.Errorf("FormatMoney(1250, IDR) = %q, want the rupiah symbol", got)
	}
	if got := FormatMoney(A(1250.5), "USD"); !strings.Contains(got, "$") {
		t.Errorf("FormatMoney(1250.5, USD) = %q, want the dollar symbol", got)
	}
	// unknown codes fall back to a plain prefix
	if got := FormatMoney(A(5), "XQZ"); got != "XQZ 5" {
		t.Errorf("FormatMoney(5, XQZ) = %q, want %q", got, "XQZ 5")
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(A(5), In, "XQZ"); !strings.HasPrefix(got, "+") {
		t.Errorf("income = %q, want a + prefix", got)
	}
	if got := FormatSignedMoney(A(5), Out, "XQZ"); !strings.HasPrefix(got, "-") {
		t.Errorf("expense = %q, want a - prefix", got)
	}
}
