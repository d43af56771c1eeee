package finapex

import "testing"

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "en", want: "en"},
		{in: "en-US", want: "en"},
		{in: "id", want: "id"},
		{in: "id-ID", want: "id"},
		{in: "fr", want: "en"}, // unsupported tags fall back to English
		{in: "!!", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ResolveLanguage(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ResolveLanguage(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ResolveLanguage(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTranslationLookup(t *testing.T) {
	if got := T("id", "totalNet"); got != "Total Kekayaan" {
		t.Errorf("T(id, totalNet) = %q", got)
	}
	if got := T("en", "totalNet"); got != "Total Net Worth" {
		t.Errorf("T(en, totalNet) = %q", got)
	}
	// missing entries and unknown languages fall back to the key
	if got := T("en", "no-such-key"); got != "no-such-key" {
		t.Errorf("T(en, missing) = %q, want the key itself", got)
	}
	if got := T("xx", "totalNet"); got != "totalNet" {
		t.Errorf("T(unknown lang) = %q, want the key itself", got)
	}
}

func TestTranslationTablesAreComplete(t *testing.T) {
	// both tables must carry the same string ids
	for key := range translations["en"] {
		if _, ok := translations["id"][key]; !ok {
			t.Errorf("id table is missing %q", key)
		}
	}
	for key := range translations["id"] {
		if _, ok := translations["en"][key]; !ok {
			t.Errorf("en table is missing %q", key)
		}
	}
}
