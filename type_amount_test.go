package finapex

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{in: "1250.50", want: A(1250.5)},
		{in: "1250,50", want: A(1250.5)},
		{in: " 42 ", want: A(42)},
		{in: "-3.5", want: A(-3.5)},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLenientAmount(t *testing.T) {
	if got := LenientAmount("garbage"); !got.IsZero() {
		t.Errorf("LenientAmount(garbage) = %v, want 0", got)
	}
	if got := LenientAmount("10,5"); !got.Equal(A(10.5)) {
		t.Errorf("LenientAmount(10,5) = %v, want 10.5", got)
	}
}

func TestAmountJSONIsPlainNumber(t *testing.T) {
	data, err := json.Marshal(A(1250.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1250.5" {
		t.Errorf("marshaled amount = %s, want a plain number", data)
	}
	var back Amount
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(A(1250.5)) {
		t.Errorf("round trip = %v", back)
	}
}

func TestAmountExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3
	sum := MustParseAmount("0.1").Add(MustParseAmount("0.2"))
	if !sum.Equal(MustParseAmount("0.3")) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", sum)
	}
}
