package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatGroupsThousands(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4064", "4,064.00"},
		{"450.5", "450.50"},
		{"62.6", "62.60"},
		{"0", "0.00"},
		{"1234567.89", "1,234,567.89"},
	}

	for _, tc := range cases {
		amount, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := Format(amount); got != tc.want {
			t.Fatalf("Format(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPENPrefixesSymbol(t *testing.T) {
	amount := decimal.NewFromFloat(153.35)
	if got := FormatPEN(amount); got != "S/ 153.35" {
		t.Fatalf("FormatPEN = %q", got)
	}
}
