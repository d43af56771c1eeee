package finapex

import (
	money "github.com/Rhymond/go-money"
)

// FormatMoney renders an amount in the given ISO currency code, using the
// currency's own grouping, decimal places and symbol. Unknown codes fall back
// to the code itself as a prefix.
func FormatMoney(a Amount, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return code + " " + a.String()
	}
	minor := a.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// FormatSignedMoney renders an amount prefixed with its direction sign, the
// way the transaction table displays movements.
func FormatSignedMoney(a Amount, t TxType, code string) string {
	if t == In {
		return "+" + FormatMoney(a, code)
	}
	return "-" + FormatMoney(a, code)
}
