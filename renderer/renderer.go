// Package renderer turns snapshot read models into markdown. It is the
// presentation half of the application: a pure function of the current
// state, recomputed in full after every commit. Rendering never mutates the
// snapshot, so rendering the same snapshot twice yields identical output.
package renderer

import (
	"github.com/finapex/finapex"
)

// display bundles the presentation collaborators every view needs: the
// translation table language and the display currency.
type display struct {
	lang     string
	currency string
}

func (d display) t(key string) string { return finapex.T(d.lang, key) }

func (d display) money(a finapex.Amount) string {
	return finapex.FormatMoney(a, d.currency)
}

func (d display) signed(a finapex.Amount, t finapex.TxType) string {
	return finapex.FormatSignedMoney(a, t, d.currency)
}
