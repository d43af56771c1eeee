// Package finapex implements a single-user personal finance ledger.
//
// The package owns the canonical application state: a Snapshot holding the
// transaction log, the wallets it affects, the savings targets, the category
// set and the display settings. Every mutation is a pure function from an old
// snapshot to a new one; a Store commits the result by persisting the whole
// snapshot and notifying the redraw hook. Wallet balances are maintained
// incrementally: each mutation applies (or reverses) the signed amount of the
// transactions it touches, so a balance always equals the signed sum of the
// transactions routed to its wallet.
package finapex
