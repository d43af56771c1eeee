package finapex

import (
	"errors"
	"fmt"
)

// Mutation outcomes that previously were silent no-ops are explicit errors,
// so callers can tell "nothing existed" from "succeeded".
var (
	// ErrNotFound reports an update or delete referencing an unknown id.
	ErrNotFound = errors.New("record not found")
	// ErrProtected reports an attempt to delete the primary wallet.
	ErrProtected = errors.New("the primary wallet cannot be deleted")
	// ErrInvalidAmount reports a missing, malformed or non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnknownWallet reports a transaction routed to a wallet that does not exist.
	ErrUnknownWallet = errors.New("unknown wallet")

	// ErrBadPayload reports a backup file that is not valid JSON.
	ErrBadPayload = errors.New("backup is not valid JSON")
	// ErrBadFormat reports a backup missing the transactions or wallets fields.
	ErrBadFormat = errors.New("invalid backup file format")
)

// PersistenceError reports a failed snapshot write. The in-memory snapshot is
// kept; only the on-disk copy is stale.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not persist snapshot: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
