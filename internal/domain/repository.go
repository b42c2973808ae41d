package domain

import "context"

// Keys under which each collection is stored in the KeyValueStore
const (
	KeyAssets      = "assets"
	KeyLiabilities = "liabilities"
	KeySnapshots   = "snapshots"
)

// KeyValueStore defines the persistence port: a string key-value store
type KeyValueStore interface {
	// Load retrieves the value stored under key
	// found is false (and err nil) when the key has never been saved
	Load(ctx context.Context, key string) (value string, found bool, err error)

	// Save stores value under key, replacing any previous value
	Save(ctx context.Context, key, value string) error
}

// Confirmer asks the user to approve a destructive operation
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer interface
type ConfirmFunc func(message string) bool

// Confirm calls f(message)
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// AlwaysConfirm approves every request. Used by non-interactive callers
// that already obtained consent (e.g. a -y flag).
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })
