// Package store implements the persistent key-value bridge backing all
// user settings. Each key is independent; there are no transactional
// guarantees across keys. Errors are returned explicitly so callers decide
// whether to degrade silently.
package store

import "context"

// KV is the persistent key-value bridge contract.
type KV interface {
	// Read returns the raw value for key. found is false when the key is
	// absent; err is non-nil only on store failure.
	Read(ctx context.Context, key string) (value string, found bool, err error)
	// Write persists value under key, replacing any previous value.
	Write(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Key builds the namespaced storage key for one setting of one scope.
func Key(scope, name string) string {
	return "settings:" + scope + ":" + name
}
