package secret

import "errors"

// ErrNotFound is returned by Get when no secret exists for the key.
var ErrNotFound = errors.New("secret not found")

// Store provides a pluggable interface for storing sensitive data such
// as database passwords. The default implementation uses the OS
// keychain, but can be swapped for Vault, env vars, etc.
type Store interface {
	// Set stores a secret value under the given key, replacing any
	// existing value.
	Set(key string, value []byte) error

	// Get retrieves the secret value for the given key.
	// Returns ErrNotFound if no entry exists.
	Get(key string) ([]byte, error)

	// Delete removes the secret for the given key. Best-effort:
	// deleting a missing key is not an error.
	Delete(key string) error
}
