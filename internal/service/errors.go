package service

import "errors"

// Error kinds surfaced by the ConnectionManager. Driver-level failures
// are not reinterpreted: they propagate wrapped, message intact.
var (
	// ErrNotFound means the referenced connection id has no saved
	// config or no live pool, depending on the call site.
	ErrNotFound = errors.New("connection not found")

	// ErrCredential means the secret store errored or had no entry.
	ErrCredential = errors.New("credential error")
)
