package service

import "mesagrid/internal/secret"

// OpenFunc is exported for tests so they can stub engine pools.
type OpenFunc = openFunc

// NewManagerWithOpener builds a ConnectionManager whose pools come from
// open instead of the real drivers.
func NewManagerWithOpener(secrets secret.Store, open OpenFunc) *ConnectionManager {
	m := NewConnectionManager(secrets)
	m.open = open
	return m
}
