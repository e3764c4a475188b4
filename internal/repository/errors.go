package repository

import "errors"

var (
	// ErrNotFound is returned when no record exists for the given ID.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an update raced a concurrent write
	// or delete. The service layer decides whether that resolves to a
	// not-found or a stale-update failure.
	ErrConflict = errors.New("concurrent modification")
)
