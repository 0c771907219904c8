package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the query.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-key violations and version mismatches.
	ErrConflict = errors.New("conflict")
)
