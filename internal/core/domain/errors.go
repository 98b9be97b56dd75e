package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogEmpty indicates no catalog snapshot has been installed yet.
	ErrCatalogEmpty = errors.New("catalog empty")

	// ErrIndexUnavailable indicates the lexical index is not configured.
	// Keyword search is disabled without it.
	ErrIndexUnavailable = errors.New("lexical index unavailable")
)
