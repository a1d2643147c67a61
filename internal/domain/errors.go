package domain

import "errors"

// Sentinel errors shared across layers. Repositories translate driver errors
// into these; the HTTP layer maps them onto status codes. Anything else is
// treated as a storage failure and surfaces as a generic server error.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrAlreadyReturned = errors.New("rental already returned")
)
