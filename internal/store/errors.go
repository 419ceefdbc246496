package store

import "errors"

// Sentinel errors returned by the store layer. Handlers map these to HTTP
// status codes with errors.Is; anything else is a backing-store failure and
// becomes a generic 500.
var (
	ErrValidation     = errors.New("invalid input")       // Missing or malformed field
	ErrDuplicate      = errors.New("already exists")      // Unique constraint would be violated
	ErrNotFound       = errors.New("not found")           // Entity or reference does not exist
	ErrBadCredentials = errors.New("invalid credentials") // Password does not match
	ErrCategoryInUse  = errors.New("category in use")     // Delete-guard: products still reference it
)
