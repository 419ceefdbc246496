package api

import (
	"errors"   // Error comparison
	"net/http" // HTTP status codes

	"shop_backend/internal/store" // Store sentinel errors
)

// statusForError translates a store error into an HTTP status and a message
// that is safe to put in the response body. Anything that is not one of the
// store sentinels is a backing-store failure and must not leak detail.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrCategoryInUse):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, store.ErrBadCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
