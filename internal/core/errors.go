package core

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotFoundOrForbidden collapses "missing" and "not yours" for owner-scoped lookups.
	ErrNotFoundOrForbidden = errors.New("not found or permission denied")
	// ErrValidation represents user input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrConflict indicates a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated indicates the operation requires an authenticated caller.
	ErrUnauthenticated = errors.New("authentication required")
)

// AccessError is returned when an owner-scoped lookup fails. The message is the same
// whether the resource is missing or owned by someone else.
type AccessError struct {
	Resource string
}

func (e *AccessError) Error() string {
	return e.Resource + " not found or permission denied"
}

func (e *AccessError) Is(target error) bool {
	return target == ErrNotFoundOrForbidden
}
