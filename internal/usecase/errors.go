package usecase

import "errors"

// Sentinel errors returned (wrapped) by every service in this package. The
// HTTP layer maps them onto status codes; no error here is fatal to the
// process.
var (
	// ErrInvalidInput covers malformed input: bad proof url, non-finite
	// value, unknown or inactive category.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is a missing resource.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is a missing or unverifiable caller identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPermissionDenied is an authenticated caller whose role is
	// insufficient for the operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidTransition is a verification state machine violation,
	// e.g. reviewing an already-decided record. Kept distinct from
	// ErrInvalidInput so clients can say "already reviewed" instead of
	// "bad input".
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrDependencyUnavailable is a failing external collaborator.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
