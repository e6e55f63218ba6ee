package reminder

import "errors"

var (
	// ErrNotFound covers missing reminder ids and unknown or expired share
	// tokens. Anonymous callers must not be able to tell those apart.
	ErrNotFound = errors.New("reminder not found")

	// ErrNotOwner is returned when an authenticated user targets a reminder
	// owned by someone else. Distinct from ErrNotFound so handlers can
	// answer 403 instead of 404.
	ErrNotOwner = errors.New("not authorized to access this reminder")

	// ErrValidation wraps bad-request failures; the wrapping message is
	// surfaced to the caller.
	ErrValidation = errors.New("validation failed")
)
