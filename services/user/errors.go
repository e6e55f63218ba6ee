package user

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, wrong password, and
	// password logins against OAuth-only accounts. One message for all
	// three so nothing leaks about which part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrNotFound is returned when an operation targets a nonexistent user.
	ErrNotFound = errors.New("user not found")

	// ErrValidation wraps bad-request failures; the wrapping message is
	// surfaced to the caller.
	ErrValidation = errors.New("validation failed")
)
