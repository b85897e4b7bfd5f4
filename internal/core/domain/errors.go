package domain

import "errors"

var (
	// ErrTokenRequired is returned when a federation upload is attempted
	// without a bearer token in either the form or the stored preferences.
	// The backend request is never issued in that case.
	ErrTokenRequired = errors.New("bearer token required")

	// ErrDuplicateEmail marks a 409 from the account registry.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUnauthorized marks a 401/403 from a token-protected endpoint.
	ErrUnauthorized = errors.New("token invalid or lacking permissions")
)
