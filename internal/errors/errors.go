package appErrors

import "errors"

// Validation errors are the only failures that surface to HTTP callers.
// Their text doubles as the client-facing error message.
var (
	ErrMissingFields      = errors.New("Missing required fields")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
