package auth

import "errors"

// Sentinel errors for authentication.
var (
	ErrMissingKey = errors.New("auth: missing API key")
	ErrInvalidKey = errors.New("auth: invalid API key")
)
