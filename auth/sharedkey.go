package auth

import (
	"crypto/subtle"
	"net/http"
)

// SharedKeyConfig configures the shared-secret authenticator.
type SharedKeyConfig struct {
	// HeaderName is the header containing the API key.
	// Default: "x-api-key"
	HeaderName string

	// Key is the configured shared secret. Every request must carry it
	// exactly.
	Key string
}

// SharedKeyAuthenticator validates the static shared secret on requests.
type SharedKeyAuthenticator struct {
	config SharedKeyConfig
}

// NewSharedKeyAuthenticator creates a new shared-secret authenticator.
func NewSharedKeyAuthenticator(config SharedKeyConfig) *SharedKeyAuthenticator {
	// Apply defaults
	if config.HeaderName == "" {
		config.HeaderName = "x-api-key"
	}

	return &SharedKeyAuthenticator{config: config}
}

// HeaderName returns the header the authenticator reads.
func (a *SharedKeyAuthenticator) HeaderName() string {
	return a.config.HeaderName
}

// Key returns the configured shared secret.
func (a *SharedKeyAuthenticator) Key() string {
	return a.config.Key
}

// Authenticate checks the request's key header against the configured
// secret. Returns ErrMissingKey or ErrInvalidKey on failure.
func (a *SharedKeyAuthenticator) Authenticate(r *http.Request) error {
	key := r.Header.Get(a.config.HeaderName)
	if key == "" {
		return ErrMissingKey
	}
	if !ConstantTimeCompare(key, a.config.Key) {
		return ErrInvalidKey
	}
	return nil
}

// ConstantTimeCompare performs constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
