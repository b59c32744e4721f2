// Package auth gates the gateway behind a static shared secret.
//
// A single x-api-key header is compared (in constant time) against the
// configured secret; mismatches produce a 401 JSON envelope.
package auth
