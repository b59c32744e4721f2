// Package cache provides an in-memory TTL cache for tool results.
//
// It provides a Cache interface with a memory implementation, deterministic
// translation-key derivation, and TTL policies.
package cache
