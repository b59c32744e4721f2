// Package registry holds the fixed name-to-tool mapping for the gateway.
//
// The tool set is decided at process start: registration is append-only,
// lookups never mutate, and listing preserves registration order.
package registry
