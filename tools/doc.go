// Package tools implements the gateway's built-in tool handlers: thin
// proxies over third-party joke and translation APIs.
//
// Each handler validates its own parameters, performs at most one outbound
// GET, and returns a plain-data result. The MyMemory translation handler
// consults and populates the TTL cache. Upstream failures propagate
// immediately: there are no retries and no per-call timeouts.
package tools
