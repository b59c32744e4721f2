// Package observe provides observability primitives for tool dispatch.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. The gateway wires the observer's middleware into
// the dispatcher and its logger into the HTTP surface.
package observe
