// Package gateway exposes the tool dispatcher over HTTP.
//
// Every route sits behind the shared-secret check, including /health.
// The surface is small: POST /actions/echo and /actions/execute, GET
// /actions/tools, /health, /health/details, and /metrics. Failure
// responses use a uniform {error, details} envelope, except the unknown
// tool case which advertises the available tool names instead.
package gateway
