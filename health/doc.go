// Package health provides liveness reporting for the gateway.
//
// Checkers are registered on an Aggregator, which runs them concurrently
// under a shared deadline and reduces the results to one overall status.
package health
