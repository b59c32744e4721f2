// Package dispatch executes tools by name and normalizes their outcomes.
//
// A successful execution is wrapped into a Result envelope; failures are
// classified into not-found, validation, or upstream errors for the HTTP
// surface to map onto status codes.
package dispatch
