package dispatch

import (
	"errors"
	"strings"
)

// Kind classifies a dispatch failure.
type Kind int

const (
	// KindNotFound indicates the requested tool is not registered.
	KindNotFound Kind = iota
	// KindValidation indicates the caller supplied bad or missing parameters.
	KindValidation
	// KindUpstream indicates a handler failure: network error, bad upstream
	// response, malformed data.
	KindUpstream
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Error is a classified dispatch failure.
type Error struct {
	// Kind is the failure classification.
	Kind Kind

	// Message is the original failure message.
	Message string

	// Available carries the full list of registered tool names.
	// Populated only for KindNotFound.
	Available []string
}

// Error returns the failure message.
func (e *Error) Error() string {
	return e.Message
}

// Classify maps a handler failure to a classified Error. Any failure whose
// message contains "required" counts as a validation error; everything else
// is an upstream failure. Classification is by message text, so a handler
// error that happens to mention "required" is also treated as validation.
func Classify(err error) *Error {
	kind := KindUpstream
	if strings.Contains(err.Error(), "required") {
		kind = KindValidation
	}
	return &Error{Kind: kind, Message: err.Error()}
}

// AsError extracts a classified *Error from err, if present.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
