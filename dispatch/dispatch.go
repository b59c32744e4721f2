package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/toolgate/observe"
	"github.com/jonwraymond/toolgate/registry"
)

// NoMessagePlaceholder is used when the caller supplies no message.
const NoMessagePlaceholder = "No message provided"

// Result is the success envelope for a tool execution.
type Result struct {
	Tool            string `json:"tool"`
	Description     string `json:"description"`
	OriginalMessage string `json:"originalMessage"`
	Result          any    `json:"result"`
	Timestamp       string `json:"timestamp"`
}

// Dispatcher resolves tool names against a registry, invokes handlers, and
// normalizes outcomes.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - A handler is never invoked for an unknown tool name.
// - Errors: Execute returns either (*Result, nil) or (nil, *Error).
type Dispatcher struct {
	registry   *registry.Registry
	middleware *observe.Middleware
	now        func() time.Time
}

// New creates a dispatcher over the given registry. The middleware wraps
// every handler invocation; a nil middleware disables instrumentation.
func New(reg *registry.Registry, mw *observe.Middleware) *Dispatcher {
	return &Dispatcher{
		registry:   reg,
		middleware: mw,
		now:        time.Now,
	}
}

// Execute resolves name, invokes its handler with params, and wraps the
// outcome. A nil params map is treated as empty. An empty message is
// replaced with NoMessagePlaceholder.
func (d *Dispatcher) Execute(ctx context.Context, name string, params map[string]any, message string) (*Result, error) {
	tool, ok := d.registry.Lookup(name)
	if !ok {
		return nil, &Error{
			Kind:      KindNotFound,
			Message:   fmt.Sprintf("Tool '%s' not found", name),
			Available: d.registry.Names(),
		}
	}

	if params == nil {
		params = make(map[string]any)
	}

	exec := func(ctx context.Context, _ observe.ToolMeta, p map[string]any) (any, error) {
		return tool.Handler(ctx, p)
	}
	if d.middleware != nil {
		exec = d.middleware.Wrap(exec)
	}

	meta := observe.ToolMeta{Name: tool.Name, Description: tool.Description}
	out, err := exec(ctx, meta, params)
	if err != nil {
		return nil, Classify(err)
	}

	if message == "" {
		message = NoMessagePlaceholder
	}

	return &Result{
		Tool:            tool.Name,
		Description:     tool.Description,
		OriginalMessage: message,
		Result:          out,
		Timestamp:       d.now().UTC().Format(time.RFC3339),
	}, nil
}
