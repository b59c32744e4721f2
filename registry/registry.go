package registry

import (
	"context"
	"errors"
	"sync"
)

// Sentinel errors for registry operations.
var (
	ErrEmptyName  = errors.New("registry: tool name is empty")
	ErrNilHandler = errors.New("registry: tool handler is nil")
	ErrDuplicate  = errors.New("registry: tool already registered")
)

// Handler is the unit of work behind a tool. It performs zero or more
// outbound calls and returns a plain-data result, or fails with a
// descriptive message.
//
// Contract:
// - Concurrency: handlers must be safe for concurrent use.
// - Context: handlers should honor cancellation/deadlines on outbound calls.
// - Errors: parameter validation happens inside the handler, not centrally.
type Handler func(ctx context.Context, params map[string]any) (any, error)

// Tool pairs a unique name and human-readable description with its handler.
// Immutable once registered.
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}

// Info describes a registered tool without exposing its handler.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry is a fixed mapping from tool name to Tool.
//
// Contract:
// - Registration is append-only and happens once during initialization;
//   there is no removal.
// - List returns tools in registration order.
// - Concurrency: safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
		order: make([]string, 0),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return ErrEmptyName
	}
	if t.Handler == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name]; exists {
		return ErrDuplicate
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup retrieves a tool by name. Returns (Tool{}, false) if absent.
func (r *Registry) Lookup(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// List returns name and description for every registered tool, in
// registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		infos = append(infos, Info{Name: t.Name, Description: t.Description})
	}
	return infos
}

// Names returns every registered tool name, in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
