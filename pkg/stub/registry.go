// Package stub implements the handler registry: named handlers that resolve
// any parameter to a uniform response envelope.
// Implements: prd001-envelope-core R3 (registry, Echo handler, observer hook);
//
//	docs/ARCHITECTURE § Handler Registry.
package stub

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mesh-intelligence/veneer/pkg/types"
)

// Registry errors (prd001-envelope-core R3.4).
var (
	ErrHandlerNotFound = errors.New("handler not found")
	ErrHandlerExists   = errors.New("handler already registered")
	ErrNilHandler      = errors.New("handler must not be nil")
	ErrInvalidName     = errors.New("handler name must not be empty")
)

// Handler resolves a parameter to a response envelope.
type Handler func(param any) (types.Envelope, error)

// Observer is notified after each successful invocation. Implementations
// must be safe for concurrent use; the registry calls them without holding
// its lock.
type Observer interface {
	Invoked(handler string, env types.Envelope)
}

// Echo is the canonical handler: it resolves any parameter to an envelope
// echoing the parameter back with StatusOK and the current timestamp.
func Echo(param any) (types.Envelope, error) {
	return types.NewEnvelope(param), nil
}

// Registry maps handler names to handlers. The zero value is not usable;
// call NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	observer Observer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// SetObserver installs the observer notified after each successful
// invocation. Passing nil removes the current observer.
func (r *Registry) SetObserver(obs Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = obs
}

// Register adds a handler under the given name.
// Returns ErrInvalidName for an empty name, ErrNilHandler for a nil handler,
// and ErrHandlerExists if the name is already registered.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return ErrInvalidName
	}
	if h == nil {
		return ErrNilHandler
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrHandlerExists, name)
	}
	r.handlers[name] = h
	return nil
}

// Invoke runs the named handler with param and returns its envelope.
// Returns ErrHandlerNotFound if no handler is registered under the name.
// The observer, if set, is notified after the handler succeeds.
func (r *Registry) Invoke(name string, param any) (types.Envelope, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	obs := r.observer
	r.mu.RUnlock()

	if !ok {
		return types.Envelope{}, fmt.Errorf("%w: %s", ErrHandlerNotFound, name)
	}

	env, err := h(param)
	if err != nil {
		return types.Envelope{}, err
	}
	if obs != nil {
		obs.Invoked(name, env)
	}
	return env, nil
}

// Names returns the registered handler names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
