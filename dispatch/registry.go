package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
)

// Registry is an immutable collection of the method handlers of one family.
// Once created via NewRegistry, handlers cannot be added or removed, so
// lookups need no locking.
type Registry[T any] struct {
	handlers   map[string]Handler[T]
	family     entities.MethodFamily
	names      []string // sorted for consistent iteration
	middleware []Middleware
}

// registryBuilder accumulates configuration during registry construction.
type registryBuilder[T any] struct {
	handlers   map[string]Handler[T]
	middleware []Middleware
	errors     []error
}

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption[T any] func(*registryBuilder[T])

// NewRegistry creates an immutable Registry for one method family.
// Returns an error if a handler name is empty or registered twice.
//
// Example usage:
//
//	registry, err := NewRegistry(entities.FamilyAccount,
//	    WithMiddleware[ports.Account](PanicRecoveryMiddleware()),
//	    WithBundle(AccountBundle()),
//	)
func NewRegistry[T any](family entities.MethodFamily, opts ...RegistryOption[T]) (*Registry[T], error) {
	b := &registryBuilder[T]{
		handlers: make(map[string]Handler[T]),
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Registry[T]{
		handlers:   b.handlers,
		family:     family,
		names:      names,
		middleware: b.middleware,
	}, nil
}

// Invoke dispatches a method call by name. The middleware chain runs around
// the handler with a CallContext naming the method.
func (r *Registry[T]) Invoke(ctx context.Context, target T, name string, payload json.RawMessage) (entities.Response, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return entities.Response{}, &domainerrors.UnknownMethodError{Family: r.family, Name: name}
	}

	var next Invoker = func(ctx context.Context, payload json.RawMessage) (entities.Response, error) {
		return handler(ctx, target, payload)
	}
	// Apply middleware in reverse order so the first one wraps outermost.
	for i := len(r.middleware) - 1; i >= 0; i-- {
		next = r.middleware[i](next)
	}

	return next(NewCallContext(ctx, r.family, name), payload)
}

// Family returns the method family the registry serves.
func (r *Registry[T]) Family() entities.MethodFamily {
	return r.family
}

// Has returns true if a handler with the given name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Names returns a sorted list of all registered method names.
func (r *Registry[T]) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

func (b *registryBuilder[T]) addHandler(name string, handler Handler[T]) error {
	if name == "" {
		return fmt.Errorf("method name cannot be empty")
	}
	if _, exists := b.handlers[name]; exists {
		return fmt.Errorf("duplicate method name: %q", name)
	}
	b.handlers[name] = handler
	return nil
}

// WithHandler registers a raw Handler under name.
// Use WithMethod for typed registration with payload decoding.
func WithHandler[T any](name string, handler Handler[T]) RegistryOption[T] {
	return func(b *registryBuilder[T]) {
		if err := b.addHandler(name, handler); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithMethod registers a typed MethodFunc under name.
//
// Example usage:
//
//	WithMethod("setAlias", func(ctx context.Context, a ports.Account, req entities.SetAliasRequest) (entities.Response, error) {
//	    return ok(a.SetAlias(ctx, req.Alias))
//	})
func WithMethod[T any, Req any](name string, fn MethodFunc[T, Req]) RegistryOption[T] {
	return WithHandler(name, NewMethodHandler(fn))
}

// WithBundle registers all handlers of a bundle.
func WithBundle[T any](bundle Bundle[T]) RegistryOption[T] {
	return func(b *registryBuilder[T]) {
		for name, handler := range bundle.Handlers() {
			if err := b.addHandler(name, handler); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}

// WithMiddleware adds middleware to the registry.
// Middleware executes in FIFO order (first added wraps first).
func WithMiddleware[T any](mw ...Middleware) RegistryOption[T] {
	return func(b *registryBuilder[T]) {
		b.middleware = append(b.middleware, mw...)
	}
}
