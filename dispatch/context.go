package dispatch

import (
	"context"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// CallContext wraps a context.Context with the method being dispatched.
// It lets middleware share request-scoped values without nesting contexts.
type CallContext interface {
	context.Context

	// Family returns the vocabulary of the method being invoked.
	Family() entities.MethodFamily

	// Method returns the name of the method being invoked.
	Method() string

	// Key returns "family/method".
	Key() string

	// SetValue stores a request-scoped value. Unlike context.WithValue,
	// this mutates the existing CallContext.
	SetValue(key, value any)

	// GetValue retrieves a request-scoped value set by SetValue.
	GetValue(key any) (value any, ok bool)
}

type callContextKey struct{}

type callContext struct {
	context.Context
	values map[any]any
	family entities.MethodFamily
	method string
}

// NewCallContext creates a CallContext for one method invocation. Values of
// an enclosing call, such as the request id of a wallet call wrapping an
// account call, are inherited.
func NewCallContext(ctx context.Context, family entities.MethodFamily, method string) CallContext {
	values := make(map[any]any)
	if parent, ok := CallFrom(ctx); ok {
		if p, ok := parent.(*callContext); ok {
			for k, v := range p.values {
				values[k] = v
			}
		}
	}
	return &callContext{Context: ctx, values: values, family: family, method: method}
}

func (c *callContext) Family() entities.MethodFamily { return c.family }

func (c *callContext) Method() string { return c.method }

func (c *callContext) Key() string { return entities.MethodKey(c.family, c.method) }

func (c *callContext) SetValue(key, value any) {
	c.values[key] = value
}

func (c *callContext) GetValue(key any) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Value makes the CallContext reachable through contexts derived from it.
func (c *callContext) Value(key any) any {
	if _, ok := key.(callContextKey); ok {
		return c
	}
	return c.Context.Value(key)
}

// CallFrom returns the innermost CallContext of ctx.
func CallFrom(ctx context.Context) (CallContext, bool) {
	if ctx == nil {
		return nil, false
	}
	cc, ok := ctx.Value(callContextKey{}).(CallContext)
	return cc, ok
}

type requestIDKey struct{}

// RequestID returns the request id stamped by RequestIDMiddleware, or "".
func RequestID(ctx context.Context) string {
	if cc, ok := CallFrom(ctx); ok {
		if v, ok := cc.GetValue(requestIDKey{}); ok {
			if id, ok := v.(string); ok {
				return id
			}
		}
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID attaches a caller-chosen request id to ctx. RequestIDMiddleware
// keeps it instead of generating a new one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
