// Package log provides slog helpers for the bindings: a handler that keeps
// secrets out of log output and the wire form used to carry guest log
// records across the WASM boundary.
package log

import (
	"context"
	"encoding/json"
	"log/slog"
)

// RedactingHandler wraps another slog.Handler and replaces the values of
// sensitive attributes before they are handled.
type RedactingHandler struct {
	next slog.Handler
	opts handlerConfig
}

// HandlerOption configures the RedactingHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	keys []string
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		keys: SensitiveKeys,
	}
}

// WithRedactedKeys adds attribute keys to redact on top of SensitiveKeys.
func WithRedactedKeys(keys ...string) HandlerOption {
	return func(c *handlerConfig) {
		c.keys = append(append([]string(nil), c.keys...), keys...)
	}
}

// NewRedactingHandler wraps next.
func NewRedactingHandler(next slog.Handler, opts ...HandlerOption) *RedactingHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RedactingHandler{next: next, opts: cfg}
}

// Enabled reports whether the wrapped handler handles records at the given level.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle redacts the record's attributes and passes it on.
func (h *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	out := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(h.redact(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

// WithAttrs returns a new RedactingHandler whose wrapped handler carries the
// redacted attributes.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redact(a)
	}
	return &RedactingHandler{next: h.next.WithAttrs(redacted), opts: h.opts}
}

// WithGroup returns a new RedactingHandler with the given group name.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name), opts: h.opts}
}

func (h *RedactingHandler) redact(attr slog.Attr) slog.Attr {
	if isSensitive(h.opts.keys, attr.Key) {
		return slog.String(attr.Key, Redacted)
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindAny {
		if raw, ok := attr.Value.Any().(json.RawMessage); ok {
			return slog.Any(attr.Key, json.RawMessage(redactJSON(raw, h.opts.keys)))
		}
		return attr
	}
	if attr.Value.Kind() != slog.KindGroup {
		return attr
	}
	group := attr.Value.Group()
	redacted := make([]slog.Attr, len(group))
	for i, a := range group {
		redacted[i] = h.redact(a)
	}
	return slog.Attr{Key: attr.Key, Value: slog.GroupValue(redacted...)}
}
