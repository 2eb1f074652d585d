package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	wlog "github.com/reglet-dev/wallet-bindings/log"
)

// Invoker is a handler already bound to its target.
type Invoker func(ctx context.Context, payload json.RawMessage) (entities.Response, error)

// Middleware wraps an Invoker to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
type Middleware func(next Invoker) Invoker

// PanicRecoveryMiddleware returns a middleware that turns a panic into a
// PanicError, which the entry points render as a "panic" response.
func PanicRecoveryMiddleware() Middleware {
	return func(next Invoker) Invoker {
		return func(ctx context.Context, payload json.RawMessage) (resp entities.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = entities.Response{}
					err = &domainerrors.PanicError{Value: r, Stack: debug.Stack()}
				}
			}()
			return next(ctx, payload)
		}
	}
}

// RequestIDMiddleware stamps a request id on the call. Ids set by an
// enclosing call or by WithRequestID are kept.
func RequestIDMiddleware() Middleware {
	return func(next Invoker) Invoker {
		return func(ctx context.Context, payload json.RawMessage) (entities.Response, error) {
			if cc, ok := CallFrom(ctx); ok {
				id := RequestID(ctx)
				if id == "" {
					id = uuid.NewString()
				}
				cc.SetValue(requestIDKey{}, id)
			}
			return next(ctx, payload)
		}
	}
}

// LoggingMiddleware logs every call with its duration and outcome. Payloads
// are only logged at debug level, with secrets redacted.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Invoker) Invoker {
		return func(ctx context.Context, payload json.RawMessage) (entities.Response, error) {
			key := "unknown"
			if cc, ok := CallFrom(ctx); ok {
				key = cc.Key()
			}
			base := []slog.Attr{
				slog.String("method", key),
				slog.String("request_id", RequestID(ctx)),
			}

			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.LogAttrs(ctx, slog.LevelDebug, "invoking method",
					append(base, slog.String("payload", string(wlog.RedactJSON(payload))))...)
			}

			start := time.Now()
			resp, err := next(ctx, payload)
			attrs := append(base, slog.Duration("duration", time.Since(start)))

			if err != nil {
				logger.LogAttrs(ctx, slog.LevelWarn, "method failed", append(attrs, slog.Any("error", err))...)
				return resp, err
			}
			logger.LogAttrs(ctx, slog.LevelInfo, "method completed", append(attrs, slog.String("response", string(resp.Type)))...)
			return resp, nil
		}
	}
}

// SchemaValidationMiddleware validates the raw payload before it is decoded.
func SchemaValidationMiddleware(validator ports.PayloadValidator) Middleware {
	return func(next Invoker) Invoker {
		return func(ctx context.Context, payload json.RawMessage) (entities.Response, error) {
			cc, ok := CallFrom(ctx)
			if !ok {
				return next(ctx, payload)
			}
			result, err := validator.Validate(cc.Family(), cc.Method(), payload)
			if err != nil {
				return entities.Response{}, &domainerrors.SchemaError{Err: err, Method: cc.Key()}
			}
			if !result.Valid {
				se := &domainerrors.SchemaError{Method: cc.Key(), Err: errors.New("payload does not match schema")}
				if len(result.Errors) > 0 {
					se.Location = result.Errors[0].Field
					se.Err = errors.New(result.Errors[0].Message)
				}
				return entities.Response{}, se
			}
			return next(ctx, payload)
		}
	}
}

// PolicyMiddleware asks authorizer before the call reaches the engine.
func PolicyMiddleware(authorizer ports.MethodAuthorizer) Middleware {
	return func(next Invoker) Invoker {
		return func(ctx context.Context, payload json.RawMessage) (entities.Response, error) {
			if cc, ok := CallFrom(ctx); ok {
				if err := authorizer.Authorize(ctx, cc.Family(), cc.Method()); err != nil {
					return entities.Response{}, err
				}
			}
			return next(ctx, payload)
		}
	}
}
