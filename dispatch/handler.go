package dispatch

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/reglet-dev/wallet-bindings/application/validation"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
)

// Handler implements one method against a target handle: a ports.Account,
// a ports.Wallet, or struct{} for the stateless utils.
type Handler[T any] func(ctx context.Context, target T, payload json.RawMessage) (entities.Response, error)

// MethodFunc is a typed method implementation.
type MethodFunc[T any, Req any] func(ctx context.Context, target T, req Req) (entities.Response, error)

// NewMethodHandler wraps a typed MethodFunc into a Handler. The payload is
// decoded into Req, an empty payload counting as {}, and validated against
// Req's struct tags before fn runs.
func NewMethodHandler[T any, Req any](fn MethodFunc[T, Req]) Handler[T] {
	return func(ctx context.Context, target T, payload json.RawMessage) (entities.Response, error) {
		method := methodName(ctx)

		var req Req
		if len(bytes.TrimSpace(payload)) > 0 {
			if err := json.Unmarshal(payload, &req); err != nil {
				return entities.Response{}, &domainerrors.WireFormatError{Err: err, Operation: "decode", Method: method}
			}
		}
		if err := validation.ValidateStruct(method, req); err != nil {
			return entities.Response{}, err
		}
		return fn(ctx, target, req)
	}
}

func methodName(ctx context.Context) string {
	if cc, ok := CallFrom(ctx); ok {
		return cc.Method()
	}
	return "unknown"
}
