package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	wlog "github.com/reglet-dev/wallet-bindings/log"
)

// newTracer logs every RPC call. Params are only logged at debug level,
// with secrets redacted.
func newTracer(logger *slog.Logger) jsonrpc.Tracer {
	return func(method string, params []reflect.Value, results []reflect.Value, err error) {
		ctx := callContext(params)
		attrs := []slog.Attr{slog.String("rpc_method", method)}

		if logger.Enabled(ctx, slog.LevelDebug) {
			// params[0] is the receiver.
			for i := 2; i < len(params); i++ {
				attrs = append(attrs, slog.String(fmt.Sprintf("param_%d", i-2), loggable(params[i])))
			}
		}

		if err == nil {
			err = resultError(results)
		}
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "rpc call failed", append(attrs, slog.Any("error", err))...)
			return
		}
		if resp, ok := responseOf(results); ok {
			attrs = append(attrs, slog.String("response", string(resp.Type)))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "rpc call", attrs...)
	}
}

// callContext returns the context argument of the call, if any.
func callContext(params []reflect.Value) context.Context {
	if len(params) < 2 || !params[1].IsValid() {
		return context.Background()
	}
	if ctx, ok := params[1].Interface().(context.Context); ok && ctx != nil {
		return ctx
	}
	return context.Background()
}

func resultError(results []reflect.Value) error {
	if len(results) == 0 {
		return nil
	}
	last := results[len(results)-1]
	if !last.IsValid() || !last.CanInterface() {
		return nil
	}
	err, _ := last.Interface().(error)
	return err
}

func responseOf(results []reflect.Value) (entities.Response, bool) {
	if len(results) == 0 || !results[0].IsValid() || !results[0].CanInterface() {
		return entities.Response{}, false
	}
	resp, ok := results[0].Interface().(entities.Response)
	return resp, ok
}

func loggable(v reflect.Value) string {
	if !v.IsValid() || !v.CanInterface() {
		return "<invalid>"
	}
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return string(wlog.RedactJSON(data))
}
