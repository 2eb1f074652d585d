// Package wazero exposes the method handler to WebAssembly guests running in
// the wazero runtime.
//
// The host module exports three functions. Requests and responses travel as
// JSON through guest memory, addressed by a packed i64 (pointer in the upper
// 32 bits, length in the lower 32 bits):
//
//   - call_wallet_method(i64) i64 takes a WalletMethod and returns a Response
//   - call_utils_method(i64) i64 takes a UtilsMethod and returns a Response
//   - log_message(i64) replays a guest log record into the host logger
//
// Responses are written into memory obtained from the guest's "allocate"
// export.
//
// # Basic Usage
//
//	handler, err := dispatch.New(dispatch.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	runtime := wazero.NewRuntime(ctx)
//	err = wbwazero.RegisterWithRuntime(ctx, runtime, handler, wallet,
//	    wbwazero.WithModuleName("wallet_host"),
//	)
package wazero
