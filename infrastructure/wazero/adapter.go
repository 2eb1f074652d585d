package wazero

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/wallet-bindings/dispatch"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	wlog "github.com/reglet-dev/wallet-bindings/log"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// DefaultMaxRequestSize bounds a single request read from guest memory (1 MiB).
const DefaultMaxRequestSize uint32 = 1 << 20

// Exported host function names.
const (
	FuncCallWalletMethod = "call_wallet_method"
	FuncCallUtilsMethod  = "call_utils_method"
	FuncLogMessage       = "log_message"
)

// adapterConfig holds configuration for the wazero adapter.
type adapterConfig struct {
	logger         *slog.Logger
	moduleName     string
	customHandlers []CustomHandler
	maxRequestSize uint32
}

// CustomHandler is an extra host function exported next to the built-in ones.
type CustomHandler struct {
	Handler     api.GoModuleFunc
	Name        string
	ParamTypes  []api.ValueType
	ResultTypes []api.ValueType
}

// AdapterOption configures the adapter.
type AdapterOption func(*adapterConfig)

// WithModuleName sets the host module name (default: "wallet_host").
func WithModuleName(name string) AdapterOption {
	return func(c *adapterConfig) {
		c.moduleName = name
	}
}

// WithMaxRequestSize sets the maximum request size read from guest memory.
func WithMaxRequestSize(size uint32) AdapterOption {
	return func(c *adapterConfig) {
		c.maxRequestSize = size
	}
}

// WithLogger sets the logger that receives guest log records and adapter errors.
func WithLogger(logger *slog.Logger) AdapterOption {
	return func(c *adapterConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCustomHandler exports an additional host function.
func WithCustomHandler(h CustomHandler) AdapterOption {
	return func(c *adapterConfig) {
		c.customHandlers = append(c.customHandlers, h)
	}
}

func defaultAdapterConfig() adapterConfig {
	return adapterConfig{
		logger:         slog.Default(),
		moduleName:     "wallet_host",
		maxRequestSize: DefaultMaxRequestSize,
	}
}

// hostModule serves guest calls for one wallet.
type hostModule struct {
	handler *dispatch.MethodHandler
	wallet  ports.Wallet
	config  adapterConfig
}

// RegisterWithRuntime instantiates the host module in runtime. Wallet calls
// made by guests run against wallet.
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, handler *dispatch.MethodHandler, wallet ports.Wallet, opts ...AdapterOption) error {
	if handler == nil {
		return fmt.Errorf("wazero: method handler is required")
	}
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &hostModule{handler: handler, wallet: wallet, config: cfg}

	i64 := []api.ValueType{api.ValueTypeI64}
	builder := runtime.NewHostModuleBuilder(cfg.moduleName)
	builder.NewFunctionBuilder().
		WithGoModuleFunction(h.exportCall(FuncCallWalletMethod, h.callWalletMethod), i64, i64).
		Export(FuncCallWalletMethod)
	builder.NewFunctionBuilder().
		WithGoModuleFunction(h.exportCall(FuncCallUtilsMethod, h.callUtilsMethod), i64, i64).
		Export(FuncCallUtilsMethod)
	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.logMessageFunc), i64, []api.ValueType{}).
		Export(FuncLogMessage)

	for _, ch := range cfg.customHandlers {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(ch.Handler, ch.ParamTypes, ch.ResultTypes).
			Export(ch.Name)
	}

	_, err := builder.Instantiate(ctx)
	return err
}

func (h *hostModule) callWalletMethod(ctx context.Context, request []byte) []byte {
	if h.wallet == nil {
		return errorResponse(fmt.Errorf("no wallet is bound to this host"))
	}
	return h.handler.HandleWalletMessage(ctx, h.wallet, request)
}

func (h *hostModule) callUtilsMethod(ctx context.Context, request []byte) []byte {
	return h.handler.HandleUtilsMessage(ctx, request)
}

// logMessage replays a guest record. Malformed records are dropped with a warning.
func (h *hostModule) logMessage(ctx context.Context, guest string, request []byte) {
	var msg wlog.LogMessageWire
	if err := json.Unmarshal(request, &msg); err != nil {
		h.config.logger.WarnContext(ctx, "wazero: dropping malformed guest log record", "guest", guest, "error", err)
		return
	}
	wlog.Emit(ctx, h.config.logger.With("guest", guest), msg)
}

// exportCall adapts a request/response function to the packed i64 ABI.
func (h *hostModule) exportCall(name string, fn func(context.Context, []byte) []byte) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		request, err := h.readRequest(mod, stack[0])
		if err != nil {
			h.config.logger.ErrorContext(ctx, "wazero: "+err.Error(), "function", name, "guest", GuestName(ctx, mod))
			stack[0] = h.writeResponse(ctx, mod, errorResponse(&domainerrors.WireFormatError{Err: err, Operation: "decode", Method: name}))
			return
		}
		stack[0] = h.writeResponse(ctx, mod, fn(ctx, request))
	}
}

func (h *hostModule) logMessageFunc(ctx context.Context, mod api.Module, stack []uint64) {
	request, err := h.readRequest(mod, stack[0])
	if err != nil {
		h.config.logger.ErrorContext(ctx, "wazero: "+err.Error(), "function", FuncLogMessage)
		return
	}
	h.logMessage(ctx, GuestName(ctx, mod), request)
}

// readRequest copies the request out of guest memory.
func (h *hostModule) readRequest(mod api.Module, packed uint64) ([]byte, error) {
	ptr, length := unpackPtrLen(packed)
	if length > h.config.maxRequestSize {
		return nil, fmt.Errorf("request size %d exceeds maximum %d bytes", length, h.config.maxRequestSize)
	}
	data, ok := mod.Memory().Read(ptr, length)
	if !ok {
		return nil, fmt.Errorf("failed to read request from guest memory")
	}
	// Read returns a view; guest allocations may overwrite it.
	return append([]byte(nil), data...), nil
}

// writeResponse allocates memory in the guest and writes data into it.
// Returns packed ptr+len, or 0 on failure.
func (h *hostModule) writeResponse(ctx context.Context, mod api.Module, data []byte) uint64 {
	allocateFn := mod.ExportedFunction("allocate")
	if allocateFn == nil {
		h.config.logger.ErrorContext(ctx, "wazero: guest module missing 'allocate' export")
		return 0
	}

	results, err := allocateFn.Call(ctx, uint64(len(data)))
	if err != nil {
		h.config.logger.ErrorContext(ctx, "wazero: failed to call guest allocate", "error", err)
		return 0
	}
	ptr := uint32(results[0]) //nolint:gosec // G115: WASM32 pointers are always 32-bit

	if !mod.Memory().Write(ptr, data) {
		h.config.logger.ErrorContext(ctx, "wazero: failed to write response to guest memory")
		return 0
	}
	return packPtrLen(ptr, uint32(len(data))) //nolint:gosec // G115: bounded by guest memory
}

func errorResponse(err error) []byte {
	return entities.ErrorResponseFrom(domainerrors.ToErrorDetail(err)).ToJSON()
}

// packPtrLen packs a pointer and length into a single i64.
func packPtrLen(ptr, length uint32) uint64 {
	return (uint64(ptr) << 32) | uint64(length)
}

// unpackPtrLen unpacks a pointer and length from a packed i64.
func unpackPtrLen(packed uint64) (ptr, length uint32) {
	ptr = uint32(packed >> 32)           //nolint:gosec // G115: packed format stores 32-bit values
	length = uint32(packed & 0xFFFFFFFF) //nolint:gosec // G115: packed format stores 32-bit values
	return ptr, length
}
