package wazero

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/reglet-dev/wallet-bindings/dispatch"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	"github.com/reglet-dev/wallet-bindings/internal/testutil"
	wlog "github.com/reglet-dev/wallet-bindings/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// guestWasm is the binary form of:
//
//	(module
//	  (import "wallet_host" "call_wallet_method" (func $cw (param i64) (result i64)))
//	  (import "wallet_host" "call_utils_method" (func $cu (param i64) (result i64)))
//	  (import "wallet_host" "log_message" (func $log (param i64)))
//	  (memory (export "memory") 1)
//	  (global $heap (mut i32) (i32.const 1024))
//	  (func (export "allocate") (param i32) (result i32)
//	    global.get $heap global.get $heap local.get 0 i32.add global.set $heap)
//	  (func (export "call_wallet") (param i64) (result i64) local.get 0 call $cw)
//	  (func (export "call_utils") (param i64) (result i64) local.get 0 call $cu)
//	  (func (export "log") (param i64) local.get 0 call $log))
var guestWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x0f, 0x03, 0x60,
	0x01, 0x7e, 0x01, 0x7e, 0x60, 0x01, 0x7e, 0x00, 0x60, 0x01, 0x7f, 0x01,
	0x7f, 0x02, 0x5c, 0x03, 0x0b, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x5f,
	0x68, 0x6f, 0x73, 0x74, 0x12, 0x63, 0x61, 0x6c, 0x6c, 0x5f, 0x77, 0x61,
	0x6c, 0x6c, 0x65, 0x74, 0x5f, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x00,
	0x00, 0x0b, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x5f, 0x68, 0x6f, 0x73,
	0x74, 0x11, 0x63, 0x61, 0x6c, 0x6c, 0x5f, 0x75, 0x74, 0x69, 0x6c, 0x73,
	0x5f, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x00, 0x00, 0x0b, 0x77, 0x61,
	0x6c, 0x6c, 0x65, 0x74, 0x5f, 0x68, 0x6f, 0x73, 0x74, 0x0b, 0x6c, 0x6f,
	0x67, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x00, 0x01, 0x03,
	0x05, 0x04, 0x02, 0x00, 0x00, 0x01, 0x05, 0x03, 0x01, 0x00, 0x01, 0x06,
	0x07, 0x01, 0x7f, 0x01, 0x41, 0x80, 0x08, 0x0b, 0x07, 0x36, 0x05, 0x06,
	0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00, 0x08, 0x61, 0x6c, 0x6c,
	0x6f, 0x63, 0x61, 0x74, 0x65, 0x00, 0x03, 0x0b, 0x63, 0x61, 0x6c, 0x6c,
	0x5f, 0x77, 0x61, 0x6c, 0x6c, 0x65, 0x74, 0x00, 0x04, 0x0a, 0x63, 0x61,
	0x6c, 0x6c, 0x5f, 0x75, 0x74, 0x69, 0x6c, 0x73, 0x00, 0x05, 0x03, 0x6c,
	0x6f, 0x67, 0x00, 0x06, 0x0a, 0x22, 0x04, 0x0b, 0x00, 0x23, 0x00, 0x23,
	0x00, 0x20, 0x00, 0x6a, 0x24, 0x00, 0x0b, 0x06, 0x00, 0x20, 0x00, 0x10,
	0x00, 0x0b, 0x06, 0x00, 0x20, 0x00, 0x10, 0x01, 0x0b, 0x06, 0x00, 0x20,
	0x00, 0x10, 0x02, 0x0b,
}

type guest struct {
	ctx context.Context
	mod api.Module
}

func newGuest(t *testing.T, wallet ports.Wallet, opts ...AdapterOption) *guest {
	t.Helper()
	ctx := context.Background()

	handler, err := dispatch.New()
	require.NoError(t, err)

	runtime := wazero.NewRuntime(ctx)
	t.Cleanup(func() { _ = runtime.Close(ctx) })

	require.NoError(t, RegisterWithRuntime(ctx, runtime, handler, wallet, opts...))

	mod, err := runtime.InstantiateWithConfig(ctx, guestWasm, wazero.NewModuleConfig().WithName("test-guest"))
	require.NoError(t, err)
	return &guest{ctx: ctx, mod: mod}
}

// call writes request at offset 0 of guest memory and invokes export.
func (g *guest) call(t *testing.T, export string, request []byte) []uint64 {
	t.Helper()
	require.True(t, g.mod.Memory().Write(0, request))
	results, err := g.mod.ExportedFunction(export).Call(g.ctx, packPtrLen(0, uint32(len(request))))
	require.NoError(t, err)
	return results
}

func (g *guest) response(t *testing.T, export string, request string) entities.Response {
	t.Helper()
	results := g.call(t, export, []byte(request))
	require.Len(t, results, 1)

	ptr, length := unpackPtrLen(results[0])
	require.NotZero(t, length)
	data, ok := g.mod.Memory().Read(ptr, length)
	require.True(t, ok)

	var resp entities.Response
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

func TestDefaultAdapterConfig(t *testing.T) {
	cfg := defaultAdapterConfig()
	assert.Equal(t, "wallet_host", cfg.moduleName)
	assert.Equal(t, DefaultMaxRequestSize, cfg.maxRequestSize)
	assert.NotNil(t, cfg.logger)
}

func TestAdapterOptions(t *testing.T) {
	cfg := defaultAdapterConfig()
	WithModuleName("custom_module")(&cfg)
	WithMaxRequestSize(2048)(&cfg)
	WithLogger(nil)(&cfg)
	WithCustomHandler(CustomHandler{Name: "test_handler"})(&cfg)

	assert.Equal(t, "custom_module", cfg.moduleName)
	assert.Equal(t, uint32(2048), cfg.maxRequestSize)
	assert.NotNil(t, cfg.logger)
	require.Len(t, cfg.customHandlers, 1)
	assert.Equal(t, "test_handler", cfg.customHandlers[0].Name)
}

func TestPackUnpackPtrLen(t *testing.T) {
	tests := []struct {
		ptr    uint32
		length uint32
	}{
		{0, 0},
		{1, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		gotPtr, gotLen := unpackPtrLen(packPtrLen(tt.ptr, tt.length))
		assert.Equal(t, tt.ptr, gotPtr)
		assert.Equal(t, tt.length, gotLen)
	}
}

func TestRegisterWithRuntime_NilHandler(t *testing.T) {
	ctx := context.Background()
	runtime := wazero.NewRuntime(ctx)
	defer runtime.Close(ctx)

	err := RegisterWithRuntime(ctx, runtime, nil, nil)
	assert.Error(t, err)
}

func TestGuest_CallUtilsMethod(t *testing.T) {
	g := newGuest(t, nil)

	resp := g.response(t, "call_utils", `{"name":"utf8ToHex","data":{"utf8":"hi"}}`)
	assert.Equal(t, entities.ResponseHex, resp.Type)
	assert.JSONEq(t, `"0x6869"`, string(resp.Payload))
}

func TestGuest_CallWalletMethod(t *testing.T) {
	wallet := new(testutil.MockWallet)
	wallet.On("AccountIndexes", mock.Anything).Return([]uint32{0, 1}, nil)
	g := newGuest(t, wallet)

	resp := g.response(t, "call_wallet", `{"cmd":"getAccountIndexes"}`)
	assert.Equal(t, entities.ResponseAccountIndexes, resp.Type)
	assert.JSONEq(t, `[0,1]`, string(resp.Payload))
	wallet.AssertExpectations(t)
}

func TestGuest_CallWalletMethodWithoutWallet(t *testing.T) {
	g := newGuest(t, nil)

	resp := g.response(t, "call_wallet", `{"cmd":"getAccountIndexes"}`)
	require.Error(t, resp.Err())
	assert.Contains(t, resp.Err().Error(), "no wallet")
}

func TestGuest_RequestTooLarge(t *testing.T) {
	g := newGuest(t, nil, WithMaxRequestSize(8), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	resp := g.response(t, "call_utils", `{"name":"generateMnemonic"}`)
	assert.Equal(t, entities.ResponseError, resp.Type)
	assert.Contains(t, resp.Err().Error(), "exceeds maximum 8 bytes")
}

func TestGuest_LogMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	g := newGuest(t, nil, WithLogger(logger))

	record := slog.NewRecord(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), slog.LevelWarn, "low balance", 0)
	record.AddAttrs(slog.Int("account", 3))
	data, err := json.Marshal(wlog.NewLogMessage(record))
	require.NoError(t, err)

	results := g.call(t, "log", data)
	assert.Empty(t, results)

	out := buf.String()
	assert.Contains(t, out, `"msg":"low balance"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"guest":"test-guest"`)
	assert.Contains(t, out, `"account":3`)
}

func TestGuest_LogMessageMalformed(t *testing.T) {
	var buf bytes.Buffer
	g := newGuest(t, nil, WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	g.call(t, "log", []byte("not json"))
	assert.Contains(t, buf.String(), "dropping malformed guest log record")
}

func TestGuestName(t *testing.T) {
	ctx := WithGuestName(context.Background(), "plugin-a")
	name, ok := GuestNameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "plugin-a", name)
	assert.Equal(t, "plugin-a", GuestName(ctx, nil))

	_, ok = GuestNameFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "", GuestName(context.Background(), nil))
}
