package jsonrpc

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/wallet-bindings/dispatch"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/internal/testutil"
)

func dialTestServer(t *testing.T, wallet *testutil.MockWallet) *RemoteWallet {
	t.Helper()
	handler, err := dispatch.New()
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewServer(handler, wallet).Register(mux, "/rpc/v0")
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	remote, err := Dial(context.Background(), ts.URL+"/rpc/v0")
	require.NoError(t, err)
	t.Cleanup(remote.Close)
	return remote
}

func walletWithAccount(account *testutil.MockAccount) *testutil.MockWallet {
	wallet := new(testutil.MockWallet)
	wallet.On("GetAccount", mock.Anything, entities.AccountIndex(0)).Return(account, nil)
	account.On("Details", mock.Anything).Return(&entities.AccountDetails{Alias: "main", Index: 0}, nil)
	return wallet
}

func TestRemoteWallet_AccountIndexes(t *testing.T) {
	wallet := new(testutil.MockWallet)
	wallet.On("AccountIndexes", mock.Anything).Return([]uint32{0, 1, 2}, nil)

	remote := dialTestServer(t, wallet)
	indexes, err := remote.AccountIndexes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, indexes)
	wallet.AssertExpectations(t)
}

func TestRemoteWallet_GetAccountThenCallAccountMethods(t *testing.T) {
	account := new(testutil.MockAccount)
	account.On("SetAlias", mock.Anything, "savings").Return(nil)
	account.On("Balance", mock.Anything).Return(&entities.AccountBalance{
		BaseCoin: entities.BaseCoinBalance{Total: "1000000", Available: "750000"},
	}, nil)
	account.On("VotingPower", mock.Anything).Return(uint64(1000), nil)
	wallet := walletWithAccount(account)

	remote := dialTestServer(t, wallet)
	ctx := context.Background()

	acc, err := remote.GetAccount(ctx, entities.AccountIndex(0))
	require.NoError(t, err)

	require.NoError(t, acc.SetAlias(ctx, "savings"))

	balance, err := acc.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "750000", balance.BaseCoin.Available)

	power, err := acc.VotingPower(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), power)

	details, err := acc.Details(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", details.Alias)

	account.AssertExpectations(t)
}

func TestRemoteWallet_NullPayloadDecodesToNil(t *testing.T) {
	account := new(testutil.MockAccount)
	account.On("GetOutput", mock.Anything, "0xdead").Return(nil, nil)
	wallet := walletWithAccount(account)

	acc, err := dialTestServer(t, wallet).GetAccount(context.Background(), entities.AccountIndex(0))
	require.NoError(t, err)

	out, err := acc.GetOutput(context.Background(), "0xdead")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRemoteWallet_EngineErrorPropagates(t *testing.T) {
	account := new(testutil.MockAccount)
	account.On("SetAlias", mock.Anything, "savings").Return(errors.New("alias already exists"))
	wallet := walletWithAccount(account)

	acc, err := dialTestServer(t, wallet).GetAccount(context.Background(), entities.AccountIndex(0))
	require.NoError(t, err)

	err = acc.SetAlias(context.Background(), "savings")
	require.Error(t, err)

	var engineErr *domainerrors.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, entities.AccountMethodSetAlias, engineErr.Method)

	var detail *entities.ErrorDetail
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "engine", detail.Type)
	assert.Contains(t, detail.Message, "alias already exists")
}

func TestRemoteWallet_ValidationErrorPropagates(t *testing.T) {
	remote := dialTestServer(t, new(testutil.MockWallet))

	err := remote.SetStrongholdPassword(context.Background(), "")

	var detail *entities.ErrorDetail
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "validation", detail.Type)
}

func TestRemoteWallet_CreateAccount(t *testing.T) {
	account := new(testutil.MockAccount)
	account.On("Details", mock.Anything).Return(&entities.AccountDetails{Alias: "new", Index: 4}, nil)
	alias := "new"
	wallet := new(testutil.MockWallet)
	wallet.On("CreateAccount", mock.Anything, &alias, (*string)(nil)).Return(account, nil)

	acc, err := dialTestServer(t, wallet).CreateAccount(context.Background(), &alias, nil)
	require.NoError(t, err)

	remote, ok := acc.(*remoteAccount)
	require.True(t, ok)
	require.NotNil(t, remote.id.Index)
	assert.Equal(t, uint32(4), *remote.id.Index)
}

func TestRemoteWallet_UtilsMethod(t *testing.T) {
	remote := dialTestServer(t, new(testutil.MockWallet))

	method, err := entities.NewUtilsMethod(entities.UtilsMethodUTF8ToHex, entities.UTF8ToHexRequest{UTF8: "hi"})
	require.NoError(t, err)

	resp, err := remote.CallUtilsMethod(context.Background(), method)
	require.NoError(t, err)
	assert.Equal(t, "0x6869", testutil.DecodeResponse[string](t, entities.ResponseHex, resp))
}

func TestRemoteWallet_RawUnknownMethod(t *testing.T) {
	remote := dialTestServer(t, new(testutil.MockWallet))

	resp, err := remote.CallWalletMethod(context.Background(), entities.WalletMethod{Cmd: "mineBitcoin"})
	require.NoError(t, err)
	testutil.RequireErrorResponse(t, "unknown_method", resp)
}

func TestTracer_RedactsParamsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	trace := newTracer(logger)

	method, err := entities.NewWalletMethod(entities.WalletMethodStoreMnemonic, entities.StoreMnemonicRequest{Mnemonic: "abandon abandon"})
	require.NoError(t, err)

	params := []reflect.Value{
		reflect.ValueOf(&walletService{}),
		reflect.ValueOf(context.Background()),
		reflect.ValueOf(method),
	}
	results := []reflect.Value{reflect.ValueOf(entities.OkResponse()), reflect.Zero(reflect.TypeOf((*error)(nil)).Elem())}
	trace("Wallet.callWalletMethod", params, results, nil)

	out := buf.String()
	assert.Contains(t, out, "rpc call")
	assert.Contains(t, out, "rpc_method=Wallet.callWalletMethod")
	assert.Contains(t, out, "response=ok")
	assert.NotContains(t, out, "abandon")
}

func TestTracer_LogsTransportErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	newTracer(logger)("Wallet.callUtilsMethod", nil, nil, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "connection reset")
}
