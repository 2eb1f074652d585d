package jsonrpc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// walletClient is filled in by go-jsonrpc with stubs of the walletService methods.
type walletClient struct {
	CallWalletMethod func(ctx context.Context, method entities.WalletMethod) (entities.Response, error)
	CallUtilsMethod  func(ctx context.Context, method entities.UtilsMethod) (entities.Response, error)
}

// clientConfig holds configuration for Dial.
type clientConfig struct {
	header  http.Header
	options []jsonrpc.Option
}

func defaultClientConfig() clientConfig {
	return clientConfig{
		header: http.Header{},
		options: []jsonrpc.Option{
			jsonrpc.WithMethodNameFormatter(methodNameFormatter()),
		},
	}
}

// ClientOption configures Dial.
type ClientOption func(*clientConfig)

// WithHeader adds a header sent with every request, e.g. Authorization.
func WithHeader(key, value string) ClientOption {
	return func(c *clientConfig) {
		c.header.Add(key, value)
	}
}

// WithTimeout bounds every call.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.options = append(c.options, jsonrpc.WithTimeout(d))
	}
}

// WithRPCOptions passes extra options to the go-jsonrpc client.
func WithRPCOptions(opts ...jsonrpc.Option) ClientOption {
	return func(c *clientConfig) {
		c.options = append(c.options, opts...)
	}
}

// RemoteWallet implements ports.Wallet against a Server. Remote "error"
// responses are returned as EngineError wrapping the remote ErrorDetail.
type RemoteWallet struct {
	client walletClient
	closer jsonrpc.ClientCloser
}

var _ ports.Wallet = (*RemoteWallet)(nil)

// Dial connects to a Server at addr. http(s) addresses use one request per
// call; ws(s) addresses keep a websocket open.
func Dial(ctx context.Context, addr string, opts ...ClientOption) (*RemoteWallet, error) {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &RemoteWallet{}
	closer, err := jsonrpc.NewMergeClient(ctx, addr, Namespace, []interface{}{&w.client}, cfg.header, cfg.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wallet at %s: %w", addr, err)
	}
	w.closer = closer
	return w, nil
}

// Close releases the connection.
func (w *RemoteWallet) Close() {
	if w.closer != nil {
		w.closer()
	}
}

// CallWalletMethod sends a raw WalletMethod and returns the remote Response as is.
func (w *RemoteWallet) CallWalletMethod(ctx context.Context, method entities.WalletMethod) (entities.Response, error) {
	return w.client.CallWalletMethod(ctx, method)
}

// CallUtilsMethod sends a raw UtilsMethod and returns the remote Response as is.
func (w *RemoteWallet) CallUtilsMethod(ctx context.Context, method entities.UtilsMethod) (entities.Response, error) {
	return w.client.CallUtilsMethod(ctx, method)
}

// call runs cmd remotely and turns "error" and "panic" responses into errors.
func (w *RemoteWallet) call(ctx context.Context, cmd string, payload any) (entities.Response, error) {
	method, err := entities.NewWalletMethod(cmd, payload)
	if err != nil {
		return entities.Response{}, err
	}
	return w.send(ctx, cmd, method)
}

// send reports failures under label, which names the innermost method.
func (w *RemoteWallet) send(ctx context.Context, label string, method entities.WalletMethod) (entities.Response, error) {
	resp, err := w.client.CallWalletMethod(ctx, method)
	if err != nil {
		return entities.Response{}, fmt.Errorf("rpc %s: %w", label, err)
	}
	if rerr := resp.Err(); rerr != nil {
		return entities.Response{}, &domainerrors.EngineError{Err: rerr, Method: label}
	}
	return resp, nil
}

func (w *RemoteWallet) exec(ctx context.Context, cmd string, payload any) error {
	_, err := w.call(ctx, cmd, payload)
	return err
}

// decode checks the response type and decodes its payload. A null payload
// yields the zero value.
func decode[T any](method string, resp entities.Response, want entities.ResponseType) (T, error) {
	var v T
	if resp.Type != want {
		return v, fmt.Errorf("%s: unexpected %q response, want %q", method, resp.Type, want)
	}
	if len(resp.Payload) == 0 || string(resp.Payload) == "null" {
		return v, nil
	}
	if err := resp.Decode(&v); err != nil {
		return v, fmt.Errorf("%s: %w", method, err)
	}
	return v, nil
}

func walletQuery[T any](ctx context.Context, w *RemoteWallet, cmd string, payload any, want entities.ResponseType) (T, error) {
	resp, err := w.call(ctx, cmd, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](cmd, resp, want)
}

func (w *RemoteWallet) account(details *entities.AccountDetails) ports.Account {
	return &remoteAccount{wallet: w, id: entities.AccountIndex(details.Index)}
}

func (w *RemoteWallet) accountFrom(ctx context.Context, cmd string, payload any) (ports.Account, error) {
	details, err := walletQuery[*entities.AccountDetails](ctx, w, cmd, payload, entities.ResponseAccount)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, fmt.Errorf("%s: empty account response", cmd)
	}
	return w.account(details), nil
}

func (w *RemoteWallet) accountsFrom(ctx context.Context, cmd string, payload any) ([]ports.Account, error) {
	all, err := walletQuery[[]entities.AccountDetails](ctx, w, cmd, payload, entities.ResponseAccounts)
	if err != nil {
		return nil, err
	}
	accounts := make([]ports.Account, 0, len(all))
	for i := range all {
		accounts = append(accounts, w.account(&all[i]))
	}
	return accounts, nil
}

// CreateAccount creates an account through createAccount.
func (w *RemoteWallet) CreateAccount(ctx context.Context, alias, bech32Hrp *string) (ports.Account, error) {
	return w.accountFrom(ctx, entities.WalletMethodCreateAccount, entities.CreateAccountRequest{Alias: alias, Bech32Hrp: bech32Hrp})
}

// GetAccount resolves id through getAccount and returns a handle bound to its index.
func (w *RemoteWallet) GetAccount(ctx context.Context, id entities.AccountIdentifier) (ports.Account, error) {
	return w.accountFrom(ctx, entities.WalletMethodGetAccount, entities.GetAccountRequest{AccountID: id})
}

// AccountIndexes lists the indexes of all accounts.
func (w *RemoteWallet) AccountIndexes(ctx context.Context) ([]uint32, error) {
	return walletQuery[[]uint32](ctx, w, entities.WalletMethodGetAccountIndexes, nil, entities.ResponseAccountIndexes)
}

// Accounts returns a handle for every account.
func (w *RemoteWallet) Accounts(ctx context.Context) ([]ports.Account, error) {
	return w.accountsFrom(ctx, entities.WalletMethodGetAccounts, nil)
}

// RecoverAccounts searches for used accounts and returns handles for them.
func (w *RemoteWallet) RecoverAccounts(ctx context.Context, accountStartIndex, accountGapLimit, addressGapLimit uint32, syncOptions *entities.SyncOptions) ([]ports.Account, error) {
	return w.accountsFrom(ctx, entities.WalletMethodRecoverAccounts, entities.RecoverAccountsRequest{
		SyncOptions:       syncOptions,
		AccountStartIndex: accountStartIndex,
		AccountGapLimit:   accountGapLimit,
		AddressGapLimit:   addressGapLimit,
	})
}

// RemoveLatestAccount removes the most recently created account.
func (w *RemoteWallet) RemoveLatestAccount(ctx context.Context) error {
	return w.exec(ctx, entities.WalletMethodRemoveLatestAccount, nil)
}

// GenerateAddress derives one bech32 address.
func (w *RemoteWallet) GenerateAddress(ctx context.Context, accountIndex, addressIndex uint32, internal bool, opts *entities.GenerateAddressOptions, bech32Hrp *string) (string, error) {
	return walletQuery[string](ctx, w, entities.WalletMethodGenerateAddress, entities.GenerateAddressRequest{
		Options:      opts,
		Bech32Hrp:    bech32Hrp,
		AccountIndex: accountIndex,
		AddressIndex: addressIndex,
		Internal:     internal,
	}, entities.ResponseBech32Address)
}

// Backup writes a Stronghold backup on the engine host.
func (w *RemoteWallet) Backup(ctx context.Context, destination, password string) error {
	return w.exec(ctx, entities.WalletMethodBackup, entities.BackupRequest{Destination: destination, Password: password})
}

// RestoreBackup restores a Stronghold backup on the engine host.
func (w *RemoteWallet) RestoreBackup(ctx context.Context, source, password string, ignoreIfCoinTypeMismatch *bool) error {
	return w.exec(ctx, entities.WalletMethodRestoreBackup, entities.RestoreBackupRequest{
		IgnoreIfCoinTypeMismatch: ignoreIfCoinTypeMismatch,
		Source:                   source,
		Password:                 password,
	})
}

// ChangeStrongholdPassword implements ports.Wallet.
func (w *RemoteWallet) ChangeStrongholdPassword(ctx context.Context, currentPassword, newPassword string) error {
	return w.exec(ctx, entities.WalletMethodChangeStrongholdPassword, entities.ChangeStrongholdPasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
}

// ClearStrongholdPassword implements ports.Wallet.
func (w *RemoteWallet) ClearStrongholdPassword(ctx context.Context) error {
	return w.exec(ctx, entities.WalletMethodClearStrongholdPassword, nil)
}

// IsStrongholdPasswordAvailable reports whether the engine has the Stronghold password cached.
func (w *RemoteWallet) IsStrongholdPasswordAvailable(ctx context.Context) (bool, error) {
	return walletQuery[bool](ctx, w, entities.WalletMethodIsStrongholdPasswordAvailable, nil, entities.ResponseBool)
}

// SetStrongholdPassword implements ports.Wallet.
func (w *RemoteWallet) SetStrongholdPassword(ctx context.Context, password string) error {
	return w.exec(ctx, entities.WalletMethodSetStrongholdPassword, entities.SetStrongholdPasswordRequest{Password: password})
}

// SetStrongholdPasswordClearInterval sends interval in milliseconds. Nil clears the interval.
func (w *RemoteWallet) SetStrongholdPasswordClearInterval(ctx context.Context, interval *time.Duration) error {
	return w.exec(ctx, entities.WalletMethodSetStrongholdPasswordClearInterval, entities.SetStrongholdPasswordClearIntervalRequest{
		IntervalInMilliseconds: toMillis(interval),
	})
}

// StoreMnemonic implements ports.Wallet.
func (w *RemoteWallet) StoreMnemonic(ctx context.Context, mnemonic string) error {
	return w.exec(ctx, entities.WalletMethodStoreMnemonic, entities.StoreMnemonicRequest{Mnemonic: mnemonic})
}

// LedgerNanoStatus implements ports.Wallet.
func (w *RemoteWallet) LedgerNanoStatus(ctx context.Context) (*entities.LedgerNanoStatus, error) {
	return walletQuery[*entities.LedgerNanoStatus](ctx, w, entities.WalletMethodGetLedgerNanoStatus, nil, entities.ResponseLedgerNanoStatus)
}

// SetClientOptions implements ports.Wallet.
func (w *RemoteWallet) SetClientOptions(ctx context.Context, opts entities.ClientOptions) error {
	return w.exec(ctx, entities.WalletMethodSetClientOptions, entities.SetClientOptionsRequest{ClientOptions: opts})
}

// UpdateNodeAuth implements ports.Wallet.
func (w *RemoteWallet) UpdateNodeAuth(ctx context.Context, url string, auth *entities.NodeAuth) error {
	return w.exec(ctx, entities.WalletMethodUpdateNodeAuth, entities.UpdateNodeAuthRequest{Auth: auth, URL: url})
}

// StartBackgroundSync sends interval in milliseconds.
func (w *RemoteWallet) StartBackgroundSync(ctx context.Context, opts *entities.SyncOptions, interval *time.Duration) error {
	return w.exec(ctx, entities.WalletMethodStartBackgroundSync, entities.StartBackgroundSyncRequest{
		Options:                opts,
		IntervalInMilliseconds: toMillis(interval),
	})
}

// StopBackgroundSync implements ports.Wallet.
func (w *RemoteWallet) StopBackgroundSync(ctx context.Context) error {
	return w.exec(ctx, entities.WalletMethodStopBackgroundSync, nil)
}

// EmitTestEvent implements ports.Wallet.
func (w *RemoteWallet) EmitTestEvent(ctx context.Context, event entities.WalletEvent) error {
	return w.exec(ctx, entities.WalletMethodEmitTestEvent, entities.EmitTestEventRequest{Event: event})
}

// ClearListeners implements ports.Wallet.
func (w *RemoteWallet) ClearListeners(ctx context.Context, eventTypes []entities.WalletEventType) error {
	return w.exec(ctx, entities.WalletMethodClearListeners, entities.ClearListenersRequest{EventTypes: eventTypes})
}

func toMillis(d *time.Duration) *uint64 {
	if d == nil {
		return nil
	}
	ms := uint64(d.Milliseconds()) //nolint:gosec // G115: negative intervals are rejected by the engine
	return &ms
}
