package dispatch

import (
	"context"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// WalletHandler implements a WalletMethod variant against a wallet.
type WalletHandler = Handler[ports.Wallet]

func onWallet[Req any](fn MethodFunc[ports.Wallet, Req]) WalletHandler {
	return NewMethodHandler(fn)
}

// WalletBundle returns the handlers of every WalletMethod variant.
// callAccountMethod forwards the nested AccountMethod to accounts.
func WalletBundle(accounts *Registry[ports.Account]) Bundle[ports.Wallet] {
	return CombineBundles(
		AccountManagementBundle(accounts),
		SecretBundle(),
		ClientBundle(),
	)
}

// AccountManagementBundle returns the methods that create, look up and
// recover accounts, plus callAccountMethod.
func AccountManagementBundle(accounts *Registry[ports.Account]) Bundle[ports.Wallet] {
	return &staticBundle[ports.Wallet]{handlers: map[string]WalletHandler{
		entities.WalletMethodCreateAccount: onWallet(func(ctx context.Context, w ports.Wallet, req entities.CreateAccountRequest) (entities.Response, error) {
			account, err := w.CreateAccount(ctx, req.Alias, req.Bech32Hrp)
			return accountResponse(ctx, entities.WalletMethodCreateAccount, account, err)
		}),
		entities.WalletMethodGetAccount: onWallet(func(ctx context.Context, w ports.Wallet, req entities.GetAccountRequest) (entities.Response, error) {
			if err := requireAccountID(entities.WalletMethodGetAccount, req.AccountID); err != nil {
				return entities.Response{}, err
			}
			account, err := w.GetAccount(ctx, req.AccountID)
			return accountResponse(ctx, entities.WalletMethodGetAccount, account, err)
		}),
		entities.WalletMethodGetAccountIndexes: onWallet(func(ctx context.Context, w ports.Wallet, _ entities.NoPayload) (entities.Response, error) {
			v, err := w.AccountIndexes(ctx)
			return respond(entities.WalletMethodGetAccountIndexes, entities.ResponseAccountIndexes, v, err)
		}),
		entities.WalletMethodGetAccounts: onWallet(func(ctx context.Context, w ports.Wallet, _ entities.NoPayload) (entities.Response, error) {
			accounts, err := w.Accounts(ctx)
			return accountsResponse(ctx, entities.WalletMethodGetAccounts, accounts, err)
		}),
		entities.WalletMethodRecoverAccounts: onWallet(func(ctx context.Context, w ports.Wallet, req entities.RecoverAccountsRequest) (entities.Response, error) {
			accounts, err := w.RecoverAccounts(ctx, req.AccountStartIndex, req.AccountGapLimit, req.AddressGapLimit, req.SyncOptions)
			return accountsResponse(ctx, entities.WalletMethodRecoverAccounts, accounts, err)
		}),
		entities.WalletMethodRemoveLatestAccount: onWallet(func(ctx context.Context, w ports.Wallet, _ entities.NoPayload) (entities.Response, error) {
			return ok(entities.WalletMethodRemoveLatestAccount, w.RemoveLatestAccount(ctx))
		}),
		entities.WalletMethodGenerateAddress: onWallet(func(ctx context.Context, w ports.Wallet, req entities.GenerateAddressRequest) (entities.Response, error) {
			v, err := w.GenerateAddress(ctx, req.AccountIndex, req.AddressIndex, req.Internal, req.Options, req.Bech32Hrp)
			return respond(entities.WalletMethodGenerateAddress, entities.ResponseBech32Address, v, err)
		}),
		entities.WalletMethodCallAccountMethod: onWallet(func(ctx context.Context, w ports.Wallet, req entities.CallAccountMethodRequest) (entities.Response, error) {
			if err := requireAccountID(entities.WalletMethodCallAccountMethod, req.AccountID); err != nil {
				return entities.Response{}, err
			}
			account, err := w.GetAccount(ctx, req.AccountID)
			if err != nil {
				return entities.Response{}, engineError(entities.WalletMethodGetAccount, err)
			}
			return accounts.Invoke(ctx, account, req.Method.Name, req.Method.Data)
		}),
	}}
}

// SecretBundle returns the Stronghold, mnemonic, backup and ledger methods.
func SecretBundle() Bundle[ports.Wallet] {
	return &staticBundle[ports.Wallet]{handlers: map[string]WalletHandler{
		entities.WalletMethodBackup: onWallet(func(ctx context.Context, w ports.Wallet, req entities.BackupRequest) (entities.Response, error) {
			return ok(entities.WalletMethodBackup, w.Backup(ctx, req.Destination, req.Password))
		}),
		entities.WalletMethodRestoreBackup: onWallet(func(ctx context.Context, w ports.Wallet, req entities.RestoreBackupRequest) (entities.Response, error) {
			return ok(entities.WalletMethodRestoreBackup, w.RestoreBackup(ctx, req.Source, req.Password, req.IgnoreIfCoinTypeMismatch))
		}),
		entities.WalletMethodChangeStrongholdPassword: onWallet(func(ctx context.Context, w ports.Wallet, req entities.ChangeStrongholdPasswordRequest) (entities.Response, error) {
			return ok(entities.WalletMethodChangeStrongholdPassword, w.ChangeStrongholdPassword(ctx, req.CurrentPassword, req.NewPassword))
		}),
		entities.WalletMethodClearStrongholdPassword: onWallet(func(ctx context.Context, w ports.Wallet, _ entities.NoPayload) (entities.Response, error) {
			return ok(entities.WalletMethodClearStrongholdPassword, w.ClearStrongholdPassword(ctx))
		}),
		entities.WalletMethodIsStrongholdPasswordAvailable: onWallet(func(ctx context.Context, w ports.Wallet, _ entities.NoPayload) (entities.Response, error) {
			v, err := w.IsStrongholdPasswordAvailable(ctx)
			return respond(entities.WalletMethodIsStrongholdPasswordAvailable, entities.ResponseBool, v, err)
		}),
		entities.WalletMethodSetStrongholdPassword: onWallet(func(ctx context.Context, w ports.Wallet, req entities.SetStrongholdPasswordRequest) (entities.Response, error) {
			return ok(entities.WalletMethodSetStrongholdPassword, w.SetStrongholdPassword(ctx, req.Password))
		}),
		entities.WalletMethodSetStrongholdPasswordClearInterval: onWallet(func(ctx context.Context, w ports.Wallet, req entities.SetStrongholdPasswordClearIntervalRequest) (entities.Response, error) {
			return ok(entities.WalletMethodSetStrongholdPasswordClearInterval, w.SetStrongholdPasswordClearInterval(ctx, millis(req.IntervalInMilliseconds)))
		}),
		entities.WalletMethodStoreMnemonic: onWallet(func(ctx context.Context, w ports.Wallet, req entities.StoreMnemonicRequest) (entities.Response, error) {
			return ok(entities.WalletMethodStoreMnemonic, w.StoreMnemonic(ctx, req.Mnemonic))
		}),
		entities.WalletMethodGetLedgerNanoStatus: onWallet(func(ctx context.Context, w ports.Wallet, _ entities.NoPayload) (entities.Response, error) {
			v, err := w.LedgerNanoStatus(ctx)
			return respond(entities.WalletMethodGetLedgerNanoStatus, entities.ResponseLedgerNanoStatus, v, err)
		}),
	}}
}

// ClientBundle returns the node, sync and event methods.
func ClientBundle() Bundle[ports.Wallet] {
	return &staticBundle[ports.Wallet]{handlers: map[string]WalletHandler{
		entities.WalletMethodSetClientOptions: onWallet(func(ctx context.Context, w ports.Wallet, req entities.SetClientOptionsRequest) (entities.Response, error) {
			return ok(entities.WalletMethodSetClientOptions, w.SetClientOptions(ctx, req.ClientOptions))
		}),
		entities.WalletMethodUpdateNodeAuth: onWallet(func(ctx context.Context, w ports.Wallet, req entities.UpdateNodeAuthRequest) (entities.Response, error) {
			return ok(entities.WalletMethodUpdateNodeAuth, w.UpdateNodeAuth(ctx, req.URL, req.Auth))
		}),
		entities.WalletMethodStartBackgroundSync: onWallet(func(ctx context.Context, w ports.Wallet, req entities.StartBackgroundSyncRequest) (entities.Response, error) {
			return ok(entities.WalletMethodStartBackgroundSync, w.StartBackgroundSync(ctx, req.Options, millis(req.IntervalInMilliseconds)))
		}),
		entities.WalletMethodStopBackgroundSync: onWallet(func(ctx context.Context, w ports.Wallet, _ entities.NoPayload) (entities.Response, error) {
			return ok(entities.WalletMethodStopBackgroundSync, w.StopBackgroundSync(ctx))
		}),
		entities.WalletMethodEmitTestEvent: onWallet(func(ctx context.Context, w ports.Wallet, req entities.EmitTestEventRequest) (entities.Response, error) {
			return ok(entities.WalletMethodEmitTestEvent, w.EmitTestEvent(ctx, req.Event))
		}),
		entities.WalletMethodClearListeners: onWallet(func(ctx context.Context, w ports.Wallet, req entities.ClearListenersRequest) (entities.Response, error) {
			return ok(entities.WalletMethodClearListeners, w.ClearListeners(ctx, req.EventTypes))
		}),
	}}
}

func accountResponse(ctx context.Context, method string, account ports.Account, err error) (entities.Response, error) {
	if err != nil {
		return entities.Response{}, engineError(method, err)
	}
	d, err := details(ctx, method, account)
	if err != nil {
		return entities.Response{}, err
	}
	return entities.NewResponse(entities.ResponseAccount, d)
}

func accountsResponse(ctx context.Context, method string, accounts []ports.Account, err error) (entities.Response, error) {
	if err != nil {
		return entities.Response{}, engineError(method, err)
	}
	all := make([]entities.AccountDetails, 0, len(accounts))
	for _, account := range accounts {
		d, err := details(ctx, method, account)
		if err != nil {
			return entities.Response{}, err
		}
		all = append(all, *d)
	}
	return entities.NewResponse(entities.ResponseAccounts, all)
}
