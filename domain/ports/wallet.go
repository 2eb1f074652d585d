package ports

import (
	"context"
	"time"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// SecretManager covers the wallet's Stronghold and mnemonic operations.
type SecretManager interface {
	Backup(ctx context.Context, destination, password string) error
	RestoreBackup(ctx context.Context, source, password string, ignoreIfCoinTypeMismatch *bool) error
	ChangeStrongholdPassword(ctx context.Context, currentPassword, newPassword string) error
	ClearStrongholdPassword(ctx context.Context) error
	IsStrongholdPasswordAvailable(ctx context.Context) (bool, error)
	SetStrongholdPassword(ctx context.Context, password string) error
	// SetStrongholdPasswordClearInterval sets how long the password stays cached.
	// A nil interval keeps the password until it is cleared explicitly.
	SetStrongholdPasswordClearInterval(ctx context.Context, interval *time.Duration) error
	StoreMnemonic(ctx context.Context, mnemonic string) error
	LedgerNanoStatus(ctx context.Context) (*entities.LedgerNanoStatus, error)
}

// AccountManager creates, looks up and recovers accounts.
type AccountManager interface {
	CreateAccount(ctx context.Context, alias, bech32Hrp *string) (Account, error)
	GetAccount(ctx context.Context, id entities.AccountIdentifier) (Account, error)
	AccountIndexes(ctx context.Context) ([]uint32, error)
	Accounts(ctx context.Context) ([]Account, error)
	RecoverAccounts(ctx context.Context, accountStartIndex, accountGapLimit, addressGapLimit uint32, syncOptions *entities.SyncOptions) ([]Account, error)
	RemoveLatestAccount(ctx context.Context) error
	GenerateAddress(ctx context.Context, accountIndex, addressIndex uint32, internal bool, opts *entities.GenerateAddressOptions, bech32Hrp *string) (string, error)
}

// Wallet is an opaque wallet handle owned by the wallet engine.
type Wallet interface {
	AccountManager
	SecretManager

	SetClientOptions(ctx context.Context, opts entities.ClientOptions) error
	UpdateNodeAuth(ctx context.Context, url string, auth *entities.NodeAuth) error
	StartBackgroundSync(ctx context.Context, opts *entities.SyncOptions, interval *time.Duration) error
	StopBackgroundSync(ctx context.Context) error
	EmitTestEvent(ctx context.Context, event entities.WalletEvent) error
	ClearListeners(ctx context.Context, eventTypes []entities.WalletEventType) error
}
