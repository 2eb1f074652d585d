package testutil

import (
	"context"
	"time"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	"github.com/stretchr/testify/mock"
)

// MockWallet is a testify mock of ports.Wallet.
type MockWallet struct {
	mock.Mock
}

var _ ports.Wallet = (*MockWallet)(nil)

func (m *MockWallet) CreateAccount(ctx context.Context, alias, bech32Hrp *string) (ports.Account, error) {
	args := m.Called(ctx, alias, bech32Hrp)
	return get[ports.Account](args, 0), args.Error(1)
}

func (m *MockWallet) GetAccount(ctx context.Context, id entities.AccountIdentifier) (ports.Account, error) {
	args := m.Called(ctx, id)
	return get[ports.Account](args, 0), args.Error(1)
}

func (m *MockWallet) AccountIndexes(ctx context.Context) ([]uint32, error) {
	args := m.Called(ctx)
	return get[[]uint32](args, 0), args.Error(1)
}

func (m *MockWallet) Accounts(ctx context.Context) ([]ports.Account, error) {
	args := m.Called(ctx)
	return get[[]ports.Account](args, 0), args.Error(1)
}

func (m *MockWallet) RecoverAccounts(ctx context.Context, accountStartIndex, accountGapLimit, addressGapLimit uint32, syncOptions *entities.SyncOptions) ([]ports.Account, error) {
	args := m.Called(ctx, accountStartIndex, accountGapLimit, addressGapLimit, syncOptions)
	return get[[]ports.Account](args, 0), args.Error(1)
}

func (m *MockWallet) RemoveLatestAccount(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWallet) GenerateAddress(ctx context.Context, accountIndex, addressIndex uint32, internal bool, opts *entities.GenerateAddressOptions, bech32Hrp *string) (string, error) {
	args := m.Called(ctx, accountIndex, addressIndex, internal, opts, bech32Hrp)
	return args.String(0), args.Error(1)
}

func (m *MockWallet) Backup(ctx context.Context, destination, password string) error {
	return m.Called(ctx, destination, password).Error(0)
}

func (m *MockWallet) RestoreBackup(ctx context.Context, source, password string, ignoreIfCoinTypeMismatch *bool) error {
	return m.Called(ctx, source, password, ignoreIfCoinTypeMismatch).Error(0)
}

func (m *MockWallet) ChangeStrongholdPassword(ctx context.Context, currentPassword, newPassword string) error {
	return m.Called(ctx, currentPassword, newPassword).Error(0)
}

func (m *MockWallet) ClearStrongholdPassword(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWallet) IsStrongholdPasswordAvailable(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockWallet) SetStrongholdPassword(ctx context.Context, password string) error {
	return m.Called(ctx, password).Error(0)
}

func (m *MockWallet) SetStrongholdPasswordClearInterval(ctx context.Context, interval *time.Duration) error {
	return m.Called(ctx, interval).Error(0)
}

func (m *MockWallet) StoreMnemonic(ctx context.Context, mnemonic string) error {
	return m.Called(ctx, mnemonic).Error(0)
}

func (m *MockWallet) LedgerNanoStatus(ctx context.Context) (*entities.LedgerNanoStatus, error) {
	args := m.Called(ctx)
	return get[*entities.LedgerNanoStatus](args, 0), args.Error(1)
}

func (m *MockWallet) SetClientOptions(ctx context.Context, opts entities.ClientOptions) error {
	return m.Called(ctx, opts).Error(0)
}

func (m *MockWallet) UpdateNodeAuth(ctx context.Context, url string, auth *entities.NodeAuth) error {
	return m.Called(ctx, url, auth).Error(0)
}

func (m *MockWallet) StartBackgroundSync(ctx context.Context, opts *entities.SyncOptions, interval *time.Duration) error {
	return m.Called(ctx, opts, interval).Error(0)
}

func (m *MockWallet) StopBackgroundSync(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWallet) EmitTestEvent(ctx context.Context, event entities.WalletEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockWallet) ClearListeners(ctx context.Context, eventTypes []entities.WalletEventType) error {
	return m.Called(ctx, eventTypes).Error(0)
}
