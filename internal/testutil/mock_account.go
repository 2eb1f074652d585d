package testutil

import (
	"context"
	"math/big"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	"github.com/stretchr/testify/mock"
)

// MockAccount is a testify mock of ports.Account.
type MockAccount struct {
	mock.Mock
}

var _ ports.Account = (*MockAccount)(nil)

// get returns argument i as T, or the zero value when it is nil.
func get[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)
	return v
}

func (m *MockAccount) Details(ctx context.Context) (*entities.AccountDetails, error) {
	args := m.Called(ctx)
	return get[*entities.AccountDetails](args, 0), args.Error(1)
}

func (m *MockAccount) Addresses(ctx context.Context) ([]entities.AccountAddress, error) {
	args := m.Called(ctx)
	return get[[]entities.AccountAddress](args, 0), args.Error(1)
}

func (m *MockAccount) AddressesWithUnspentOutputs(ctx context.Context) ([]entities.AddressWithUnspentOutputs, error) {
	args := m.Called(ctx)
	return get[[]entities.AddressWithUnspentOutputs](args, 0), args.Error(1)
}

func (m *MockAccount) GetOutput(ctx context.Context, outputID string) (*entities.OutputData, error) {
	args := m.Called(ctx, outputID)
	return get[*entities.OutputData](args, 0), args.Error(1)
}

func (m *MockAccount) GetFoundryOutput(ctx context.Context, tokenID string) (entities.Output, error) {
	args := m.Called(ctx, tokenID)
	return get[entities.Output](args, 0), args.Error(1)
}

func (m *MockAccount) GetOutputsWithAdditionalUnlockConditions(ctx context.Context, outputs entities.OutputsToClaim) ([]string, error) {
	args := m.Called(ctx, outputs)
	return get[[]string](args, 0), args.Error(1)
}

func (m *MockAccount) GetTransaction(ctx context.Context, transactionID string) (*entities.Transaction, error) {
	args := m.Called(ctx, transactionID)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) GetIncomingTransaction(ctx context.Context, transactionID string) (*entities.Transaction, error) {
	args := m.Called(ctx, transactionID)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) Outputs(ctx context.Context, filter *entities.FilterOptions) ([]entities.OutputData, error) {
	args := m.Called(ctx, filter)
	return get[[]entities.OutputData](args, 0), args.Error(1)
}

func (m *MockAccount) UnspentOutputs(ctx context.Context, filter *entities.FilterOptions) ([]entities.OutputData, error) {
	args := m.Called(ctx, filter)
	return get[[]entities.OutputData](args, 0), args.Error(1)
}

func (m *MockAccount) IncomingTransactions(ctx context.Context) ([]entities.Transaction, error) {
	args := m.Called(ctx)
	return get[[]entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) Transactions(ctx context.Context) ([]entities.Transaction, error) {
	args := m.Called(ctx)
	return get[[]entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) PendingTransactions(ctx context.Context) ([]entities.Transaction, error) {
	args := m.Called(ctx)
	return get[[]entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) Balance(ctx context.Context) (*entities.AccountBalance, error) {
	args := m.Called(ctx)
	return get[*entities.AccountBalance](args, 0), args.Error(1)
}

func (m *MockAccount) MinimumRequiredStorageDeposit(ctx context.Context, output entities.Output) (uint64, error) {
	args := m.Called(ctx, output)
	return get[uint64](args, 0), args.Error(1)
}

func (m *MockAccount) GenerateAddresses(ctx context.Context, amount uint32, opts *entities.GenerateAddressOptions) ([]entities.AccountAddress, error) {
	args := m.Called(ctx, amount, opts)
	return get[[]entities.AccountAddress](args, 0), args.Error(1)
}

func (m *MockAccount) Burn(ctx context.Context, burn entities.Burn, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, burn, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) ConsolidateOutputs(ctx context.Context, force bool, threshold *uint32) (*entities.Transaction, error) {
	args := m.Called(ctx, force, threshold)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) PrepareOutput(ctx context.Context, params entities.OutputParams, opts *entities.TransactionOptions) (entities.Output, error) {
	args := m.Called(ctx, params, opts)
	return get[entities.Output](args, 0), args.Error(1)
}

func (m *MockAccount) PrepareTransaction(ctx context.Context, outputs []entities.Output, opts *entities.TransactionOptions) (*entities.PreparedTransactionData, error) {
	args := m.Called(ctx, outputs, opts)
	return get[*entities.PreparedTransactionData](args, 0), args.Error(1)
}

func (m *MockAccount) PrepareSendAmount(ctx context.Context, params []entities.SendAmountParams, opts *entities.TransactionOptions) (*entities.PreparedTransactionData, error) {
	args := m.Called(ctx, params, opts)
	return get[*entities.PreparedTransactionData](args, 0), args.Error(1)
}

func (m *MockAccount) RetryTransactionUntilIncluded(ctx context.Context, transactionID string, interval, maxAttempts *uint64) (string, error) {
	args := m.Called(ctx, transactionID, interval, maxAttempts)
	return args.String(0), args.Error(1)
}

func (m *MockAccount) Sync(ctx context.Context, opts *entities.SyncOptions) (*entities.AccountBalance, error) {
	args := m.Called(ctx, opts)
	return get[*entities.AccountBalance](args, 0), args.Error(1)
}

func (m *MockAccount) SendAmount(ctx context.Context, params []entities.SendAmountParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, params, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) SendNativeTokens(ctx context.Context, params []entities.SendNativeTokensParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, params, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) SendNft(ctx context.Context, params []entities.SendNftParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, params, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) SendOutputs(ctx context.Context, outputs []entities.Output, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, outputs, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) SignTransactionEssence(ctx context.Context, prepared entities.PreparedTransactionData) (*entities.SignedTransactionData, error) {
	args := m.Called(ctx, prepared)
	return get[*entities.SignedTransactionData](args, 0), args.Error(1)
}

func (m *MockAccount) SubmitAndStoreTransaction(ctx context.Context, signed entities.SignedTransactionData) (*entities.Transaction, error) {
	args := m.Called(ctx, signed)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) ClaimOutputs(ctx context.Context, outputIDs []string) (*entities.Transaction, error) {
	args := m.Called(ctx, outputIDs)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) CreateAliasOutput(ctx context.Context, params *entities.CreateAliasParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, params, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) DecreaseNativeTokenSupply(ctx context.Context, tokenID string, meltAmount *big.Int, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, tokenID, meltAmount, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) IncreaseNativeTokenSupply(ctx context.Context, tokenID string, mintAmount *big.Int, opts *entities.TransactionOptions) (*entities.MintTokenTransaction, error) {
	args := m.Called(ctx, tokenID, mintAmount, opts)
	return get[*entities.MintTokenTransaction](args, 0), args.Error(1)
}

func (m *MockAccount) MintNativeToken(ctx context.Context, params entities.MintNativeTokenParams, opts *entities.TransactionOptions) (*entities.MintTokenTransaction, error) {
	args := m.Called(ctx, params, opts)
	return get[*entities.MintTokenTransaction](args, 0), args.Error(1)
}

func (m *MockAccount) MintNfts(ctx context.Context, params []entities.MintNftParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	args := m.Called(ctx, params, opts)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) Vote(ctx context.Context, eventID *string, answers []uint8) (*entities.Transaction, error) {
	args := m.Called(ctx, eventID, answers)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) StopParticipating(ctx context.Context, eventID string) (*entities.Transaction, error) {
	args := m.Called(ctx, eventID)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) VotingPower(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return get[uint64](args, 0), args.Error(1)
}

func (m *MockAccount) ParticipationOverview(ctx context.Context, eventIDs []string) (*entities.AccountParticipationOverview, error) {
	args := m.Called(ctx, eventIDs)
	return get[*entities.AccountParticipationOverview](args, 0), args.Error(1)
}

func (m *MockAccount) IncreaseVotingPower(ctx context.Context, amount uint64) (*entities.Transaction, error) {
	args := m.Called(ctx, amount)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) DecreaseVotingPower(ctx context.Context, amount uint64) (*entities.Transaction, error) {
	args := m.Called(ctx, amount)
	return get[*entities.Transaction](args, 0), args.Error(1)
}

func (m *MockAccount) RegisterParticipationEvents(ctx context.Context, opts entities.ParticipationEventRegistrationOptions) (map[string]entities.ParticipationEventWithNodes, error) {
	args := m.Called(ctx, opts)
	return get[map[string]entities.ParticipationEventWithNodes](args, 0), args.Error(1)
}

func (m *MockAccount) DeregisterParticipationEvent(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

func (m *MockAccount) ParticipationEvent(ctx context.Context, eventID string) (*entities.ParticipationEventWithNodes, error) {
	args := m.Called(ctx, eventID)
	return get[*entities.ParticipationEventWithNodes](args, 0), args.Error(1)
}

func (m *MockAccount) ParticipationEventIDs(ctx context.Context, node entities.Node, eventType *entities.ParticipationEventType) ([]string, error) {
	args := m.Called(ctx, node, eventType)
	return get[[]string](args, 0), args.Error(1)
}

func (m *MockAccount) ParticipationEventStatus(ctx context.Context, eventID string) (*entities.ParticipationEventStatus, error) {
	args := m.Called(ctx, eventID)
	return get[*entities.ParticipationEventStatus](args, 0), args.Error(1)
}

func (m *MockAccount) ParticipationEvents(ctx context.Context) (map[string]entities.ParticipationEventWithNodes, error) {
	args := m.Called(ctx)
	return get[map[string]entities.ParticipationEventWithNodes](args, 0), args.Error(1)
}

func (m *MockAccount) SetAlias(ctx context.Context, alias string) error {
	return m.Called(ctx, alias).Error(0)
}

func (m *MockAccount) SetDefaultSyncOptions(ctx context.Context, opts entities.SyncOptions) error {
	return m.Called(ctx, opts).Error(0)
}
