package ports

import (
	"context"
	"math/big"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// AccountReader exposes the read side of an account.
type AccountReader interface {
	// Details returns the serializable view of the account.
	Details(ctx context.Context) (*entities.AccountDetails, error)
	Addresses(ctx context.Context) ([]entities.AccountAddress, error)
	AddressesWithUnspentOutputs(ctx context.Context) ([]entities.AddressWithUnspentOutputs, error)
	// GetOutput returns nil without error when the account does not know the output.
	GetOutput(ctx context.Context, outputID string) (*entities.OutputData, error)
	GetFoundryOutput(ctx context.Context, tokenID string) (entities.Output, error)
	GetOutputsWithAdditionalUnlockConditions(ctx context.Context, outputs entities.OutputsToClaim) ([]string, error)
	// GetTransaction returns nil without error when the transaction is unknown.
	GetTransaction(ctx context.Context, transactionID string) (*entities.Transaction, error)
	// GetIncomingTransaction returns nil without error when the transaction is unknown.
	GetIncomingTransaction(ctx context.Context, transactionID string) (*entities.Transaction, error)
	Outputs(ctx context.Context, filter *entities.FilterOptions) ([]entities.OutputData, error)
	UnspentOutputs(ctx context.Context, filter *entities.FilterOptions) ([]entities.OutputData, error)
	IncomingTransactions(ctx context.Context) ([]entities.Transaction, error)
	Transactions(ctx context.Context) ([]entities.Transaction, error)
	PendingTransactions(ctx context.Context) ([]entities.Transaction, error)
	Balance(ctx context.Context) (*entities.AccountBalance, error)
	// MinimumRequiredStorageDeposit returns the storage deposit the output must hold.
	MinimumRequiredStorageDeposit(ctx context.Context, output entities.Output) (uint64, error)
}

// Transactor builds, signs and submits transactions.
type Transactor interface {
	GenerateAddresses(ctx context.Context, amount uint32, opts *entities.GenerateAddressOptions) ([]entities.AccountAddress, error)
	Burn(ctx context.Context, burn entities.Burn, opts *entities.TransactionOptions) (*entities.Transaction, error)
	ConsolidateOutputs(ctx context.Context, force bool, threshold *uint32) (*entities.Transaction, error)
	PrepareOutput(ctx context.Context, params entities.OutputParams, opts *entities.TransactionOptions) (entities.Output, error)
	PrepareTransaction(ctx context.Context, outputs []entities.Output, opts *entities.TransactionOptions) (*entities.PreparedTransactionData, error)
	PrepareSendAmount(ctx context.Context, params []entities.SendAmountParams, opts *entities.TransactionOptions) (*entities.PreparedTransactionData, error)
	// RetryTransactionUntilIncluded returns the id of the block that got included.
	RetryTransactionUntilIncluded(ctx context.Context, transactionID string, interval, maxAttempts *uint64) (string, error)
	Sync(ctx context.Context, opts *entities.SyncOptions) (*entities.AccountBalance, error)
	SendAmount(ctx context.Context, params []entities.SendAmountParams, opts *entities.TransactionOptions) (*entities.Transaction, error)
	SendNativeTokens(ctx context.Context, params []entities.SendNativeTokensParams, opts *entities.TransactionOptions) (*entities.Transaction, error)
	SendNft(ctx context.Context, params []entities.SendNftParams, opts *entities.TransactionOptions) (*entities.Transaction, error)
	SendOutputs(ctx context.Context, outputs []entities.Output, opts *entities.TransactionOptions) (*entities.Transaction, error)
	SignTransactionEssence(ctx context.Context, prepared entities.PreparedTransactionData) (*entities.SignedTransactionData, error)
	SubmitAndStoreTransaction(ctx context.Context, signed entities.SignedTransactionData) (*entities.Transaction, error)
	ClaimOutputs(ctx context.Context, outputIDs []string) (*entities.Transaction, error)
}

// NativeTokenManager creates and manages aliases, foundries, native tokens and NFTs.
type NativeTokenManager interface {
	CreateAliasOutput(ctx context.Context, params *entities.CreateAliasParams, opts *entities.TransactionOptions) (*entities.Transaction, error)
	DecreaseNativeTokenSupply(ctx context.Context, tokenID string, meltAmount *big.Int, opts *entities.TransactionOptions) (*entities.Transaction, error)
	IncreaseNativeTokenSupply(ctx context.Context, tokenID string, mintAmount *big.Int, opts *entities.TransactionOptions) (*entities.MintTokenTransaction, error)
	MintNativeToken(ctx context.Context, params entities.MintNativeTokenParams, opts *entities.TransactionOptions) (*entities.MintTokenTransaction, error)
	MintNfts(ctx context.Context, params []entities.MintNftParams, opts *entities.TransactionOptions) (*entities.Transaction, error)
}

// Participator votes and tracks participation events.
type Participator interface {
	Vote(ctx context.Context, eventID *string, answers []uint8) (*entities.Transaction, error)
	StopParticipating(ctx context.Context, eventID string) (*entities.Transaction, error)
	VotingPower(ctx context.Context) (uint64, error)
	ParticipationOverview(ctx context.Context, eventIDs []string) (*entities.AccountParticipationOverview, error)
	IncreaseVotingPower(ctx context.Context, amount uint64) (*entities.Transaction, error)
	DecreaseVotingPower(ctx context.Context, amount uint64) (*entities.Transaction, error)
	RegisterParticipationEvents(ctx context.Context, opts entities.ParticipationEventRegistrationOptions) (map[string]entities.ParticipationEventWithNodes, error)
	DeregisterParticipationEvent(ctx context.Context, eventID string) error
	// ParticipationEvent returns nil without error when the event is not registered.
	ParticipationEvent(ctx context.Context, eventID string) (*entities.ParticipationEventWithNodes, error)
	ParticipationEventIDs(ctx context.Context, node entities.Node, eventType *entities.ParticipationEventType) ([]string, error)
	ParticipationEventStatus(ctx context.Context, eventID string) (*entities.ParticipationEventStatus, error)
	ParticipationEvents(ctx context.Context) (map[string]entities.ParticipationEventWithNodes, error)
}

// AccountConfigurator changes account-local settings.
type AccountConfigurator interface {
	SetAlias(ctx context.Context, alias string) error
	SetDefaultSyncOptions(ctx context.Context, opts entities.SyncOptions) error
}

// Account is an opaque account handle owned by the wallet engine.
type Account interface {
	AccountReader
	Transactor
	NativeTokenManager
	Participator
	AccountConfigurator
}
