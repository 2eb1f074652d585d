package jsonrpc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// remoteAccount forwards every call through callAccountMethod.
type remoteAccount struct {
	wallet *RemoteWallet
	id     entities.AccountIdentifier
}

var _ ports.Account = (*remoteAccount)(nil)

func (a *remoteAccount) call(ctx context.Context, name string, data any) (entities.Response, error) {
	inner, err := entities.NewAccountMethod(name, data)
	if err != nil {
		return entities.Response{}, err
	}
	outer, err := entities.NewWalletMethod(entities.WalletMethodCallAccountMethod, entities.CallAccountMethodRequest{
		AccountID: a.id,
		Method:    inner,
	})
	if err != nil {
		return entities.Response{}, err
	}
	return a.wallet.send(ctx, name, outer)
}

func (a *remoteAccount) exec(ctx context.Context, name string, data any) error {
	_, err := a.call(ctx, name, data)
	return err
}

func accountQuery[T any](ctx context.Context, a *remoteAccount, name string, data any, want entities.ResponseType) (T, error) {
	resp, err := a.call(ctx, name, data)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](name, resp, want)
}

// accountAmount decodes a u64 sent as a decimal string.
func accountAmount(ctx context.Context, a *remoteAccount, name string, data any, want entities.ResponseType) (uint64, error) {
	s, err := accountQuery[string](ctx, a, name, data, want)
	if err != nil {
		return 0, err
	}
	n, err := entities.ParseDecimalU64(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func (a *remoteAccount) Details(ctx context.Context) (*entities.AccountDetails, error) {
	return walletQuery[*entities.AccountDetails](ctx, a.wallet, entities.WalletMethodGetAccount,
		entities.GetAccountRequest{AccountID: a.id}, entities.ResponseAccount)
}

func (a *remoteAccount) Addresses(ctx context.Context) ([]entities.AccountAddress, error) {
	return accountQuery[[]entities.AccountAddress](ctx, a, entities.AccountMethodAddresses, nil, entities.ResponseAddresses)
}

func (a *remoteAccount) AddressesWithUnspentOutputs(ctx context.Context) ([]entities.AddressWithUnspentOutputs, error) {
	return accountQuery[[]entities.AddressWithUnspentOutputs](ctx, a, entities.AccountMethodAddressesWithUnspentOutputs, nil, entities.ResponseAddressesWithUnspentOutputs)
}

func (a *remoteAccount) GetOutput(ctx context.Context, outputID string) (*entities.OutputData, error) {
	return accountQuery[*entities.OutputData](ctx, a, entities.AccountMethodGetOutput,
		entities.GetOutputRequest{OutputID: outputID}, entities.ResponseOutputData)
}

func (a *remoteAccount) GetFoundryOutput(ctx context.Context, tokenID string) (entities.Output, error) {
	return accountQuery[entities.Output](ctx, a, entities.AccountMethodGetFoundryOutput,
		entities.GetFoundryOutputRequest{TokenID: tokenID}, entities.ResponseOutput)
}

func (a *remoteAccount) GetOutputsWithAdditionalUnlockConditions(ctx context.Context, outputs entities.OutputsToClaim) ([]string, error) {
	return accountQuery[[]string](ctx, a, entities.AccountMethodGetOutputsWithAdditionalUnlockConditions,
		entities.GetOutputsWithAdditionalUnlockConditionsRequest{OutputsToClaim: outputs}, entities.ResponseOutputIDs)
}

func (a *remoteAccount) GetTransaction(ctx context.Context, transactionID string) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodGetTransaction,
		entities.GetTransactionRequest{TransactionID: transactionID}, entities.ResponseTransaction)
}

func (a *remoteAccount) GetIncomingTransaction(ctx context.Context, transactionID string) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodGetIncomingTransaction,
		entities.GetTransactionRequest{TransactionID: transactionID}, entities.ResponseTransaction)
}

func (a *remoteAccount) Outputs(ctx context.Context, filter *entities.FilterOptions) ([]entities.OutputData, error) {
	return accountQuery[[]entities.OutputData](ctx, a, entities.AccountMethodOutputs,
		entities.OutputsRequest{FilterOptions: filter}, entities.ResponseOutputsData)
}

func (a *remoteAccount) UnspentOutputs(ctx context.Context, filter *entities.FilterOptions) ([]entities.OutputData, error) {
	return accountQuery[[]entities.OutputData](ctx, a, entities.AccountMethodUnspentOutputs,
		entities.OutputsRequest{FilterOptions: filter}, entities.ResponseOutputsData)
}

func (a *remoteAccount) IncomingTransactions(ctx context.Context) ([]entities.Transaction, error) {
	return accountQuery[[]entities.Transaction](ctx, a, entities.AccountMethodIncomingTransactions, nil, entities.ResponseTransactions)
}

func (a *remoteAccount) Transactions(ctx context.Context) ([]entities.Transaction, error) {
	return accountQuery[[]entities.Transaction](ctx, a, entities.AccountMethodTransactions, nil, entities.ResponseTransactions)
}

func (a *remoteAccount) PendingTransactions(ctx context.Context) ([]entities.Transaction, error) {
	return accountQuery[[]entities.Transaction](ctx, a, entities.AccountMethodPendingTransactions, nil, entities.ResponseTransactions)
}

func (a *remoteAccount) Balance(ctx context.Context) (*entities.AccountBalance, error) {
	return accountQuery[*entities.AccountBalance](ctx, a, entities.AccountMethodGetBalance, nil, entities.ResponseBalance)
}

func (a *remoteAccount) MinimumRequiredStorageDeposit(ctx context.Context, output entities.Output) (uint64, error) {
	return accountAmount(ctx, a, entities.AccountMethodMinimumRequiredStorageDeposit,
		entities.MinimumRequiredStorageDepositRequest{Output: output}, entities.ResponseMinimumRequiredStorageDeposit)
}

func (a *remoteAccount) GenerateAddresses(ctx context.Context, amount uint32, opts *entities.GenerateAddressOptions) ([]entities.AccountAddress, error) {
	return accountQuery[[]entities.AccountAddress](ctx, a, entities.AccountMethodGenerateAddresses,
		entities.GenerateAddressesRequest{Options: opts, Amount: amount}, entities.ResponseGeneratedAddress)
}

func (a *remoteAccount) Burn(ctx context.Context, burn entities.Burn, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodBurn,
		entities.BurnRequest{Options: opts, Burn: burn}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) ConsolidateOutputs(ctx context.Context, force bool, threshold *uint32) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodConsolidateOutputs,
		entities.ConsolidateOutputsRequest{OutputConsolidationThreshold: threshold, Force: force}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) PrepareOutput(ctx context.Context, params entities.OutputParams, opts *entities.TransactionOptions) (entities.Output, error) {
	return accountQuery[entities.Output](ctx, a, entities.AccountMethodPrepareOutput,
		entities.PrepareOutputRequest{TransactionOptions: opts, Params: params}, entities.ResponseOutput)
}

func (a *remoteAccount) PrepareTransaction(ctx context.Context, outputs []entities.Output, opts *entities.TransactionOptions) (*entities.PreparedTransactionData, error) {
	return accountQuery[*entities.PreparedTransactionData](ctx, a, entities.AccountMethodPrepareTransaction,
		entities.PrepareTransactionRequest{Options: opts, Outputs: outputs}, entities.ResponsePreparedTransaction)
}

func (a *remoteAccount) PrepareSendAmount(ctx context.Context, params []entities.SendAmountParams, opts *entities.TransactionOptions) (*entities.PreparedTransactionData, error) {
	return accountQuery[*entities.PreparedTransactionData](ctx, a, entities.AccountMethodPrepareSendAmount,
		entities.SendAmountRequest{Options: opts, Params: params}, entities.ResponsePreparedTransaction)
}

func (a *remoteAccount) RetryTransactionUntilIncluded(ctx context.Context, transactionID string, interval, maxAttempts *uint64) (string, error) {
	return accountQuery[string](ctx, a, entities.AccountMethodRetryTransactionUntilIncluded,
		entities.RetryTransactionUntilIncludedRequest{Interval: interval, MaxAttempts: maxAttempts, TransactionID: transactionID}, entities.ResponseBlockID)
}

func (a *remoteAccount) Sync(ctx context.Context, opts *entities.SyncOptions) (*entities.AccountBalance, error) {
	return accountQuery[*entities.AccountBalance](ctx, a, entities.AccountMethodSync,
		entities.SyncRequest{Options: opts}, entities.ResponseBalance)
}

func (a *remoteAccount) SendAmount(ctx context.Context, params []entities.SendAmountParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodSendAmount,
		entities.SendAmountRequest{Options: opts, Params: params}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) SendNativeTokens(ctx context.Context, params []entities.SendNativeTokensParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodSendNativeTokens,
		entities.SendNativeTokensRequest{Options: opts, Params: params}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) SendNft(ctx context.Context, params []entities.SendNftParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodSendNft,
		entities.SendNftRequest{Options: opts, Params: params}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) SendOutputs(ctx context.Context, outputs []entities.Output, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodSendOutputs,
		entities.SendOutputsRequest{Options: opts, Outputs: outputs}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) SignTransactionEssence(ctx context.Context, prepared entities.PreparedTransactionData) (*entities.SignedTransactionData, error) {
	return accountQuery[*entities.SignedTransactionData](ctx, a, entities.AccountMethodSignTransactionEssence,
		entities.SignTransactionEssenceRequest{PreparedTransactionData: prepared}, entities.ResponseSignedTransaction)
}

func (a *remoteAccount) SubmitAndStoreTransaction(ctx context.Context, signed entities.SignedTransactionData) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodSubmitAndStoreTransaction,
		entities.SubmitAndStoreTransactionRequest{SignedTransactionData: signed}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) ClaimOutputs(ctx context.Context, outputIDs []string) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodClaimOutputs,
		entities.ClaimOutputsRequest{OutputIDsToClaim: outputIDs}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) CreateAliasOutput(ctx context.Context, params *entities.CreateAliasParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodCreateAliasOutput,
		entities.CreateAliasOutputRequest{Params: params, Options: opts}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) DecreaseNativeTokenSupply(ctx context.Context, tokenID string, meltAmount *big.Int, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodDecreaseNativeTokenSupply,
		entities.DecreaseNativeTokenSupplyRequest{Options: opts, TokenID: tokenID, MeltAmount: entities.NewU256(meltAmount)}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) IncreaseNativeTokenSupply(ctx context.Context, tokenID string, mintAmount *big.Int, opts *entities.TransactionOptions) (*entities.MintTokenTransaction, error) {
	return accountQuery[*entities.MintTokenTransaction](ctx, a, entities.AccountMethodIncreaseNativeTokenSupply,
		entities.IncreaseNativeTokenSupplyRequest{Options: opts, TokenID: tokenID, MintAmount: entities.NewU256(mintAmount)}, entities.ResponseMintTokenTransaction)
}

func (a *remoteAccount) MintNativeToken(ctx context.Context, params entities.MintNativeTokenParams, opts *entities.TransactionOptions) (*entities.MintTokenTransaction, error) {
	return accountQuery[*entities.MintTokenTransaction](ctx, a, entities.AccountMethodMintNativeToken,
		entities.MintNativeTokenRequest{Options: opts, Params: params}, entities.ResponseMintTokenTransaction)
}

func (a *remoteAccount) MintNfts(ctx context.Context, params []entities.MintNftParams, opts *entities.TransactionOptions) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodMintNfts,
		entities.MintNftsRequest{Options: opts, Params: params}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) Vote(ctx context.Context, eventID *string, answers []uint8) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodVote,
		entities.VoteRequest{EventID: eventID, Answers: answers}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) StopParticipating(ctx context.Context, eventID string) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodStopParticipating,
		entities.ParticipationEventRequest{EventID: eventID}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) VotingPower(ctx context.Context) (uint64, error) {
	return accountAmount(ctx, a, entities.AccountMethodGetVotingPower, nil, entities.ResponseVotingPower)
}

func (a *remoteAccount) ParticipationOverview(ctx context.Context, eventIDs []string) (*entities.AccountParticipationOverview, error) {
	return accountQuery[*entities.AccountParticipationOverview](ctx, a, entities.AccountMethodGetParticipationOverview,
		entities.GetParticipationOverviewRequest{EventIDs: eventIDs}, entities.ResponseAccountParticipationOverview)
}

func (a *remoteAccount) IncreaseVotingPower(ctx context.Context, amount uint64) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodIncreaseVotingPower,
		entities.VotingPowerRequest{Amount: entities.FormatDecimalU64(amount)}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) DecreaseVotingPower(ctx context.Context, amount uint64) (*entities.Transaction, error) {
	return accountQuery[*entities.Transaction](ctx, a, entities.AccountMethodDecreaseVotingPower,
		entities.VotingPowerRequest{Amount: entities.FormatDecimalU64(amount)}, entities.ResponseSentTransaction)
}

func (a *remoteAccount) RegisterParticipationEvents(ctx context.Context, opts entities.ParticipationEventRegistrationOptions) (map[string]entities.ParticipationEventWithNodes, error) {
	return accountQuery[map[string]entities.ParticipationEventWithNodes](ctx, a, entities.AccountMethodRegisterParticipationEvents,
		entities.RegisterParticipationEventsRequest{Options: opts}, entities.ResponseParticipationEvents)
}

func (a *remoteAccount) DeregisterParticipationEvent(ctx context.Context, eventID string) error {
	return a.exec(ctx, entities.AccountMethodDeregisterParticipationEvent, entities.ParticipationEventRequest{EventID: eventID})
}

func (a *remoteAccount) ParticipationEvent(ctx context.Context, eventID string) (*entities.ParticipationEventWithNodes, error) {
	return accountQuery[*entities.ParticipationEventWithNodes](ctx, a, entities.AccountMethodGetParticipationEvent,
		entities.ParticipationEventRequest{EventID: eventID}, entities.ResponseParticipationEvent)
}

func (a *remoteAccount) ParticipationEventIDs(ctx context.Context, node entities.Node, eventType *entities.ParticipationEventType) ([]string, error) {
	return accountQuery[[]string](ctx, a, entities.AccountMethodGetParticipationEventIDs,
		entities.GetParticipationEventIDsRequest{EventType: eventType, Node: node}, entities.ResponseParticipationEventIDs)
}

func (a *remoteAccount) ParticipationEventStatus(ctx context.Context, eventID string) (*entities.ParticipationEventStatus, error) {
	return accountQuery[*entities.ParticipationEventStatus](ctx, a, entities.AccountMethodGetParticipationEventStatus,
		entities.ParticipationEventRequest{EventID: eventID}, entities.ResponseParticipationEventStatus)
}

func (a *remoteAccount) ParticipationEvents(ctx context.Context) (map[string]entities.ParticipationEventWithNodes, error) {
	return accountQuery[map[string]entities.ParticipationEventWithNodes](ctx, a, entities.AccountMethodGetParticipationEvents, nil, entities.ResponseParticipationEvents)
}

func (a *remoteAccount) SetAlias(ctx context.Context, alias string) error {
	return a.exec(ctx, entities.AccountMethodSetAlias, entities.SetAliasRequest{Alias: alias})
}

func (a *remoteAccount) SetDefaultSyncOptions(ctx context.Context, opts entities.SyncOptions) error {
	return a.exec(ctx, entities.AccountMethodSetDefaultSyncOptions, entities.SetDefaultSyncOptionsRequest{Options: opts})
}
