package dispatch

import (
	"context"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// AccountHandler implements an AccountMethod variant against an account.
type AccountHandler = Handler[ports.Account]

func onAccount[Req any](fn MethodFunc[ports.Account, Req]) AccountHandler {
	return NewMethodHandler(fn)
}

// AccountBundle returns the handlers of every AccountMethod variant.
func AccountBundle() Bundle[ports.Account] {
	return CombineBundles(
		AccountReadBundle(),
		TransactionBundle(),
		NativeTokenBundle(),
		ParticipationBundle(),
	)
}

// AccountReadBundle returns the read-only account methods.
func AccountReadBundle() Bundle[ports.Account] {
	return &staticBundle[ports.Account]{handlers: map[string]AccountHandler{
		entities.AccountMethodAddresses: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.Addresses(ctx)
			return respond(entities.AccountMethodAddresses, entities.ResponseAddresses, v, err)
		}),
		entities.AccountMethodAddressesWithUnspentOutputs: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.AddressesWithUnspentOutputs(ctx)
			return respond(entities.AccountMethodAddressesWithUnspentOutputs, entities.ResponseAddressesWithUnspentOutputs, v, err)
		}),
		entities.AccountMethodGetOutput: onAccount(func(ctx context.Context, a ports.Account, req entities.GetOutputRequest) (entities.Response, error) {
			v, err := a.GetOutput(ctx, req.OutputID)
			return respond(entities.AccountMethodGetOutput, entities.ResponseOutputData, v, err)
		}),
		entities.AccountMethodGetFoundryOutput: onAccount(func(ctx context.Context, a ports.Account, req entities.GetFoundryOutputRequest) (entities.Response, error) {
			v, err := a.GetFoundryOutput(ctx, req.TokenID)
			return respond(entities.AccountMethodGetFoundryOutput, entities.ResponseOutput, v, err)
		}),
		entities.AccountMethodGetOutputsWithAdditionalUnlockConditions: onAccount(func(ctx context.Context, a ports.Account, req entities.GetOutputsWithAdditionalUnlockConditionsRequest) (entities.Response, error) {
			v, err := a.GetOutputsWithAdditionalUnlockConditions(ctx, req.OutputsToClaim)
			return respond(entities.AccountMethodGetOutputsWithAdditionalUnlockConditions, entities.ResponseOutputIDs, v, err)
		}),
		entities.AccountMethodGetTransaction: onAccount(func(ctx context.Context, a ports.Account, req entities.GetTransactionRequest) (entities.Response, error) {
			v, err := a.GetTransaction(ctx, req.TransactionID)
			return respond(entities.AccountMethodGetTransaction, entities.ResponseTransaction, v, err)
		}),
		entities.AccountMethodGetIncomingTransaction: onAccount(func(ctx context.Context, a ports.Account, req entities.GetTransactionRequest) (entities.Response, error) {
			v, err := a.GetIncomingTransaction(ctx, req.TransactionID)
			return respond(entities.AccountMethodGetIncomingTransaction, entities.ResponseTransaction, v, err)
		}),
		entities.AccountMethodOutputs: onAccount(func(ctx context.Context, a ports.Account, req entities.OutputsRequest) (entities.Response, error) {
			v, err := a.Outputs(ctx, req.FilterOptions)
			return respond(entities.AccountMethodOutputs, entities.ResponseOutputsData, v, err)
		}),
		entities.AccountMethodUnspentOutputs: onAccount(func(ctx context.Context, a ports.Account, req entities.OutputsRequest) (entities.Response, error) {
			v, err := a.UnspentOutputs(ctx, req.FilterOptions)
			return respond(entities.AccountMethodUnspentOutputs, entities.ResponseOutputsData, v, err)
		}),
		entities.AccountMethodIncomingTransactions: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.IncomingTransactions(ctx)
			return respond(entities.AccountMethodIncomingTransactions, entities.ResponseTransactions, v, err)
		}),
		entities.AccountMethodTransactions: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.Transactions(ctx)
			return respond(entities.AccountMethodTransactions, entities.ResponseTransactions, v, err)
		}),
		entities.AccountMethodPendingTransactions: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.PendingTransactions(ctx)
			return respond(entities.AccountMethodPendingTransactions, entities.ResponseTransactions, v, err)
		}),
		entities.AccountMethodGetBalance: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.Balance(ctx)
			return respond(entities.AccountMethodGetBalance, entities.ResponseBalance, v, err)
		}),
		entities.AccountMethodMinimumRequiredStorageDeposit: onAccount(func(ctx context.Context, a ports.Account, req entities.MinimumRequiredStorageDepositRequest) (entities.Response, error) {
			if err := checkOutput(req.Output); err != nil {
				return entities.Response{}, err
			}
			v, err := a.MinimumRequiredStorageDeposit(ctx, req.Output)
			return respond(entities.AccountMethodMinimumRequiredStorageDeposit, entities.ResponseMinimumRequiredStorageDeposit, entities.FormatDecimalU64(v), err)
		}),
		entities.AccountMethodSetAlias: onAccount(func(ctx context.Context, a ports.Account, req entities.SetAliasRequest) (entities.Response, error) {
			return ok(entities.AccountMethodSetAlias, a.SetAlias(ctx, req.Alias))
		}),
		entities.AccountMethodSetDefaultSyncOptions: onAccount(func(ctx context.Context, a ports.Account, req entities.SetDefaultSyncOptionsRequest) (entities.Response, error) {
			return ok(entities.AccountMethodSetDefaultSyncOptions, a.SetDefaultSyncOptions(ctx, req.Options))
		}),
	}}
}

// TransactionBundle returns the methods that build, sign and send transactions.
func TransactionBundle() Bundle[ports.Account] {
	return &staticBundle[ports.Account]{handlers: map[string]AccountHandler{
		entities.AccountMethodBurn: onAccount(func(ctx context.Context, a ports.Account, req entities.BurnRequest) (entities.Response, error) {
			v, err := a.Burn(ctx, req.Burn, req.Options)
			return respond(entities.AccountMethodBurn, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodConsolidateOutputs: onAccount(func(ctx context.Context, a ports.Account, req entities.ConsolidateOutputsRequest) (entities.Response, error) {
			v, err := a.ConsolidateOutputs(ctx, req.Force, req.OutputConsolidationThreshold)
			return respond(entities.AccountMethodConsolidateOutputs, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodGenerateAddresses: onAccount(func(ctx context.Context, a ports.Account, req entities.GenerateAddressesRequest) (entities.Response, error) {
			v, err := a.GenerateAddresses(ctx, req.Amount, req.Options)
			return respond(entities.AccountMethodGenerateAddresses, entities.ResponseGeneratedAddress, v, err)
		}),
		entities.AccountMethodPrepareOutput: onAccount(func(ctx context.Context, a ports.Account, req entities.PrepareOutputRequest) (entities.Response, error) {
			v, err := a.PrepareOutput(ctx, req.Params, req.TransactionOptions)
			return respond(entities.AccountMethodPrepareOutput, entities.ResponseOutput, v, err)
		}),
		entities.AccountMethodPrepareTransaction: onAccount(func(ctx context.Context, a ports.Account, req entities.PrepareTransactionRequest) (entities.Response, error) {
			if err := checkOutputs(req.Outputs); err != nil {
				return entities.Response{}, err
			}
			v, err := a.PrepareTransaction(ctx, req.Outputs, req.Options)
			return respond(entities.AccountMethodPrepareTransaction, entities.ResponsePreparedTransaction, v, err)
		}),
		entities.AccountMethodPrepareSendAmount: onAccount(func(ctx context.Context, a ports.Account, req entities.SendAmountRequest) (entities.Response, error) {
			v, err := a.PrepareSendAmount(ctx, req.Params, req.Options)
			return respond(entities.AccountMethodPrepareSendAmount, entities.ResponsePreparedTransaction, v, err)
		}),
		entities.AccountMethodRetryTransactionUntilIncluded: onAccount(func(ctx context.Context, a ports.Account, req entities.RetryTransactionUntilIncludedRequest) (entities.Response, error) {
			v, err := a.RetryTransactionUntilIncluded(ctx, req.TransactionID, req.Interval, req.MaxAttempts)
			return respond(entities.AccountMethodRetryTransactionUntilIncluded, entities.ResponseBlockID, v, err)
		}),
		entities.AccountMethodSync: onAccount(func(ctx context.Context, a ports.Account, req entities.SyncRequest) (entities.Response, error) {
			v, err := a.Sync(ctx, req.Options)
			return respond(entities.AccountMethodSync, entities.ResponseBalance, v, err)
		}),
		entities.AccountMethodSendAmount: onAccount(func(ctx context.Context, a ports.Account, req entities.SendAmountRequest) (entities.Response, error) {
			v, err := a.SendAmount(ctx, req.Params, req.Options)
			return respond(entities.AccountMethodSendAmount, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodSendNativeTokens: onAccount(func(ctx context.Context, a ports.Account, req entities.SendNativeTokensRequest) (entities.Response, error) {
			v, err := a.SendNativeTokens(ctx, req.Params, req.Options)
			return respond(entities.AccountMethodSendNativeTokens, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodSendNft: onAccount(func(ctx context.Context, a ports.Account, req entities.SendNftRequest) (entities.Response, error) {
			v, err := a.SendNft(ctx, req.Params, req.Options)
			return respond(entities.AccountMethodSendNft, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodSendOutputs: onAccount(func(ctx context.Context, a ports.Account, req entities.SendOutputsRequest) (entities.Response, error) {
			if err := checkOutputs(req.Outputs); err != nil {
				return entities.Response{}, err
			}
			v, err := a.SendOutputs(ctx, req.Outputs, req.Options)
			return respond(entities.AccountMethodSendOutputs, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodSignTransactionEssence: onAccount(func(ctx context.Context, a ports.Account, req entities.SignTransactionEssenceRequest) (entities.Response, error) {
			v, err := a.SignTransactionEssence(ctx, req.PreparedTransactionData)
			return respond(entities.AccountMethodSignTransactionEssence, entities.ResponseSignedTransaction, v, err)
		}),
		entities.AccountMethodSubmitAndStoreTransaction: onAccount(func(ctx context.Context, a ports.Account, req entities.SubmitAndStoreTransactionRequest) (entities.Response, error) {
			v, err := a.SubmitAndStoreTransaction(ctx, req.SignedTransactionData)
			return respond(entities.AccountMethodSubmitAndStoreTransaction, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodClaimOutputs: onAccount(func(ctx context.Context, a ports.Account, req entities.ClaimOutputsRequest) (entities.Response, error) {
			v, err := a.ClaimOutputs(ctx, req.OutputIDsToClaim)
			return respond(entities.AccountMethodClaimOutputs, entities.ResponseSentTransaction, v, err)
		}),
	}}
}

// NativeTokenBundle returns the alias, foundry, native token and NFT methods.
func NativeTokenBundle() Bundle[ports.Account] {
	return &staticBundle[ports.Account]{handlers: map[string]AccountHandler{
		entities.AccountMethodCreateAliasOutput: onAccount(func(ctx context.Context, a ports.Account, req entities.CreateAliasOutputRequest) (entities.Response, error) {
			v, err := a.CreateAliasOutput(ctx, req.Params, req.Options)
			return respond(entities.AccountMethodCreateAliasOutput, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodDecreaseNativeTokenSupply: onAccount(func(ctx context.Context, a ports.Account, req entities.DecreaseNativeTokenSupplyRequest) (entities.Response, error) {
			melt, err := u256("meltAmount", req.MeltAmount)
			if err != nil {
				return entities.Response{}, err
			}
			v, err := a.DecreaseNativeTokenSupply(ctx, req.TokenID, melt, req.Options)
			return respond(entities.AccountMethodDecreaseNativeTokenSupply, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodIncreaseNativeTokenSupply: onAccount(func(ctx context.Context, a ports.Account, req entities.IncreaseNativeTokenSupplyRequest) (entities.Response, error) {
			mint, err := u256("mintAmount", req.MintAmount)
			if err != nil {
				return entities.Response{}, err
			}
			v, err := a.IncreaseNativeTokenSupply(ctx, req.TokenID, mint, req.Options)
			return respond(entities.AccountMethodIncreaseNativeTokenSupply, entities.ResponseMintTokenTransaction, v, err)
		}),
		entities.AccountMethodMintNativeToken: onAccount(func(ctx context.Context, a ports.Account, req entities.MintNativeTokenRequest) (entities.Response, error) {
			if _, err := u256("circulatingSupply", req.Params.CirculatingSupply); err != nil {
				return entities.Response{}, err
			}
			if _, err := u256("maximumSupply", req.Params.MaximumSupply); err != nil {
				return entities.Response{}, err
			}
			v, err := a.MintNativeToken(ctx, req.Params, req.Options)
			return respond(entities.AccountMethodMintNativeToken, entities.ResponseMintTokenTransaction, v, err)
		}),
		entities.AccountMethodMintNfts: onAccount(func(ctx context.Context, a ports.Account, req entities.MintNftsRequest) (entities.Response, error) {
			v, err := a.MintNfts(ctx, req.Params, req.Options)
			return respond(entities.AccountMethodMintNfts, entities.ResponseSentTransaction, v, err)
		}),
	}}
}

// ParticipationBundle returns the voting and participation event methods.
func ParticipationBundle() Bundle[ports.Account] {
	return &staticBundle[ports.Account]{handlers: map[string]AccountHandler{
		entities.AccountMethodVote: onAccount(func(ctx context.Context, a ports.Account, req entities.VoteRequest) (entities.Response, error) {
			v, err := a.Vote(ctx, req.EventID, req.Answers)
			return respond(entities.AccountMethodVote, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodStopParticipating: onAccount(func(ctx context.Context, a ports.Account, req entities.ParticipationEventRequest) (entities.Response, error) {
			v, err := a.StopParticipating(ctx, req.EventID)
			return respond(entities.AccountMethodStopParticipating, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodGetVotingPower: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.VotingPower(ctx)
			return respond(entities.AccountMethodGetVotingPower, entities.ResponseVotingPower, entities.FormatDecimalU64(v), err)
		}),
		entities.AccountMethodGetParticipationOverview: onAccount(func(ctx context.Context, a ports.Account, req entities.GetParticipationOverviewRequest) (entities.Response, error) {
			v, err := a.ParticipationOverview(ctx, req.EventIDs)
			return respond(entities.AccountMethodGetParticipationOverview, entities.ResponseAccountParticipationOverview, v, err)
		}),
		entities.AccountMethodIncreaseVotingPower: onAccount(func(ctx context.Context, a ports.Account, req entities.VotingPowerRequest) (entities.Response, error) {
			n, err := amount(req.Amount)
			if err != nil {
				return entities.Response{}, err
			}
			v, err := a.IncreaseVotingPower(ctx, n)
			return respond(entities.AccountMethodIncreaseVotingPower, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodDecreaseVotingPower: onAccount(func(ctx context.Context, a ports.Account, req entities.VotingPowerRequest) (entities.Response, error) {
			n, err := amount(req.Amount)
			if err != nil {
				return entities.Response{}, err
			}
			v, err := a.DecreaseVotingPower(ctx, n)
			return respond(entities.AccountMethodDecreaseVotingPower, entities.ResponseSentTransaction, v, err)
		}),
		entities.AccountMethodRegisterParticipationEvents: onAccount(func(ctx context.Context, a ports.Account, req entities.RegisterParticipationEventsRequest) (entities.Response, error) {
			v, err := a.RegisterParticipationEvents(ctx, req.Options)
			return respond(entities.AccountMethodRegisterParticipationEvents, entities.ResponseParticipationEvents, v, err)
		}),
		entities.AccountMethodDeregisterParticipationEvent: onAccount(func(ctx context.Context, a ports.Account, req entities.ParticipationEventRequest) (entities.Response, error) {
			return ok(entities.AccountMethodDeregisterParticipationEvent, a.DeregisterParticipationEvent(ctx, req.EventID))
		}),
		entities.AccountMethodGetParticipationEvent: onAccount(func(ctx context.Context, a ports.Account, req entities.ParticipationEventRequest) (entities.Response, error) {
			v, err := a.ParticipationEvent(ctx, req.EventID)
			return respond(entities.AccountMethodGetParticipationEvent, entities.ResponseParticipationEvent, v, err)
		}),
		entities.AccountMethodGetParticipationEventIDs: onAccount(func(ctx context.Context, a ports.Account, req entities.GetParticipationEventIDsRequest) (entities.Response, error) {
			v, err := a.ParticipationEventIDs(ctx, req.Node, req.EventType)
			return respond(entities.AccountMethodGetParticipationEventIDs, entities.ResponseParticipationEventIDs, v, err)
		}),
		entities.AccountMethodGetParticipationEventStatus: onAccount(func(ctx context.Context, a ports.Account, req entities.ParticipationEventRequest) (entities.Response, error) {
			v, err := a.ParticipationEventStatus(ctx, req.EventID)
			return respond(entities.AccountMethodGetParticipationEventStatus, entities.ResponseParticipationEventStatus, v, err)
		}),
		entities.AccountMethodGetParticipationEvents: onAccount(func(ctx context.Context, a ports.Account, _ entities.NoPayload) (entities.Response, error) {
			v, err := a.ParticipationEvents(ctx)
			return respond(entities.AccountMethodGetParticipationEvents, entities.ResponseParticipationEvents, v, err)
		}),
	}}
}
