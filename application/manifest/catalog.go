package manifest

import (
	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// Method describes one variant of a method vocabulary.
type Method struct {
	// Request is the zero value of the variant's payload type.
	Request  any
	Family   entities.MethodFamily
	Name     string
	Response entities.ResponseType
}

func account(name string, req any, resp entities.ResponseType) Method {
	return Method{Family: entities.FamilyAccount, Name: name, Request: req, Response: resp}
}

func wallet(name string, req any, resp entities.ResponseType) Method {
	return Method{Family: entities.FamilyWallet, Name: name, Request: req, Response: resp}
}

func utils(name string, req any, resp entities.ResponseType) Method {
	return Method{Family: entities.FamilyUtils, Name: name, Request: req, Response: resp}
}

// callAccountMethod answers with the response of the wrapped method.
const responseOfWrapped entities.ResponseType = ""

var catalog = []Method{
	account(entities.AccountMethodBurn, entities.BurnRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodConsolidateOutputs, entities.ConsolidateOutputsRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodCreateAliasOutput, entities.CreateAliasOutputRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodGenerateAddresses, entities.GenerateAddressesRequest{}, entities.ResponseGeneratedAddress),
	account(entities.AccountMethodGetOutput, entities.GetOutputRequest{}, entities.ResponseOutputData),
	account(entities.AccountMethodGetFoundryOutput, entities.GetFoundryOutputRequest{}, entities.ResponseOutput),
	account(entities.AccountMethodGetOutputsWithAdditionalUnlockConditions, entities.GetOutputsWithAdditionalUnlockConditionsRequest{}, entities.ResponseOutputIDs),
	account(entities.AccountMethodGetTransaction, entities.GetTransactionRequest{}, entities.ResponseTransaction),
	account(entities.AccountMethodGetIncomingTransaction, entities.GetTransactionRequest{}, entities.ResponseTransaction),
	account(entities.AccountMethodAddresses, entities.NoPayload{}, entities.ResponseAddresses),
	account(entities.AccountMethodAddressesWithUnspentOutputs, entities.NoPayload{}, entities.ResponseAddressesWithUnspentOutputs),
	account(entities.AccountMethodOutputs, entities.OutputsRequest{}, entities.ResponseOutputsData),
	account(entities.AccountMethodUnspentOutputs, entities.OutputsRequest{}, entities.ResponseOutputsData),
	account(entities.AccountMethodIncomingTransactions, entities.NoPayload{}, entities.ResponseTransactions),
	account(entities.AccountMethodTransactions, entities.NoPayload{}, entities.ResponseTransactions),
	account(entities.AccountMethodPendingTransactions, entities.NoPayload{}, entities.ResponseTransactions),
	account(entities.AccountMethodDecreaseNativeTokenSupply, entities.DecreaseNativeTokenSupplyRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodIncreaseNativeTokenSupply, entities.IncreaseNativeTokenSupplyRequest{}, entities.ResponseMintTokenTransaction),
	account(entities.AccountMethodMintNativeToken, entities.MintNativeTokenRequest{}, entities.ResponseMintTokenTransaction),
	account(entities.AccountMethodMintNfts, entities.MintNftsRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodMinimumRequiredStorageDeposit, entities.MinimumRequiredStorageDepositRequest{}, entities.ResponseMinimumRequiredStorageDeposit),
	account(entities.AccountMethodGetBalance, entities.NoPayload{}, entities.ResponseBalance),
	account(entities.AccountMethodPrepareOutput, entities.PrepareOutputRequest{}, entities.ResponseOutput),
	account(entities.AccountMethodPrepareTransaction, entities.PrepareTransactionRequest{}, entities.ResponsePreparedTransaction),
	account(entities.AccountMethodPrepareSendAmount, entities.SendAmountRequest{}, entities.ResponsePreparedTransaction),
	account(entities.AccountMethodRetryTransactionUntilIncluded, entities.RetryTransactionUntilIncludedRequest{}, entities.ResponseBlockID),
	account(entities.AccountMethodSync, entities.SyncRequest{}, entities.ResponseBalance),
	account(entities.AccountMethodSendAmount, entities.SendAmountRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodSendNativeTokens, entities.SendNativeTokensRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodSendNft, entities.SendNftRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodSetAlias, entities.SetAliasRequest{}, entities.ResponseOk),
	account(entities.AccountMethodSetDefaultSyncOptions, entities.SetDefaultSyncOptionsRequest{}, entities.ResponseOk),
	account(entities.AccountMethodSendOutputs, entities.SendOutputsRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodSignTransactionEssence, entities.SignTransactionEssenceRequest{}, entities.ResponseSignedTransaction),
	account(entities.AccountMethodSubmitAndStoreTransaction, entities.SubmitAndStoreTransactionRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodClaimOutputs, entities.ClaimOutputsRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodVote, entities.VoteRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodStopParticipating, entities.ParticipationEventRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodGetVotingPower, entities.NoPayload{}, entities.ResponseVotingPower),
	account(entities.AccountMethodGetParticipationOverview, entities.GetParticipationOverviewRequest{}, entities.ResponseAccountParticipationOverview),
	account(entities.AccountMethodIncreaseVotingPower, entities.VotingPowerRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodDecreaseVotingPower, entities.VotingPowerRequest{}, entities.ResponseSentTransaction),
	account(entities.AccountMethodRegisterParticipationEvents, entities.RegisterParticipationEventsRequest{}, entities.ResponseParticipationEvents),
	account(entities.AccountMethodDeregisterParticipationEvent, entities.ParticipationEventRequest{}, entities.ResponseOk),
	account(entities.AccountMethodGetParticipationEvent, entities.ParticipationEventRequest{}, entities.ResponseParticipationEvent),
	account(entities.AccountMethodGetParticipationEventIDs, entities.GetParticipationEventIDsRequest{}, entities.ResponseParticipationEventIDs),
	account(entities.AccountMethodGetParticipationEventStatus, entities.ParticipationEventRequest{}, entities.ResponseParticipationEventStatus),
	account(entities.AccountMethodGetParticipationEvents, entities.NoPayload{}, entities.ResponseParticipationEvents),

	wallet(entities.WalletMethodCreateAccount, entities.CreateAccountRequest{}, entities.ResponseAccount),
	wallet(entities.WalletMethodGetAccount, entities.GetAccountRequest{}, entities.ResponseAccount),
	wallet(entities.WalletMethodGetAccountIndexes, entities.NoPayload{}, entities.ResponseAccountIndexes),
	wallet(entities.WalletMethodGetAccounts, entities.NoPayload{}, entities.ResponseAccounts),
	wallet(entities.WalletMethodCallAccountMethod, entities.CallAccountMethodRequest{}, responseOfWrapped),
	wallet(entities.WalletMethodBackup, entities.BackupRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodChangeStrongholdPassword, entities.ChangeStrongholdPasswordRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodClearStrongholdPassword, entities.NoPayload{}, entities.ResponseOk),
	wallet(entities.WalletMethodIsStrongholdPasswordAvailable, entities.NoPayload{}, entities.ResponseBool),
	wallet(entities.WalletMethodRecoverAccounts, entities.RecoverAccountsRequest{}, entities.ResponseAccounts),
	wallet(entities.WalletMethodRestoreBackup, entities.RestoreBackupRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodRemoveLatestAccount, entities.NoPayload{}, entities.ResponseOk),
	wallet(entities.WalletMethodSetClientOptions, entities.SetClientOptionsRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodGenerateAddress, entities.GenerateAddressRequest{}, entities.ResponseBech32Address),
	wallet(entities.WalletMethodGetLedgerNanoStatus, entities.NoPayload{}, entities.ResponseLedgerNanoStatus),
	wallet(entities.WalletMethodSetStrongholdPassword, entities.SetStrongholdPasswordRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodSetStrongholdPasswordClearInterval, entities.SetStrongholdPasswordClearIntervalRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodStoreMnemonic, entities.StoreMnemonicRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodStartBackgroundSync, entities.StartBackgroundSyncRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodStopBackgroundSync, entities.NoPayload{}, entities.ResponseOk),
	wallet(entities.WalletMethodEmitTestEvent, entities.EmitTestEventRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodClearListeners, entities.ClearListenersRequest{}, entities.ResponseOk),
	wallet(entities.WalletMethodUpdateNodeAuth, entities.UpdateNodeAuthRequest{}, entities.ResponseOk),

	utils(entities.UtilsMethodGenerateMnemonic, entities.NoPayload{}, entities.ResponseGeneratedMnemonic),
	utils(entities.UtilsMethodVerifyMnemonic, entities.MnemonicRequest{}, entities.ResponseOk),
	utils(entities.UtilsMethodMnemonicToHexSeed, entities.MnemonicRequest{}, entities.ResponseHexSeed),
	utils(entities.UtilsMethodBech32ToHex, entities.Bech32ToHexRequest{}, entities.ResponseBech32ToHex),
	utils(entities.UtilsMethodHexToBech32, entities.HexToBech32Request{}, entities.ResponseBech32Address),
	utils(entities.UtilsMethodAliasIDToBech32, entities.AliasIDToBech32Request{}, entities.ResponseBech32Address),
	utils(entities.UtilsMethodNftIDToBech32, entities.NftIDToBech32Request{}, entities.ResponseBech32Address),
	utils(entities.UtilsMethodHexPublicKeyToBech32Address, entities.HexToBech32Request{}, entities.ResponseBech32Address),
	utils(entities.UtilsMethodParseBech32Address, entities.AddressRequest{}, entities.ResponseParsedBech32Address),
	utils(entities.UtilsMethodIsAddressValid, entities.AddressRequest{}, entities.ResponseBool),
	utils(entities.UtilsMethodComputeAliasID, entities.OutputIDRequest{}, entities.ResponseAliasID),
	utils(entities.UtilsMethodComputeNftID, entities.OutputIDRequest{}, entities.ResponseNftID),
	utils(entities.UtilsMethodComputeFoundryID, entities.ComputeFoundryIDRequest{}, entities.ResponseFoundryID),
	utils(entities.UtilsMethodUTF8ToHex, entities.UTF8ToHexRequest{}, entities.ResponseHex),
	utils(entities.UtilsMethodHexToUTF8, entities.HexToUTF8Request{}, entities.ResponseUTF8),
}

// Methods returns every method of the three vocabularies in declaration order.
func Methods() []Method {
	out := make([]Method, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a method by family and name.
func Lookup(family entities.MethodFamily, name string) (Method, bool) {
	for _, m := range catalog {
		if m.Family == family && m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

// Names lists the method names of one family.
func Names(family entities.MethodFamily) []string {
	var names []string
	for _, m := range catalog {
		if m.Family == family {
			names = append(names, m.Name)
		}
	}
	return names
}
