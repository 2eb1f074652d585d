package dispatch

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func outputMatching(kind uint8, amount string) any {
	return mock.MatchedBy(func(o entities.Output) bool {
		return o.Type == kind && o.Amount == amount
	})
}

func outputsMatching(kind uint8, amount string) any {
	return mock.MatchedBy(func(outs []entities.Output) bool {
		return len(outs) == 1 && outs[0].Type == kind && outs[0].Amount == amount
	})
}

func bigMatching(v int64) any {
	return mock.MatchedBy(func(n *big.Int) bool {
		return n != nil && n.Cmp(big.NewInt(v)) == 0
	})
}

// TestAccountBundle_ForwardsArguments checks, for every AccountMethod
// variant, which account method is called with which decoded arguments and
// which response type comes back.
func TestAccountBundle_ForwardsArguments(t *testing.T) {
	node := entities.Node{URL: "https://node.example"}
	txOpts := &entities.TransactionOptions{Note: ptr("memo")}
	sync := &entities.SyncOptions{ForceSyncing: true}
	prepared := entities.PreparedTransactionData{
		Essence:    json.RawMessage(`{"type":1}`),
		InputsData: []json.RawMessage{json.RawMessage(`{"outputId":"0x01"}`)},
	}
	signed := entities.SignedTransactionData{
		TransactionPayload: json.RawMessage(`{"type":6}`),
		InputsData:         []json.RawMessage{json.RawMessage(`{"outputId":"0x01"}`)},
	}

	tests := []struct {
		name   string
		data   string
		call   string
		args   []any
		ret    []any
		expect entities.ResponseType
	}{
		{name: entities.AccountMethodAddresses, call: "Addresses", ret: []any{nil, nil}, expect: entities.ResponseAddresses},
		{name: entities.AccountMethodAddressesWithUnspentOutputs, call: "AddressesWithUnspentOutputs", ret: []any{nil, nil}, expect: entities.ResponseAddressesWithUnspentOutputs},
		{
			name: entities.AccountMethodGetOutput, data: `{"outputId":"0xout"}`,
			call: "GetOutput", args: []any{"0xout"}, ret: []any{nil, nil}, expect: entities.ResponseOutputData,
		},
		{
			name: entities.AccountMethodGetFoundryOutput, data: `{"tokenId":"0xtok"}`,
			call: "GetFoundryOutput", args: []any{"0xtok"}, ret: []any{nil, nil}, expect: entities.ResponseOutput,
		},
		{
			name: entities.AccountMethodGetOutputsWithAdditionalUnlockConditions, data: `{"outputsToClaim":"Nfts"}`,
			call: "GetOutputsWithAdditionalUnlockConditions", args: []any{entities.OutputsToClaimNfts}, ret: []any{nil, nil}, expect: entities.ResponseOutputIDs,
		},
		{
			name: entities.AccountMethodGetTransaction, data: `{"transactionId":"0xtx"}`,
			call: "GetTransaction", args: []any{"0xtx"}, ret: []any{nil, nil}, expect: entities.ResponseTransaction,
		},
		{
			name: entities.AccountMethodGetIncomingTransaction, data: `{"transactionId":"0xin"}`,
			call: "GetIncomingTransaction", args: []any{"0xin"}, ret: []any{nil, nil}, expect: entities.ResponseTransaction,
		},
		{
			name: entities.AccountMethodOutputs, data: `{"filterOptions":{"outputTypes":[3,6]}}`,
			call: "Outputs", args: []any{&entities.FilterOptions{OutputTypes: entities.ByteList{3, 6}}}, ret: []any{nil, nil}, expect: entities.ResponseOutputsData,
		},
		{
			name: entities.AccountMethodUnspentOutputs,
			call: "UnspentOutputs", args: []any{(*entities.FilterOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponseOutputsData,
		},
		{name: entities.AccountMethodIncomingTransactions, call: "IncomingTransactions", ret: []any{nil, nil}, expect: entities.ResponseTransactions},
		{name: entities.AccountMethodTransactions, call: "Transactions", ret: []any{nil, nil}, expect: entities.ResponseTransactions},
		{name: entities.AccountMethodPendingTransactions, call: "PendingTransactions", ret: []any{nil, nil}, expect: entities.ResponseTransactions},
		{name: entities.AccountMethodGetBalance, call: "Balance", ret: []any{nil, nil}, expect: entities.ResponseBalance},
		{
			name: entities.AccountMethodMinimumRequiredStorageDeposit, data: `{"output":{"type":3,"amount":"100"}}`,
			call: "MinimumRequiredStorageDeposit", args: []any{outputMatching(3, "100")}, ret: []any{uint64(42), nil}, expect: entities.ResponseMinimumRequiredStorageDeposit,
		},
		{
			name: entities.AccountMethodSetAlias, data: `{"alias":"savings"}`,
			call: "SetAlias", args: []any{"savings"}, ret: []any{nil}, expect: entities.ResponseOk,
		},
		{
			name: entities.AccountMethodSetDefaultSyncOptions, data: `{"options":{"forceSyncing":true}}`,
			call: "SetDefaultSyncOptions", args: []any{*sync}, ret: []any{nil}, expect: entities.ResponseOk,
		},
		{
			name: entities.AccountMethodBurn, data: `{"burn":{"nfts":["0xnft"]},"options":{"note":"memo"}}`,
			call: "Burn", args: []any{entities.Burn{Nfts: []string{"0xnft"}}, txOpts}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodConsolidateOutputs, data: `{"force":true,"outputConsolidationThreshold":5}`,
			call: "ConsolidateOutputs", args: []any{true, ptr(uint32(5))}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodGenerateAddresses, data: `{"amount":2,"options":{"internal":true}}`,
			call: "GenerateAddresses", args: []any{uint32(2), &entities.GenerateAddressOptions{Internal: true}}, ret: []any{nil, nil}, expect: entities.ResponseGeneratedAddress,
		},
		{
			name: entities.AccountMethodPrepareOutput, data: `{"params":{"recipientAddress":"rms1q","amount":"1000"},"transactionOptions":{"note":"memo"}}`,
			call: "PrepareOutput", args: []any{entities.OutputParams{RecipientAddress: "rms1q", Amount: "1000"}, txOpts}, ret: []any{nil, nil}, expect: entities.ResponseOutput,
		},
		{
			name: entities.AccountMethodPrepareTransaction, data: `{"outputs":[{"type":3,"amount":"500"}]}`,
			call: "PrepareTransaction", args: []any{outputsMatching(3, "500"), (*entities.TransactionOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponsePreparedTransaction,
		},
		{
			name: entities.AccountMethodPrepareSendAmount, data: `{"params":[{"address":"rms1q","amount":"10"}]}`,
			call: "PrepareSendAmount", args: []any{[]entities.SendAmountParams{{Address: "rms1q", Amount: "10"}}, (*entities.TransactionOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponsePreparedTransaction,
		},
		{
			name: entities.AccountMethodRetryTransactionUntilIncluded, data: `{"transactionId":"0xtx","interval":2,"maxAttempts":9}`,
			call: "RetryTransactionUntilIncluded", args: []any{"0xtx", ptr(uint64(2)), ptr(uint64(9))}, ret: []any{"0xblock", nil}, expect: entities.ResponseBlockID,
		},
		{
			name: entities.AccountMethodSync, data: `{"options":{"forceSyncing":true}}`,
			call: "Sync", args: []any{sync}, ret: []any{nil, nil}, expect: entities.ResponseBalance,
		},
		{
			name: entities.AccountMethodSendAmount, data: `{"params":[{"address":"rms1q","amount":"10","expiration":60}],"options":{"note":"memo"}}`,
			call: "SendAmount", args: []any{[]entities.SendAmountParams{{Address: "rms1q", Amount: "10", Expiration: ptr(uint32(60))}}, txOpts}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodSendNativeTokens, data: `{"params":[{"address":"rms1q","nativeTokens":[{"id":"0xtok","amount":"0x10"}]}]}`,
			call: "SendNativeTokens",
			args: []any{[]entities.SendNativeTokensParams{{Address: "rms1q", NativeTokens: []entities.NativeToken{{ID: "0xtok", Amount: "0x10"}}}}, (*entities.TransactionOptions)(nil)},
			ret:  []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodSendNft, data: `{"params":[{"address":"rms1q","nftId":"0xnft"}]}`,
			call: "SendNft", args: []any{[]entities.SendNftParams{{Address: "rms1q", NftID: "0xnft"}}, (*entities.TransactionOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodSendOutputs, data: `{"outputs":[{"type":6,"amount":"77"}],"options":{"note":"memo"}}`,
			call: "SendOutputs", args: []any{outputsMatching(6, "77"), txOpts}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodSignTransactionEssence, data: `{"preparedTransactionData":{"essence":{"type":1},"inputsData":[{"outputId":"0x01"}]}}`,
			call: "SignTransactionEssence", args: []any{prepared}, ret: []any{nil, nil}, expect: entities.ResponseSignedTransaction,
		},
		{
			name: entities.AccountMethodSubmitAndStoreTransaction, data: `{"signedTransactionData":{"transactionPayload":{"type":6},"inputsData":[{"outputId":"0x01"}]}}`,
			call: "SubmitAndStoreTransaction", args: []any{signed}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodClaimOutputs, data: `{"outputIdsToClaim":["0xa","0xb"]}`,
			call: "ClaimOutputs", args: []any{[]string{"0xa", "0xb"}}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodCreateAliasOutput, data: `{"params":{"metadata":"0x6869"}}`,
			call: "CreateAliasOutput", args: []any{&entities.CreateAliasParams{Metadata: ptr("0x6869")}, (*entities.TransactionOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodDecreaseNativeTokenSupply, data: `{"tokenId":"0xtok","meltAmount":"0x20"}`,
			call: "DecreaseNativeTokenSupply", args: []any{"0xtok", bigMatching(32), (*entities.TransactionOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodIncreaseNativeTokenSupply, data: `{"tokenId":"0xtok","mintAmount":"0xff","options":{"note":"memo"}}`,
			call: "IncreaseNativeTokenSupply", args: []any{"0xtok", bigMatching(255), txOpts}, ret: []any{nil, nil}, expect: entities.ResponseMintTokenTransaction,
		},
		{
			name: entities.AccountMethodMintNativeToken, data: `{"params":{"circulatingSupply":"0x64","maximumSupply":"0x3e8"}}`,
			call: "MintNativeToken", args: []any{entities.MintNativeTokenParams{CirculatingSupply: "0x64", MaximumSupply: "0x3e8"}, (*entities.TransactionOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponseMintTokenTransaction,
		},
		{
			name: entities.AccountMethodMintNfts, data: `{"params":[{"tag":"0x01"},{"issuer":"rms1q"}]}`,
			call: "MintNfts", args: []any{[]entities.MintNftParams{{Tag: ptr("0x01")}, {Issuer: ptr("rms1q")}}, (*entities.TransactionOptions)(nil)}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodVote, data: `{"eventId":"0xevt","answers":[1,0,2]}`,
			call: "Vote", args: []any{ptr("0xevt"), []uint8{1, 0, 2}}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodStopParticipating, data: `{"eventId":"0xevt"}`,
			call: "StopParticipating", args: []any{"0xevt"}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{name: entities.AccountMethodGetVotingPower, call: "VotingPower", ret: []any{uint64(1000), nil}, expect: entities.ResponseVotingPower},
		{
			name: entities.AccountMethodGetParticipationOverview, data: `{"eventIds":["0xevt"]}`,
			call: "ParticipationOverview", args: []any{[]string{"0xevt"}}, ret: []any{nil, nil}, expect: entities.ResponseAccountParticipationOverview,
		},
		{
			name: entities.AccountMethodIncreaseVotingPower, data: `{"amount":"18446744073709551615"}`,
			call: "IncreaseVotingPower", args: []any{uint64(18446744073709551615)}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodDecreaseVotingPower, data: `{"amount":"250"}`,
			call: "DecreaseVotingPower", args: []any{uint64(250)}, ret: []any{nil, nil}, expect: entities.ResponseSentTransaction,
		},
		{
			name: entities.AccountMethodRegisterParticipationEvents, data: `{"options":{"node":{"url":"https://node.example"},"eventsToIgnore":["0xold"]}}`,
			call: "RegisterParticipationEvents", args: []any{entities.ParticipationEventRegistrationOptions{Node: node, EventsToIgnore: []string{"0xold"}}},
			ret: []any{nil, nil}, expect: entities.ResponseParticipationEvents,
		},
		{
			name: entities.AccountMethodDeregisterParticipationEvent, data: `{"eventId":"0xevt"}`,
			call: "DeregisterParticipationEvent", args: []any{"0xevt"}, ret: []any{nil}, expect: entities.ResponseOk,
		},
		{
			name: entities.AccountMethodGetParticipationEvent, data: `{"eventId":"0xevt"}`,
			call: "ParticipationEvent", args: []any{"0xevt"}, ret: []any{nil, nil}, expect: entities.ResponseParticipationEvent,
		},
		{
			name: entities.AccountMethodGetParticipationEventIDs, data: `{"node":{"url":"https://node.example"},"eventType":1}`,
			call: "ParticipationEventIDs", args: []any{node, ptr(entities.ParticipationEventTypeStaking)}, ret: []any{nil, nil}, expect: entities.ResponseParticipationEventIDs,
		},
		{
			name: entities.AccountMethodGetParticipationEventStatus, data: `{"eventId":"0xevt"}`,
			call: "ParticipationEventStatus", args: []any{"0xevt"}, ret: []any{nil, nil}, expect: entities.ResponseParticipationEventStatus,
		},
		{name: entities.AccountMethodGetParticipationEvents, call: "ParticipationEvents", ret: []any{nil, nil}, expect: entities.ResponseParticipationEvents},
	}

	h := newHandler(t)

	covered := make([]string, 0, len(tests))
	for _, tt := range tests {
		covered = append(covered, tt.name)
		t.Run(tt.name, func(t *testing.T) {
			account := new(testutil.MockAccount)
			account.On(tt.call, append([]any{mock.Anything}, tt.args...)...).Return(tt.ret...).Once()

			var data any
			if tt.data != "" {
				data = json.RawMessage(tt.data)
			}
			resp := h.CallAccountMethod(context.Background(), account, accountCall(t, tt.name, data))

			testutil.RequireResponseType(t, tt.expect, resp)
			account.AssertExpectations(t)
		})
	}

	assert.ElementsMatch(t, h.Accounts().Names(), covered)
}

func TestAccountBundle_DecimalResponses(t *testing.T) {
	account := new(testutil.MockAccount)
	account.On("VotingPower", mock.Anything).Return(uint64(18446744073709551615), nil)

	resp := newHandler(t).CallAccountMethod(context.Background(), account, accountCall(t, entities.AccountMethodGetVotingPower, nil))

	power := testutil.DecodeResponse[string](t, entities.ResponseVotingPower, resp)
	require.Equal(t, "18446744073709551615", power)
}
