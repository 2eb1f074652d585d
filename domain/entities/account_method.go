package entities

// AccountMethod names.
const (
	AccountMethodBurn                                     = "burn"
	AccountMethodConsolidateOutputs                       = "consolidateOutputs"
	AccountMethodCreateAliasOutput                        = "createAliasOutput"
	AccountMethodGenerateAddresses                        = "generateAddresses"
	AccountMethodGetOutput                                = "getOutput"
	AccountMethodGetFoundryOutput                         = "getFoundryOutput"
	AccountMethodGetOutputsWithAdditionalUnlockConditions = "getOutputsWithAdditionalUnlockConditions"
	AccountMethodGetTransaction                           = "getTransaction"
	AccountMethodGetIncomingTransaction                   = "getIncomingTransaction"
	AccountMethodAddresses                                = "addresses"
	AccountMethodAddressesWithUnspentOutputs              = "addressesWithUnspentOutputs"
	AccountMethodOutputs                                  = "outputs"
	AccountMethodUnspentOutputs                           = "unspentOutputs"
	AccountMethodIncomingTransactions                     = "incomingTransactions"
	AccountMethodTransactions                             = "transactions"
	AccountMethodPendingTransactions                      = "pendingTransactions"
	AccountMethodDecreaseNativeTokenSupply                = "decreaseNativeTokenSupply"
	AccountMethodIncreaseNativeTokenSupply                = "increaseNativeTokenSupply"
	AccountMethodMintNativeToken                          = "mintNativeToken"
	AccountMethodMintNfts                                 = "mintNfts"
	AccountMethodMinimumRequiredStorageDeposit            = "minimumRequiredStorageDeposit"
	AccountMethodGetBalance                               = "getBalance"
	AccountMethodPrepareOutput                            = "prepareOutput"
	AccountMethodPrepareTransaction                       = "prepareTransaction"
	AccountMethodPrepareSendAmount                        = "prepareSendAmount"
	AccountMethodRetryTransactionUntilIncluded            = "retryTransactionUntilIncluded"
	AccountMethodSync                                     = "sync"
	AccountMethodSendAmount                               = "sendAmount"
	AccountMethodSendNativeTokens                         = "sendNativeTokens"
	AccountMethodSendNft                                  = "sendNft"
	AccountMethodSetAlias                                 = "setAlias"
	AccountMethodSetDefaultSyncOptions                    = "setDefaultSyncOptions"
	AccountMethodSendOutputs                              = "sendOutputs"
	AccountMethodSignTransactionEssence                   = "signTransactionEssence"
	AccountMethodSubmitAndStoreTransaction                = "submitAndStoreTransaction"
	AccountMethodClaimOutputs                             = "claimOutputs"
	AccountMethodVote                                     = "vote"
	AccountMethodStopParticipating                        = "stopParticipating"
	AccountMethodGetVotingPower                           = "getVotingPower"
	AccountMethodGetParticipationOverview                 = "getParticipationOverview"
	AccountMethodIncreaseVotingPower                      = "increaseVotingPower"
	AccountMethodDecreaseVotingPower                      = "decreaseVotingPower"
	AccountMethodRegisterParticipationEvents              = "registerParticipationEvents"
	AccountMethodDeregisterParticipationEvent             = "deregisterParticipationEvent"
	AccountMethodGetParticipationEvent                    = "getParticipationEvent"
	AccountMethodGetParticipationEventIDs                 = "getParticipationEventIds"
	AccountMethodGetParticipationEventStatus              = "getParticipationEventStatus"
	AccountMethodGetParticipationEvents                   = "getParticipationEvents"
)

// NoPayload is the content of variants that carry no fields.
type NoPayload struct{}

// BurnRequest is the payload of burn: native tokens, NFTs, aliases or foundries to destroy.
type BurnRequest struct {
	Options *TransactionOptions `json:"options,omitempty"`
	Burn    Burn                `json:"burn"`
}

// ConsolidateOutputsRequest is the payload of consolidateOutputs.
type ConsolidateOutputsRequest struct {
	OutputConsolidationThreshold *uint32 `json:"outputConsolidationThreshold,omitempty"`
	Force                        bool    `json:"force"`
}

// CreateAliasOutputRequest is the payload of createAliasOutput.
type CreateAliasOutputRequest struct {
	Params  *CreateAliasParams  `json:"params,omitempty"`
	Options *TransactionOptions `json:"options,omitempty"`
}

// GenerateAddressesRequest is the payload of generateAddresses. Amount must be at least one.
type GenerateAddressesRequest struct {
	Options *GenerateAddressOptions `json:"options,omitempty"`
	Amount  uint32                  `json:"amount" validate:"min=1"`
}

// GetOutputRequest names one output by id. Used by getOutput and getIncomingTransactionData.
type GetOutputRequest struct {
	OutputID string `json:"outputId" validate:"required"`
}

// GetFoundryOutputRequest is the payload of getFoundryOutput.
type GetFoundryOutputRequest struct {
	TokenID string `json:"tokenId" validate:"required"`
}

// GetOutputsWithAdditionalUnlockConditionsRequest selects which claimable outputs to list.
type GetOutputsWithAdditionalUnlockConditionsRequest struct {
	OutputsToClaim OutputsToClaim `json:"outputsToClaim" validate:"oneof=None MicroTransactions NativeTokens Nfts All"`
}

// GetTransactionRequest names one transaction by id.
type GetTransactionRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// OutputsRequest filters the outputs returned by outputs and unspentOutputs.
type OutputsRequest struct {
	FilterOptions *FilterOptions `json:"filterOptions,omitempty"`
}

// DecreaseNativeTokenSupplyRequest melts MeltAmount of a native token.
type DecreaseNativeTokenSupplyRequest struct {
	Options    *TransactionOptions `json:"options,omitempty"`
	TokenID    string              `json:"tokenId" validate:"required"`
	MeltAmount U256                `json:"meltAmount"`
}

// IncreaseNativeTokenSupplyRequest mints MintAmount more of an existing native token.
type IncreaseNativeTokenSupplyRequest struct {
	Options    *TransactionOptions `json:"options,omitempty"`
	TokenID    string              `json:"tokenId" validate:"required"`
	MintAmount U256                `json:"mintAmount"`
}

// MintNativeTokenRequest is the payload of mintNativeToken.
type MintNativeTokenRequest struct {
	Options *TransactionOptions   `json:"options,omitempty"`
	Params  MintNativeTokenParams `json:"params"`
}

// MintNftsRequest is the payload of mintNfts.
type MintNftsRequest struct {
	Options *TransactionOptions `json:"options,omitempty"`
	Params  []MintNftParams     `json:"params" validate:"required,min=1"`
}

// MinimumRequiredStorageDepositRequest asks for the storage deposit Output needs.
type MinimumRequiredStorageDepositRequest struct {
	Output Output `json:"output"`
}

// PrepareOutputRequest is the payload of prepareOutput.
type PrepareOutputRequest struct {
	TransactionOptions *TransactionOptions `json:"transactionOptions,omitempty"`
	Params             OutputParams        `json:"params"`
}

// PrepareTransactionRequest is the payload of prepareTransaction.
type PrepareTransactionRequest struct {
	Options *TransactionOptions `json:"options,omitempty"`
	Outputs []Output            `json:"outputs" validate:"required,min=1"`
}

// SendAmountRequest is the payload of prepareSendAmount and sendAmount.
type SendAmountRequest struct {
	Options *TransactionOptions `json:"options,omitempty"`
	Params  []SendAmountParams  `json:"params" validate:"required,min=1,dive"`
}

// RetryTransactionUntilIncludedRequest is the payload of retryTransactionUntilIncluded.
type RetryTransactionUntilIncludedRequest struct {
	Interval      *uint64 `json:"interval,omitempty"`
	MaxAttempts   *uint64 `json:"maxAttempts,omitempty"`
	TransactionID string  `json:"transactionId" validate:"required"`
}

// SyncRequest is the payload of sync.
type SyncRequest struct {
	Options *SyncOptions `json:"options,omitempty"`
}

// SendNativeTokensRequest is the payload of sendNativeTokens.
type SendNativeTokensRequest struct {
	Options *TransactionOptions      `json:"options,omitempty"`
	Params  []SendNativeTokensParams `json:"params" validate:"required,min=1,dive"`
}

// SendNftRequest is the payload of sendNft.
type SendNftRequest struct {
	Options *TransactionOptions `json:"options,omitempty"`
	Params  []SendNftParams     `json:"params" validate:"required,min=1,dive"`
}

// SetAliasRequest renames the account.
type SetAliasRequest struct {
	Alias string `json:"alias" validate:"required"`
}

// SetDefaultSyncOptionsRequest is the payload of setDefaultSyncOptions.
type SetDefaultSyncOptionsRequest struct {
	Options SyncOptions `json:"options"`
}

// SendOutputsRequest is the payload of sendOutputs.
type SendOutputsRequest struct {
	Options *TransactionOptions `json:"options,omitempty"`
	Outputs []Output            `json:"outputs" validate:"required,min=1"`
}

// SignTransactionEssenceRequest is the payload of signTransactionEssence.
type SignTransactionEssenceRequest struct {
	PreparedTransactionData PreparedTransactionData `json:"preparedTransactionData"`
}

// SubmitAndStoreTransactionRequest is the payload of submitAndStoreTransaction.
type SubmitAndStoreTransactionRequest struct {
	SignedTransactionData SignedTransactionData `json:"signedTransactionData"`
}

// ClaimOutputsRequest lists the outputs claimOutputs should claim.
type ClaimOutputsRequest struct {
	OutputIDsToClaim []string `json:"outputIdsToClaim" validate:"required,min=1"`
}

// VoteRequest is the payload of vote. Both fields may be omitted.
type VoteRequest struct {
	EventID *string  `json:"eventId,omitempty"`
	Answers ByteList `json:"answers,omitempty"`
}

// ParticipationEventRequest names one participation event.
type ParticipationEventRequest struct {
	EventID string `json:"eventId" validate:"required"`
}

// GetParticipationOverviewRequest restricts the overview to EventIDs when set.
type GetParticipationOverviewRequest struct {
	EventIDs []string `json:"eventIds,omitempty"`
}

// VotingPowerRequest carries a decimal amount for increaseVotingPower and decreaseVotingPower.
type VotingPowerRequest struct {
	Amount string `json:"amount"`
}

// RegisterParticipationEventsRequest is the payload of registerParticipationEvents.
type RegisterParticipationEventsRequest struct {
	Options ParticipationEventRegistrationOptions `json:"options"`
}

// GetParticipationEventIDsRequest is the payload of getParticipationEventIds.
type GetParticipationEventIDsRequest struct {
	EventType *ParticipationEventType `json:"eventType,omitempty" validate:"omitempty,max=1"`
	Node      Node                    `json:"node"`
}
