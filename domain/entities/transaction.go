package entities

import "encoding/json"

// InclusionState is the ledger state of a transaction sent by an account.
type InclusionState string

const (
	InclusionStatePending       InclusionState = "Pending"
	InclusionStateConfirmed     InclusionState = "Confirmed"
	InclusionStateConflicting   InclusionState = "Conflicting"
	InclusionStateUnknownPruned InclusionState = "UnknownPruned"
)

// Transaction is a transaction known to an account.
type Transaction struct {
	BlockID        *string           `json:"blockId,omitempty"`
	Note           *string           `json:"note,omitempty"`
	Payload        json.RawMessage   `json:"payload"`
	Inputs         []json.RawMessage `json:"inputs,omitempty"`
	TransactionID  string            `json:"transactionId"`
	NetworkID      string            `json:"networkId"`
	InclusionState InclusionState    `json:"inclusionState"`
	Timestamp      string            `json:"timestamp"`
	Incoming       bool              `json:"incoming"`
}

// MintTokenTransaction is the result of minting or increasing a native token supply.
type MintTokenTransaction struct {
	TokenID     string      `json:"tokenId"`
	Transaction Transaction `json:"transaction"`
}

// PreparedTransactionData is an unsigned transaction with the data needed to sign it.
type PreparedTransactionData struct {
	Remainder  json.RawMessage   `json:"remainder,omitempty"`
	Essence    json.RawMessage   `json:"essence" validate:"required"`
	InputsData []json.RawMessage `json:"inputsData" validate:"required,min=1"`
}

// SignedTransactionData is a signed transaction payload ready for submission.
type SignedTransactionData struct {
	TransactionPayload json.RawMessage   `json:"transactionPayload" validate:"required"`
	InputsData         []json.RawMessage `json:"inputsData" validate:"required,min=1"`
}

// RemainderValueStrategyKind names where change goes.
type RemainderValueStrategyKind string

const (
	RemainderReuseAddress  RemainderValueStrategyKind = "ReuseAddress"
	RemainderChangeAddress RemainderValueStrategyKind = "ChangeAddress"
	RemainderCustomAddress RemainderValueStrategyKind = "CustomAddress"
)

// RemainderValueStrategy selects the remainder address policy.
type RemainderValueStrategy struct {
	Value    json.RawMessage            `json:"value,omitempty"`
	Strategy RemainderValueStrategyKind `json:"strategy" validate:"oneof=ReuseAddress ChangeAddress CustomAddress"`
}

// TransactionOptions tune how the engine builds a transaction.
type TransactionOptions struct {
	RemainderValueStrategy *RemainderValueStrategy `json:"remainderValueStrategy,omitempty"`
	TaggedDataPayload      json.RawMessage         `json:"taggedDataPayload,omitempty"`
	Burn                   *Burn                   `json:"burn,omitempty"`
	Note                   *string                 `json:"note,omitempty"`
	CustomInputs           []string                `json:"customInputs,omitempty"`
	MandatoryInputs        []string                `json:"mandatoryInputs,omitempty"`
	AllowMicroAmount       bool                    `json:"allowMicroAmount,omitempty"`
}

// Burn lists what a transaction should destroy.
type Burn struct {
	NativeTokens map[string]U256 `json:"nativeTokens,omitempty"`
	Aliases      []string        `json:"aliases,omitempty"`
	Nfts         []string        `json:"nfts,omitempty"`
	Foundries    []string        `json:"foundries,omitempty"`
}

// IsEmpty reports whether nothing is selected for burning.
func (b Burn) IsEmpty() bool {
	return len(b.NativeTokens) == 0 && len(b.Aliases) == 0 && len(b.Nfts) == 0 && len(b.Foundries) == 0
}

// SendAmountParams is one base coin transfer.
type SendAmountParams struct {
	ReturnAddress *string `json:"returnAddress,omitempty"`
	Expiration    *uint32 `json:"expiration,omitempty"`
	Address       string  `json:"address" validate:"required"`
	Amount        string  `json:"amount" validate:"required,numeric"`
}

// SendNativeTokensParams is one native token transfer.
type SendNativeTokensParams struct {
	ReturnAddress *string       `json:"returnAddress,omitempty"`
	Expiration    *uint32       `json:"expiration,omitempty"`
	Address       string        `json:"address" validate:"required"`
	NativeTokens  []NativeToken `json:"nativeTokens" validate:"required,min=1,dive"`
}

// SendNftParams is one NFT transfer.
type SendNftParams struct {
	Address string `json:"address" validate:"required"`
	NftID   string `json:"nftId" validate:"required"`
}

// CreateAliasParams configures a new alias output.
type CreateAliasParams struct {
	Address           *string `json:"address,omitempty"`
	ImmutableMetadata *string `json:"immutableMetadata,omitempty"`
	Metadata          *string `json:"metadata,omitempty"`
	StateMetadata     *string `json:"stateMetadata,omitempty"`
}

// MintNativeTokenParams configures a new native token foundry.
type MintNativeTokenParams struct {
	AliasID           *string `json:"aliasId,omitempty"`
	FoundryMetadata   *string `json:"foundryMetadata,omitempty"`
	CirculatingSupply U256    `json:"circulatingSupply" validate:"required"`
	MaximumSupply     U256    `json:"maximumSupply" validate:"required"`
}

// MintNftParams configures one NFT to mint.
type MintNftParams struct {
	Address           *string `json:"address,omitempty"`
	Sender            *string `json:"sender,omitempty"`
	Metadata          *string `json:"metadata,omitempty"`
	Tag               *string `json:"tag,omitempty"`
	Issuer            *string `json:"issuer,omitempty"`
	ImmutableMetadata *string `json:"immutableMetadata,omitempty"`
}
