package entities

import (
	"encoding/json"
	"errors"
)

// Output kinds as they appear in the "type" field of an output object.
const (
	OutputTypeBasic   uint8 = 3
	OutputTypeAlias   uint8 = 4
	OutputTypeFoundry uint8 = 5
	OutputTypeNft     uint8 = 6
)

// Output is a ledger output in wire form. Only the discriminator and the base
// coin amount are read; every other field is carried through unchanged.
type Output struct {
	raw    json.RawMessage
	Amount string
	Type   uint8
}

type outputHeader struct {
	Amount string `json:"amount"`
	Type   uint8  `json:"type"`
}

// NewOutput builds an Output from its JSON object form.
func NewOutput(raw json.RawMessage) (Output, error) {
	var o Output
	if err := o.UnmarshalJSON(raw); err != nil {
		return Output{}, err
	}
	return o, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Output) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Output{}
		return nil
	}
	var h outputHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return err
	}
	o.Type = h.Type
	o.Amount = h.Amount
	o.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Output) MarshalJSON() ([]byte, error) {
	if len(o.raw) > 0 {
		return o.raw, nil
	}
	return json.Marshal(outputHeader{Type: o.Type, Amount: o.Amount})
}

// Raw returns the original JSON object.
func (o Output) Raw() json.RawMessage {
	return o.raw
}

// IsZero reports whether the output was never set.
func (o Output) IsZero() bool {
	return len(o.raw) == 0 && o.Type == 0 && o.Amount == ""
}

// ErrUnknownOutputType is returned for output objects with an unsupported discriminator.
var ErrUnknownOutputType = errors.New("unknown output type")

// CheckKind reports whether the discriminator names a known output kind.
func (o Output) CheckKind() error {
	switch o.Type {
	case OutputTypeBasic, OutputTypeAlias, OutputTypeFoundry, OutputTypeNft:
		return nil
	default:
		return ErrUnknownOutputType
	}
}

// OutputMetadata describes where an output was booked.
type OutputMetadata struct {
	MilestoneIndexSpent      *uint32 `json:"milestoneIndexSpent,omitempty"`
	MilestoneTimestampSpent  *uint32 `json:"milestoneTimestampSpent,omitempty"`
	TransactionIDSpent       *string `json:"transactionIdSpent,omitempty"`
	BlockID                  string  `json:"blockId"`
	TransactionID            string  `json:"transactionId"`
	MilestoneIndexBooked     uint32  `json:"milestoneIndexBooked"`
	MilestoneTimestampBooked uint32  `json:"milestoneTimestampBooked"`
	LedgerIndex              uint32  `json:"ledgerIndex"`
	OutputIndex              uint16  `json:"outputIndex"`
	IsSpent                  bool    `json:"isSpent"`
}

// Bip44Chain is the derivation path of the key controlling an output.
type Bip44Chain struct {
	CoinType     uint32 `json:"coinType"`
	Account      uint32 `json:"account"`
	Change       uint32 `json:"change"`
	AddressIndex uint32 `json:"addressIndex"`
}

// OutputData is an output tracked by an account.
type OutputData struct {
	Chain     *Bip44Chain     `json:"chain,omitempty"`
	Address   json.RawMessage `json:"address"`
	OutputID  string          `json:"outputId"`
	NetworkID string          `json:"networkId"`
	Output    Output          `json:"output"`
	Metadata  OutputMetadata  `json:"metadata"`
	IsSpent   bool            `json:"isSpent"`
	Remainder bool            `json:"remainder"`
}

// FilterOptions narrows output listings.
type FilterOptions struct {
	LowerBoundBookedTimestamp *uint32  `json:"lowerBoundBookedTimestamp,omitempty"`
	UpperBoundBookedTimestamp *uint32  `json:"upperBoundBookedTimestamp,omitempty"`
	OutputTypes               ByteList `json:"outputTypes,omitempty" validate:"omitempty,dive,oneof=3 4 5 6"`
}

// OutputsToClaim selects which outputs with extra unlock conditions to return.
type OutputsToClaim string

const (
	OutputsToClaimNone              OutputsToClaim = "None"
	OutputsToClaimMicroTransactions OutputsToClaim = "MicroTransactions"
	OutputsToClaimNativeTokens      OutputsToClaim = "NativeTokens"
	OutputsToClaimNfts              OutputsToClaim = "Nfts"
	OutputsToClaimAll               OutputsToClaim = "All"
)

// NativeToken is a token id with an amount.
type NativeToken struct {
	ID     string `json:"id" validate:"required"`
	Amount U256   `json:"amount" validate:"required"`
}

// Assets are the non-base-coin contents of an output built by PrepareOutput.
type Assets struct {
	NftID        *string       `json:"nftId,omitempty"`
	NativeTokens []NativeToken `json:"nativeTokens,omitempty" validate:"omitempty,dive"`
}

// Features are optional output features.
type Features struct {
	Tag      *string `json:"tag,omitempty"`
	Metadata *string `json:"metadata,omitempty"`
	Issuer   *string `json:"issuer,omitempty"`
	Sender   *string `json:"sender,omitempty"`
}

// Unlocks are optional time-based unlock conditions in unix seconds.
type Unlocks struct {
	ExpirationUnixTime *uint32 `json:"expirationUnixTime,omitempty"`
	TimelockUnixTime   *uint32 `json:"timelockUnixTime,omitempty"`
}

// ReturnStrategy decides what happens to the storage deposit of an output.
type ReturnStrategy string

const (
	ReturnStrategyReturn ReturnStrategy = "Return"
	ReturnStrategyGift   ReturnStrategy = "Gift"
)

// StorageDeposit configures storage deposit handling for PrepareOutput.
type StorageDeposit struct {
	ReturnStrategy *ReturnStrategy `json:"returnStrategy,omitempty" validate:"omitempty,oneof=Return Gift"`
	UseExcessIfLow *bool           `json:"useExcessIfLow,omitempty"`
}

// OutputParams describes an output to be built by the engine.
type OutputParams struct {
	Assets           *Assets         `json:"assets,omitempty"`
	Features         *Features       `json:"features,omitempty"`
	Unlocks          *Unlocks        `json:"unlocks,omitempty"`
	StorageDeposit   *StorageDeposit `json:"storageDeposit,omitempty"`
	RecipientAddress string          `json:"recipientAddress" validate:"required"`
	Amount           string          `json:"amount" validate:"required,numeric"`
}
