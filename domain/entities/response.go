package entities

import (
	"encoding/json"
	"fmt"
)

// ResponseType is the variant tag of a Response.
type ResponseType string

// Response variants.
const (
	ResponseOk    ResponseType = "ok"
	ResponseError ResponseType = "error"
	ResponsePanic ResponseType = "panic"
	ResponseBool  ResponseType = "bool"

	ResponseAccount        ResponseType = "account"
	ResponseAccounts       ResponseType = "accounts"
	ResponseAccountIndexes ResponseType = "accountIndexes"

	ResponseSentTransaction      ResponseType = "sentTransaction"
	ResponseMintTokenTransaction ResponseType = "mintTokenTransaction"
	ResponseTransaction          ResponseType = "transaction"
	ResponseTransactions         ResponseType = "transactions"
	ResponsePreparedTransaction  ResponseType = "preparedTransaction"
	ResponseSignedTransaction    ResponseType = "signedTransactionData"
	ResponseBlockID              ResponseType = "blockId"

	ResponseGeneratedAddress            ResponseType = "generatedAddress"
	ResponseAddresses                   ResponseType = "addresses"
	ResponseAddressesWithUnspentOutputs ResponseType = "addressesWithUnspentOutputs"
	ResponseBech32Address               ResponseType = "bech32Address"

	ResponseOutput      ResponseType = "output"
	ResponseOutputData  ResponseType = "outputData"
	ResponseOutputsData ResponseType = "outputsData"
	ResponseOutputIDs   ResponseType = "outputIds"

	ResponseBalance                       ResponseType = "balance"
	ResponseMinimumRequiredStorageDeposit ResponseType = "minimumRequiredStorageDeposit"

	ResponseVotingPower                  ResponseType = "votingPower"
	ResponseAccountParticipationOverview ResponseType = "accountParticipationOverview"
	ResponseParticipationEvents          ResponseType = "participationEvents"
	ResponseParticipationEvent           ResponseType = "participationEvent"
	ResponseParticipationEventIDs        ResponseType = "participationEventIds"
	ResponseParticipationEventStatus     ResponseType = "participationEventStatus"

	ResponseLedgerNanoStatus ResponseType = "ledgerNanoStatus"

	ResponseGeneratedMnemonic   ResponseType = "generatedMnemonic"
	ResponseHexSeed             ResponseType = "hexSeed"
	ResponseBech32ToHex         ResponseType = "bech32ToHex"
	ResponseParsedBech32Address ResponseType = "parsedBech32Address"
	ResponseAliasID             ResponseType = "aliasId"
	ResponseNftID               ResponseType = "nftId"
	ResponseFoundryID           ResponseType = "foundryId"
	ResponseHex                 ResponseType = "hex"
	ResponseUTF8                ResponseType = "utf8"
)

// Response is the envelope returned for every method call.
type Response struct {
	Type    ResponseType    `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewResponse encodes payload as the content of a response of type t.
// A nil payload produces a response without content.
func NewResponse(t ResponseType, payload any) (Response, error) {
	if payload == nil {
		return Response{Type: t}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal %s response: %w", t, err)
	}
	return Response{Type: t, Payload: data}, nil
}

// OkResponse is the response of methods that return nothing.
func OkResponse() Response {
	return Response{Type: ResponseOk}
}

// ErrorResponseFrom wraps detail in an "error" response.
func ErrorResponseFrom(detail *ErrorDetail) Response {
	data, err := json.Marshal(detail)
	if err != nil {
		data, _ = json.Marshal(NewErrorDetail("internal", detail.Error()))
	}
	return Response{Type: ResponseError, Payload: data}
}

// PanicResponse wraps a recovered panic message in a "panic" response.
func PanicResponse(message string) Response {
	data, _ := json.Marshal(message)
	return Response{Type: ResponsePanic, Payload: data}
}

// Decode unmarshals the payload into v.
func (r Response) Decode(v any) error {
	if len(r.Payload) == 0 {
		return fmt.Errorf("%s response has no payload", r.Type)
	}
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", r.Type, err)
	}
	return nil
}

// Err returns the carried error for "error" and "panic" responses and nil otherwise.
func (r Response) Err() error {
	switch r.Type {
	case ResponseError:
		var detail ErrorDetail
		if err := json.Unmarshal(r.Payload, &detail); err != nil {
			return NewErrorDetail("internal", string(r.Payload))
		}
		return &detail
	case ResponsePanic:
		var msg string
		if err := json.Unmarshal(r.Payload, &msg); err != nil {
			msg = string(r.Payload)
		}
		return NewErrorDetail("panic", msg)
	default:
		return nil
	}
}

// ToJSON serializes the response. It never fails for responses built by this package.
func (r Response) ToJSON() []byte {
	data, err := json.Marshal(r)
	if err != nil {
		return []byte(`{"type":"error","payload":{"type":"internal","message":"failed to marshal response"}}`)
	}
	return data
}
