package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// AccountIdentifier selects an account either by alias or by index.
// On the wire it is a JSON string (alias) or a JSON number (index).
type AccountIdentifier struct {
	Index *uint32
	Alias string
}

// AccountIndex identifies an account by its index.
func AccountIndex(i uint32) AccountIdentifier {
	return AccountIdentifier{Index: &i}
}

// AccountAlias identifies an account by its alias.
func AccountAlias(alias string) AccountIdentifier {
	return AccountIdentifier{Alias: alias}
}

// IsIndex reports whether the identifier is an index.
func (id AccountIdentifier) IsIndex() bool {
	return id.Index != nil
}

// IsZero reports whether neither an index nor an alias is set.
func (id AccountIdentifier) IsZero() bool {
	return id.Index == nil && id.Alias == ""
}

func (id AccountIdentifier) String() string {
	if id.Index != nil {
		return strconv.FormatUint(uint64(*id.Index), 10)
	}
	return id.Alias
}

// MarshalJSON implements json.Marshaler.
func (id AccountIdentifier) MarshalJSON() ([]byte, error) {
	if id.Index != nil {
		return json.Marshal(*id.Index)
	}
	return json.Marshal(id.Alias)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *AccountIdentifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return errors.New("account identifier must be a string or a number")
	}
	if data[0] == '"' {
		var alias string
		if err := json.Unmarshal(data, &alias); err != nil {
			return err
		}
		*id = AccountAlias(alias)
		return nil
	}
	var index uint32
	if err := json.Unmarshal(data, &index); err != nil {
		return errors.New("account identifier must be an alias string or a u32 index")
	}
	*id = AccountIndex(index)
	return nil
}

// AccountAddress is an address generated by an account.
type AccountAddress struct {
	Address  string `json:"address"`
	KeyIndex uint32 `json:"keyIndex"`
	Internal bool   `json:"internal"`
	Used     bool   `json:"used"`
}

// AddressWithUnspentOutputs is an address together with its unspent outputs.
type AddressWithUnspentOutputs struct {
	Address   string   `json:"address"`
	Amount    string   `json:"amount"`
	OutputIDs []string `json:"outputIds"`
	KeyIndex  uint32   `json:"keyIndex"`
	Internal  bool     `json:"internal"`
}

// AccountDetails is the serializable view of an account handle.
type AccountDetails struct {
	Alias                       string                      `json:"alias"`
	PublicAddresses             []AccountAddress            `json:"publicAddresses"`
	InternalAddresses           []AccountAddress            `json:"internalAddresses"`
	AddressesWithUnspentOutputs []AddressWithUnspentOutputs `json:"addressesWithUnspentOutputs"`
	Index                       uint32                      `json:"index"`
	CoinType                    uint32                      `json:"coinType"`
}

// BaseCoinBalance holds base coin amounts as decimal strings.
type BaseCoinBalance struct {
	VotingPower string `json:"votingPower,omitempty"`
	Total       string `json:"total"`
	Available   string `json:"available"`
}

// RequiredStorageDeposit is the storage deposit locked per output kind.
type RequiredStorageDeposit struct {
	Alias   string `json:"alias"`
	Basic   string `json:"basic"`
	Foundry string `json:"foundry"`
	Nft     string `json:"nft"`
}

// NativeTokensBalance is the balance of one native token.
type NativeTokensBalance struct {
	Metadata  *string `json:"metadata,omitempty"`
	TokenID   string  `json:"tokenId"`
	Total     U256    `json:"total"`
	Available U256    `json:"available"`
}

// AccountBalance is the balance of an account after its last sync.
type AccountBalance struct {
	PotentiallyLockedOutputs map[string]bool        `json:"potentiallyLockedOutputs"`
	NativeTokens             []NativeTokensBalance  `json:"nativeTokens"`
	Nfts                     []string               `json:"nfts"`
	Aliases                  []string               `json:"aliases"`
	Foundries                []string               `json:"foundries"`
	BaseCoin                 BaseCoinBalance        `json:"baseCoin"`
	RequiredStorageDeposit   RequiredStorageDeposit `json:"requiredStorageDeposit"`
}

// GenerateAddressOptions tune address generation.
type GenerateAddressOptions struct {
	Internal         bool `json:"internal,omitempty"`
	LedgerNanoPrompt bool `json:"ledgerNanoPrompt,omitempty"`
}

// SyncOptions control what an account sync covers.
type SyncOptions struct {
	Addresses                 []string `json:"addresses,omitempty"`
	AddressStartIndex         uint32   `json:"addressStartIndex,omitempty"`
	AddressStartIndexInternal uint32   `json:"addressStartIndexInternal,omitempty"`
	ForceSyncing              bool     `json:"forceSyncing,omitempty"`
	SyncIncomingTransactions  bool     `json:"syncIncomingTransactions,omitempty"`
	SyncPendingTransactions   bool     `json:"syncPendingTransactions,omitempty"`
	SyncNativeTokenFoundries  bool     `json:"syncNativeTokenFoundries,omitempty"`
	SyncOnlyMostBasicOutputs  bool     `json:"syncOnlyMostBasicOutputs,omitempty"`
}
