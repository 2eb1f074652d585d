package entities

import "encoding/json"

// NodeAuth holds credentials for a node.
type NodeAuth struct {
	JWT              *string  `json:"jwt,omitempty" yaml:"jwt,omitempty" toml:"jwt,omitempty"`
	BasicAuthNamePwd []string `json:"basicAuthNamePwd,omitempty" yaml:"basicAuthNamePwd,omitempty" toml:"basicAuthNamePwd,omitempty" validate:"omitempty,len=2"`
}

// Node is a node endpoint.
type Node struct {
	Auth     *NodeAuth `json:"auth,omitempty" yaml:"auth,omitempty" toml:"auth,omitempty"`
	URL      string    `json:"url" yaml:"url" toml:"url" validate:"required,url"`
	Disabled bool      `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty"`
}

// ClientOptions configure the engine's node client.
type ClientOptions struct {
	PrimaryNode        *Node   `json:"primaryNode,omitempty" yaml:"primaryNode,omitempty" toml:"primaryNode,omitempty"`
	QuorumSize         *uint32 `json:"quorumSize,omitempty" yaml:"quorumSize,omitempty" toml:"quorumSize,omitempty"`
	MinQuorumSize      *uint32 `json:"minQuorumSize,omitempty" yaml:"minQuorumSize,omitempty" toml:"minQuorumSize,omitempty"`
	QuorumThreshold    *uint32 `json:"quorumThreshold,omitempty" yaml:"quorumThreshold,omitempty" toml:"quorumThreshold,omitempty" validate:"omitempty,max=100"`
	PowWorkerCount     *uint32 `json:"powWorkerCount,omitempty" yaml:"powWorkerCount,omitempty" toml:"powWorkerCount,omitempty"`
	Nodes              []Node  `json:"nodes,omitempty" yaml:"nodes,omitempty" toml:"nodes,omitempty" validate:"omitempty,dive"`
	Permanodes         []Node  `json:"permanodes,omitempty" yaml:"permanodes,omitempty" toml:"permanodes,omitempty" validate:"omitempty,dive"`
	IgnoreNodeHealth   bool    `json:"ignoreNodeHealth,omitempty" yaml:"ignoreNodeHealth,omitempty" toml:"ignoreNodeHealth,omitempty"`
	Quorum             bool    `json:"quorum,omitempty" yaml:"quorum,omitempty" toml:"quorum,omitempty"`
	LocalPow           bool    `json:"localPow,omitempty" yaml:"localPow,omitempty" toml:"localPow,omitempty"`
	FallbackToLocalPow bool    `json:"fallbackToLocalPow,omitempty" yaml:"fallbackToLocalPow,omitempty" toml:"fallbackToLocalPow,omitempty"`
}

// WalletEventType enumerates wallet events.
type WalletEventType uint8

const (
	WalletEventConsolidationRequired   WalletEventType = 0
	WalletEventLedgerAddressGeneration WalletEventType = 1
	WalletEventNewOutput               WalletEventType = 2
	WalletEventSpentOutput             WalletEventType = 3
	WalletEventTransactionInclusion    WalletEventType = 4
	WalletEventTransactionProgress     WalletEventType = 5
)

// WalletEvent is an event emitted by the wallet to registered listeners.
type WalletEvent struct {
	Data json.RawMessage `json:"data,omitempty"`
	Type WalletEventType `json:"type" validate:"max=5"`
}

// LedgerApp describes the app open on a Ledger device.
type LedgerApp struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// LedgerNanoStatus is the state of a connected Ledger device.
type LedgerNanoStatus struct {
	Locked              *bool      `json:"locked,omitempty"`
	App                 *LedgerApp `json:"app,omitempty"`
	Device              *string    `json:"device,omitempty"`
	BufferSize          *uint32    `json:"bufferSize,omitempty"`
	Connected           bool       `json:"connected"`
	BlindSigningEnabled bool       `json:"blindSigningEnabled"`
}
