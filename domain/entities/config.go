package entities

// SecretManagerType selects how the engine stores key material.
type SecretManagerType string

const (
	SecretManagerStronghold  SecretManagerType = "stronghold"
	SecretManagerLedgerNano  SecretManagerType = "ledgerNano"
	SecretManagerMnemonic    SecretManagerType = "mnemonic"
	SecretManagerPlaceholder SecretManagerType = "placeholder"
)

// SecretManagerOptions configures the engine's secret manager.
type SecretManagerOptions struct {
	SnapshotPath *string           `json:"snapshotPath,omitempty" yaml:"snapshotPath,omitempty" toml:"snapshotPath,omitempty" validate:"required_if=Type stronghold"`
	Type         SecretManagerType `json:"type" yaml:"type" toml:"type" validate:"required,oneof=stronghold ledgerNano mnemonic placeholder"`
	Simulator    bool              `json:"simulator,omitempty" yaml:"simulator,omitempty" toml:"simulator,omitempty"`
}

// WalletOptions are the options a wallet engine is created with.
type WalletOptions struct {
	ClientOptions *ClientOptions        `json:"clientOptions,omitempty" yaml:"clientOptions,omitempty" toml:"clientOptions,omitempty"`
	SecretManager *SecretManagerOptions `json:"secretManager,omitempty" yaml:"secretManager,omitempty" toml:"secretManager,omitempty"`
	StoragePath   string                `json:"storagePath" yaml:"storagePath" toml:"storagePath" validate:"required"`
	CoinType      uint32                `json:"coinType" yaml:"coinType" toml:"coinType"`
}

// Coin types registered in SLIP-44 that wallets commonly use.
const (
	CoinTypeIOTA    uint32 = 4218
	CoinTypeShimmer uint32 = 4219
)

// DefaultWalletOptions returns options for a Shimmer wallet stored under ./wallet-database.
func DefaultWalletOptions() WalletOptions {
	return WalletOptions{
		StoragePath: "./wallet-database",
		CoinType:    CoinTypeShimmer,
	}
}
