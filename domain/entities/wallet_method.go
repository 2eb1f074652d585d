package entities

// WalletMethod names.
const (
	WalletMethodCreateAccount                      = "createAccount"
	WalletMethodGetAccount                         = "getAccount"
	WalletMethodGetAccountIndexes                  = "getAccountIndexes"
	WalletMethodGetAccounts                        = "getAccounts"
	WalletMethodCallAccountMethod                  = "callAccountMethod"
	WalletMethodBackup                             = "backup"
	WalletMethodChangeStrongholdPassword           = "changeStrongholdPassword"
	WalletMethodClearStrongholdPassword            = "clearStrongholdPassword"
	WalletMethodIsStrongholdPasswordAvailable      = "isStrongholdPasswordAvailable"
	WalletMethodRecoverAccounts                    = "recoverAccounts"
	WalletMethodRestoreBackup                      = "restoreBackup"
	WalletMethodRemoveLatestAccount                = "removeLatestAccount"
	WalletMethodSetClientOptions                   = "setClientOptions"
	WalletMethodGenerateAddress                    = "generateAddress"
	WalletMethodGetLedgerNanoStatus                = "getLedgerNanoStatus"
	WalletMethodSetStrongholdPassword              = "setStrongholdPassword"
	WalletMethodSetStrongholdPasswordClearInterval = "setStrongholdPasswordClearInterval"
	WalletMethodStoreMnemonic                      = "storeMnemonic"
	WalletMethodStartBackgroundSync                = "startBackgroundSync"
	WalletMethodStopBackgroundSync                 = "stopBackgroundSync"
	WalletMethodEmitTestEvent                      = "emitTestEvent"
	WalletMethodClearListeners                     = "clearListeners"
	WalletMethodUpdateNodeAuth                     = "updateNodeAuth"
)

// CreateAccountRequest is the payload of createAccount. Unset fields take engine defaults.
type CreateAccountRequest struct {
	Alias     *string `json:"alias,omitempty"`
	Bech32Hrp *string `json:"bech32Hrp,omitempty"`
}

// GetAccountRequest selects an account by index or alias.
type GetAccountRequest struct {
	AccountID AccountIdentifier `json:"accountId"`
}

// CallAccountMethodRequest runs Method against the account selected by AccountID.
type CallAccountMethodRequest struct {
	AccountID AccountIdentifier `json:"accountId"`
	Method    AccountMethod     `json:"method"`
}

// BackupRequest writes a Stronghold backup to Destination.
type BackupRequest struct {
	Destination string `json:"destination" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// ChangeStrongholdPasswordRequest is the payload of changeStrongholdPassword.
type ChangeStrongholdPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// RecoverAccountsRequest is the payload of recoverAccounts.
type RecoverAccountsRequest struct {
	SyncOptions       *SyncOptions `json:"syncOptions,omitempty"`
	AccountStartIndex uint32       `json:"accountStartIndex"`
	AccountGapLimit   uint32       `json:"accountGapLimit"`
	AddressGapLimit   uint32       `json:"addressGapLimit"`
}

// RestoreBackupRequest is the payload of restoreBackup.
type RestoreBackupRequest struct {
	IgnoreIfCoinTypeMismatch *bool  `json:"ignoreIfCoinTypeMismatch,omitempty"`
	Source                   string `json:"source" validate:"required"`
	Password                 string `json:"password" validate:"required"`
}

// SetClientOptionsRequest is the payload of setClientOptions.
type SetClientOptionsRequest struct {
	ClientOptions ClientOptions `json:"clientOptions"`
}

// GenerateAddressRequest derives one address without creating an account.
type GenerateAddressRequest struct {
	Options      *GenerateAddressOptions `json:"options,omitempty"`
	Bech32Hrp    *string                 `json:"bech32Hrp,omitempty"`
	AccountIndex uint32                  `json:"accountIndex"`
	AddressIndex uint32                  `json:"addressIndex"`
	Internal     bool                    `json:"internal"`
}

// SetStrongholdPasswordRequest is the payload of setStrongholdPassword.
type SetStrongholdPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// SetStrongholdPasswordClearIntervalRequest sets how long the password stays cached. Nil keeps it forever.
type SetStrongholdPasswordClearIntervalRequest struct {
	IntervalInMilliseconds *uint64 `json:"intervalInMilliseconds,omitempty"`
}

// StoreMnemonicRequest is the payload of storeMnemonic.
type StoreMnemonicRequest struct {
	Mnemonic string `json:"mnemonic" validate:"required"`
}

// StartBackgroundSyncRequest is the payload of startBackgroundSync.
type StartBackgroundSyncRequest struct {
	Options                *SyncOptions `json:"options,omitempty"`
	IntervalInMilliseconds *uint64      `json:"intervalInMilliseconds,omitempty"`
}

// EmitTestEventRequest is the payload of emitTestEvent.
type EmitTestEventRequest struct {
	Event WalletEvent `json:"event"`
}

// ClearListenersRequest removes listeners for EventTypes, or all listeners when empty.
type ClearListenersRequest struct {
	EventTypes []WalletEventType `json:"eventTypes" validate:"omitempty,dive,max=5"`
}

// UpdateNodeAuthRequest sets or clears the credentials of the node at URL.
type UpdateNodeAuthRequest struct {
	Auth *NodeAuth `json:"auth,omitempty"`
	URL  string    `json:"url" validate:"required,url"`
}
