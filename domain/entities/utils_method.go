package entities

// UtilsMethod names.
const (
	UtilsMethodGenerateMnemonic            = "generateMnemonic"
	UtilsMethodVerifyMnemonic              = "verifyMnemonic"
	UtilsMethodMnemonicToHexSeed           = "mnemonicToHexSeed"
	UtilsMethodBech32ToHex                 = "bech32ToHex"
	UtilsMethodHexToBech32                 = "hexToBech32"
	UtilsMethodAliasIDToBech32             = "aliasIdToBech32"
	UtilsMethodNftIDToBech32               = "nftIdToBech32"
	UtilsMethodHexPublicKeyToBech32Address = "hexPublicKeyToBech32Address"
	UtilsMethodParseBech32Address          = "parseBech32Address"
	UtilsMethodIsAddressValid              = "isAddressValid"
	UtilsMethodComputeAliasID              = "computeAliasId"
	UtilsMethodComputeNftID                = "computeNftId"
	UtilsMethodComputeFoundryID            = "computeFoundryId"
	UtilsMethodUTF8ToHex                   = "utf8ToHex"
	UtilsMethodHexToUTF8                   = "hexToUtf8"
)

// Address kinds as encoded in the first byte of a bech32 address body.
const (
	AddressKindEd25519 uint8 = 0
	AddressKindAlias   uint8 = 8
	AddressKindNft     uint8 = 16
)

// MnemonicRequest carries a mnemonic for verifyMnemonic and mnemonicToHexSeed.
type MnemonicRequest struct {
	Mnemonic string `json:"mnemonic" validate:"required"`
}

// Bech32ToHexRequest is the payload of bech32ToHex.
type Bech32ToHexRequest struct {
	Bech32 string `json:"bech32" validate:"required"`
}

// HexToBech32Request is the payload of hexToBech32.
type HexToBech32Request struct {
	Hex       string `json:"hex" validate:"required"`
	Bech32Hrp string `json:"bech32Hrp" validate:"required"`
}

// AliasIDToBech32Request is the payload of aliasIdToBech32.
type AliasIDToBech32Request struct {
	AliasID   string `json:"aliasId" validate:"required"`
	Bech32Hrp string `json:"bech32Hrp" validate:"required"`
}

// NftIDToBech32Request is the payload of nftIdToBech32.
type NftIDToBech32Request struct {
	NftID     string `json:"nftId" validate:"required"`
	Bech32Hrp string `json:"bech32Hrp" validate:"required"`
}

// AddressRequest carries one bech32 address.
type AddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// OutputIDRequest carries one output id.
type OutputIDRequest struct {
	OutputID string `json:"outputId" validate:"required"`
}

// ComputeFoundryIDRequest is the payload of computeFoundryId.
type ComputeFoundryIDRequest struct {
	AliasID         string `json:"aliasId" validate:"required"`
	SerialNumber    uint32 `json:"serialNumber"`
	TokenSchemeKind uint8  `json:"tokenSchemeKind"`
}

// UTF8ToHexRequest is the payload of utf8ToHex.
type UTF8ToHexRequest struct {
	UTF8 string `json:"utf8"`
}

// HexToUTF8Request is the payload of hexToUtf8.
type HexToUTF8Request struct {
	Hex string `json:"hex" validate:"required"`
}

// ParsedBech32Address is the decoded form of a bech32 address.
type ParsedBech32Address struct {
	Hrp  string `json:"hrp"`
	Hex  string `json:"hex"`
	Kind uint8  `json:"type"`
}
