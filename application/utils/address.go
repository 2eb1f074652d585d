package utils

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"golang.org/x/crypto/blake2b"
)

// Sizes of the values addresses and ids are built from.
const (
	AddressBodyLen = 32
	PublicKeyLen   = 32
	OutputIDLen    = 34
	FoundryIDLen   = 38
)

// ErrInvalidAddress is returned for strings that are not bech32 addresses of a
// known kind.
var ErrInvalidAddress = errors.New("invalid address")

// ParseBech32Address decodes a bech32 address into its hrp, kind and body.
func ParseBech32Address(address string) (entities.ParsedBech32Address, error) {
	hrp, data, err := bech32.Decode(address)
	if err != nil {
		return entities.ParsedBech32Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return entities.ParsedBech32Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(raw) != AddressBodyLen+1 {
		return entities.ParsedBech32Address{}, fmt.Errorf("%w: unexpected length %d", ErrInvalidAddress, len(raw))
	}
	kind := raw[0]
	switch kind {
	case entities.AddressKindEd25519, entities.AddressKindAlias, entities.AddressKindNft:
	default:
		return entities.ParsedBech32Address{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidAddress, kind)
	}
	return entities.ParsedBech32Address{Hrp: hrp, Kind: kind, Hex: EncodeHex(raw[1:])}, nil
}

// IsAddressValid reports whether address parses as a bech32 address.
func IsAddressValid(address string) bool {
	_, err := ParseBech32Address(address)
	return err == nil
}

// Bech32ToHex returns the hex form of an address body without its kind byte.
func Bech32ToHex(address string) (string, error) {
	parsed, err := ParseBech32Address(address)
	if err != nil {
		return "", err
	}
	return parsed.Hex, nil
}

// encodeAddress encodes a kind byte and a 32-byte body under hrp.
func encodeAddress(kind uint8, body []byte, hrp string) (string, error) {
	raw := make([]byte, 0, len(body)+1)
	raw = append(raw, kind)
	raw = append(raw, body...)
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to regroup address bits: %w", err)
	}
	address, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return address, nil
}

// HexToBech32 encodes an Ed25519 address hash as bech32.
func HexToBech32(hex, hrp string) (string, error) {
	body, err := decodeHexN(hex, AddressBodyLen, "address")
	if err != nil {
		return "", err
	}
	return encodeAddress(entities.AddressKindEd25519, body, hrp)
}

// AliasIDToBech32 encodes an alias id as an alias address.
func AliasIDToBech32(aliasID, hrp string) (string, error) {
	body, err := decodeHexN(aliasID, AddressBodyLen, "alias id")
	if err != nil {
		return "", err
	}
	return encodeAddress(entities.AddressKindAlias, body, hrp)
}

// NftIDToBech32 encodes an nft id as an nft address.
func NftIDToBech32(nftID, hrp string) (string, error) {
	body, err := decodeHexN(nftID, AddressBodyLen, "nft id")
	if err != nil {
		return "", err
	}
	return encodeAddress(entities.AddressKindNft, body, hrp)
}

// HexPublicKeyToBech32Address hashes an Ed25519 public key into an address.
func HexPublicKeyToBech32Address(publicKey, hrp string) (string, error) {
	key, err := decodeHexN(publicKey, PublicKeyLen, "public key")
	if err != nil {
		return "", err
	}
	hash := blake2b.Sum256(key)
	return encodeAddress(entities.AddressKindEd25519, hash[:], hrp)
}
