package utils

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// foundryAddressKind prefixes a foundry id with the alias address kind.
const foundryAddressKind = 8

// ComputeAliasID derives the id of the alias created by an output.
func ComputeAliasID(outputID string) (string, error) {
	return hashOutputID(outputID)
}

// ComputeNftID derives the id of the nft created by an output.
func ComputeNftID(outputID string) (string, error) {
	return hashOutputID(outputID)
}

func hashOutputID(outputID string) (string, error) {
	raw, err := decodeHexN(outputID, OutputIDLen, "output id")
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(raw)
	return EncodeHex(sum[:]), nil
}

// ComputeFoundryID builds a foundry id from its controlling alias, serial
// number and token scheme kind.
func ComputeFoundryID(aliasID string, serialNumber uint32, tokenSchemeKind uint8) (string, error) {
	alias, err := decodeHexN(aliasID, AddressBodyLen, "alias id")
	if err != nil {
		return "", err
	}
	id := make([]byte, 0, FoundryIDLen)
	id = append(id, foundryAddressKind)
	id = append(id, alias...)
	id = binary.LittleEndian.AppendUint32(id, serialNumber)
	id = append(id, tokenSchemeKind)
	return EncodeHex(id), nil
}
