package utils

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// mnemonicEntropyBits yields a 24 word mnemonic.
const mnemonicEntropyBits = 256

// ErrInvalidMnemonic is returned for phrases that fail the BIP-39 checks.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// GenerateMnemonic returns a new random 24 word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to build mnemonic: %w", err)
	}
	return mnemonic, nil
}

// VerifyMnemonic checks the words and checksum of a mnemonic.
func VerifyMnemonic(mnemonic string) error {
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// MnemonicToHexSeed derives the 64-byte BIP-39 seed of a mnemonic with an
// empty passphrase.
func MnemonicToHexSeed(mnemonic string) (string, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return EncodeHex(seed), nil
}
