package utils

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidHex is returned for strings that are not "0x"-prefixed hex.
	ErrInvalidHex = errors.New("invalid hex string")
	// ErrInvalidUTF8 is returned when decoded bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// EncodeHex returns the "0x"-prefixed lowercase hex form of b.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeHex decodes a "0x"-prefixed hex string.
func DecodeHex(s string) ([]byte, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		digits, ok = strings.CutPrefix(s, "0X")
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing 0x prefix", ErrInvalidHex)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

// decodeHexN decodes a hex string that must hold exactly n bytes.
func decodeHexN(s string, n int, what string) ([]byte, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("%s: %w: want %d bytes, got %d", what, ErrInvalidHex, n, len(b))
	}
	return b, nil
}

// UTF8ToHex hex-encodes the bytes of s.
func UTF8ToHex(s string) string {
	return EncodeHex([]byte(s))
}

// HexToUTF8 decodes hex into a UTF-8 string.
func HexToUTF8(s string) (string, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
