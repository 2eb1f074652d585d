package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidU256 is returned when a U256 string is not a 0x-prefixed hex
// number that fits in 256 bits.
var ErrInvalidU256 = errors.New("invalid U256 value")

var maxU256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// U256 is a 256-bit unsigned integer in its wire form, a "0x"-prefixed hex string.
type U256 string

// BigInt parses the value.
func (u U256) BigInt() (*big.Int, error) {
	s := string(u)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, ErrInvalidU256
	}
	digits := s[2:]
	if digits == "" || len(digits) > 64 {
		return nil, ErrInvalidU256
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok || v.Sign() < 0 || v.Cmp(maxU256) > 0 {
		return nil, ErrInvalidU256
	}
	return v, nil
}

// NewU256 encodes v in wire form. Negative values encode as zero.
func NewU256(v *big.Int) U256 {
	if v == nil || v.Sign() <= 0 {
		return "0x0"
	}
	return U256("0x" + v.Text(16))
}

// ParseDecimalU64 parses a base-10 u64 string such as a base coin amount.
func ParseDecimalU64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// FormatDecimalU64 is the inverse of ParseDecimalU64.
func FormatDecimalU64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// ByteList is a list of small integers that encodes as a JSON array of
// numbers rather than as a base64 string.
type ByteList []uint8

// MarshalJSON implements json.Marshaler.
func (b ByteList) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *ByteList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	out := make(ByteList, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("value %d at index %d does not fit in a byte", v, i)
		}
		out[i] = uint8(v)
	}
	*b = out
	return nil
}
