package entities

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU256_BigInt(t *testing.T) {
	tests := []struct {
		name    string
		in      U256
		want    string
		wantErr bool
	}{
		{name: "small", in: "0x64", want: "100"},
		{name: "upper prefix", in: "0XfF", want: "255"},
		{name: "max", in: U256("0x" + strings.Repeat("f", 64)), want: maxU256.String()},
		{name: "too long", in: U256("0x1" + strings.Repeat("0", 64)), wantErr: true},
		{name: "no prefix", in: "64", wantErr: true},
		{name: "empty digits", in: "0x", wantErr: true},
		{name: "not hex", in: "0xzz", wantErr: true},
		{name: "decimal", in: "100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.BigInt()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidU256)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewU256(t *testing.T) {
	assert.Equal(t, U256("0x0"), NewU256(nil))
	assert.Equal(t, U256("0x0"), NewU256(big.NewInt(-5)))
	assert.Equal(t, U256("0x3e8"), NewU256(big.NewInt(1000)))

	v, err := NewU256(big.NewInt(123456789)).BigInt()
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), v.Int64())
}

func TestParseDecimalU64(t *testing.T) {
	v, err := ParseDecimalU64("1000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), v)
	assert.Equal(t, "1000000", FormatDecimalU64(v))

	_, err = ParseDecimalU64("-1")
	assert.Error(t, err)
	_, err = ParseDecimalU64("1.5")
	assert.Error(t, err)
	_, err = ParseDecimalU64("18446744073709551616")
	assert.Error(t, err)
}

func TestByteList_JSON(t *testing.T) {
	data, err := json.Marshal(ByteList{0, 1, 255})
	require.NoError(t, err)
	assert.JSONEq(t, `[0,1,255]`, string(data))

	var got ByteList
	require.NoError(t, json.Unmarshal([]byte(`[3,4]`), &got))
	assert.Equal(t, ByteList{3, 4}, got)

	assert.Error(t, json.Unmarshal([]byte(`[256]`), &got))
	assert.Error(t, json.Unmarshal([]byte(`"AAE="`), &got))
}
