package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	resp, err := NewResponse(ResponseBlockID, "0xabc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"blockId","payload":"0xabc"}`, string(resp.ToJSON()))

	var blockID string
	require.NoError(t, resp.Decode(&blockID))
	assert.Equal(t, "0xabc", blockID)
	assert.NoError(t, resp.Err())
}

func TestOkResponse_OmitsPayload(t *testing.T) {
	assert.JSONEq(t, `{"type":"ok"}`, string(OkResponse().ToJSON()))

	var v any
	assert.Error(t, OkResponse().Decode(&v))
}

func TestNullablePayload(t *testing.T) {
	var missing *OutputData
	resp, err := NewResponse(ResponseOutputData, missing)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"outputData","payload":null}`, string(resp.ToJSON()))
}

func TestErrorResponse_RoundTrip(t *testing.T) {
	detail := NewErrorDetail("invalid_field", "invalid field: meltAmount").WithCode("INVALID_FIELD")
	resp := ErrorResponseFrom(detail)

	var decoded Response
	require.NoError(t, json.Unmarshal(resp.ToJSON(), &decoded))
	assert.Equal(t, ResponseError, decoded.Type)

	err := decoded.Err()
	require.Error(t, err)
	var got *ErrorDetail
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "invalid_field", got.Type)
	assert.Equal(t, "INVALID_FIELD", got.Code)
}

func TestPanicResponse(t *testing.T) {
	resp := PanicResponse("boom")
	assert.JSONEq(t, `{"type":"panic","payload":"boom"}`, string(resp.ToJSON()))
	assert.EqualError(t, resp.Err(), "panic: boom")
}
