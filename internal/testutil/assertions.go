// Package testutil provides common test doubles and assertions for the bindings.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}

// RequireResponseType fails the test unless resp has the given type. The
// response payload is included in the failure message.
func RequireResponseType(t *testing.T, expected entities.ResponseType, resp entities.Response) {
	t.Helper()
	require.Equal(t, expected, resp.Type, "payload: %s", string(resp.Payload))
}

// DecodeResponse checks the response type and decodes its payload.
func DecodeResponse[T any](t *testing.T, expected entities.ResponseType, resp entities.Response) T {
	t.Helper()
	RequireResponseType(t, expected, resp)

	var v T
	require.NoError(t, resp.Decode(&v))
	return v
}

// RequireErrorResponse checks that resp is an error response of the given
// error type and returns the carried detail.
func RequireErrorResponse(t *testing.T, errType string, resp entities.Response) *entities.ErrorDetail {
	t.Helper()
	detail := DecodeResponse[entities.ErrorDetail](t, entities.ResponseError, resp)
	require.Equal(t, errType, detail.Type, "message: %s", detail.Message)
	return &detail
}

// MustJSON marshals v or fails the test.
func MustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
