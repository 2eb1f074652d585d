package log

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Redacted replaces the value of a sensitive key.
const Redacted = "[REDACTED]"

// SensitiveKeys are the payload and attribute keys whose values never reach a log.
var SensitiveKeys = []string{"password", "currentPassword", "newPassword", "mnemonic"}

// isSensitive matches key, or the last segment of a dotted group key, against keys.
func isSensitive(keys []string, key string) bool {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// RedactJSON returns data with the values of SensitiveKeys replaced at any depth.
// Input that is not valid JSON is replaced entirely.
func RedactJSON(data []byte) []byte {
	return redactJSON(data, SensitiveKeys)
}

func redactJSON(data []byte, keys []string) []byte {
	if len(bytes.TrimSpace(data)) == 0 {
		return data
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return []byte(`"` + Redacted + `"`)
	}
	out, err := json.Marshal(redactValue(v, keys))
	if err != nil {
		return []byte(`"` + Redacted + `"`)
	}
	return out
}

func redactValue(v any, keys []string) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			if isSensitive(keys, k) {
				t[k] = Redacted
				continue
			}
			t[k] = redactValue(inner, keys)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = redactValue(inner, keys)
		}
		return t
	default:
		return v
	}
}
