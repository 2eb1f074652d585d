package entities

import (
	"encoding/json"
	"fmt"
)

// AccountMethod is a command addressed to a single account.
// Wire form: {"name": "<variant>", "data": {...}}.
type AccountMethod struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data,omitempty"`
}

// WalletMethod is a command addressed to the wallet.
// Wire form: {"cmd": "<variant>", "payload": {...}}.
type WalletMethod struct {
	Cmd     string          `json:"cmd"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// UtilsMethod is a stateless helper command.
// Wire form: {"name": "<variant>", "data": {...}}.
type UtilsMethod struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewAccountMethod builds an AccountMethod, encoding data when it is not nil.
func NewAccountMethod(name string, data any) (AccountMethod, error) {
	raw, err := encodeContent(name, data)
	if err != nil {
		return AccountMethod{}, err
	}
	return AccountMethod{Name: name, Data: raw}, nil
}

// NewWalletMethod builds a WalletMethod, encoding payload when it is not nil.
func NewWalletMethod(cmd string, payload any) (WalletMethod, error) {
	raw, err := encodeContent(cmd, payload)
	if err != nil {
		return WalletMethod{}, err
	}
	return WalletMethod{Cmd: cmd, Payload: raw}, nil
}

// NewUtilsMethod builds a UtilsMethod, encoding data when it is not nil.
func NewUtilsMethod(name string, data any) (UtilsMethod, error) {
	raw, err := encodeContent(name, data)
	if err != nil {
		return UtilsMethod{}, err
	}
	return UtilsMethod{Name: name, Data: raw}, nil
}

func encodeContent(name string, v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s content: %w", name, err)
	}
	return data, nil
}
