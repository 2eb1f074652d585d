package entities

import (
	"fmt"
	"strings"
)

// ErrorDetail is the payload of an "error" Response. Engine errors that
// already carry one keep it as Wrapped, so the chain survives a round trip
// through JSON.
//
// Type is one of "wire", "validation", "schema", "invalid_field",
// "invalid_amount", "unknown_method", "engine", "permission", "config",
// "panic" or "internal". Code names the field or method the error is about.
type ErrorDetail struct {
	Wrapped *ErrorDetail   `json:"wrapped,omitempty" yaml:"wrapped,omitempty"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	Message string         `json:"message" yaml:"message"`
	Type    string         `json:"type" yaml:"type"`
	Code    string         `json:"code,omitempty" yaml:"code,omitempty"`
}

// NewErrorDetail creates an ErrorDetail of the given type.
func NewErrorDetail(errorType, message string) *ErrorDetail {
	return &ErrorDetail{Type: errorType, Message: message}
}

func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	if e.Type != "" && e.Type != "internal" {
		b.WriteString(e.Type)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Code != "" {
		fmt.Fprintf(&b, " [%s]", e.Code)
	}
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}

// Unwrap exposes the wrapped detail to errors.Is and errors.As.
func (e *ErrorDetail) Unwrap() error {
	if e == nil || e.Wrapped == nil {
		return nil
	}
	return e.Wrapped
}

// WithDetails sets Details and returns e.
func (e *ErrorDetail) WithDetails(details map[string]any) *ErrorDetail {
	e.Details = details
	return e
}

// WithCode sets Code and returns e.
func (e *ErrorDetail) WithCode(code string) *ErrorDetail {
	e.Code = code
	return e
}
