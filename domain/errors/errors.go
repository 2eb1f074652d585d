// Package errors provides domain-specific error types for the bindings.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail. New error types only need to implement this
// interface to be rendered in an error Response.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	// Check if error matches domain errors.DetailedError interface first so
	// wrappers such as EngineError keep their own category.
	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	// Generic error - categorize as internal
	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// WireFormatError represents a failure to decode or encode a method payload.
type WireFormatError struct {
	Err       error
	Operation string // "decode" or "encode"
	Method    string
}

func (e *WireFormatError) Error() string {
	return fmt.Sprintf("wire format %s failed for %s: %v", e.Operation, e.Method, e.Err)
}

func (e *WireFormatError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *WireFormatError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "wire", Code: "wire_format"}
}

// ValidationError reports payload fields that failed struct validation.
type ValidationError struct {
	Method string
	Fields []entities.ValidationError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid payload for %s", e.Method)
	}
	return fmt.Sprintf("invalid payload for %s: %s %s", e.Method, e.Fields[0].Field, e.Fields[0].Message)
}

// ToErrorDetail implements DetailedError.
func (e *ValidationError) ToErrorDetail() *entities.ErrorDetail {
	fields := make(map[string]any, len(e.Fields))
	for _, f := range e.Fields {
		fields[f.Field] = f.Message
	}
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "validation",
		Code:    e.Method,
		Details: map[string]any{"fields": fields},
	}
}

// SchemaError represents a schema generation or validation error.
type SchemaError struct {
	Err      error
	Method   string
	Location string
}

func (e *SchemaError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("schema error for %s at %s: %v", e.Method, e.Location, e.Err)
	}
	if e.Method != "" {
		return fmt.Sprintf("schema error for %s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "schema", Code: e.Method}
}

// InvalidFieldError is raised when a literal field cannot be converted,
// e.g. a U256 that is not valid hex.
type InvalidFieldError struct {
	Err   error
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field: %s", e.Field)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *InvalidFieldError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "invalid_field", Code: e.Field}
}

// InvalidAmountError is raised when a decimal amount string does not parse as a u64.
type InvalidAmountError struct {
	Amount string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: %s", e.Amount)
}

// ToErrorDetail implements DetailedError.
func (e *InvalidAmountError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "invalid_amount", Code: "amount"}
}

// UnknownMethodError is raised for a method name no handler is registered for.
type UnknownMethodError struct {
	Family entities.MethodFamily
	Name   string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown %s method: %s", e.Family, e.Name)
}

// ToErrorDetail implements DetailedError.
func (e *UnknownMethodError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "unknown_method",
		Code:    entities.MethodKey(e.Family, e.Name),
	}
}

// EngineError wraps an error returned by the wallet engine.
type EngineError struct {
	Err    error
	Method string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError. Structured engine errors are kept
// as the wrapped detail.
func (e *EngineError) ToErrorDetail() *entities.ErrorDetail {
	detail := &entities.ErrorDetail{Message: e.Error(), Type: "engine", Code: e.Method}
	var wrapped *entities.ErrorDetail
	if stdErrors.As(e.Err, &wrapped) {
		detail.Message = e.Method + ": " + wrapped.Message
		detail.Wrapped = wrapped
	}
	return detail
}

// PermissionDeniedError is raised when the method policy refuses a call.
type PermissionDeniedError struct {
	Method string
	Reason string
}

func (e *PermissionDeniedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("permission denied for %s: %s", e.Method, e.Reason)
	}
	return fmt.Sprintf("permission denied for %s", e.Method)
}

// ToErrorDetail implements DetailedError.
func (e *PermissionDeniedError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "permission", Code: e.Method}
}

// PanicError carries a panic recovered while handling a method.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	switch v := e.Value.(type) {
	case error:
		return "panic: " + v.Error()
	case string:
		return "panic: " + v
	default:
		return fmt.Sprintf("panic: %v", v)
	}
}

// ToErrorDetail implements DetailedError.
func (e *PanicError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "panic"}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}
