package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks the `validate` tags of a decoded request.
// Values that are not structs pass unchanged.
func ValidateStruct(method string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]entities.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, entities.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return &domainerrors.ValidationError{Method: method, Fields: fields}
}

// ValidateWalletOptions checks options before an engine is created with them.
func ValidateWalletOptions(opts *entities.WalletOptions) error {
	if opts == nil {
		return &domainerrors.ConfigError{Err: errors.New("wallet options are required")}
	}
	err := ValidateStruct("walletOptions", opts)
	if err == nil {
		return nil
	}
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		first := verr.Fields[0]
		return &domainerrors.ConfigError{Field: first.Field, Err: errors.New(first.Message)}
	}
	return &domainerrors.ConfigError{Err: err}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return fmt.Sprintf("is required when %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
