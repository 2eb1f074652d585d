package dispatch

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// respond wraps an engine result in a response of type t. Engine errors are
// wrapped as EngineError under the method name.
func respond[V any](method string, t entities.ResponseType, v V, err error) (entities.Response, error) {
	if err != nil {
		return entities.Response{}, engineError(method, err)
	}
	return entities.NewResponse(t, v)
}

// ok is respond for engine calls that return nothing.
func ok(method string, err error) (entities.Response, error) {
	if err != nil {
		return entities.Response{}, engineError(method, err)
	}
	return entities.OkResponse(), nil
}

func engineError(method string, err error) error {
	var de domainerrors.DetailedError
	if errors.As(err, &de) {
		return err
	}
	return &domainerrors.EngineError{Err: err, Method: method}
}

// requireAccountID rejects a missing or empty accountId.
func requireAccountID(method string, id entities.AccountIdentifier) error {
	if id.IsZero() {
		return &domainerrors.ValidationError{
			Method: method,
			Fields: []entities.ValidationError{{Field: "accountId", Message: "is required"}},
		}
	}
	return nil
}

// details fetches account details. An account without details is an engine error.
func details(ctx context.Context, method string, account ports.Account) (*entities.AccountDetails, error) {
	d, err := account.Details(ctx)
	if err != nil {
		return nil, engineError(method, err)
	}
	if d == nil {
		return nil, engineError(method, errors.New("engine returned no details for account"))
	}
	return d, nil
}

// u256 converts a U256 field, raising InvalidField under the field's wire name.
func u256(field string, v entities.U256) (*big.Int, error) {
	n, err := v.BigInt()
	if err != nil {
		return nil, &domainerrors.InvalidFieldError{Err: err, Field: field}
	}
	return n, nil
}

// amount parses a decimal u64 amount, raising InvalidAmount.
func amount(s string) (uint64, error) {
	n, err := entities.ParseDecimalU64(s)
	if err != nil {
		return 0, &domainerrors.InvalidAmountError{Amount: s}
	}
	return n, nil
}

// checkOutput enforces the output kind and the decimal amount of an output.
func checkOutput(o entities.Output) error {
	if err := o.CheckKind(); err != nil {
		return &domainerrors.InvalidFieldError{Err: err, Field: "type"}
	}
	if _, err := entities.ParseDecimalU64(o.Amount); err != nil {
		return &domainerrors.InvalidFieldError{Err: err, Field: "amount"}
	}
	return nil
}

func checkOutputs(outputs []entities.Output) error {
	for _, o := range outputs {
		if err := checkOutput(o); err != nil {
			return err
		}
	}
	return nil
}

// millis converts an optional millisecond interval.
func millis(ms *uint64) *time.Duration {
	if ms == nil {
		return nil
	}
	d := time.Duration(*ms) * time.Millisecond
	return &d
}
