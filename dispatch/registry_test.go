package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoTarget struct{ prefix string }

type echoRequest struct {
	Text string `json:"text" validate:"required"`
}

func echoMethod(ctx context.Context, t echoTarget, req echoRequest) (entities.Response, error) {
	return entities.NewResponse(entities.ResponseUTF8, t.prefix+req.Text)
}

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := NewRegistry[echoTarget](entities.FamilyUtils)
	require.NoError(t, err)
	assert.Empty(t, reg.Names())
	assert.Equal(t, entities.FamilyUtils, reg.Family())
}

func TestNewRegistry_WithMethod(t *testing.T) {
	reg, err := NewRegistry(entities.FamilyUtils,
		WithMethod("echo", echoMethod),
	)
	require.NoError(t, err)

	assert.True(t, reg.Has("echo"))
	assert.False(t, reg.Has("nonexistent"))

	resp, err := reg.Invoke(context.Background(), echoTarget{prefix: "> "}, "echo", json.RawMessage(`{"text":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, entities.ResponseUTF8, resp.Type)
	assert.JSONEq(t, `"> hi"`, string(resp.Payload))
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry(entities.FamilyUtils,
		WithMethod("echo", echoMethod),
		WithMethod("echo", echoMethod),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate method name: "echo"`)
}

func TestNewRegistry_EmptyName(t *testing.T) {
	_, err := NewRegistry(entities.FamilyUtils, WithMethod("", echoMethod))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestRegistry_Names_Sorted(t *testing.T) {
	reg, err := NewRegistry(entities.FamilyUtils,
		WithMethod("zeta", echoMethod),
		WithMethod("alpha", echoMethod),
		WithMethod("mid", echoMethod),
	)
	require.NoError(t, err)

	names := reg.Names()
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)

	// The returned slice is a copy.
	names[0] = "changed"
	assert.Equal(t, "alpha", reg.Names()[0])
}

func TestRegistry_UnknownMethodSkipsMiddleware(t *testing.T) {
	called := false
	mw := func(next Invoker) Invoker {
		return func(ctx context.Context, payload json.RawMessage) (entities.Response, error) {
			called = true
			return next(ctx, payload)
		}
	}

	reg, err := NewRegistry(entities.FamilyWallet,
		WithMiddleware[echoTarget](mw),
		WithMethod("echo", echoMethod),
	)
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), echoTarget{}, "nope", nil)
	var unknown *domainerrors.UnknownMethodError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "wallet/nope", unknown.ToErrorDetail().Code)
	assert.False(t, called)
}

func TestRegistry_MiddlewareOrder(t *testing.T) {
	var order []string
	record := func(name string) Middleware {
		return func(next Invoker) Invoker {
			return func(ctx context.Context, payload json.RawMessage) (entities.Response, error) {
				order = append(order, name+":before")
				resp, err := next(ctx, payload)
				order = append(order, name+":after")
				return resp, err
			}
		}
	}

	reg, err := NewRegistry(entities.FamilyUtils,
		WithMiddleware[echoTarget](record("first"), record("second")),
		WithHandler("noop", func(ctx context.Context, _ echoTarget, _ json.RawMessage) (entities.Response, error) {
			order = append(order, "handler")
			return entities.OkResponse(), nil
		}),
	)
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), echoTarget{}, "noop", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first:before", "second:before", "handler", "second:after", "first:after"}, order)
}

func TestRegistry_CallContext(t *testing.T) {
	var got CallContext
	reg, err := NewRegistry(entities.FamilyAccount,
		WithHandler("probe", func(ctx context.Context, _ echoTarget, _ json.RawMessage) (entities.Response, error) {
			got, _ = CallFrom(ctx)
			return entities.OkResponse(), nil
		}),
	)
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), echoTarget{}, "probe", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.FamilyAccount, got.Family())
	assert.Equal(t, "probe", got.Method())
	assert.Equal(t, "account/probe", got.Key())
}

func TestNewCallContext_InheritsParentValues(t *testing.T) {
	parent := NewCallContext(context.Background(), entities.FamilyWallet, "callAccountMethod")
	parent.SetValue(requestIDKey{}, "req-1")

	child := NewCallContext(parent, entities.FamilyAccount, "getBalance")
	assert.Equal(t, "req-1", RequestID(child))

	child.SetValue("only-child", true)
	_, ok := parent.GetValue("only-child")
	assert.False(t, ok)

	inner, ok := CallFrom(child)
	require.True(t, ok)
	assert.Equal(t, "account/getBalance", inner.Key())
}

func TestCombineBundles_LaterOverrides(t *testing.T) {
	first := &staticBundle[echoTarget]{handlers: map[string]Handler[echoTarget]{
		"echo": NewMethodHandler(echoMethod),
		"a":    NewMethodHandler(echoMethod),
	}}
	override := func(ctx context.Context, _ echoTarget, _ json.RawMessage) (entities.Response, error) {
		return entities.NewResponse(entities.ResponseUTF8, "override")
	}
	second := &staticBundle[echoTarget]{handlers: map[string]Handler[echoTarget]{
		"echo": override,
	}}

	reg, err := NewRegistry(entities.FamilyUtils, WithBundle(CombineBundles[echoTarget](first, second)))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "echo"}, reg.Names())

	resp, err := reg.Invoke(context.Background(), echoTarget{}, "echo", json.RawMessage(`{"text":"x"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `"override"`, string(resp.Payload))
}

func TestNewMethodHandler_DecodeError(t *testing.T) {
	reg, err := NewRegistry(entities.FamilyUtils, WithMethod("echo", echoMethod))
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), echoTarget{}, "echo", json.RawMessage(`{"text":`))
	var wire *domainerrors.WireFormatError
	require.True(t, errors.As(err, &wire))
	assert.Equal(t, "decode", wire.Operation)
	assert.Equal(t, "echo", wire.Method)
}

func TestNewMethodHandler_ValidationError(t *testing.T) {
	reg, err := NewRegistry(entities.FamilyUtils, WithMethod("echo", echoMethod))
	require.NoError(t, err)

	// An empty payload decodes as {} and fails the required tag.
	_, err = reg.Invoke(context.Background(), echoTarget{}, "echo", nil)
	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "echo", verr.Method)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "text", verr.Fields[0].Field)
}
