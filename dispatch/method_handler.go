package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// MethodHandler is the entry point of the bindings. It owns one registry per
// method family and never fails: every outcome is a Response.
type MethodHandler struct {
	accounts *Registry[ports.Account]
	wallets  *Registry[ports.Wallet]
	utils    *Registry[Stateless]
}

type handlerConfig struct {
	logger     *slog.Logger
	validator  ports.PayloadValidator
	authorizer ports.MethodAuthorizer
	middleware []Middleware
}

// Option configures a MethodHandler.
type Option func(*handlerConfig)

// WithLogger logs every call through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithSchemaValidator validates raw payloads against their schemas.
func WithSchemaValidator(v ports.PayloadValidator) Option {
	return func(c *handlerConfig) {
		c.validator = v
	}
}

// WithAuthorizer checks every call against a method policy.
func WithAuthorizer(a ports.MethodAuthorizer) Option {
	return func(c *handlerConfig) {
		c.authorizer = a
	}
}

// WithCallMiddleware appends middleware that runs after the built-in chain.
func WithCallMiddleware(mw ...Middleware) Option {
	return func(c *handlerConfig) {
		c.middleware = append(c.middleware, mw...)
	}
}

// New creates a MethodHandler serving all three vocabularies.
//
// The chain of every call is: panic recovery, request id, logging, policy,
// schema validation, then any WithCallMiddleware.
func New(opts ...Option) (*MethodHandler, error) {
	var cfg handlerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	chain := []Middleware{PanicRecoveryMiddleware(), RequestIDMiddleware()}
	if cfg.logger != nil {
		chain = append(chain, LoggingMiddleware(cfg.logger))
	}
	if cfg.authorizer != nil {
		chain = append(chain, PolicyMiddleware(cfg.authorizer))
	}
	if cfg.validator != nil {
		chain = append(chain, SchemaValidationMiddleware(cfg.validator))
	}
	chain = append(chain, cfg.middleware...)

	accounts, err := NewRegistry(entities.FamilyAccount,
		WithMiddleware[ports.Account](chain...),
		WithBundle(AccountBundle()),
	)
	if err != nil {
		return nil, fmt.Errorf("account registry: %w", err)
	}
	wallets, err := NewRegistry(entities.FamilyWallet,
		WithMiddleware[ports.Wallet](chain...),
		WithBundle(WalletBundle(accounts)),
	)
	if err != nil {
		return nil, fmt.Errorf("wallet registry: %w", err)
	}
	utilsRegistry, err := NewRegistry(entities.FamilyUtils,
		WithMiddleware[Stateless](chain...),
		WithBundle(UtilsBundle()),
	)
	if err != nil {
		return nil, fmt.Errorf("utils registry: %w", err)
	}

	return &MethodHandler{accounts: accounts, wallets: wallets, utils: utilsRegistry}, nil
}

// Accounts returns the account method registry.
func (h *MethodHandler) Accounts() *Registry[ports.Account] { return h.accounts }

// Wallets returns the wallet method registry.
func (h *MethodHandler) Wallets() *Registry[ports.Wallet] { return h.wallets }

// Utils returns the utils method registry.
func (h *MethodHandler) Utils() *Registry[Stateless] { return h.utils }

// CallAccountMethod runs an AccountMethod against account.
func (h *MethodHandler) CallAccountMethod(ctx context.Context, account ports.Account, method entities.AccountMethod) entities.Response {
	return guard(func() (entities.Response, error) {
		return h.accounts.Invoke(ctx, account, method.Name, method.Data)
	})
}

// CallWalletMethod runs a WalletMethod against wallet.
func (h *MethodHandler) CallWalletMethod(ctx context.Context, wallet ports.Wallet, method entities.WalletMethod) entities.Response {
	return guard(func() (entities.Response, error) {
		return h.wallets.Invoke(ctx, wallet, method.Cmd, method.Payload)
	})
}

// CallUtilsMethod runs a UtilsMethod.
func (h *MethodHandler) CallUtilsMethod(ctx context.Context, method entities.UtilsMethod) entities.Response {
	return guard(func() (entities.Response, error) {
		return h.utils.Invoke(ctx, Stateless{}, method.Name, method.Data)
	})
}

// HandleAccountMessage decodes a JSON AccountMethod, runs it and returns the
// JSON Response.
func (h *MethodHandler) HandleAccountMessage(ctx context.Context, account ports.Account, data []byte) []byte {
	var method entities.AccountMethod
	if err := json.Unmarshal(data, &method); err != nil {
		return toResponse(entities.Response{}, &domainerrors.WireFormatError{Err: err, Operation: "decode", Method: "AccountMethod"}).ToJSON()
	}
	return h.CallAccountMethod(ctx, account, method).ToJSON()
}

// HandleWalletMessage decodes a JSON WalletMethod, runs it and returns the
// JSON Response.
func (h *MethodHandler) HandleWalletMessage(ctx context.Context, wallet ports.Wallet, data []byte) []byte {
	var method entities.WalletMethod
	if err := json.Unmarshal(data, &method); err != nil {
		return toResponse(entities.Response{}, &domainerrors.WireFormatError{Err: err, Operation: "decode", Method: "WalletMethod"}).ToJSON()
	}
	return h.CallWalletMethod(ctx, wallet, method).ToJSON()
}

// HandleUtilsMessage decodes a JSON UtilsMethod, runs it and returns the
// JSON Response.
func (h *MethodHandler) HandleUtilsMessage(ctx context.Context, data []byte) []byte {
	var method entities.UtilsMethod
	if err := json.Unmarshal(data, &method); err != nil {
		return toResponse(entities.Response{}, &domainerrors.WireFormatError{Err: err, Operation: "decode", Method: "UtilsMethod"}).ToJSON()
	}
	return h.CallUtilsMethod(ctx, method).ToJSON()
}

// guard runs call and folds its error, or a panic that escaped the
// middleware chain, into the Response.
func guard(call func() (entities.Response, error)) (resp entities.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = toResponse(entities.Response{}, &domainerrors.PanicError{Value: r})
		}
	}()
	return toResponse(call())
}

func toResponse(resp entities.Response, err error) entities.Response {
	if err == nil {
		return resp
	}
	var pe *domainerrors.PanicError
	if errors.As(err, &pe) {
		return entities.PanicResponse(strings.TrimPrefix(pe.Error(), "panic: "))
	}
	return entities.ErrorResponseFrom(domainerrors.ToErrorDetail(err))
}
