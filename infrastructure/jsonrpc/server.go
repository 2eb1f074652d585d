// Package jsonrpc carries the method vocabularies over JSON-RPC.
//
// A Server exposes a MethodHandler bound to one wallet under the "Wallet"
// namespace. RemoteWallet is the client side: it implements ports.Wallet by
// sending every call to a Server, so a MethodHandler can front a wallet that
// lives in another process.
package jsonrpc

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/reglet-dev/wallet-bindings/dispatch"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// Namespace is the JSON-RPC namespace of the wallet service.
const Namespace = "Wallet"

func methodNameFormatter() jsonrpc.MethodNameFormatter {
	return jsonrpc.NewMethodNameFormatter(true, jsonrpc.LowerFirstCharCase)
}

// serverConfig holds configuration for the Server.
type serverConfig struct {
	logger  *slog.Logger
	options []jsonrpc.ServerOption
}

func defaultServerConfig() serverConfig {
	return serverConfig{logger: slog.Default()}
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

// WithServerLogger sets the logger used by the call tracer.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRPCServerOptions passes extra options to the underlying go-jsonrpc server.
func WithRPCServerOptions(opts ...jsonrpc.ServerOption) ServerOption {
	return func(c *serverConfig) {
		c.options = append(c.options, opts...)
	}
}

// walletService is the registered RPC handler. Every outcome, including
// failures, travels as a Response; the RPC error is reserved for transport.
type walletService struct {
	handler *dispatch.MethodHandler
	wallet  ports.Wallet
}

// CallWalletMethod is served as Wallet.callWalletMethod.
func (s *walletService) CallWalletMethod(ctx context.Context, method entities.WalletMethod) (entities.Response, error) {
	return s.handler.CallWalletMethod(ctx, s.wallet, method), nil
}

// CallUtilsMethod is served as Wallet.callUtilsMethod.
func (s *walletService) CallUtilsMethod(ctx context.Context, method entities.UtilsMethod) (entities.Response, error) {
	return s.handler.CallUtilsMethod(ctx, method), nil
}

// Server serves a MethodHandler over HTTP and websocket JSON-RPC.
type Server struct {
	rpc    *jsonrpc.RPCServer
	logger *slog.Logger
}

var _ http.Handler = (*Server)(nil)

// NewServer creates a Server dispatching wallet calls to wallet.
func NewServer(handler *dispatch.MethodHandler, wallet ports.Wallet, opts ...ServerOption) *Server {
	cfg := defaultServerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger.With("component", "rpc-server")

	rpcOpts := append([]jsonrpc.ServerOption{
		jsonrpc.WithServerMethodNameFormatter(methodNameFormatter()),
		jsonrpc.WithTracer(newTracer(logger)),
	}, cfg.options...)

	rpc := jsonrpc.NewServer(rpcOpts...)
	rpc.Register(Namespace, &walletService{handler: handler, wallet: wallet})

	return &Server{rpc: rpc, logger: logger}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.rpc.ServeHTTP(w, r)
}

// Register mounts the server on mux at path.
func (s *Server) Register(mux *http.ServeMux, path string) {
	mux.Handle(path, s)
}
