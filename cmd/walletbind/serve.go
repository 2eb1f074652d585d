package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/wallet-bindings/application/manifest"
	"github.com/reglet-dev/wallet-bindings/application/validation"
	"github.com/reglet-dev/wallet-bindings/dispatch"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/policy"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	"github.com/reglet-dev/wallet-bindings/infrastructure/grantstore"
	"github.com/reglet-dev/wallet-bindings/infrastructure/jsonrpc"
	"github.com/reglet-dev/wallet-bindings/infrastructure/prompter"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(cfg envConfig) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a policy-enforcing JSON-RPC gateway in front of a wallet engine",
		Flags: append(engineFlags(cfg),
			&cli.StringFlag{
				Name:  "listen",
				Value: cfg.Listen,
				Usage: "address to listen on",
			},
			&cli.StringFlag{
				Name:  "path",
				Value: "/rpc/v0",
				Usage: "HTTP path of the RPC endpoint",
			},
			&cli.StringFlag{
				Name:  "policy",
				Value: cfg.Policy,
				Usage: "YAML file with static allow/deny method patterns",
			},
			&cli.StringFlag{
				Name:  "grant-store",
				Value: cfg.GrantStore,
				Usage: "file that remembers \"always\" approvals (default ~/.walletbind/grants.yaml)",
			},
			&cli.StringFlag{
				Name:  "approval-threshold",
				Value: entities.RiskLevelHigh.String(),
				Usage: "lowest risk level that needs a grant or approval: Low, Medium, High or Critical",
			},
			&cli.BoolFlag{
				Name:  "no-prompt",
				Usage: "never ask for approval; ungranted methods above the threshold are denied",
			},
		),
		Action: func(cctx *cli.Context) error {
			logger := slog.Default()

			authorizer, err := buildPolicy(cctx, logger)
			if err != nil {
				return err
			}

			remote, err := dialEngine(cctx)
			if err != nil {
				return err
			}
			defer remote.Close()

			m, err := manifest.Build()
			if err != nil {
				return err
			}

			handler, err := dispatch.New(
				dispatch.WithLogger(logger),
				dispatch.WithSchemaValidator(validation.NewSchemaValidator(m)),
				dispatch.WithAuthorizer(authorizer),
			)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			jsonrpc.NewServer(handler, remote, jsonrpc.WithServerLogger(logger)).Register(mux, cctx.String("path"))

			srv := &http.Server{
				Addr:              cctx.String("listen"),
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("serving wallet gateway", "listen", srv.Addr, "path", cctx.String("path"), "engine", cctx.String("engine"))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down wallet gateway")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func buildPolicy(cctx *cli.Context, logger *slog.Logger) (*policy.MethodPolicy, error) {
	threshold, ok := entities.ParseRiskLevel(cctx.String("approval-threshold"))
	if !ok {
		return nil, fmt.Errorf("unknown risk level %q (want Low, Medium, High or Critical)", cctx.String("approval-threshold"))
	}

	opts := []policy.PolicyOption{
		policy.WithApprovalThreshold(threshold),
		policy.WithDenialHandler(&policy.LogDenialHandler{Logger: logger}),
	}

	if path := cctx.String("policy"); path != "" {
		grants, err := loadPolicyFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, policy.WithGrants(grants))
	}

	storeOpts := []grantstore.FileStoreOption{}
	if path := cctx.String("grant-store"); path != "" {
		storeOpts = append(storeOpts, grantstore.WithPath(path))
	}
	opts = append(opts, policy.WithGrantStore(grantstore.NewFileStore(storeOpts...)))

	if !cctx.Bool("no-prompt") {
		var p ports.Prompter = prompter.NewCliPrompter(cctx.App.Reader, cctx.App.ErrWriter)
		opts = append(opts, policy.WithPrompter(p))
	}

	return policy.NewMethodPolicy(opts...)
}

// loadPolicyFile reads the operator's grants. Unlike the grant store, a
// missing or empty file is an error.
func loadPolicyFile(path string) (*entities.MethodGrants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var grants entities.MethodGrants
	if err := dec.Decode(&grants); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("policy %s is empty", path)
		}
		return nil, fmt.Errorf("failed to parse policy %s: %w", path, err)
	}
	return &grants, nil
}
