// Command walletbind exposes the wallet method vocabularies on the command
// line and as a policy-enforcing JSON-RPC gateway.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/urfave/cli/v2"

	wlog "github.com/reglet-dev/wallet-bindings/log"
)

const envPrefix = "WALLETBIND_"

// envConfig supplies flag defaults from WALLETBIND_* variables.
type envConfig struct {
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"   envDefault:"text"`
	Engine      string `env:"ENGINE"`
	EngineToken string `env:"ENGINE_TOKEN"`
	Listen      string `env:"LISTEN"       envDefault:"127.0.0.1:7800"`
	Policy      string `env:"POLICY"`
	GrantStore  string `env:"GRANT_STORE"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func newApp(cfg envConfig) *cli.App {
	return &cli.App{
		Name:  "walletbind",
		Usage: "Dispatch wallet, account and utils methods",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: cfg.LogFormat,
				Usage: "text or json",
			},
		},
		Before: func(cctx *cli.Context) error {
			logger, err := newLogger(cctx.App.ErrWriter, cctx.String("log-level"), cctx.String("log-format"))
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
		Commands: []*cli.Command{
			manifestCmd,
			utilsCmd,
			callCmd(cfg),
			serveCmd(cfg),
			checkConfigCmd,
		},
	}
}

// newLogger builds the process logger. Secret attributes are always redacted.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
	return slog.New(wlog.NewRedactingHandler(h)), nil
}

func main() {
	cfg, err := loadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newApp(cfg).Run(os.Args); err != nil {
		if errors.Is(err, errFailedResponse) {
			os.Exit(2)
		}
		slog.Error("walletbind failed", "error", err)
		os.Exit(1)
	}
}
