package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/infrastructure/jsonrpc"
)

func engineFlags(cfg envConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "engine",
			Value: cfg.Engine,
			Usage: "JSON-RPC endpoint of the wallet engine, e.g. http://127.0.0.1:7700/rpc/v0",
		},
		&cli.StringFlag{
			Name:  "engine-token",
			Value: cfg.EngineToken,
			Usage: "bearer token sent to the engine",
		},
	}
}

func dialEngine(cctx *cli.Context) (*jsonrpc.RemoteWallet, error) {
	addr := cctx.String("engine")
	if addr == "" {
		return nil, fmt.Errorf("no engine address: set --engine or %sENGINE", envPrefix)
	}
	var opts []jsonrpc.ClientOption
	if token := cctx.String("engine-token"); token != "" {
		opts = append(opts, jsonrpc.WithHeader("Authorization", "Bearer "+token))
	}
	return jsonrpc.Dial(cctx.Context, addr, opts...)
}

func callCmd(cfg envConfig) *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "Send one method to a remote wallet engine",
		ArgsUsage: `'{"cmd":"getAccountIndexes"}'`,
		Flags: append(engineFlags(cfg), &cli.BoolFlag{
			Name:  "utils",
			Usage: `the argument is a utils method: {"name":...,"data":...}`,
		}),
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() != 1 {
				return fmt.Errorf("expected exactly one JSON method argument")
			}
			raw := []byte(cctx.Args().First())

			remote, err := dialEngine(cctx)
			if err != nil {
				return err
			}
			defer remote.Close()

			var resp entities.Response
			if cctx.Bool("utils") {
				var method entities.UtilsMethod
				if err := json.Unmarshal(raw, &method); err != nil {
					return fmt.Errorf("invalid utils method: %w", err)
				}
				resp, err = remote.CallUtilsMethod(cctx.Context, method)
			} else {
				var method entities.WalletMethod
				if err := json.Unmarshal(raw, &method); err != nil {
					return fmt.Errorf("invalid wallet method: %w", err)
				}
				resp, err = remote.CallWalletMethod(cctx.Context, method)
			}
			if err != nil {
				return err
			}
			return printResponse(cctx, resp)
		},
	}
}
