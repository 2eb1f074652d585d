package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/wallet-bindings/infrastructure/config"
)

var checkConfigCmd = &cli.Command{
	Name:      "check-config",
	Usage:     "Validate a wallet options file (.yaml, .yml, .toml or .json)",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "print",
			Usage: "print the effective options as YAML",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return fmt.Errorf("expected exactly one config file")
		}
		path := cctx.Args().First()

		opts, err := config.LoadWalletOptions(path)
		if err != nil {
			return err
		}

		if cctx.Bool("print") {
			out, err := yaml.Marshal(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cctx.App.Writer, string(out))
			return err
		}
		_, err = fmt.Fprintf(cctx.App.Writer, "%s: ok\n", path)
		return err
	},
}
