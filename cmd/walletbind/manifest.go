package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/reglet-dev/wallet-bindings/application/manifest"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

var manifestCmd = &cli.Command{
	Name:  "manifest",
	Usage: "Print the method vocabulary with payload schemas",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "json or yaml",
		},
		&cli.StringFlag{
			Name:  "family",
			Usage: "only print one family: account, wallet or utils",
		},
	},
	Action: func(cctx *cli.Context) error {
		m, err := manifest.Build()
		if err != nil {
			return err
		}

		switch family := entities.MethodFamily(cctx.String("family")); family {
		case "":
		case entities.FamilyAccount, entities.FamilyWallet, entities.FamilyUtils:
			m = m.Filter(family)
		default:
			return fmt.Errorf("unknown method family %q", family)
		}

		var out []byte
		switch cctx.String("format") {
		case "json":
			out, err = m.JSON()
		case "yaml":
			out, err = m.YAML()
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", cctx.String("format"))
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cctx.App.Writer, string(out))
		return err
	},
}
