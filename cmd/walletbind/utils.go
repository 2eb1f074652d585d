package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/reglet-dev/wallet-bindings/dispatch"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

var utilsCmd = &cli.Command{
	Name:      "utils",
	Usage:     "Run a utils method locally",
	ArgsUsage: "<name> [json data]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() < 1 {
			return fmt.Errorf("expected a utils method name")
		}

		method := entities.UtilsMethod{Name: cctx.Args().Get(0)}
		if data := cctx.Args().Get(1); data != "" {
			if !json.Valid([]byte(data)) {
				return fmt.Errorf("utils data is not valid JSON")
			}
			method.Data = json.RawMessage(data)
		}

		handler, err := dispatch.New(dispatch.WithLogger(slog.Default()))
		if err != nil {
			return err
		}
		return printResponse(cctx, handler.CallUtilsMethod(cctx.Context, method))
	},
}

// errFailedResponse marks a call that completed with an error or panic response.
var errFailedResponse = errors.New("method returned a failure response")

// printResponse writes resp and reports error responses as errFailedResponse.
func printResponse(cctx *cli.Context, resp entities.Response) error {
	if _, err := fmt.Fprintln(cctx.App.Writer, string(resp.ToJSON())); err != nil {
		return err
	}
	if resp.Err() != nil {
		return errFailedResponse
	}
	return nil
}
