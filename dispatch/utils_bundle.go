package dispatch

import (
	"context"

	"github.com/reglet-dev/wallet-bindings/application/utils"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// Stateless is the target of utils methods, which need no engine handle.
type Stateless = struct{}

// UtilsHandler implements a UtilsMethod variant.
type UtilsHandler = Handler[Stateless]

func onUtils[Req any](fn func(ctx context.Context, req Req) (entities.Response, error)) UtilsHandler {
	return NewMethodHandler(func(ctx context.Context, _ Stateless, req Req) (entities.Response, error) {
		return fn(ctx, req)
	})
}

// UtilsBundle returns the handlers of every UtilsMethod variant.
func UtilsBundle() Bundle[Stateless] {
	return &staticBundle[Stateless]{handlers: map[string]UtilsHandler{
		entities.UtilsMethodGenerateMnemonic: onUtils(func(_ context.Context, _ entities.NoPayload) (entities.Response, error) {
			v, err := utils.GenerateMnemonic()
			return respond(entities.UtilsMethodGenerateMnemonic, entities.ResponseGeneratedMnemonic, v, err)
		}),
		entities.UtilsMethodVerifyMnemonic: onUtils(func(_ context.Context, req entities.MnemonicRequest) (entities.Response, error) {
			return ok(entities.UtilsMethodVerifyMnemonic, utils.VerifyMnemonic(req.Mnemonic))
		}),
		entities.UtilsMethodMnemonicToHexSeed: onUtils(func(_ context.Context, req entities.MnemonicRequest) (entities.Response, error) {
			v, err := utils.MnemonicToHexSeed(req.Mnemonic)
			return respond(entities.UtilsMethodMnemonicToHexSeed, entities.ResponseHexSeed, v, err)
		}),
		entities.UtilsMethodBech32ToHex: onUtils(func(_ context.Context, req entities.Bech32ToHexRequest) (entities.Response, error) {
			v, err := utils.Bech32ToHex(req.Bech32)
			return respond(entities.UtilsMethodBech32ToHex, entities.ResponseBech32ToHex, v, err)
		}),
		entities.UtilsMethodHexToBech32: onUtils(func(_ context.Context, req entities.HexToBech32Request) (entities.Response, error) {
			v, err := utils.HexToBech32(req.Hex, req.Bech32Hrp)
			return respond(entities.UtilsMethodHexToBech32, entities.ResponseBech32Address, v, err)
		}),
		entities.UtilsMethodAliasIDToBech32: onUtils(func(_ context.Context, req entities.AliasIDToBech32Request) (entities.Response, error) {
			v, err := utils.AliasIDToBech32(req.AliasID, req.Bech32Hrp)
			return respond(entities.UtilsMethodAliasIDToBech32, entities.ResponseBech32Address, v, err)
		}),
		entities.UtilsMethodNftIDToBech32: onUtils(func(_ context.Context, req entities.NftIDToBech32Request) (entities.Response, error) {
			v, err := utils.NftIDToBech32(req.NftID, req.Bech32Hrp)
			return respond(entities.UtilsMethodNftIDToBech32, entities.ResponseBech32Address, v, err)
		}),
		entities.UtilsMethodHexPublicKeyToBech32Address: onUtils(func(_ context.Context, req entities.HexToBech32Request) (entities.Response, error) {
			v, err := utils.HexPublicKeyToBech32Address(req.Hex, req.Bech32Hrp)
			return respond(entities.UtilsMethodHexPublicKeyToBech32Address, entities.ResponseBech32Address, v, err)
		}),
		entities.UtilsMethodParseBech32Address: onUtils(func(_ context.Context, req entities.AddressRequest) (entities.Response, error) {
			v, err := utils.ParseBech32Address(req.Address)
			return respond(entities.UtilsMethodParseBech32Address, entities.ResponseParsedBech32Address, v, err)
		}),
		entities.UtilsMethodIsAddressValid: onUtils(func(_ context.Context, req entities.AddressRequest) (entities.Response, error) {
			return entities.NewResponse(entities.ResponseBool, utils.IsAddressValid(req.Address))
		}),
		entities.UtilsMethodComputeAliasID: onUtils(func(_ context.Context, req entities.OutputIDRequest) (entities.Response, error) {
			v, err := utils.ComputeAliasID(req.OutputID)
			return respond(entities.UtilsMethodComputeAliasID, entities.ResponseAliasID, v, err)
		}),
		entities.UtilsMethodComputeNftID: onUtils(func(_ context.Context, req entities.OutputIDRequest) (entities.Response, error) {
			v, err := utils.ComputeNftID(req.OutputID)
			return respond(entities.UtilsMethodComputeNftID, entities.ResponseNftID, v, err)
		}),
		entities.UtilsMethodComputeFoundryID: onUtils(func(_ context.Context, req entities.ComputeFoundryIDRequest) (entities.Response, error) {
			v, err := utils.ComputeFoundryID(req.AliasID, req.SerialNumber, req.TokenSchemeKind)
			return respond(entities.UtilsMethodComputeFoundryID, entities.ResponseFoundryID, v, err)
		}),
		entities.UtilsMethodUTF8ToHex: onUtils(func(_ context.Context, req entities.UTF8ToHexRequest) (entities.Response, error) {
			return entities.NewResponse(entities.ResponseHex, utils.UTF8ToHex(req.UTF8))
		}),
		entities.UtilsMethodHexToUTF8: onUtils(func(_ context.Context, req entities.HexToUTF8Request) (entities.Response, error) {
			v, err := utils.HexToUTF8(req.Hex)
			return respond(entities.UtilsMethodHexToUTF8, entities.ResponseUTF8, v, err)
		}),
	}}
}
