package manifest

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

var (
	accountIdentifierType = reflect.TypeOf(entities.AccountIdentifier{})
	outputType            = reflect.TypeOf(entities.Output{})
	u256Type              = reflect.TypeOf(entities.U256(""))
	byteListType          = reflect.TypeOf(entities.ByteList(nil))
	rawMessageType        = reflect.TypeOf(json.RawMessage(nil))
)

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		ExpandedStruct:            true,
		Anonymous:                 true,
		AllowAdditionalProperties: true,
		Mapper:                    mapType,
	}
}

// mapType describes the types whose JSON form differs from their Go shape.
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case accountIdentifierType:
		return &jsonschema.Schema{
			Description: "account alias or index",
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "integer", Minimum: json.Number("0")},
			},
		}
	case outputType:
		return &jsonschema.Schema{
			Type:     "object",
			Required: []string{"type"},
		}
	case u256Type:
		return &jsonschema.Schema{
			Type:    "string",
			Pattern: "^0[xX][0-9a-fA-F]{1,64}$",
		}
	case byteListType:
		return &jsonschema.Schema{
			Type:  "array",
			Items: &jsonschema.Schema{Type: "integer", Minimum: json.Number("0"), Maximum: json.Number("255")},
		}
	case rawMessageType:
		return &jsonschema.Schema{}
	}
	return nil
}

// GenerateSchema creates the JSON schema (draft 2020-12) of a payload type.
func GenerateSchema(v any) ([]byte, error) {
	schema := newReflector().Reflect(v)

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
