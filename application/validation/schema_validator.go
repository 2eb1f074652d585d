package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator validates raw method payloads against the schemas of a
// SchemaRegistry. Compiled schemas are cached per method.
type SchemaValidator struct {
	registry ports.SchemaRegistry

	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

var _ ports.PayloadValidator = (*SchemaValidator)(nil)

// NewSchemaValidator creates a validator backed by registry.
func NewSchemaValidator(registry ports.SchemaRegistry) *SchemaValidator {
	return &SchemaValidator{
		registry: registry,
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate checks payload against the schema of the named method.
// A method without a registered schema is reported as invalid.
func (v *SchemaValidator) Validate(family entities.MethodFamily, name string, payload []byte) (*entities.ValidationResult, error) {
	key := entities.MethodKey(family, name)
	result := &entities.ValidationResult{Valid: true}

	sch, err := v.schema(family, name)
	if err != nil {
		return nil, err
	}
	if sch == nil {
		result.Valid = false
		result.Errors = append(result.Errors, entities.ValidationError{
			Field:   key,
			Message: fmt.Sprintf("no schema registered for method %s", key),
		})
		return result, nil
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		payload = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var instance any
	if err := dec.Decode(&instance); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, entities.ValidationError{
			Field:   key,
			Message: fmt.Sprintf("payload is not valid JSON: %v", err),
		})
		return result, nil
	}

	if err := sch.Validate(instance); err != nil {
		result.Valid = false
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			result.Errors = append(result.Errors, entities.ValidationError{Field: key, Message: err.Error()})
			return result, nil
		}
		for _, leaf := range leaves(ve) {
			result.Errors = append(result.Errors, entities.ValidationError{
				Field:   instancePath(leaf.InstanceLocation),
				Message: leaf.Message,
			})
		}
	}

	return result, nil
}

func (v *SchemaValidator) schema(family entities.MethodFamily, name string) (*jsonschema.Schema, error) {
	key := entities.MethodKey(family, name)

	v.mu.Lock()
	defer v.mu.Unlock()

	if sch, ok := v.compiled[key]; ok {
		return sch, nil
	}

	raw, ok := v.registry.GetSchema(family, name)
	if !ok {
		return nil, nil
	}

	url := "mem://methods/" + key + ".json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, strings.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource for %s: %w", key, err)
	}
	sch, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("invalid schema for %s: %w", key, err)
	}

	v.compiled[key] = sch
	return sch, nil
}

// leaves flattens a validation error tree to the errors that carry no causes.
func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

// instancePath converts a JSON pointer such as "/params/0/amount" into
// "params.0.amount". The document root is reported as "$".
func instancePath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "$"
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
