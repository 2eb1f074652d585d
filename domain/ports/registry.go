package ports

import "github.com/reglet-dev/wallet-bindings/domain/entities"

// SchemaRegistry serves the JSON schemas of method payloads.
type SchemaRegistry interface {
	// GetSchema retrieves the payload schema of a method.
	GetSchema(family entities.MethodFamily, name string) (string, bool)
}
