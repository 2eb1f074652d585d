package ports

import "github.com/reglet-dev/wallet-bindings/domain/entities"

// PayloadValidator validates raw method payloads before they are decoded.
type PayloadValidator interface {
	Validate(family entities.MethodFamily, name string, payload []byte) (*entities.ValidationResult, error)
}
