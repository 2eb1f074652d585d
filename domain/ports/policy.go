package ports

import (
	"context"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// MethodAuthorizer decides whether a method call may proceed.
type MethodAuthorizer interface {
	// Authorize returns nil when the call is allowed and an error describing the refusal otherwise.
	Authorize(ctx context.Context, family entities.MethodFamily, name string) error
}
