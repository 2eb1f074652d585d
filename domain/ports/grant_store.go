package ports

import "github.com/reglet-dev/wallet-bindings/domain/entities"

// GrantStore provides persistence for method grants.
type GrantStore interface {
	// Load retrieves the stored grants.
	// Returns empty MethodGrants (not error) if none exist.
	Load() (*entities.MethodGrants, error)

	// Save persists the grants.
	Save(grants *entities.MethodGrants) error

	// ConfigPath returns the path to the backing store (for user messaging).
	ConfigPath() string
}
