// Package grantstore persists method grants remembered from "always" approvals.
package grantstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	"gopkg.in/yaml.v3"
)

// fileStoreConfig holds configuration for the FileStore.
type fileStoreConfig struct {
	path     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

func defaultFileStoreConfig() fileStoreConfig {
	return fileStoreConfig{
		path:     DefaultPath(),
		dirPerm:  0o755,
		filePerm: 0o600, // grants gate access to secrets
	}
}

// DefaultPath is ~/.walletbind/grants.yaml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".walletbind", "grants.yaml")
}

// FileStoreOption configures a FileStore instance.
type FileStoreOption func(*fileStoreConfig)

// WithPath sets the path to the grants file.
func WithPath(path string) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.path = path
	}
}

// WithFilePermissions sets the file permissions for the grants file.
// Default is 0o600 (user-only).
func WithFilePermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.filePerm = perm
	}
}

// WithDirPermissions sets the permissions of a created grants directory.
func WithDirPermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.dirPerm = perm
	}
}

// FileStore keeps method grants in a YAML file:
//
//	allow:
//	  - account/get*
//	deny:
//	  - wallet/backup
type FileStore struct {
	config fileStoreConfig
}

var _ ports.GrantStore = (*FileStore)(nil)

// NewFileStore creates a new FileStore with the given options.
func NewFileStore(opts ...FileStoreOption) *FileStore {
	cfg := defaultFileStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileStore{config: cfg}
}

// Load reads the stored grants. A missing file yields empty grants.
func (s *FileStore) Load() (*entities.MethodGrants, error) {
	data, err := os.ReadFile(s.config.path)
	if os.IsNotExist(err) {
		return &entities.MethodGrants{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read grant store: %w", err)
	}

	var grants entities.MethodGrants
	if err := yaml.Unmarshal(data, &grants); err != nil {
		return nil, fmt.Errorf("failed to parse grant store %s: %w", s.config.path, err)
	}
	return &grants, nil
}

// Save writes grants, creating the parent directory when needed. The file is
// replaced atomically so readers never see a partial document.
func (s *FileStore) Save(grants *entities.MethodGrants) error {
	if grants == nil {
		grants = &entities.MethodGrants{}
	}
	data, err := yaml.Marshal(grants)
	if err != nil {
		return fmt.Errorf("failed to marshal grants: %w", err)
	}

	dir := filepath.Dir(s.config.path)
	if err := os.MkdirAll(dir, s.config.dirPerm); err != nil {
		return fmt.Errorf("failed to create grant store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".grants-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write grant store: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write grant store: %w", err)
	}
	if err := tmp.Chmod(s.config.filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set grant store permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write grant store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.config.path); err != nil {
		return fmt.Errorf("failed to replace grant store: %w", err)
	}
	return nil
}

// ConfigPath returns the path to the grants file.
func (s *FileStore) ConfigPath() string {
	return s.config.path
}
