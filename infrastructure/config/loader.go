// Package config loads WalletOptions from YAML, TOML or JSON files.
package config

import (
	"fmt"
	"os"

	"github.com/reglet-dev/wallet-bindings/application/validation"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
)

// loaderConfig holds configuration for loading wallet options.
type loaderConfig struct {
	defaults entities.WalletOptions
	format   Format
	expand   bool
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		defaults: entities.DefaultWalletOptions(),
		expand:   true,
	}
}

// LoadOption configures LoadWalletOptions.
type LoadOption func(*loaderConfig)

// WithDefaults replaces the options the file is layered on.
func WithDefaults(defaults entities.WalletOptions) LoadOption {
	return func(c *loaderConfig) {
		c.defaults = defaults
	}
}

// WithFormat forces a format instead of deriving it from the extension.
func WithFormat(format Format) LoadOption {
	return func(c *loaderConfig) {
		c.format = format
	}
}

// WithEnvExpansion toggles ${VAR} expansion of paths. Enabled by default.
func WithEnvExpansion(enabled bool) LoadOption {
	return func(c *loaderConfig) {
		c.expand = enabled
	}
}

// LoadWalletOptions reads, layers and validates the wallet options at path.
func LoadWalletOptions(path string, opts ...LoadOption) (*entities.WalletOptions, error) {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	format := cfg.format
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, &domainerrors.ConfigError{Err: err}
		}
		format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domainerrors.ConfigError{Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	return parseWalletOptions(data, format, cfg)
}

// ParseWalletOptions decodes and validates wallet options from data.
func ParseWalletOptions(data []byte, format Format, opts ...LoadOption) (*entities.WalletOptions, error) {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return parseWalletOptions(data, format, cfg)
}

func parseWalletOptions(data []byte, format Format, cfg loaderConfig) (*entities.WalletOptions, error) {
	parser, err := NewParser(format)
	if err != nil {
		return nil, &domainerrors.ConfigError{Err: err}
	}

	options := cfg.defaults
	if err := parser.Parse(data, &options); err != nil {
		return nil, &domainerrors.ConfigError{Err: fmt.Errorf("failed to parse %s config: %w", format, err)}
	}

	if cfg.expand {
		expandPaths(&options)
	}

	if err := validation.ValidateWalletOptions(&options); err != nil {
		return nil, err
	}
	return &options, nil
}

func expandPaths(opts *entities.WalletOptions) {
	opts.StoragePath = os.ExpandEnv(opts.StoragePath)
	if sm := opts.SecretManager; sm != nil && sm.SnapshotPath != nil {
		expanded := os.ExpandEnv(*sm.SnapshotPath)
		sm.SnapshotPath = &expanded
	}
}
