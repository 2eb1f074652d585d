package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Parser decodes wallet options onto an already populated value, so keys
// missing from the document keep their previous value.
type Parser interface {
	Parse(data []byte, into *entities.WalletOptions) error
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (want .yaml, .yml, .toml or .json)", filepath.Ext(path))
	}
}

// NewParser returns the parser of a format. Unknown keys are rejected.
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatYAML:
		return yamlParser{}, nil
	case FormatTOML:
		return tomlParser{}, nil
	case FormatJSON:
		return jsonParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

type yamlParser struct{}

func (yamlParser) Parse(data []byte, into *entities.WalletOptions) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil {
		// An empty document leaves the defaults untouched.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

type tomlParser struct{}

func (tomlParser) Parse(data []byte, into *entities.WalletOptions) error {
	md, err := toml.Decode(string(data), into)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

type jsonParser struct{}

func (jsonParser) Parse(data []byte, into *entities.WalletOptions) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(into)
}
