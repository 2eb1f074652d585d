// Package manifest describes the method vocabularies: payload schemas,
// response variants and risk levels.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
	"gopkg.in/yaml.v3"
)

// Version of the manifest format.
const Version = "1"

// Entry is the manifest record of one method.
type Entry struct {
	Schema    json.RawMessage       `json:"schema"`
	Family    entities.MethodFamily `json:"family"`
	Name      string                `json:"name"`
	Response  entities.ResponseType `json:"response,omitempty"`
	Risk      string                `json:"risk"`
	Sensitive bool                  `json:"sensitive,omitempty"`
}

// Manifest lists every method. It also serves payload schemas to validators.
type Manifest struct {
	index   map[string]int
	Version string  `json:"version"`
	Methods []Entry `json:"methods"`
}

var _ ports.SchemaRegistry = (*Manifest)(nil)

type buildConfig struct {
	assessor *entities.RiskAssessor
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithRiskAssessor sets the assessor used to fill in risk levels.
func WithRiskAssessor(a *entities.RiskAssessor) BuildOption {
	return func(c *buildConfig) {
		c.assessor = a
	}
}

// Build generates the manifest of all three vocabularies.
func Build(opts ...BuildOption) (*Manifest, error) {
	cfg := buildConfig{assessor: entities.NewRiskAssessor()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Manifest{
		Version: Version,
		Methods: make([]Entry, 0, len(catalog)),
		index:   make(map[string]int, len(catalog)),
	}
	for _, method := range catalog {
		schema, err := GenerateSchema(method.Request)
		if err != nil {
			return nil, fmt.Errorf("schema of %s: %w", entities.MethodKey(method.Family, method.Name), err)
		}
		m.index[entities.MethodKey(method.Family, method.Name)] = len(m.Methods)
		m.Methods = append(m.Methods, Entry{
			Family:    method.Family,
			Name:      method.Name,
			Schema:    schema,
			Response:  method.Response,
			Risk:      cfg.assessor.AssessMethod(method.Family, method.Name).String(),
			Sensitive: entities.IsSensitive(method.Family, method.Name),
		})
	}
	return m, nil
}

// Entry returns the record of a method.
func (m *Manifest) Entry(family entities.MethodFamily, name string) (Entry, bool) {
	if m.index == nil {
		for _, e := range m.Methods {
			if e.Family == family && e.Name == name {
				return e, true
			}
		}
		return Entry{}, false
	}
	i, ok := m.index[entities.MethodKey(family, name)]
	if !ok {
		return Entry{}, false
	}
	return m.Methods[i], true
}

// GetSchema implements ports.SchemaRegistry.
func (m *Manifest) GetSchema(family entities.MethodFamily, name string) (string, bool) {
	e, ok := m.Entry(family, name)
	if !ok {
		return "", false
	}
	return string(e.Schema), true
}

// Filter returns a manifest restricted to one family.
func (m *Manifest) Filter(family entities.MethodFamily) *Manifest {
	out := &Manifest{Version: m.Version, index: make(map[string]int)}
	for _, e := range m.Methods {
		if e.Family != family {
			continue
		}
		out.index[entities.MethodKey(e.Family, e.Name)] = len(out.Methods)
		out.Methods = append(out.Methods, e)
	}
	return out
}

// JSON renders the manifest as indented JSON.
func (m *Manifest) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// YAML renders the manifest as block-style YAML, keeping the key order of
// the JSON form.
func (m *Manifest) YAML() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to convert manifest: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blockStyle clears the flow and quoting styles carried over from JSON.
// The encoder still quotes scalars that would otherwise change type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
