package entities

import "slices"

// MethodGrants are the method key patterns a caller may or may not invoke.
// Patterns use doublestar syntax over "family/name", e.g. "account/get*".
type MethodGrants struct {
	Allow []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	Deny  []string `json:"deny,omitempty" yaml:"deny,omitempty"`
}

// IsEmpty returns true if no patterns are present.
func (g *MethodGrants) IsEmpty() bool {
	return g == nil || (len(g.Allow) == 0 && len(g.Deny) == 0)
}

// Merge unions two grant sets, skipping duplicate patterns.
func (g *MethodGrants) Merge(other *MethodGrants) {
	if other == nil {
		return
	}
	for _, p := range other.Allow {
		if !slices.Contains(g.Allow, p) {
			g.Allow = append(g.Allow, p)
		}
	}
	for _, p := range other.Deny {
		if !slices.Contains(g.Deny, p) {
			g.Deny = append(g.Deny, p)
		}
	}
}

// Clone returns a deep copy of the grants.
func (g *MethodGrants) Clone() *MethodGrants {
	if g == nil {
		return nil
	}
	return &MethodGrants{
		Allow: slices.Clone(g.Allow),
		Deny:  slices.Clone(g.Deny),
	}
}
