package taxonomy

import (
	"fmt"
)

// Dimension names for the two tag axes.
const (
	DimensionVibe   = "vibe"
	DimensionEnergy = "energy"
)

// SynonymGroup associates one canonical tag with the raw tag strings
// (aliases) that fold into it.
type SynonymGroup struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

// AliasConflict records an alias string claimed by more than one synonym
// group. The first-declared group keeps the alias.
type AliasConflict struct {
	Alias  string `json:"alias"`
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

// Mapping is the complete, immutable set of synonym groups for one tag
// dimension. Lookup is a single map access: the alias index is built once
// at construction. Mappings are safe for concurrent readers.
type Mapping struct {
	dimension string
	groups    []SynonymGroup
	index     map[string]string // alias (or canonical) -> canonical
	canonical map[string]bool
	conflicts []AliasConflict
}

// NewMapping constructs a validated Mapping from groups in declaration order.
// Rules:
//   - canonical names must be non-empty and unique within the dimension
//   - every group must declare at least one alias
//   - an alias claimed by two groups goes to the first-declared group; the
//     conflict is recorded and retrievable via Conflicts()
//   - a canonical name maps to itself unless an earlier group already claims
//     it as an alias (alias match takes precedence over pass-through)
func NewMapping(dimension string, groups []SynonymGroup) (*Mapping, error) {
	if dimension == "" {
		return nil, fmt.Errorf("dimension must not be empty")
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("mapping for dimension %q has no synonym groups", dimension)
	}

	m := &Mapping{
		dimension: dimension,
		groups:    groups,
		index:     make(map[string]string),
		canonical: make(map[string]bool, len(groups)),
	}

	owner := make(map[string]string) // alias -> canonical of first claimant

	for _, g := range groups {
		if g.Canonical == "" {
			return nil, fmt.Errorf("dimension %q: synonym group with empty canonical tag", dimension)
		}
		if m.canonical[g.Canonical] {
			return nil, fmt.Errorf("dimension %q: duplicate canonical tag %q", dimension, g.Canonical)
		}
		if len(g.Aliases) == 0 {
			return nil, fmt.Errorf("dimension %q: canonical tag %q has no aliases", dimension, g.Canonical)
		}
		m.canonical[g.Canonical] = true

		for _, a := range g.Aliases {
			if a == "" {
				return nil, fmt.Errorf("dimension %q: canonical tag %q has an empty alias", dimension, g.Canonical)
			}
			if prev, claimed := owner[a]; claimed {
				if prev != g.Canonical {
					m.conflicts = append(m.conflicts, AliasConflict{
						Alias:  a,
						Winner: prev,
						Loser:  g.Canonical,
					})
				}
				continue
			}
			owner[a] = g.Canonical
			m.index[a] = g.Canonical
		}
	}

	// Canonical pass-through: an already-canonical tag resolves to itself
	// unless some group claims it as an alias.
	for _, g := range groups {
		if _, claimed := m.index[g.Canonical]; !claimed {
			m.index[g.Canonical] = g.Canonical
		}
	}

	return m, nil
}

// Dimension returns the dimension name this mapping classifies.
func (m *Mapping) Dimension() string {
	return m.dimension
}

// Groups returns the synonym groups in declaration order.
// The returned slice must not be mutated.
func (m *Mapping) Groups() []SynonymGroup {
	return m.groups
}

// Conflicts returns the aliases claimed by more than one group, in the
// order they were detected. Empty for a clean mapping.
func (m *Mapping) Conflicts() []AliasConflict {
	return m.conflicts
}

// Resolve returns the canonical tag for a single raw tag, or false if the
// tag matches neither an alias nor a canonical name.
func (m *Mapping) Resolve(tag string) (string, bool) {
	c, ok := m.index[tag]
	return c, ok
}

// ShadowedCanonicals returns canonical tags that do not resolve to
// themselves because an earlier group claims their name as an alias.
// Such a tag can never appear in consolidated output.
func (m *Mapping) ShadowedCanonicals() []string {
	var shadowed []string
	for _, g := range m.groups {
		if m.index[g.Canonical] != g.Canonical {
			shadowed = append(shadowed, g.Canonical)
		}
	}
	return shadowed
}

// VocabularySize returns the number of canonical tags in this dimension.
func (m *Mapping) VocabularySize() int {
	return len(m.canonical)
}
