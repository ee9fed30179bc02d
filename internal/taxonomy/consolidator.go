package taxonomy

import (
	"github.com/hpungsan/tagfold/internal/place"
)

// UnmappedTag identifies a raw tag that matched nothing in its dimension.
type UnmappedTag struct {
	Dimension string `json:"dimension"`
	Tag       string `json:"tag"`
}

// Consolidator rewrites both tag dimensions of a record through their
// respective mappings under one unmapped-tag policy. The mappings are
// read-only after construction, so a single Consolidator is safe to share.
type Consolidator struct {
	Vibe   *Mapping
	Energy *Mapping
	Policy Policy
}

// NewConsolidator pairs the two dimension mappings with a policy.
// An empty policy defaults to PolicyDrop.
func NewConsolidator(vibe, energy *Mapping, policy Policy) *Consolidator {
	if policy == "" {
		policy = PolicyDrop
	}
	return &Consolidator{Vibe: vibe, Energy: energy, Policy: policy}
}

// Apply rewrites p's vibe and energy tag lists in place. Missing and null
// tag fields are treated as empty; malformed fields are skipped entirely.
// All other record fields pass through untouched. The changed flag reports
// whether either list's value differs from what was read, for summary
// counting only.
func (c *Consolidator) Apply(p *place.Place) (changed bool, unmapped []UnmappedTag) {
	for _, dim := range []struct {
		name    string
		field   string
		mapping *Mapping
	}{
		{DimensionVibe, place.FieldVibeTags, c.Vibe},
		{DimensionEnergy, place.FieldEnergyTags, c.Energy},
	} {
		if p.IsMalformed(dim.field) {
			continue
		}

		old := p.Tags(dim.field)
		result, missed := dim.mapping.Apply(old, c.Policy)
		for _, t := range missed {
			unmapped = append(unmapped, UnmappedTag{Dimension: dim.name, Tag: t})
		}

		if !stringSlicesEqual(old, result) {
			changed = true
		}
		p.SetTags(dim.field, result)
	}

	return changed, unmapped
}

// stringSlicesEqual compares two slices element-wise, treating nil and
// empty as equal.
func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
