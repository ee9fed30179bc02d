package ops

import (
	"sort"

	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/errors"
	"github.com/hpungsan/tagfold/internal/taxonomy"
)

// VocabInput contains parameters for the Vocab operation.
type VocabInput struct {
	Dimension string // optional: "vibe" or "energy"; empty means both
}

// VocabEntry is one canonical tag with its 1-based position in the sorted
// vocabulary, matching the human-readable summary surface.
type VocabEntry struct {
	Ordinal int    `json:"ordinal"`
	Tag     string `json:"tag"`
}

// DimensionVocab is the canonical vocabulary of one dimension.
type DimensionVocab struct {
	Dimension string       `json:"dimension"`
	Count     int          `json:"count"`
	Tags      []VocabEntry `json:"tags"`
}

// VocabOutput contains the result of the Vocab operation.
type VocabOutput struct {
	Dimensions []DimensionVocab `json:"dimensions"`
}

// Vocab enumerates the canonical vocabularies of the configured mappings,
// lexicographically sorted with 1-based ordinals.
func Vocab(cfg *config.Config, input VocabInput) (*VocabOutput, error) {
	dims := []string{taxonomy.DimensionVibe, taxonomy.DimensionEnergy}
	if input.Dimension != "" {
		if input.Dimension != taxonomy.DimensionVibe && input.Dimension != taxonomy.DimensionEnergy {
			return nil, errors.NewInvalidRequest("dimension must be one of: vibe, energy")
		}
		dims = []string{input.Dimension}
	}

	out := &VocabOutput{}
	for _, dim := range dims {
		m, err := loadMapping(cfg, dim)
		if err != nil {
			return nil, err
		}
		out.Dimensions = append(out.Dimensions, dimensionVocab(m))
	}

	return out, nil
}

// dimensionVocab builds the sorted, ordinal-numbered vocabulary listing.
func dimensionVocab(m *taxonomy.Mapping) DimensionVocab {
	names := make([]string, 0, len(m.Groups()))
	for _, g := range m.Groups() {
		names = append(names, g.Canonical)
	}
	sort.Strings(names)

	entries := make([]VocabEntry, len(names))
	for i, name := range names {
		entries[i] = VocabEntry{Ordinal: i + 1, Tag: name}
	}

	return DimensionVocab{
		Dimension: m.Dimension(),
		Count:     len(entries),
		Tags:      entries,
	}
}
