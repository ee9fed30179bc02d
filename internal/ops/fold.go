package ops

import (
	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/errors"
	"github.com/hpungsan/tagfold/internal/taxonomy"
)

// FoldInput contains parameters for the Fold operation.
type FoldInput struct {
	Dimension string          // required: "vibe" or "energy"
	Tags      []string        // raw tags; may be empty
	Policy    taxonomy.Policy // default: config, then drop
}

// FoldOutput contains the result of the Fold operation.
type FoldOutput struct {
	Dimension string          `json:"dimension"`
	Policy    taxonomy.Policy `json:"policy"`
	Tags      []string        `json:"tags"`
	Unmapped  []string        `json:"unmapped,omitempty"`
}

// Fold consolidates a single list of raw tags through one dimension
// mapping — the core rewrite exposed directly, without touching a dataset.
func Fold(cfg *config.Config, input FoldInput) (*FoldOutput, error) {
	if input.Dimension != taxonomy.DimensionVibe && input.Dimension != taxonomy.DimensionEnergy {
		return nil, errors.NewInvalidRequest("dimension must be one of: vibe, energy")
	}

	policy, err := resolvePolicy(cfg, input.Policy)
	if err != nil {
		return nil, err
	}

	m, err := loadMapping(cfg, input.Dimension)
	if err != nil {
		return nil, err
	}

	result, unmapped := m.Apply(input.Tags, policy)
	if policy != taxonomy.PolicyReport {
		unmapped = nil
	}

	return &FoldOutput{
		Dimension: input.Dimension,
		Policy:    policy,
		Tags:      result,
		Unmapped:  unmapped,
	}, nil
}
