package ops

import (
	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/errors"
	"github.com/hpungsan/tagfold/internal/taxonomy"
)

// CheckInput contains parameters for the Check operation.
type CheckInput struct {
	Dimension string // required: "vibe" or "energy"
	Path      string // optional mapping file; empty checks the configured/builtin mapping
}

// CheckOutput contains the result of the Check operation.
type CheckOutput struct {
	Dimension          string                   `json:"dimension"`
	Groups             int                      `json:"groups"`
	Aliases            int                      `json:"aliases"`
	Conflicts          []taxonomy.AliasConflict `json:"conflicts,omitempty"`
	ShadowedCanonicals []string                 `json:"shadowed_canonicals,omitempty"`
	Valid              bool                     `json:"valid"`
}

// Check validates a dimension mapping and reports the anomalies the
// consolidation pass would otherwise resolve silently: aliases claimed by
// more than one group, and canonical tags shadowed by an earlier group's
// alias. Structural defects (empty groups, duplicate canonicals) are hard
// errors from mapping construction.
func Check(cfg *config.Config, input CheckInput) (*CheckOutput, error) {
	if input.Dimension != taxonomy.DimensionVibe && input.Dimension != taxonomy.DimensionEnergy {
		return nil, errors.NewInvalidRequest("dimension must be one of: vibe, energy")
	}

	var (
		m   *taxonomy.Mapping
		err error
	)
	if input.Path != "" {
		m, err = taxonomy.LoadMappingFile(input.Path, input.Dimension)
		if err != nil {
			return nil, errors.NewInvalidRequest(err.Error())
		}
	} else {
		// Bypass the strict gate: Check reports conflicts, it doesn't fail on them.
		lenient := &config.Config{
			VibeMappingPath:   cfg.VibeMappingPath,
			EnergyMappingPath: cfg.EnergyMappingPath,
		}
		m, err = loadMapping(lenient, input.Dimension)
		if err != nil {
			return nil, err
		}
	}

	aliases := 0
	for _, g := range m.Groups() {
		aliases += len(g.Aliases)
	}

	out := &CheckOutput{
		Dimension:          m.Dimension(),
		Groups:             len(m.Groups()),
		Aliases:            aliases,
		Conflicts:          m.Conflicts(),
		ShadowedCanonicals: m.ShadowedCanonicals(),
	}
	out.Valid = len(out.Conflicts) == 0 && len(out.ShadowedCanonicals) == 0

	return out, nil
}
