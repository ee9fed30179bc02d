// Package ops implements the operations shared by the CLI and MCP
// surfaces. Each operation takes an Input struct, validates it with coded
// errors, and returns an Output struct suitable for JSON encoding.
package ops

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/errors"
	"github.com/hpungsan/tagfold/internal/taxonomy"
)

// Listing limits for the runs operation.
const (
	DefaultRunsLimit = 20
	MaxRunsLimit     = 100
)

// Anomaly is a per-record condition collected during a consolidation pass.
// Anomalies never abort the pass; they are surfaced in the final report.
type Anomaly struct {
	Record  int    `json:"record"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// UnmappedCount aggregates how often an unrecognized raw tag was seen in a
// dimension across the whole dataset.
type UnmappedCount struct {
	Dimension string `json:"dimension"`
	Tag       string `json:"tag"`
	Count     int    `json:"count"`
}

// loadMapping resolves one dimension mapping: a configured mapping file if
// set, the builtin table otherwise. With strict aliases enabled, the first
// contested alias is a hard error.
func loadMapping(cfg *config.Config, dimension string) (*taxonomy.Mapping, error) {
	var (
		m    *taxonomy.Mapping
		path string
		err  error
	)

	switch dimension {
	case taxonomy.DimensionVibe:
		path = cfg.VibeMappingPath
	case taxonomy.DimensionEnergy:
		path = cfg.EnergyMappingPath
	default:
		return nil, errors.NewInvalidRequest("dimension must be one of: vibe, energy")
	}

	if path != "" {
		m, err = taxonomy.LoadMappingFile(path, dimension)
		if err != nil {
			return nil, errors.NewInvalidRequest(err.Error())
		}
	} else if dimension == taxonomy.DimensionVibe {
		m = taxonomy.BuiltinVibeMapping()
	} else {
		m = taxonomy.BuiltinEnergyMapping()
	}

	if cfg.StrictAliases {
		if conflicts := m.Conflicts(); len(conflicts) > 0 {
			c := conflicts[0]
			return nil, errors.NewAmbiguousAlias(dimension, c.Alias, c.Winner, c.Loser)
		}
	}

	return m, nil
}

// loadMappings resolves both dimension mappings.
func loadMappings(cfg *config.Config) (vibe, energy *taxonomy.Mapping, err error) {
	vibe, err = loadMapping(cfg, taxonomy.DimensionVibe)
	if err != nil {
		return nil, nil, err
	}
	energy, err = loadMapping(cfg, taxonomy.DimensionEnergy)
	if err != nil {
		return nil, nil, err
	}
	return vibe, energy, nil
}

// resolvePolicy picks the effective unmapped-tag policy: explicit input
// beats config, config beats the drop default.
func resolvePolicy(cfg *config.Config, requested taxonomy.Policy) (taxonomy.Policy, error) {
	policy := requested
	if policy == "" {
		policy = taxonomy.Policy(cfg.UnmappedPolicy)
	}
	if policy == "" {
		policy = taxonomy.PolicyDrop
	}
	if !taxonomy.ValidPolicy(policy) {
		return "", errors.NewInvalidRequest("policy must be one of: drop, keep, report")
	}
	return policy, nil
}

// newRunID generates a ULID for a consolidation run.
func newRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
