package ops

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/dataset"
	"github.com/hpungsan/tagfold/internal/db"
	"github.com/hpungsan/tagfold/internal/errors"
	"github.com/hpungsan/tagfold/internal/taxonomy"
)

// ConsolidateInput contains parameters for the Consolidate operation.
type ConsolidateInput struct {
	InputPath  string          // required
	OutputPath string          // default: InputPath (in-place rewrite)
	Policy     taxonomy.Policy // default: config, then drop
	DryRun     bool            // process and report without writing
}

// ConsolidateOutput contains the result of the Consolidate operation.
type ConsolidateOutput struct {
	RunID       string          `json:"run_id,omitempty"`
	InputPath   string          `json:"input_path"`
	OutputPath  string          `json:"output_path"`
	Policy      taxonomy.Policy `json:"policy"`
	DryRun      bool            `json:"dry_run,omitempty"`
	Records     int             `json:"records"`
	Changed     int             `json:"changed"`
	VibeVocab   int             `json:"vibe_vocab"`
	EnergyVocab int             `json:"energy_vocab"`
	Anomalies   []Anomaly       `json:"anomalies,omitempty"`
	Unmapped    []UnmappedCount `json:"unmapped,omitempty"`
}

// Consolidate rewrites every record's vibe and energy tag lists through the
// two dimension mappings and persists the dataset. Per-record anomalies are
// collected, never fatal. A run row is recorded in the audit store when a
// database is provided.
func Consolidate(database *sql.DB, cfg *config.Config, input ConsolidateInput) (*ConsolidateOutput, error) {
	if input.InputPath == "" {
		return nil, errors.NewInvalidRequest("input path is required")
	}
	if _, err := os.Stat(input.InputPath); os.IsNotExist(err) {
		return nil, errors.NewNotFound(input.InputPath)
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = input.InputPath
	}

	policy, err := resolvePolicy(cfg, input.Policy)
	if err != nil {
		return nil, err
	}

	vibe, energy, err := loadMappings(cfg)
	if err != nil {
		return nil, err
	}

	places, err := dataset.Load(input.InputPath)
	if err != nil {
		return nil, errors.NewInvalidRequest(err.Error())
	}

	consolidator := taxonomy.NewConsolidator(vibe, energy, policy)

	out := &ConsolidateOutput{
		InputPath:   input.InputPath,
		OutputPath:  outputPath,
		Policy:      policy,
		DryRun:      input.DryRun,
		Records:     len(places),
		VibeVocab:   vibe.VocabularySize(),
		EnergyVocab: energy.VocabularySize(),
	}

	unmappedCounts := make(map[taxonomy.UnmappedTag]int)

	for i, p := range places {
		for _, field := range p.Malformed {
			out.Anomalies = append(out.Anomalies, Anomaly{
				Record:  i,
				Code:    string(errors.ErrMalformedRecord),
				Field:   field,
				Message: errors.NewMalformedRecord(i, field).Message,
			})
		}

		changed, unmapped := consolidator.Apply(p)
		if changed {
			out.Changed++
		}
		if policy == taxonomy.PolicyReport {
			for _, u := range unmapped {
				unmappedCounts[u]++
			}
		}
	}

	for u, n := range unmappedCounts {
		out.Unmapped = append(out.Unmapped, UnmappedCount{
			Dimension: u.Dimension,
			Tag:       u.Tag,
			Count:     n,
		})
	}
	sort.Slice(out.Unmapped, func(i, j int) bool {
		a, b := out.Unmapped[i], out.Unmapped[j]
		if a.Dimension != b.Dimension {
			return a.Dimension < b.Dimension
		}
		return a.Tag < b.Tag
	})

	if !input.DryRun {
		if err := dataset.Save(outputPath, places); err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	if database != nil {
		out.RunID = newRunID()
		if err := recordRun(database, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// recordRun persists one consolidation pass in the audit store.
func recordRun(database *sql.DB, out *ConsolidateOutput) error {
	anomaliesJSON := ""
	if len(out.Anomalies) > 0 || len(out.Unmapped) > 0 {
		payload := struct {
			Anomalies []Anomaly       `json:"anomalies,omitempty"`
			Unmapped  []UnmappedCount `json:"unmapped,omitempty"`
		}{out.Anomalies, out.Unmapped}

		data, err := json.Marshal(payload)
		if err != nil {
			return errors.NewInternal(fmt.Errorf("encode anomalies: %w", err))
		}
		anomaliesJSON = string(data)
	}

	return db.InsertRun(database, &db.Run{
		ID:             out.RunID,
		DatasetPath:    out.InputPath,
		OutputPath:     out.OutputPath,
		Policy:         string(out.Policy),
		DryRun:         out.DryRun,
		RecordsTotal:   out.Records,
		RecordsChanged: out.Changed,
		VibeVocab:      out.VibeVocab,
		EnergyVocab:    out.EnergyVocab,
		AnomaliesJSON:  anomaliesJSON,
		CreatedAt:      time.Now().Unix(),
	})
}
