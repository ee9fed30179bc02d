package db

import (
	"database/sql"

	"github.com/hpungsan/tagfold/internal/errors"
)

// Run is one recorded consolidation pass over a dataset.
type Run struct {
	ID             string `json:"id"`
	DatasetPath    string `json:"dataset_path"`
	OutputPath     string `json:"output_path"`
	Policy         string `json:"policy"`
	DryRun         bool   `json:"dry_run"`
	RecordsTotal   int    `json:"records_total"`
	RecordsChanged int    `json:"records_changed"`
	VibeVocab      int    `json:"vibe_vocab"`
	EnergyVocab    int    `json:"energy_vocab"`
	AnomaliesJSON  string `json:"-"`
	CreatedAt      int64  `json:"created_at"`
}

// InsertRun records a completed consolidation run.
func InsertRun(database *sql.DB, r *Run) error {
	var anomalies sql.NullString
	if r.AnomaliesJSON != "" {
		anomalies = sql.NullString{String: r.AnomaliesJSON, Valid: true}
	}

	dryRun := 0
	if r.DryRun {
		dryRun = 1
	}

	query := `
		INSERT INTO runs (
			id, dataset_path, output_path, policy, dry_run,
			records_total, records_changed, vibe_vocab, energy_vocab,
			anomalies_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := database.Exec(query,
		r.ID, r.DatasetPath, r.OutputPath, r.Policy, dryRun,
		r.RecordsTotal, r.RecordsChanged, r.VibeVocab, r.EnergyVocab,
		anomalies, r.CreatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetRun fetches a run by ID.
func GetRun(database *sql.DB, id string) (*Run, error) {
	query := selectRunColumns + ` WHERE id = ?`
	return scanRun(database.QueryRow(query, id), id)
}

// GetLatestRun fetches the most recently recorded run.
func GetLatestRun(database *sql.DB) (*Run, error) {
	query := selectRunColumns + ` ORDER BY created_at DESC, id DESC LIMIT 1`
	return scanRun(database.QueryRow(query), "latest run")
}

// ListRuns returns up to limit runs, most recent first.
func ListRuns(database *sql.DB, limit int) ([]*Run, error) {
	query := selectRunColumns + ` ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := database.Query(query, limit)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRunFromRows(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return runs, nil
}

const selectRunColumns = `
	SELECT id, dataset_path, output_path, policy, dry_run,
	       records_total, records_changed, vibe_vocab, energy_vocab,
	       anomalies_json, created_at
	FROM runs`

// scanRun scans a single-row query, mapping sql.ErrNoRows to NOT_FOUND.
func scanRun(row *sql.Row, identifier string) (*Run, error) {
	r := &Run{}
	var anomalies sql.NullString
	var dryRun int

	err := row.Scan(
		&r.ID, &r.DatasetPath, &r.OutputPath, &r.Policy, &dryRun,
		&r.RecordsTotal, &r.RecordsChanged, &r.VibeVocab, &r.EnergyVocab,
		&anomalies, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(identifier)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	r.DryRun = dryRun != 0
	r.AnomaliesJSON = anomalies.String
	return r, nil
}

// scanRunFromRows scans the current row of a multi-row result.
func scanRunFromRows(rows *sql.Rows) (*Run, error) {
	r := &Run{}
	var anomalies sql.NullString
	var dryRun int

	err := rows.Scan(
		&r.ID, &r.DatasetPath, &r.OutputPath, &r.Policy, &dryRun,
		&r.RecordsTotal, &r.RecordsChanged, &r.VibeVocab, &r.EnergyVocab,
		&anomalies, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.DryRun = dryRun != 0
	r.AnomaliesJSON = anomalies.String
	return r, nil
}
