package db

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/hpungsan/tagfold/internal/errors"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func testRun(id string, createdAt int64) *Run {
	return &Run{
		ID:             id,
		DatasetPath:    "/data/places.json",
		OutputPath:     "/data/places.json",
		Policy:         "drop",
		RecordsTotal:   42,
		RecordsChanged: 17,
		VibeVocab:      20,
		EnergyVocab:    20,
		CreatedAt:      createdAt,
	}
}

func TestInsertAndGetRun(t *testing.T) {
	database := setupTestDB(t)

	run := testRun("01RUN0001", 1700000000)
	run.AnomaliesJSON = `{"anomalies":[{"record":3,"code":"MALFORMED_RECORD"}]}`
	run.DryRun = true

	if err := InsertRun(database, run); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	got, err := GetRun(database, "01RUN0001")
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}

	if got.ID != run.ID {
		t.Errorf("ID = %q, want %q", got.ID, run.ID)
	}
	if got.DatasetPath != run.DatasetPath {
		t.Errorf("DatasetPath = %q, want %q", got.DatasetPath, run.DatasetPath)
	}
	if !got.DryRun {
		t.Error("DryRun = false, want true")
	}
	if got.RecordsTotal != 42 || got.RecordsChanged != 17 {
		t.Errorf("records = %d/%d, want 42/17", got.RecordsTotal, got.RecordsChanged)
	}
	if got.AnomaliesJSON != run.AnomaliesJSON {
		t.Errorf("AnomaliesJSON = %q, want %q", got.AnomaliesJSON, run.AnomaliesJSON)
	}
}

func TestInsertRun_EmptyAnomaliesStoredAsNull(t *testing.T) {
	database := setupTestDB(t)

	if err := InsertRun(database, testRun("01RUN0002", 1700000000)); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	var anomalies sql.NullString
	err := database.QueryRow("SELECT anomalies_json FROM runs WHERE id = ?", "01RUN0002").Scan(&anomalies)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if anomalies.Valid {
		t.Errorf("anomalies_json = %q, want NULL", anomalies.String)
	}

	got, err := GetRun(database, "01RUN0002")
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.AnomaliesJSON != "" {
		t.Errorf("AnomaliesJSON = %q, want empty", got.AnomaliesJSON)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	database := setupTestDB(t)

	_, err := GetRun(database, "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("GetRun should return NOT_FOUND, got: %v", err)
	}
}

func TestGetLatestRun(t *testing.T) {
	database := setupTestDB(t)

	_, err := GetLatestRun(database)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("GetLatestRun on empty table should return NOT_FOUND, got: %v", err)
	}

	for i, ts := range []int64{100, 300, 200} {
		if err := InsertRun(database, testRun(fmt.Sprintf("01RUN%04d", i), ts)); err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}

	latest, err := GetLatestRun(database)
	if err != nil {
		t.Fatalf("GetLatestRun() error = %v", err)
	}
	if latest.ID != "01RUN0001" {
		t.Errorf("latest = %q, want 01RUN0001 (created_at 300)", latest.ID)
	}
}

func TestListRuns(t *testing.T) {
	database := setupTestDB(t)

	for i := 0; i < 5; i++ {
		run := testRun(fmt.Sprintf("01RUN%04d", i), int64(1000+i))
		if err := InsertRun(database, run); err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}

	runs, err := ListRuns(database, 3)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}

	// Most recent first
	for i, want := range []string{"01RUN0004", "01RUN0003", "01RUN0002"} {
		if runs[i].ID != want {
			t.Errorf("runs[%d].ID = %q, want %q", i, runs[i].ID, want)
		}
	}
}

func TestListRuns_Empty(t *testing.T) {
	database := setupTestDB(t)

	runs, err := ListRuns(database, 10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}
