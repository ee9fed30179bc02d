package ops

import (
	"database/sql"

	"github.com/hpungsan/tagfold/internal/db"
	"github.com/hpungsan/tagfold/internal/errors"
)

// RunsInput contains parameters for the Runs operation.
type RunsInput struct {
	Limit int // default: DefaultRunsLimit, max: MaxRunsLimit
}

// RunsOutput contains the result of the Runs operation.
type RunsOutput struct {
	Runs  []*db.Run `json:"runs"`
	Count int       `json:"count"`
}

// Runs lists recorded consolidation runs, most recent first.
func Runs(database *sql.DB, input RunsInput) (*RunsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = DefaultRunsLimit
	}
	if limit < 0 || limit > MaxRunsLimit {
		return nil, errors.NewInvalidRequest("limit must be between 1 and 100")
	}

	runs, err := db.ListRuns(database, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []*db.Run{}
	}

	return &RunsOutput{Runs: runs, Count: len(runs)}, nil
}
