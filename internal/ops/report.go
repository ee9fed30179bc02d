package ops

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/db"
	"github.com/hpungsan/tagfold/internal/errors"
)

// Report formats.
const (
	ReportFormatMarkdown = "markdown"
	ReportFormatHTML     = "html"
)

// ReportInput contains parameters for the Report operation.
type ReportInput struct {
	RunID  string // optional: defaults to the latest run
	Format string // "markdown" (default) or "html"
}

// ReportOutput contains the result of the Report operation.
type ReportOutput struct {
	RunID   string `json:"run_id"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

// runAnomalies mirrors the payload stored in the runs table.
type runAnomalies struct {
	Anomalies []Anomaly       `json:"anomalies,omitempty"`
	Unmapped  []UnmappedCount `json:"unmapped,omitempty"`
}

// Report renders a human-readable summary of one consolidation run: the
// record counts, the two canonical vocabularies with ordinals, and any
// anomalies collected during the pass.
func Report(database *sql.DB, cfg *config.Config, input ReportInput) (*ReportOutput, error) {
	format := input.Format
	if format == "" {
		format = ReportFormatMarkdown
	}
	if format != ReportFormatMarkdown && format != ReportFormatHTML {
		return nil, errors.NewInvalidRequest("format must be one of: markdown, html")
	}

	var (
		run *db.Run
		err error
	)
	if input.RunID != "" {
		run, err = db.GetRun(database, input.RunID)
	} else {
		run, err = db.GetLatestRun(database)
	}
	if err != nil {
		return nil, err
	}

	vocab, err := Vocab(cfg, VocabInput{})
	if err != nil {
		return nil, err
	}

	md := renderMarkdown(run, vocab)

	content := md
	if format == ReportFormatHTML {
		content, err = renderHTML(md)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	return &ReportOutput{
		RunID:   run.ID,
		Format:  format,
		Content: content,
	}, nil
}

// renderMarkdown builds the Markdown report body.
func renderMarkdown(run *db.Run, vocab *VocabOutput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Consolidation run %s\n\n", run.ID)
	fmt.Fprintf(&b, "- Dataset: `%s`\n", run.DatasetPath)
	if run.OutputPath != run.DatasetPath {
		fmt.Fprintf(&b, "- Output: `%s`\n", run.OutputPath)
	}
	fmt.Fprintf(&b, "- Policy: %s\n", run.Policy)
	if run.DryRun {
		fmt.Fprintf(&b, "- Dry run: yes\n")
	}
	fmt.Fprintf(&b, "- Records: %d (%d updated)\n", run.RecordsTotal, run.RecordsChanged)
	fmt.Fprintf(&b, "- Vocabulary: %d vibe tags, %d energy tags\n", run.VibeVocab, run.EnergyVocab)
	fmt.Fprintf(&b, "- Recorded: %s\n", time.Unix(run.CreatedAt, 0).UTC().Format(time.RFC3339))

	for _, dim := range vocab.Dimensions {
		fmt.Fprintf(&b, "\n## %s tags\n\n", dim.Dimension)
		for _, entry := range dim.Tags {
			fmt.Fprintf(&b, "%d. %s\n", entry.Ordinal, entry.Tag)
		}
	}

	if run.AnomaliesJSON != "" {
		var payload runAnomalies
		if err := json.Unmarshal([]byte(run.AnomaliesJSON), &payload); err == nil {
			writeAnomalies(&b, payload)
		}
	}

	return b.String()
}

// writeAnomalies appends the anomaly and unmapped-tag sections.
func writeAnomalies(b *strings.Builder, payload runAnomalies) {
	if len(payload.Anomalies) > 0 {
		fmt.Fprintf(b, "\n## Anomalies\n\n")
		fmt.Fprintf(b, "| Record | Code | Field | Message |\n")
		fmt.Fprintf(b, "| --- | --- | --- | --- |\n")
		for _, a := range payload.Anomalies {
			fmt.Fprintf(b, "| %d | %s | %s | %s |\n", a.Record, a.Code, a.Field, a.Message)
		}
	}

	if len(payload.Unmapped) > 0 {
		fmt.Fprintf(b, "\n## Unrecognized tags\n\n")
		fmt.Fprintf(b, "| Dimension | Tag | Count |\n")
		fmt.Fprintf(b, "| --- | --- | --- |\n")
		for _, u := range payload.Unmapped {
			fmt.Fprintf(b, "| %s | %s | %d |\n", u.Dimension, u.Tag, u.Count)
		}
	}
}

// renderHTML converts the Markdown report to HTML (GFM tables enabled).
func renderHTML(md string) (string, error) {
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := gm.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
