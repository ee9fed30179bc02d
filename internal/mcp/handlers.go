package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/errors"
	"github.com/hpungsan/tagfold/internal/ops"
	"github.com/hpungsan/tagfold/internal/taxonomy"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// Request types for each tool

// FoldRequest represents the arguments for tags_fold.
type FoldRequest struct {
	Dimension string   `json:"dimension"`
	Tags      []string `json:"tags"`
	Policy    string   `json:"policy,omitempty"`
}

// VocabRequest represents the arguments for tags_vocab.
type VocabRequest struct {
	Dimension string `json:"dimension,omitempty"`
}

// CheckRequest represents the arguments for mapping_check.
type CheckRequest struct {
	Dimension string `json:"dimension"`
	Path      string `json:"path,omitempty"`
}

// ConsolidateRequest represents the arguments for dataset_consolidate.
type ConsolidateRequest struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path,omitempty"`
	Policy     string `json:"policy,omitempty"`
	DryRun     bool   `json:"dry_run,omitempty"`
}

// RunsRequest represents the arguments for runs_list.
type RunsRequest struct {
	Limit int `json:"limit,omitempty"`
}

// Handler implementations

// HandleFold handles the tags_fold tool call.
func (h *Handlers) HandleFold(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FoldRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fold(h.cfg, ops.FoldInput{
		Dimension: input.Dimension,
		Tags:      input.Tags,
		Policy:    taxonomy.Policy(input.Policy),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleVocab handles the tags_vocab tool call.
func (h *Handlers) HandleVocab(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[VocabRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Vocab(h.cfg, ops.VocabInput{Dimension: input.Dimension})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCheck handles the mapping_check tool call.
func (h *Handlers) HandleCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CheckRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Check(h.cfg, ops.CheckInput{
		Dimension: input.Dimension,
		Path:      input.Path,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleConsolidate handles the dataset_consolidate tool call.
func (h *Handlers) HandleConsolidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ConsolidateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Consolidate(h.db, h.cfg, ops.ConsolidateInput{
		InputPath:  input.InputPath,
		OutputPath: input.OutputPath,
		Policy:     taxonomy.Policy(input.Policy),
		DryRun:     input.DryRun,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRuns handles the runs_list tool call.
func (h *Handlers) HandleRuns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RunsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Runs(h.db, ops.RunsInput{Limit: input.Limit})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if tErr, ok := err.(*errors.TagfoldError); ok {
		errorObj := map[string]any{
			"code":    tErr.Code,
			"message": tErr.Message,
			"status":  tErr.Status,
		}
		if tErr.Code != errors.ErrInternal && tErr.Details != nil {
			errorObj["details"] = tErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
