package mcp

import (
	"context"
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/tagfold/internal/config"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"tags_fold": {
		def:     foldToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFold },
	},
	"tags_vocab": {
		def:     vocabToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleVocab },
	},
	"mapping_check": {
		def:     checkToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCheck },
	},
	"dataset_consolidate": {
		def:     consolidateToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleConsolidate },
	},
	"runs_list": {
		def:     runsToolDef(),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRuns },
	},
}

// foldToolDef defines the tags_fold tool.
func foldToolDef() mcp.Tool {
	return mcp.NewTool("tags_fold",
		mcp.WithDescription("Consolidate a list of raw tags into the canonical vocabulary of one dimension"),
		mcp.WithString("dimension",
			mcp.Required(),
			mcp.Description("Tag dimension: vibe or energy"),
		),
		mcp.WithArray("tags",
			mcp.Required(),
			mcp.Description("Raw tag strings to consolidate"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("policy",
			mcp.Description("Unmapped-tag policy: drop, keep, or report"),
		),
	)
}

// vocabToolDef defines the tags_vocab tool.
func vocabToolDef() mcp.Tool {
	return mcp.NewTool("tags_vocab",
		mcp.WithDescription("List the canonical tag vocabulary for one or both dimensions"),
		mcp.WithString("dimension",
			mcp.Description("Tag dimension: vibe or energy (omit for both)"),
		),
	)
}

// checkToolDef defines the mapping_check tool.
func checkToolDef() mcp.Tool {
	return mcp.NewTool("mapping_check",
		mcp.WithDescription("Validate a dimension mapping: alias conflicts and shadowed canonical tags"),
		mcp.WithString("dimension",
			mcp.Required(),
			mcp.Description("Tag dimension: vibe or energy"),
		),
		mcp.WithString("path",
			mcp.Description("Mapping file to check (defaults to the configured/builtin mapping)"),
		),
	)
}

// consolidateToolDef defines the dataset_consolidate tool.
func consolidateToolDef() mcp.Tool {
	return mcp.NewTool("dataset_consolidate",
		mcp.WithDescription("Consolidate the vibe and energy tags of every record in a JSON dataset file"),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("Path to the JSON array of place records"),
		),
		mcp.WithString("output_path",
			mcp.Description("Destination path (defaults to rewriting the input in place)"),
		),
		mcp.WithString("policy",
			mcp.Description("Unmapped-tag policy: drop, keep, or report"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Process and report without writing the dataset"),
		),
	)
}

// runsToolDef defines the runs_list tool.
func runsToolDef() mcp.Tool {
	return mcp.NewTool("runs_list",
		mcp.WithDescription("List recorded consolidation runs, most recent first"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum runs to return (default 20, max 100)"),
		),
	)
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with tagfold tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(db *sql.DB, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"tagfold",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(db, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(db *sql.DB, cfg *config.Config, version string) error {
	s := NewServer(db, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
