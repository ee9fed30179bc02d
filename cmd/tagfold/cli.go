package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/tagfold/internal/config"
	"github.com/hpungsan/tagfold/internal/errors"
	"github.com/hpungsan/tagfold/internal/ops"
	"github.com/hpungsan/tagfold/internal/taxonomy"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "tagfold",
		Usage:   "Canonical tag consolidation for place datasets",
		Version: Version,
		Commands: []*cli.Command{
			consolidateCmd(db, cfg),
			foldCmd(cfg),
			vocabCmd(cfg),
			checkCmd(cfg),
			runsCmd(db),
			reportCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// consolidateCmd creates the consolidate command.
func consolidateCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "consolidate",
		Usage:     "Rewrite every record's vibe and energy tags in a JSON dataset",
		ArgsUsage: "<dataset.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Destination path (default: rewrite input in place)"},
			&cli.StringFlag{Name: "policy", Aliases: []string{"p"}, Usage: "Unmapped-tag policy: drop|keep|report"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Process and report without writing"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("dataset path is required"))
			}

			input := ops.ConsolidateInput{
				InputPath:  c.Args().First(),
				OutputPath: c.String("output"),
				Policy:     taxonomy.Policy(c.String("policy")),
				DryRun:     c.Bool("dry-run"),
			}

			output, err := ops.Consolidate(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// foldCmd creates the fold command.
func foldCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fold",
		Usage:     "Consolidate a list of raw tags in one dimension",
		ArgsUsage: "<tag> [tag...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dimension", Aliases: []string{"d"}, Value: "vibe", Usage: "Tag dimension: vibe|energy"},
			&cli.StringFlag{Name: "policy", Aliases: []string{"p"}, Usage: "Unmapped-tag policy: drop|keep|report"},
		},
		Action: func(c *cli.Context) error {
			input := ops.FoldInput{
				Dimension: c.String("dimension"),
				Tags:      c.Args().Slice(),
				Policy:    taxonomy.Policy(c.String("policy")),
			}

			output, err := ops.Fold(cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// vocabCmd creates the vocab command.
func vocabCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "vocab",
		Usage: "List the canonical tag vocabularies",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dimension", Aliases: []string{"d"}, Usage: "Tag dimension: vibe|energy (default: both)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Vocab(cfg, ops.VocabInput{
				Dimension: c.String("dimension"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// checkCmd creates the check command.
func checkCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate a dimension mapping for alias conflicts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dimension", Aliases: []string{"d"}, Value: "vibe", Usage: "Tag dimension: vibe|energy"},
			&cli.StringFlag{Name: "mapping", Aliases: []string{"m"}, Usage: "Mapping file to check (default: configured/builtin)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Check(cfg, ops.CheckInput{
				Dimension: c.String("dimension"),
				Path:      c.String("mapping"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// runsCmd creates the runs command.
func runsCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "List recorded consolidation runs",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultRunsLimit, Usage: "Maximum runs to return"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Runs(db, ops.RunsInput{
				Limit: c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// reportCmd creates the report command.
func reportCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Render a summary of a consolidation run",
		ArgsUsage: "[run-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: ops.ReportFormatMarkdown, Usage: "Output format: markdown|html"},
			&cli.StringFlag{Name: "path", Usage: "Write the report to a file instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ReportInput{
				Format: c.String("format"),
			}
			if c.NArg() > 0 {
				input.RunID = c.Args().First()
			}

			output, err := ops.Report(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			if path := c.String("path"); path != "" {
				if err := os.WriteFile(path, []byte(output.Content), 0644); err != nil {
					return outputError(errors.NewInternal(err))
				}
				return outputJSON(map[string]any{"run_id": output.RunID, "format": output.Format, "path": path})
			}

			fmt.Fprint(os.Stdout, output.Content)
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if tErr, ok := err.(*errors.TagfoldError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", tErr.Code, tErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
