package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nao1215/langreport/internal/config"
	"github.com/nao1215/langreport/internal/github"
	"github.com/nao1215/langreport/internal/model"
	"github.com/nao1215/langreport/internal/pipeline"
	"github.com/nao1215/langreport/internal/report"
	"github.com/spf13/cobra"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	return newUpdateCmd(os.LookupEnv)
}

// newUpdateCmd creates the update command reading the environment through lookup.
func newUpdateCmd(lookup config.LookupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rewrite the language block of README.md",
		Long: `Update fetches the language byte counts of the repository and rewrites
the block between the start and end markers of the document.

If either marker is missing, a new block is appended to the end of the
document. The document is written only when its content changes.

Environment:
  GITHUB_REPOSITORY  repository as owner/name (required unless --repo is set)
  GITHUB_TOKEN       optional access token sent as a bearer token
  GITHUB_API_URL     optional API base URL (GitHub Enterprise Server)

Examples:
  # Inside GitHub Actions
  langreport update

  # Explicit repository and document
  langreport update -r octocat/hello-world -f docs/README.md

  # Show what would happen without writing
  langreport update --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdateCmd(cmd, lookup)
		},
	}

	addConnectionFlags(cmd)
	cmd.Flags().StringP("file", "f", config.DefaultDocumentPath,
		"Document whose marker block is rewritten")
	cmd.Flags().String("start-marker", config.DefaultStartMarker,
		"Line that opens the generated block")
	cmd.Flags().String("end-marker", config.DefaultEndMarker,
		"Line that closes the generated block")
	cmd.Flags().BoolP("dry-run", "n", false,
		"Compute the new document without writing it")

	return cmd
}

// runUpdateCmd executes the update command.
func runUpdateCmd(cmd *cobra.Command, lookup config.LookupFunc) error {
	cfg, err := buildConfig(cmd, lookup)
	if err != nil {
		return err
	}

	// Configuration problems, including a missing repository, stop the run
	// before any request is sent.
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)

	ctx, stop := signalContext(cmd)
	defer stop()

	client, err := github.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}
	renderer := report.NewMarkdownRenderer(report.WithPieChart(cfg.PieChart))

	run := model.NewRun(cfg.Repository)
	if err := pipeline.DefaultPipeline(client, renderer, cfg, logger).Execute(ctx, run); err != nil {
		return withFetchHint(err)
	}

	printUpdateResult(cmd.OutOrStdout(), cfg.DocumentPath, run)
	return nil
}

// printUpdateResult tells the user what happened to the document.
func printUpdateResult(w io.Writer, path string, run *model.Run) {
	switch {
	case run.Written:
		fmt.Fprintf(w, "%s updated.\n", path)
	case run.Changed:
		fmt.Fprintf(w, "%s would be updated (dry run, block %s).\n", path, run.Placement)
	default:
		fmt.Fprintf(w, "%s already up to date.\n", path)
	}
}
