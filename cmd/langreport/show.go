package main

import (
	"fmt"
	"os"

	"github.com/nao1215/langreport/internal/config"
	"github.com/nao1215/langreport/internal/github"
	"github.com/nao1215/langreport/internal/model"
	"github.com/nao1215/langreport/internal/pipeline"
	"github.com/nao1215/langreport/internal/report"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	return newShowCmd(os.LookupEnv)
}

// newShowCmd creates the show command reading the environment through lookup.
func newShowCmd(lookup config.LookupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the language report without touching any file",
		Long: `Show fetches the language byte counts of the repository and prints the
report to stdout. By default it prints the Markdown block body exactly as
update would place it in the document.

Examples:
  # Markdown table
  langreport show -r octocat/hello-world

  # Column-aligned text
  langreport show --simple

  # JSON for scripting
  langreport show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShowCmd(cmd, lookup)
		},
	}

	addConnectionFlags(cmd)
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --simple)")
	cmd.Flags().BoolP("simple", "s", false,
		"Output column-aligned text (mutually exclusive with --json)")
	cmd.MarkFlagsMutuallyExclusive("json", "simple")

	return cmd
}

// runShowCmd executes the show command.
func runShowCmd(cmd *cobra.Command, lookup config.LookupFunc) error {
	cfg, err := buildConfig(cmd, lookup)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	simpleOut, err := cmd.Flags().GetBool("simple")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)

	ctx, stop := signalContext(cmd)
	defer stop()

	client, err := github.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	run := model.NewRun(cfg.Repository)
	if err := pipeline.FetchPipeline(client, logger).Execute(ctx, run); err != nil {
		return withFetchHint(err)
	}

	var w report.Writer
	switch {
	case jsonOut:
		w = report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint())
	case simpleOut:
		w = report.NewSimpleWriter(cmd.OutOrStdout())
	default:
		w = report.NewMarkdownWriter(cmd.OutOrStdout(),
			report.NewMarkdownRenderer(report.WithPieChart(cfg.PieChart)))
	}

	if _, err := w.Write(run.Report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
