package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/langreport/internal/config"
	"github.com/nao1215/langreport/internal/document"
	"github.com/nao1215/langreport/internal/model"
)

// ErrNoReport is returned when the render step runs before a report exists.
var ErrNoReport = errors.New("no report to render: fetch step did not run")

// Fetcher fetches the language tally of a repository.
// *github.Client implements it.
type Fetcher interface {
	Languages(ctx context.Context, repo config.Repository) (model.Tally, error)
}

// Renderer renders a report into a block body.
// *report.MarkdownRenderer implements it.
type Renderer interface {
	Render(report *model.Report) (string, error)
}

// FetchStep fetches the tally and builds the sorted report.
type FetchStep struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewFetchStep creates a FetchStep.
func NewFetchStep(fetcher Fetcher, logger *slog.Logger) *FetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do parses the run's repository, fetches its tally and builds the report.
// A malformed repository fails with *config.ConfigurationError before any
// network call is made.
func (s *FetchStep) Do(ctx context.Context, run *model.Run) error {
	repo, err := config.ParseRepository(run.Repository)
	if err != nil {
		return err
	}

	tally, err := s.fetcher.Languages(ctx, repo)
	if err != nil {
		return err
	}

	run.Repository = repo.String()
	run.Tally = tally
	run.Report = model.NewReport(run.Repository, tally)

	s.logger.Info("languages fetched",
		"repository", run.Repository,
		"languages", len(tally),
		"totalBytes", run.Report.TotalBytes,
	)
	return nil
}

// RenderStep renders the report into the block body.
type RenderStep struct {
	renderer Renderer
}

// NewRenderStep creates a RenderStep.
func NewRenderStep(renderer Renderer) *RenderStep {
	return &RenderStep{renderer: renderer}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders run.Report into run.Body.
func (s *RenderStep) Do(_ context.Context, run *model.Run) error {
	if run.Report == nil {
		return ErrNoReport
	}

	body, err := s.renderer.Render(run.Report)
	if err != nil {
		return err
	}
	run.Body = body
	return nil
}

// PatchStep places the rendered block in the document.
type PatchStep struct {
	path    string
	markers document.Markers
	opts    []document.UpdateOption
}

// NewPatchStep creates a PatchStep for the document at path.
func NewPatchStep(path string, markers document.Markers, opts ...document.UpdateOption) *PatchStep {
	return &PatchStep{path: path, markers: markers, opts: opts}
}

// Name returns the step name.
func (s *PatchStep) Name() string {
	return "patch"
}

// Do updates the document with run.Body and records the outcome in run.
func (s *PatchStep) Do(_ context.Context, run *model.Run) error {
	result, err := document.Update(s.path, run.Body, s.markers, s.opts...)
	if err != nil {
		return err
	}

	run.DocumentPath = result.Path
	run.Placement = result.Placement
	run.Changed = result.Changed
	run.Written = result.Written
	return nil
}

// FetchPipeline creates a pipeline that only fetches and builds the report.
func FetchPipeline(fetcher Fetcher, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	p := New(WithLogger(logger))
	p.AddStep(NewFetchStep(fetcher, logger))
	return p
}

// DefaultPipeline creates the full fetch, render and patch pipeline.
func DefaultPipeline(fetcher Fetcher, renderer Renderer, cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	markers := document.Markers{Start: cfg.StartMarker, End: cfg.EndMarker}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewFetchStep(fetcher, logger),
		NewRenderStep(renderer),
		NewPatchStep(cfg.DocumentPath, markers,
			document.WithDryRun(cfg.DryRun),
			document.WithLogger(logger),
		),
	)
	return p
}
