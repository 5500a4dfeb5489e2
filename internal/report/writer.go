package report

import (
	"io"

	"github.com/nao1215/langreport/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// MarkdownWriter writes the rendered Markdown block body followed by a newline.
type MarkdownWriter struct {
	baseWriter
	renderer *MarkdownRenderer
}

// NewMarkdownWriter creates a MarkdownWriter that renders with renderer.
// A nil renderer uses NewMarkdownRenderer defaults.
func NewMarkdownWriter(output io.Writer, renderer *MarkdownRenderer) *MarkdownWriter {
	if renderer == nil {
		renderer = NewMarkdownRenderer()
	}
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		renderer:   renderer,
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	body, err := w.renderer.Render(report)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w.output, body+"\n")
}
