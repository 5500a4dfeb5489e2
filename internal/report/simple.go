package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nao1215/langreport/internal/model"
)

// SimpleWriter outputs a human-readable, column-aligned text report.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&sb, "LANGUAGES: %s\n", report.Repository)
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	if report.IsEmpty() {
		sb.WriteString(NoDataMessage + "\n")
		return io.WriteString(w.output, sb.String())
	}

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Language\tBytes\tPercent\t")
	for _, row := range report.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", row.Language, FormatBytes(row.Bytes), FormatPercent(row.Percent))
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	sb.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&sb, "Total: %s bytes in %d languages\n", FormatBytes(report.TotalBytes), len(report.Rows))

	return io.WriteString(w.output, sb.String())
}
