package report

import (
	"io"
	"strings"

	"github.com/nao1215/langreport/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// NoDataMessage is rendered instead of a table when the total byte count is zero.
const NoDataMessage = "No detectable languages."

// tableHeader is the header row of the language table.
var tableHeader = []string{"Language", "Bytes", "Percent"}

// tableAlignment right-aligns the numeric columns.
var tableAlignment = []markdown.TableAlignment{
	markdown.AlignDefault,
	markdown.AlignRight,
	markdown.AlignRight,
}

// MarkdownRenderer renders a report as GitHub Flavored Markdown.
type MarkdownRenderer struct {
	// pieChart appends a mermaid pie chart below the table.
	pieChart bool

	// chartTitle is the title of the pie chart.
	chartTitle string
}

// RendererOption configures a MarkdownRenderer.
type RendererOption func(*MarkdownRenderer)

// WithPieChart enables or disables the mermaid pie chart.
func WithPieChart(enabled bool) RendererOption {
	return func(r *MarkdownRenderer) {
		r.pieChart = enabled
	}
}

// WithChartTitle sets the pie chart title.
func WithChartTitle(title string) RendererOption {
	return func(r *MarkdownRenderer) {
		r.chartTitle = title
	}
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(opts ...RendererOption) *MarkdownRenderer {
	r := &MarkdownRenderer{
		chartTitle: "Languages",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the block body for the report.
// An empty report renders as exactly NoDataMessage. Otherwise the body is a
// table with one row per language in report order. The result never has
// leading or trailing whitespace, so identical reports render identically.
func (r *MarkdownRenderer) Render(report *model.Report) (string, error) {
	if report == nil || report.IsEmpty() {
		return NoDataMessage, nil
	}

	var sb strings.Builder
	md := markdown.NewMarkdown(&sb)

	md.Table(markdown.TableSet{
		Header:    tableHeader,
		Rows:      tableRows(report),
		Alignment: tableAlignment,
	})

	if r.pieChart {
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, r.pieChartSource(report))
	}

	if err := md.Build(); err != nil {
		return "", err
	}
	// The library ends lines with CRLF on Windows; documents use LF.
	return strings.TrimSpace(strings.ReplaceAll(sb.String(), "\r\n", "\n")), nil
}

// tableRows converts report rows to table cells.
func tableRows(report *model.Report) [][]string {
	rows := make([][]string, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = []string{
			escapeCell(row.Language),
			FormatBytes(row.Bytes),
			FormatPercent(row.Percent),
		}
	}
	return rows
}

// escapeCell escapes pipes so a cell cannot split into extra columns.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// pieChartSource returns the mermaid source of a pie chart of byte counts.
func (r *MarkdownRenderer) pieChartSource(report *model.Report) string {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(r.chartTitle),
		piechart.WithShowData(true),
	)
	for _, row := range report.Rows {
		if row.Bytes > 0 {
			chart.LabelAndIntValue(row.Language, uint64(row.Bytes))
		}
	}
	return chart.String()
}
