// Package report renders language reports.
//
// MarkdownRenderer produces the block body that is written between the
// document markers. The writers output a report for terminal display:
//   - SimpleWriter: aligned plain text
//   - MarkdownWriter: the same Markdown the document receives
//   - JSONWriter: structured JSON for scripting
package report
