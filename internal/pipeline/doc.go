// Package pipeline runs the language report generator as a sequence of steps.
//
// A run goes through three steps, each filling in part of a model.Run:
//   - fetch: ask the API for the language tally and build the report
//   - render: turn the report into the block body
//   - patch: place the block in the document and write it if it changed
//
// Steps execute one after another on the calling goroutine. The first
// failing step stops the run and its error is returned unchanged, so callers
// can match configuration and fetch errors with errors.As.
package pipeline
