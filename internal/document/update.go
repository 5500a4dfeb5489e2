package document

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/langreport/internal/model"
)

// Result describes the outcome of Update.
type Result struct {
	// Path is the document path.
	Path string

	// Placement records whether the block was replaced or appended.
	Placement model.Placement

	// Changed is true when the patched content differs from the file content.
	Changed bool

	// Written is true when the file was rewritten.
	Written bool
}

// updateOptions holds optional settings for Update.
type updateOptions struct {
	dryRun bool
	logger *slog.Logger
}

// UpdateOption configures Update.
type UpdateOption func(*updateOptions)

// WithDryRun computes the result without writing the file.
func WithDryRun(dryRun bool) UpdateOption {
	return func(o *updateOptions) {
		o.dryRun = dryRun
	}
}

// WithLogger sets a custom logger for Update.
func WithLogger(logger *slog.Logger) UpdateOption {
	return func(o *updateOptions) {
		o.logger = logger
	}
}

// Update patches the block of the file at path with body.
// The file is rewritten, keeping its permissions, only if the patched
// content differs from the current content and dry run is off.
// I/O errors are returned wrapped; a missing file is an error.
func Update(path, body string, markers Markers, opts ...UpdateOption) (Result, error) {
	o := &updateOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	result := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("failed to stat document: %w", err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided document path is intentional
	if err != nil {
		return result, fmt.Errorf("failed to read document: %w", err)
	}

	content := string(data)
	patched, placement := Patch(content, body, markers)
	result.Placement = placement
	result.Changed = patched != content

	o.logger.Debug("document patched",
		"path", path,
		"placement", placement.String(),
		"changed", result.Changed,
	)

	if !result.Changed || o.dryRun {
		return result, nil
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("failed to write document: %w", err)
	}
	result.Written = true

	return result, nil
}
