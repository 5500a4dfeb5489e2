package model

// Placement describes where the generated block ended up in the document.
type Placement int

const (
	// PlacementNone means the document has not been patched yet.
	PlacementNone Placement = iota

	// PlacementReplaced means an existing marker block was replaced.
	PlacementReplaced

	// PlacementAppended means the markers were missing and a new block was
	// appended to the end of the document.
	PlacementAppended
)

// String returns a human-readable name for the placement.
func (p Placement) String() string {
	switch p {
	case PlacementNone:
		return "none"
	case PlacementReplaced:
		return "replaced"
	case PlacementAppended:
		return "appended"
	default:
		return "unknown"
	}
}

// Run carries the state of one generator run from step to step.
// Each pipeline step fills in the fields it is responsible for.
type Run struct {
	// Repository is the "owner/name" identifier being reported on.
	Repository string

	// Tally is the raw language tally fetched from the platform.
	Tally Tally

	// Report is the sorted tally with percentages.
	Report *Report

	// Body is the rendered content placed between the document markers.
	Body string

	// DocumentPath is the path of the document that was patched.
	DocumentPath string

	// Placement records whether the block was replaced or appended.
	Placement Placement

	// Changed is true when the document content differs from what was on disk.
	Changed bool

	// Written is true when the new content was actually written to disk.
	// It stays false for unchanged documents and for dry runs.
	Written bool

	// Steps lists the names of the pipeline steps that completed.
	Steps []string
}

// NewRun creates a Run for the given repository.
func NewRun(repository string) *Run {
	return &Run{
		Repository: repository,
		Steps:      make([]string, 0),
	}
}
