package document

import (
	"strings"

	"github.com/nao1215/langreport/internal/model"
)

// Markers delimits the generated block.
type Markers struct {
	Start string
	End   string
}

// Block returns the marker-wrapped block for body:
// the start marker, a blank line, body, a blank line, and the end marker.
func Block(markers Markers, body string) string {
	return markers.Start + "\n\n" + body + "\n\n" + markers.End
}

// Locate returns the byte offsets of the existing block in content.
// start is the index of the start marker and end is the index just past
// the end marker. The end marker is searched only after the start marker.
// ok is false when no complete block exists.
func Locate(content string, markers Markers) (start, end int, ok bool) {
	start = strings.Index(content, markers.Start)
	if start < 0 {
		return 0, 0, false
	}

	afterStart := start + len(markers.Start)
	rel := strings.Index(content[afterStart:], markers.End)
	if rel < 0 {
		return 0, 0, false
	}
	return start, afterStart + rel + len(markers.End), true
}

// Patch returns content with the block for body in place.
// Text before the start marker and after the end marker is preserved
// byte for byte. Without a complete block, the block is appended after
// two newlines and followed by a trailing newline.
func Patch(content, body string, markers Markers) (string, model.Placement) {
	block := Block(markers, body)

	if start, end, ok := Locate(content, markers); ok {
		return content[:start] + block + content[end:], model.PlacementReplaced
	}
	return content + "\n\n" + block + "\n", model.PlacementAppended
}
