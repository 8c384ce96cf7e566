// Package readme locates the managed regions of a markdown document and rewrites their contents.
package readme

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Marker lines delimiting the managed regions. They are matched after trimming surrounding whitespace.
const (
	StartMarker         = "<!--RECENT_ACTIVITY:start-->"
	EndMarker           = "<!--RECENT_ACTIVITY:end-->"
	LastUpdateMarker    = "<!--RECENT_ACTIVITY:last_update-->"
	LastUpdateEndMarker = "<!--RECENT_ACTIVITY:last_update_end-->"
)

var (
	// ErrStartMarkerNotFound is returned when the document has no activity start marker
	ErrStartMarkerNotFound = fmt.Errorf("couldn't find the %s comment", StartMarker)
	// ErrMisplacedEndMarker is returned when an end marker only appears before its start marker
	ErrMisplacedEndMarker = errors.New("end marker appears before its start marker")
)

// Document is a text document held as lines split on "\n"
type Document struct {
	lines []string
}

// Parse splits content into a Document. Joining it back with String yields the same bytes.
func Parse(content string) *Document {
	return &Document{lines: strings.Split(content, "\n")}
}

// ReadFile loads a Document from disk
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from user configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("couldn't find the file named %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// WriteFile overwrites path with the document contents
func (d *Document) WriteFile(path string) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(d.String()), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// String joins the lines back into text
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// Lines returns a copy of the document lines
func (d *Document) Lines() []string {
	return slices.Clone(d.lines)
}

// Clone returns an independent copy of the document
func (d *Document) Clone() *Document {
	return &Document{lines: slices.Clone(d.lines)}
}

// Equal reports whether both documents hold the same lines
func (d *Document) Equal(other *Document) bool {
	return slices.Equal(d.lines, other.lines)
}

// index returns the first line at or after from whose trimmed text equals marker, or -1
func (d *Document) index(marker string, from int) int {
	for i := max(from, 0); i < len(d.lines); i++ {
		if strings.TrimSpace(d.lines[i]) == marker {
			return i
		}
	}
	return -1
}

// insert places lines before position at
func (d *Document) insert(at int, lines ...string) {
	d.lines = slices.Insert(d.lines, at, lines...)
}

// replace swaps the lines in [from, to) for lines
func (d *Document) replace(from, to int, lines ...string) {
	d.lines = slices.Replace(d.lines, from, to, lines...)
}
