package readme

import (
	"fmt"
	"slices"
	"strings"
)

// Region marks the activity section of a document. End is -1 when the end
// marker has not been written yet.
type Region struct {
	Start int
	End   int
}

// HasEnd reports whether the end marker exists
func (r Region) HasEnd() bool {
	return r.End >= 0
}

// Locate finds the activity region. Only the first start marker counts, and the
// end marker is searched for after it. An end marker found only above the start
// marker is an error, so a second one is never written.
func (d *Document) Locate() (Region, error) {
	start := d.index(StartMarker, 0)
	if start == -1 {
		return Region{}, ErrStartMarkerNotFound
	}
	end, err := d.endAfter(EndMarker, start)
	if err != nil {
		return Region{}, err
	}
	return Region{Start: start, End: end}, nil
}

// endAfter returns the index of marker after start, or -1 when it is absent
func (d *Document) endAfter(marker string, start int) (int, error) {
	end := d.index(marker, start+1)
	if end == -1 && d.index(marker, 0) != -1 {
		return -1, fmt.Errorf("%w: %s", ErrMisplacedEndMarker, marker)
	}
	return end, nil
}

// Activity returns the lines currently between the activity markers
func (d *Document) Activity() ([]string, error) {
	r, err := d.Locate()
	if err != nil {
		return nil, err
	}
	if !r.HasEnd() {
		return nil, nil
	}
	return slices.Clone(d.lines[r.Start+1 : r.End]), nil
}

// NumberLines prefixes each line with its 1-based position, "1. ", "2. ", ...
func NumberLines(lines []string) []string {
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, line)
	}
	return numbered
}

// SpliceActivity writes lines, numbered, into the activity region and reports
// whether the document changed.
//
// Without an end marker the lines and the end marker are inserted right after
// the start marker. An empty region is filled. A populated region is rewritten
// in place: each non-blank line takes the next entry, blank lines stay where
// they are, leftover old entries are dropped and surplus new entries follow
// the last rewritten line.
func (d *Document) SpliceActivity(lines []string) (bool, error) {
	r, err := d.Locate()
	if err != nil {
		return false, err
	}

	numbered := NumberLines(lines)

	if !r.HasEnd() {
		d.insert(r.Start+1, append(numbered, EndMarker)...)
		return true, nil
	}

	old := d.lines[r.Start+1 : r.End]
	if strings.TrimSpace(strings.Join(old, "\n")) == strings.TrimSpace(strings.Join(numbered, "\n")) {
		return false, nil
	}

	if len(old) == 0 {
		d.insert(r.Start+1, numbered...)
		return len(numbered) > 0, nil
	}

	updated := rewriteInPlace(old, numbered)
	if slices.Equal(old, updated) {
		return false, nil
	}
	d.replace(r.Start+1, r.End, updated...)
	return true, nil
}

// rewriteInPlace overwrites the non-blank lines of old with numbered
func rewriteInPlace(old, numbered []string) []string {
	updated := make([]string, 0, max(len(old), len(numbered)))
	count := 0
	lastContent := -1

	for _, line := range old {
		if strings.TrimSpace(line) == "" {
			updated = append(updated, line)
			continue
		}
		if count == len(numbered) {
			continue
		}
		updated = append(updated, numbered[count])
		lastContent = len(updated) - 1
		count++
	}

	if count < len(numbered) {
		updated = slices.Insert(updated, lastContent+1, numbered[count:]...)
	}
	return updated
}
