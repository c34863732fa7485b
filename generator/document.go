package generator

import (
	"fmt"
	"slices"
	"strings"
)

// Document is a text file held as lines. Lines are split on "\n" only,
// so a file ending in a newline has an empty last line and String
// returns the original bytes unchanged.
type Document struct {
	lines []string
}

// ParseDocument splits text into lines.
func ParseDocument(text string) *Document {
	return &Document{lines: strings.Split(text, "\n")}
}

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	return slices.Clone(d.lines)
}

// Len is the number of lines, counting a trailing empty line.
func (d *Document) Len() int {
	return len(d.lines)
}

// Index returns the position of the first line equal to line, or -1.
func (d *Document) Index(line string) int {
	return slices.Index(d.lines, line)
}

// InsertAt inserts text as a new line at index i. Indexes past the end
// append; negative indexes are rejected.
func (d *Document) InsertAt(i int, text string) error {
	if i < 0 {
		return fmt.Errorf("%w: line index %d is negative", ErrInvalidArgument, i)
	}
	i = min(i, len(d.lines))
	d.lines = slices.Insert(d.lines, i, text)
	return nil
}

func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}
