package model

import "strings"

// Line represents a single line of typeset text on a page.
type Line struct {
	// Text is the assembled text content of the line
	Text string

	// BBox is the bounding box of the line in page coordinates
	BBox BBox

	// Baseline is the Y coordinate of the text baseline
	Baseline float64

	// FontSize is the dominant font size of the line in points
	FontSize float64

	// Bold indicates the line is set in a bold face
	Bold bool

	// Italic indicates the line is set in an italic face
	Italic bool

	// HeadingWeight indicates the producer tagged this line with a
	// heading-level weight (distinct from ordinary bold body text)
	HeadingWeight bool

	// GapColumns are the X centers of inter-word gaps wider than a normal
	// word space. Empty when word-level geometry was not available.
	GapColumns []float64

	// KindHint is the producer-declared block kind for this line, when the
	// geometry stream carried one; empty otherwise
	KindHint string

	// MarkedContinuation is true when the producer marked this line as the
	// continuation of a paragraph broken on the previous page
	MarkedContinuation bool

	// Page is the 1-based page number the line appears on
	Page int

	// Block is a weak back-reference to the owning block (lookup only;
	// pages own lines, blocks index them)
	Block *Block
}

// IsEmpty returns true if the line has no text content
func (l *Line) IsEmpty() bool {
	if l == nil {
		return true
	}
	return strings.TrimSpace(l.Text) == ""
}

// WordCount returns an approximate word count for the line
func (l *Line) WordCount() int {
	if l == nil || l.Text == "" {
		return 0
	}
	return len(strings.Fields(l.Text))
}

// Words returns the whitespace-separated words of the line
func (l *Line) Words() []string {
	if l == nil {
		return nil
	}
	return strings.Fields(l.Text)
}

// HasLargerFont returns true if this line's font is larger than the given size
func (l *Line) HasLargerFont(size float64) bool {
	if l == nil {
		return false
	}
	return l.FontSize > size
}
