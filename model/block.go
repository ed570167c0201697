package model

import "strings"

// BlockKind represents the kind of a text block
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindListItem
	KindCaption
)

// String returns a string representation of the block kind
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	case KindCaption:
		return "caption"
	default:
		return "paragraph"
	}
}

// Block represents one logical unit of text: a paragraph, heading, list item
// or caption. A block does not own its lines; pages do. The block is a
// derived index over page-owned lines, in logical reading order. A block
// spans at most two adjacent pages (a single page-break reflow).
type Block struct {
	// Kind is the block kind
	Kind BlockKind

	// Lines are the lines of the block in logical order. Lines on the
	// first page precede lines on the continuation page.
	Lines []*Line

	// Index is the block's position in document reading order (0-based)
	Index int

	// FirstPage is the 1-based page number of the block's first line
	FirstPage int

	// LastPage is the 1-based page number of the block's last line.
	// Equal to FirstPage for blocks that do not cross a page break.
	LastPage int

	// ContinuesFromPrev is true when the block's opening lines sit on the
	// previous page
	ContinuesFromPrev bool

	// ContinuesToNext is true when the block's closing lines sit on the
	// next page
	ContinuesToNext bool
}

// LineCount returns the number of lines in the block
func (b *Block) LineCount() int {
	if b == nil {
		return 0
	}
	return len(b.Lines)
}

// LinesOn returns the block's lines that sit on the given page
func (b *Block) LinesOn(page int) []*Line {
	if b == nil {
		return nil
	}
	var out []*Line
	for _, ln := range b.Lines {
		if ln.Page == page {
			out = append(out, ln)
		}
	}
	return out
}

// Spans returns true if the block touches the given page
func (b *Block) Spans(page int) bool {
	if b == nil {
		return false
	}
	return page >= b.FirstPage && page <= b.LastPage
}

// BBoxOn returns the union bounding box of the block's lines on one page
func (b *Block) BBoxOn(page int) BBox {
	lines := b.LinesOn(page)
	if len(lines) == 0 {
		return BBox{}
	}
	box := lines[0].BBox
	for _, ln := range lines[1:] {
		box = box.Union(ln.BBox)
	}
	return box
}

// Text returns the block's text with lines joined by newlines
func (b *Block) Text() string {
	if b == nil {
		return ""
	}
	parts := make([]string, 0, len(b.Lines))
	for _, ln := range b.Lines {
		parts = append(parts, ln.Text)
	}
	return strings.Join(parts, "\n")
}

// LastLine returns the final line of the block, or nil for an empty block
func (b *Block) LastLine() *Line {
	if b == nil || len(b.Lines) == 0 {
		return nil
	}
	return b.Lines[len(b.Lines)-1]
}

// FirstLine returns the opening line of the block, or nil for an empty block
func (b *Block) FirstLine() *Line {
	if b == nil || len(b.Lines) == 0 {
		return nil
	}
	return b.Lines[0]
}

// AverageFontSize returns the average font size across the block's lines
func (b *Block) AverageFontSize() float64 {
	if b == nil || len(b.Lines) == 0 {
		return 0
	}
	total := 0.0
	for _, ln := range b.Lines {
		total += ln.FontSize
	}
	return total / float64(len(b.Lines))
}
