package model

import "sort"

// Document represents a complete paginated document with derived block
// structure. It is immutable once ingestion completes; detectors only read it.
type Document struct {
	// Source identifies the analyzed document (file path or producer id)
	Source string

	// Pages are the document's pages in order. Pages own lines, tables
	// and images.
	Pages []*Page

	// Blocks is the derived block index over all pages, in reading order.
	// A block spanning a page break appears exactly once.
	Blocks []*Block
}

// NewDocument creates a new empty document
func NewDocument(source string) *Document {
	return &Document{Source: source}
}

// AddPage appends a page and assigns its 1-based number
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// AllBlocks returns every block in reading order. A spanning block is
// reported once, not once per page it touches.
func (d *Document) AllBlocks() []*Block {
	return d.Blocks
}

// BlocksSpanning returns the blocks touching the given page, in top-to-bottom
// reading order on that page.
func (d *Document) BlocksSpanning(page int) []*Block {
	var out []*Block
	for _, b := range d.Blocks {
		if b.Spans(page) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return blockTopOn(out[i], page) < blockTopOn(out[j], page)
	})
	return out
}

// blockTopOn returns the top Y of a block's lines on a page. A block that
// merely continues onto the page from above sorts by its first line there.
func blockTopOn(b *Block, page int) float64 {
	lines := b.LinesOn(page)
	if len(lines) == 0 {
		return 0
	}
	top := lines[0].BBox.Top()
	for _, ln := range lines[1:] {
		if t := ln.BBox.Top(); t < top {
			top = t
		}
	}
	return top
}

// TablesSpanning returns the tables with a span on the given page
func (d *Document) TablesSpanning(page int) []*Table {
	p := d.GetPage(page)
	if p == nil {
		return nil
	}
	return p.Tables
}

// AllTables returns every table in the document, reported once each
func (d *Document) AllTables() []*Table {
	var out []*Table
	seen := make(map[*Table]bool)
	for _, p := range d.Pages {
		for _, t := range p.Tables {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// ImagesOn returns the images placed on the given page
func (d *Document) ImagesOn(page int) []Image {
	p := d.GetPage(page)
	if p == nil {
		return nil
	}
	return p.Images
}

// AllImages returns every image in the document in page order
func (d *Document) AllImages() []Image {
	var out []Image
	for _, p := range d.Pages {
		out = append(out, p.Images...)
	}
	return out
}

// ExtractText returns all text content concatenated in page order
func (d *Document) ExtractText() string {
	var text string
	for _, page := range d.Pages {
		text += page.ExtractText() + "\n"
	}
	return text
}
