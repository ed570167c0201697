package model

// Page represents a single fixed-size page of a typeset document
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the physical page dimensions in points
	Width  float64
	Height float64

	// ContentBox is the page area inside the margins. Content is expected
	// to sit within it; trailing whitespace is measured against its bottom.
	ContentBox BBox

	// Lines are the text lines on the page, ordered top to bottom by
	// baseline Y
	Lines []Line

	// Tables are the tables with a span on this page
	Tables []*Table

	// Images are the images placed on this page
	Images []Image
}

// NewPage creates a new page with given dimensions and a full-page content box
func NewPage(width, height float64) *Page {
	return &Page{
		Width:      width,
		Height:     height,
		ContentBox: BBox{X: 0, Y: 0, Width: width, Height: height},
	}
}

// IsEmpty returns true when the page carries no lines, tables or images
func (p *Page) IsEmpty() bool {
	if p == nil {
		return true
	}
	return len(p.Lines) == 0 && len(p.Tables) == 0 && len(p.Images) == 0
}

// LastContentBottom returns the bottom Y of the lowest content bounding box
// on the page, and false when the page has no content.
func (p *Page) LastContentBottom() (float64, bool) {
	if p == nil {
		return 0, false
	}
	bottom := 0.0
	found := false
	for i := range p.Lines {
		if b := p.Lines[i].BBox.Bottom(); !found || b > bottom {
			bottom = b
			found = true
		}
	}
	for _, t := range p.Tables {
		if span := t.SpanOn(p.Number); span != nil {
			if b := span.BBox.Bottom(); !found || b > bottom {
				bottom = b
				found = true
			}
		}
	}
	for i := range p.Images {
		if b := p.Images[i].BBox.Bottom(); !found || b > bottom {
			bottom = b
			found = true
		}
	}
	return bottom, found
}

// ExtractText concatenates the text of all lines on the page
func (p *Page) ExtractText() string {
	if p == nil {
		return ""
	}
	var text string
	for i := range p.Lines {
		text += p.Lines[i].Text + "\n"
	}
	return text
}
