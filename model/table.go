package model

// TableSpan is the portion of a table that sits on one page.
type TableSpan struct {
	// Page is the 1-based page number of this span
	Page int

	// BBox is the bounding region of the table on that page
	BBox BBox

	// Rows is the number of body rows rendered within this span
	Rows int
}

// Table represents a typeset table, possibly split across adjacent pages.
type Table struct {
	// Spans are the per-page regions of the table, in page order
	Spans []TableSpan

	// Columns is the column count
	Columns int

	// HasRepeatedHeaderRow is true when every continuation span repeats
	// the header row
	HasRepeatedHeaderRow bool

	// HeaderlessContinuation marks a split table whose continuation spans
	// are deliberately headerless (satisfies the span invariant without a
	// repeated header)
	HeaderlessContinuation bool
}

// PageCount returns the number of pages the table touches
func (t *Table) PageCount() int {
	if t == nil {
		return 0
	}
	return len(t.Spans)
}

// RowCount returns the total number of rows across all spans
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	total := 0
	for _, s := range t.Spans {
		total += s.Rows
	}
	return total
}

// FirstPage returns the 1-based number of the first page the table appears on
func (t *Table) FirstPage() int {
	if t == nil || len(t.Spans) == 0 {
		return 0
	}
	return t.Spans[0].Page
}

// LastPage returns the 1-based number of the last page the table appears on
func (t *Table) LastPage() int {
	if t == nil || len(t.Spans) == 0 {
		return 0
	}
	return t.Spans[len(t.Spans)-1].Page
}

// IsSplit returns true when the table crosses at least one page boundary
func (t *Table) IsSplit() bool {
	return t.PageCount() > 1
}

// SpanOn returns the table's span on the given page, or nil
func (t *Table) SpanOn(page int) *TableSpan {
	if t == nil {
		return nil
	}
	for i := range t.Spans {
		if t.Spans[i].Page == page {
			return &t.Spans[i]
		}
	}
	return nil
}
