package detect

import (
	"fmt"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// StrandedHeadingDetector finds headings left as the last content on a page,
// with no body text following before the page break.
type StrandedHeadingDetector struct{}

// NewStrandedHeadingDetector creates a stranded-heading detector
func NewStrandedHeadingDetector(Thresholds) *StrandedHeadingDetector {
	return &StrandedHeadingDetector{}
}

// Name identifies the detector
func (d *StrandedHeadingDetector) Name() string { return "stranded_heading" }

// Detect scans every non-final page for a heading with nothing after it
func (d *StrandedHeadingDetector) Detect(doc *model.Document) []report.Issue {
	var issues []report.Issue

	for page := 1; page < doc.PageCount(); page++ {
		last := lastLineBearingBlock(doc, page)
		if last == nil || last.Kind != model.KindHeading {
			continue
		}

		anchor := last.BBoxOn(page)
		issues = append(issues, report.NewIssue(
			report.KindStrandedHeading, report.SeverityError, page,
			fmt.Sprintf("heading stranded at page bottom: %q",
				textPreview(last.Text(), 50)),
		).WithAnchor(anchor))
	}

	return issues
}

// lastLineBearingBlock returns the block whose lines sit lowest on the page,
// or nil for a page without text content.
func lastLineBearingBlock(doc *model.Document, page int) *model.Block {
	var last *model.Block
	lastBottom := 0.0
	for _, b := range doc.BlocksSpanning(page) {
		lines := b.LinesOn(page)
		if len(lines) == 0 {
			continue
		}
		bottom := lines[0].BBox.Bottom()
		for _, ln := range lines[1:] {
			if v := ln.BBox.Bottom(); v > bottom {
				bottom = v
			}
		}
		if last == nil || bottom > lastBottom {
			last = b
			lastBottom = bottom
		}
	}
	return last
}
