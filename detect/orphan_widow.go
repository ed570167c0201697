package detect

import (
	"fmt"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// OrphanWidowDetector finds paragraph fragments stranded by a page break:
// an orphan is the opening fragment left at the bottom of a page, a widow
// the closing fragment carried to the top of the next. Headings and list
// items are exempt; they are single-line blocks by nature.
type OrphanWidowDetector struct {
	minLines int
}

// NewOrphanWidowDetector creates an orphan/widow detector from the thresholds
func NewOrphanWidowDetector(t Thresholds) *OrphanWidowDetector {
	return &OrphanWidowDetector{minLines: t.OrphanWidowMinLines}
}

// Name identifies the detector
func (d *OrphanWidowDetector) Name() string { return "orphan_widow" }

// Detect scans every page-spanning block for orphaned and widowed fragments
func (d *OrphanWidowDetector) Detect(doc *model.Document) []report.Issue {
	var issues []report.Issue

	for _, block := range doc.AllBlocks() {
		if block.Kind == model.KindHeading || block.Kind == model.KindListItem {
			continue
		}
		if len(block.Lines) == 0 {
			if block.ContinuesFromPrev || block.ContinuesToNext {
				issues = append(issues, degradedIssue(block.FirstPage,
					"block %d spans a page break but has no lines", block.Index))
			}
			continue
		}

		if block.ContinuesToNext {
			remaining := block.LinesOn(block.FirstPage)
			if n := len(remaining); n > 0 && n < d.minLines {
				anchor := block.BBoxOn(block.FirstPage)
				last := remaining[n-1]
				issues = append(issues, report.NewIssue(
					report.KindOrphan, report.SeverityError, block.FirstPage,
					fmt.Sprintf("orphan: %d line(s) of a paragraph left at page bottom: %q",
						n, textPreview(last.Text, 60)),
				).WithAnchor(anchor))
			}
		}

		if block.ContinuesFromPrev {
			carried := block.LinesOn(block.LastPage)
			if n := len(carried); n > 0 && n < d.minLines {
				anchor := block.BBoxOn(block.LastPage)
				issues = append(issues, report.NewIssue(
					report.KindWidow, report.SeverityError, block.LastPage,
					fmt.Sprintf("widow: %d line(s) of a paragraph carried to page top: %q",
						n, textPreview(carried[0].Text, 60)),
				).WithAnchor(anchor))
			}
		}
	}

	return issues
}
