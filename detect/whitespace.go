package detect

import (
	"fmt"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// WhitespaceDetector finds pages with an excessive empty gap between the
// last content and the bottom margin. The final page is exempt, as is a page
// whose following page opens with a heading (a deliberate section end).
type WhitespaceDetector struct {
	fraction float64
}

// NewWhitespaceDetector creates a whitespace detector from the thresholds
func NewWhitespaceDetector(t Thresholds) *WhitespaceDetector {
	return &WhitespaceDetector{fraction: t.WhitespaceFraction}
}

// Name identifies the detector
func (d *WhitespaceDetector) Name() string { return "excessive_whitespace" }

// Detect measures the trailing gap on every non-final page
func (d *WhitespaceDetector) Detect(doc *model.Document) []report.Issue {
	var issues []report.Issue

	for page := 1; page < doc.PageCount(); page++ {
		p := doc.GetPage(page)
		if p.IsEmpty() {
			// Intentionally blank pages are a production choice, not a defect.
			continue
		}

		lastBottom, ok := p.LastContentBottom()
		if !ok {
			continue
		}

		gap := p.ContentBox.Bottom() - lastBottom
		limit := p.Height * d.fraction
		if gap <= limit {
			continue
		}

		if nextPageOpensSection(doc, page+1) {
			continue
		}

		contentHeight := p.ContentBox.Height
		pct := 0.0
		if contentHeight > 0 {
			pct = gap / contentHeight * 100
		}
		anchor := model.BBox{
			X:      p.ContentBox.X,
			Y:      lastBottom,
			Width:  p.ContentBox.Width,
			Height: gap,
		}
		issues = append(issues, report.NewIssue(
			report.KindExcessiveWhitespace, report.SeverityWarning, page,
			fmt.Sprintf("page has %.1f%% empty space at bottom (%.1fpt)", pct, gap),
		).WithAnchor(anchor))
	}

	return issues
}

// nextPageOpensSection reports whether the given page starts with a heading
// block, which marks the preceding gap as a deliberate section end.
func nextPageOpensSection(doc *model.Document, page int) bool {
	for _, b := range doc.BlocksSpanning(page) {
		if len(b.LinesOn(page)) == 0 {
			continue
		}
		return b.Kind == model.KindHeading && !b.ContinuesFromPrev
	}
	return false
}
