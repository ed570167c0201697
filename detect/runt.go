package detect

import (
	"fmt"
	"strings"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// RuntDetector finds paragraphs whose last line carries only a short lone
// word, which reads as a visually awkward fragment.
type RuntDetector struct {
	maxWords      int
	maxWordLength int
}

// NewRuntDetector creates a runt detector from the thresholds
func NewRuntDetector(t Thresholds) *RuntDetector {
	return &RuntDetector{
		maxWords:      t.RuntMaxWords,
		maxWordLength: t.RuntMaxWordLength,
	}
}

// Name identifies the detector
func (d *RuntDetector) Name() string { return "runt" }

// Detect scans the closing line of every multi-line paragraph
func (d *RuntDetector) Detect(doc *model.Document) []report.Issue {
	var issues []report.Issue

	for _, block := range doc.AllBlocks() {
		if block.Kind != model.KindParagraph {
			continue
		}
		// A one-line paragraph has no full-width line above it to contrast
		// with, so its lone line is not a runt.
		if block.LineCount() < 2 {
			continue
		}

		last := block.LastLine()
		text := strings.TrimSpace(last.Text)
		words := strings.Fields(text)
		if len(words) == 0 || len(words) > d.maxWords {
			continue
		}
		if d.maxWordLength > 0 && len(text) >= d.maxWordLength {
			continue
		}

		issues = append(issues, report.NewIssue(
			report.KindRunt, report.SeverityWarning, last.Page,
			fmt.Sprintf("runt: %q alone on the last line of a paragraph",
				textPreview(text, 30)),
		).WithAnchor(last.BBox))
	}

	return issues
}
