package detect

import (
	"fmt"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// Detector is the capability every defect detector implements: a pure,
// read-only scan of the document producing zero or more issues. Detectors
// never mutate the document and carry no run-to-run state, so any subset may
// run concurrently over the same document.
type Detector interface {
	// Name identifies the detector for logging and diagnostics
	Name() string

	// Detect scans the document and returns the issues found
	Detect(doc *model.Document) []report.Issue
}

// All returns the full detector registry configured from one threshold set.
// The taxonomy is closed; the registry is a fixed list, not open-ended
// dispatch.
func All(t Thresholds) []Detector {
	return []Detector{
		NewOrphanWidowDetector(t),
		NewStrandedHeadingDetector(t),
		NewSplitTableDetector(t),
		NewWhitespaceDetector(t),
		NewRuntDetector(t),
		NewRiverDetector(t),
		NewImageResolutionDetector(t),
		NewColorProfileDetector(t),
	}
}

// degradedIssue records a malformed geometry entity that a detector skipped
// rather than failing on.
func degradedIssue(page int, format string, args ...any) report.Issue {
	return report.NewIssue(report.KindDegradedInput, report.SeverityInfo, page,
		fmt.Sprintf(format, args...))
}

// textPreview trims a string for use in an issue description.
func textPreview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
