package detect

import (
	"fmt"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// SplitTableDetector finds tables split across page boundaries without a
// repeated header row, and splits that occur too early in the table.
type SplitTableDetector struct {
	minRows int
}

// NewSplitTableDetector creates a split-table detector from the thresholds
func NewSplitTableDetector(t Thresholds) *SplitTableDetector {
	return &SplitTableDetector{minRows: t.SplitTableMinRows}
}

// Name identifies the detector
func (d *SplitTableDetector) Name() string { return "split_table" }

// Detect scans every table that spans more than one page
func (d *SplitTableDetector) Detect(doc *model.Document) []report.Issue {
	var issues []report.Issue

	for _, table := range doc.AllTables() {
		if table.RowCount() == 0 {
			issues = append(issues, degradedIssue(table.FirstPage(),
				"table on page %d has no rows", table.FirstPage()))
			continue
		}
		if !table.IsSplit() {
			continue
		}

		first := table.Spans[0]

		if !table.HasRepeatedHeaderRow && !table.HeaderlessContinuation {
			issues = append(issues, report.NewIssue(
				report.KindSplitTableNoHeader, report.SeverityWarning, table.FirstPage(),
				fmt.Sprintf("table split across pages %d-%d without a repeated header row",
					table.FirstPage(), table.LastPage()),
			).WithEndPage(table.LastPage()).WithAnchor(first.BBox))
		}

		if first.Rows < d.minRows {
			issues = append(issues, report.NewIssue(
				report.KindSplitTableTooEarly, report.SeverityError, table.FirstPage(),
				fmt.Sprintf("table breaks after only %d row(s) on page %d (minimum %d)",
					first.Rows, table.FirstPage(), d.minRows),
			).WithEndPage(table.LastPage()).WithAnchor(first.BBox))
		}
	}

	return issues
}
