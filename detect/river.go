package detect

import (
	"fmt"
	"math"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// RiverDetector finds rivers of whitespace: word gaps vertically aligned
// across several consecutive lines of a block, reading as a pale channel
// flowing through justified text.
type RiverDetector struct {
	toleranceChars float64
	minRun         int
}

// NewRiverDetector creates a river detector from the thresholds
func NewRiverDetector(t Thresholds) *RiverDetector {
	return &RiverDetector{
		toleranceChars: t.RiverToleranceChars,
		minRun:         t.RiverMinRun,
	}
}

// Name identifies the detector
func (d *RiverDetector) Name() string { return "river" }

// riverChain tracks one candidate gap column as it extends down a block
type riverChain struct {
	column    float64 // running x position of the aligned gaps
	startLine int     // index of the first line in the run
	lastLine  int     // index of the most recent line that matched
	count     int
}

// Detect scans every block for aligned gap-column runs. Lines without
// word-level geometry contribute no gap columns and end any open run.
func (d *RiverDetector) Detect(doc *model.Document) []report.Issue {
	var issues []report.Issue

	for _, block := range doc.AllBlocks() {
		if block.LineCount() < d.minRun {
			continue
		}
		issues = append(issues, d.scanBlock(block)...)
	}

	return issues
}

func (d *RiverDetector) scanBlock(block *model.Block) []report.Issue {
	var issues []report.Issue
	var active []riverChain

	for idx, line := range block.Lines {
		// One character width is approximated as half the font size.
		tolerance := d.toleranceChars * 0.5 * line.FontSize
		if tolerance <= 0 {
			tolerance = d.toleranceChars * 3.0
		}

		var next []riverChain
		used := make([]bool, len(line.GapColumns))

		for _, chain := range active {
			matched := false
			for gi, gap := range line.GapColumns {
				if used[gi] {
					continue
				}
				if math.Abs(gap-chain.column) <= tolerance {
					used[gi] = true
					chain.column = (chain.column*float64(chain.count) + gap) / float64(chain.count+1)
					chain.count++
					chain.lastLine = idx
					next = append(next, chain)
					matched = true
					break
				}
			}
			if !matched {
				if chain.count >= d.minRun {
					issues = append(issues, d.riverIssue(block, chain))
				}
			}
		}

		for gi, gap := range line.GapColumns {
			if used[gi] {
				continue
			}
			next = append(next, riverChain{
				column:    gap,
				startLine: idx,
				lastLine:  idx,
				count:     1,
			})
		}

		active = next
	}

	for _, chain := range active {
		if chain.count >= d.minRun {
			issues = append(issues, d.riverIssue(block, chain))
		}
	}

	return issues
}

// riverIssue builds one issue for a completed run, anchored to the narrow
// vertical strip the aligned gaps occupy.
func (d *RiverDetector) riverIssue(block *model.Block, chain riverChain) report.Issue {
	first := block.Lines[chain.startLine]
	last := block.Lines[chain.lastLine]

	halfWidth := d.toleranceChars * 0.5 * first.FontSize
	if halfWidth <= 0 {
		halfWidth = 3.0
	}
	anchor := model.BBox{
		X:      chain.column - halfWidth,
		Y:      first.BBox.Top(),
		Width:  2 * halfWidth,
		Height: last.BBox.Bottom() - first.BBox.Top(),
	}

	return report.NewIssue(
		report.KindRiver, report.SeverityWarning, first.Page,
		fmt.Sprintf("river of whitespace at x=%.0fpt across %d consecutive lines",
			chain.column, chain.count),
	).WithAnchor(anchor)
}
