package detect

import (
	"testing"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// makeGapLine creates a line carrying precomputed gap-column positions
func makeGapLine(page int, y float64, gaps ...float64) *model.Line {
	ln := makeLine(page, "justified text with wide gaps", y)
	ln.GapColumns = gaps
	return ln
}

func TestAlignedGapsFormARiver(t *testing.T) {
	doc := newTestDoc(1)
	// Three consecutive lines with a gap column near x=200; font size 11
	// gives a tolerance of 2.0 * 0.5 * 11 = 11pt.
	addBlock(doc, model.KindParagraph,
		makeGapLine(1, 100, 200),
		makeGapLine(1, 115, 204),
		makeGapLine(1, 130, 198),
	)

	issues := NewRiverDetector(DefaultThresholds()).Detect(doc)

	if got := countKind(issues, report.KindRiver); got != 1 {
		t.Fatalf("got %d river issues, want 1", got)
	}
	issue := findKind(issues, report.KindRiver)
	if issue.Severity != report.SeverityWarning {
		t.Errorf("severity = %v, want warning", issue.Severity)
	}
	if issue.Anchor == nil {
		t.Fatal("river issue has no anchor")
	}
	if issue.Anchor.Top() != 100 || issue.Anchor.Bottom() != 143 {
		t.Errorf("anchor spans %.0f-%.0f, want 100-143", issue.Anchor.Top(), issue.Anchor.Bottom())
	}
}

func TestTwoLinesAreNotARiver(t *testing.T) {
	doc := newTestDoc(1)
	addBlock(doc, model.KindParagraph,
		makeGapLine(1, 100, 200),
		makeGapLine(1, 115, 200),
		makeGapLine(1, 130),
	)

	issues := NewRiverDetector(DefaultThresholds()).Detect(doc)
	if len(issues) != 0 {
		t.Fatalf("got %d issues for a two-line run, want 0", len(issues))
	}
}

func TestMisalignedGapBreaksTheRun(t *testing.T) {
	doc := newTestDoc(1)
	addBlock(doc, model.KindParagraph,
		makeGapLine(1, 100, 200),
		makeGapLine(1, 115, 240),
		makeGapLine(1, 130, 200),
	)

	issues := NewRiverDetector(DefaultThresholds()).Detect(doc)
	if len(issues) != 0 {
		t.Fatalf("got %d issues for misaligned gaps, want 0", len(issues))
	}
}

func TestLongerRunStillOneRiver(t *testing.T) {
	doc := newTestDoc(1)
	addBlock(doc, model.KindParagraph,
		makeGapLine(1, 100, 200),
		makeGapLine(1, 115, 201),
		makeGapLine(1, 130, 199),
		makeGapLine(1, 145, 200),
		makeGapLine(1, 160, 202),
	)

	issues := NewRiverDetector(DefaultThresholds()).Detect(doc)
	if got := countKind(issues, report.KindRiver); got != 1 {
		t.Fatalf("got %d river issues for a five-line run, want 1", got)
	}
}

func TestParallelRiversReportedSeparately(t *testing.T) {
	doc := newTestDoc(1)
	addBlock(doc, model.KindParagraph,
		makeGapLine(1, 100, 150, 280),
		makeGapLine(1, 115, 152, 278),
		makeGapLine(1, 130, 149, 281),
	)

	issues := NewRiverDetector(DefaultThresholds()).Detect(doc)
	if got := countKind(issues, report.KindRiver); got != 2 {
		t.Fatalf("got %d river issues, want 2 parallel rivers", got)
	}
}

func TestMinRunThreshold(t *testing.T) {
	thresholds := DefaultThresholds()
	thresholds.RiverMinRun = 4

	doc := newTestDoc(1)
	addBlock(doc, model.KindParagraph,
		makeGapLine(1, 100, 200),
		makeGapLine(1, 115, 200),
		makeGapLine(1, 130, 200),
		makeGapLine(1, 145),
	)

	issues := NewRiverDetector(thresholds).Detect(doc)
	if len(issues) != 0 {
		t.Fatalf("got %d issues with a four-line floor, want 0", len(issues))
	}
}

func TestLinesWithoutWordGeometryEndRuns(t *testing.T) {
	doc := newTestDoc(1)
	addBlock(doc, model.KindParagraph,
		makeGapLine(1, 100, 200),
		makeGapLine(1, 115, 200),
		makeGapLine(1, 130), // no word geometry
		makeGapLine(1, 145, 200),
		makeGapLine(1, 160, 200),
	)

	issues := NewRiverDetector(DefaultThresholds()).Detect(doc)
	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0: the gap-free line splits the run", len(issues))
	}
}
