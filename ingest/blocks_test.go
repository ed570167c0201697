package ingest

import (
	"testing"

	"github.com/presslint/presslint/model"
)

// buildDoc runs full ingestion over page line sets for block-assembly tests
func buildDoc(t *testing.T, pages ...[]LineInput) *model.Document {
	t.Helper()
	stream := &Stream{Source: "blocks.pdf"}
	for _, lines := range pages {
		stream.Pages = append(stream.Pages, PageInput{Width: 420, Height: 595, Lines: lines})
	}
	doc, _, err := Build(stream, testOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return doc
}

func TestAdjacentLinesGroupIntoOneBlock(t *testing.T) {
	doc := buildDoc(t, []LineInput{
		lineIn("the first line of a paragraph", 100, 11),
		lineIn("and its second line", 115, 11),
		lineIn("and a third", 130, 11),
	})

	if got := len(doc.Blocks); got != 1 {
		t.Fatalf("got %d blocks, want 1", got)
	}
	if doc.Blocks[0].Kind != model.KindParagraph {
		t.Errorf("kind = %v, want paragraph", doc.Blocks[0].Kind)
	}
	if doc.Blocks[0].LineCount() != 3 {
		t.Errorf("line count = %d, want 3", doc.Blocks[0].LineCount())
	}
}

func TestWideGapSplitsBlocks(t *testing.T) {
	doc := buildDoc(t, []LineInput{
		lineIn("first paragraph", 100, 11),
		lineIn("second paragraph far below", 200, 11),
	})

	if got := len(doc.Blocks); got != 2 {
		t.Fatalf("got %d blocks, want 2", got)
	}
}

func TestLargerFontBecomesHeading(t *testing.T) {
	doc := buildDoc(t, []LineInput{
		lineIn("Chapter One", 100, 16),
		lineIn("body text at the usual size", 130, 11),
		lineIn("more body text to anchor", 145, 11),
		lineIn("the median font size", 160, 11),
	})

	if got := len(doc.Blocks); got != 2 {
		t.Fatalf("got %d blocks, want 2 (heading + paragraph)", got)
	}
	if doc.Blocks[0].Kind != model.KindHeading {
		t.Errorf("first block kind = %v, want heading", doc.Blocks[0].Kind)
	}
	if doc.Blocks[1].Kind != model.KindParagraph {
		t.Errorf("second block kind = %v, want paragraph", doc.Blocks[1].Kind)
	}
}

func TestHeadingWeightTagWins(t *testing.T) {
	tagged := lineIn("Small Caps Heading", 100, 11)
	tagged.HeadingWeight = true

	doc := buildDoc(t, []LineInput{
		tagged,
		lineIn("body text below", 130, 11),
	})

	if doc.Blocks[0].Kind != model.KindHeading {
		t.Errorf("tagged line kind = %v, want heading", doc.Blocks[0].Kind)
	}
}

func TestProducerKindHintWins(t *testing.T) {
	hinted := lineIn("Figure 3: a diagram", 100, 11)
	hinted.Kind = "caption"

	doc := buildDoc(t, []LineInput{hinted})

	if doc.Blocks[0].Kind != model.KindCaption {
		t.Errorf("hinted line kind = %v, want caption", doc.Blocks[0].Kind)
	}
}

func TestEachBulletOpensANewListItem(t *testing.T) {
	doc := buildDoc(t, []LineInput{
		lineIn("- first item", 100, 11),
		lineIn("- second item", 115, 11),
		lineIn("- third item", 130, 11),
	})

	if got := len(doc.Blocks); got != 3 {
		t.Fatalf("got %d blocks, want 3 list items", got)
	}
	for i, b := range doc.Blocks {
		if b.Kind != model.KindListItem {
			t.Errorf("block %d kind = %v, want list-item", i, b.Kind)
		}
	}
}

func TestListItemWrapJoins(t *testing.T) {
	doc := buildDoc(t, []LineInput{
		lineIn("1. a numbered item whose text runs", 100, 11),
		lineIn("onto a continuation line", 115, 11),
	})

	if got := len(doc.Blocks); got != 1 {
		t.Fatalf("got %d blocks, want 1 wrapped list item", got)
	}
	if doc.Blocks[0].Kind != model.KindListItem {
		t.Errorf("kind = %v, want list-item", doc.Blocks[0].Kind)
	}
}

func TestLowercaseContinuationStitched(t *testing.T) {
	doc := buildDoc(t,
		[]LineInput{
			lineIn("The paragraph begins on page one and", 505, 11),
			lineIn("runs right up to the page break where", 520, 11),
		},
		[]LineInput{
			lineIn("it continues without interruption on", 55, 11),
			lineIn("the following page.", 70, 11),
		},
	)

	if got := len(doc.Blocks); got != 1 {
		t.Fatalf("got %d blocks, want 1 stitched block", got)
	}
	b := doc.Blocks[0]
	if !b.ContinuesToNext || !b.ContinuesFromPrev {
		t.Error("stitched block must carry both continuation flags")
	}
	if b.FirstPage != 1 || b.LastPage != 2 {
		t.Errorf("span = pages %d-%d, want 1-2", b.FirstPage, b.LastPage)
	}
	if got := len(b.LinesOn(1)); got != 2 {
		t.Errorf("%d lines on page 1, want 2", got)
	}
	if got := len(b.LinesOn(2)); got != 2 {
		t.Errorf("%d lines on page 2, want 2", got)
	}
}

func TestCapitalizedOpeningNotStitched(t *testing.T) {
	doc := buildDoc(t,
		[]LineInput{lineIn("The first paragraph ends cleanly here.", 520, 11)},
		[]LineInput{lineIn("A new paragraph starts the next page.", 55, 11)},
	)

	if got := len(doc.Blocks); got != 2 {
		t.Fatalf("got %d blocks, want 2 separate paragraphs", got)
	}
	for i, b := range doc.Blocks {
		if b.ContinuesToNext || b.ContinuesFromPrev {
			t.Errorf("block %d unexpectedly flagged as spanning", i)
		}
	}
}

func TestExplicitContinuationMarkerStitches(t *testing.T) {
	marked := lineIn("Even Capitalized, the marker wins.", 55, 11)
	marked.ContinuesPrev = true

	doc := buildDoc(t,
		[]LineInput{lineIn("An interrupted sentence about the", 520, 11)},
		[]LineInput{marked},
	)

	if got := len(doc.Blocks); got != 1 {
		t.Fatalf("got %d blocks, want 1: the explicit marker forces the stitch", got)
	}
}

func TestSpanNeverChainsToThirdPage(t *testing.T) {
	doc := buildDoc(t,
		[]LineInput{lineIn("a paragraph that flows across", 520, 11)},
		[]LineInput{lineIn("pages and keeps flowing with", 540, 11)},
		[]LineInput{lineIn("lowercase starts all the way", 55, 11)},
	)

	// Pages one and two stitch; page three must open a fresh block even
	// though it also starts lowercase.
	if got := len(doc.Blocks); got != 2 {
		t.Fatalf("got %d blocks, want 2", got)
	}
	if doc.Blocks[0].LastPage != 2 {
		t.Errorf("first block ends on page %d, want 2", doc.Blocks[0].LastPage)
	}
	if doc.Blocks[1].ContinuesFromPrev {
		t.Error("third-page block must not be marked as a continuation")
	}
}

func TestHeadingsNeverStitch(t *testing.T) {
	doc := buildDoc(t,
		[]LineInput{lineIn("ends with lowercase text on page one", 520, 11)},
		[]LineInput{{
			Text:          "a heading despite the lowercase start",
			BBox:          model.BBox{X: 50, Y: 55, Width: 300, Height: 19},
			FontSize:      16,
			HeadingWeight: true,
		}},
	)

	if got := len(doc.Blocks); got != 2 {
		t.Fatalf("got %d blocks, want 2: headings never continue a paragraph", got)
	}
}

func TestBlockIndexAndBackrefsAssigned(t *testing.T) {
	doc := buildDoc(t, []LineInput{
		lineIn("first paragraph", 100, 11),
		lineIn("second paragraph far below", 250, 11),
	})

	for i, b := range doc.Blocks {
		if b.Index != i {
			t.Errorf("block %d has index %d", i, b.Index)
		}
		for _, ln := range b.Lines {
			if ln.Block != b {
				t.Errorf("line %q does not point back to its block", ln.Text)
			}
		}
	}
}
