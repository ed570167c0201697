package ingest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/presslint/presslint/model"
)

// listItemPatterns match the opening of a list item line: bullets, numbers,
// letters and roman numerals.
var listItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[\x{2022}\-\*\x{2192}\x{25BA}\x{25E6}\x{2023}]\s`),
	regexp.MustCompile(`^\d+[\.\)]\s`),
	regexp.MustCompile(`^[a-zA-Z][\.\)]\s`),
	regexp.MustCompile(`^[ivxIVX]+[\.\)]\s`),
}

// assembleBlocks builds the derived block index over the document's lines:
// a single pass that groups consecutive same-kind, vertically-adjacent lines
// on each page, then stitches paragraph blocks broken across a page boundary.
func assembleBlocks(doc *model.Document, opts Options, bodyFontSize float64) {
	var blocks []*model.Block

	for _, page := range doc.Pages {
		blocks = append(blocks, groupPageBlocks(page, opts, bodyFontSize)...)
	}

	blocks = stitchAcrossPages(doc, blocks)

	for i, b := range blocks {
		b.Index = i
		for _, ln := range b.Lines {
			ln.Block = b
		}
	}
	doc.Blocks = blocks
}

// groupPageBlocks groups one page's lines into blocks. Two lines join the
// same block only when their vertical gap is at most the join threshold and
// neither side is a heading boundary.
func groupPageBlocks(page *model.Page, opts Options, bodyFontSize float64) []*model.Block {
	var blocks []*model.Block
	var current *model.Block

	for i := range page.Lines {
		line := &page.Lines[i]
		kind := classifyLine(line, bodyFontSize, opts.HeadingSizeRatio)

		if current != nil && joins(current, line, kind, opts) {
			current.Lines = append(current.Lines, line)
			continue
		}

		current = &model.Block{
			Kind:      kind,
			Lines:     []*model.Line{line},
			FirstPage: page.Number,
			LastPage:  page.Number,
		}
		blocks = append(blocks, current)
	}

	return blocks
}

// joins reports whether a line continues the current block.
func joins(block *model.Block, line *model.Line, kind model.BlockKind, opts Options) bool {
	prev := block.LastLine()
	if prev == nil {
		return false
	}

	// A heading line never extends a non-heading block and vice versa;
	// headings are their own boundary.
	if (kind == model.KindHeading) != (block.Kind == model.KindHeading) {
		return false
	}

	// A new bullet always opens a new list item.
	if kind == model.KindListItem {
		return false
	}

	// Kinds must agree, except that a plain line may wrap a list item.
	if kind != block.Kind && !(block.Kind == model.KindListItem && kind == model.KindParagraph) {
		return false
	}

	gap := line.BBox.Top() - prev.BBox.Bottom()
	avgHeight := (prev.BBox.Height + line.BBox.Height) / 2
	return gap <= avgHeight*opts.BlockJoinGap
}

// classifyLine infers the block kind of a line. A producer hint wins;
// otherwise headings are recognized by tagged heading weight or by font
// size relative to body text, and list items by their opening pattern.
func classifyLine(line *model.Line, bodyFontSize, headingRatio float64) model.BlockKind {
	if kind, ok := kindFromHint(line.KindHint); ok {
		return kind
	}

	switch {
	case line.HeadingWeight:
		return model.KindHeading
	case bodyFontSize > 0 && line.FontSize >= bodyFontSize*headingRatio && line.FontSize > bodyFontSize:
		return model.KindHeading
	}

	text := strings.TrimSpace(line.Text)
	for _, pat := range listItemPatterns {
		if pat.MatchString(text) {
			return model.KindListItem
		}
	}

	return model.KindParagraph
}

// kindFromHint maps a stream kind hint to a block kind, or false when the
// hint is absent or unrecognized.
func kindFromHint(hint string) (model.BlockKind, bool) {
	switch hint {
	case "paragraph":
		return model.KindParagraph, true
	case "heading":
		return model.KindHeading, true
	case "list-item":
		return model.KindListItem, true
	case "caption":
		return model.KindCaption, true
	default:
		return model.KindParagraph, false
	}
}

// stitchAcrossPages merges a paragraph block broken by a page break with its
// continuation at the top of the next page. A merged block spans exactly two
// adjacent pages and carries both continuation flags.
func stitchAcrossPages(doc *model.Document, blocks []*model.Block) []*model.Block {
	if len(blocks) < 2 {
		return blocks
	}

	var out []*model.Block
	skip := false

	for i, b := range blocks {
		if skip {
			skip = false
			continue
		}
		out = append(out, b)

		if i+1 >= len(blocks) {
			continue
		}
		next := blocks[i+1]

		if !continuesOnNextPage(b, next) {
			continue
		}

		// Merge: b absorbs next's lines and spans both pages.
		b.Lines = append(b.Lines, next.Lines...)
		b.LastPage = next.FirstPage
		b.ContinuesToNext = true
		b.ContinuesFromPrev = true
		skip = true
	}

	return out
}

// continuesOnNextPage applies the continuation test between the last block
// of one page and the first block of the next: an explicit producer marker,
// or the lowercase-start heuristic for an unmarked paragraph continuation.
func continuesOnNextPage(last, first *model.Block) bool {
	if last.Kind != model.KindParagraph || first.Kind != model.KindParagraph {
		return false
	}
	if last.LastPage != first.FirstPage-1 {
		return false
	}
	// Already spanning blocks never chain onto a third page.
	if last.ContinuesFromPrev || first.ContinuesToNext {
		return false
	}

	firstLine := first.FirstLine()
	if firstLine == nil || last.LastLine() == nil {
		return false
	}
	if firstLine.MarkedContinuation {
		return true
	}

	text := strings.TrimSpace(firstLine.Text)
	if text == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLower(r)
}
