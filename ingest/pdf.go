package ingest

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// FromPDF reads a rendered PDF from disk and builds a Document from its text
// geometry. The file is structurally validated first; a file that fails
// validation or cannot be opened yields ErrIngestionUnavailable.
//
// Text extraction recovers lines, their bounding boxes, baselines, font sizes
// and word positions. Table regions and placed images are not recoverable
// from raw content streams; documents that need table or image checks should
// be ingested through a Stream produced by the layout engine.
func FromPDF(path string, opts Options) (*model.Document, []report.Issue, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrIngestionUnavailable, err)
	}

	if err := api.ValidateFile(path, nil); err != nil {
		return nil, nil, fmt.Errorf("%w: validating %s: %v", ErrIngestionUnavailable, path, err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading page dimensions of %s: %v", ErrIngestionUnavailable, path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %s: %v", ErrIngestionUnavailable, path, err)
	}
	defer f.Close()

	stream := &Stream{Source: path}

	total := r.NumPage()
	for pageNum := 1; pageNum <= total; pageNum++ {
		width, height := 595.0, 842.0
		if pageNum-1 < len(dims) {
			width = dims[pageNum-1].Width
			height = dims[pageNum-1].Height
		}

		in := PageInput{Width: width, Height: height}

		page := r.Page(pageNum)
		if !page.V.IsNull() {
			rows, err := page.GetTextByRow()
			if err == nil {
				for _, row := range rows {
					if line, ok := lineFromRow(row, height); ok {
						in.Lines = append(in.Lines, line)
					}
				}
			}
		}

		stream.Pages = append(stream.Pages, in)
	}

	return Build(stream, opts)
}

// lineFromRow converts one extracted text row into a LineInput, flipping the
// PDF bottom-origin Y axis to the top-origin convention used everywhere else.
func lineFromRow(row *pdf.Row, pageHeight float64) (LineInput, bool) {
	runs := make([]pdf.Text, 0, len(row.Content))
	for _, t := range row.Content {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		runs = append(runs, t)
	}
	if len(runs) == 0 {
		return LineInput{}, false
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

	var sb strings.Builder
	var fontSizeSum float64
	var bold, italic bool
	minX, maxX := runs[0].X, runs[0].X+runs[0].W
	baselineY := runs[0].Y

	for i, t := range runs {
		if i > 0 {
			prev := runs[i-1]
			if t.X-(prev.X+prev.W) > 0.2*prev.FontSize {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)

		if t.X < minX {
			minX = t.X
		}
		if t.X+t.W > maxX {
			maxX = t.X + t.W
		}
		fontSizeSum += t.FontSize

		name := strings.ToLower(t.Font)
		if strings.Contains(name, "bold") {
			bold = true
		}
		if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
			italic = true
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return LineInput{}, false
	}

	fontSize := fontSizeSum / float64(len(runs))
	if fontSize <= 0 {
		fontSize = 10.0
	}

	// Flip to top-origin: the extracted Y is the baseline measured up from
	// the page bottom.
	baseline := pageHeight - baselineY
	top := baseline - fontSize

	return LineInput{
		Text:     text,
		BBox:     model.BBox{X: minX, Y: top, Width: maxX - minX, Height: fontSize * 1.2},
		Baseline: baseline,
		FontSize: fontSize,
		Bold:     bold,
		Italic:   italic,
		Words:    wordSpans(runs),
	}, true
}

// wordSpans clusters text runs into word extents along the X axis. Runs whose
// horizontal gap is below a fraction of the font size belong to one word.
func wordSpans(runs []pdf.Text) []Span {
	var spans []Span
	start, end := runs[0].X, runs[0].X+runs[0].W

	for _, t := range runs[1:] {
		if t.X-end > 0.2*t.FontSize {
			spans = append(spans, Span{X0: start, X1: end})
			start = t.X
		}
		if t.X+t.W > end {
			end = t.X + t.W
		}
	}
	spans = append(spans, Span{X0: start, X1: end})
	return spans
}

// PageCount reports the number of pages in a PDF without building a Document.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}
