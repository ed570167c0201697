package ingest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// ErrIngestionUnavailable is returned when the upstream geometry stream is
// absent or unusable. No partial analysis is attempted in that case.
var ErrIngestionUnavailable = errors.New("geometry stream unavailable")

// Stream is the normalized geometry input produced by an external page
// decoder: ordered pages of positioned lines, plus document-level tables
// and per-page images.
type Stream struct {
	// Source identifies the decoded document
	Source string `json:"source"`

	// Pages are the decoded pages in order
	Pages []PageInput `json:"pages"`

	// Tables are document-level table records with per-page spans
	Tables []TableInput `json:"tables,omitempty"`
}

// PageInput is one decoded page.
type PageInput struct {
	// Width and Height are the physical page dimensions in points
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Lines are the positioned text lines on the page, in any order
	Lines []LineInput `json:"lines,omitempty"`

	// Images are the image placements on the page
	Images []ImageInput `json:"images,omitempty"`
}

// LineInput is one positioned text line.
type LineInput struct {
	Text     string     `json:"text"`
	BBox     model.BBox `json:"bbox"`
	Baseline float64    `json:"baseline,omitempty"` // zero: derived from the box bottom
	FontSize float64    `json:"font_size"`

	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	HeadingWeight bool `json:"heading_weight,omitempty"`

	// Kind is an optional producer hint: paragraph, heading, list-item or
	// caption. Empty means the kind is inferred from geometry and text.
	Kind string `json:"kind,omitempty"`

	// ContinuesPrev marks the line as the continuation of a paragraph
	// broken on the previous page
	ContinuesPrev bool `json:"continues_prev,omitempty"`

	// Words is optional word-level geometry, left to right. Required for
	// river detection; lines without it contribute no gap columns.
	Words []Span `json:"words,omitempty"`
}

// Span is the horizontal extent of one word.
type Span struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
}

// TableInput is one table record, possibly spanning adjacent pages.
type TableInput struct {
	Columns                int              `json:"columns"`
	HasRepeatedHeaderRow   bool             `json:"has_repeated_header_row,omitempty"`
	HeaderlessContinuation bool             `json:"headerless_continuation,omitempty"`
	Spans                  []TableSpanInput `json:"spans"`
}

// TableSpanInput is the portion of a table on one page.
type TableSpanInput struct {
	Page int        `json:"page"` // 1-based
	BBox model.BBox `json:"bbox"`
	Rows int        `json:"rows"`
}

// ImageInput is one image placement.
type ImageInput struct {
	Name        string     `json:"name,omitempty"`
	BBox        model.BBox `json:"bbox"`
	PixelWidth  int        `json:"pixel_width,omitempty"`
	PixelHeight int        `json:"pixel_height,omitempty"`

	// ColorSpace is the declared color-space tag: rgb, cmyk, grayscale,
	// indexed, or empty/unknown
	ColorSpace string `json:"color_space,omitempty"`

	// Data is the raw embedded image bytes, when the decoder exposes
	// them. Used to sniff intrinsic dimensions and the embedded color
	// model; never stored in the document model.
	Data []byte `json:"-"`
}

// Options controls how the geometry stream is turned into a document model.
type Options struct {
	// Margins define the page content box, in points
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	// BlockJoinGap is the vertical gap threshold for joining lines into a
	// block, as a multiple of the average line height
	BlockJoinGap float64

	// HeadingSizeRatio is the font-size ratio over body text above which
	// an untagged line is classified as a heading
	HeadingSizeRatio float64

	// BodyFontSize overrides the estimated body font size; zero means
	// estimate it from the document's lines
	BodyFontSize float64
}

// DefaultOptions returns the default ingestion options: the book margins the
// layout engine renders with (20mm top, 25mm bottom, 15mm sides, converted to
// points) and the standard grouping thresholds.
func DefaultOptions() Options {
	return Options{
		MarginTop:        56.69,
		MarginBottom:     70.87,
		MarginLeft:       42.52,
		MarginRight:      42.52,
		BlockJoinGap:     1.5,
		HeadingSizeRatio: 1.2,
	}
}

// Build maps a normalized geometry stream into an immutable document model:
// pages with sorted lines, tables and images, plus the derived block index.
// Malformed entities are dropped and reported as degraded-input issues;
// only a missing stream is fatal.
func Build(stream *Stream, opts Options) (*model.Document, []report.Issue, error) {
	if stream == nil {
		return nil, nil, fmt.Errorf("building document: %w", ErrIngestionUnavailable)
	}
	if opts.BlockJoinGap <= 0 {
		opts.BlockJoinGap = DefaultOptions().BlockJoinGap
	}
	if opts.HeadingSizeRatio <= 0 {
		opts.HeadingSizeRatio = DefaultOptions().HeadingSizeRatio
	}

	doc := model.NewDocument(stream.Source)
	var degraded []report.Issue

	for i := range stream.Pages {
		page, issues := buildPage(&stream.Pages[i], i+1, opts)
		doc.AddPage(page)
		degraded = append(degraded, issues...)
	}

	degraded = append(degraded, attachTables(doc, stream.Tables)...)

	body := opts.BodyFontSize
	if body <= 0 {
		body = estimateBodyFontSize(doc)
	}
	assembleBlocks(doc, opts, body)

	return doc, degraded, nil
}

// buildPage converts one page input, dropping malformed lines and images.
func buildPage(in *PageInput, number int, opts Options) (*model.Page, []report.Issue) {
	page := model.NewPage(in.Width, in.Height)
	page.Number = number
	page.ContentBox = model.BBox{
		X:      opts.MarginLeft,
		Y:      opts.MarginTop,
		Width:  in.Width - opts.MarginLeft - opts.MarginRight,
		Height: in.Height - opts.MarginTop - opts.MarginBottom,
	}

	var degraded []report.Issue

	for li := range in.Lines {
		src := &in.Lines[li]
		if !src.BBox.IsValid() {
			degraded = append(degraded, report.NewIssue(
				report.KindDegradedInput, report.SeverityInfo, number,
				fmt.Sprintf("dropped line with degenerate bounding box on page %d: %q",
					number, preview(src.Text))))
			continue
		}
		page.Lines = append(page.Lines, convertLine(src, number))
	}

	sort.SliceStable(page.Lines, func(i, j int) bool {
		return page.Lines[i].Baseline < page.Lines[j].Baseline
	})

	for ii := range in.Images {
		img, issue := convertImage(&in.Images[ii], number)
		if issue != nil {
			degraded = append(degraded, *issue)
			continue
		}
		page.Images = append(page.Images, img)
	}

	return page, degraded
}

func convertLine(in *LineInput, page int) model.Line {
	baseline := in.Baseline
	if baseline == 0 {
		baseline = in.BBox.Bottom()
	}
	fontSize := in.FontSize
	if fontSize <= 0 {
		fontSize = in.BBox.Height
	}
	return model.Line{
		Text:               in.Text,
		BBox:               in.BBox,
		Baseline:           baseline,
		FontSize:           fontSize,
		Bold:               in.Bold,
		Italic:             in.Italic,
		HeadingWeight:      in.HeadingWeight,
		GapColumns:         gapColumns(in.Words, fontSize),
		KindHint:           in.Kind,
		MarkedContinuation: in.ContinuesPrev,
		Page:               page,
	}
}

// gapColumns returns the X centers of inter-word gaps wider than a normal
// word space. A normal space is about a quarter of the font size; a gap
// twice that is a candidate column.
func gapColumns(words []Span, fontSize float64) []float64 {
	if len(words) < 2 {
		return nil
	}
	wide := 0.5 * fontSize
	var cols []float64
	for i := 1; i < len(words); i++ {
		gap := words[i].X0 - words[i-1].X1
		if gap > wide {
			cols = append(cols, (words[i-1].X1+words[i].X0)/2)
		}
	}
	return cols
}

func convertImage(in *ImageInput, page int) (model.Image, *report.Issue) {
	img := model.Image{
		Name:        in.Name,
		Page:        page,
		BBox:        in.BBox,
		PixelWidth:  in.PixelWidth,
		PixelHeight: in.PixelHeight,
		ColorSpace:  parseColorSpace(in.ColorSpace),
	}

	if len(in.Data) > 0 {
		if info, err := SniffImage(in.Data); err == nil {
			if img.PixelWidth < 1 {
				img.PixelWidth = info.PixelWidth
			}
			if img.PixelHeight < 1 {
				img.PixelHeight = info.PixelHeight
			}
			img.EmbeddedColorModel = info.ColorModel
		}
	}

	if img.PixelWidth < 1 || img.PixelHeight < 1 {
		issue := report.NewIssue(report.KindDegradedInput, report.SeverityInfo, page,
			fmt.Sprintf("dropped image %q on page %d: intrinsic pixel size unknown", in.Name, page))
		return model.Image{}, &issue
	}
	if !img.BBox.IsValid() {
		issue := report.NewIssue(report.KindDegradedInput, report.SeverityInfo, page,
			fmt.Sprintf("dropped image %q on page %d: degenerate placement box", in.Name, page))
		return model.Image{}, &issue
	}

	return img, nil
}

func parseColorSpace(tag string) model.ColorSpace {
	switch tag {
	case "rgb", "RGB", "DeviceRGB":
		return model.ColorSpaceRGB
	case "cmyk", "CMYK", "DeviceCMYK":
		return model.ColorSpaceCMYK
	case "gray", "grayscale", "DeviceGray":
		return model.ColorSpaceGray
	case "indexed", "Indexed":
		return model.ColorSpaceIndexed
	default:
		return model.ColorSpaceUnknown
	}
}

// attachTables converts table records and attaches them to every page they
// span. A span referencing a page outside the document is dropped.
func attachTables(doc *model.Document, tables []TableInput) []report.Issue {
	var degraded []report.Issue

	for ti := range tables {
		in := &tables[ti]
		table := &model.Table{
			Columns:                in.Columns,
			HasRepeatedHeaderRow:   in.HasRepeatedHeaderRow,
			HeaderlessContinuation: in.HeaderlessContinuation,
		}
		for _, span := range in.Spans {
			if doc.GetPage(span.Page) == nil {
				degraded = append(degraded, report.NewIssue(
					report.KindDegradedInput, report.SeverityInfo, clampPage(span.Page, doc.PageCount()),
					fmt.Sprintf("dropped table span referencing missing page %d", span.Page)))
				continue
			}
			table.Spans = append(table.Spans, model.TableSpan{
				Page: span.Page,
				BBox: span.BBox,
				Rows: span.Rows,
			})
		}
		if len(table.Spans) == 0 {
			continue
		}
		sort.SliceStable(table.Spans, func(i, j int) bool {
			return table.Spans[i].Page < table.Spans[j].Page
		})
		for _, span := range table.Spans {
			p := doc.GetPage(span.Page)
			p.Tables = append(p.Tables, table)
		}
	}

	return degraded
}

func clampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if count > 0 && page > count {
		return count
	}
	return page
}

func preview(s string) string {
	const max = 40
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// estimateBodyFontSize returns the median font size across all lines, a
// robust estimate of the body text size.
func estimateBodyFontSize(doc *model.Document) float64 {
	var sizes []float64
	for _, p := range doc.Pages {
		for i := range p.Lines {
			if s := p.Lines[i].FontSize; s > 0 {
				sizes = append(sizes, s)
			}
		}
	}
	if len(sizes) == 0 {
		return 11.0
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2]
}
