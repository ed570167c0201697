// Package presslint provides a fluent API for checking the print quality of
// paginated documents.
//
// Basic usage:
//
//	rep, err := presslint.Open("book.pdf").Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(rep.Console())
//
// With options:
//
//	rep, err := presslint.Open("book.pdf").
//	    ThresholdsFile("presslint.toml").
//	    ScreenOnly().
//	    Run(ctx)
//
// For advanced use cases the lower-level ingest, detect and report packages
// are also available.
package presslint

import (
	"github.com/presslint/presslint/detect"
	"github.com/presslint/presslint/ingest"
	"github.com/presslint/presslint/model"
)

// Open prepares an Analyzer for a rendered PDF on disk. The file is not read
// until a terminal operation like Run is called.
//
// Example:
//
//	rep, err := presslint.Open("book.pdf").Run(ctx)
func Open(filename string) *Analyzer {
	return &Analyzer{
		filename:   filename,
		options:    ingest.DefaultOptions(),
		thresholds: detect.DefaultThresholds(),
	}
}

// FromStream prepares an Analyzer for a geometry stream produced by a layout
// engine. This is the richest input: it carries table regions and placed
// images that cannot be recovered from a raw PDF.
//
// Example:
//
//	rep, err := presslint.FromStream(stream).Run(ctx)
func FromStream(s *ingest.Stream) *Analyzer {
	return &Analyzer{
		stream:     s,
		options:    ingest.DefaultOptions(),
		thresholds: detect.DefaultThresholds(),
	}
}

// FromDocument prepares an Analyzer for an already-built Document. Ingestion
// is skipped entirely; the document is analyzed as-is.
func FromDocument(doc *model.Document) *Analyzer {
	return &Analyzer{
		doc:        doc,
		options:    ingest.DefaultOptions(),
		thresholds: detect.DefaultThresholds(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	rep := presslint.Must(presslint.Open("book.pdf").Run(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
