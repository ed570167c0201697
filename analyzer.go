package presslint

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/presslint/presslint/detect"
	"github.com/presslint/presslint/ingest"
	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// Analyzer provides a fluent interface for configuring and running quality
// checks. Each configuration method returns a new Analyzer instance, making
// it safe for concurrent use and allowing method chaining.
type Analyzer struct {
	// Source (exactly one is used)
	filename string
	stream   *ingest.Stream
	doc      *model.Document

	// Configuration
	options    ingest.Options
	thresholds detect.Thresholds

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Analyzer. Each chain method returns a new
// instance so a configured Analyzer can be shared and re-run.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		filename:   a.filename,
		stream:     a.stream,
		doc:        a.doc,
		options:    a.options,
		thresholds: a.thresholds,
		err:        a.err,
	}
}

// Run ingests the configured source, runs every quality check and returns the
// aggregated report. Checks run concurrently; the context cancels the run.
func (a *Analyzer) Run(ctx context.Context) (*report.Report, error) {
	doc, degraded, err := a.document()
	if err != nil {
		return nil, err
	}

	if err := a.thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}

	detectors := detect.All(a.thresholds)
	results := make([][]report.Issue, len(detectors))

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range detectors {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = d.Detect(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lists := make([][]report.Issue, 0, len(results)+1)
	lists = append(lists, degraded)
	lists = append(lists, results...)

	return report.Aggregate(doc.Source, lists...), nil
}

// Document ingests the configured source and returns the built document
// without running any checks. Useful for inspecting what the checks will see.
func (a *Analyzer) Document() (*model.Document, error) {
	doc, _, err := a.document()
	return doc, err
}

func (a *Analyzer) document() (*model.Document, []report.Issue, error) {
	if a.err != nil {
		return nil, nil, a.err
	}

	switch {
	case a.doc != nil:
		return a.doc, nil, nil
	case a.stream != nil:
		return ingest.Build(a.stream, a.options)
	case a.filename != "":
		return ingest.FromPDF(a.filename, a.options)
	default:
		return nil, nil, fmt.Errorf("no input specified")
	}
}
