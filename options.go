package presslint

import (
	"github.com/presslint/presslint/detect"
	"github.com/presslint/presslint/ingest"
)

// Thresholds replaces the full threshold set. Use detect.DefaultThresholds()
// as a starting point when only a few values need to change.
//
// Example:
//
//	t := detect.DefaultThresholds()
//	t.MinDPI = 600
//	rep, err := presslint.Open("book.pdf").Thresholds(t).Run(ctx)
func (a *Analyzer) Thresholds(t detect.Thresholds) *Analyzer {
	na := a.clone()
	na.thresholds = t
	return na
}

// ThresholdsFile loads thresholds from a TOML file. Keys absent from the file
// keep their defaults; unknown keys are an error, recorded on the chain and
// returned by the terminal operation.
//
// Example:
//
//	rep, err := presslint.Open("book.pdf").ThresholdsFile("presslint.toml").Run(ctx)
func (a *Analyzer) ThresholdsFile(path string) *Analyzer {
	na := a.clone()
	t, err := detect.LoadThresholds(path)
	if err != nil {
		na.err = err
		return na
	}
	na.thresholds = t
	return na
}

// IngestOptions replaces the ingestion options controlling margins and block
// grouping.
func (a *Analyzer) IngestOptions(o ingest.Options) *Analyzer {
	na := a.clone()
	na.options = o
	return na
}

// Margins sets the page margins in points, defining the content box used by
// the whitespace check. Values are measured in from each page edge.
func (a *Analyzer) Margins(top, bottom, left, right float64) *Analyzer {
	na := a.clone()
	na.options.MarginTop = top
	na.options.MarginBottom = bottom
	na.options.MarginLeft = left
	na.options.MarginRight = right
	return na
}

// ScreenOnly marks the document as destined for screen viewing. Color space
// checks are skipped; RGB imagery is expected on screen.
func (a *Analyzer) ScreenOnly() *Analyzer {
	na := a.clone()
	na.thresholds.PrintDestined = false
	return na
}

// MinDPI overrides the minimum acceptable effective resolution for placed
// images, in dots per inch.
func (a *Analyzer) MinDPI(dpi float64) *Analyzer {
	na := a.clone()
	na.thresholds.MinDPI = dpi
	return na
}
