package detect

import (
	"fmt"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// ColorProfileDetector enforces the print color-space policy: RGB images are
// flagged for print-destined output, and a declared-CMYK image whose embedded
// bytes decode as RGB is a profile mismatch. An unknown declared color space
// is surfaced as informational only and never escalated.
type ColorProfileDetector struct {
	printDestined bool
}

// NewColorProfileDetector creates a color-profile detector from the thresholds
func NewColorProfileDetector(t Thresholds) *ColorProfileDetector {
	return &ColorProfileDetector{printDestined: t.PrintDestined}
}

// Name identifies the detector
func (d *ColorProfileDetector) Name() string { return "color_profile" }

// Detect checks the declared and embedded color spaces of every image
func (d *ColorProfileDetector) Detect(doc *model.Document) []report.Issue {
	if !d.printDestined {
		return nil
	}

	var issues []report.Issue

	for _, page := range doc.Pages {
		for i := range page.Images {
			img := &page.Images[i]

			switch img.ColorSpace {
			case model.ColorSpaceRGB:
				issues = append(issues, report.NewIssue(
					report.KindNonPrintColorSpace, report.SeverityWarning, page.Number,
					fmt.Sprintf("image %q is RGB; print output expects CMYK", img.Name),
				).WithAnchor(img.BBox))

			case model.ColorSpaceUnknown:
				issues = append(issues, report.NewIssue(
					report.KindNonPrintColorSpace, report.SeverityInfo, page.Number,
					fmt.Sprintf("image %q has no declared color space; verify it is print safe", img.Name),
				).WithAnchor(img.BBox))

			case model.ColorSpaceCMYK:
				if img.EmbeddedColorModel == model.ColorSpaceRGB {
					issues = append(issues, report.NewIssue(
						report.KindColorProfileMismatch, report.SeverityError, page.Number,
						fmt.Sprintf("image %q declares CMYK but its embedded data is RGB-tagged", img.Name),
					).WithAnchor(img.BBox))
				}
			}
		}
	}

	return issues
}
