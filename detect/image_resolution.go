package detect

import (
	"fmt"

	"github.com/presslint/presslint/model"
	"github.com/presslint/presslint/report"
)

// ImageResolutionDetector finds images that will render below the effective
// resolution floor at their placed size.
type ImageResolutionDetector struct {
	minDPI float64
}

// NewImageResolutionDetector creates an image-resolution detector from the thresholds
func NewImageResolutionDetector(t Thresholds) *ImageResolutionDetector {
	return &ImageResolutionDetector{minDPI: t.MinDPI}
}

// Name identifies the detector
func (d *ImageResolutionDetector) Name() string { return "image_resolution" }

// Detect computes the effective DPI of every placed image
func (d *ImageResolutionDetector) Detect(doc *model.Document) []report.Issue {
	var issues []report.Issue

	for _, page := range doc.Pages {
		for i := range page.Images {
			img := &page.Images[i]

			if img.PixelWidth < 1 || img.PixelHeight < 1 || !img.BBox.IsValid() {
				issues = append(issues, degradedIssue(page.Number,
					"image %q on page %d has unusable geometry (%dx%dpx, box %.1fx%.1fpt)",
					img.Name, page.Number, img.PixelWidth, img.PixelHeight,
					img.BBox.Width, img.BBox.Height))
				continue
			}

			dpi := img.MinEffectiveDPI()
			if dpi >= d.minDPI {
				continue
			}

			issues = append(issues, report.NewIssue(
				report.KindLowResolutionImage, report.SeverityError, page.Number,
				fmt.Sprintf("image %q renders at %.0f DPI, below the %.0f DPI floor",
					img.Name, dpi, d.minDPI),
			).WithAnchor(img.BBox))
		}
	}

	return issues
}
