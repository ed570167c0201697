// Package detect implements the defect detectors: independent, read-only
// analyzers that each scan the document model for one defect family and
// produce issues.
//
// Every detector implements [Detector] and is constructed from a shared
// [Thresholds] value; [All] returns the fixed registry. Detectors never
// mutate the document and hold no run-to-run state, so they may run in any
// order or concurrently. Malformed geometry (a block with no lines, a table
// with no rows, an image with degenerate dimensions) is skipped and recorded
// as a degraded_input informational issue rather than aborting the run.
//
// The detector families:
//
//   - [OrphanWidowDetector] - paragraph fragments stranded by a page break
//   - [StrandedHeadingDetector] - headings with no body before the break
//   - [SplitTableDetector] - tables split without a repeated header, or too early
//   - [WhitespaceDetector] - excessive trailing whitespace on a page
//   - [RuntDetector] - a lone short word closing a paragraph
//   - [RiverDetector] - word gaps aligned vertically across consecutive lines
//   - [ImageResolutionDetector] - images below the effective-DPI floor
//   - [ColorProfileDetector] - non-print color spaces and profile mismatches
package detect
