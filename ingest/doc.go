// Package ingest builds analyzable documents from rendered output.
//
// Two inputs are supported:
//
//   - A [Stream]: the JSON geometry dump a layout engine emits alongside its
//     rendered pages, carrying positioned lines, table regions and placed
//     images. This is the richest input and the one [Build] consumes.
//   - A PDF file on disk, via [FromPDF]: the file is validated and its text
//     geometry extracted. Tables and images are not recoverable on this path.
//
// Ingestion is tolerant by design. Entities with broken geometry are dropped
// rather than failing the whole document, and each drop is reported as a
// degraded-input issue so the final report records what was skipped. Only an
// input that cannot be read at all yields [ErrIngestionUnavailable].
//
// Beyond conversion, ingestion derives structure the checks depend on: lines
// are grouped into logical blocks (paragraphs, headings, list items,
// captions), and paragraphs that continue across a page break are stitched
// into a single block spanning both pages.
package ingest
