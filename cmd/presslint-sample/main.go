// Command presslint-sample writes a small PDF that deliberately exhibits
// print-quality problems. It exists to exercise the PDF ingestion path by
// hand:
//
//	presslint-sample -o sample.pdf && presslint sample.pdf
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/phuslu/log"
)

func main() {
	out := flag.String("o", "sample.pdf", "output file")
	flag.Parse()

	log.DefaultLogger = log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true, Writer: os.Stderr},
	}

	if err := writeSample(*out); err != nil {
		log.Error().Err(err).Str("file", *out).Msg("writing sample")
		os.Exit(1)
	}
	log.Info().Str("file", *out).Msg("sample written")
}

// writeSample builds an A5 booklet page sequence with known defects: a
// heading stranded at a page bottom, a paragraph whose last line carries a
// single short word, and a page that ends far above its bottom margin.
func writeSample(path string) error {
	pdf := fpdf.New("P", "pt", "A5", "")
	pdf.SetMargins(50, 55, 50)
	pdf.SetAutoPageBreak(false, 55)

	body := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 6)

	// Page 1: normal paragraphs, then a heading as the very last line.
	pdf.AddPage()
	pdf.SetFont("Times", "", 11)
	pdf.MultiCell(0, 14, body, "", "L", false)
	pdf.Ln(10)
	pdf.MultiCell(0, 14, body, "", "L", false)
	pdf.SetY(515)
	pdf.SetFont("Times", "B", 16)
	pdf.CellFormat(0, 20, "Chapter Two", "", 1, "L", false, 0, "")

	// Page 2: a paragraph ending in a one-word line, then trailing emptiness
	// well above the bottom margin.
	pdf.AddPage()
	pdf.SetFont("Times", "", 11)
	pdf.MultiCell(0, 14, body+"Done.", "", "L", false)

	// Page 3: keeps page 2 non-final so its whitespace counts.
	pdf.AddPage()
	pdf.SetFont("Times", "", 11)
	pdf.MultiCell(0, 14, body, "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("generating %s: %w", path, err)
	}
	return nil
}
