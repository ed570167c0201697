// Command presslint checks the print quality of a rendered document and
// prints a severity-ranked report.
//
// Usage:
//
//	presslint [flags] <input>
//
// The input is either a rendered PDF or a .json geometry stream emitted by a
// layout engine. Exit codes: 0 clean or warnings only, 2 errors found (or
// warnings under -strict), 3 usage or ingestion failure.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"

	"github.com/presslint/presslint"
	"github.com/presslint/presslint/ingest"
	"github.com/presslint/presslint/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		asJSON     = flag.Bool("json", false, "emit the report as JSON")
		asMarkdown = flag.Bool("markdown", false, "emit the report as Markdown")
		configPath = flag.String("config", "", "TOML file overriding check thresholds")
		strict     = flag.Bool("strict", false, "treat warnings as errors for the exit code")
		screen     = flag.Bool("screen", false, "document is destined for screen viewing, skip print color checks")
		verbose    = flag.Bool("v", false, "verbose diagnostics")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: presslint [flags] <input.pdf | input.json>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.DefaultLogger = log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true, Writer: os.Stderr},
	}
	if *verbose {
		log.DefaultLogger.Level = log.DebugLevel
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return 3
	}
	input := flag.Arg(0)

	analyzer, err := analyzerFor(input)
	if err != nil {
		log.Error().Err(err).Str("input", input).Msg("cannot read input")
		return 3
	}
	if *configPath != "" {
		analyzer = analyzer.ThresholdsFile(*configPath)
	}
	if *screen {
		analyzer = analyzer.ScreenOnly()
	}

	rep, err := analyzer.Run(context.Background())
	if err != nil {
		log.Error().Err(err).Str("input", input).Msg("analysis failed")
		return 3
	}

	log.Debug().
		Int("issues", rep.Summary.Total).
		Int("errors", len(rep.Errors())).
		Int("warnings", len(rep.Warnings())).
		Msg("analysis complete")

	switch {
	case *asJSON:
		out, err := rep.JSON()
		if err != nil {
			log.Error().Err(err).Msg("rendering report")
			return 3
		}
		fmt.Println(out)
	case *asMarkdown:
		fmt.Print(rep.Markdown())
	default:
		fmt.Print(rep.Console())
	}

	return exitCode(rep, *strict)
}

// analyzerFor picks the ingestion path from the input extension: .json is a
// geometry stream, everything else is treated as a PDF.
func analyzerFor(input string) (*presslint.Analyzer, error) {
	if strings.EqualFold(filepath.Ext(input), ".json") {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}
		var stream ingest.Stream
		if err := json.Unmarshal(data, &stream); err != nil {
			return nil, fmt.Errorf("decoding geometry stream: %w", err)
		}
		if stream.Source == "" {
			stream.Source = input
		}
		return presslint.FromStream(&stream), nil
	}
	return presslint.Open(input), nil
}

func exitCode(rep *report.Report, strict bool) int {
	switch {
	case len(rep.Errors()) > 0:
		return 2
	case len(rep.Warnings()) > 0 && strict:
		return 2
	default:
		return 0
	}
}
