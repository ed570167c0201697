package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRenderReport() *Report {
	return Aggregate("book.pdf", []Issue{
		anchored(KindOrphan, SeverityError, 1, 500),
		anchored(KindRunt, SeverityWarning, 2, 100),
		NewIssue(KindDegradedInput, SeverityInfo, 2, "dropped a malformed line"),
	})
}

func TestConsoleOutput(t *testing.T) {
	out := makeRenderReport().Console()

	assert.Contains(t, out, "book.pdf")
	assert.Contains(t, out, "1 error(s), 1 warning(s), 1 info(s)")
	assert.Contains(t, out, "[!!] page 1: orphan")
	assert.Contains(t, out, "[--] page 2: runt")
	assert.Contains(t, out, "Verdict: FAIL")
}

func TestConsoleCleanReport(t *testing.T) {
	out := Aggregate("book.pdf").Console()
	assert.Equal(t, "No issues found.", out)
}

func TestConsolePassVerdict(t *testing.T) {
	rep := Aggregate("book.pdf", []Issue{
		anchored(KindRunt, SeverityWarning, 1, 100),
	})
	assert.Contains(t, rep.Console(), "Verdict: PASS")
}

func TestJSONRoundTrips(t *testing.T) {
	out, err := makeRenderReport().JSON()
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "book.pdf", decoded.Source)
	assert.Len(t, decoded.Issues, 3)
	assert.Equal(t, 3, decoded.Summary.Total)
}

func TestJSONSeverityIsTextual(t *testing.T) {
	out, err := makeRenderReport().JSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"severity": "error"`)
	assert.NotContains(t, out, `"severity": 0`)
}

func TestJSONDeterministic(t *testing.T) {
	rep := makeRenderReport()
	a, err := rep.JSON()
	require.NoError(t, err)
	b, err := rep.JSON()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarkdownGroupsBySeverity(t *testing.T) {
	out := makeRenderReport().Markdown()

	assert.True(t, strings.HasPrefix(out, "# Analysis: book.pdf"))
	assert.Contains(t, out, "## Errors (1)")
	assert.Contains(t, out, "## Warnings (1)")
	assert.Contains(t, out, "## Infos (1)")

	// Error section comes before the warning section.
	assert.Less(t, strings.Index(out, "## Errors"), strings.Index(out, "## Warnings"))
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	rep := Aggregate("book.pdf", []Issue{
		anchored(KindRunt, SeverityWarning, 1, 100),
	})
	out := rep.Markdown()
	assert.NotContains(t, out, "## Errors")
	assert.Contains(t, out, "## Warnings (1)")
}

func TestSeverityStrings(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
}
