package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Console renders the report as a plain-text summary for terminal output.
func (r *Report) Console() string {
	if !r.HasIssues() {
		return "No issues found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis: %s\n", r.Source)
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Found %d error(s), %d warning(s), %d info(s)\n\n",
		r.Summary.BySeverity[SeverityError.String()],
		r.Summary.BySeverity[SeverityWarning.String()],
		r.Summary.BySeverity[SeverityInfo.String()])

	for _, issue := range r.Issues {
		icon := "  "
		switch issue.Severity {
		case SeverityError:
			icon = "!!"
		case SeverityWarning:
			icon = "--"
		}
		fmt.Fprintf(&sb, "[%s] %s: %s\n", icon, issue.PageLabel(), issue.Kind)
		fmt.Fprintf(&sb, "    %s\n\n", issue.Description)
	}

	verdict := "PASS"
	if !r.Summary.Pass {
		verdict = "FAIL"
	}
	fmt.Fprintf(&sb, "Verdict: %s\n", verdict)

	return sb.String()
}

// JSON renders the report as indented JSON. The output is deterministic for
// a given report, so two runs over the same document compare byte-identical.
func (r *Report) JSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}

// Markdown renders the report as a Markdown document grouped by severity.
func (r *Report) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Analysis: %s\n\n", r.Source)
	fmt.Fprintf(&sb, "**Total issues:** %d\n\n", r.Summary.Total)

	for _, severity := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		issues := r.bySeverity(severity)
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "## %ss (%d)\n\n", titleCase(severity.String()), len(issues))
		for _, issue := range issues {
			fmt.Fprintf(&sb, "### %s: %s\n\n", titleCase(issue.PageLabel()), issue.Kind)
			fmt.Fprintf(&sb, "%s\n\n", issue.Description)
		}
	}

	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
