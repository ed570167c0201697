package report

import "sort"

// Summary holds issue counts and the overall verdict for one analysis run.
type Summary struct {
	// Total is the number of issues after deduplication
	Total int `json:"total"`

	// ByKind counts issues per defect kind
	ByKind map[Kind]int `json:"by_kind"`

	// BySeverity counts issues per severity
	BySeverity map[string]int `json:"by_severity"`

	// Pass is false when any error-severity issue exists
	Pass bool `json:"pass"`
}

// Report is the final ordered diagnostic output of one analysis run.
// It is built once by Aggregate and not mutated afterwards.
type Report struct {
	// Source identifies the analyzed document
	Source string `json:"source"`

	// Issues are the deduplicated issues in display order: page ascending,
	// then severity (error before warning before info), then vertical
	// position top to bottom
	Issues []Issue `json:"issues"`

	// Summary holds the counts and verdict
	Summary Summary `json:"summary"`
}

// anchorOverlapDedupe is the minimum anchor overlap ratio for two same-kind,
// same-page issues to be considered duplicates.
const anchorOverlapDedupe = 0.5

// Aggregate collects the issue lists produced by the detectors into a Report:
// it deduplicates geometrically identical issues, orders them, and computes
// the summary counts and pass/fail verdict.
func Aggregate(source string, issueLists ...[]Issue) *Report {
	var all []Issue
	for _, list := range issueLists {
		all = append(all, list...)
	}

	all = dedupe(all)

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Severity != b.Severity {
			return a.Severity < b.Severity
		}
		return a.anchorTop() < b.anchorTop()
	})

	summary := Summary{
		Total:      len(all),
		ByKind:     make(map[Kind]int),
		BySeverity: make(map[string]int),
		Pass:       true,
	}
	for _, issue := range all {
		summary.ByKind[issue.Kind]++
		summary.BySeverity[issue.Severity.String()]++
		if issue.Severity == SeverityError {
			summary.Pass = false
		}
	}

	return &Report{
		Source:  source,
		Issues:  all,
		Summary: summary,
	}
}

// dedupe drops issues that repeat an earlier issue of the same kind on the
// same page with an overlapping anchor. Detector order is preserved for the
// survivors.
func dedupe(issues []Issue) []Issue {
	var out []Issue
	for _, candidate := range issues {
		if isDuplicate(out, candidate) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func isDuplicate(kept []Issue, candidate Issue) bool {
	for _, existing := range kept {
		if existing.Kind != candidate.Kind || existing.Page != candidate.Page {
			continue
		}
		if existing.Anchor == nil && candidate.Anchor == nil {
			return true
		}
		if existing.Anchor == nil || candidate.Anchor == nil {
			continue
		}
		if existing.Anchor.OverlapRatio(*candidate.Anchor) >= anchorOverlapDedupe {
			return true
		}
	}
	return false
}

// Errors returns the error-severity issues in report order
func (r *Report) Errors() []Issue {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning-severity issues in report order
func (r *Report) Warnings() []Issue {
	return r.bySeverity(SeverityWarning)
}

// Infos returns the info-severity issues in report order
func (r *Report) Infos() []Issue {
	return r.bySeverity(SeverityInfo)
}

func (r *Report) bySeverity(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

// HasIssues returns true when the report contains any issue
func (r *Report) HasIssues() bool {
	return r != nil && len(r.Issues) > 0
}
