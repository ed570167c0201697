package report

import (
	"fmt"

	"github.com/presslint/presslint/model"
)

// Severity represents how serious an issue is
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns a string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Kind identifies one defect family from the closed taxonomy
type Kind string

const (
	KindOrphan               Kind = "orphan"
	KindWidow                Kind = "widow"
	KindStrandedHeading      Kind = "stranded_heading"
	KindSplitTableNoHeader   Kind = "split_table_no_header"
	KindSplitTableTooEarly   Kind = "split_table_too_early"
	KindExcessiveWhitespace  Kind = "excessive_whitespace"
	KindRunt                 Kind = "runt"
	KindRiver                Kind = "river"
	KindLowResolutionImage   Kind = "low_resolution_image"
	KindNonPrintColorSpace   Kind = "non_print_color_space"
	KindColorProfileMismatch Kind = "color_profile_mismatch"
	KindDegradedInput        Kind = "degraded_input"
)

// Issue is one detected defect. Issues are pure values: created by a
// detector, never mutated, collected into a Report.
type Issue struct {
	// Kind is the defect family
	Kind Kind `json:"kind"`

	// Severity is error, warning or info
	Severity Severity `json:"severity"`

	// Page is the 1-based page the defect sits on (the first page for a
	// cross-page defect)
	Page int `json:"page"`

	// EndPage is the last page of a cross-page defect; zero for a
	// single-page issue
	EndPage int `json:"end_page,omitempty"`

	// Description is a short human-readable account, including the
	// measured quantity that triggered the issue
	Description string `json:"description"`

	// Anchor is an optional bounding box for tooling to highlight
	Anchor *model.BBox `json:"anchor,omitempty"`
}

// NewIssue creates a single-page issue
func NewIssue(kind Kind, severity Severity, page int, description string) Issue {
	return Issue{
		Kind:        kind,
		Severity:    severity,
		Page:        page,
		Description: description,
	}
}

// WithAnchor returns a copy of the issue carrying a geometric anchor
func (i Issue) WithAnchor(bbox model.BBox) Issue {
	b := bbox
	i.Anchor = &b
	return i
}

// WithEndPage returns a copy of the issue spanning through endPage
func (i Issue) WithEndPage(endPage int) Issue {
	i.EndPage = endPage
	return i
}

// PageLabel formats the issue's page or page range for display
func (i Issue) PageLabel() string {
	if i.EndPage > 0 && i.EndPage != i.Page {
		return fmt.Sprintf("pages %d-%d", i.Page, i.EndPage)
	}
	return fmt.Sprintf("page %d", i.Page)
}

// anchorTop returns the vertical sort key for same-page ordering.
// Issues without an anchor sort after anchored ones.
func (i Issue) anchorTop() float64 {
	if i.Anchor == nil {
		return 1e18
	}
	return i.Anchor.Top()
}
