// Package validate lints a loaded corpus against the principle content
// invariants: unique IDs, known severities and categories, non-empty
// applicability, weight bounds, and consistency between prose claims and
// structured metadata.
package validate

import (
	"fmt"
	"regexp"

	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/principle"
)

// Code identifies a validation check.
type Code string

// Validation check codes.
const (
	CodeLoadFailure        Code = "load-failure"
	CodeMissingID          Code = "missing-id"
	CodeDuplicateID        Code = "duplicate-id"
	CodeMissingTitle       Code = "missing-title"
	CodeUnknownSeverity    Code = "unknown-severity"
	CodeUnknownCategory    Code = "unknown-category"
	CodeEmptyApplicability Code = "empty-applicability"
	CodeWeightOutOfRange   Code = "weight-out-of-range"
	CodeAutofixWithoutRule Code = "autofix-without-rule"
	CodeSeverityMismatch   Code = "severity-mismatch"
)

// IssueSeverity ranks a validation finding.
type IssueSeverity string

// Issue severities.
const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue is a single validation finding.
type Issue struct {
	// Path is the source file the finding refers to.
	Path string `json:"path"`

	// PrincipleID is the affected principle ID, when known.
	PrincipleID string `json:"principle_id,omitempty"`

	// Code identifies the violated check.
	Code Code `json:"code"`

	// Severity ranks the finding.
	Severity IssueSeverity `json:"severity"`

	// Message describes the finding.
	Message string `json:"message"`
}

// Result aggregates validation findings over a corpus.
type Result struct {
	Issues []Issue `json:"issues"`
}

// Ok returns true if no error-severity issues were found.
func (r *Result) Ok() bool {
	return r.Count(SeverityError) == 0
}

// Count returns the number of issues with the given severity.
func (r *Result) Count(severity IssueSeverity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// check validates a single principle and appends findings.
type check func(p *principle.Principle, result *Result)

// checks is the fixed rule table applied to every principle.
var checks = []check{
	checkID,
	checkTitle,
	checkSeverity,
	checkCategory,
	checkApplicability,
	checkWeight,
	checkAutofixConsistency,
	checkSeverityRestatement,
}

// Corpus validates every principle in the corpus, including corpus-level
// invariants such as ID uniqueness, and reports load failures as issues.
func Corpus(c *corpus.Corpus) *Result {
	result := &Result{}

	for _, loadErr := range c.LoadErrors() {
		result.add(Issue{
			Path:     loadErr.Path,
			Code:     CodeLoadFailure,
			Severity: SeverityError,
			Message:  loadErr.Err.Error(),
		})
	}

	seen := make(map[string]string) // id -> first source path
	for _, p := range c.All() {
		for _, chk := range checks {
			chk(p, result)
		}

		if p.ID == "" {
			continue
		}
		if first, dup := seen[p.ID]; dup {
			result.add(Issue{
				Path:        p.SourcePath,
				PrincipleID: p.ID,
				Code:        CodeDuplicateID,
				Severity:    SeverityError,
				Message:     fmt.Sprintf("id %q already defined in %s", p.ID, first),
			})
		} else {
			seen[p.ID] = p.SourcePath
		}
	}

	return result
}

func (r *Result) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

func checkID(p *principle.Principle, result *Result) {
	if p.ID == "" {
		result.add(Issue{
			Path:     p.SourcePath,
			Code:     CodeMissingID,
			Severity: SeverityError,
			Message:  "frontmatter has no id",
		})
	}
}

func checkTitle(p *principle.Principle, result *Result) {
	if p.Title == "" {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeMissingTitle,
			Severity:    SeverityWarning,
			Message:     "frontmatter has no title",
		})
	}
}

func checkSeverity(p *principle.Principle, result *Result) {
	if !p.Severity.Known() {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeUnknownSeverity,
			Severity:    SeverityError,
			Message:     fmt.Sprintf("severity %q is not one of critical, high, medium, low", p.Severity),
		})
	}
}

func checkCategory(p *principle.Principle, result *Result) {
	if !p.Category.Known() {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeUnknownCategory,
			Severity:    SeverityWarning,
			Message:     fmt.Sprintf("category %q is not a known topic", p.Category),
		})
	}
}

func checkApplicability(p *principle.Principle, result *Result) {
	if len(p.Applicability.ProjectTypes) == 0 {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeEmptyApplicability,
			Severity:    SeverityError,
			Message:     "applicability.project_types is empty",
		})
	}
	if len(p.Applicability.Languages) == 0 {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeEmptyApplicability,
			Severity:    SeverityError,
			Message:     "applicability.languages is empty",
		})
	}
}

func checkWeight(p *principle.Principle, result *Result) {
	if p.Weight < 1 || p.Weight > 10 {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeWeightOutOfRange,
			Severity:    SeverityWarning,
			Message:     fmt.Sprintf("weight %d is outside 1-10", p.Weight),
		})
	}
}

// checkAutofixConsistency requires a machine-actionable sub-rule whenever the
// document claims autofix support.
func checkAutofixConsistency(p *principle.Principle, result *Result) {
	if p.AutofixAvailable && len(p.Rules) == 0 {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeAutofixWithoutRule,
			Severity:    SeverityError,
			Message:     "autofix claimed but no machine-actionable rule is listed",
		})
	}
}

var severityRestatementRe = regexp.MustCompile(`(?im)^\s*\**severity\**\s*[:*]+\s*\**\s*(critical|high|medium|low)\b`)

// checkSeverityRestatement compares the body's severity restatement against
// the frontmatter value.
func checkSeverityRestatement(p *principle.Principle, result *Result) {
	m := severityRestatementRe.FindStringSubmatch(p.Body)
	if m == nil {
		return
	}
	restated := principle.ParseSeverity(m[1])
	if p.Severity.Known() && restated != p.Severity {
		result.add(Issue{
			Path:        p.SourcePath,
			PrincipleID: p.ID,
			Code:        CodeSeverityMismatch,
			Severity:    SeverityWarning,
			Message:     fmt.Sprintf("body restates severity %q but frontmatter says %q", restated, p.Severity),
		})
	}
}
