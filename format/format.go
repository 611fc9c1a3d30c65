// Package format renders principles, match reports, and validation results
// for terminal and machine consumption.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/praxislabs/tenet/match"
	"github.com/praxislabs/tenet/principle"
	"github.com/praxislabs/tenet/validate"
)

var (
	criticalStyle = color.New(color.FgRed, color.Bold)
	highStyle     = color.New(color.FgHiYellow, color.Bold)
	mediumStyle   = color.New(color.FgYellow)
	lowStyle      = color.New(color.FgWhite)
	errorStyle    = color.New(color.FgRed, color.Bold)
	warningStyle  = color.New(color.FgHiYellow, color.Bold)
	idStyle       = color.New(color.FgCyan, color.Bold)
	fileStyle     = color.New(color.FgCyan)
	ruleStyle     = color.New(color.FgYellow, color.Bold)
)

// DisableColor turns off colorized output for all formatters.
func DisableColor() {
	color.NoColor = true
}

// severityStyle returns the style for a principle severity.
func severityStyle(s principle.Severity) *color.Color {
	switch s {
	case principle.SeverityCritical:
		return criticalStyle
	case principle.SeverityHigh:
		return highStyle
	case principle.SeverityMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}

// issueStyle returns the style for a validation issue severity.
func issueStyle(s validate.IssueSeverity) *color.Color {
	if s == validate.SeverityError {
		return errorStyle
	}
	return warningStyle
}

// Table writes an aligned table of principles.
func Table(w io.Writer, principles []*principle.Principle) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEVERITY\tWEIGHT\tCATEGORY\tTITLE")
	for _, p := range principles {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			idStyle.Sprint(p.ID),
			severityStyle(p.Severity).Sprint(p.Severity),
			p.Weight,
			p.Category,
			p.Title)
	}
	tw.Flush()
}

// Detail writes a full principle description.
func Detail(w io.Writer, p *principle.Principle) {
	fmt.Fprintf(w, "%s %s\n", idStyle.Sprint(p.ID), p.Title)
	fmt.Fprintf(w, "  severity:      %s\n", severityStyle(p.Severity).Sprint(p.Severity))
	fmt.Fprintf(w, "  category:      %s\n", p.Category)
	fmt.Fprintf(w, "  weight:        %d\n", p.Weight)
	fmt.Fprintf(w, "  project types: %v\n", p.Applicability.ProjectTypes)
	fmt.Fprintf(w, "  languages:     %v\n", p.Applicability.Languages)
	if p.Enforcement != "" {
		fmt.Fprintf(w, "  enforcement:   %s\n", p.Enforcement)
	}
	if p.AutofixAvailable {
		fmt.Fprintf(w, "  autofix:       available\n")
	}
	if len(p.Rules) > 0 {
		fmt.Fprintln(w, "  rules:")
		for _, r := range p.Rules {
			fmt.Fprintf(w, "    %s: %s\n", ruleStyle.Sprint(r.Name), r.Description)
		}
	}
	if p.BadExample != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", errorStyle.Sprint("Bad example:"), indent(p.BadExample))
	}
	if p.GoodExample != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", color.New(color.FgGreen, color.Bold).Sprint("Good example:"), indent(p.GoodExample))
	}
}

// Issues writes validation findings grouped by file.
func Issues(w io.Writer, result *validate.Result) {
	for _, issue := range result.Issues {
		label := issueStyle(issue.Severity).Sprint(issue.Severity)
		location := fileStyle.Sprint(issue.Path)
		if issue.PrincipleID != "" {
			location = fmt.Sprintf("%s (%s)", location, issue.PrincipleID)
		}
		fmt.Fprintf(w, "%s: %s [%s] %s\n", label, location, ruleStyle.Sprint(string(issue.Code)), issue.Message)
	}

	errs := result.Count(validate.SeverityError)
	warns := result.Count(validate.SeverityWarning)
	fmt.Fprintf(w, "\n%d error(s), %d warning(s)\n", errs, warns)
}

// Report writes a match report as a prioritized table.
func Report(w io.Writer, report *match.Report) {
	fmt.Fprintf(w, "Target: project_type=%s language=%s\n", report.Target.ProjectType, report.Target.Language)
	fmt.Fprintf(w, "Applicable principles: %d\n\n", len(report.Matches))
	Table(w, report.Matches)
}

// JSON writes any result as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
