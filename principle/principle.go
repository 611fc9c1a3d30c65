// Package principle defines the principle record model: a documented
// engineering policy with metadata, applicability rules, and illustrative
// examples.
package principle

import "strings"

// Wildcard matches any project type or language in applicability sets.
const Wildcard = "all"

// Severity ranks the importance of a principle.
type Severity string

// Severity levels, ordered critical > high > medium > low.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists all known severity levels in rank order.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Rank returns the ordinal rank of the severity. Higher is more severe.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Known returns true if the severity is one of the defined levels.
func (s Severity) Known() bool {
	return s.Rank() > 0
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity normalizes a raw severity string.
func ParseSeverity(raw string) Severity {
	return Severity(strings.ToLower(strings.TrimSpace(raw)))
}

// Category classifies a principle by topic.
type Category string

// Known categories.
const (
	CategoryArchitecture    Category = "architecture"
	CategoryCodeQuality     Category = "code_quality"
	CategoryProjectSpecific Category = "project-specific"
	CategorySecurityPrivacy Category = "security_privacy"
	CategoryUniversal       Category = "universal"
)

// Categories lists all known categories.
var Categories = []Category{
	CategoryArchitecture,
	CategoryCodeQuality,
	CategoryProjectSpecific,
	CategorySecurityPrivacy,
	CategoryUniversal,
}

// Known returns true if the category is one of the defined topics.
func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category as a string.
func (c Category) String() string {
	return string(c)
}

// Rule is a named sub-rule of a principle.
type Rule struct {
	// Name is a short machine-readable rule name.
	Name string `json:"name" yaml:"name"`

	// Description explains what the rule requires.
	Description string `json:"description" yaml:"description"`
}

// Applicability declares which project kinds and language ecosystems a
// principle governs. The value "all" acts as a wildcard.
type Applicability struct {
	ProjectTypes []string `json:"project_types" yaml:"project_types"`
	Languages    []string `json:"languages" yaml:"languages"`
}

// Matches reports whether the applicability covers the given project type
// and language. Empty target values match only wildcard sets.
func (a Applicability) Matches(projectType, language string) bool {
	return matchesSet(a.ProjectTypes, projectType) && matchesSet(a.Languages, language)
}

// Empty returns true if either applicability set is empty.
func (a Applicability) Empty() bool {
	return len(a.ProjectTypes) == 0 || len(a.Languages) == 0
}

func matchesSet(set []string, value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, entry := range set {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == Wildcard {
			return true
		}
		if value != "" && entry == value {
			return true
		}
	}
	return false
}

// Principle is a single documented policy record with metadata and
// illustrative examples.
type Principle struct {
	// ID is the unique stable identifier, e.g. "P_RATE_LIMITING".
	ID string `json:"id"`

	// Title is the human-readable name.
	Title string `json:"title"`

	// Category is the topic classification.
	Category Category `json:"category"`

	// Severity is the ordinal importance ranking.
	Severity Severity `json:"severity"`

	// Weight is the numeric priority used for ordering within a severity.
	Weight int `json:"weight"`

	// Applicability declares the governed project types and languages.
	Applicability Applicability `json:"applicability"`

	// Enforcement describes required verification skills or an
	// enforcement mode such as "SHOULD".
	Enforcement string `json:"enforcement,omitempty"`

	// Rules are optional named sub-rules.
	Rules []Rule `json:"rules,omitempty"`

	// BadExample is an illustrative counter-example, not executable.
	BadExample string `json:"bad_example,omitempty"`

	// GoodExample is an illustrative compliant example, not executable.
	GoodExample string `json:"good_example,omitempty"`

	// AutofixAvailable indicates a machine-actionable fix exists.
	AutofixAvailable bool `json:"autofix_available,omitempty"`

	// Body is the prose content without frontmatter.
	Body string `json:"-"`

	// SourcePath is the file the principle was loaded from.
	SourcePath string `json:"source_path,omitempty"`

	// ContentHash is the SHA256 of the source content, for staleness checks.
	ContentHash string `json:"content_hash,omitempty"`
}

// Rule returns the named sub-rule, if present.
func (p *Principle) Rule(name string) (Rule, bool) {
	for _, r := range p.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
