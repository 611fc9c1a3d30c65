package principle

import (
	"strings"

	"github.com/praxislabs/tenet/source"
)

// autofixMarkers are trailing body markers that claim autofix support.
var autofixMarkers = []string{
	"autofix available",
	"autofix: available",
}

// FromDocument builds a Principle from a parsed document. Extraction is
// lenient: missing or malformed fields yield zero values so that corpus
// validation can report them with file context. The only hard requirement
// is the presence of frontmatter.
func FromDocument(doc *source.Document) (*Principle, error) {
	if !doc.HasFrontmatter() {
		return nil, ErrNoFrontmatter
	}

	fm := doc.Frontmatter
	p := &Principle{
		ID:         stringField(fm, "id"),
		Title:      stringField(fm, "title"),
		Category:   Category(strings.ToLower(stringField(fm, "category"))),
		Severity:   ParseSeverity(stringField(fm, "severity")),
		Weight:     intField(fm, "weight"),
		Body:       doc.Body,
		SourcePath: doc.Path,
	}

	if app, ok := fm["applicability"].(map[string]any); ok {
		p.Applicability = Applicability{
			ProjectTypes: stringList(app["project_types"]),
			Languages:    stringList(app["languages"]),
		}
	}

	p.Enforcement = stringField(fm, "enforcement")
	p.Rules = ruleList(fm["rules"])

	p.BadExample = extractExample(doc.Body, "bad")
	p.GoodExample = extractExample(doc.Body, "good")

	if v, ok := fm["autofix_available"].(bool); ok {
		p.AutofixAvailable = v
	} else {
		p.AutofixAvailable = hasAutofixMarker(doc.Body)
	}

	return p, nil
}

func stringField(fm map[string]any, key string) string {
	if s, ok := fm[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func intField(fm map[string]any, key string) int {
	switch v := fm[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []any:
		var out []string
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return list
	case string:
		// A bare scalar is treated as a single-element set.
		if list = strings.TrimSpace(list); list != "" {
			return []string{list}
		}
	}
	return nil
}

func ruleList(v any) []Rule {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var rules []Rule
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rule := Rule{
			Name:        stringField(m, "name"),
			Description: stringField(m, "description"),
		}
		if rule.Name != "" || rule.Description != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}

// extractExample finds the first fenced code block after a heading whose text
// contains "<kind> example" (for example "## Bad Example").
func extractExample(body, kind string) string {
	lines := strings.Split(body, "\n")
	want := kind + " example"

	inSection := false
	inFence := false
	var block []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#") {
			if inSection && !inFence {
				// Section ended before any fenced block
				inSection = false
			}
			heading := strings.ToLower(strings.TrimLeft(trimmed, "# "))
			if strings.Contains(heading, want) {
				inSection = true
			}
			continue
		}

		if !inSection {
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				return strings.Join(block, "\n")
			}
			inFence = true
			continue
		}

		if inFence {
			block = append(block, line)
		}
	}

	return ""
}

// hasAutofixMarker checks the last non-empty body lines for an autofix claim.
func hasAutofixMarker(body string) bool {
	lines := strings.Split(body, "\n")
	checked := 0
	for i := len(lines) - 1; i >= 0 && checked < 5; i-- {
		line := strings.ToLower(strings.TrimSpace(lines[i]))
		if line == "" {
			continue
		}
		checked++
		for _, marker := range autofixMarkers {
			if strings.Contains(line, marker) {
				return true
			}
		}
	}
	return false
}
