package principle

import (
	"testing"

	"github.com/praxislabs/tenet/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDocument_Complete(t *testing.T) {
	doc := &source.Document{
		Path: "principles/sql-injection.md",
		Frontmatter: map[string]any{
			"id":       "P_SQL_INJECTION",
			"title":    "SQL Injection Prevention",
			"category": "security_privacy",
			"severity": "Critical",
			"weight":   10,
			"applicability": map[string]any{
				"project_types": []any{"api", "web"},
				"languages":     []any{"all"},
			},
			"enforcement": "MUST",
			"rules": []any{
				map[string]any{
					"name":        "parameterized_queries",
					"description": "Use bound parameters for all user input",
				},
			},
		},
		Body: `# SQL Injection Prevention

**Severity**: critical

## Bad Example

` + "```python\nquery = \"SELECT * FROM users WHERE id = \" + user_id\n```" + `

## Good Example

` + "```python\ncursor.execute(\"SELECT * FROM users WHERE id = %s\", (user_id,))\n```" + `

✅ Autofix Available
`,
	}

	p, err := FromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "P_SQL_INJECTION", p.ID)
	assert.Equal(t, "SQL Injection Prevention", p.Title)
	assert.Equal(t, CategorySecurityPrivacy, p.Category)
	assert.Equal(t, SeverityCritical, p.Severity)
	assert.Equal(t, 10, p.Weight)
	assert.Equal(t, []string{"api", "web"}, p.Applicability.ProjectTypes)
	assert.Equal(t, []string{"all"}, p.Applicability.Languages)
	assert.Equal(t, "MUST", p.Enforcement)
	assert.Equal(t, "principles/sql-injection.md", p.SourcePath)

	require.Len(t, p.Rules, 1)
	assert.Equal(t, "parameterized_queries", p.Rules[0].Name)

	assert.Contains(t, p.BadExample, "user_id")
	assert.Contains(t, p.GoodExample, "cursor.execute")
	assert.True(t, p.AutofixAvailable)
}

func TestFromDocument_NoFrontmatter(t *testing.T) {
	doc := &source.Document{Body: "# Just prose"}

	_, err := FromDocument(doc)
	assert.ErrorIs(t, err, ErrNoFrontmatter)
}

func TestFromDocument_LenientOnMissingFields(t *testing.T) {
	doc := &source.Document{
		Frontmatter: map[string]any{"id": "P_MINIMAL"},
		Body:        "# Minimal",
	}

	p, err := FromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "P_MINIMAL", p.ID)
	assert.Empty(t, p.Title)
	assert.False(t, p.Severity.Known())
	assert.True(t, p.Applicability.Empty())
	assert.Zero(t, p.Weight)
}

func TestFromDocument_AutofixFrontmatterOverridesBody(t *testing.T) {
	doc := &source.Document{
		Frontmatter: map[string]any{
			"id":                "P_TEST",
			"autofix_available": false,
		},
		Body: "prose\n\nAutofix Available\n",
	}

	p, err := FromDocument(doc)
	require.NoError(t, err)
	assert.False(t, p.AutofixAvailable)
}

func TestFromDocument_ScalarApplicability(t *testing.T) {
	doc := &source.Document{
		Frontmatter: map[string]any{
			"id": "P_TEST",
			"applicability": map[string]any{
				"project_types": "all",
				"languages":     "go",
			},
		},
	}

	p, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"all"}, p.Applicability.ProjectTypes)
	assert.Equal(t, []string{"go"}, p.Applicability.Languages)
}

func TestFromDocument_FloatWeight(t *testing.T) {
	doc := &source.Document{
		Frontmatter: map[string]any{
			"id":     "P_TEST",
			"weight": 7.0,
		},
	}

	p, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Weight)
}

func TestExtractExample_StopsAtNextHeading(t *testing.T) {
	body := `## Bad Example

No fenced block here.

## Good Example

` + "```go\nreturn fmt.Errorf(\"open config: %w\", err)\n```" + `
`

	assert.Empty(t, extractExample(body, "bad"))
	assert.Contains(t, extractExample(body, "good"), "fmt.Errorf")
}

func TestHasAutofixMarker_OnlyNearEnd(t *testing.T) {
	body := "Autofix Available\n" + longFiller() + "\nfinal line\n"
	assert.False(t, hasAutofixMarker(body))

	body = longFiller() + "\n\nAutofix Available\n"
	assert.True(t, hasAutofixMarker(body))
}

func longFiller() string {
	out := ""
	for i := 0; i < 10; i++ {
		out += "filler line\n"
	}
	return out
}
