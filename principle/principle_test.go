package principle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_Rank(t *testing.T) {
	assert.Greater(t, SeverityCritical.Rank(), SeverityHigh.Rank())
	assert.Greater(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Greater(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Greater(t, SeverityLow.Rank(), Severity("urgent").Rank())
}

func TestSeverity_Known(t *testing.T) {
	for _, s := range Severities {
		assert.True(t, s.Known(), "severity %s should be known", s)
	}
	assert.False(t, Severity("blocker").Known())
	assert.False(t, Severity("").Known())
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, ParseSeverity("  High "))
	assert.Equal(t, SeverityCritical, ParseSeverity("CRITICAL"))
	assert.Equal(t, Severity("bogus"), ParseSeverity("bogus"))
}

func TestCategory_Known(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Known(), "category %s should be known", c)
	}
	assert.False(t, Category("misc").Known())
}

func TestApplicability_Matches(t *testing.T) {
	tests := []struct {
		name        string
		app         Applicability
		projectType string
		language    string
		want        bool
	}{
		{
			name: "exact match on both",
			app: Applicability{
				ProjectTypes: []string{"api", "web"},
				Languages:    []string{"python"},
			},
			projectType: "api",
			language:    "python",
			want:        true,
		},
		{
			name: "wildcard languages",
			app: Applicability{
				ProjectTypes: []string{"api", "web"},
				Languages:    []string{"all"},
			},
			projectType: "api",
			language:    "rust",
			want:        true,
		},
		{
			name: "project type mismatch despite wildcard languages",
			app: Applicability{
				ProjectTypes: []string{"api", "web"},
				Languages:    []string{"all"},
			},
			projectType: "library",
			language:    "rust",
			want:        false,
		},
		{
			name: "wildcard on both",
			app: Applicability{
				ProjectTypes: []string{"all"},
				Languages:    []string{"all"},
			},
			projectType: "cli",
			language:    "go",
			want:        true,
		},
		{
			name: "case insensitive",
			app: Applicability{
				ProjectTypes: []string{"API"},
				Languages:    []string{"Python"},
			},
			projectType: "api",
			language:    "python",
			want:        true,
		},
		{
			name: "empty sets never match",
			app:  Applicability{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.app.Matches(tt.projectType, tt.language))
		})
	}
}

func TestApplicability_Empty(t *testing.T) {
	assert.True(t, Applicability{}.Empty())
	assert.True(t, Applicability{ProjectTypes: []string{"all"}}.Empty())
	assert.False(t, Applicability{
		ProjectTypes: []string{"all"},
		Languages:    []string{"all"},
	}.Empty())
}

func TestPrinciple_Rule(t *testing.T) {
	p := &Principle{
		Rules: []Rule{
			{Name: "no_string_concat", Description: "Never build SQL via concatenation"},
		},
	}

	r, ok := p.Rule("no_string_concat")
	assert.True(t, ok)
	assert.Equal(t, "Never build SQL via concatenation", r.Description)

	_, ok = p.Rule("missing")
	assert.False(t, ok)
}
