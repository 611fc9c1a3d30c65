package match

import (
	"testing"

	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/principle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() *corpus.Corpus {
	return corpus.New([]*principle.Principle{
		{
			ID:       "P_RATE_LIMITING",
			Title:    "Rate Limiting",
			Category: principle.CategorySecurityPrivacy,
			Severity: principle.SeverityHigh,
			Weight:   8,
			Applicability: principle.Applicability{
				ProjectTypes: []string{"api", "web"},
				Languages:    []string{"all"},
			},
		},
		{
			ID:       "P_SQL_INJECTION",
			Title:    "SQL Injection Prevention",
			Category: principle.CategorySecurityPrivacy,
			Severity: principle.SeverityCritical,
			Weight:   10,
			Applicability: principle.Applicability{
				ProjectTypes: []string{"all"},
				Languages:    []string{"all"},
			},
		},
		{
			ID:       "P_API_VERSIONING",
			Title:    "API Versioning",
			Category: principle.CategoryArchitecture,
			Severity: principle.SeverityHigh,
			Weight:   6,
			Applicability: principle.Applicability{
				ProjectTypes: []string{"api"},
				Languages:    []string{"all"},
			},
		},
		{
			ID:       "P_DOCSTRINGS",
			Title:    "Public API Docstrings",
			Category: principle.CategoryCodeQuality,
			Severity: principle.SeverityLow,
			Weight:   5,
			Applicability: principle.Applicability{
				ProjectTypes: []string{"library"},
				Languages:    []string{"python"},
			},
		},
	}, nil)
}

func matchIDs(report *Report) []string {
	var ids []string
	for _, p := range report.Matches {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestEngine_Match_APIPython(t *testing.T) {
	engine := NewEngine(testCorpus())

	report := engine.Match(Target{ProjectType: "api", Language: "python"}, Options{})

	// Ordered by severity rank desc, then weight desc, then ID
	assert.Equal(t, []string{
		"P_SQL_INJECTION",
		"P_RATE_LIMITING",
		"P_API_VERSIONING",
	}, matchIDs(report))

	assert.NotEmpty(t, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, "api", report.Target.ProjectType)
}

func TestEngine_Match_LibraryRustExcludesRateLimiting(t *testing.T) {
	engine := NewEngine(testCorpus())

	report := engine.Match(Target{ProjectType: "library", Language: "rust"}, Options{})

	ids := matchIDs(report)
	assert.NotContains(t, ids, "P_RATE_LIMITING")
	assert.NotContains(t, ids, "P_DOCSTRINGS")
	assert.Contains(t, ids, "P_SQL_INJECTION")
}

func TestEngine_Match_MinSeverity(t *testing.T) {
	engine := NewEngine(testCorpus())

	report := engine.Match(
		Target{ProjectType: "api", Language: "python"},
		Options{MinSeverity: principle.SeverityCritical},
	)

	assert.Equal(t, []string{"P_SQL_INJECTION"}, matchIDs(report))
}

func TestEngine_Match_CategoryFilter(t *testing.T) {
	engine := NewEngine(testCorpus())

	report := engine.Match(
		Target{ProjectType: "api", Language: "python"},
		Options{Categories: []principle.Category{principle.CategoryArchitecture}},
	)

	assert.Equal(t, []string{"P_API_VERSIONING"}, matchIDs(report))
}

func TestEngine_Match_TieBreakOnWeightThenID(t *testing.T) {
	c := corpus.New([]*principle.Principle{
		{
			ID:       "P_B",
			Severity: principle.SeverityHigh,
			Weight:   7,
			Applicability: principle.Applicability{
				ProjectTypes: []string{"all"},
				Languages:    []string{"all"},
			},
		},
		{
			ID:       "P_A",
			Severity: principle.SeverityHigh,
			Weight:   7,
			Applicability: principle.Applicability{
				ProjectTypes: []string{"all"},
				Languages:    []string{"all"},
			},
		},
		{
			ID:       "P_C",
			Severity: principle.SeverityHigh,
			Weight:   9,
			Applicability: principle.Applicability{
				ProjectTypes: []string{"all"},
				Languages:    []string{"all"},
			},
		},
	}, nil)

	report := NewEngine(c).Match(Target{ProjectType: "api", Language: "go"}, Options{})
	assert.Equal(t, []string{"P_C", "P_A", "P_B"}, matchIDs(report))
}

func TestEngine_Match_UniqueReportIDs(t *testing.T) {
	engine := NewEngine(testCorpus())
	target := Target{ProjectType: "api", Language: "python"}

	r1 := engine.Match(target, Options{})
	r2 := engine.Match(target, Options{})
	require.NotEqual(t, r1.ID, r2.ID)
}
