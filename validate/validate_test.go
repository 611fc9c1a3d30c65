package validate

import (
	"errors"
	"testing"

	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/principle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrinciple() *principle.Principle {
	return &principle.Principle{
		ID:       "P_RATE_LIMITING",
		Title:    "Rate Limiting",
		Category: principle.CategorySecurityPrivacy,
		Severity: principle.SeverityHigh,
		Weight:   8,
		Applicability: principle.Applicability{
			ProjectTypes: []string{"api", "web"},
			Languages:    []string{"all"},
		},
		SourcePath: "principles/rate-limiting.md",
	}
}

func corpusOf(principles ...*principle.Principle) *corpus.Corpus {
	return corpus.New(principles, nil)
}

func codes(result *Result) []Code {
	var out []Code
	for _, issue := range result.Issues {
		out = append(out, issue.Code)
	}
	return out
}

func TestCorpus_ValidPasses(t *testing.T) {
	result := Corpus(corpusOf(validPrinciple()))
	assert.True(t, result.Ok())
	assert.Empty(t, result.Issues)
}

func TestCorpus_DuplicateID(t *testing.T) {
	a := validPrinciple()
	b := validPrinciple()
	b.SourcePath = "principles/copy.md"

	result := Corpus(corpusOf(a, b))
	assert.False(t, result.Ok())
	assert.Contains(t, codes(result), CodeDuplicateID)
}

func TestCorpus_MissingID(t *testing.T) {
	p := validPrinciple()
	p.ID = ""

	result := Corpus(corpusOf(p))
	assert.False(t, result.Ok())
	assert.Contains(t, codes(result), CodeMissingID)
}

func TestCorpus_UnknownSeverity(t *testing.T) {
	p := validPrinciple()
	p.Severity = "blocker"

	result := Corpus(corpusOf(p))
	assert.False(t, result.Ok())
	assert.Contains(t, codes(result), CodeUnknownSeverity)
}

func TestCorpus_UnknownCategoryIsWarning(t *testing.T) {
	p := validPrinciple()
	p.Category = "misc"

	result := Corpus(corpusOf(p))
	assert.True(t, result.Ok())
	assert.Contains(t, codes(result), CodeUnknownCategory)
	assert.Equal(t, 1, result.Count(SeverityWarning))
}

func TestCorpus_EmptyApplicability(t *testing.T) {
	p := validPrinciple()
	p.Applicability = principle.Applicability{}

	result := Corpus(corpusOf(p))
	assert.False(t, result.Ok())
	assert.Equal(t, 2, result.Count(SeverityError))
}

func TestCorpus_WeightOutOfRange(t *testing.T) {
	p := validPrinciple()
	p.Weight = 0

	result := Corpus(corpusOf(p))
	assert.Contains(t, codes(result), CodeWeightOutOfRange)

	p.Weight = 11
	result = Corpus(corpusOf(p))
	assert.Contains(t, codes(result), CodeWeightOutOfRange)
}

func TestCorpus_AutofixWithoutRule(t *testing.T) {
	p := validPrinciple()
	p.AutofixAvailable = true

	result := Corpus(corpusOf(p))
	assert.False(t, result.Ok())
	assert.Contains(t, codes(result), CodeAutofixWithoutRule)

	// Adding a machine-actionable rule satisfies the claim
	p.Rules = []principle.Rule{{Name: "add_rate_limiter", Description: "Wrap handler"}}
	result = Corpus(corpusOf(p))
	assert.True(t, result.Ok())
}

func TestCorpus_SeverityRestatementMismatch(t *testing.T) {
	p := validPrinciple()
	p.Body = "# Rate Limiting\n\n**Severity**: medium\n"

	result := Corpus(corpusOf(p))
	assert.Contains(t, codes(result), CodeSeverityMismatch)

	p.Body = "# Rate Limiting\n\n**Severity**: high\n"
	result = Corpus(corpusOf(p))
	assert.NotContains(t, codes(result), CodeSeverityMismatch)
}

func TestCorpus_LoadFailuresReported(t *testing.T) {
	c := corpus.New(nil, []corpus.LoadError{
		{Path: "principles/broken.md", Err: errors.New("parse YAML frontmatter: bad indent")},
	})

	result := Corpus(c)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, CodeLoadFailure, result.Issues[0].Code)
	assert.False(t, result.Ok())
}
