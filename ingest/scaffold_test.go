package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/principle"
	"github.com/praxislabs/tenet/source/parser"
	"github.com/praxislabs/tenet/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftID(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Rate Limiting", "P_RATE_LIMITING"},
		{"SQL Injection: Prevention!", "P_SQL_INJECTION_PREVENTION"},
		{"  spaced  out  ", "P_SPACED_OUT"},
		{"", "P_UNTITLED"},
		{"---", "P_UNTITLED"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DraftID(tt.title), "title %q", tt.title)
	}
}

func TestScaffold_ParsesBackToPrinciple(t *testing.T) {
	content := Scaffold("P_RATE_LIMITING", "Rate Limiting")

	doc, err := parser.NewMarkdownParser().Parse("rate-limiting.md", []byte(content))
	require.NoError(t, err)
	require.True(t, doc.HasFrontmatter())

	p, err := principle.FromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "P_RATE_LIMITING", p.ID)
	assert.Equal(t, "Rate Limiting", p.Title)
	assert.Equal(t, 5, p.Weight)
	assert.NotEmpty(t, p.BadExample)
	assert.NotEmpty(t, p.GoodExample)
}

// Drafts carry incomplete metadata on purpose. They must fail validation
// and stay out of match reports until the author fills in severity,
// category, and applicability.
func TestScaffold_DraftFailsValidationUntilCompleted(t *testing.T) {
	content := Scaffold("P_DRAFT", "Draft")

	doc, err := parser.NewMarkdownParser().Parse("draft.md", []byte(content))
	require.NoError(t, err)

	p, err := principle.FromDocument(doc)
	require.NoError(t, err)

	assert.False(t, p.Severity.Known())
	assert.True(t, p.Applicability.Empty())
	assert.False(t, p.Applicability.Matches("library", "rust"))
	assert.False(t, p.Applicability.Matches("api", "python"))

	result := validate.Corpus(corpus.New([]*principle.Principle{p}, nil))
	assert.False(t, result.Ok())

	codes := make(map[validate.Code]bool)
	for _, issue := range result.Issues {
		codes[issue.Code] = true
	}
	assert.True(t, codes[validate.CodeUnknownSeverity])
	assert.True(t, codes[validate.CodeUnknownCategory])
	assert.True(t, codes[validate.CodeEmptyApplicability])
}

func TestWriteDraft_NoOverwrite(t *testing.T) {
	dir := t.TempDir()

	path, err := writeDraft(dir, "guide.md", "content")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "guide.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	_, err = writeDraft(dir, "guide.md", "other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWriteDraft_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "principles")

	path, err := writeDraft(dir, "guide.md", "content")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
