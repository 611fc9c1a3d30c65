package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/tenet/match"
	"github.com/praxislabs/tenet/principle"
	"github.com/praxislabs/tenet/validate"
)

func init() {
	DisableColor()
}

func samplePrinciple() *principle.Principle {
	return &principle.Principle{
		ID:       "P_RATE_LIMITING",
		Title:    "Rate Limiting",
		Category: principle.CategorySecurityPrivacy,
		Severity: principle.SeverityHigh,
		Weight:   8,
		Applicability: principle.Applicability{
			ProjectTypes: []string{"api", "web-service"},
			Languages:    []string{principle.Wildcard},
		},
		Enforcement: "MUST",
		Rules: []principle.Rule{
			{Name: "limit-by-client", Description: "Throttle per API key or IP."},
		},
		BadExample:       "handle(req)",
		GoodExample:      "limiter.Allow(req)",
		AutofixAvailable: true,
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []*principle.Principle{samplePrinciple()})

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "SEVERITY")
	assert.Contains(t, out, "P_RATE_LIMITING")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "Rate Limiting")
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	Detail(&buf, samplePrinciple())

	out := buf.String()
	assert.Contains(t, out, "P_RATE_LIMITING Rate Limiting")
	assert.Contains(t, out, "severity:      high")
	assert.Contains(t, out, "weight:        8")
	assert.Contains(t, out, "enforcement:   MUST")
	assert.Contains(t, out, "autofix:       available")
	assert.Contains(t, out, "limit-by-client: Throttle per API key or IP.")
	assert.Contains(t, out, "Bad example:")
	assert.Contains(t, out, "Good example:")
}

func TestDetailIndentsMultilineExamples(t *testing.T) {
	p := samplePrinciple()
	p.BadExample = "first line\nsecond line\nthird line"

	var buf bytes.Buffer
	Detail(&buf, p)

	out := buf.String()
	assert.Contains(t, out, "    first line\n    second line\n    third line")
}

func TestIssues(t *testing.T) {
	result := &validate.Result{
		Issues: []validate.Issue{
			{
				Severity: validate.SeverityError,
				Code:     validate.CodeMissingID,
				Path:     "principles/broken.md",
				Message:  "front matter has no id field",
			},
			{
				Severity:    validate.SeverityWarning,
				Code:        validate.CodeSeverityMismatch,
				Path:        "principles/p_rate_limiting.md",
				PrincipleID: "P_RATE_LIMITING",
				Message:     "body restates a different severity",
			},
		},
	}

	var buf bytes.Buffer
	Issues(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "error: principles/broken.md [missing-id]")
	assert.Contains(t, out, "warning: principles/p_rate_limiting.md (P_RATE_LIMITING)")
	assert.Contains(t, out, "1 error(s), 1 warning(s)")
}

func TestReport(t *testing.T) {
	report := &match.Report{
		Target:  match.Target{ProjectType: "api", Language: "python"},
		Matches: []*principle.Principle{samplePrinciple()},
	}

	var buf bytes.Buffer
	Report(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "Target: project_type=api language=python")
	assert.Contains(t, out, "Applicable principles: 1")
	assert.Contains(t, out, "P_RATE_LIMITING")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, samplePrinciple()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "P_RATE_LIMITING", decoded["id"])
}
