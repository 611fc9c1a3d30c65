// Package match evaluates which principles in a corpus govern a target
// project, ordered by severity and weight.
package match

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/principle"
)

// Target describes the project under evaluation.
type Target struct {
	// ProjectType is the declared project kind, e.g. "api" or "library".
	ProjectType string `json:"project_type" yaml:"project_type"`

	// Language is the primary language ecosystem, e.g. "python".
	Language string `json:"language" yaml:"language"`
}

// Options narrows a match run.
type Options struct {
	// MinSeverity drops principles ranked below this severity.
	MinSeverity principle.Severity

	// Categories restricts results to these categories when non-empty.
	Categories []principle.Category
}

// Report is the result of evaluating a target against a corpus.
type Report struct {
	// ID is a unique identifier for this evaluation run.
	ID string `json:"id"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// Target is the evaluated project.
	Target Target `json:"target"`

	// Matches are the applicable principles in priority order.
	Matches []*principle.Principle `json:"matches"`
}

// Engine matches principles against targets.
type Engine struct {
	corpus *corpus.Corpus
}

// NewEngine creates a match engine over a corpus snapshot.
func NewEngine(c *corpus.Corpus) *Engine {
	return &Engine{corpus: c}
}

// Match returns the principles applicable to the target, sorted by severity
// rank descending, then weight descending, then ID ascending. The ordering
// is deterministic for a given corpus and target.
func (e *Engine) Match(target Target, opts Options) *Report {
	var matches []*principle.Principle

	for _, p := range e.corpus.All() {
		if !p.Applicability.Matches(target.ProjectType, target.Language) {
			continue
		}
		if opts.MinSeverity != "" && p.Severity.Rank() < opts.MinSeverity.Rank() {
			continue
		}
		if len(opts.Categories) > 0 && !containsCategory(opts.Categories, p.Category) {
			continue
		}
		matches = append(matches, p)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Severity.Rank() != matches[j].Severity.Rank() {
			return matches[i].Severity.Rank() > matches[j].Severity.Rank()
		}
		if matches[i].Weight != matches[j].Weight {
			return matches[i].Weight > matches[j].Weight
		}
		return matches[i].ID < matches[j].ID
	})

	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Target:      target,
		Matches:     matches,
	}
}

func containsCategory(categories []principle.Category, c principle.Category) bool {
	for _, cat := range categories {
		if cat == c {
			return true
		}
	}
	return false
}
