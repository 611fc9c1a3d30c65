// Package corpus loads principle documents from disk into an indexed,
// immutable snapshot and watches them for changes.
package corpus

import (
	"sort"

	"github.com/praxislabs/tenet/principle"
)

// LoadError records a per-file load failure. Loading continues past
// individual failures so a single malformed file does not hide the rest
// of the corpus.
type LoadError struct {
	Path string
	Err  error
}

func (e LoadError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e LoadError) Unwrap() error {
	return e.Err
}

// Corpus is an immutable snapshot of loaded principles.
type Corpus struct {
	principles []*principle.Principle
	byID       map[string]*principle.Principle
	loadErrors []LoadError
}

// New builds a corpus from loaded principles and load errors. Principles are
// ordered by ID, then source path, so iteration is deterministic. When IDs
// collide the first loaded record wins the index; duplicates remain visible
// through All so validation can report them.
func New(principles []*principle.Principle, loadErrors []LoadError) *Corpus {
	sorted := make([]*principle.Principle, len(principles))
	copy(sorted, principles)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ID != sorted[j].ID {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].SourcePath < sorted[j].SourcePath
	})

	byID := make(map[string]*principle.Principle, len(sorted))
	for _, p := range sorted {
		if _, exists := byID[p.ID]; !exists {
			byID[p.ID] = p
		}
	}

	return &Corpus{
		principles: sorted,
		byID:       byID,
		loadErrors: loadErrors,
	}
}

// All returns every loaded principle in deterministic order, including
// records with duplicate IDs.
func (c *Corpus) All() []*principle.Principle {
	out := make([]*principle.Principle, len(c.principles))
	copy(out, c.principles)
	return out
}

// Get returns the principle with the given ID.
func (c *Corpus) Get(id string) (*principle.Principle, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of loaded principles.
func (c *Corpus) Len() int {
	return len(c.principles)
}

// LoadErrors returns per-file failures encountered during loading.
func (c *Corpus) LoadErrors() []LoadError {
	return c.loadErrors
}
