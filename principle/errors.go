package principle

import "errors"

// Common principle errors.
var (
	// ErrNoFrontmatter is returned when a document has no parsed frontmatter.
	ErrNoFrontmatter = errors.New("document has no frontmatter")

	// ErrNotFound is returned when a principle is not found.
	ErrNotFound = errors.New("principle not found")
)
