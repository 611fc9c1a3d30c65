// Package source provides types and parsers for principle document ingestion.
package source

// Document represents a parsed principle document.
type Document struct {
	// ID is the document identifier (derived from filename and content hash).
	ID string `json:"id"`

	// Filename is the original filename.
	Filename string `json:"filename"`

	// Path is the path the document was loaded from, when known.
	Path string `json:"path,omitempty"`

	// Content is the raw document content.
	Content string `json:"content"`

	// Frontmatter contains parsed YAML frontmatter if present.
	Frontmatter map[string]any `json:"frontmatter,omitempty"`

	// Body is the content without frontmatter.
	Body string `json:"body"`
}

// HasFrontmatter returns true if the document has parsed frontmatter.
func (d *Document) HasFrontmatter() bool {
	return len(d.Frontmatter) > 0
}
