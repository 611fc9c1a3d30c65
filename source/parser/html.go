package parser

import (
	"fmt"

	"github.com/praxislabs/tenet/source"
	"github.com/praxislabs/tenet/source/htmlconv"
)

// HTMLParser parses HTML documents by converting them to markdown first.
// Frontmatter is not expected in HTML sources; the converted markdown body
// carries the content and the page title becomes the document title.
type HTMLParser struct {
	converter *htmlconv.Converter
	markdown  *MarkdownParser
}

// NewHTMLParser creates a new HTML parser.
func NewHTMLParser() *HTMLParser {
	return &HTMLParser{
		converter: htmlconv.NewConverter(),
		markdown:  NewMarkdownParser(),
	}
}

// Parse converts HTML content to markdown and parses the result.
func (p *HTMLParser) Parse(filename string, content []byte) (*source.Document, error) {
	result, err := p.converter.Convert(content)
	if err != nil {
		return nil, fmt.Errorf("convert HTML: %w", err)
	}

	doc, err := p.markdown.Parse(filename, []byte(result.Markdown))
	if err != nil {
		return nil, err
	}

	// The raw content is the original HTML, not the converted markdown.
	doc.Content = string(content)
	if result.Title != "" && !doc.HasFrontmatter() {
		doc.Frontmatter = map[string]any{"title": result.Title}
	}

	return doc, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *HTMLParser) CanParse(mimeType string) bool {
	switch mimeType {
	case "text/html", "application/xhtml+xml":
		return true
	default:
		return false
	}
}

// MimeType returns the primary MIME type for this parser.
func (p *HTMLParser) MimeType() string {
	return "text/html"
}
