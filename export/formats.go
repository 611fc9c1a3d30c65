// Package export renders a corpus index in machine-consumable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/principle"
)

// Format identifies an export format.
type Format string

// Supported export formats.
const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON - full principle records",
	},
	FormatCSV: {
		Name:        FormatCSV,
		MIMEType:    "text/csv",
		Extension:   ".csv",
		Description: "CSV - flat principle index",
	},
	FormatMarkdown: {
		Name:        FormatMarkdown,
		MIMEType:    "text/markdown",
		Extension:   ".md",
		Description: "Markdown - human-readable index table",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := FormatRegistry[format]; !ok {
		return "", fmt.Errorf("unknown export format: %s", name)
	}
	return format, nil
}

// Write renders the corpus in the given format. Output order follows the
// corpus's deterministic ordering.
func Write(w io.Writer, c *corpus.Corpus, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, c)
	case FormatCSV:
		return writeCSV(w, c)
	case FormatMarkdown:
		return writeMarkdown(w, c)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

func writeJSON(w io.Writer, c *corpus.Corpus) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.All())
}

func writeCSV(w io.Writer, c *corpus.Corpus) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "title", "category", "severity", "weight", "project_types", "languages", "autofix"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range c.All() {
		record := []string{
			p.ID,
			p.Title,
			p.Category.String(),
			p.Severity.String(),
			strconv.Itoa(p.Weight),
			strings.Join(p.Applicability.ProjectTypes, ";"),
			strings.Join(p.Applicability.Languages, ";"),
			strconv.FormatBool(p.AutofixAvailable),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeMarkdown(w io.Writer, c *corpus.Corpus) error {
	mw := NewMarkdownWriter()
	mw.WriteHeading("Principle Index")
	mw.WriteBlank()
	mw.WriteTableHeader("ID", "Title", "Category", "Severity", "Weight", "Applies To")
	for _, p := range c.All() {
		mw.WriteTableRow(
			"`"+p.ID+"`",
			p.Title,
			p.Category.String(),
			p.Severity.String(),
			strconv.Itoa(p.Weight),
			appliesTo(p),
		)
	}

	_, err := io.WriteString(w, mw.String())
	return err
}

func appliesTo(p *principle.Principle) string {
	return strings.Join(p.Applicability.ProjectTypes, ", ") +
		" / " + strings.Join(p.Applicability.Languages, ", ")
}

// MarkdownWriter builds a markdown document incrementally.
type MarkdownWriter struct {
	sb strings.Builder
}

// NewMarkdownWriter creates a new markdown writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// WriteHeading writes an H1 heading.
func (w *MarkdownWriter) WriteHeading(text string) {
	w.sb.WriteString("# " + text + "\n")
}

// WriteTableHeader writes a table header row with its separator.
func (w *MarkdownWriter) WriteTableHeader(columns ...string) {
	w.sb.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	sep := make([]string, len(columns))
	for i := range sep {
		sep[i] = "---"
	}
	w.sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
}

// WriteTableRow writes a table data row. Pipe characters in cells are escaped.
func (w *MarkdownWriter) WriteTableRow(cells ...string) {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", "\\|")
	}
	w.sb.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

// WriteBlank writes a blank line for readability.
func (w *MarkdownWriter) WriteBlank() {
	w.sb.WriteString("\n")
}

// String returns the accumulated markdown output.
func (w *MarkdownWriter) String() string {
	return w.sb.String()
}
