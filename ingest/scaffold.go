package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/praxislabs/tenet/source/htmlconv"
	"github.com/praxislabs/tenet/source/weburl"
)

// Importer fetches a web page and writes a draft principle document.
type Importer struct {
	fetcher   *Fetcher
	converter *htmlconv.Converter
	logger    *slog.Logger
}

// NewImporter creates an importer with the given fetch settings.
func NewImporter(timeout time.Duration, userAgent string, maxContentSize int64, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		fetcher:   NewFetcher(timeout, userAgent, maxContentSize),
		converter: htmlconv.NewConverter(),
		logger:    logger,
	}
}

// Import fetches the URL, converts it to markdown, and writes a draft
// principle file under destDir. It returns the written path. Severity,
// category, and applicability are placeholders for the author to complete;
// corpus validation will flag them until edited.
func (i *Importer) Import(ctx context.Context, rawURL, destDir string) (string, error) {
	result, err := i.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	converted, err := i.converter.Convert(result.Body)
	if err != nil {
		return "", fmt.Errorf("convert HTML: %w", err)
	}

	title := converted.Title
	if title == "" {
		title = weburl.ExtractDomain(rawURL)
	}

	id := DraftID(title)
	content := draftDocument(id, title, rawURL, converted.Markdown)

	slug := strings.TrimPrefix(weburl.GenerateSourceID(rawURL), "source.web.")
	path, err := writeDraft(destDir, slug+".md", content)
	if err != nil {
		return "", err
	}

	i.logger.Info("Imported draft principle",
		slog.String("url", rawURL),
		slog.String("path", path),
		slog.String("id", id))

	return path, nil
}

// DraftID derives a principle ID from a title, e.g.
// "Rate Limiting" -> "P_RATE_LIMITING".
func DraftID(title string) string {
	var sb strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToUpper(title) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				sb.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	id := strings.Trim(sb.String(), "_")
	if id == "" {
		id = "UNTITLED"
	}
	return "P_" + id
}

// Scaffold renders a blank principle document template.
func Scaffold(id, title string) string {
	return draftDocument(id, title, "", defaultBody(title))
}

func draftDocument(id, title, sourceURL, body string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "id: %s\n", id)
	fmt.Fprintf(&sb, "title: %q\n", title)
	sb.WriteString("category: # architecture | code_quality | project-specific | security_privacy | universal\n")
	sb.WriteString("severity: # critical | high | medium | low\n")
	sb.WriteString("weight: 5\n")
	sb.WriteString("applicability:\n")
	sb.WriteString("  project_types: [] # [all] or e.g. [api, web-service]\n")
	sb.WriteString("  languages: [] # [all] or e.g. [python, go]\n")
	sb.WriteString("enforcement: SHOULD\n")
	if sourceURL != "" {
		fmt.Fprintf(&sb, "source_url: %s\n", sourceURL)
	}
	sb.WriteString("---\n\n")
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}

func defaultBody(title string) string {
	return fmt.Sprintf(`# %s

## Rationale

Describe why this principle matters.

## Bad Example

`+"```"+`
// counter-example
`+"```"+`

## Good Example

`+"```"+`
// compliant example
`+"```"+`
`, title)
}

// writeDraft writes content to destDir without overwriting existing files.
func writeDraft(destDir, filename, content string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	path := filepath.Join(destDir, filename)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write draft: %w", err)
	}

	return path, nil
}
