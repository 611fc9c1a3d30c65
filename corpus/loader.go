package corpus

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/praxislabs/tenet/principle"
	"github.com/praxislabs/tenet/source/parser"
)

// LoaderConfig configures corpus loading.
type LoaderConfig struct {
	// Paths are directories or glob patterns to load principles from.
	Paths []string `yaml:"paths"`

	// ExcludeDirs lists directory names to skip.
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Extensions lists file extensions to load.
	Extensions []string `yaml:"extensions"`
}

// DefaultLoaderConfig returns default loader configuration.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Paths:       []string{"principles"},
		ExcludeDirs: []string{".git", "node_modules", "vendor"},
		Extensions:  []string{".md"},
	}
}

// Loader loads principle documents from the filesystem.
type Loader struct {
	config   LoaderConfig
	registry *parser.Registry
	logger   *slog.Logger

	extensions map[string]bool
	excludes   map[string]bool
}

// NewLoader creates a loader with the given configuration.
func NewLoader(config LoaderConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	extensions := make(map[string]bool)
	exts := config.Extensions
	if len(exts) == 0 {
		exts = DefaultLoaderConfig().Extensions
	}
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[strings.ToLower(ext)] = true
	}

	excludes := make(map[string]bool)
	excl := config.ExcludeDirs
	if len(excl) == 0 {
		excl = DefaultLoaderConfig().ExcludeDirs
	}
	for _, dir := range excl {
		excludes[dir] = true
	}

	return &Loader{
		config:     config,
		registry:   parser.DefaultRegistry,
		logger:     logger,
		extensions: extensions,
		excludes:   excludes,
	}
}

// Load resolves the configured paths and loads every matching document into
// a corpus. Per-file parse failures are collected, not fatal.
func (l *Loader) Load() (*Corpus, error) {
	files, err := l.resolveFiles()
	if err != nil {
		return nil, err
	}

	var (
		principles []*principle.Principle
		loadErrors []LoadError
	)

	for _, path := range files {
		p, err := l.loadFile(path)
		if err != nil {
			l.logger.Warn("Failed to load principle",
				slog.String("path", path),
				slog.String("error", err.Error()))
			loadErrors = append(loadErrors, LoadError{Path: path, Err: err})
			continue
		}
		principles = append(principles, p)
	}

	l.logger.Debug("Corpus loaded",
		slog.Int("principles", len(principles)),
		slog.Int("errors", len(loadErrors)))

	return New(principles, loadErrors), nil
}

// loadFile parses a single file into a principle.
func (l *Loader) loadFile(path string) (*principle.Principle, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := l.registry.Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	p, err := principle.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	p.ContentHash = parser.ContentHash(content)

	return p, nil
}

// resolveFiles expands the configured paths to a sorted, de-duplicated file
// list. Paths may be plain directories or doublestar glob patterns.
func (l *Loader) resolveFiles() ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	paths := l.config.Paths
	if len(paths) == 0 {
		paths = DefaultLoaderConfig().Paths
	}

	for _, pattern := range paths {
		if containsGlob(pattern) {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
			}
			for _, m := range matches {
				info, err := os.Stat(m)
				if err != nil || info.IsDir() {
					continue
				}
				if l.wantFile(m) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", pattern, err)
		}
		if !info.IsDir() {
			if l.wantFile(pattern) {
				add(pattern)
			}
			continue
		}

		err = filepath.WalkDir(pattern, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				base := filepath.Base(path)
				if l.excludes[base] || (strings.HasPrefix(base, ".") && path != pattern) {
					return filepath.SkipDir
				}
				return nil
			}
			if l.wantFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %q: %w", pattern, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// wantFile reports whether a file has a loadable extension.
func (l *Loader) wantFile(path string) bool {
	return l.extensions[strings.ToLower(filepath.Ext(path))]
}

// containsGlob checks if a path contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
