// Package config provides configuration loading and management for tenet.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/match"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tenet configuration
type Config struct {
	Corpus corpus.LoaderConfig `yaml:"corpus"`
	Watch  corpus.WatchConfig  `yaml:"watch"`
	Target match.Target        `yaml:"target"`
	Output OutputConfig        `yaml:"output"`
	Import ImportConfig        `yaml:"import"`
}

// OutputConfig configures CLI output
type OutputConfig struct {
	// Format is the default output format (text or json)
	Format string `yaml:"format"`
	// Color controls colorized terminal output
	Color bool `yaml:"color"`
}

// ImportConfig configures web import settings
type ImportConfig struct {
	// Timeout is the maximum time to wait for a page fetch
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent is sent with import requests
	UserAgent string `yaml:"user_agent"`
	// MaxContentSize caps the fetched page size in bytes
	MaxContentSize int64 `yaml:"max_content_size"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Corpus: corpus.DefaultLoaderConfig(),
		Watch:  corpus.DefaultWatchConfig(),
		Target: match.Target{},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Import: ImportConfig{
			Timeout:        30 * time.Second,
			UserAgent:      "tenet/" + "0.1.0",
			MaxContentSize: 5 * 1024 * 1024,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Corpus.Paths) == 0 {
		return fmt.Errorf("corpus.paths is required")
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json")
	}
	if c.Import.Timeout <= 0 {
		return fmt.Errorf("import.timeout must be positive")
	}
	if c.Import.MaxContentSize <= 0 {
		return fmt.Errorf("import.max_content_size must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Corpus
	if len(other.Corpus.Paths) > 0 {
		c.Corpus.Paths = other.Corpus.Paths
	}
	if len(other.Corpus.ExcludeDirs) > 0 {
		c.Corpus.ExcludeDirs = other.Corpus.ExcludeDirs
	}
	if len(other.Corpus.Extensions) > 0 {
		c.Corpus.Extensions = other.Corpus.Extensions
	}

	// Watch
	if other.Watch.Enabled {
		c.Watch.Enabled = true
	}
	if other.Watch.DebounceDelay != "" {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}

	// Target
	if other.Target.ProjectType != "" {
		c.Target.ProjectType = other.Target.ProjectType
	}
	if other.Target.Language != "" {
		c.Target.Language = other.Target.Language
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	c.Output.Color = other.Output.Color

	// Import
	if other.Import.Timeout != 0 {
		c.Import.Timeout = other.Import.Timeout
	}
	if other.Import.UserAgent != "" {
		c.Import.UserAgent = other.Import.UserAgent
	}
	if other.Import.MaxContentSize != 0 {
		c.Import.MaxContentSize = other.Import.MaxContentSize
	}
}
