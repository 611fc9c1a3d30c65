// Package commands implements the tenet CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/praxislabs/tenet/config"
	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/format"
)

// App carries shared state for all subcommands.
type App struct {
	Config *config.Config
	Logger *slog.Logger
}

// newApp loads configuration and builds the shared command state.
func newApp(configPath, logLevel string, noColor bool) (*App, error) {
	logger := newLogger(logLevel)

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.NewLoader(logger).Load()
		if err != nil {
			return nil, err
		}
	}

	if noColor || !cfg.Output.Color {
		format.DisableColor()
	}

	return &App{
		Config: cfg,
		Logger: logger,
	}, nil
}

// LoadCorpus loads the configured corpus.
func (a *App) LoadCorpus() (*corpus.Corpus, error) {
	loader := corpus.NewLoader(a.Config.Corpus, a.Logger)
	c, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return c, nil
}

// newLogger builds a slog logger writing to stderr at the given level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}
