package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/praxislabs/tenet/corpus"
	"github.com/praxislabs/tenet/format"
	"github.com/praxislabs/tenet/validate"
	"github.com/spf13/cobra"
)

func newWatchCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch corpus directories and revalidate on change",
		Long: `Watch observes every directory corpus path and re-runs validation when
documents change. Glob corpus paths are resolved at load time only and are
not watched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			roots := corpusRoots(a)
			if len(roots) == 0 {
				return fmt.Errorf("no watchable corpus path: all configured paths are globs")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			watchers := make(map[string]*corpus.Watcher, len(roots))
			events := make(chan corpus.WatchEvent)
			for _, root := range roots {
				watcher, err := corpus.NewWatcher(a.Config.Watch, a.Config.Corpus, root, a.Logger)
				if err != nil {
					return fmt.Errorf("create watcher for %s: %w", root, err)
				}
				if err := watcher.Start(ctx); err != nil {
					return fmt.Errorf("start watcher for %s: %w", root, err)
				}
				defer watcher.Stop()
				watchers[root] = watcher

				go func(w *corpus.Watcher) {
					for {
						select {
						case <-ctx.Done():
							return
						case event, ok := <-w.Events():
							if !ok {
								return
							}
							select {
							case events <- event:
							case <-ctx.Done():
								return
							}
						}
					}
				}(watcher)
			}

			// Initial validation pass seeds the hash caches so touch without
			// change stays quiet.
			revalidate(cmd, a, watchers)

			for {
				select {
				case <-ctx.Done():
					return nil
				case event := <-events:
					a.Logger.Info("Corpus changed",
						"path", event.Path,
						"op", string(event.Operation))
					revalidate(cmd, a, watchers)
				}
			}
		},
	}

	return cmd
}

// corpusRoots returns every non-glob corpus path. Glob paths are resolved by
// the loader and have no directory to watch.
func corpusRoots(a *App) []string {
	var roots []string
	for _, p := range a.Config.Corpus.Paths {
		if !containsGlob(p) {
			roots = append(roots, p)
		}
	}
	return roots
}

func revalidate(cmd *cobra.Command, a *App, watchers map[string]*corpus.Watcher) {
	c, err := a.LoadCorpus()
	if err != nil {
		a.Logger.Error("Corpus load failed", "error", err)
		return
	}

	// Each watcher keys hashes by path relative to its own root.
	for _, p := range c.All() {
		for root, watcher := range watchers {
			rel, err := filepath.Rel(root, p.SourcePath)
			if err != nil || strings.HasPrefix(rel, "..") {
				continue
			}
			watcher.SetHash(rel, p.ContentHash)
		}
	}

	result := validate.Corpus(c)
	format.Issues(cmd.OutOrStdout(), result)
}
