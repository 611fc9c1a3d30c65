package commands

import (
	"github.com/praxislabs/tenet/ingest"
	"github.com/spf13/cobra"
)

func newImportCmd(app func() *App) *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "import <url>",
		Short: "Import a web style guide as a draft principle",
		Long: `Import fetches an HTTPS page, extracts its main content, converts it to
markdown, and writes a draft principle document with placeholder metadata.
The draft fails validation until its severity, category, and applicability
are completed by hand.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			dir := destDir
			if dir == "" {
				dir = firstCorpusDir(a)
			}

			importer := ingest.NewImporter(
				a.Config.Import.Timeout,
				a.Config.Import.UserAgent,
				a.Config.Import.MaxContentSize,
				a.Logger,
			)

			path, err := importer.Import(cmd.Context(), args[0], dir)
			if err != nil {
				return err
			}

			cmd.Printf("Draft written to %s\n", path)
			cmd.Println("Complete its severity, category, and applicability, then run `tenet validate`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&destDir, "dir", "d", "", "Destination directory (default: first corpus path)")

	return cmd
}

// firstCorpusDir returns the first non-glob corpus path, or "principles".
func firstCorpusDir(a *App) string {
	if roots := corpusRoots(a); len(roots) > 0 {
		return roots[0]
	}
	return "principles"
}

func containsGlob(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
