package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/praxislabs/tenet/ingest"
	"github.com/spf13/cobra"
)

func newNewCmd(app func() *App) *cobra.Command {
	var (
		title   string
		destDir string
	)

	cmd := &cobra.Command{
		Use:   "new <id>",
		Short: "Scaffold a new principle document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			id := args[0]

			if title == "" {
				title = titleFromID(id)
			}

			dir := destDir
			if dir == "" {
				dir = firstCorpusDir(a)
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			filename := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(id, "P_"), "_", "-")) + ".md"
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("file already exists: %s", path)
			}

			content := ingest.Scaffold(id, title)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}

			cmd.Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Principle title (default derived from id)")
	cmd.Flags().StringVarP(&destDir, "dir", "d", "", "Destination directory (default: first corpus path)")

	return cmd
}

// titleFromID turns "P_RATE_LIMITING" into "Rate Limiting".
func titleFromID(id string) string {
	id = strings.TrimPrefix(id, "P_")
	words := strings.Split(strings.ToLower(id), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
