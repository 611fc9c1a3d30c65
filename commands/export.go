package commands

import (
	"os"

	"github.com/praxislabs/tenet/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app func() *App) *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the corpus index (json, csv, markdown)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			c, err := app().LoadCorpus()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			return export.Write(w, c, f)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "Export format (json, csv, markdown)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (default stdout)")

	return cmd
}
