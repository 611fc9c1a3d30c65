package commands

import (
	"fmt"

	"github.com/praxislabs/tenet/format"
	"github.com/praxislabs/tenet/match"
	"github.com/praxislabs/tenet/principle"
	"github.com/spf13/cobra"
)

func newMatchCmd(app func() *App) *cobra.Command {
	var (
		projectType string
		language    string
		minSeverity string
		categories  []string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "List principles applicable to a target project",
		Long: `Match evaluates the corpus against a target project declared by project
type and language. Principles whose applicability covers the target (with
"all" as a wildcard) are returned sorted by severity, then weight.

The target defaults to the one declared in configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			target := a.Config.Target
			if projectType != "" {
				target.ProjectType = projectType
			}
			if language != "" {
				target.Language = language
			}
			if target.ProjectType == "" && target.Language == "" {
				return fmt.Errorf("no target: set --project-type/--language or the target section in tenet.yaml")
			}

			c, err := a.LoadCorpus()
			if err != nil {
				return err
			}

			opts := match.Options{}
			if minSeverity != "" {
				opts.MinSeverity = principle.ParseSeverity(minSeverity)
			}
			for _, cat := range categories {
				opts.Categories = append(opts.Categories, principle.Category(cat))
			}

			report := match.NewEngine(c).Match(target, opts)

			if jsonOutput {
				return format.JSON(cmd.OutOrStdout(), report)
			}
			format.Report(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectType, "project-type", "", "Target project type (e.g. api, library)")
	cmd.Flags().StringVar(&language, "language", "", "Target language (e.g. python, go)")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "", "Minimum severity to include")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Restrict to categories")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
