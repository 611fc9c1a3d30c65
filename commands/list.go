package commands

import (
	"github.com/praxislabs/tenet/format"
	"github.com/praxislabs/tenet/principle"
	"github.com/spf13/cobra"
)

func newListCmd(app func() *App) *cobra.Command {
	var (
		category    string
		minSeverity string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List principles in the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app().LoadCorpus()
			if err != nil {
				return err
			}

			var principles []*principle.Principle
			min := principle.ParseSeverity(minSeverity)
			for _, p := range c.All() {
				if category != "" && p.Category != principle.Category(category) {
					continue
				}
				if minSeverity != "" && p.Severity.Rank() < min.Rank() {
					continue
				}
				principles = append(principles, p)
			}

			if jsonOutput {
				return format.JSON(cmd.OutOrStdout(), principles)
			}
			format.Table(cmd.OutOrStdout(), principles)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "", "Minimum severity (critical, high, medium, low)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
