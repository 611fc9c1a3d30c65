package commands

import (
	"fmt"

	"github.com/praxislabs/tenet/format"
	"github.com/praxislabs/tenet/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd(app func() *App) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate corpus content invariants",
		Long: `Validate checks every principle document against the corpus invariants:
unique IDs, known severities and categories, non-empty applicability sets,
weight bounds, and consistency between autofix claims and listed rules.

Exits non-zero when error-severity issues are found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app().LoadCorpus()
			if err != nil {
				return err
			}

			result := validate.Corpus(c)

			if jsonOutput {
				if err := format.JSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				format.Issues(cmd.OutOrStdout(), result)
			}

			if !result.Ok() {
				return fmt.Errorf("corpus validation failed with %d error(s)", result.Count(validate.SeverityError))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
