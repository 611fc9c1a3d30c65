package commands

import (
	"fmt"

	"github.com/praxislabs/tenet/format"
	"github.com/praxislabs/tenet/principle"
	"github.com/spf13/cobra"
)

func newShowCmd(app func() *App) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a principle in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app().LoadCorpus()
			if err != nil {
				return err
			}

			p, ok := c.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", principle.ErrNotFound, args[0])
			}

			if jsonOutput {
				return format.JSON(cmd.OutOrStdout(), p)
			}
			format.Detail(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
