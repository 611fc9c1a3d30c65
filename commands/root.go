package commands

import (
	"github.com/spf13/cobra"
)

// Version and BuildTime identify the build.
const (
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Root builds the tenet root command with all subcommands attached.
func Root() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noColor    bool
	)

	var app *App

	cmd := &cobra.Command{
		Use:   "tenet",
		Short: "Engineering principles corpus engine",
		Long: `Tenet loads a corpus of engineering principle documents (markdown with
YAML frontmatter), validates their content invariants, and decides which
principles apply to a target project.

It provides:
- Corpus loading and validation (unique IDs, severities, applicability)
- Principle matching by project type and language
- Corpus export (json, csv, markdown) and web import of style guides`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			var err error
			app, err = newApp(configPath, logLevel, noColor)
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")

	appRef := func() *App { return app }

	cmd.AddCommand(
		newVersionCmd(),
		newListCmd(appRef),
		newShowCmd(appRef),
		newValidateCmd(appRef),
		newMatchCmd(appRef),
		newExportCmd(appRef),
		newImportCmd(appRef),
		newNewCmd(appRef),
		newWatchCmd(appRef),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("tenet version %s (build: %s)\n", Version, BuildTime)
		},
	}
}
