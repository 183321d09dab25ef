// Package cli is the command line entry point of the conference board.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/agregator/conference-board/internal/config"
)

// NewRootCommand builds the command tree. Running the root command without a
// subcommand starts the terminal UI.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "conference-board",
		Short: "Browse upcoming scientific conferences",
		Long: `conference-board shows the upcoming conferences collected by the
aggregation service, sorted by date and split into pages.

Configuration is read from the environment and an optional .env file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	tui := newTUICommand(version)
	root.RunE = tui.RunE
	root.AddCommand(tui, newServeCommand(version))

	return root
}
