// Package cli wires the cobra command tree for the converter. Running the
// root command with no subcommand starts the interactive flow; the
// convert and columns subcommands cover scripted use.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/ndcconv/internal/app"
	"github.com/JonMunkholm/ndcconv/internal/config"
)

const version = "1.1.0"

// New builds the root command with all subcommands attached.
func New(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:     "ndcconv",
		Short:   "Convert NDC codes between 10-digit and 11-digit formats",
		Long: `ndcconv reformats National Drug Code (NDC) identifiers between their
10-digit and 11-digit representations inside CSV and Excel files.

Run without arguments for an interactive session, or use the convert
subcommand for scripted use.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cfg)
		},
	}

	root.AddCommand(newConvertCmd(cfg))
	root.AddCommand(newColumnsCmd())

	return root
}

// Execute runs the command tree.
func Execute(cfg *config.Config) error {
	return New(cfg).Execute()
}
