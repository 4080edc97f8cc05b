package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/ndcconv/internal/run"
)

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns FILE",
		Short: "List the columns of a tabular file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := run.Columns(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Available columns in %s:\n", args[0])
			for i, col := range cols {
				fmt.Fprintf(out, "%d. %s\n", i+1, col)
			}
			return nil
		},
	}
}
