package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/ndcconv/internal/config"
	"github.com/JonMunkholm/ndcconv/internal/run"
)

func newConvertCmd(cfg *config.Config) *cobra.Command {
	var (
		input     string
		column    string
		direction string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the NDC column of a tabular file",
		Example: `  ndcconv convert -i medications.csv -c NDC_Code -d 10to11
  ndcconv convert -i medications.xlsx -c NDC_Code -d 11to10 -o output.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := run.ParseDirection(direction)
			if err != nil {
				return err
			}

			res, err := run.Run(cmd.Context(), run.Request{
				InputPath:    input,
				Column:       column,
				Direction:    dir,
				OutputPath:   output,
				OutputSuffix: cfg.Convert.OutputSuffix,
				SampleSize:   cfg.Convert.SampleSize,
				MaxFileSize:  cfg.Convert.MaxFileSize,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), res.Summary())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (CSV or Excel)")
	cmd.Flags().StringVarP(&column, "column", "c", "", "name of the column containing NDCs")
	cmd.Flags().StringVarP(&direction, "direction", "d", "", `conversion direction: "10to11" or "11to10"`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>_converted.<ext>)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("column")
	cmd.MarkFlagRequired("direction")

	return cmd
}
