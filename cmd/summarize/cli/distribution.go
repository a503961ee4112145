package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textloom/summarizer/cmd/summarize/cli/core"
	"github.com/textloom/summarizer/cmd/summarize/cli/pipelog"
)

func newDistributionCmd() *cobra.Command {
	var f commandFlags
	var buckets int

	cmd := &cobra.Command{
		Use:   "distribution <path>",
		Short: "Print the salience histogram for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			markExplicitOverrides(cmd, &f)

			logger := pipelog.New(cmd.ErrOrStderr(), f.verbose)
			summary, err := loadAndSummarize(args[0], f, logger)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			hist := core.SalienceDistribution(summary.SalienceScores, buckets)
			out := cmd.OutOrStdout()
			for i, frac := range hist {
				fmt.Fprintf(out, "bucket %d\t%.4f\n", i, frac)
			}
			return nil
		},
	}

	addConfigFlags(cmd, &f)
	cmd.Flags().IntVar(&buckets, "buckets", core.DefaultBuckets, "Number of salience histogram buckets")
	return cmd
}
