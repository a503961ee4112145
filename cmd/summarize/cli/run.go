package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textloom/summarizer/cmd/summarize/cli/pipelog"
)

func newRunCmd() *cobra.Command {
	var f commandFlags
	var strength float64

	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Summarize a document and print its salient sentences and itemsets",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Relevant itemsets:")
			for _, is := range summary.RelevantItemsets {
				fmt.Fprintf(out, "  %.4f\t%s\n", is.Score, is.Text)
			}

			fmt.Fprintln(out, "\nSentences at or above strength", strength, ":")
			for i, score := range summary.SalienceScores {
				if score >= strength {
					fmt.Fprintf(out, "  [%d] %.4f\n", i, score)
				}
			}

			return nil
		},
	}

	addConfigFlags(cmd, &f)
	cmd.Flags().Float64Var(&strength, "strength", 0.25, "Minimum salience for a sentence to be printed")
	return cmd
}
