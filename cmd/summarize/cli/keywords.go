package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textloom/summarizer/cmd/summarize/cli/pipelog"
)

func newKeywordsCmd() *cobra.Command {
	var f commandFlags

	cmd := &cobra.Command{
		Use:   "keywords <path>",
		Short: "Print the relevant keywords extracted from a document",
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
			for _, kw := range summary.RelevantKeywords {
				fmt.Fprintf(out, "%s\t%.4f\n", kw.Keyword, kw.Score)
			}
			return nil
		},
	}

	addConfigFlags(cmd, &f)
	return cmd
}
