package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textloom/summarizer/cmd/summarize/cli/store"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the on-disk result cache",
	}
	cmd.AddCommand(newCacheListCmd(), newCacheClearCmd())
	return cmd
}

func newCacheListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached summary runs, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			d, err := store.Open(store.DefaultDir)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}
			defer d.Close()

			rows, err := store.List(d)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			out := cmd.OutOrStdout()
			for _, r := range rows {
				fmt.Fprintf(out, "%s\t%s\t%s\n", r.Hash, r.RunID, r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
			}
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached summary run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			d, err := store.Open(store.DefaultDir)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}
			defer d.Close()

			if err := store.Clear(d); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "cache cleared.")
			return nil
		},
	}
}
