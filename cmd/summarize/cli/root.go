// Package cli wires the summarize subcommands into a cobra root command,
// following the shape of the teacher's cmd/rekal/cli package: silenced
// cobra error/usage printing with a single Run() entry point that
// prints unsilenced errors itself and sets the process exit code.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textloom/summarizer/cmd/summarize/cli/store"
	"github.com/textloom/summarizer/cmd/summarize/cli/versioncheck"
)

// Version is set at build time via -ldflags; "dev" means an unreleased
// build, which versioncheck treats as never-outdated.
var Version = "dev"

// NewRootCmd returns the root command for the summarize CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "summarize",
		Short:         "summarize — extractive text summarization over pre-lemmatized documents",
		Long:          "summarize mines closed frequent itemsets out of a document's sentences, scores them via truncated SVD, and reports salient sentences, itemsets, and keywords.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			d, err := store.Open(store.DefaultDir)
			if err != nil {
				return
			}
			defer d.Close()
			versioncheck.CheckAndNotify(cmd.OutOrStdout(), Version, d)
		},
	}

	cmd.SetVersionTemplate("summarize {{.Version}}\n")
	cmd.Version = Version

	coreGroup := &cobra.Group{ID: "core", Title: "Core Commands:"}
	advancedGroup := &cobra.Group{ID: "advanced", Title: "Advanced Commands:"}
	cmd.AddGroup(coreGroup, advancedGroup)

	runCmd := newRunCmd()
	runCmd.GroupID = "core"
	versionCmd := newVersionCmd()
	versionCmd.GroupID = "core"

	keywordsCmd := newKeywordsCmd()
	keywordsCmd.GroupID = "advanced"
	distributionCmd := newDistributionCmd()
	distributionCmd.GroupID = "advanced"
	cacheCmd := newCacheCmd()
	cacheCmd.GroupID = "advanced"

	cmd.AddCommand(runCmd, versionCmd)
	cmd.AddCommand(keywordsCmd, distributionCmd, cacheCmd)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "summarize", Version)
			return nil
		},
	}
}

// Run executes the root command and exits with the appropriate code.
func Run() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !IsSilentError(err) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		}
		os.Exit(1)
	}
}
