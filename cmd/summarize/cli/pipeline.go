package cli

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/textloom/summarizer/cmd/summarize/cli/cache"
	"github.com/textloom/summarizer/cmd/summarize/cli/config"
	"github.com/textloom/summarizer/cmd/summarize/cli/core"
	"github.com/textloom/summarizer/cmd/summarize/cli/docinput"
	"github.com/textloom/summarizer/cmd/summarize/cli/pipelog"
	"github.com/textloom/summarizer/cmd/summarize/cli/store"
)

// commandFlags holds the configuration-affecting flags shared by run,
// keywords, and distribution.
type commandFlags struct {
	ignoreLemmas  []string
	minLCMSupport float64
	minLCMSupSet  bool
	ngramMin      int
	ngramMax      int
	ngramRangeSet bool
	noCache       bool
	verbose       bool
}

func (f commandFlags) overrides() config.Overrides {
	o := config.Overrides{IgnoreLemmas: f.ignoreLemmas}
	if f.minLCMSupSet {
		v := f.minLCMSupport
		o.MinLCMSupport = &v
	}
	if f.ngramRangeSet {
		min, max := f.ngramMin, f.ngramMax
		o.NgramMin = &min
		o.NgramMax = &max
	}
	return o
}

// loadAndSummarize reads the document at path, resolves its configuration,
// consults the on-disk cache unless disabled, and returns the resulting
// summary. It is the shared entry point for run.go, keywords.go, and
// distribution.go, mirroring how the teacher's commands share db.OpenData.
func loadAndSummarize(path string, f commandFlags, logger *pipelog.Logger) (core.Summary, error) {
	var data []byte
	var err error
	logger.Stage("read document", func() {
		data, err = os.ReadFile(path)
	})
	if err != nil {
		return core.Summary{}, fmt.Errorf("read document: %w", err)
	}

	var doc *docinput.Document
	logger.Stage("parse document", func() {
		doc, err = docinput.Parse(data)
	})
	if err != nil {
		return core.Summary{}, err
	}

	cfg := config.Resolve(doc.Config, f.overrides())
	if err := config.Validate(len(doc.Sentences), cfg); err != nil {
		return core.Summary{}, err
	}

	hash := contentHash(data, cfg)

	if !f.noCache {
		if d, openErr := store.Open(store.DefaultDir); openErr == nil {
			defer d.Close()
			if payload, found, lookupErr := store.Lookup(d, hash); lookupErr == nil && found {
				var summary core.Summary
				logger.Stage("decode cached summary", func() {
					summary, err = cache.Decode(payload)
				})
				if err == nil {
					return summary, nil
				}
			}
		}
	}

	var summary core.Summary
	logger.Stage("compute summary", func() {
		summary, err = core.GetSummary(doc.Sentences, cfg)
	})
	if err != nil {
		return core.Summary{}, err
	}

	if !f.noCache {
		if d, openErr := store.Open(store.DefaultDir); openErr == nil {
			defer d.Close()
			if payload, encErr := cache.Encode(summary); encErr == nil {
				runID := ulid.MustNew(ulid.Timestamp(time.Now()), nil).String()
				_ = store.Put(d, hash, runID, payload)
			}
		}
	}

	return summary, nil
}

func contentHash(data []byte, cfg core.Config) string {
	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "|%f|%d|%d", cfg.MinLCMSupport, cfg.NgramDimRange[0], cfg.NgramDimRange[1])
	ignored := make([]string, 0, len(cfg.IgnoreLemmas))
	for l := range cfg.IgnoreLemmas {
		ignored = append(ignored, l)
	}
	sort.Strings(ignored)
	for _, l := range ignored {
		fmt.Fprintf(h, "|%q", l)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// addConfigFlags registers the configuration-affecting flags shared by run,
// keywords, and distribution onto cmd, backed by f.
func addConfigFlags(cmd *cobra.Command, f *commandFlags) {
	cmd.Flags().StringSliceVar(&f.ignoreLemmas, "ignore-lemma", nil, "Lemma to exclude from n-gram indexing (repeatable)")
	cmd.Flags().Float64Var(&f.minLCMSupport, "min-support", 0.01, "Minimum relative support for closed itemset mining")
	cmd.Flags().IntVar(&f.ngramMin, "ngram-min", 2, "Minimum n-gram size")
	cmd.Flags().IntVar(&f.ngramMax, "ngram-max", 4, "Maximum n-gram size")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Skip the on-disk result cache")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "Print per-stage timing to stderr")
}

// markExplicitOverrides records which config-affecting flags the user
// actually set, so addConfigFlags' defaults don't shadow the document's own
// embedded config per the flags-override-document-overrides-defaults
// precedence rule.
func markExplicitOverrides(cmd *cobra.Command, f *commandFlags) {
	f.minLCMSupSet = cmd.Flags().Changed("min-support")
	f.ngramRangeSet = cmd.Flags().Changed("ngram-min") || cmd.Flags().Changed("ngram-max")
}
