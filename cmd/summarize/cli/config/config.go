// Package config resolves the core pipeline configuration from the three
// sources spec.md §7 allows — CLI flags, a document-embedded config block,
// and built-in defaults — in that precedence order, and validates the
// result before any pipeline stage runs.
package config

import (
	"github.com/textloom/summarizer/cmd/summarize/cli/core"
)

// Overrides holds the flag-supplied values a run.go/keywords.go/
// distribution.go command collected. A nil pointer means "flag not set,
// fall through to the next source".
type Overrides struct {
	IgnoreLemmas  []string
	MinLCMSupport *float64
	NgramMin      *int
	NgramMax      *int
}

// Resolve builds a core.Config starting from core.DefaultConfig, layering
// the document's embedded config (if any) on top, then the CLI overrides.
func Resolve(doc *core.Config, flags Overrides) core.Config {
	cfg := core.DefaultConfig()
	if doc != nil {
		cfg = *doc
	}

	if len(flags.IgnoreLemmas) > 0 {
		ignore := make(map[string]struct{}, len(flags.IgnoreLemmas))
		for _, l := range flags.IgnoreLemmas {
			ignore[l] = struct{}{}
		}
		cfg.IgnoreLemmas = ignore
	}
	if flags.MinLCMSupport != nil {
		cfg.MinLCMSupport = *flags.MinLCMSupport
	}
	if flags.NgramMin != nil {
		cfg.NgramDimRange[0] = *flags.NgramMin
	}
	if flags.NgramMax != nil {
		cfg.NgramDimRange[1] = *flags.NgramMax
	}

	return cfg
}

// Validate reports whether cfg and the sentence count satisfy the
// precondition rules, surfacing failures before any pipeline stage runs
// rather than deep inside the miner or SVD. It defers to core.Validate so
// the CLI's fail-fast check and GetSummary's own precondition check never
// drift apart.
func Validate(sentenceCount int, cfg core.Config) error {
	return core.Validate(sentenceCount, cfg)
}
