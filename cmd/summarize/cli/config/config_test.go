package config

import (
	"testing"

	"github.com/textloom/summarizer/cmd/summarize/cli/core"
)

func TestResolve_DefaultsWhenNoOverrides(t *testing.T) {
	t.Parallel()
	cfg := Resolve(nil, Overrides{})
	want := core.DefaultConfig()
	if cfg.MinLCMSupport != want.MinLCMSupport {
		t.Errorf("MinLCMSupport = %v, want %v", cfg.MinLCMSupport, want.MinLCMSupport)
	}
	if cfg.NgramDimRange != want.NgramDimRange {
		t.Errorf("NgramDimRange = %v, want %v", cfg.NgramDimRange, want.NgramDimRange)
	}
}

func TestResolve_DocumentOverridesDefaults(t *testing.T) {
	t.Parallel()
	doc := core.DefaultConfig()
	doc.MinLCMSupport = 0.5
	cfg := Resolve(&doc, Overrides{})
	if cfg.MinLCMSupport != 0.5 {
		t.Errorf("MinLCMSupport = %v, want 0.5", cfg.MinLCMSupport)
	}
}

func TestResolve_FlagsOverrideDocument(t *testing.T) {
	t.Parallel()
	doc := core.DefaultConfig()
	doc.MinLCMSupport = 0.5
	strength := 0.2
	cfg := Resolve(&doc, Overrides{MinLCMSupport: &strength})
	if cfg.MinLCMSupport != 0.2 {
		t.Errorf("MinLCMSupport = %v, want 0.2 (flag should win)", cfg.MinLCMSupport)
	}
}

func TestResolve_NgramRangeFlags(t *testing.T) {
	t.Parallel()
	min, max := 1, 3
	cfg := Resolve(nil, Overrides{NgramMin: &min, NgramMax: &max})
	if cfg.NgramDimRange != [2]int{1, 3} {
		t.Errorf("NgramDimRange = %v, want [1 3]", cfg.NgramDimRange)
	}
}

func TestValidate_RejectsEmptySentences(t *testing.T) {
	t.Parallel()
	if err := Validate(0, core.DefaultConfig()); err == nil {
		t.Fatal("expected error for empty sentence list")
	}
}

func TestValidate_RejectsInvertedNgramRange(t *testing.T) {
	t.Parallel()
	cfg := core.DefaultConfig()
	cfg.NgramDimRange = [2]int{4, 2}
	if err := Validate(1, cfg); err == nil {
		t.Fatal("expected error for inverted ngram range")
	}
}

func TestValidate_RejectsOutOfRangeSupport(t *testing.T) {
	t.Parallel()
	cfg := core.DefaultConfig()
	cfg.MinLCMSupport = 1.5
	if err := Validate(1, cfg); err == nil {
		t.Fatal("expected error for minLCMSupport > 1")
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	t.Parallel()
	if err := Validate(1, core.DefaultConfig()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
