package core

import (
	"math"
	"testing"
)

func contentToken(lemmaStr string) Token {
	return Token{Form: lemmaStr, Morphologies: []Morphology{{Lemma: lemmaStr, ContentWord: true}}}
}

func sentenceOf(lemmas ...string) Sentence {
	tokens := make([]Token, len(lemmas))
	for i, l := range lemmas {
		tokens[i] = contentToken(l)
	}
	return Sentence{Tokens: tokens}
}

func baseConfig(min, max int) Config {
	cfg := DefaultConfig()
	cfg.NgramDimRange = [2]int{min, max}
	return cfg
}

// S1 — minimum input: a single sentence with two content lemmas, range
// [2,2]. The window-bound quirk (§4.2) means zero 2-grams are emitted.
func TestGetSummary_S1_MinimumInput(t *testing.T) {
	t.Parallel()
	summary, err := GetSummary([]Sentence{sentenceOf("a", "b")}, baseConfig(2, 2))
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if len(summary.SalienceScores) != 1 || summary.SalienceScores[0] != 0.0 {
		t.Errorf("SalienceScores = %v, want [0.0]", summary.SalienceScores)
	}
	if len(summary.RelevantItemsets) != 0 {
		t.Errorf("RelevantItemsets = %v, want empty", summary.RelevantItemsets)
	}
}

// S2 — minimal non-empty: one sentence with three lemmas, range [2,2].
func TestGetSummary_S2_MinimalNonEmpty(t *testing.T) {
	t.Parallel()
	summary, err := GetSummary([]Sentence{sentenceOf("a", "b", "c")}, baseConfig(2, 2))
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if len(summary.SalienceScores) != 1 || summary.SalienceScores[0] != 1.0 {
		t.Errorf("SalienceScores = %v, want [1.0]", summary.SalienceScores)
	}
	if len(summary.RelevantItemsets) != 1 {
		t.Fatalf("RelevantItemsets = %v, want exactly one", summary.RelevantItemsets)
	}
	if summary.RelevantItemsets[0].Text != "a b" {
		t.Errorf("itemset text = %q, want %q", summary.RelevantItemsets[0].Text, "a b")
	}
	if summary.RelevantItemsets[0].Score != 1.0 {
		t.Errorf("itemset score = %v, want 1.0", summary.RelevantItemsets[0].Score)
	}
}

// S3 — two identical sentences, range [2,3]: both receive equal, maximal
// salience.
func TestGetSummary_S3_IdenticalSentences(t *testing.T) {
	t.Parallel()
	sentences := []Sentence{
		sentenceOf("a", "b", "c", "d"),
		sentenceOf("a", "b", "c", "d"),
	}
	summary, err := GetSummary(sentences, baseConfig(2, 3))
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if len(summary.SalienceScores) != 2 {
		t.Fatalf("SalienceScores = %v, want length 2", summary.SalienceScores)
	}
	if summary.SalienceScores[0] != 1.0 || summary.SalienceScores[1] != 1.0 {
		t.Errorf("SalienceScores = %v, want [1.0, 1.0]", summary.SalienceScores)
	}
}

// S4 — ignore-lemma filtering: "b" removed before n-gram formation.
func TestGetSummary_S4_IgnoreLemmaFiltering(t *testing.T) {
	t.Parallel()
	sentences := []Sentence{
		sentenceOf("a", "b", "c", "d"),
		sentenceOf("a", "b", "c", "d"),
	}
	cfg := baseConfig(2, 3)
	cfg.IgnoreLemmas = map[string]struct{}{"b": {}}
	summary, err := GetSummary(sentences, cfg)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	foundAC, foundAB := false, false
	for _, is := range summary.RelevantItemsets {
		if is.Text == "a c" {
			foundAC = true
		}
		if is.Text == "a b" {
			foundAB = true
		}
	}
	if !foundAC {
		t.Errorf("expected itemset rendering %q to appear", "a c")
	}
	if foundAB {
		t.Errorf("did not expect itemset rendering %q after ignoring %q", "a b", "b")
	}
}

// S5 — short-circuit: three single-lemma sentences, all transactions empty.
func TestGetSummary_S5_ShortCircuit(t *testing.T) {
	t.Parallel()
	sentences := []Sentence{sentenceOf("a"), sentenceOf("b"), sentenceOf("c")}
	summary, err := GetSummary(sentences, baseConfig(2, 4))
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	want := []float64{0.0, 0.0, 0.0}
	for i, s := range summary.SalienceScores {
		if s != want[i] {
			t.Errorf("SalienceScores[%d] = %v, want 0.0", i, s)
		}
	}
	if len(summary.RelevantItemsets) != 0 {
		t.Errorf("RelevantItemsets = %v, want empty", summary.RelevantItemsets)
	}
	if len(summary.RelevantKeywords) != 0 {
		t.Errorf("RelevantKeywords = %v, want empty", summary.RelevantKeywords)
	}
}

// S6 — keyword aggregation: two itemsets sharing keyword "x".
func TestExtractKeywords_S6_Aggregation(t *testing.T) {
	t.Parallel()
	itemsets := []ItemsetResult{
		{Text: "x y", Score: 0.5},
		{Text: "x z", Score: 0.8},
	}
	keywords := extractKeywords(itemsets)

	var xScore float64
	found := false
	for _, kw := range keywords {
		if kw.Keyword == "x" {
			xScore = kw.Score
			found = true
		}
	}
	if !found {
		t.Fatalf("keyword %q not found in %v", "x", keywords)
	}
	want := math.Pow((0.5+0.8)/2, 1.0/2)
	if math.Abs(xScore-want) > 1e-12 {
		t.Errorf("keyword %q score = %v, want %v", "x", xScore, want)
	}
}

func TestExtractKeywords_SortedDescending(t *testing.T) {
	t.Parallel()
	itemsets := []ItemsetResult{
		{Text: "low", Score: 0.1},
		{Text: "high", Score: 0.9},
	}
	keywords := extractKeywords(itemsets)
	if len(keywords) != 2 || keywords[0].Keyword != "high" || keywords[1].Keyword != "low" {
		t.Errorf("keywords = %v, want [high, low]", keywords)
	}
}

func TestValidate_EmptySentenceList(t *testing.T) {
	t.Parallel()
	_, err := GetSummary(nil, DefaultConfig())
	if _, ok := err.(*InvalidInputError); !ok {
		t.Errorf("error = %v (%T), want *InvalidInputError", err, err)
	}
}

func TestValidate_InvertedNgramRange(t *testing.T) {
	t.Parallel()
	cfg := baseConfig(4, 2)
	_, err := GetSummary([]Sentence{sentenceOf("a", "b")}, cfg)
	if _, ok := err.(*InvalidInputError); !ok {
		t.Errorf("error = %v (%T), want *InvalidInputError", err, err)
	}
}

func TestValidate_MinSupportOutOfRange(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.MinLCMSupport = 0
	_, err := GetSummary([]Sentence{sentenceOf("a", "b")}, cfg)
	if _, ok := err.(*InvalidInputError); !ok {
		t.Errorf("error = %v (%T), want *InvalidInputError", err, err)
	}
}

// Invariant 1: |Summary.salienceScores| == |input sentences|, across sizes.
func TestGetSummary_SalienceLengthMatchesInput(t *testing.T) {
	t.Parallel()
	sentences := []Sentence{
		sentenceOf("a", "b", "c"),
		sentenceOf("d"),
		sentenceOf("e", "f", "g", "h"),
	}
	summary, err := GetSummary(sentences, baseConfig(2, 3))
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if len(summary.SalienceScores) != len(sentences) {
		t.Errorf("len(SalienceScores) = %d, want %d", len(summary.SalienceScores), len(sentences))
	}
}

// Invariant 5 + 7: scores are finite and in [0,1]; empty-transaction
// sentences get exactly 0.0; the maximum salience is exactly 1.0 when any
// transaction is non-empty.
func TestGetSummary_ScoreBoundsAndMax(t *testing.T) {
	t.Parallel()
	sentences := []Sentence{
		sentenceOf("a", "b", "c", "d"),
		sentenceOf("z"),
	}
	summary, err := GetSummary(sentences, baseConfig(2, 3))
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.SalienceScores[1] != 0.0 {
		t.Errorf("empty-transaction sentence salience = %v, want 0.0", summary.SalienceScores[1])
	}
	max := 0.0
	for _, s := range summary.SalienceScores {
		if s < 0 || s > 1 || math.IsNaN(s) || math.IsInf(s, 0) {
			t.Fatalf("score %v out of bounds", s)
		}
		if s > max {
			max = s
		}
	}
	if max != 1.0 {
		t.Errorf("max salience = %v, want 1.0", max)
	}
}

// Invariant 6: determinism across repeated calls with the same input.
func TestGetSummary_Deterministic(t *testing.T) {
	t.Parallel()
	sentences := []Sentence{
		sentenceOf("a", "b", "c", "d"),
		sentenceOf("a", "b", "e", "f"),
	}
	cfg := baseConfig(2, 3)

	first, err := GetSummary(sentences, cfg)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	second, err := GetSummary(sentences, cfg)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	if len(first.SalienceScores) != len(second.SalienceScores) {
		t.Fatalf("salience length mismatch across runs")
	}
	for i := range first.SalienceScores {
		if first.SalienceScores[i] != second.SalienceScores[i] {
			t.Errorf("salience[%d] differs across runs: %v vs %v", i, first.SalienceScores[i], second.SalienceScores[i])
		}
	}
	if len(first.RelevantItemsets) != len(second.RelevantItemsets) {
		t.Fatalf("itemset count mismatch across runs")
	}
	for i := range first.RelevantItemsets {
		if first.RelevantItemsets[i] != second.RelevantItemsets[i] {
			t.Errorf("itemset[%d] differs across runs: %v vs %v", i, first.RelevantItemsets[i], second.RelevantItemsets[i])
		}
	}
}

func TestSalienceDistribution_BucketsAndNormalization(t *testing.T) {
	t.Parallel()
	dist := SalienceDistribution([]float64{0.0, 0.05, 0.95, 1.0}, 10)
	if len(dist) != 10 {
		t.Fatalf("len(dist) = %d, want 10", len(dist))
	}
	var sum float64
	for _, v := range dist {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("sum(dist) = %v, want 1.0", sum)
	}
	if dist[0] != 0.5 {
		t.Errorf("bucket 0 share = %v, want 0.5 (scores 0.0 and 0.05)", dist[0])
	}
	if dist[9] != 0.5 {
		t.Errorf("bucket 9 share = %v, want 0.5 (scores 0.95 and 1.0)", dist[9])
	}
}

func TestSalienceDistribution_DefaultBuckets(t *testing.T) {
	t.Parallel()
	dist := SalienceDistribution([]float64{0.5}, 0)
	if len(dist) != DefaultBuckets {
		t.Errorf("len(dist) = %d, want %d", len(dist), DefaultBuckets)
	}
}

func TestSalienceDistribution_Empty(t *testing.T) {
	t.Parallel()
	dist := SalienceDistribution(nil, 10)
	for _, v := range dist {
		if v != 0 {
			t.Errorf("dist = %v, want all zero for empty input", dist)
		}
	}
}
