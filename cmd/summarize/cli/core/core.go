// Package core orchestrates the summarization pipeline — lemma extraction,
// n-gram indexing, closed-frequent-itemset mining, incidence-matrix
// construction, truncated SVD, and relevance/salience scoring — into a
// single pure GetSummary call. It owns no state between calls: every
// dictionary and matrix is freshly allocated per invocation.
package core

import (
	"strings"

	"github.com/textloom/summarizer/cmd/summarize/cli/lemma"
	"github.com/textloom/summarizer/cmd/summarize/cli/matrix"
	"github.com/textloom/summarizer/cmd/summarize/cli/miner"
	"github.com/textloom/summarizer/cmd/summarize/cli/ngram"
	"github.com/textloom/summarizer/cmd/summarize/cli/scorer"
	"github.com/textloom/summarizer/cmd/summarize/cli/svd"
)

// Token and Morphology are aliases of lemma's types: lemma owns them since
// it is the leaf package that actually reads their fields, and core would
// otherwise need a second, import-cycle-inducing definition.
type Token = lemma.Token
type Morphology = lemma.Morphology

// Sentence is one morpho-syntactic sentence as delivered by the upstream
// tokenizer/parser/analyzer pipeline. The core reads only Tokens.
type Sentence struct {
	Tokens []Token
}

// Config holds the tunables a caller may set before invoking GetSummary.
type Config struct {
	IgnoreLemmas  map[string]struct{}
	MinLCMSupport float64
	NgramDimRange [2]int
}

// DefaultConfig returns the reference default configuration: no ignored
// lemmas, 1% minimum support, n-grams of size 2 through 4.
func DefaultConfig() Config {
	return Config{
		IgnoreLemmas:  map[string]struct{}{},
		MinLCMSupport: 0.01,
		NgramDimRange: [2]int{2, 4},
	}
}

// ItemsetResult is one rendered, scored itemset.
type ItemsetResult struct {
	Text  string
	Score float64
}

// KeywordResult is one keyword and its aggregated relevance score.
type KeywordResult struct {
	Keyword string
	Score   float64
}

// Summary is the pure output of GetSummary.
type Summary struct {
	SalienceScores   []float64
	RelevantItemsets []ItemsetResult
	RelevantKeywords []KeywordResult
}

// GetSummary runs the full pipeline once over sentences under cfg. It
// never mutates its inputs and never keeps state across calls.
func GetSummary(sentences []Sentence, cfg Config) (Summary, error) {
	if err := Validate(len(sentences), cfg); err != nil {
		return Summary{}, err
	}

	terms := ngram.NewTermDict()
	grams := ngram.NewDict()

	transactions := make([][]int, 0, len(sentences))
	colToSentence := make([]int, 0, len(sentences))

	for si, sent := range sentences {
		lemmas := lemma.Extract(sent.Tokens, cfg.IgnoreLemmas)
		txn := ngram.Index(lemmas, terms, grams, cfg.NgramDimRange[0], cfg.NgramDimRange[1])
		if len(txn) == 0 {
			continue
		}
		transactions = append(transactions, txn)
		colToSentence = append(colToSentence, si)
	}

	salience := make([]float64, len(sentences))

	if len(transactions) == 0 {
		return Summary{SalienceScores: salience}, nil
	}

	itemsets := miner.Mine(transactions, cfg.MinLCMSupport)
	if len(itemsets) == 0 {
		return Summary{SalienceScores: salience}, nil
	}

	itemsetItems := make([][]int, len(itemsets))
	for i, is := range itemsets {
		itemsetItems[i] = is.Items
	}

	a := matrix.Build(itemsetItems, transactions)

	factorized, err := svd.Truncated(a)
	if err != nil {
		return Summary{}, &NumericFailureError{Err: err}
	}

	relevant := scorer.RelevantSingularValues(factorized.S)

	itemsetScores := scorer.Normalize(scorer.RowScores(factorized.U, factorized.S, relevant))
	transactionScores := scorer.Normalize(scorer.RowScores(factorized.V, factorized.S, relevant))

	for col, si := range colToSentence {
		salience[si] = transactionScores[col]
	}

	relevantItemsets := make([]ItemsetResult, len(itemsets))
	for i, is := range itemsets {
		relevantItemsets[i] = ItemsetResult{
			Text:  renderItemset(is.Items, grams, terms),
			Score: itemsetScores[i],
		}
	}

	return Summary{
		SalienceScores:   salience,
		RelevantItemsets: relevantItemsets,
		RelevantKeywords: extractKeywords(relevantItemsets),
	}, nil
}

// renderItemset expands an itemset's n-gram ids to their lemma sequences,
// joins each sequence by a single space, and joins the items by ", " —
// e.g. an itemset decoding to ["cat","sat"] and ["on","mat"] renders as
// "cat sat, on mat".
func renderItemset(items []int, grams *ngram.Dict, terms *ngram.TermDict) string {
	parts := make([]string, len(items))
	for i, itemID := range items {
		termIDs := grams.Terms(itemID)
		words := make([]string, len(termIDs))
		for j, termID := range termIDs {
			words[j] = terms.Lemma(termID)
		}
		parts[i] = strings.Join(words, " ")
	}
	return strings.Join(parts, ", ")
}
