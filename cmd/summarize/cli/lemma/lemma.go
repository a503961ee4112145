// Package lemma extracts the ordered list of relevant content-word lemmas
// from a parsed sentence.
package lemma

// Morphology is the first morphological analysis of a token that the
// summarizer cares about: whether it is a content word, and if so, its
// lemma.
type Morphology struct {
	Lemma       string
	ContentWord bool
}

// Token is a single word as delivered by the upstream tokenizer/analyzer.
// Only the first morphology is ever consulted.
type Token struct {
	Form         string
	Morphologies []Morphology
}

// Extract returns the ordered list of relevant lemmas for a sentence's
// tokens: content-word lemmas not present in ignore, in source order,
// duplicates preserved.
//
// A token with no morphology, a non-content-word morphology, or an
// ignored lemma contributes nothing. An empty result is valid.
func Extract(tokens []Token, ignore map[string]struct{}) []string {
	lemmas := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t.Morphologies) == 0 {
			continue
		}
		m := t.Morphologies[0]
		if !m.ContentWord {
			continue
		}
		if _, skip := ignore[m.Lemma]; skip {
			continue
		}
		lemmas = append(lemmas, m.Lemma)
	}
	return lemmas
}
