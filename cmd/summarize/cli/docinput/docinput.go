// Package docinput decodes the JSON document wire format the summarize CLI
// reads from the file path given on its command line into
// core.Sentence/core.Config values, in the
// same "decode into a small raw struct, then project into the domain type"
// style session.ParseTranscript uses for JSONL transcripts.
package docinput

import (
	"encoding/json"
	"fmt"

	"github.com/textloom/summarizer/cmd/summarize/cli/core"
)

// rawDocument is the top-level JSON shape of a document file.
type rawDocument struct {
	Sentences []rawSentence `json:"sentences"`
	Config    *rawConfig    `json:"config"`
}

type rawSentence struct {
	Tokens []rawToken `json:"tokens"`
}

type rawToken struct {
	Form         string          `json:"form"`
	Morphologies []rawMorphology `json:"morphologies"`
}

type rawMorphology struct {
	Lemma       string `json:"lemma"`
	ContentWord bool   `json:"contentWord"`
}

type rawConfig struct {
	IgnoreLemmas  []string `json:"ignoreLemmas"`
	MinLCMSupport *float64 `json:"minLCMSupport"`
	NgramDimRange []int    `json:"ngramDimRange"`
}

// Document is the decoded, core-ready result of parsing a document file:
// the sentence list plus whatever configuration overrides the document
// itself carried (nil fields mean "use the caller's default").
type Document struct {
	Sentences []core.Sentence
	Config    *core.Config
}

// Parse decodes raw JSON bytes into a Document. Malformed documents —
// invalid JSON, a non-array sentences field, tokens that are not objects —
// surface as a core.InvalidInputError, matching the core's own
// precondition-failure convention rather than a bare decode error.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &core.InvalidInputError{Reason: fmt.Sprintf("malformed document: %v", err)}
	}
	if raw.Sentences == nil {
		return nil, &core.InvalidInputError{Reason: "document has no \"sentences\" field"}
	}

	sentences := make([]core.Sentence, len(raw.Sentences))
	for i, rs := range raw.Sentences {
		tokens := make([]core.Token, len(rs.Tokens))
		for j, rt := range rs.Tokens {
			morphologies := make([]core.Morphology, len(rt.Morphologies))
			for k, rm := range rt.Morphologies {
				morphologies[k] = core.Morphology{Lemma: rm.Lemma, ContentWord: rm.ContentWord}
			}
			tokens[j] = core.Token{Form: rt.Form, Morphologies: morphologies}
		}
		sentences[i] = core.Sentence{Tokens: tokens}
	}

	doc := &Document{Sentences: sentences}
	if raw.Config != nil {
		cfg := core.DefaultConfig()
		if len(raw.Config.IgnoreLemmas) > 0 {
			cfg.IgnoreLemmas = make(map[string]struct{}, len(raw.Config.IgnoreLemmas))
			for _, l := range raw.Config.IgnoreLemmas {
				cfg.IgnoreLemmas[l] = struct{}{}
			}
		}
		if raw.Config.MinLCMSupport != nil {
			cfg.MinLCMSupport = *raw.Config.MinLCMSupport
		}
		if len(raw.Config.NgramDimRange) == 2 {
			cfg.NgramDimRange = [2]int{raw.Config.NgramDimRange[0], raw.Config.NgramDimRange[1]}
		}
		doc.Config = &cfg
	}

	return doc, nil
}
