package core

import (
	"math"
	"sort"
	"strings"
)

// extractKeywords splits each rendered itemset text into whitespace-delimited
// keywords (after turning every comma into a space and collapsing runs of
// spaces), accumulates the itemset score against each keyword it appeared
// in — once per itemset, even if a keyword occurs more than once in the
// same rendered text — and scores each keyword as
// (mean(scores))^(1/len(scores)). Output is sorted by score descending,
// ties broken by first occurrence (stable sort over itemset order).
func extractKeywords(itemsets []ItemsetResult) []KeywordResult {
	scoresByKeyword := make(map[string][]float64)
	var order []string

	for _, is := range itemsets {
		normalized := strings.ReplaceAll(is.Text, ",", " ")
		fields := strings.Fields(normalized)

		seenInThisItemset := make(map[string]bool, len(fields))
		for _, kw := range fields {
			if seenInThisItemset[kw] {
				continue
			}
			seenInThisItemset[kw] = true
			if _, ok := scoresByKeyword[kw]; !ok {
				order = append(order, kw)
			}
			scoresByKeyword[kw] = append(scoresByKeyword[kw], is.Score)
		}
	}

	results := make([]KeywordResult, 0, len(order))
	for _, kw := range order {
		scores := scoresByKeyword[kw]
		var sum float64
		for _, s := range scores {
			sum += s
		}
		mean := sum / float64(len(scores))
		results = append(results, KeywordResult{
			Keyword: kw,
			Score:   math.Pow(mean, 1.0/float64(len(scores))),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
