package ngram

import "sort"

// Index maps lemmas to term ids via terms (assigning new ids as needed),
// enumerates every contiguous n-gram of size in [minSize, maxSize] per the
// window rule below, assigns each distinct n-gram an id via grams, and
// returns the sentence's transaction: a sorted, deduplicated array of
// n-gram ids.
//
// Window rule (reproduced exactly, not "fixed"): for a sentence with N
// mapped terms, a window of width L starting at index s is emitted only
// when s + L < N — i.e. the window ending at position N (the one
// including the last term) is never emitted. This yields max(0, N-L)
// windows of width L, one fewer than the naive s+L<=N bound would give.
func Index(lemmas []string, terms *TermDict, grams *Dict, minSize, maxSize int) []int {
	termIDs := make([]int, len(lemmas))
	for i, l := range lemmas {
		termIDs[i] = terms.IDFor(l)
	}

	n := len(termIDs)
	if n < minSize {
		return []int{}
	}

	seen := make(map[int]struct{})
	for size := minSize; size <= maxSize; size++ {
		for start := 0; start+size < n; start++ {
			window := termIDs[start : start+size]
			id := grams.IDFor(window)
			seen[id] = struct{}{}
		}
	}

	txn := make([]int, 0, len(seen))
	for id := range seen {
		txn = append(txn, id)
	}
	sort.Ints(txn)
	return txn
}
