// Package miner discovers closed frequent itemsets over a collection of
// sentence transactions, following the LCM (Uno/Kiyomi/Arimura) family of
// prefix-preserving closure extension algorithms: every candidate is
// extended to its closure (the full set of items common to every
// transaction it still covers) before being emitted, so no itemset with a
// proper superset of equal support is ever returned.
package miner

import (
	"math"
	"sort"
)

// Itemset is a closed frequent itemset: a sorted ascending array of n-gram
// item ids plus the number of transactions it occurs in.
type Itemset struct {
	Items   []int
	Support int
}

// Mine returns every closed frequent itemset over transactions at the
// given minimum relative support, flattened in ascending itemset-size
// order. minSupport is a fraction of len(transactions); the concrete
// absolute threshold is ceil(minSupport * len(transactions)), floored
// at 1. An empty transaction list yields an empty result.
func Mine(transactions [][]int, minSupport float64) []Itemset {
	if len(transactions) == 0 {
		return nil
	}

	threshold := supportThreshold(minSupport, len(transactions))
	tidsets := buildTIDSets(transactions)

	items := make([]int, 0, len(tidsets))
	for item, tids := range tidsets {
		if countTrue(tids) >= threshold {
			items = append(items, item)
		}
	}
	sort.Ints(items)

	if len(items) == 0 {
		return nil
	}

	universal := make([]bool, len(transactions))
	for i := range universal {
		universal[i] = true
	}

	var results []Itemset
	dfs(items, tidsets, threshold, nil, universal, 0, &results)

	sort.Slice(results, func(i, j int) bool {
		if len(results[i].Items) != len(results[j].Items) {
			return len(results[i].Items) < len(results[j].Items)
		}
		return lessIntSlice(results[i].Items, results[j].Items)
	})
	return results
}

// supportThreshold converts a relative minimum support into an absolute
// transaction count, with a floor of 1.
func supportThreshold(minSupport float64, nTransactions int) int {
	t := int(math.Ceil(minSupport * float64(nTransactions)))
	if t < 1 {
		t = 1
	}
	return t
}

// buildTIDSets returns, for every item appearing in any transaction, a
// bitset (indexed by transaction position) of the transactions it occurs
// in.
func buildTIDSets(transactions [][]int) map[int][]bool {
	tidsets := make(map[int][]bool)
	for ti, txn := range transactions {
		for _, item := range txn {
			tids, ok := tidsets[item]
			if !ok {
				tids = make([]bool, len(transactions))
				tidsets[item] = tids
			}
			tids[ti] = true
		}
	}
	return tidsets
}

// dfs performs prefix-preserving closure extension starting from prefix
// (already closed) over prefixTIDs, considering only items at index >=
// startIdx as extensions — the standard canonical-order restriction that
// keeps each closed itemset from being discovered more than once.
func dfs(items []int, tidsets map[int][]bool, threshold int, prefix []int, prefixTIDs []bool, startIdx int, results *[]Itemset) {
	for idx := startIdx; idx < len(items); idx++ {
		item := items[idx]
		if containsInt(prefix, item) {
			continue
		}
		newTIDs := intersect(prefixTIDs, tidsets[item])
		support := countTrue(newTIDs)
		if support < threshold {
			continue
		}

		closure := closureOf(items, tidsets, newTIDs)

		// PPC pruning: if the closure contains an earlier item not already
		// part of the prefix, this branch reaches an itemset that some
		// earlier branch already produced (or will produce) in canonical
		// order — skip to avoid duplicate emission.
		dup := false
		for _, c := range closure {
			ci := indexOf(items, c)
			if ci < idx && !containsInt(prefix, c) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		sorted := append([]int(nil), closure...)
		sort.Ints(sorted)
		*results = append(*results, Itemset{Items: sorted, Support: support})

		dfs(items, tidsets, threshold, sorted, newTIDs, idx+1, results)
	}
}

// closureOf returns every frequent item whose tidset is a superset of
// tids — the maximal itemset sharing tids' support, i.e. the closure.
func closureOf(items []int, tidsets map[int][]bool, tids []bool) []int {
	var closure []int
	for _, item := range items {
		if isSuperset(tidsets[item], tids) {
			closure = append(closure, item)
		}
	}
	return closure
}

func intersect(a, b []bool) []bool {
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] && b[i]
	}
	return out
}

func isSuperset(super, sub []bool) bool {
	for i, v := range sub {
		if v && !super[i] {
			return false
		}
	}
	return true
}

func countTrue(bs []bool) int {
	n := 0
	for _, v := range bs {
		if v {
			n++
		}
	}
	return n
}

func indexOf(items []int, v int) int {
	// items is sorted ascending.
	lo, hi := 0, len(items)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case items[mid] == v:
			return mid
		case items[mid] < v:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
