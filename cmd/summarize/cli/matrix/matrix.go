// Package matrix builds the dense itemset-by-sentence incidence matrix fed
// into the truncated SVD, and implements the reference containment
// predicate used to populate it.
package matrix

import "gonum.org/v1/gonum/mat"

// Contains reports whether transaction T "contains" itemset I under the
// reference definition: find the first occurrence of I[0] in T, then
// compare the following len(I)-1 elements of T against I element-wise.
// This is deliberately NOT general subset containment — it is a
// contiguous, prefix-aligned subrun match starting at I's first item. Both
// T and I are sorted ascending in practice; even then, an itemset that is
// a subset of T but not a contiguous run of it does not match.
func Contains(transaction, itemset []int) bool {
	if len(itemset) == 0 {
		return false
	}
	first := itemset[0]
	startIndex := -1
	for i, v := range transaction {
		if v == first {
			startIndex = i
			break
		}
	}
	if startIndex == -1 {
		return false
	}

	endIndex := startIndex + len(itemset) - 1
	if endIndex > len(transaction)-1 {
		endIndex = len(transaction) - 1
	}

	segment := transaction[startIndex : endIndex+1]
	if len(segment) != len(itemset) {
		return false
	}
	for i := range segment {
		if segment[i] != itemset[i] {
			return false
		}
	}
	return true
}

// Build constructs the dense (R, C) incidence matrix where R is the
// number of itemsets and C the number of transactions: A[i,j] = 1.0 iff
// transactions[j] contains itemsets[i] per Contains.
func Build(itemsets [][]int, transactions [][]int) *mat.Dense {
	r := len(itemsets)
	c := len(transactions)
	data := make([]float64, r*c)
	for i, itemset := range itemsets {
		for j, txn := range transactions {
			if Contains(txn, itemset) {
				data[i*c+j] = 1.0
			}
		}
	}
	return mat.NewDense(r, c, data)
}
