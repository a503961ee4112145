// Package scorer derives itemset-relevance and sentence-salience scores
// from a truncated SVD's singular vectors and values.
package scorer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RelevantSingularValues returns the 0-based inclusive upper bound used by
// RowScores: starting at index 0, advance while s[index] >= s[0]/2 and
// index < len(s)-1. The result is the count of leading values at or above
// the threshold (capped at len(s)-1), so RowScores' inclusive 0..=result
// sum takes one more index than that count — this off-by-one is
// load-bearing and must not be "corrected". Returns -1 for an empty s.
func RelevantSingularValues(s []float64) int {
	if len(s) == 0 {
		return -1
	}
	threshold := s[0] / 2
	index := 0
	for index < len(s)-1 && s[index] >= threshold {
		index++
	}
	return index
}

// RowScores computes, for every row k of m, sqrt(sum_{i=0}^{upTo}
// m[k,i]^2 * s[i]^2). m is either the U or V factor from a truncated SVD.
func RowScores(m *mat.Dense, s []float64, upTo int) []float64 {
	rows, _ := m.Dims()
	scores := make([]float64, rows)
	for r := 0; r < rows; r++ {
		var sum float64
		for i := 0; i <= upTo; i++ {
			v := m.At(r, i)
			sum += v * v * s[i] * s[i]
		}
		scores[r] = math.Sqrt(sum)
	}
	return scores
}

// Normalize divides every score by the maximum score in the slice. If the
// maximum is 0, it returns an all-zero slice rather than dividing.
func Normalize(scores []float64) []float64 {
	var max float64
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(scores))
	if max == 0 {
		return out
	}
	for i, v := range scores {
		out[i] = v / max
	}
	return out
}
