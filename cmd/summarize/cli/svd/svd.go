// Package svd wraps gonum's dense SVD factorization for the truncated
// decomposition the scorer needs, in the same style as the LSA builder
// this repository's CLI stack is otherwise grounded on: factorize thin,
// pull out U/V/singular-values, keep whatever rank the routine delivers.
package svd

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when gonum's SVD factorization fails to
// converge. The core never attempts a heuristic fallback: this is a
// NumericFailure, to be propagated to the caller.
var ErrNoConvergence = errors.New("svd: factorization failed to converge")

// Result holds the factorization A ≈ U · Σ · Vᵀ with singular values in
// descending order. K is the effective rank gonum's thin SVD delivered —
// no additional truncation is imposed.
type Result struct {
	U *mat.Dense
	S []float64
	V *mat.Dense
	K int
}

// Truncated factorizes a with a thin SVD and returns the full factorized
// rank (not further truncated — the core has no external rank parameter,
// unlike callers that request a specific embedding dimension).
func Truncated(a *mat.Dense) (*Result, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, ErrNoConvergence
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	return &Result{U: &u, S: values, V: &v, K: len(values)}, nil
}
