// SPDX-License-Identifier: MIT

package gram

import "gonum.org/v1/gonum/mat"

// Symmetric builds the full n×n kernel matrix over data, exploiting the
// symmetry of eval: each unordered pair is evaluated exactly once, via
// LowerPairs, and stored once in the packed triangle of a *mat.SymDense.
// Consequently K.At(i, j) and K.At(j, i) read the same stored float64 —
// the matrix is exactly symmetric even if eval is not (due to, say,
// floating-point non-associativity in its implementation).
//
// Algorithm:
//  1. Iterate the deduplicated lower-triangular pair set (i ≥ j).
//  2. Store eval(data[i], data[j]) at (i, j); the mirror cell (j, i) is
//     the same packed entry.
//
// Returns ErrEmptyData when data is empty and ErrNilEvaluator when eval
// is nil.
//
// Complexity: n(n+1)/2 evaluator calls, O(n²) memory.
func Symmetric[T any](data []T, eval Evaluator[T]) (*mat.SymDense, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if eval == nil {
		return nil, ErrNilEvaluator
	}

	k := mat.NewSymDense(len(data), nil)
	for a, b := range LowerPairs(data) {
		k.SetSym(a.Index, b.Index, eval(a.Value, b.Value))
	}

	return k, nil
}

// Cross builds the full n1×n2 kernel matrix between rows and cols:
// M[i][j] = eval(rows[i], cols[j]). No symmetry is assumed or exploited —
// the two datasets are in general distinct, so every pair is evaluated
// independently (exactly n1·n2 calls).
//
// Returns ErrEmptyData when either dataset is empty and ErrNilEvaluator
// when eval is nil.
//
// Complexity: n1·n2 evaluator calls, O(n1·n2) memory.
func Cross[T any](rows, cols []T, eval Evaluator[T]) (*mat.Dense, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, ErrEmptyData
	}
	if eval == nil {
		return nil, ErrNilEvaluator
	}

	m := mat.NewDense(len(rows), len(cols), nil)
	for r, c := range Pairs(rows, cols) {
		m.Set(r.Index, c.Index, eval(r.Value, c.Value))
	}

	return m, nil
}
