// SPDX-License-Identifier: MIT

package gram

import "iter"

// Pairs returns a lazy iterator over the cartesian product of the
// (index, element) pairs of a and b, in row-major order: all of b for
// a[0], then all of b for a[1], and so on. The order is deterministic
// for fixed inputs, so any matrix populated from it is reproducible.
//
// Complexity: O(len(a)·len(b)) yields, O(1) memory.
func Pairs[A, B any](a []A, b []B) iter.Seq2[Indexed[A], Indexed[B]] {
	return func(yield func(Indexed[A], Indexed[B]) bool) {
		for i, av := range a {
			for j, bv := range b {
				if !yield(Indexed[A]{Index: i, Value: av}, Indexed[B]{Index: j, Value: bv}) {
					return
				}
			}
		}
	}
}

// LowerPairs returns a lazy iterator over the (index, element) pairs of
// data with itself, filtered to the lower triangle: only pairs with
// first index ≥ second index are yielded. For a symmetric evaluator the
// skipped (i, j) with i < j are recovered by looking up (j, i), which
// halves the evaluation work.
//
// Yield order is row-major within the triangle: (0,0), (1,0), (1,1),
// (2,0), ... — deterministic for fixed input.
//
// Complexity: n(n+1)/2 yields for n = len(data), O(1) memory.
func LowerPairs[T any](data []T) iter.Seq2[Indexed[T], Indexed[T]] {
	return func(yield func(Indexed[T], Indexed[T]) bool) {
		for i, iv := range data {
			for j := 0; j <= i; j++ {
				if !yield(Indexed[T]{Index: i, Value: iv}, Indexed[T]{Index: j, Value: data[j]}) {
					return
				}
			}
		}
	}
}
