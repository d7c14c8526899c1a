// Package gram builds dense Gram (kernel) matrices from a pairwise
// similarity evaluator.
//
// What:
//
//   - Evaluator: an opaque pairwise similarity function (T, T) → float64.
//   - Pairs / LowerPairs: deterministic lazy iterators over the (index, element)
//     cartesian product of one or two sequences; LowerPairs keeps only pairs
//     with first index ≥ second index, the deduplication that halves work for
//     a symmetric evaluator.
//   - Symmetric: full n×n kernel matrix over one dataset, each unordered pair
//     evaluated exactly once.
//   - Cross: full n1×n2 kernel matrix over two datasets, every pair evaluated
//     independently.
//
// Why:
//
//   - Kernel-based learning methods (SVMs, kernel ridge regression, spectral
//     methods) consume the full matrix of pairwise evaluations over a dataset.
//   - Symmetric construction stores one float64 per unordered pair, so
//     K.At(i, j) and K.At(j, i) read the very same value. This is a numeric
//     guarantee, not just a saving: a floating-point evaluator may return
//     different results for (a, b) and (b, a), and the dedup removes that risk.
//
// Complexity:
//
//   - Symmetric: n(n+1)/2 evaluator calls, O(n²) memory (packed triangle).
//   - Cross:     n1·n2 evaluator calls, O(n1·n2) memory.
//
// Errors:
//
//   - ErrEmptyData: a dataset is empty.
//   - ErrNilEvaluator: no evaluator was supplied.
//
// The evaluator is assumed symmetric (eval(a,b) == eval(b,a)) wherever the
// symmetric builders are used; this is a caller obligation and is never
// verified.
package gram
