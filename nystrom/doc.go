// Package nystrom evaluates approximate finite-dimensional feature maps
// derived from an eigendecomposition of a sampled kernel matrix (the
// Nystrom method).
//
// What:
//
//   - Eigen: an already-computed eigendecomposition (eigenvalues λ plus an
//     m×d eigenvector matrix V) of a kernel matrix over a fixed prototype
//     set of m points. This package consumes the decomposition; it never
//     computes one.
//   - FeatureMap: for a query point x,
//     φ(x)_i = (1 / √λ_i) · Σ_k eval(p_k, x) · V[k, i]
//     — the kernel row of x against the prototypes, projected through V
//     and rescaled. φ has one coordinate per eigenvalue.
//
// Why:
//
//   - A kernel matrix over the full dataset may be intractable; projecting
//     new points into the eigenspace of a small sampled kernel matrix
//     yields an explicit low-dimensional embedding whose inner products
//     approximate the kernel: φ(p_k)·φ(p_l) ≈ K[k][l].
//
// Complexity:
//
//   - Map: m evaluator calls plus an m×d matrix-vector product.
//
// Errors:
//
//   - ErrNoPrototypes, gram.ErrNilEvaluator, ErrNoEigenvalues,
//     ErrShapeMismatch: malformed inputs.
//   - ErrEigenvalue: a non-positive (or NaN) eigenvalue. The division by
//     √λ would otherwise silently produce non-finite coordinates, so the
//     decomposition is validated up front; callers filter their spectrum
//     before constructing the map.
package nystrom
