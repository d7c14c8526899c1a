// Package kernels provides stock pairwise evaluators over real vectors
// for use with the gram, blockmat and nystrom builders.
//
// What:
//
//   - Linear:     k(a,b) = ⟨a,b⟩.
//   - RBF:        k(a,b) = exp(-‖a-b‖² / (2σ²))  (Gaussian).
//   - Laplacian:  k(a,b) = exp(-γ·‖a-b‖₁).
//   - Polynomial: k(a,b) = (γ·⟨a,b⟩ + c)ᵈ.
//
// All returned evaluators are pure, stateless and symmetric, so they
// satisfy the caller obligations of the symmetric builders. Vector
// lengths must agree; mismatched inputs panic inside gonum, as this is a
// programmer error.
//
// Constructors panic on nonsensical parameters (non-positive bandwidth or
// scale, degree < 1) with stable messages — misconfiguration, not a
// runtime condition.
package kernels
