package nystrom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramkit/gram"
)

// Eigen is an eigendecomposition of a kernel matrix over the prototype
// set, supplied by the caller. Values holds the d eigenvalues; Vectors
// holds the corresponding eigenvectors as columns, one row per prototype
// (m×d). How the decomposition is computed — and which eigenpairs are
// kept — is the caller's concern.
type Eigen struct {
	Values  []float64
	Vectors *mat.Dense
}

// FeatureMap projects query points into the eigenspace of a sampled
// kernel matrix. Construct with New; a FeatureMap is immutable and safe
// for concurrent use as long as the evaluator is.
type FeatureMap[T any] struct {
	prototypes []T
	eval       gram.Evaluator[T]
	vectors    *mat.Dense
	invRoots   []float64 // 1/sqrt(λ_i), precomputed
}

// New validates the decomposition against the prototype set and returns a
// FeatureMap. Every eigenvalue must be strictly positive: a non-positive
// λ would turn 1/√λ non-finite, so it is rejected here (wrapped around
// ErrEigenvalue with the offending index) instead of surfacing later as
// NaN or Inf coordinates.
//
// The prototype slice and eigenvector matrix are retained, not copied;
// callers must not mutate them afterwards.
func New[T any](prototypes []T, eval gram.Evaluator[T], eig Eigen) (*FeatureMap[T], error) {
	if len(prototypes) == 0 {
		return nil, ErrNoPrototypes
	}
	if eval == nil {
		return nil, gram.ErrNilEvaluator
	}
	if eig.Vectors == nil || len(eig.Values) == 0 {
		return nil, ErrNoEigenvalues
	}
	m, d := eig.Vectors.Dims()
	if m != len(prototypes) || d != len(eig.Values) {
		return nil, ErrShapeMismatch
	}

	invRoots := make([]float64, d)
	for i, v := range eig.Values {
		if !(v > 0) { // rejects non-positive and NaN alike
			return nil, fmt.Errorf("eigenvalue %d is %g: %w", i, v, ErrEigenvalue)
		}
		invRoots[i] = 1 / math.Sqrt(v)
	}

	return &FeatureMap[T]{
		prototypes: prototypes,
		eval:       eval,
		vectors:    eig.Vectors,
		invRoots:   invRoots,
	}, nil
}

// Dim returns the embedding dimension d (one coordinate per eigenvalue).
func (f *FeatureMap[T]) Dim() int { return len(f.invRoots) }

// Prototypes returns the prototype count m.
func (f *FeatureMap[T]) Prototypes() int { return len(f.prototypes) }

// Map evaluates the feature embedding of x: the kernel row
// [eval(p_1, x) … eval(p_m, x)] is left-multiplied by Vᵀ and divided
// elementwise by √λ. All shape conditions were settled in New, so Map
// cannot fail.
//
// Complexity: m evaluator calls + O(m·d).
func (f *FeatureMap[T]) Map(x T) *mat.VecDense {
	kx := mat.NewVecDense(len(f.prototypes), nil)
	for k, p := range f.prototypes {
		kx.SetVec(k, f.eval(p, x))
	}

	var phi mat.VecDense
	phi.MulVec(f.vectors.T(), kx)
	for i, s := range f.invRoots {
		phi.SetVec(i, phi.AtVec(i)*s)
	}

	return &phi
}

// MapAll embeds a batch of points, one row per point. Returns
// gram.ErrEmptyData on an empty batch.
func (f *FeatureMap[T]) MapAll(points []T) (*mat.Dense, error) {
	if len(points) == 0 {
		return nil, gram.ErrEmptyData
	}

	out := mat.NewDense(len(points), f.Dim(), nil)
	for i, x := range points {
		out.SetRow(i, f.Map(x).RawVector().Data)
	}

	return out, nil
}
