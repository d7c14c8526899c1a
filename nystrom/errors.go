package nystrom

import "errors"

var (
	// ErrNoPrototypes indicates an empty prototype set.
	ErrNoPrototypes = errors.New("nystrom: prototype set must be non-empty")

	// ErrNoEigenvalues indicates a decomposition with no eigenvalues or a
	// nil eigenvector matrix.
	ErrNoEigenvalues = errors.New("nystrom: eigendecomposition is empty")

	// ErrShapeMismatch indicates that the eigenvector matrix is not
	// (prototype count) × (eigenvalue count).
	ErrShapeMismatch = errors.New("nystrom: eigenvector matrix shape does not match prototypes and eigenvalues")

	// ErrEigenvalue indicates a non-positive or NaN eigenvalue, which would
	// make 1/√λ non-finite. Filter the spectrum before constructing the map.
	ErrEigenvalue = errors.New("nystrom: eigenvalue must be positive")
)
