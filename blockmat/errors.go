// SPDX-License-Identifier: MIT
// Package blockmat: sentinel error set. All public operations return these
// sentinels and tests match them via errors.Is; panics are reserved for
// programmer errors in private helpers.

package blockmat

import "errors"

var (
	// ErrBlockSize indicates a non-positive target block size.
	ErrBlockSize = errors.New("blockmat: block size must be positive")

	// ErrWorkerCount indicates a non-positive worker count.
	ErrWorkerCount = errors.New("blockmat: worker count must be positive")

	// ErrSquareBlocks indicates a symmetric build configured with unequal
	// row and column block sizes. Mirror-transpose reconstruction of the
	// missing upper blocks requires a single grid on both axes.
	ErrSquareBlocks = errors.New("blockmat: symmetric build requires equal row and column block sizes")

	// ErrBadShape indicates invalid total dimensions or a layout that is
	// internally inconsistent (e.g. symmetric with rows != cols).
	ErrBadShape = errors.New("blockmat: invalid matrix shape")

	// ErrBlockIndex indicates a block coordinate outside the block grid.
	ErrBlockIndex = errors.New("blockmat: block index out of range")

	// ErrUpperBlock indicates an upper-triangular block entry supplied for a
	// symmetric matrix, which stores only blockRow ≥ blockCol.
	ErrUpperBlock = errors.New("blockmat: symmetric matrix stores only lower-triangular blocks")

	// ErrBlockShape indicates a block whose dimensions do not match its grid
	// slot (full block size, or the remainder for the trailing row/column).
	ErrBlockShape = errors.New("blockmat: block dimensions do not match grid slot")

	// ErrDuplicateBlock indicates two entries for the same block coordinate.
	ErrDuplicateBlock = errors.New("blockmat: duplicate block entry")

	// ErrMissingBlock indicates an incomplete set of block entries.
	ErrMissingBlock = errors.New("blockmat: missing block entry")

	// ErrOutOfRange indicates an element index outside the matrix bounds.
	ErrOutOfRange = errors.New("blockmat: element index out of range")
)
