// Package blockmat builds block-partitioned Gram (kernel) matrices for
// datasets too large to materialize as one dense matrix.
//
// What:
//
//   - Partition: splits a dataset into contiguous, index-tagged Groups of a
//     target size (the last group may be shorter).
//   - Symmetric: block-partitioned kernel matrix over one dataset. Only the
//     lower-triangular block grid is computed and stored; a missing upper
//     block is understood to be the transpose of its mirror. Diagonal blocks
//     additionally exploit intra-block symmetry.
//   - Cross: block-partitioned rectangular kernel matrix over two datasets;
//     the full block grid is computed, no symmetry assumed.
//   - Matrix: the assembled result — a finite set of (blockRow, blockCol) →
//     dense block entries plus total and block-grid dimensions, immutable
//     after construction. New builds one from block entries produced
//     elsewhere (e.g. reloaded from storage).
//
// Why:
//
//   - A kernel matrix grows quadratically with the dataset; beyond some size
//     it only exists as a grid of dense blocks handled out of core or
//     distributed. Each block depends only on its own two groups of points,
//     so blocks are computed independently — optionally in parallel on a
//     goroutine pool (WithWorkers).
//
// Complexity:
//
//   - Symmetric: evaluator calls proportional to the lower-triangular block
//     pairs only — the same halving as the dense symmetric builder, applied
//     at block granularity.
//   - Cross: exactly n1·n2 evaluator calls across all blocks.
//
// Options:
//
//   - WithBlockSize / WithRowBlockSize / WithColBlockSize: target block shape.
//   - WithWorkers: parallel block computation (sequential when 1).
//   - WithContext: cancellation — remaining blocks are not scheduled.
//   - WithLogger: injected *zap.Logger collaborator (no-op by default).
//
// Errors:
//
//   - ErrBlockSize, ErrWorkerCount: misconfiguration (fatal, no recovery).
//   - ErrSquareBlocks: symmetric build with unequal row/col block sizes.
//   - ErrBadShape, ErrBlockIndex, ErrUpperBlock, ErrBlockShape,
//     ErrDuplicateBlock, ErrMissingBlock: inconsistent block entries passed
//     to New.
//   - ErrOutOfRange: element lookup outside the matrix.
//
// Determinism: for fixed inputs and options the assembled Matrix is
// identical regardless of worker count; results land in pre-assigned slots
// so parallel scheduling cannot reorder them.
package blockmat
