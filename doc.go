// Package gramkit builds Gram (kernel) matrices for kernel-based learning
// methods — dense, block-partitioned, and as approximate Nystrom feature
// embeddings.
//
// 🚀 What is gramkit?
//
//	A small, deterministic library that brings together:
//		• Dense construction: symmetric (half the work, exactly symmetric
//		  output) and rectangular kernel matrices from any pairwise evaluator
//		• Block partitioning: kernel matrices too large for one dense
//		  allocation, computed blockwise over the lower-triangular block grid
//		• Parallel block builds on a goroutine pool, identical output
//		  regardless of worker count
//		• Nystrom feature maps: project new points into the eigenspace of a
//		  sampled kernel matrix
//		• Stock kernels (linear, RBF, Laplacian, polynomial) and mmap-backed
//		  block storage
//
// ✨ Why choose gramkit?
//
//   - Exact symmetry – K[i][j] and K[j][i] are the same stored float64,
//     never two evaluations
//   - Deterministic – fixed inputs produce identical matrices, sequential
//     or parallel
//   - Opaque points – datasets are []T for any T; the library only ever
//     hands pairs to your evaluator
//
// Everything is organized under five subpackages:
//
//	gram/       — pair iterators + dense symmetric/rectangular builders
//	blockmat/   — partitioner, blockwise builders, assembled block matrix
//	nystrom/    — eigendecomposition-based approximate feature maps
//	kernels/    — stock evaluators over []float64
//	blockstore/ — memory-mapped persistence for block matrices
//
// Quick example:
//
//	eval := func(a, b float64) float64 { return math.Abs(a - b) }
//	k, err := gram.Symmetric([]float64{1, 2, 3}, eval)   // 3×3, 6 evaluations
//	m, err := blockmat.Symmetric(data, eval,
//	        blockmat.WithBlockSize(512), blockmat.WithWorkers(8))
//
// See each subpackage's doc.go for contracts, options and error sets.
package gramkit
