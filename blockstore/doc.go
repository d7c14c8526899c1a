// Package blockstore persists assembled block matrices to memory-mapped
// files and serves individual blocks back without loading the whole
// matrix.
//
// What:
//
//   - Write: lays a blockmat.Matrix out into a single file — fixed header,
//     block index, then the raw float64 payload — through a writable mmap.
//   - Store: a read-only view over such a file. Block reads copy one
//     block's floats out of the mapping; the mirror of a symmetric
//     matrix's missing upper block is served transposed, exactly as the
//     in-memory Matrix does. Matrix reassembles the full in-memory form.
//
// Why:
//
//   - Block partitioning exists so that a kernel matrix larger than memory
//     never has to be materialized at once; a storage collaborator that
//     can hand out single blocks is the other half of that bargain.
//
// File format (little-endian):
//
//	magic "GKBS" | version | rows | cols | rowSize | colSize | symmetric | blockCount
//	blockCount × (row | col | blockRows | blockCols | byte offset)
//	payload: row-major float64s per block
//
// Errors:
//
//   - ErrFormat: the file is not a well-formed block matrix file.
//   - blockmat.ErrBlockIndex: block coordinate outside the grid.
//
// Concurrency: a Store is safe for concurrent readers; Write must not
// race with readers of the same path.
package blockstore
