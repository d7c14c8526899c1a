// SPDX-License-Identifier: MIT

// Package blockmat: domain types — point groups, block entries with their
// grid coordinates, and the assembled immutable block matrix. Errors live in
// errors.go, configuration in options.go per the global conventions.
package blockmat

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Group is a contiguous sub-sequence of dataset points tagged with its
// zero-based block index. Points aliases the original dataset slice; the
// partitioner copies nothing.
type Group[T any] struct {
	// Index is the group's zero-based position in the partition.
	Index int
	// Points is the contiguous sub-slice of the dataset.
	Points []T
}

// Block is one entry of a block-partitioned matrix: a dense kernel block
// together with its block-grid coordinate.
type Block struct {
	// Row and Col are the zero-based block-grid coordinates.
	Row, Col int64
	// Data holds the block's pairwise evaluations.
	Data *mat.Dense
}

// Layout declares the shape of a block matrix: total element dimensions,
// the target block sizes that lay out the grid, and whether the matrix is
// symmetric (storing only its lower-triangular blocks).
type Layout struct {
	// Rows and Cols are the total element dimensions.
	Rows, Cols int64
	// RowSize and ColSize are the block sizes used to lay out the grid;
	// every block is full-sized except possibly in the last row/column.
	RowSize, ColSize int
	// Symmetric marks a matrix that stores only blocks with Row ≥ Col and
	// reconstructs the rest as transposes of their mirrors.
	Symmetric bool
}

type blockKey struct{ row, col int64 }

// Matrix is an assembled block-partitioned kernel matrix: a finite set of
// dense blocks plus its Layout. It is constructed once — by the builders in
// this package, or via New from entries produced elsewhere — and is
// immutable thereafter.
type Matrix struct {
	layout Layout
	blocks []Block
	index  map[blockKey]int
}

// New assembles a Matrix from a finite sequence of block entries. Entries
// may arrive in any order; they are validated against the layout (grid
// bounds, slot dimensions, lower-triangular coverage for symmetric
// matrices, completeness, no duplicates) and stored in row-major order.
//
// Returns ErrBlockSize, ErrBadShape, ErrBlockIndex, ErrUpperBlock,
// ErrBlockShape, ErrDuplicateBlock or ErrMissingBlock on inconsistent
// input.
func New(l Layout, blocks []Block) (*Matrix, error) {
	if l.RowSize <= 0 || l.ColSize <= 0 {
		return nil, ErrBlockSize
	}
	if l.Rows <= 0 || l.Cols <= 0 {
		return nil, ErrBadShape
	}
	if l.Symmetric && (l.Rows != l.Cols || l.RowSize != l.ColSize) {
		return nil, ErrBadShape
	}

	m := &Matrix{
		layout: l,
		blocks: make([]Block, 0, len(blocks)),
		index:  make(map[blockKey]int, len(blocks)),
	}
	gridRows, gridCols := m.RowBlocks(), m.ColBlocks()

	for _, b := range blocks {
		if b.Row < 0 || b.Row >= gridRows || b.Col < 0 || b.Col >= gridCols {
			return nil, ErrBlockIndex
		}
		if l.Symmetric && b.Row < b.Col {
			return nil, ErrUpperBlock
		}
		r, c := b.Data.Dims()
		if r != m.slotRows(b.Row) || c != m.slotCols(b.Col) {
			return nil, ErrBlockShape
		}
		key := blockKey{row: b.Row, col: b.Col}
		if _, dup := m.index[key]; dup {
			return nil, ErrDuplicateBlock
		}
		m.index[key] = len(m.blocks)
		m.blocks = append(m.blocks, b)
	}

	want := gridRows * gridCols
	if l.Symmetric {
		// Square grid: lower triangle including the diagonal.
		want = gridRows * (gridRows + 1) / 2
	}
	if int64(len(m.blocks)) != want {
		return nil, ErrMissingBlock
	}

	// Canonical row-major order, independent of input order.
	sort.Slice(m.blocks, func(i, j int) bool {
		if m.blocks[i].Row != m.blocks[j].Row {
			return m.blocks[i].Row < m.blocks[j].Row
		}
		return m.blocks[i].Col < m.blocks[j].Col
	})
	for i, b := range m.blocks {
		m.index[blockKey{row: b.Row, col: b.Col}] = i
	}

	return m, nil
}

// Rows returns the total number of element rows.
func (m *Matrix) Rows() int64 { return m.layout.Rows }

// Cols returns the total number of element columns.
func (m *Matrix) Cols() int64 { return m.layout.Cols }

// RowSize returns the target block height the grid was laid out with.
func (m *Matrix) RowSize() int { return m.layout.RowSize }

// ColSize returns the target block width the grid was laid out with.
func (m *Matrix) ColSize() int { return m.layout.ColSize }

// RowBlocks returns the number of block rows: ceil(Rows / RowSize).
func (m *Matrix) RowBlocks() int64 { return ceilDiv(m.layout.Rows, m.layout.RowSize) }

// ColBlocks returns the number of block columns: ceil(Cols / ColSize).
func (m *Matrix) ColBlocks() int64 { return ceilDiv(m.layout.Cols, m.layout.ColSize) }

// Symmetric reports whether the matrix stores only lower-triangular blocks.
func (m *Matrix) Symmetric() bool { return m.layout.Symmetric }

// Layout returns the matrix layout.
func (m *Matrix) Layout() Layout { return m.layout }

// Blocks returns the stored block entries in row-major order. The slice is
// a copy; the dense blocks themselves are shared and must not be mutated.
func (m *Matrix) Blocks() []Block {
	out := make([]Block, len(m.blocks))
	copy(out, m.blocks)
	return out
}

// Block returns the dense block at grid coordinate (row, col). For a
// symmetric matrix a missing upper block is served as the transpose of its
// stored mirror. Returns ErrBlockIndex when the coordinate is outside the
// grid.
func (m *Matrix) Block(row, col int64) (mat.Matrix, error) {
	if row < 0 || row >= m.RowBlocks() || col < 0 || col >= m.ColBlocks() {
		return nil, ErrBlockIndex
	}
	if m.layout.Symmetric && row < col {
		return m.blocks[m.index[blockKey{row: col, col: row}]].Data.T(), nil
	}
	return m.blocks[m.index[blockKey{row: row, col: col}]].Data, nil
}

// At returns the matrix element at (i, j), resolving the owning block and
// the mirror transpose for symmetric matrices. Returns ErrOutOfRange when
// the index is outside the matrix.
func (m *Matrix) At(i, j int64) (float64, error) {
	if i < 0 || i >= m.layout.Rows || j < 0 || j >= m.layout.Cols {
		return 0, ErrOutOfRange
	}
	row, col := i/int64(m.layout.RowSize), j/int64(m.layout.ColSize)
	blk, err := m.Block(row, col)
	if err != nil {
		return 0, err
	}
	return blk.At(int(i-row*int64(m.layout.RowSize)), int(j-col*int64(m.layout.ColSize))), nil
}

// Dense materializes the full matrix, including the reconstructed
// upper-triangular mirrors of a symmetric matrix. Intended for moderate
// sizes and tests; it defeats the purpose of block partitioning otherwise.
//
// Complexity: O(Rows·Cols) time and memory.
func (m *Matrix) Dense() *mat.Dense {
	out := mat.NewDense(int(m.layout.Rows), int(m.layout.Cols), nil)
	for _, b := range m.blocks {
		rowOff := int(b.Row) * m.layout.RowSize
		colOff := int(b.Col) * m.layout.ColSize
		r, c := b.Data.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v := b.Data.At(i, j)
				out.Set(rowOff+i, colOff+j, v)
				if m.layout.Symmetric && b.Row != b.Col {
					out.Set(colOff+j, rowOff+i, v)
				}
			}
		}
	}
	return out
}

// slotRows returns the element height of block row `row` (remainder for
// the trailing row).
func (m *Matrix) slotRows(row int64) int {
	return slotLen(m.layout.Rows, m.layout.RowSize, row)
}

// slotCols returns the element width of block column `col`.
func (m *Matrix) slotCols(col int64) int {
	return slotLen(m.layout.Cols, m.layout.ColSize, col)
}

func slotLen(total int64, size int, idx int64) int {
	if rem := total - idx*int64(size); rem < int64(size) {
		return int(rem)
	}
	return size
}

func ceilDiv(n int64, size int) int64 {
	s := int64(size)
	return (n + s - 1) / s
}
