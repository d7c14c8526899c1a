// SPDX-License-Identifier: MIT

package blockmat

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramkit/gram"
)

// Symmetric builds a block-partitioned kernel matrix over one dataset of
// length L, computing only the lower-triangular block grid.
//
// Algorithm:
//  1. Partition data into Groups of the configured block size.
//  2. Cross the group sequence with itself through the lower-triangular
//     pair filter — only block pairs with blockRow ≥ blockCol survive.
//  3. Diagonal pairs (blockRow == blockCol) go through gram.Symmetric,
//     exploiting intra-block symmetry too; off-diagonal pairs through
//     gram.Cross on the two distinct groups.
//  4. Assemble a Matrix tagged rows = cols = L with RowBlocks = ColBlocks =
//     ceil(L / blockSize); the missing upper blocks are transposes of their
//     stored mirrors.
//
// Total evaluator calls are proportional to the lower-triangular block
// pairs only — the dense builder's halving principle applied at block
// granularity.
//
// A symmetric build requires one grid on both axes: configuring unequal
// row/col block sizes returns ErrSquareBlocks. Other errors: ErrBlockSize,
// ErrWorkerCount, gram.ErrEmptyData, gram.ErrNilEvaluator, and ctx.Err()
// when the configured context is cancelled.
func Symmetric[T any](data []T, eval gram.Evaluator[T], opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.rowSize != o.colSize {
		return nil, ErrSquareBlocks
	}
	if len(data) == 0 {
		return nil, gram.ErrEmptyData
	}
	if eval == nil {
		return nil, gram.ErrNilEvaluator
	}

	groups, err := Partition(data, o.rowSize)
	if err != nil {
		return nil, err
	}

	type pair struct{ row, col Group[T] }
	var pairs []pair
	for r, c := range gram.LowerPairs(groups) {
		pairs = append(pairs, pair{row: r.Value, col: c.Value})
	}

	blocks := make([]Block, len(pairs))
	err = runBlocks(o, len(pairs), func(i int) error {
		p := pairs[i]
		var d *mat.Dense
		if p.row.Index == p.col.Index {
			sym, err := gram.Symmetric(p.row.Points, eval)
			if err != nil {
				return err
			}
			d = mat.DenseCopyOf(sym)
		} else {
			var err error
			if d, err = gram.Cross(p.row.Points, p.col.Points, eval); err != nil {
				return err
			}
		}
		blocks[i] = Block{Row: int64(p.row.Index), Col: int64(p.col.Index), Data: d}
		o.log.Debug("computed kernel block",
			zap.Int("blockRow", p.row.Index),
			zap.Int("blockCol", p.col.Index),
			zap.Int("rows", len(p.row.Points)),
			zap.Int("cols", len(p.col.Points)),
			zap.Bool("diagonal", p.row.Index == p.col.Index))
		return nil
	})
	if err != nil {
		return nil, err
	}

	m, err := New(Layout{
		Rows:      int64(len(data)),
		Cols:      int64(len(data)),
		RowSize:   o.rowSize,
		ColSize:   o.colSize,
		Symmetric: true,
	}, blocks)
	if err != nil {
		return nil, err
	}

	o.log.Info("assembled symmetric block matrix",
		zap.Int64("rows", m.Rows()),
		zap.Int64("rowBlocks", m.RowBlocks()),
		zap.Int("storedBlocks", len(blocks)))
	return m, nil
}
