// SPDX-License-Identifier: MIT

package blockmat

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/gramkit/gram"
)

// Cross builds a block-partitioned rectangular kernel matrix between two
// datasets of lengths n1 and n2.
//
// Algorithm:
//  1. Partition rows and cols independently into Groups of the configured
//     row/col block sizes.
//  2. Form the full cross product of the two group sequences — the
//     datasets are distinct, so no triangular filter applies.
//  3. Compute every block pair through gram.Cross.
//  4. Assemble a Matrix tagged rows = n1, cols = n2, RowBlocks =
//     ceil(n1/rowSize), ColBlocks = ceil(n2/colSize).
//
// Exactly n1·n2 evaluator calls are made across all blocks. Errors:
// ErrBlockSize, ErrWorkerCount, gram.ErrEmptyData, gram.ErrNilEvaluator,
// and ctx.Err() when the configured context is cancelled.
func Cross[T any](rows, cols []T, eval gram.Evaluator[T], opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(cols) == 0 {
		return nil, gram.ErrEmptyData
	}
	if eval == nil {
		return nil, gram.ErrNilEvaluator
	}

	rowGroups, err := Partition(rows, o.rowSize)
	if err != nil {
		return nil, err
	}
	colGroups, err := Partition(cols, o.colSize)
	if err != nil {
		return nil, err
	}

	type pair struct{ row, col Group[T] }
	var pairs []pair
	for r, c := range gram.Pairs(rowGroups, colGroups) {
		pairs = append(pairs, pair{row: r.Value, col: c.Value})
	}

	blocks := make([]Block, len(pairs))
	err = runBlocks(o, len(pairs), func(i int) error {
		p := pairs[i]
		d, err := gram.Cross(p.row.Points, p.col.Points, eval)
		if err != nil {
			return err
		}
		blocks[i] = Block{Row: int64(p.row.Index), Col: int64(p.col.Index), Data: d}
		o.log.Debug("computed kernel block",
			zap.Int("blockRow", p.row.Index),
			zap.Int("blockCol", p.col.Index),
			zap.Int("rows", len(p.row.Points)),
			zap.Int("cols", len(p.col.Points)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	m, err := New(Layout{
		Rows:    int64(len(rows)),
		Cols:    int64(len(cols)),
		RowSize: o.rowSize,
		ColSize: o.colSize,
	}, blocks)
	if err != nil {
		return nil, err
	}

	o.log.Info("assembled cross block matrix",
		zap.Int64("rows", m.Rows()),
		zap.Int64("cols", m.Cols()),
		zap.Int64("rowBlocks", m.RowBlocks()),
		zap.Int64("colBlocks", m.ColBlocks()))
	return m, nil
}
