package blockmat_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/gramkit/blockmat"
	"github.com/katalvlaran/gramkit/gram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func absDiff(a, b float64) float64 { return math.Abs(a - b) }

// seq returns [0, 1, ..., n-1] as float64s.
func seq(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return data
}

// TestSymmetric_DocumentedScenario verifies the full 3-point, block-size-2
// scenario: stored blocks (0,0)=[[0,1],[1,0]], (1,0)=[[2,1]], (1,1)=[[0]].
func TestSymmetric_DocumentedScenario(t *testing.T) {
	m, err := blockmat.Symmetric([]float64{1, 2, 3}, absDiff, blockmat.WithBlockSize(2))
	require.NoError(t, err)

	assert.Equal(t, int64(3), m.Rows())
	assert.Equal(t, int64(2), m.RowBlocks())
	assert.Equal(t, int64(2), m.ColBlocks())

	stored := m.Blocks()
	require.Len(t, stored, 3, "only the lower-triangular block grid is stored")

	diag, err := m.Block(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, diag.At(0, 0))
	assert.Equal(t, 1.0, diag.At(0, 1))
	assert.Equal(t, 1.0, diag.At(1, 0))
	assert.Equal(t, 0.0, diag.At(1, 1))

	off, err := m.Block(1, 0)
	require.NoError(t, err)
	r, c := off.Dims()
	assert.Equal(t, 1, r, "off-diagonal cross block is 1×2")
	assert.Equal(t, 2, c)
	assert.Equal(t, 2.0, off.At(0, 0))
	assert.Equal(t, 1.0, off.At(0, 1))

	last, err := m.Block(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, last.At(0, 0))
}

// TestSymmetric_MatchesDense verifies the materialized block matrix equals
// the dense builder's result for block sizes that do and don't divide n.
func TestSymmetric_MatchesDense(t *testing.T) {
	data := seq(23)
	eval := func(a, b float64) float64 { return math.Exp(-(a - b) * (a - b) / 50) }

	want, err := gram.Symmetric(data, eval)
	require.NoError(t, err)

	for _, size := range []int{1, 4, 5, 23, 100} {
		m, err := blockmat.Symmetric(data, eval, blockmat.WithBlockSize(size))
		require.NoError(t, err, "size=%d", size)
		assert.True(t, mat.EqualApprox(want, m.Dense(), 0), "block size %d must reproduce the dense matrix exactly", size)
	}
}

// TestSymmetric_CallCount verifies block-level deduplication: evaluator
// calls cover the lower-triangular block pairs only. For n=4, size=2 that
// is 3 (diag) + 4 (off-diag) + 3 (diag) = 10 = n(n+1)/2.
func TestSymmetric_CallCount(t *testing.T) {
	calls := 0
	eval := func(a, b float64) float64 {
		calls++
		return absDiff(a, b)
	}

	_, err := blockmat.Symmetric(seq(4), eval, blockmat.WithBlockSize(2))
	require.NoError(t, err)
	assert.Equal(t, 10, calls, "lower-triangular block pairs with intra-block dedup")
}

// TestSymmetric_ParallelMatchesSequential verifies worker count does not
// change the assembled result.
func TestSymmetric_ParallelMatchesSequential(t *testing.T) {
	data := seq(37)
	var calls atomic.Int64
	eval := func(a, b float64) float64 {
		calls.Add(1)
		return a * b
	}

	seqM, err := blockmat.Symmetric(data, eval, blockmat.WithBlockSize(5))
	require.NoError(t, err)
	seqCalls := calls.Load()

	calls.Store(0)
	parM, err := blockmat.Symmetric(data, eval, blockmat.WithBlockSize(5), blockmat.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seqCalls, calls.Load(), "parallel build must do the same work")
	assert.True(t, mat.EqualApprox(seqM.Dense(), parM.Dense(), 0), "parallel build must assemble the same matrix")
}

// TestSymmetric_Cancelled verifies a done context stops the build.
func TestSymmetric_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := blockmat.Symmetric(seq(10), absDiff,
		blockmat.WithBlockSize(2), blockmat.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled, "cancelled context must abort the build")

	_, err = blockmat.Symmetric(seq(10), absDiff,
		blockmat.WithBlockSize(2), blockmat.WithWorkers(3), blockmat.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled, "cancellation also applies to the parallel path")
}

// TestSymmetric_Errors verifies configuration and input sentinels.
func TestSymmetric_Errors(t *testing.T) {
	_, err := blockmat.Symmetric(seq(3), absDiff, blockmat.WithBlockSize(0))
	assert.ErrorIs(t, err, blockmat.ErrBlockSize)

	_, err = blockmat.Symmetric(seq(3), absDiff, blockmat.WithWorkers(-1))
	assert.ErrorIs(t, err, blockmat.ErrWorkerCount)

	_, err = blockmat.Symmetric(seq(3), absDiff,
		blockmat.WithRowBlockSize(2), blockmat.WithColBlockSize(3))
	assert.ErrorIs(t, err, blockmat.ErrSquareBlocks, "symmetric build needs one grid on both axes")

	_, err = blockmat.Symmetric(nil, absDiff)
	assert.ErrorIs(t, err, gram.ErrEmptyData)

	_, err = blockmat.Symmetric[float64](seq(3), nil)
	assert.ErrorIs(t, err, gram.ErrNilEvaluator)
}
