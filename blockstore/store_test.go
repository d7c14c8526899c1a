package blockstore_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gramkit/blockmat"
	"github.com/katalvlaran/gramkit/blockstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func absDiff(a, b float64) float64 { return math.Abs(a - b) }

func seq(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return data
}

// TestRoundTrip_Symmetric writes a symmetric block matrix and reads it
// back, both blockwise and fully reassembled.
func TestRoundTrip_Symmetric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sym.gkbs")

	orig, err := blockmat.Symmetric(seq(11), absDiff, blockmat.WithBlockSize(4))
	require.NoError(t, err)
	require.NoError(t, blockstore.Write(path, orig))

	s, err := blockstore.Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, orig.Layout(), s.Layout(), "layout survives the round trip")
	assert.Equal(t, orig.RowBlocks(), s.RowBlocks())
	assert.Equal(t, orig.ColBlocks(), s.ColBlocks())

	// Blockwise reads, including a reconstructed upper mirror.
	for _, b := range orig.Blocks() {
		got, err := s.Block(b.Row, b.Col)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(b.Data, got, 0), "stored block (%d,%d)", b.Row, b.Col)
	}
	mirror, err := s.Block(0, 2)
	require.NoError(t, err)
	want, err := orig.Block(0, 2)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(want, mirror, 0), "mirror block is served transposed")

	// Full reassembly.
	back, err := s.Matrix()
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(orig.Dense(), back.Dense(), 0), "reassembled matrix equals the original")
}

// TestRoundTrip_Cross writes a rectangular block matrix and reads it back.
func TestRoundTrip_Cross(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.gkbs")

	orig, err := blockmat.Cross(seq(7), seq(10), absDiff,
		blockmat.WithRowBlockSize(3), blockmat.WithColBlockSize(4))
	require.NoError(t, err)
	require.NoError(t, blockstore.Write(path, orig))

	s, err := blockstore.Open(path)
	require.NoError(t, err)
	defer s.Close()

	back, err := s.Matrix()
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(orig.Dense(), back.Dense(), 0))

	_, err = s.Block(99, 0)
	assert.ErrorIs(t, err, blockmat.ErrBlockIndex, "outside the grid")
}

// TestOpen_Malformed verifies garbage files are rejected with ErrFormat.
func TestOpen_Malformed(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.gkbs")
	require.NoError(t, os.WriteFile(short, []byte("GKBS"), 0o644))
	_, err := blockstore.Open(short)
	assert.ErrorIs(t, err, blockstore.ErrFormat, "truncated header")

	junk := filepath.Join(dir, "junk.gkbs")
	require.NoError(t, os.WriteFile(junk, make([]byte, 128), 0o644))
	_, err = blockstore.Open(junk)
	assert.ErrorIs(t, err, blockstore.ErrFormat, "wrong magic")
}

// TestOpen_OverflowingIndex verifies that file-supplied block counts and
// block dimensions too large for the file are rejected with ErrFormat
// rather than wrapping the bounds arithmetic and reading past the mapping.
func TestOpen_OverflowingIndex(t *testing.T) {
	dir := t.TempDir()

	// 128-byte file with a valid header: 3×3 matrix, 2×2 blocks, room for
	// at most one well-formed index entry.
	header := func(blockCount uint64) []byte {
		buf := make([]byte, 128)
		copy(buf, "GKBS")
		binary.LittleEndian.PutUint32(buf[4:], 1)  // version
		binary.LittleEndian.PutUint64(buf[8:], 3)  // rows
		binary.LittleEndian.PutUint64(buf[16:], 3) // cols
		binary.LittleEndian.PutUint64(buf[24:], 2) // rowSize
		binary.LittleEndian.PutUint64(buf[32:], 2) // colSize
		binary.LittleEndian.PutUint64(buf[48:], blockCount)
		return buf
	}

	count := filepath.Join(dir, "count.gkbs")
	require.NoError(t, os.WriteFile(count, header(1<<60), 0o644))
	_, err := blockstore.Open(count)
	assert.ErrorIs(t, err, blockstore.ErrFormat, "oversized block count must not wrap the index bound")

	// One entry whose rows·cols·8 wraps: the payload bound must hold anyway.
	buf := header(1)
	binary.LittleEndian.PutUint64(buf[56:], 0)     // block row
	binary.LittleEndian.PutUint64(buf[64:], 0)     // block col
	binary.LittleEndian.PutUint64(buf[72:], 1<<40) // block rows
	binary.LittleEndian.PutUint64(buf[80:], 1<<40) // block cols
	binary.LittleEndian.PutUint64(buf[88:], 96)    // payload offset
	dims := filepath.Join(dir, "dims.gkbs")
	require.NoError(t, os.WriteFile(dims, buf, 0o644))
	_, err = blockstore.Open(dims)
	assert.ErrorIs(t, err, blockstore.ErrFormat, "oversized block dims must not wrap the payload bound")
}
