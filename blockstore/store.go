package blockstore

import (
	"encoding/binary"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramkit/blockmat"
)

const (
	magic   = uint32('G') | uint32('K')<<8 | uint32('B')<<16 | uint32('S')<<24
	version = uint32(1)

	headSize  = 56 // magic + version + 6 uint64 layout fields
	entrySize = 40 // row, col, blockRows, blockCols, byte offset
)

type entry struct {
	row, col int64
	rows     int
	cols     int
	offset   int
}

// Write lays m out into a newly created (or truncated) file at path. The
// stored block set is exactly m.Blocks(): for a symmetric matrix that is
// the lower-triangular grid only.
func Write(path string, m *blockmat.Matrix) (err error) {
	blocks := m.Blocks()

	payload := 0
	for _, b := range blocks {
		r, c := b.Data.Dims()
		payload += r * c * 8
	}
	size := headSize + len(blocks)*entrySize + payload

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = f.Truncate(int64(size)); err != nil {
		return err
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := data.Unmap(); err == nil {
			err = uerr
		}
	}()

	l := m.Layout()
	binary.LittleEndian.PutUint32(data[0:], magic)
	binary.LittleEndian.PutUint32(data[4:], version)
	binary.LittleEndian.PutUint64(data[8:], uint64(l.Rows))
	binary.LittleEndian.PutUint64(data[16:], uint64(l.Cols))
	binary.LittleEndian.PutUint64(data[24:], uint64(l.RowSize))
	binary.LittleEndian.PutUint64(data[32:], uint64(l.ColSize))
	var sym uint64
	if l.Symmetric {
		sym = 1
	}
	binary.LittleEndian.PutUint64(data[40:], sym)
	binary.LittleEndian.PutUint64(data[48:], uint64(len(blocks)))

	off := headSize + len(blocks)*entrySize
	for i, b := range blocks {
		r, c := b.Data.Dims()
		idx := headSize + i*entrySize
		binary.LittleEndian.PutUint64(data[idx:], uint64(b.Row))
		binary.LittleEndian.PutUint64(data[idx+8:], uint64(b.Col))
		binary.LittleEndian.PutUint64(data[idx+16:], uint64(r))
		binary.LittleEndian.PutUint64(data[idx+24:], uint64(c))
		binary.LittleEndian.PutUint64(data[idx+32:], uint64(off))

		for ri := 0; ri < r; ri++ {
			for ci := 0; ci < c; ci++ {
				binary.LittleEndian.PutUint64(data[off:], math.Float64bits(b.Data.At(ri, ci)))
				off += 8
			}
		}
	}

	return data.Flush()
}

// Store is a read-only view over a block matrix file. Blocks are copied
// out of the mapping on demand; the file stays mapped until Close.
type Store struct {
	f      *os.File
	data   mmap.MMap
	layout blockmat.Layout
	index  map[[2]int64]entry
}

// Open maps the file at path read-only and validates its header and index.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	s := &Store{f: f, data: data}
	if err := s.validate(); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) validate() error {
	if len(s.data) < headSize {
		return ErrFormat
	}
	if binary.LittleEndian.Uint32(s.data[0:]) != magic ||
		binary.LittleEndian.Uint32(s.data[4:]) != version {
		return ErrFormat
	}

	s.layout = blockmat.Layout{
		Rows:      int64(binary.LittleEndian.Uint64(s.data[8:])),
		Cols:      int64(binary.LittleEndian.Uint64(s.data[16:])),
		RowSize:   int(binary.LittleEndian.Uint64(s.data[24:])),
		ColSize:   int(binary.LittleEndian.Uint64(s.data[32:])),
		Symmetric: binary.LittleEndian.Uint64(s.data[40:]) == 1,
	}
	if s.layout.Rows <= 0 || s.layout.Cols <= 0 || s.layout.RowSize <= 0 || s.layout.ColSize <= 0 {
		return ErrFormat
	}

	// Bound the count by what the file can hold before multiplying; the
	// raw 64-bit field would wrap the arithmetic otherwise.
	count := int(binary.LittleEndian.Uint64(s.data[48:]))
	if count < 0 || count > (len(s.data)-headSize)/entrySize {
		return ErrFormat
	}

	s.index = make(map[[2]int64]entry, count)
	for i := 0; i < count; i++ {
		idx := headSize + i*entrySize
		e := entry{
			row:    int64(binary.LittleEndian.Uint64(s.data[idx:])),
			col:    int64(binary.LittleEndian.Uint64(s.data[idx+8:])),
			rows:   int(binary.LittleEndian.Uint64(s.data[idx+16:])),
			cols:   int(binary.LittleEndian.Uint64(s.data[idx+24:])),
			offset: int(binary.LittleEndian.Uint64(s.data[idx+32:])),
		}
		if e.rows <= 0 || e.cols <= 0 || e.offset < 0 || e.offset > len(s.data) {
			return ErrFormat
		}
		// Division instead of rows*cols*8: file-supplied dims must not be
		// able to wrap the payload bound.
		if avail := (len(s.data) - e.offset) / 8; e.rows > avail/e.cols {
			return ErrFormat
		}
		key := [2]int64{e.row, e.col}
		if _, dup := s.index[key]; dup {
			return ErrFormat
		}
		s.index[key] = e
	}

	return nil
}

// Layout returns the stored matrix layout.
func (s *Store) Layout() blockmat.Layout { return s.layout }

// RowBlocks returns the number of block rows.
func (s *Store) RowBlocks() int64 {
	return (s.layout.Rows + int64(s.layout.RowSize) - 1) / int64(s.layout.RowSize)
}

// ColBlocks returns the number of block columns.
func (s *Store) ColBlocks() int64 {
	return (s.layout.Cols + int64(s.layout.ColSize) - 1) / int64(s.layout.ColSize)
}

// Block reads the dense block at grid coordinate (row, col) out of the
// mapping. For a symmetric matrix a missing upper block is reconstructed
// as the transpose of its stored mirror. Returns blockmat.ErrBlockIndex
// outside the grid and blockmat.ErrMissingBlock when the file lacks the
// entry.
func (s *Store) Block(row, col int64) (*mat.Dense, error) {
	if row < 0 || row >= s.RowBlocks() || col < 0 || col >= s.ColBlocks() {
		return nil, blockmat.ErrBlockIndex
	}

	transpose := false
	if s.layout.Symmetric && row < col {
		row, col = col, row
		transpose = true
	}

	e, ok := s.index[[2]int64{row, col}]
	if !ok {
		return nil, blockmat.ErrMissingBlock
	}

	d := s.read(e)
	if transpose {
		t := mat.NewDense(e.cols, e.rows, nil)
		t.Copy(d.T())
		return t, nil
	}
	return d, nil
}

// Matrix reassembles the full in-memory block matrix from the file.
func (s *Store) Matrix() (*blockmat.Matrix, error) {
	blocks := make([]blockmat.Block, 0, len(s.index))
	for _, e := range s.index {
		blocks = append(blocks, blockmat.Block{Row: e.row, Col: e.col, Data: s.read(e)})
	}
	return blockmat.New(s.layout, blocks)
}

// Close unmaps and closes the underlying file.
func (s *Store) Close() error {
	uerr := s.data.Unmap()
	cerr := s.f.Close()
	if uerr != nil {
		return uerr
	}
	return cerr
}

func (s *Store) read(e entry) *mat.Dense {
	vals := make([]float64, e.rows*e.cols)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(s.data[e.offset+i*8:]))
	}
	return mat.NewDense(e.rows, e.cols, vals)
}
