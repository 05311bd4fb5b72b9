package goamx

import (
	"fmt"
	"strings"
	"unsafe"
)

// roundUp16 rounds n up to the next multiple of 16.
func roundUp16(n int) int {
	return (n + 15) &^ 15
}

// alignAlloc64 returns a float32 slice of length n backed by a
// 64-byte-aligned allocation (spec §3, §4.4). Kept independent of
// internal/amx's own aligned-allocation helper: the storage contract
// is a public guarantee the root package must uphold on its own, not
// something that should depend on the engine package's internals.
func alignAlloc64(n int) []float32 {
	raw := make([]byte, n*4+StorageAlignment)
	base := uintptr(unsafe.Pointer(&raw[0]))
	offset := (StorageAlignment - int(base%StorageAlignment)) % StorageAlignment
	aligned := raw[offset : offset+n*4]
	return unsafe.Slice((*float32)(unsafe.Pointer(&aligned[0])), n)
}

// Matrix is a rectangular f32 array stored row-major with a row
// stride padded to a multiple of TileSize, 64-byte aligned (spec §3).
// A Matrix exclusively owns its buffer; see SharedMatrix for
// copy-on-write sharing.
type Matrix struct {
	rows, cols, stride int
	data               []float32
}

func newMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidSize
	}
	stride := roundUp16(cols)
	data := alignAlloc64(rows * stride)
	return &Matrix{rows: rows, cols: cols, stride: stride, data: data}, nil
}

// NewZeros allocates a rows x cols Matrix with every element,
// including padding, set to zero.
func NewZeros(rows, cols int) (*Matrix, error) {
	return newMatrix(rows, cols)
}

// NewFill allocates a rows x cols Matrix with every logical element
// set to v; padding columns stay zero.
func NewFill(rows, cols int, v float32) (*Matrix, error) {
	m, err := newMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		row := m.data[r*m.stride : r*m.stride+cols]
		for c := range row {
			row[c] = v
		}
	}
	return m, nil
}

// NewIdentity allocates an n x n identity Matrix.
func NewIdentity(n int) (*Matrix, error) {
	m, err := newMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i] = 1
	}
	return m, nil
}

// NewFromData allocates a rows x cols Matrix and copies src row by
// row, leaving the padding columns zero (spec §4.4). src must have
// length rows*cols.
func NewFromData(rows, cols int, src []float32) (*Matrix, error) {
	if len(src) != rows*cols {
		return nil, NewInvalidArgError("NewFromData", "src length must equal rows*cols")
	}
	m, err := newMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		copy(m.data[r*m.stride:r*m.stride+cols], src[r*cols:r*cols+cols])
	}
	return m, nil
}

// NewFromOwned wraps an already-allocated, already-padded buffer
// without copying ("from owned external data (move)", spec §6). The
// caller must guarantee data satisfies the storage contract: length
// rows*stride, stride the multiple of 16 >= cols, and columns
// [cols, stride) zero for every row. NewFromOwned does not and cannot
// verify 64-byte alignment; callers that need the AMX engine to
// accept the result must have allocated data themselves with that
// alignment.
func NewFromOwned(rows, cols, stride int, data []float32) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidSize
	}
	if stride < cols || stride%TileSize != 0 {
		return nil, NewInvalidArgError("NewFromOwned", "stride must be >= cols and a multiple of 16")
	}
	if len(data) != rows*stride {
		return nil, NewInvalidArgError("NewFromOwned", "data length must equal rows*stride")
	}
	return &Matrix{rows: rows, cols: cols, stride: stride, data: data}, nil
}

// Rows returns the logical row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the logical column count.
func (m *Matrix) Cols() int { return m.cols }

// Stride returns the physical row pitch in elements.
func (m *Matrix) Stride() int { return m.stride }

// Data returns the raw backing slice, rows*stride elements including
// padding. Callers that write through it are responsible for keeping
// the padding-zero invariant.
func (m *Matrix) Data() []float32 { return m.data }

// At returns the element at (r, c). It panics on an out-of-bounds
// index — the safe accessor, per spec §7.4; raw Data() access is
// unchecked.
func (m *Matrix) At(r, c int) float32 {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("goamx: index (%d,%d) out of bounds for %dx%d matrix", r, c, m.rows, m.cols))
	}
	return m.data[r*m.stride+c]
}

// Set writes the element at (r, c). It panics on an out-of-bounds
// index.
func (m *Matrix) Set(r, c int, v float32) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("goamx: index (%d,%d) out of bounds for %dx%d matrix", r, c, m.rows, m.cols))
	}
	m.data[r*m.stride+c] = v
}

// Clone copies the whole buffer, padding included, so the zero
// padding invariant carries over cheaply (spec §4.4).
func (m *Matrix) Clone() *Matrix {
	data := alignAlloc64(len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, stride: m.stride, data: data}
}

// Transpose returns a new Matrix equal to the transpose of m.
func (m *Matrix) Transpose() (*Matrix, error) {
	t, err := newMatrix(m.cols, m.rows)
	if err != nil {
		return nil, err
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			t.data[c*t.stride+r] = m.data[r*m.stride+c]
		}
	}
	return t, nil
}

// sameShape reports whether a and b have equal logical dimensions.
func sameShape(a, b *Matrix) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Add returns a+b element-wise.
func (a *Matrix) Add(b *Matrix) (*Matrix, error) {
	if !sameShape(a, b) {
		return nil, NewShapeError("Add", "operands must have the same shape")
	}
	return a.elementwise(b, func(x, y float32) float32 { return x + y })
}

// Sub returns a-b element-wise.
func (a *Matrix) Sub(b *Matrix) (*Matrix, error) {
	if !sameShape(a, b) {
		return nil, NewShapeError("Sub", "operands must have the same shape")
	}
	return a.elementwise(b, func(x, y float32) float32 { return x - y })
}

func (a *Matrix) elementwise(b *Matrix, op func(x, y float32) float32) (*Matrix, error) {
	out, err := newMatrix(a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < a.rows; r++ {
		ar := a.data[r*a.stride : r*a.stride+a.cols]
		br := b.data[r*b.stride : r*b.stride+b.cols]
		or := out.data[r*out.stride : r*out.stride+out.cols]
		for c := range or {
			or[c] = op(ar[c], br[c])
		}
	}
	return out, nil
}

// Scale returns m scaled by s.
func (m *Matrix) Scale(s float32) *Matrix {
	out, _ := newMatrix(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		mr := m.data[r*m.stride : r*m.stride+m.cols]
		or := out.data[r*out.stride : r*out.stride+out.cols]
		for c := range or {
			or[c] = mr[c] * s
		}
	}
	return out
}

// Negate returns -m.
func (m *Matrix) Negate() *Matrix {
	return m.Scale(-1)
}

// String renders the first 10x10 block for debugging (spec §6).
func (m *Matrix) String() string {
	rows := m.rows
	if rows > 10 {
		rows = 10
	}
	cols := m.cols
	if cols > 10 {
		cols = 10
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d, stride=%d)\n", m.rows, m.cols, m.stride)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&b, "%8.3f ", m.At(r, c))
		}
		if m.cols > cols {
			b.WriteString("...")
		}
		b.WriteByte('\n')
	}
	if m.rows > rows {
		b.WriteString("...\n")
	}
	return b.String()
}
