package goamx

import "sync/atomic"

// sharedBuffer is the reference-counted storage behind a SharedMatrix.
// Cloning a SharedMatrix bumps refs and shares the slice; the first
// write after a clone snapshots into a private copy before mutating,
// the same copy-on-write shape as the teacher's pooled-allocation
// refcounting, adapted from a free-list of raw allocations to a
// single shared buffer (spec §5.3, a supplemented feature beyond the
// distilled spec's Non-goals).
type sharedBuffer struct {
	rows, cols, stride int
	data               []float32
	refs               atomic.Int32
}

// SharedMatrix is a copy-on-write handle onto a Matrix's buffer.
// Clone is O(1); the first Set after a Clone pays for a private copy.
// The zero value is not usable; construct with NewSharedMatrix.
type SharedMatrix struct {
	buf *sharedBuffer
}

// NewSharedMatrix wraps m's buffer for copy-on-write sharing. m must
// not be mutated directly afterwards; go through the returned handle
// instead, or reads may observe a torn write from a concurrent clone.
func NewSharedMatrix(m *Matrix) *SharedMatrix {
	buf := &sharedBuffer{rows: m.rows, cols: m.cols, stride: m.stride, data: m.data}
	buf.refs.Store(1)
	return &SharedMatrix{buf: buf}
}

// Clone returns a new handle sharing the same underlying buffer at no
// copy cost. The two handles diverge lazily, the first time either
// one calls Set.
func (s *SharedMatrix) Clone() *SharedMatrix {
	s.buf.refs.Add(1)
	return &SharedMatrix{buf: s.buf}
}

// Rows returns the logical row count.
func (s *SharedMatrix) Rows() int { return s.buf.rows }

// Cols returns the logical column count.
func (s *SharedMatrix) Cols() int { return s.buf.cols }

// Stride returns the physical row pitch in elements.
func (s *SharedMatrix) Stride() int { return s.buf.stride }

// At returns the element at (r, c); reads never trigger a copy.
func (s *SharedMatrix) At(r, c int) float32 {
	if r < 0 || r >= s.buf.rows || c < 0 || c >= s.buf.cols {
		panic("goamx: SharedMatrix index out of bounds")
	}
	return s.buf.data[r*s.buf.stride+c]
}

// Set writes the element at (r, c), copying the buffer first if any
// other handle still shares it.
func (s *SharedMatrix) Set(r, c int, v float32) {
	if r < 0 || r >= s.buf.rows || c < 0 || c >= s.buf.cols {
		panic("goamx: SharedMatrix index out of bounds")
	}
	s.detach()
	s.buf.data[r*s.buf.stride+c] = v
}

// detach gives s a private buffer if it is currently shared with any
// other handle, releasing its reference to the old one.
func (s *SharedMatrix) detach() {
	if s.buf.refs.Load() == 1 {
		return
	}
	private := alignAlloc64(len(s.buf.data))
	copy(private, s.buf.data)
	s.buf.refs.Add(-1)
	newBuf := &sharedBuffer{rows: s.buf.rows, cols: s.buf.cols, stride: s.buf.stride, data: private}
	newBuf.refs.Store(1)
	s.buf = newBuf
}

// Snapshot returns a *Matrix view of the current buffer without
// copying. The result must be treated as read-only if other
// SharedMatrix handles are still alive: writing through it bypasses
// copy-on-write and corrupts the sibling handles' view.
func (s *SharedMatrix) Snapshot() *Matrix {
	return &Matrix{rows: s.buf.rows, cols: s.buf.cols, stride: s.buf.stride, data: s.buf.data}
}

// Release decrements the reference count. It is not required for
// correctness — Go's garbage collector reclaims the buffer once every
// handle is gone — but mirrors the explicit release call the pack's
// pooled allocators expose, letting callers assert an expected share
// count in tests.
func (s *SharedMatrix) Release() {
	s.buf.refs.Add(-1)
}

// ShareCount reports the current number of live handles on the
// underlying buffer.
func (s *SharedMatrix) ShareCount() int32 {
	return s.buf.refs.Load()
}
