package amx

import "unsafe"

const alignment = 64

// allocAligned64 returns a float32 slice of length n backed by a
// 64-byte-aligned allocation, by over-allocating a byte buffer and
// slicing from the first aligned offset. Go's allocator does not
// guarantee alignment beyond a machine word for arbitrary sizes, so
// every buffer this package allocates for a raw LDY/LDZ opcode goes
// through this helper — the A-panel scratch and the micro-kernel's
// static zero buffer alike. The B and C buffers come from the caller.
func allocAligned64(n int) []float32 {
	raw := make([]byte, n*4+alignment)
	base := uintptr(unsafe.Pointer(&raw[0]))
	offset := (alignment - int(base%alignment)) % alignment
	aligned := raw[offset : offset+n*4]
	return unsafe.Slice((*float32)(unsafe.Pointer(&aligned[0])), n)
}
