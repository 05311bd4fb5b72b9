//go:build darwin && arm64

package amx

import (
	"runtime"
	"unsafe"
)

// KUnroll is the K-loop unroll factor: one pass through the unrolled
// body consumes all 8 X and all 8 Y registers.
const KUnroll = 8

// zRowStride is the Z-register spacing between the 16 accumulator
// rows FMA32 writes in f32 matrix mode (spec §4.6, §9
// "Z-row striding"): the instruction implicitly strides Z by 4, so
// the logical output rows live at Z rows 0, 4, 8, ..., 60.
const zRowStride = 4

var zeroRow = allocAligned64(PanelRows)

func addrOf(s []float32, idx int) uintptr {
	return uintptr(unsafe.Pointer(&s[idx]))
}

// addrOfUnchecked computes the address of element idx the way C
// pointer arithmetic would: base pointer plus a byte offset, with no
// bounds check. idx may legally reach or exceed len(s) (a past-the-end
// address, as amx.c's PREFETCH_R forms for its look-ahead) since the result is
// never dereferenced in Go, only handed to prefetchR.
func addrOfUnchecked(s []float32, idx int) uintptr {
	return uintptr(unsafe.Pointer(&s[0])) + uintptr(idx)*unsafe.Sizeof(s[0])
}

func zeroZ() {
	for i := 0; i < PanelRows; i++ {
		Ldz(EncodeZ(addrOf(zeroRow, 0), i*zRowStride, false))
	}
}

func storeZ(c []float32, cOff, cStride int) {
	for i := 0; i < PanelRows; i++ {
		Stz(EncodeZ(addrOf(c, cOff+i*cStride), i*zRowStride, false))
	}
}

// Kernel16x16 computes a 16x16 output tile for all K in one call,
// starting from zero. panel is a packed A-panel (K columns of 16
// floats, column-major stride 16, see PackPanel); b is the full B
// matrix buffer with bOff pointing at the tile's upper-left element
// and bStride its row stride; c is the full C buffer with cOff
// pointing at the tile's upper-left element and cStride its row
// stride. The caller must have an open Scope; Kernel16x16 issues
// neither SET nor CLR.
func Kernel16x16(panel []float32, b []float32, bOff, bStride int, c []float32, cOff, cStride, k int) {
	zeroZ()

	kk := 0
	for ; kk+KUnroll <= k; kk += KUnroll {
		aBase := kk * PanelRows
		bBase := bOff + kk*bStride

		prefetchR(addrOfUnchecked(panel, aBase+KUnroll*PanelRows))
		prefetchR(addrOfUnchecked(b, bBase+KUnroll*bStride))

		Ldy(EncodeXY(addrOf(panel, aBase+0*PanelRows), 0, false))
		Ldy(EncodeXY(addrOf(panel, aBase+1*PanelRows), 1, false))
		Ldy(EncodeXY(addrOf(panel, aBase+2*PanelRows), 2, false))
		Ldy(EncodeXY(addrOf(panel, aBase+3*PanelRows), 3, false))
		Ldy(EncodeXY(addrOf(panel, aBase+4*PanelRows), 4, false))
		Ldy(EncodeXY(addrOf(panel, aBase+5*PanelRows), 5, false))
		Ldy(EncodeXY(addrOf(panel, aBase+6*PanelRows), 6, false))
		Ldy(EncodeXY(addrOf(panel, aBase+7*PanelRows), 7, false))

		Ldx(EncodeXY(addrOf(b, bBase+0*bStride), 0, false))
		Ldx(EncodeXY(addrOf(b, bBase+1*bStride), 1, false))
		Fma32(EncodeFMA(0*64, 0*64, 0, false))

		Ldx(EncodeXY(addrOf(b, bBase+2*bStride), 2, false))
		Fma32(EncodeFMA(1*64, 1*64, 0, false))

		Ldx(EncodeXY(addrOf(b, bBase+3*bStride), 3, false))
		Fma32(EncodeFMA(2*64, 2*64, 0, false))

		Ldx(EncodeXY(addrOf(b, bBase+4*bStride), 4, false))
		Fma32(EncodeFMA(3*64, 3*64, 0, false))

		Ldx(EncodeXY(addrOf(b, bBase+5*bStride), 5, false))
		Fma32(EncodeFMA(4*64, 4*64, 0, false))

		Ldx(EncodeXY(addrOf(b, bBase+6*bStride), 6, false))
		Fma32(EncodeFMA(5*64, 5*64, 0, false))

		Ldx(EncodeXY(addrOf(b, bBase+7*bStride), 7, false))
		Fma32(EncodeFMA(6*64, 6*64, 0, false))
		Fma32(EncodeFMA(7*64, 7*64, 0, false))
	}

	for ; kk < k; kk++ {
		Ldy(EncodeXY(addrOf(panel, kk*PanelRows), 0, false))
		Ldx(EncodeXY(addrOf(b, bOff+kk*bStride), 0, false))
		Fma32(EncodeFMA(0, 0, 0, false))
	}

	storeZ(c, cOff, cStride)

	runtime.KeepAlive(panel)
	runtime.KeepAlive(b)
	runtime.KeepAlive(c)
}
