//go:build darwin && arm64

package amx

import "golang.org/x/sync/errgroup"

// SingleThreadRowCutoff is the row count at or below which one inline
// worker beats dispatching across performance cores: packing and
// thread-launch overhead dominates until there is enough row-tile
// work to amortise it (spec §9 "panel packing cost").
const SingleThreadRowCutoff = 64

// Matmul computes C[0:m,0:n] = A[0:m,0:k] * B[0:k,0:n] using the AMX
// tile scheduler. a, b, c are row-major buffers with the given
// strides (in elements). The caller is responsible for zeroing c
// before calling — a fresh Matrix from the root package is already
// zero (spec §4.4), so the scheduler does not re-zero it itself.
//
// Matmul returns ErrUnavailable if the shape is too small for tiling
// or AMX is not present; callers must fall back to a scalar
// implementation in that case.
func Matmul(a []float32, aStride int, b []float32, bStride int, c []float32, cStride int, m, n, k int) error {
	if m < PanelRows || n < PanelRows || !Available() {
		return ErrUnavailable
	}

	mTiles := (m + PanelRows - 1) / PanelRows
	threads := mTiles
	if pc := PerformanceCores(); threads > pc {
		threads = pc
	}
	if threads < 1 {
		threads = 1
	}

	if m <= SingleThreadRowCutoff || threads == 1 {
		return runWorker(a, aStride, b, bStride, c, cStride, n, k, 0, m)
	}

	tilesPerThread := (mTiles + threads - 1) / threads
	rowsPerThread := tilesPerThread * PanelRows

	var g errgroup.Group
	for t := 0; t < threads; t++ {
		iStart := t * rowsPerThread
		if iStart >= m {
			break
		}
		iEnd := iStart + rowsPerThread
		if iEnd > m {
			iEnd = m
		}
		g.Go(func() error {
			return runWorker(a, aStride, b, bStride, c, cStride, n, k, iStart, iEnd)
		})
	}
	return g.Wait()
}

// runWorker owns one contiguous row-tile range: it opens its own
// enable scope, packs each row tile's A panel once, and drives the
// micro-kernel (or the edge-tile scalar fallback) across every column
// tile of N. Workers never communicate and never yield mid-range
// (spec §5).
func runWorker(a []float32, aStride int, b []float32, bStride int, c []float32, cStride, n, k, iStart, iEnd int) error {
	scope, err := Open(nil)
	if err != nil {
		return err
	}
	defer scope.Close()

	panel := allocAligned64(k * PanelRows)

	for i := iStart; i < iEnd; i += PanelRows {
		rowEnd := i + PanelRows
		if rowEnd > iEnd {
			rowEnd = iEnd
		}
		PackPanel(a, i, rowEnd, k, aStride, panel)

		for j := 0; j < n; j += PanelRows {
			colEnd := j + PanelRows
			if colEnd > n {
				colEnd = n
			}

			if rowEnd-i == PanelRows && colEnd-j == PanelRows {
				Kernel16x16(panel, b, j, bStride, c, i*cStride+j, cStride, k)
				continue
			}
			edgeTile(panel, b, bStride, c, cStride, i, j, rowEnd-i, colEnd-j, k)
		}
	}
	return nil
}

// edgeTile handles a partial row-tile or column-tile with the scalar
// fallback described in spec §4.7: it accumulates into C with +=,
// which is only correct because C was zeroed before any worker ran.
func edgeTile(panel []float32, b []float32, bStride int, c []float32, cStride, i, j, mi, nj, k int) {
	for ii := 0; ii < mi; ii++ {
		for kk := 0; kk < k; kk++ {
			aVal := panel[kk*PanelRows+ii]
			bRow := kk*bStride + j
			cRow := (i+ii)*cStride + j
			for jj := 0; jj < nj; jj++ {
				c[cRow+jj] += aVal * b[bRow+jj]
			}
		}
	}
}
