package goamx

// scalarMatmul computes c[0:m,0:n] += a[0:m,0:k] * b[0:k,0:n] with a
// plain triple-nested loop. It is the fallback used whenever the AMX
// engine reports itself unavailable, and the reference the AMX path
// is checked against in tests (spec §4.8, §8 "scalar-consistency").
// c is assumed already zeroed; the loop order is i-k-j so the inner
// loop walks b and c contiguously.
func scalarMatmul(a []float32, aStride int, b []float32, bStride int, c []float32, cStride, m, n, k int) {
	for i := 0; i < m; i++ {
		aRow := i * aStride
		cRow := i * cStride
		for kk := 0; kk < k; kk++ {
			aVal := a[aRow+kk]
			if aVal == 0 {
				continue
			}
			bRow := kk * bStride
			for j := 0; j < n; j++ {
				c[cRow+j] += aVal * b[bRow+j]
			}
		}
	}
}
