//go:build !(darwin && arm64)

package amx

// Matmul always reports the engine unavailable outside darwin/arm64;
// every caller must fall back to a scalar implementation.
func Matmul(a []float32, aStride int, b []float32, bStride int, c []float32, cStride int, m, n, k int) error {
	return ErrUnavailable
}
