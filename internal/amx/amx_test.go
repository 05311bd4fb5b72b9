//go:build darwin && arm64

package amx

import (
	"math"
	"testing"
)

func scalarMatmul(a []float32, aStride int, b []float32, bStride int, m, n, k int) []float32 {
	c := make([]float32, m*n)
	for i := 0; i < m; i++ {
		for kk := 0; kk < k; kk++ {
			aik := a[i*aStride+kk]
			for j := 0; j < n; j++ {
				c[i*n+j] += aik * b[kk*bStride+j]
			}
		}
	}
	return c
}

func TestMatmulAgainstScalar(t *testing.T) {
	if !Available() {
		t.Skip("AMX not available on this host")
	}

	sizes := []struct{ m, k, n int }{
		{16, 16, 16},
		{64, 32, 48},
		{17, 17, 17},
		{48, 32, 96},
		{200, 128, 80},
	}

	for _, sz := range sizes {
		a := make([]float32, sz.m*sz.k)
		b := make([]float32, sz.k*sz.n)
		for i := range a {
			a[i] = float32(math.Mod(float64(i), 7)) - 3
		}
		for i := range b {
			b[i] = float32(math.Mod(float64(i), 5)) - 2
		}

		c := make([]float32, sz.m*sz.n)
		if err := Matmul(a, sz.k, b, sz.n, c, sz.n, sz.m, sz.n, sz.k); err != nil {
			t.Fatalf("Matmul(%dx%dx%d): %v", sz.m, sz.k, sz.n, err)
		}

		want := scalarMatmul(a, sz.k, b, sz.n, sz.m, sz.n, sz.k)
		for i := range want {
			if d := math.Abs(float64(c[i] - want[i])); d > 1e-3 {
				t.Fatalf("%dx%dx%d: c[%d] = %v, want %v (diff %v)", sz.m, sz.k, sz.n, i, c[i], want[i], d)
			}
		}
	}
}

func TestScopeNesting(t *testing.T) {
	if !Available() {
		t.Skip("AMX not available on this host")
	}

	outer, err := Open(nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	inner, err := Open(outer)
	if err != nil {
		t.Fatalf("nested Open: %v", err)
	}
	if inner != outer {
		t.Fatalf("nested Open returned a different *Scope")
	}
	inner.Close()
	outer.Close()
}
