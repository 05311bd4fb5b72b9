package goamx

import (
	"errors"

	"github.com/mdaiter/goamx/internal/amx"
)

// Matmul computes A*B, dispatching to the AMX tile scheduler when the
// coprocessor is available and the shape is large enough to tile,
// falling back to a scalar reference implementation otherwise (spec
// §4.8). The core engine only ever sees raw slices, strides, and
// shape — never a *Matrix — per the collaborator boundary in spec §9.
func Matmul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, ErrShapeMismatch
	}

	c, err := NewZeros(a.rows, b.cols)
	if err != nil {
		return nil, err
	}

	err = amx.Matmul(a.data, a.stride, b.data, b.stride, c.data, c.stride, a.rows, b.cols, a.cols)
	if err != nil {
		if !errors.Is(err, amx.ErrUnavailable) {
			return nil, err
		}
		scalarMatmul(a.data, a.stride, b.data, b.stride, c.data, c.stride, a.rows, b.cols, a.cols)
	}
	return c, nil
}
