package goamx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZerosStrideAndPadding(t *testing.T) {
	m, err := NewZeros(4, 17)
	require.NoError(t, err)
	assert.Equal(t, 32, m.Stride(), "stride must round 17 up to the next multiple of 16")
	for r := 0; r < m.Rows(); r++ {
		row := m.data[r*m.stride : (r+1)*m.stride]
		for c := m.Cols(); c < m.Stride(); c++ {
			assert.Equalf(t, float32(0), row[c], "padding column %d of row %d must be zero", c, r)
		}
	}
}

func TestNewFillLeavesPaddingZero(t *testing.T) {
	m, err := NewFill(3, 5, 7)
	require.NoError(t, err)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			assert.Equal(t, float32(7), m.At(r, c))
		}
		for c := m.Cols(); c < m.Stride(); c++ {
			assert.Equal(t, float32(0), m.data[r*m.stride+c])
		}
	}
}

func TestNewIdentity(t *testing.T) {
	m, err := NewIdentity(5)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			assert.Equal(t, want, m.At(r, c))
		}
	}
}

func TestNewFromDataCopiesRowByRow(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	m, err := NewFromData(2, 3, src)
	require.NoError(t, err)
	assert.Equal(t, float32(1), m.At(0, 0))
	assert.Equal(t, float32(6), m.At(1, 2))

	src[0] = 999
	assert.Equal(t, float32(1), m.At(0, 0), "NewFromData must copy, not alias, src")
}

func TestNewFromDataRejectsWrongLength(t *testing.T) {
	_, err := NewFromData(2, 3, []float32{1, 2, 3})
	assert.Error(t, err)
}

func TestNewFromOwnedValidatesStride(t *testing.T) {
	_, err := NewFromOwned(2, 5, 17, make([]float32, 34))
	assert.Error(t, err, "stride must be a multiple of 16")

	m, err := NewFromOwned(2, 5, 16, make([]float32, 32))
	require.NoError(t, err)
	assert.Equal(t, 16, m.Stride())
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := NewFill(4, 4, 1)
	require.NoError(t, err)
	clone := m.Clone()
	clone.Set(0, 0, 99)
	assert.Equal(t, float32(1), m.At(0, 0))
	assert.Equal(t, float32(99), clone.At(0, 0))
}

func TestTransposeRoundTrip(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	m, err := NewFromData(2, 3, src)
	require.NoError(t, err)

	tr, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())

	back, err := tr.Transpose()
	require.NoError(t, err)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			assert.Equal(t, m.At(r, c), back.At(r, c))
		}
	}
}

func TestAddSubShapeMismatch(t *testing.T) {
	a, _ := NewZeros(2, 2)
	b, _ := NewZeros(3, 3)
	_, err := a.Add(b)
	assert.True(t, IsShapeError(err))
	_, err = a.Sub(b)
	assert.True(t, IsShapeError(err))
}

func TestAddSubScaleNegate(t *testing.T) {
	a, _ := NewFill(2, 2, 3)
	b, _ := NewFill(2, 2, 1)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, float32(4), sum.At(0, 0))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, float32(2), diff.At(0, 0))

	scaled := a.Scale(2)
	assert.Equal(t, float32(6), scaled.At(1, 1))

	neg := a.Negate()
	assert.Equal(t, float32(-3), neg.At(1, 1))
}

func TestAtSetOutOfBoundsPanics(t *testing.T) {
	m, _ := NewZeros(2, 2)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
}

func TestStringShowsBoundedBlock(t *testing.T) {
	m, err := NewZeros(20, 20)
	require.NoError(t, err)
	s := m.String()
	assert.Contains(t, s, "Matrix(20x20")
	assert.Contains(t, s, "...")
}
