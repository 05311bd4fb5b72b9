package goamx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedMatrixCloneSharesUntilWrite(t *testing.T) {
	m, err := NewFill(4, 4, 1)
	require.NoError(t, err)
	s1 := NewSharedMatrix(m)
	s2 := s1.Clone()

	assert.Equal(t, int32(2), s1.ShareCount())
	assert.Equal(t, int32(2), s2.ShareCount())

	s2.Set(0, 0, 42)

	assert.Equal(t, float32(42), s2.At(0, 0))
	assert.Equal(t, float32(1), s1.At(0, 0), "writing through s2 must not mutate s1's view")
	assert.Equal(t, int32(1), s1.ShareCount())
	assert.Equal(t, int32(1), s2.ShareCount())
}

func TestSharedMatrixSnapshotFeedsMatmul(t *testing.T) {
	m, err := NewIdentity(16)
	require.NoError(t, err)
	s := NewSharedMatrix(m)
	other, err := NewFill(16, 16, 3)
	require.NoError(t, err)

	c, err := Matmul(s.Snapshot(), other)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, c.At(0, 0), ScalarConsistencyTolerance)
}

func TestSharedMatrixReleaseDecrements(t *testing.T) {
	m, err := NewZeros(2, 2)
	require.NoError(t, err)
	s1 := NewSharedMatrix(m)
	s2 := s1.Clone()
	s2.Release()
	assert.Equal(t, int32(1), s1.ShareCount())
}
