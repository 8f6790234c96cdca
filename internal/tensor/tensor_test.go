package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	require.NoError(t, err)

	assert.True(t, Shape{2, 3}.Equal(x.Shape()))
	assert.Equal(t, Float32, x.DType())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, x.Data())
}

func TestFromSliceLengthMismatch(t *testing.T) {
	backend := NewMockBackend()

	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}, backend)
	assert.Error(t, err)
}

func TestAtAndSet(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	require.NoError(t, err)

	assert.Equal(t, int64(1), x.At(0, 0))
	assert.Equal(t, int64(6), x.At(1, 2))

	x.Set(42, 1, 0)
	assert.Equal(t, int64(42), x.At(1, 0))

	assert.Panics(t, func() { x.At(0) })
	assert.Panics(t, func() { x.At(2, 0) })
}

func TestItem(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{3.5}, Shape{}, backend)
	require.NoError(t, err)
	assert.Equal(t, 3.5, x.Item())

	y, err := FromSlice([]float64{1, 2}, Shape{2}, backend)
	require.NoError(t, err)
	assert.Panics(t, func() { y.Item() })
}

func TestCloneSharesBuffer(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float32{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)
	assert.True(t, x.Raw().IsUnique())

	y := x.Clone()
	assert.False(t, x.Raw().IsUnique())
	assert.False(t, y.Raw().IsUnique())

	y.Raw().Release()
	assert.True(t, x.Raw().IsUnique())
}

func TestRawTensorTypedViewPanicsOnWrongDType(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)

	assert.NotPanics(t, func() { raw.AsFloat32() })
	assert.Panics(t, func() { raw.AsInt64() })
}

func TestCopyFrom(t *testing.T) {
	src, err := NewRaw(Shape{3}, Float32, CPU)
	require.NoError(t, err)
	copy(src.AsFloat32(), []float32{1, 2, 3})

	dst, err := NewRaw(Shape{3}, Float32, CPU)
	require.NoError(t, err)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []float32{1, 2, 3}, dst.AsFloat32())

	wrongShape, err := NewRaw(Shape{4}, Float32, CPU)
	require.NoError(t, err)
	assert.Error(t, wrongShape.CopyFrom(src))

	wrongDType, err := NewRaw(Shape{3}, Float64, CPU)
	require.NoError(t, err)
	assert.Error(t, wrongDType.CopyFrom(src))
}
