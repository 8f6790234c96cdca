package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 5, Shape{5}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.NoError(t, Shape{}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1, 3}.Validate())
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0])
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestResolveShapeFromInts(t *testing.T) {
	s, err := ResolveShape(Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, s)

	s, err = ResolveShape([]int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 5}, s)

	s, err = ResolveShape([]int64{6, 7})
	require.NoError(t, err)
	assert.Equal(t, Shape{6, 7}, s)
}

func TestResolveShapeCopies(t *testing.T) {
	in := Shape{2, 3}
	s, err := ResolveShape(in)
	require.NoError(t, err)
	s[0] = 9
	assert.Equal(t, 2, in[0])
}

func TestResolveShapeMixedList(t *testing.T) {
	dim, err := NewRaw(Shape{1}, Int32, CPU)
	require.NoError(t, err)
	dim.AsInt32()[0] = 7

	s, err := ResolveShape([]any{2, int64(3), dim})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 7}, s)
}

func TestResolveShapeFromTensor(t *testing.T) {
	st, err := NewRaw(Shape{3}, Int64, CPU)
	require.NoError(t, err)
	copy(st.AsInt64(), []int64{2, 3, 4})

	s, err := ResolveShape(st)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, s)
}

func TestResolveShapeErrors(t *testing.T) {
	_, err := ResolveShape(42)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = ResolveShape([]any{"two"})
	assert.ErrorIs(t, err, ErrInvalidShape)

	// Dimension tensor with more than one element.
	dim, err := NewRaw(Shape{2}, Int64, CPU)
	require.NoError(t, err)
	_, err = ResolveShape([]any{dim})
	assert.ErrorIs(t, err, ErrInvalidShape)

	// Shape tensor that is not 1-D.
	st, err := NewRaw(Shape{2, 2}, Int64, CPU)
	require.NoError(t, err)
	_, err = ResolveShape(st)
	assert.ErrorIs(t, err, ErrInvalidShape)

	// Shape tensor with a float dtype.
	ft, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)
	_, err = ResolveShape(ft)
	assert.ErrorIs(t, err, ErrInvalidShape)
}
