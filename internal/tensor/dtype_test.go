package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 8, Int64.Size())
	assert.Equal(t, 1, Uint8.Size())
	assert.Equal(t, 1, Bool.Size())
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "int64", Int64.String())
	assert.Equal(t, "unspecified", Unspecified.String())
}

func TestDataTypePredicates(t *testing.T) {
	assert.True(t, Float32.IsFloat())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Int64.IsFloat())

	assert.True(t, Int32.IsInt())
	assert.True(t, Int64.IsInt())
	assert.False(t, Float32.IsInt())
	assert.False(t, Uint8.IsInt())
}

func TestParseDataType(t *testing.T) {
	for name, want := range map[string]DataType{
		"float32": Float32,
		"float64": Float64,
		"int32":   Int32,
		"int64":   Int64,
		"uint8":   Uint8,
		"bool":    Bool,
		"":        Unspecified,
	} {
		got, err := ParseDataType(name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, want, got, "name %q", name)
	}

	_, err := ParseDataType("complex64")
	assert.ErrorIs(t, err, ErrUnknownDType)
}

func TestResolveDTypeAppliesDefault(t *testing.T) {
	dt, err := resolveDType("rand", Unspecified, Float32, Float32, Float64)
	require.NoError(t, err)
	assert.Equal(t, Float32, dt)

	dt, err = resolveDType("rand", Float64, Float32, Float32, Float64)
	require.NoError(t, err)
	assert.Equal(t, Float64, dt)
}

func TestResolveDTypeRejectsDisallowed(t *testing.T) {
	_, err := resolveDType("randint", Float32, Int64, Int32, Int64)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedDType)

	var argErr *ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "randint", argErr.Op)
	assert.Equal(t, "dtype", argErr.Arg)
}

func TestInferDataType(t *testing.T) {
	assert.Equal(t, Float32, inferDataType(float32(0)))
	assert.Equal(t, Float64, inferDataType(float64(0)))
	assert.Equal(t, Int32, inferDataType(int32(0)))
	assert.Equal(t, Int64, inferDataType(int64(0)))
	assert.Equal(t, Uint8, inferDataType(uint8(0)))
	assert.Equal(t, Bool, inferDataType(false))
}
