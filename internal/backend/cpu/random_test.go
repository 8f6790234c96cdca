package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/tensor"
)

func TestRandomUniformRange(t *testing.T) {
	backend := New()

	raw := backend.RandomUniform(tensor.Shape{1000}, tensor.Float32, 0, 1, 42)
	require.Equal(t, tensor.Float32, raw.DType())

	for i, v := range raw.AsFloat32() {
		assert.GreaterOrEqual(t, v, float32(0), "element %d", i)
		assert.Less(t, v, float32(1), "element %d", i)
	}
}

func TestRandomUniformCustomRange(t *testing.T) {
	backend := New()

	raw := backend.RandomUniform(tensor.Shape{1000}, tensor.Float64, -3, 2, 7)
	for _, v := range raw.AsFloat64() {
		assert.GreaterOrEqual(t, v, -3.0)
		assert.Less(t, v, 2.0)
	}
}

func TestRandomUniformMean(t *testing.T) {
	backend := New()

	raw := backend.RandomUniform(tensor.Shape{100, 100}, tensor.Float32, 0, 1, 1)
	sum := 0.0
	for _, v := range raw.AsFloat32() {
		sum += float64(v)
	}
	mean := sum / float64(raw.NumElements())
	assert.InDelta(t, 0.5, mean, 0.02)
}

func TestRandomUniformDeterministicForSeed(t *testing.T) {
	backend := New()

	a := backend.RandomUniform(tensor.Shape{100}, tensor.Float32, 0, 1, 42)
	b := backend.RandomUniform(tensor.Shape{100}, tensor.Float32, 0, 1, 42)
	c := backend.RandomUniform(tensor.Shape{100}, tensor.Float32, 0, 1, 43)

	assert.Equal(t, a.AsFloat32(), b.AsFloat32())
	assert.NotEqual(t, a.AsFloat32(), c.AsFloat32())
}

func TestRandomNormalStatistics(t *testing.T) {
	backend := New()

	for _, dtype := range []tensor.DataType{tensor.Float32, tensor.Float64} {
		raw := backend.RandomNormal(tensor.Shape{100, 100}, dtype, 2, 3, 5)

		var sum, sumSq float64
		n := float64(raw.NumElements())
		read := func(v float64) {
			sum += v
			sumSq += v * v
		}
		if dtype == tensor.Float32 {
			for _, v := range raw.AsFloat32() {
				read(float64(v))
			}
		} else {
			for _, v := range raw.AsFloat64() {
				read(v)
			}
		}

		mean := sum / n
		std := math.Sqrt(sumSq/n - mean*mean)
		assert.InDelta(t, 2.0, mean, 0.15, "dtype %s", dtype)
		assert.InDelta(t, 3.0, std, 0.15, "dtype %s", dtype)
	}
}

func TestRandomNormalOddLength(t *testing.T) {
	backend := New()

	// Box-Muller produces pairs; odd lengths exercise the tail element.
	raw := backend.RandomNormal(tensor.Shape{7}, tensor.Float32, 0, 1, 11)
	assert.Equal(t, 7, raw.NumElements())
}

func TestRandomIntBounds(t *testing.T) {
	backend := New()

	raw := backend.RandomInt(tensor.Shape{1000}, tensor.Int64, -5, 5, 42)
	seen := make(map[int64]bool)
	for _, v := range raw.AsInt64() {
		assert.GreaterOrEqual(t, v, int64(-5))
		assert.Less(t, v, int64(5))
		seen[v] = true
	}
	// With 1000 draws over 10 values, every value should appear.
	assert.Len(t, seen, 10)
}

func TestRandomIntInt32(t *testing.T) {
	backend := New()

	raw := backend.RandomInt(tensor.Shape{100}, tensor.Int32, 0, 3, 9)
	require.Equal(t, tensor.Int32, raw.DType())
	for _, v := range raw.AsInt32() {
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(3))
	}
}

func TestRandomPermIsPermutation(t *testing.T) {
	backend := New()

	raw := backend.RandomPerm(100, tensor.Int64, 42)
	require.True(t, tensor.Shape{100}.Equal(raw.Shape()))

	seen := make([]bool, 100)
	for _, v := range raw.AsInt64() {
		require.GreaterOrEqual(t, v, int64(0))
		require.Less(t, v, int64(100))
		require.False(t, seen[v], "value %d repeated", v)
		seen[v] = true
	}
}

func TestRandomPermDTypes(t *testing.T) {
	backend := New()

	for _, dtype := range []tensor.DataType{tensor.Int32, tensor.Int64, tensor.Float32, tensor.Float64} {
		raw := backend.RandomPerm(5, dtype, 3)
		assert.Equal(t, dtype, raw.DType())

		var sum float64
		switch dtype {
		case tensor.Int32:
			for _, v := range raw.AsInt32() {
				sum += float64(v)
			}
		case tensor.Int64:
			for _, v := range raw.AsInt64() {
				sum += float64(v)
			}
		case tensor.Float32:
			for _, v := range raw.AsFloat32() {
				sum += float64(v)
			}
		case tensor.Float64:
			for _, v := range raw.AsFloat64() {
				sum += v
			}
		}
		assert.Equal(t, float64(0+1+2+3+4), sum, "dtype %s", dtype)
	}
}

func TestRandomPermSingleElement(t *testing.T) {
	backend := New()

	raw := backend.RandomPerm(1, tensor.Int64, 0)
	assert.Equal(t, int64(0), raw.AsInt64()[0])
}

func TestFill(t *testing.T) {
	backend := New()

	raw := backend.Fill(tensor.Shape{2, 3}, tensor.Float32, 1.5)
	for _, v := range raw.AsFloat32() {
		assert.Equal(t, float32(1.5), v)
	}

	raw = backend.Fill(tensor.Shape{4}, tensor.Int64, 7)
	for _, v := range raw.AsInt64() {
		assert.Equal(t, int64(7), v)
	}
}

func TestCast(t *testing.T) {
	backend := New()

	src := backend.Fill(tensor.Shape{3}, tensor.Int64, 3)
	out := backend.Cast(src, tensor.Float32)
	require.Equal(t, tensor.Float32, out.DType())
	assert.Equal(t, []float32{3, 3, 3}, out.AsFloat32())
}

func TestCastSameDTypeSharesBuffer(t *testing.T) {
	backend := New()

	src := backend.Fill(tensor.Shape{3}, tensor.Float32, 1)
	out := backend.Cast(src, tensor.Float32)
	assert.False(t, src.IsUnique())
	assert.Equal(t, src.AsFloat32(), out.AsFloat32())
}
