//go:build windows

package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/tensor"
)

// newTestBackend creates a backend or skips the test when no GPU is available.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Skipf("WebGPU not available: %v", err)
	}
	t.Cleanup(backend.Release)
	return backend
}

func TestNewBackend(t *testing.T) {
	backend := newTestBackend(t)
	assert.Equal(t, "WebGPU", backend.Name())
	assert.Equal(t, tensor.WebGPU, backend.Device())
}

func TestRandomUniformGPU(t *testing.T) {
	backend := newTestBackend(t)

	raw := backend.RandomUniform(tensor.Shape{1000}, tensor.Float32, 0, 1, 42)
	require.Equal(t, tensor.WebGPU, raw.Device())

	for i, v := range raw.AsFloat32() {
		assert.GreaterOrEqual(t, v, float32(0), "element %d", i)
		assert.Less(t, v, float32(1), "element %d", i)
	}
}

func TestRandomUniformGPUDeterministicForSeed(t *testing.T) {
	backend := newTestBackend(t)

	a := backend.RandomUniform(tensor.Shape{257}, tensor.Float32, 0, 1, 7)
	b := backend.RandomUniform(tensor.Shape{257}, tensor.Float32, 0, 1, 7)
	assert.Equal(t, a.AsFloat32(), b.AsFloat32())
}

func TestRandomNormalGPU(t *testing.T) {
	backend := newTestBackend(t)

	raw := backend.RandomNormal(tensor.Shape{100, 100}, tensor.Float32, 0, 1, 5)

	var sum float64
	for _, v := range raw.AsFloat32() {
		sum += float64(v)
	}
	assert.InDelta(t, 0, sum/float64(raw.NumElements()), 0.05)
}

func TestRandomIntGPU(t *testing.T) {
	backend := newTestBackend(t)

	raw := backend.RandomInt(tensor.Shape{1000}, tensor.Int32, -5, 5, 3)
	for _, v := range raw.AsInt32() {
		assert.GreaterOrEqual(t, v, int32(-5))
		assert.Less(t, v, int32(5))
	}
}

func TestFallbackKernels(t *testing.T) {
	backend := newTestBackend(t)

	// float64 has no GPU path.
	u := backend.RandomUniform(tensor.Shape{10}, tensor.Float64, 0, 1, 1)
	assert.Equal(t, tensor.Float64, u.DType())

	// Fisher-Yates always runs on CPU.
	p := backend.RandomPerm(10, tensor.Int64, 2)
	seen := make([]bool, 10)
	for _, v := range p.AsInt64() {
		require.False(t, seen[v])
		seen[v] = true
	}

	f := backend.Fill(tensor.Shape{3}, tensor.Float32, 2.5)
	for _, v := range f.AsFloat32() {
		assert.Equal(t, float32(2.5), v)
	}
}
