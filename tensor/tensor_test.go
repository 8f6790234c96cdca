// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/backend/cpu"
	"github.com/ember-ml/ember/graph"
	"github.com/ember-ml/ember/tensor"
)

func TestRandOnCPU(t *testing.T) {
	backend := cpu.New()

	x := tensor.Rand[float32](tensor.Shape{4, 5}, backend)
	assert.True(t, tensor.Shape{4, 5}.Equal(x.Shape()))
	assert.Equal(t, tensor.Float32, x.DType())
	assert.Equal(t, tensor.CPU, x.Device())

	for _, v := range x.Data() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestRandnOnCPU(t *testing.T) {
	backend := cpu.New()

	x := tensor.Randn[float64](tensor.Shape{1000}, backend)
	var sum float64
	for _, v := range x.Data() {
		sum += v
	}
	assert.InDelta(t, 0, sum/1000, 0.2)
}

func TestRandIntOnCPU(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.RandInt[int64](10, 20, tensor.Shape{100}, backend)
	require.NoError(t, err)
	for _, v := range x.Data() {
		assert.GreaterOrEqual(t, v, int64(10))
		assert.Less(t, v, int64(20))
	}

	_, err = tensor.RandInt[int64](20, 10, tensor.Shape{100}, backend)
	assert.ErrorIs(t, err, tensor.ErrEmptyRange)
}

func TestRandPermOnCPU(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.RandPerm[int32](10, backend)
	require.NoError(t, err)

	seen := make([]bool, 10)
	for _, v := range x.Data() {
		require.False(t, seen[v])
		seen[v] = true
	}

	_, err = tensor.RandPerm[int32](-1, backend)
	assert.ErrorIs(t, err, tensor.ErrNonPositiveN)
}

func TestUntypedCreationDefaults(t *testing.T) {
	backend := cpu.New()

	u, err := tensor.RandomUniform(backend, []int{3, 4}, tensor.Unspecified, 0, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, tensor.DefaultFloat(), u.DType())

	ri, err := tensor.RandomInt(backend, 0, 5, tensor.Shape{3}, tensor.Unspecified, 42)
	require.NoError(t, err)
	assert.Equal(t, tensor.DefaultInt(), ri.DType())

	p, err := tensor.RandomPermutation(backend, 4, tensor.Unspecified, 42)
	require.NoError(t, err)
	assert.Equal(t, tensor.DefaultInt(), p.DType())
}

func TestDeferredExecutionThroughGraph(t *testing.T) {
	g := graph.New(cpu.New())
	g.StartBuilding()

	out, err := tensor.RandomUniform(g, tensor.Shape{10}, tensor.Float32, 0.5, 1, 42)
	require.NoError(t, err)

	for _, v := range out.AsFloat32() {
		assert.Equal(t, float32(0), v)
	}

	require.NoError(t, g.Run())
	for _, v := range out.AsFloat32() {
		assert.GreaterOrEqual(t, v, float32(0.5))
		assert.Less(t, v, float32(1))
	}
}

func TestParseDataTypeDrivenCreation(t *testing.T) {
	backend := cpu.New()

	dt, err := tensor.ParseDataType("float64")
	require.NoError(t, err)

	u, err := tensor.RandomUniform(backend, tensor.Shape{5}, dt, -1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, u.DType())
}
