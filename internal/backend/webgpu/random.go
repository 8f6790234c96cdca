//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/ember-ml/ember/internal/random"
	"github.com/ember-ml/ember/internal/tensor"
)

// valuesPerBlock is the number of output elements one philox block covers.
const valuesPerBlock = 4

// RandomUniform fills a new tensor with samples from U[low, high).
// float64 has no GPU path and falls back to the CPU kernels.
func (b *Backend) RandomUniform(shape tensor.Shape, dtype tensor.DataType, low, high float64, seed int64) *tensor.RawTensor {
	if dtype != tensor.Float32 {
		return b.fallback.RandomUniform(shape, dtype, low, high, seed)
	}

	params := b.newParams(shape.NumElements(), seed)
	binary.LittleEndian.PutUint32(params[20:24], math.Float32bits(float32(low)))
	binary.LittleEndian.PutUint32(params[24:28], math.Float32bits(float32(high)))

	raw, err := b.runRandomOp("random_uniform", uniformShader, shape, dtype, params)
	if err != nil {
		panic(fmt.Sprintf("webgpu: uniform: %v", err))
	}
	return raw
}

// RandomNormal fills a new tensor with samples from N(mean, std²).
func (b *Backend) RandomNormal(shape tensor.Shape, dtype tensor.DataType, mean, std float64, seed int64) *tensor.RawTensor {
	if dtype != tensor.Float32 {
		return b.fallback.RandomNormal(shape, dtype, mean, std, seed)
	}

	params := b.newParams(shape.NumElements(), seed)
	binary.LittleEndian.PutUint32(params[20:24], math.Float32bits(float32(mean)))
	binary.LittleEndian.PutUint32(params[24:28], math.Float32bits(float32(std)))

	raw, err := b.runRandomOp("random_normal", normalShader, shape, dtype, params)
	if err != nil {
		panic(fmt.Sprintf("webgpu: gaussian: %v", err))
	}
	return raw
}

// RandomInt fills a new tensor with integers from [low, high).
// Only int32 ranges that fit a 32-bit span run on GPU.
func (b *Backend) RandomInt(shape tensor.Shape, dtype tensor.DataType, low, high int64, seed int64) *tensor.RawTensor {
	span := high - low
	if dtype != tensor.Int32 || span > math.MaxUint32 {
		return b.fallback.RandomInt(shape, dtype, low, high, seed)
	}

	params := b.newParams(shape.NumElements(), seed)
	binary.LittleEndian.PutUint32(params[20:24], uint32(low))
	binary.LittleEndian.PutUint32(params[24:28], uint32(span))

	raw, err := b.runRandomOp("random_int", randintShader, shape, dtype, params)
	if err != nil {
		panic(fmt.Sprintf("webgpu: randint: %v", err))
	}
	return raw
}

// RandomPerm returns a random permutation of [0, n).
// Fisher-Yates is sequential, so it always runs on CPU.
func (b *Backend) RandomPerm(n int, dtype tensor.DataType, seed int64) *tensor.RawTensor {
	return b.fallback.RandomPerm(n, dtype, seed)
}

// Fill returns a tensor with every element set to value.
func (b *Backend) Fill(shape tensor.Shape, dtype tensor.DataType, value float64) *tensor.RawTensor {
	return b.fallback.Fill(shape, dtype, value)
}

// Cast converts a tensor to a different numeric data type.
func (b *Backend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	return b.fallback.Cast(x, dtype)
}

// newParams builds the common prefix of the shader uniform: output size,
// philox key and counter base. The remaining 8 bytes are op-specific.
// A fresh generator keyed by the op seed reserves the counter range so
// repeated dispatches with the same seed produce the same tensor.
func (b *Backend) newParams(numElements int, seed int64) []byte {
	gen := random.NewPhilox(seed)
	key := gen.Key()
	counter := gen.Counter()
	gen.Skip(uint64((numElements + valuesPerBlock - 1) / valuesPerBlock))

	params := make([]byte, 32) // 16-byte aligned
	binary.LittleEndian.PutUint32(params[0:4], uint32(numElements))
	binary.LittleEndian.PutUint32(params[4:8], key[0])
	binary.LittleEndian.PutUint32(params[8:12], key[1])
	binary.LittleEndian.PutUint32(params[12:16], uint32(counter))
	binary.LittleEndian.PutUint32(params[16:20], uint32(counter>>32))
	return params
}

// runRandomOp executes a generation shader and reads the result back.
func (b *Backend) runRandomOp(shaderName, shaderCode string, shape tensor.Shape, dtype tensor.DataType, params []byte) (*tensor.RawTensor, error) {
	numElements := shape.NumElements()

	shader := b.compileShader(shaderName, shaderCode)
	pipeline := b.getOrCreatePipeline(shaderName, shader)

	// Result buffer, padded to 4-byte alignment for buffer copies.
	resultSize := uint64(numElements * dtype.Size())
	alignedSize := (resultSize + 3) &^ 3
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  alignedSize,
	})
	defer bufferResult.Release()

	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferResult, 0, alignedSize),
		wgpu.BufferBindingEntry(1, bufferParams, 0, uint64(len(params))),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	// One thread per philox block of four values.
	blocks := (numElements + valuesPerBlock - 1) / valuesPerBlock
	workgroups := uint32((blocks + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(bufferResult, alignedSize)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(shape, dtype, tensor.WebGPU)
	if err != nil {
		return nil, err
	}
	copy(result.Data(), resultData[:resultSize])
	return result, nil
}
