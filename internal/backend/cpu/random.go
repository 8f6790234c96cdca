package cpu

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/ember-ml/ember/internal/random"
	"github.com/ember-ml/ember/internal/tensor"
)

// RandomUniform fills a new tensor with samples from U[low, high).
func (cpu *CPUBackend) RandomUniform(shape tensor.Shape, dtype tensor.DataType, low, high float64, seed int64) *tensor.RawTensor {
	raw := cpu.newRaw("uniform", shape, dtype)
	src := random.NewSource(seed)

	switch dtype {
	case tensor.Float32:
		data := raw.AsFloat32()
		lo, span := float32(low), float32(high-low)
		for i := range data {
			data[i] = lo + src.Float32()*span
		}
	case tensor.Float64:
		data := raw.AsFloat64()
		span := high - low
		for i := range data {
			data[i] = low + src.Float64()*span
		}
	default:
		panic(fmt.Sprintf("uniform: unsupported dtype %s", dtype))
	}
	return raw
}

// RandomNormal fills a new tensor with samples from N(mean, std²).
// float32 uses a Box-Muller transform in single precision; float64 uses the
// source's ziggurat sampler.
func (cpu *CPUBackend) RandomNormal(shape tensor.Shape, dtype tensor.DataType, mean, std float64, seed int64) *tensor.RawTensor {
	raw := cpu.newRaw("gaussian", shape, dtype)
	src := random.NewSource(seed)

	switch dtype {
	case tensor.Float32:
		boxMuller32(raw.AsFloat32(), src, float32(mean), float32(std))
	case tensor.Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = mean + std*src.NormFloat64()
		}
	default:
		panic(fmt.Sprintf("gaussian: unsupported dtype %s", dtype))
	}
	return raw
}

// boxMuller32 fills data with N(mean, std²) samples, two per transform.
func boxMuller32(data []float32, src random.Source, mean, std float32) {
	for i := 0; i < len(data); i += 2 {
		var u1 float32
		for u1 == 0 {
			u1 = src.Float32() // log(0) is -Inf
		}
		u2 := src.Float32()
		r := math32.Sqrt(-2 * math32.Log(u1))
		z0 := r * math32.Cos(2*math32.Pi*u2)
		data[i] = mean + std*z0
		if i+1 < len(data) {
			z1 := r * math32.Sin(2*math32.Pi*u2)
			data[i+1] = mean + std*z1
		}
	}
}

// RandomInt fills a new tensor with integers from [low, high).
func (cpu *CPUBackend) RandomInt(shape tensor.Shape, dtype tensor.DataType, low, high int64, seed int64) *tensor.RawTensor {
	raw := cpu.newRaw("randint", shape, dtype)
	src := random.NewSource(seed)
	span := high - low

	switch dtype {
	case tensor.Int32:
		data := raw.AsInt32()
		for i := range data {
			data[i] = int32(low + src.Int63n(span))
		}
	case tensor.Int64:
		data := raw.AsInt64()
		for i := range data {
			data[i] = low + src.Int63n(span)
		}
	default:
		panic(fmt.Sprintf("randint: unsupported dtype %s", dtype))
	}
	return raw
}

// RandomPerm returns a 1-D tensor holding a random permutation of [0, n).
func (cpu *CPUBackend) RandomPerm(n int, dtype tensor.DataType, seed int64) *tensor.RawTensor {
	src := random.NewSource(seed)
	perm := src.Perm(n)

	raw := cpu.newRaw("randperm", tensor.Shape{n}, dtype)
	switch dtype {
	case tensor.Int32:
		data := raw.AsInt32()
		for i, v := range perm {
			data[i] = int32(v)
		}
	case tensor.Int64:
		data := raw.AsInt64()
		for i, v := range perm {
			data[i] = int64(v)
		}
	case tensor.Float32:
		data := raw.AsFloat32()
		for i, v := range perm {
			data[i] = float32(v)
		}
	case tensor.Float64:
		data := raw.AsFloat64()
		for i, v := range perm {
			data[i] = float64(v)
		}
	default:
		panic(fmt.Sprintf("randperm: unsupported dtype %s", dtype))
	}
	return raw
}
