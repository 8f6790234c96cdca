// Package cpu implements the CPU backend with pure Go random kernels.
package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// CPUBackend implements the tensor.Backend random kernels on CPU.
type CPUBackend struct {
	device tensor.Device
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// newRaw allocates the result tensor or panics; the shim layer validates
// shapes before dispatching, so a failure here is a programmer error.
func (cpu *CPUBackend) newRaw(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return raw
}

// Fill returns a tensor with every element set to value.
func (cpu *CPUBackend) Fill(shape tensor.Shape, dtype tensor.DataType, value float64) *tensor.RawTensor {
	raw := cpu.newRaw("fill", shape, dtype)
	switch dtype {
	case tensor.Float32:
		fillValue(raw.AsFloat32(), float32(value))
	case tensor.Float64:
		fillValue(raw.AsFloat64(), value)
	case tensor.Int32:
		fillValue(raw.AsInt32(), int32(value))
	case tensor.Int64:
		fillValue(raw.AsInt64(), int64(value))
	case tensor.Uint8:
		fillValue(raw.AsUint8(), uint8(value))
	default:
		panic(fmt.Sprintf("fill: unsupported dtype %s", dtype))
	}
	return raw
}

// Cast converts a tensor to a different numeric data type.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}
	out := cpu.newRaw("cast", x.Shape(), dtype)
	switch x.DType() {
	case tensor.Float32:
		castInto(out, x.AsFloat32())
	case tensor.Float64:
		castInto(out, x.AsFloat64())
	case tensor.Int32:
		castInto(out, x.AsInt32())
	case tensor.Int64:
		castInto(out, x.AsInt64())
	case tensor.Uint8:
		castInto(out, x.AsUint8())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
	return out
}

func fillValue[T tensor.DType](data []T, value T) {
	for i := range data {
		data[i] = value
	}
}

// castInto converts src element-wise into out's dtype.
func castInto[T tensor.Numeric | ~uint8](out *tensor.RawTensor, src []T) {
	switch out.DType() {
	case tensor.Float32:
		dst := out.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		dst := out.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v)
		}
	case tensor.Int32:
		dst := out.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case tensor.Int64:
		dst := out.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case tensor.Uint8:
		dst := out.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", out.DType()))
	}
}
