// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor creation in the Ember ML
// framework.
//
// The package defines the core types and the random creation operations:
//   - Tensor[T, B]: High-level generic tensor with type safety
//   - RawTensor: Low-level tensor for advanced use cases
//   - Backend: Interface for device-specific random kernels
//   - Shape, DataType, Device: Core type definitions
//   - Rand, Randn, RandInt, RandPerm: random creation operations
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Rand[float32](tensor.Shape{2, 3}, backend)
//	p, err := tensor.RandPerm[int64](10, backend)
package tensor

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Float is the constraint for floating-point data types (rand, randn).
type Float = tensor.Float

// Integer is the constraint for signed integer data types (randint).
type Integer = tensor.Integer

// Numeric is the constraint for numeric data types (randperm).
type Numeric = tensor.Numeric

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool

	// Unspecified selects the per-operation default data type.
	Unspecified DataType = tensor.Unspecified
)

// ParseDataType converts a dtype name ("float32", "int64", ...) to a DataType.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// DefaultFloat is the framework-wide default floating-point type.
func DefaultFloat() DataType { return tensor.DefaultFloat() }

// DefaultInt is the framework-wide default integer type.
func DefaultInt() DataType { return tensor.DefaultInt() }

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// ResolveShape normalizes a shape argument: a Shape, []int, a slice mixing
// ints and 1-element integer tensors, or a 1-D integer tensor.
func ResolveShape(spec any) (Shape, error) {
	return tensor.ResolveShape(spec)
}

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation (CPU, WebGPU, graph decorator).
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// RawTensor is the low-level tensor representation.
//
// Most users should use the high-level Tensor[T, B] type instead.
type RawTensor = tensor.RawTensor

// ArgError reports an invalid argument to a tensor operation.
type ArgError = tensor.ArgError

// Validation errors returned by the random creation operations.
var (
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrUnknownDType     = tensor.ErrUnknownDType
	ErrUnsupportedDType = tensor.ErrUnsupportedDType
	ErrEmptyRange       = tensor.ErrEmptyRange
	ErrNonPositiveN     = tensor.ErrNonPositiveN
)

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
func Arange[T Numeric, B Backend](start, end T, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, end, b)
}

// Rand creates a tensor filled with random values from the uniform
// distribution on [0, 1).
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Rand[float32](tensor.Shape{2, 3}, backend)
func Rand[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, b)
}

// Randn creates a tensor filled with random values from the standard normal
// distribution N(0, 1).
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Randn[float32](tensor.Shape{2, 3}, backend)
func Randn[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// RandInt creates a tensor filled with integers from the discrete uniform
// distribution on [low, high). Returns an error if low >= high.
//
// Example:
//
//	x, err := tensor.RandInt[int64](-5, 5, tensor.Shape{3}, backend)
func RandInt[T Integer, B Backend](low, high int64, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.RandInt[T, B](low, high, shape, b)
}

// RandIntUpTo creates a tensor filled with integers from [0, high).
func RandIntUpTo[T Integer, B Backend](high int64, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.RandIntUpTo[T, B](high, shape, b)
}

// RandPerm creates a 1-D tensor holding a random permutation of the integers
// [0, n). Returns an error if n < 1.
//
// Example:
//
//	p, err := tensor.RandPerm[int32](7, backend)
func RandPerm[T Numeric, B Backend](n int, b B) (*Tensor[T, B], error) {
	return tensor.RandPerm[T, B](n, b)
}

// Untyped creation functions. These take the data type as a value and accept
// any shape representation, for callers driven by runtime configuration.

// RandomUniform creates a tensor of samples from U[low, high).
// An Unspecified dtype defaults to float32.
func RandomUniform(b Backend, shape any, dtype DataType, low, high float64, seed int64) (*RawTensor, error) {
	return tensor.RandomUniform(b, shape, dtype, low, high, seed)
}

// RandomNormal creates a tensor of samples from N(mean, std²).
// An Unspecified dtype defaults to float32.
func RandomNormal(b Backend, shape any, dtype DataType, mean, std float64, seed int64) (*RawTensor, error) {
	return tensor.RandomNormal(b, shape, dtype, mean, std, seed)
}

// RandomInt creates a tensor of integers from [low, high).
// An Unspecified dtype defaults to int64.
func RandomInt(b Backend, low, high int64, shape any, dtype DataType, seed int64) (*RawTensor, error) {
	return tensor.RandomInt(b, low, high, shape, dtype, seed)
}

// RandomIntUpTo creates a tensor of integers from [0, high).
func RandomIntUpTo(b Backend, high int64, shape any, dtype DataType, seed int64) (*RawTensor, error) {
	return tensor.RandomIntUpTo(b, high, shape, dtype, seed)
}

// RandomPermutation creates a 1-D tensor holding a random permutation of
// [0, n). An Unspecified dtype defaults to int64.
func RandomPermutation(b Backend, n int, dtype DataType, seed int64) (*RawTensor, error) {
	return tensor.RandomPermutation(b, n, dtype, seed)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Rand, Zeros, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}
