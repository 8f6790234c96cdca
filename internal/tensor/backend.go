package tensor

// Backend defines the interface that all compute backends must implement.
// Backends own the actual random-number kernels; the creation functions in
// this package only validate and normalize arguments before dispatching here.
//
// Implementations:
//   - backend/cpu: Pure Go kernels
//   - backend/webgpu: GPU compute via WebGPU (philox shaders)
//   - graph: deferred-execution decorator wrapping any backend
type Backend interface {
	// RandomUniform fills a new tensor with samples from U[low, high).
	// dtype must be float32 or float64. seed 0 means a nondeterministic stream.
	RandomUniform(shape Shape, dtype DataType, low, high float64, seed int64) *RawTensor

	// RandomNormal fills a new tensor with samples from N(mean, std²).
	// dtype must be float32 or float64.
	RandomNormal(shape Shape, dtype DataType, mean, std float64, seed int64) *RawTensor

	// RandomInt fills a new tensor with integers from the discrete uniform
	// distribution on [low, high). dtype must be int32 or int64.
	RandomInt(shape Shape, dtype DataType, low, high int64, seed int64) *RawTensor

	// RandomPerm returns a 1-D tensor holding a random permutation of [0, n).
	// dtype may be int32, int64, float32 or float64.
	RandomPerm(n int, dtype DataType, seed int64) *RawTensor

	// Fill returns a new tensor with every element set to value
	// (converted to dtype).
	Fill(shape Shape, dtype DataType, value float64) *RawTensor

	// Cast converts a tensor to a different numeric data type.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
