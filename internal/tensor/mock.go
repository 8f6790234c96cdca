package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// Its kernels are deterministic: a fixed splitmix64 stream seeded from the
// op's seed argument (seed 0 behaves like seed 1), so tests are reproducible.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// splitmix64 advances the state and returns the next value in the stream.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func mockState(seed int64) uint64 {
	if seed == 0 {
		seed = 1
	}
	return uint64(seed)
}

// unitFloat maps a uint64 to [0, 1).
func unitFloat(v uint64) float64 {
	return float64(v>>11) / (1 << 53)
}

func (m *MockBackend) alloc(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		panic(fmt.Sprintf("mock: %v", err))
	}
	return raw
}

// RandomUniform fills a tensor with deterministic values in [low, high).
func (m *MockBackend) RandomUniform(shape Shape, dtype DataType, low, high float64, seed int64) *RawTensor {
	raw := m.alloc(shape, dtype)
	state := mockState(seed)
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = float32(low + unitFloat(splitmix64(&state))*(high-low))
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = low + unitFloat(splitmix64(&state))*(high-low)
		}
	default:
		panic(fmt.Sprintf("mock: RandomUniform: unsupported dtype %s", dtype))
	}
	return raw
}

// RandomNormal fills a tensor with deterministic pseudo-normal values.
// The mock uses a sum of three uniforms (Irwin-Hall) rather than Box-Muller;
// it is close enough to normal for shape/dtype plumbing tests.
func (m *MockBackend) RandomNormal(shape Shape, dtype DataType, mean, std float64, seed int64) *RawTensor {
	raw := m.alloc(shape, dtype)
	state := mockState(seed)
	sample := func() float64 {
		s := unitFloat(splitmix64(&state)) + unitFloat(splitmix64(&state)) + unitFloat(splitmix64(&state))
		return mean + std*(s-1.5)*2
	}
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = float32(sample())
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = sample()
		}
	default:
		panic(fmt.Sprintf("mock: RandomNormal: unsupported dtype %s", dtype))
	}
	return raw
}

// RandomInt fills a tensor with deterministic integers in [low, high).
func (m *MockBackend) RandomInt(shape Shape, dtype DataType, low, high int64, seed int64) *RawTensor {
	raw := m.alloc(shape, dtype)
	state := mockState(seed)
	span := uint64(high - low)
	next := func() int64 {
		return low + int64(splitmix64(&state)%span)
	}
	switch dtype {
	case Int32:
		data := raw.AsInt32()
		for i := range data {
			data[i] = int32(next())
		}
	case Int64:
		data := raw.AsInt64()
		for i := range data {
			data[i] = next()
		}
	default:
		panic(fmt.Sprintf("mock: RandomInt: unsupported dtype %s", dtype))
	}
	return raw
}

// RandomPerm returns a deterministic permutation of [0, n) via Fisher-Yates.
func (m *MockBackend) RandomPerm(n int, dtype DataType, seed int64) *RawTensor {
	state := mockState(seed)
	perm := make([]int64, n)
	for i := range perm {
		perm[i] = int64(i)
	}
	for i := n - 1; i > 0; i-- {
		j := int(splitmix64(&state) % uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}

	raw := m.alloc(Shape{n}, dtype)
	switch dtype {
	case Int32:
		data := raw.AsInt32()
		for i, v := range perm {
			data[i] = int32(v)
		}
	case Int64:
		copy(raw.AsInt64(), perm)
	case Float32:
		data := raw.AsFloat32()
		for i, v := range perm {
			data[i] = float32(v)
		}
	case Float64:
		data := raw.AsFloat64()
		for i, v := range perm {
			data[i] = float64(v)
		}
	default:
		panic(fmt.Sprintf("mock: RandomPerm: unsupported dtype %s", dtype))
	}
	return raw
}

// Fill returns a tensor with every element set to value.
func (m *MockBackend) Fill(shape Shape, dtype DataType, value float64) *RawTensor {
	raw := m.alloc(shape, dtype)
	fillRaw(raw, value)
	return raw
}

// Cast converts a tensor to a different numeric data type.
func (m *MockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	out := m.alloc(x.Shape(), dtype)
	castRaw(out, x)
	return out
}

// fillRaw sets every element of raw to value, converted to raw's dtype.
func fillRaw(raw *RawTensor, value float64) {
	switch raw.DType() {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = float32(value)
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = value
		}
	case Int32:
		data := raw.AsInt32()
		for i := range data {
			data[i] = int32(value)
		}
	case Int64:
		data := raw.AsInt64()
		for i := range data {
			data[i] = int64(value)
		}
	case Uint8:
		data := raw.AsUint8()
		for i := range data {
			data[i] = uint8(value)
		}
	default:
		panic(fmt.Sprintf("fill: unsupported dtype %s", raw.DType()))
	}
}

// castRaw converts src element-wise into dst (numeric dtypes only).
func castRaw(dst, src *RawTensor) {
	get := numericReader(src)
	switch dst.DType() {
	case Float32:
		data := dst.AsFloat32()
		for i := range data {
			data[i] = float32(get(i))
		}
	case Float64:
		data := dst.AsFloat64()
		for i := range data {
			data[i] = get(i)
		}
	case Int32:
		data := dst.AsInt32()
		for i := range data {
			data[i] = int32(get(i))
		}
	case Int64:
		data := dst.AsInt64()
		for i := range data {
			data[i] = int64(get(i))
		}
	case Uint8:
		data := dst.AsUint8()
		for i := range data {
			data[i] = uint8(get(i))
		}
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", dst.DType()))
	}
}

// numericReader returns an element accessor converting to float64.
func numericReader(src *RawTensor) func(int) float64 {
	switch src.DType() {
	case Float32:
		data := src.AsFloat32()
		return func(i int) float64 { return float64(data[i]) }
	case Float64:
		data := src.AsFloat64()
		return func(i int) float64 { return data[i] }
	case Int32:
		data := src.AsInt32()
		return func(i int) float64 { return float64(data[i]) }
	case Int64:
		data := src.AsInt64()
		return func(i int) float64 { return float64(data[i]) }
	case Uint8:
		data := src.AsUint8()
		return func(i int) float64 { return float64(data[i]) }
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", src.DType()))
	}
}
