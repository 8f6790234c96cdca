package tensor

// Random creation operations.
//
// Each function resolves defaults, coerces the data type, validates its
// arguments and hands the work to the backend's random kernels. The sampling
// itself (uniform bits, Box-Muller, Fisher-Yates) lives in the backends.

// RandomUniform creates a tensor of samples from the uniform distribution
// on [low, high). shape accepts any representation understood by ResolveShape.
// An Unspecified dtype defaults to the framework float type (float32).
func RandomUniform(b Backend, shape any, dtype DataType, low, high float64, seed int64) (*RawTensor, error) {
	s, err := ResolveShape(shape)
	if err != nil {
		return nil, &ArgError{Op: "rand", Arg: "shape", Value: shape, Err: err}
	}
	dt, err := resolveDType("rand", dtype, DefaultFloat(), Float32, Float64)
	if err != nil {
		return nil, err
	}
	if low >= high {
		return nil, &ArgError{Op: "rand", Arg: "low", Value: low, Err: ErrEmptyRange}
	}
	if err := s.Validate(); err != nil {
		return nil, &ArgError{Op: "rand", Arg: "shape", Value: s, Err: err}
	}
	return b.RandomUniform(s, dt, low, high, seed), nil
}

// RandomNormal creates a tensor of samples from the normal distribution
// N(mean, std²). An Unspecified dtype defaults to float32.
func RandomNormal(b Backend, shape any, dtype DataType, mean, std float64, seed int64) (*RawTensor, error) {
	s, err := ResolveShape(shape)
	if err != nil {
		return nil, &ArgError{Op: "randn", Arg: "shape", Value: shape, Err: err}
	}
	dt, err := resolveDType("randn", dtype, DefaultFloat(), Float32, Float64)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, &ArgError{Op: "randn", Arg: "shape", Value: s, Err: err}
	}
	return b.RandomNormal(s, dt, mean, std, seed), nil
}

// RandomInt creates a tensor of integers drawn from the discrete uniform
// distribution on [low, high): low is included, high is excluded.
// An Unspecified dtype defaults to int64. low must be less than high.
func RandomInt(b Backend, low, high int64, shape any, dtype DataType, seed int64) (*RawTensor, error) {
	s, err := ResolveShape(shape)
	if err != nil {
		return nil, &ArgError{Op: "randint", Arg: "shape", Value: shape, Err: err}
	}
	dt, err := resolveDType("randint", dtype, DefaultInt(), Int32, Int64)
	if err != nil {
		return nil, err
	}
	if low >= high {
		return nil, &ArgError{Op: "randint", Arg: "low", Value: low, Err: ErrEmptyRange}
	}
	if err := s.Validate(); err != nil {
		return nil, &ArgError{Op: "randint", Arg: "shape", Value: s, Err: err}
	}
	return b.RandomInt(s, dt, low, high, seed), nil
}

// RandomIntUpTo samples from [0, high), the single-bound form of RandomInt.
func RandomIntUpTo(b Backend, high int64, shape any, dtype DataType, seed int64) (*RawTensor, error) {
	return RandomInt(b, 0, high, shape, dtype, seed)
}

// RandomPermutation creates a 1-D tensor holding a random permutation of the
// integers [0, n). n must be at least 1. An Unspecified dtype defaults to
// int64; float dtypes hold the same permutation values cast to float.
func RandomPermutation(b Backend, n int, dtype DataType, seed int64) (*RawTensor, error) {
	dt, err := resolveDType("randperm", dtype, DefaultInt(), Int32, Int64, Float32, Float64)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, &ArgError{Op: "randperm", Arg: "n", Value: n, Err: ErrNonPositiveN}
	}
	return b.RandomPerm(n, dt, seed), nil
}

// Typed wrappers. These mirror the other creation functions: the data type is
// fixed at compile time, so only data-dependent preconditions can fail.

// Rand creates a tensor with values uniformly distributed in [0, 1).
//
// Example:
//
//	t := tensor.Rand[float32](Shape{10, 10}, backend)
func Rand[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := RandomUniform(b, shape, inferDataType(dummy), 0, 1, 0)
	if err != nil {
		panic(err)
	}
	return New[T, B](raw, b)
}

// Randn creates a tensor with samples from the standard normal distribution
// (mean 0, standard deviation 1).
//
// Example:
//
//	t := tensor.Randn[float32](Shape{100, 100}, backend)
func Randn[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := RandomNormal(b, shape, inferDataType(dummy), 0, 1, 0)
	if err != nil {
		panic(err)
	}
	return New[T, B](raw, b)
}

// RandInt creates a tensor with integers from [low, high).
// Returns an error if low >= high.
func RandInt[T Integer, B Backend](low, high int64, shape Shape, b B) (*Tensor[T, B], error) {
	var dummy T
	raw, err := RandomInt(b, low, high, shape, inferDataType(dummy), 0)
	if err != nil {
		return nil, err
	}
	return New[T, B](raw, b), nil
}

// RandIntUpTo creates a tensor with integers from [0, high).
func RandIntUpTo[T Integer, B Backend](high int64, shape Shape, b B) (*Tensor[T, B], error) {
	return RandInt[T, B](0, high, shape, b)
}

// RandPerm creates a 1-D tensor holding a random permutation of [0, n).
// Returns an error if n < 1.
func RandPerm[T Numeric, B Backend](n int, b B) (*Tensor[T, B], error) {
	var dummy T
	raw, err := RandomPermutation(b, n, inferDataType(dummy), 0)
	if err != nil {
		return nil, err
	}
	return New[T, B](raw, b), nil
}
