package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ResolveShape normalizes the shape argument of a random creation operation.
//
// Accepted representations:
//   - Shape or []int: used as-is
//   - []int64: converted element-wise
//   - []any: each element an int, an int64, or a 1-element int32/int64
//     RawTensor (a dynamic dimension handle)
//   - *RawTensor: a 1-D int32/int64 tensor holding the full shape
//
// Anything else is an ErrInvalidShape.
func ResolveShape(spec any) (Shape, error) {
	switch v := spec.(type) {
	case Shape:
		return v.Clone(), nil
	case []int:
		return Shape(v).Clone(), nil
	case []int64:
		out := make(Shape, len(v))
		for i, d := range v {
			out[i] = int(d)
		}
		return out, nil
	case []any:
		out := make(Shape, len(v))
		for i, e := range v {
			dim, err := resolveDim(e)
			if err != nil {
				return nil, fmt.Errorf("shape element %d: %w", i, err)
			}
			out[i] = dim
		}
		return out, nil
	case *RawTensor:
		return shapeFromTensor(v)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidShape, spec)
	}
}

// resolveDim extracts a single dimension from an int or a 1-element integer tensor.
func resolveDim(e any) (int, error) {
	switch d := e.(type) {
	case int:
		return d, nil
	case int64:
		return int(d), nil
	case int32:
		return int(d), nil
	case *RawTensor:
		if d.NumElements() != 1 {
			return 0, fmt.Errorf("%w: dimension tensor must have exactly 1 element, got %d", ErrInvalidShape, d.NumElements())
		}
		switch d.DType() {
		case Int32:
			return int(d.AsInt32()[0]), nil
		case Int64:
			return int(d.AsInt64()[0]), nil
		default:
			return 0, fmt.Errorf("%w: dimension tensor must be int32 or int64, got %s", ErrInvalidShape, d.DType())
		}
	default:
		return 0, fmt.Errorf("%w: got element of type %T", ErrInvalidShape, e)
	}
}

// shapeFromTensor reads a full shape out of a 1-D integer tensor.
func shapeFromTensor(t *RawTensor) (Shape, error) {
	if len(t.Shape()) != 1 {
		return nil, fmt.Errorf("%w: shape tensor must be 1-D, got %d-D", ErrInvalidShape, len(t.Shape()))
	}
	switch t.DType() {
	case Int32:
		src := t.AsInt32()
		out := make(Shape, len(src))
		for i, d := range src {
			out[i] = int(d)
		}
		return out, nil
	case Int64:
		src := t.AsInt64()
		out := make(Shape, len(src))
		for i, d := range src {
			out[i] = int(d)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: shape tensor must be int32 or int64, got %s", ErrInvalidShape, t.DType())
	}
}
