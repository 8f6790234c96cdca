// Package tensor provides the core tensor types and operations for the Ember ML framework.
package tensor

import "fmt"

// DType is a constraint for supported tensor data types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// Float is the constraint for floating-point tensor data types.
type Float interface {
	~float32 | ~float64
}

// Integer is the constraint for signed integer tensor data types.
type Integer interface {
	~int32 | ~int64
}

// Numeric is the constraint for numeric (non-bool, non-uint8) data types.
// This is the set accepted by RandPerm.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Unspecified selects the per-operation default data type.
// Random creation operations resolve it before dispatching:
// floating-point ops default to Float32, integer ops to Int64.
const Unspecified DataType = -1

// DefaultFloat is the framework-wide default floating-point type.
func DefaultFloat() DataType { return Float32 }

// DefaultInt is the framework-wide default integer type.
func DefaultInt() DataType { return Int64 }

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Unspecified:
		return "unspecified"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is floating-point.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsInt reports whether the data type is a signed integer type.
func (dt DataType) IsInt() bool {
	return dt == Int32 || dt == Int64
}

// ParseDataType converts a dtype name ("float32", "int64", ...) to a DataType.
// An empty string resolves to Unspecified so callers can apply their own default.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "":
		return Unspecified, nil
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	case "uint8":
		return Uint8, nil
	case "bool":
		return Bool, nil
	default:
		return Unspecified, fmt.Errorf("%w: %q", ErrUnknownDType, name)
	}
}

// resolveDType applies the default when dtype is Unspecified and checks the
// result against the set of types the operation supports.
func resolveDType(op string, dtype, dflt DataType, allowed ...DataType) (DataType, error) {
	if dtype == Unspecified {
		dtype = dflt
	}
	for _, a := range allowed {
		if dtype == a {
			return dtype, nil
		}
	}
	return Unspecified, &ArgError{Op: op, Arg: "dtype", Value: dtype, Err: ErrUnsupportedDType}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
