// Package tensor provides the core tensor types and operations for the Arc array library.
package tensor

import (
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// DType is a constraint for element types usable with the generic Tensor facade.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~bool |
		~complex64 | ~complex128
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
//
// Float16 follows github.com/x448/float16 (IEEE binary16) and BFloat16 the
// truncated-float32 format from github.com/gomlx/gopjrt/dtypes/bfloat16.
const (
	Invalid DataType = iota
	Bool
	Uint8
	Int8
	Int16
	Int32
	Int64
	Float16
	BFloat16
	Float32
	Float64
	Complex64
	Complex128
)

// DefaultFloat is the dtype integers and bools are widened to when an
// operation needs a floating-point intermediate (e.g. the isclose error term).
const DefaultFloat = Float32

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8, Int8:
		return 1
	case Int16, Float16, BFloat16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "invalid"
	}
}

// IsFloatingPoint reports whether the dtype is a real floating-point type.
// Complex types are not floating point by this definition.
func (dt DataType) IsFloatingPoint() bool {
	switch dt {
	case Float16, BFloat16, Float32, Float64:
		return true
	default:
		return false
	}
}

// IsComplex reports whether the dtype is complex.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsIntegral reports whether the dtype is an integer type.
// Bool counts as integral when includeBool is true.
func (dt DataType) IsIntegral(includeBool bool) bool {
	switch dt {
	case Uint8, Int8, Int16, Int32, Int64:
		return true
	case Bool:
		return includeBool
	default:
		return false
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}

// DataTypeOf returns the DataType corresponding to the Go element type T.
func DataTypeOf[T DType]() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Float16FromFloat32 converts a float32 to the packed float16 representation.
func Float16FromFloat32(v float32) float16.Float16 {
	return float16.Fromfloat32(v)
}

// BFloat16FromFloat32 converts a float32 to the packed bfloat16 representation.
func BFloat16FromFloat32(v float32) bfloat16.BFloat16 {
	return bfloat16.FromFloat32(v)
}
