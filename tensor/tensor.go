// Package tensor provides the public API for the Arc array library.
//
// The package defines core interfaces and types for type-safe tensor
// operations:
//   - Tensor[T, B]: High-level generic tensor with type safety
//   - RawTensor: Low-level tensor representation for advanced use cases
//   - Backend: Interface for device-specific compute implementations
//   - Shape, DataType, Device: Core type definitions
package tensor

import (
	"github.com/arc-ml/arc/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int8, int16, int32, int64, uint8, bool,
// complex64, complex128.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Bool       DataType = tensor.Bool
	Uint8      DataType = tensor.Uint8
	Int8       DataType = tensor.Int8
	Int16      DataType = tensor.Int16
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Float16    DataType = tensor.Float16
	BFloat16   DataType = tensor.BFloat16
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Scalar is a dtype-erased scalar value used for mixed-type operations like
// clamp bounds and where branches.
type Scalar = tensor.Scalar

// BoolScalar wraps a bool in a Scalar.
func BoolScalar(v bool) Scalar { return tensor.BoolScalar(v) }

// IntScalar wraps an integer in a Scalar.
func IntScalar(v int64) Scalar { return tensor.IntScalar(v) }

// FloatScalar wraps a float in a Scalar.
func FloatScalar(v float64) Scalar { return tensor.FloatScalar(v) }

// ComplexScalar wraps a complex value in a Scalar.
func ComplexScalar(v complex128) Scalar { return tensor.ComplexScalar(v) }

// ScalarOf wraps any supported Go value in a Scalar.
func ScalarOf(v any) Scalar { return tensor.ScalarOf(v) }

// Sentinel errors returned by the operation layer. Use errors.Is to test.
var (
	ErrInvalidArgument   = tensor.ErrInvalidArgument
	ErrUnsupportedType   = tensor.ErrUnsupportedType
	ErrDtypeMismatch     = tensor.ErrDtypeMismatch
	ErrDeviceMismatch    = tensor.ErrDeviceMismatch
	ErrUnsafeCast        = tensor.ErrUnsafeCast
	ErrIndexOutOfRange   = tensor.ErrIndexOutOfRange
	ErrEmptyReductionDim = tensor.ErrEmptyReductionDim
	ErrNotYetImplemented = tensor.ErrNotYetImplemented
)

// Backend is defined in backend.go.

// Tensor is a generic type-safe tensor.
//
// T is the element type (see DType). B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	mask := x.Eq(x)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
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

// Randn creates a tensor filled with random values from the standard normal
// distribution N(0, 1). Only float32 and float64 are supported.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// Rand creates a tensor filled with random values from the uniform
// distribution U(0, 1). Only float32 and float64 are supported.
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, end, b)
}

// Eye creates a 2D identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use high-level creation
// functions instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy
// broadcasting rules. Returns the resulting shape and a flag indicating
// whether either operand needs broadcasting.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// PromoteTypes returns the dtype two operands of the given dtypes promote to.
func PromoteTypes(a, b DataType) DataType {
	return tensor.PromoteTypes(a, b)
}

// DataTypeOf returns the DataType corresponding to the Go element type T.
func DataTypeOf[T DType]() DataType {
	return tensor.DataTypeOf[T]()
}
