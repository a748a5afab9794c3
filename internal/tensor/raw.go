package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted shared buffer for Copy-on-Write semantics.
// This enables cheap cloning and inplace optimizations when refCount == 1.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone operations).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// isUnique returns true if this buffer has only one reference (enables inplace ops).
func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level tensor representation.
// It uses reference-counted shared buffers for Copy-on-Write semantics.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride []int         // Memory strides (row-major)
	dtype  DataType      // Runtime type information
	device Device        // Compute device
	offset int           // Offset for slicing/views
	names  []string      // Optional dimension names, len == rank when set
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated but not initialized (contains zeros).
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// MustNewRaw is NewRaw for shapes already known to be valid; it panics on
// allocation failure.
func MustNewRaw(shape Shape, dtype DataType, device Device) *RawTensor {
	r, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(err)
	}
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Resize re-shapes the tensor in place, reallocating the buffer when the new
// shape needs more elements. Existing element values are not preserved.
// Dimension names are dropped.
func (r *RawTensor) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	byteSize := shape.NumElements() * r.dtype.Size()
	if byteSize > len(r.buffer.data)-r.offset {
		r.buffer.release()
		r.buffer = newTensorBuffer(byteSize)
		r.offset = 0
	}
	r.shape = shape.Clone()
	r.stride = shape.ComputeStrides()
	r.names = nil
	return nil
}

// SetNames attaches dimension names to the tensor. Pass nil to clear.
func (r *RawTensor) SetNames(names []string) error {
	if names != nil && len(names) != len(r.shape) {
		return errors.Wrapf(ErrInvalidArgument, "got %d names for rank-%d tensor", len(names), len(r.shape))
	}
	r.names = append([]string(nil), names...)
	return nil
}

// Names returns the dimension names, or nil when the tensor is unnamed.
func (r *RawTensor) Names() []string {
	return r.names
}

// DimForName translates a dimension name to its position.
func (r *RawTensor) DimForName(name string) (int, error) {
	for i, n := range r.names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrIndexOutOfRange, "no dimension named %q in %v", name, r.names)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[r.offset:]
}

// view reinterprets the buffer as a typed slice without copying.
func view[T any](r *RawTensor, dt DataType) []T {
	if r.dtype != dt {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// AsFloat32 interprets the data as []float32. Panics on dtype mismatch.
func (r *RawTensor) AsFloat32() []float32 { return view[float32](r, Float32) }

// AsFloat64 interprets the data as []float64. Panics on dtype mismatch.
func (r *RawTensor) AsFloat64() []float64 { return view[float64](r, Float64) }

// AsInt8 interprets the data as []int8. Panics on dtype mismatch.
func (r *RawTensor) AsInt8() []int8 { return view[int8](r, Int8) }

// AsInt16 interprets the data as []int16. Panics on dtype mismatch.
func (r *RawTensor) AsInt16() []int16 { return view[int16](r, Int16) }

// AsInt32 interprets the data as []int32. Panics on dtype mismatch.
func (r *RawTensor) AsInt32() []int32 { return view[int32](r, Int32) }

// AsInt64 interprets the data as []int64. Panics on dtype mismatch.
func (r *RawTensor) AsInt64() []int64 { return view[int64](r, Int64) }

// AsUint8 interprets the data as []uint8. Panics on dtype mismatch.
func (r *RawTensor) AsUint8() []uint8 { return view[uint8](r, Uint8) }

// AsBool interprets the data as []bool. Panics on dtype mismatch.
func (r *RawTensor) AsBool() []bool { return view[bool](r, Bool) }

// AsFloat16 interprets the data as []float16.Float16. Panics on dtype mismatch.
func (r *RawTensor) AsFloat16() []float16.Float16 { return view[float16.Float16](r, Float16) }

// AsBFloat16 interprets the data as []bfloat16.BFloat16. Panics on dtype mismatch.
func (r *RawTensor) AsBFloat16() []bfloat16.BFloat16 { return view[bfloat16.BFloat16](r, BFloat16) }

// AsComplex64 interprets the data as []complex64. Panics on dtype mismatch.
func (r *RawTensor) AsComplex64() []complex64 { return view[complex64](r, Complex64) }

// AsComplex128 interprets the data as []complex128. Panics on dtype mismatch.
func (r *RawTensor) AsComplex128() []complex128 { return view[complex128](r, Complex128) }

// Slice1D returns a view of a 1-D tensor covering [start, end).
// The view shares storage with the receiver.
func (r *RawTensor) Slice1D(start, end int) (*RawTensor, error) {
	if len(r.shape) != 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "slice: expected rank-1 tensor, got rank %d", len(r.shape))
	}
	if start < 0 || end < start || end > r.shape[0] {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "slice [%d, %d) out of bounds for length %d", start, end, r.shape[0])
	}
	v := r.Clone()
	v.offset += start * r.dtype.Size()
	v.shape = Shape{end - start}
	v.stride = v.shape.ComputeStrides()
	v.names = nil
	return v, nil
}

// Clone creates a shallow copy of the RawTensor (shares buffer with reference counting).
// The buffer is reference-counted and will be copied only when modified (copy-on-write).
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef() // Increment reference count
	return &RawTensor{
		buffer: r.buffer, // Share the same buffer
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...), // Copy strides
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
		names:  append([]string(nil), r.names...),
	}
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
// When true, backends can perform inplace operations for better performance.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

// ForceNonUnique marks the buffer as shared, preventing inplace reuse of the
// storage even while only one RawTensor references it.
func (r *RawTensor) ForceNonUnique() {
	r.buffer.addRef()
}
