// Package tensor provides type-safe n-dimensional arrays and the element-wise
// comparison layer built on top of them.
//
// # Overview
//
// Arc centers on predicates, clamping, set membership, and order statistics
// over dense arrays. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting and PyTorch-style type promotion
//   - Zero-copy data access with reference-counted buffers
//   - Device abstraction with backends injected explicitly
//
// # Basic Usage
//
//	import (
//	    "github.com/arc-ml/arc/backend/cpu"
//	    "github.com/arc-ml/arc/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice([]float32{3, 1, 2, 2}, tensor.Shape{2, 2}, backend)
//
//	    lo := float32(1.5)
//	    clamped, _ := tensor.Clamp(x, &lo, nil)
//	    values, indices, _ := tensor.MaxDim(x, 1, false)
//	    _ = clamped
//	    _, _ = values, indices
//	}
//
// # Supported Data Types
//
// The DType constraint covers the element types a Tensor[T, B] can carry in
// Go: float32, float64, int8, int16, int32, int64, uint8, bool, complex64,
// complex128. RawTensor additionally stores float16 and bfloat16 payloads;
// those are reached through DataType-based creation and casts rather than a
// Go element type.
//
// # Broadcasting and Promotion
//
// Binary operations follow NumPy broadcasting rules, and mixed-dtype
// operations promote operands the way PyTorch does: bool < integer <
// floating < complex, with scalars participating at reduced weight.
//
//	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, backend) // (3, 1)
//	b, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend) // (4)
//	mask := a.Le(b.Expand(tensor.Shape{3, 4}))                                // (3, 4)
//
// # Memory Management
//
// Underlying buffers are reference-counted and shared on Clone; typed Data()
// views are zero-copy.
//
// # Operations
//
// Element-wise predicates return Tensor[bool, B] masks:
//
//	mask, _ := tensor.IsNaN(x)
//	mask, _ := tensor.IsFinite(x)
//	mask, _ := tensor.IsClose(x, y, 1e-5, 1e-8, false)
//
// Clamping bounds values against scalars or tensors:
//
//	y, _ := tensor.Clamp(x, &lo, &hi)
//	y, _ := tensor.ClampTensor(x, loTensor, hiTensor)
//
// Set membership tests each element against a pool of test values:
//
//	mask, _ := tensor.IsIn(elements, pool, false, false)
//
// Order statistics reduce along a dimension to values plus Int64 indices:
//
//	values, indices, _ := tensor.MaxDim(x, 1, false)
//	values, indices, _ := tensor.Mode(x, -1, true)
//	indices, _ := tensor.ArgMax(x, nil, false)
//
// Conditional selection merges two operands under a bool mask:
//
//	z, _ := tensor.Where(cond, x, y)
//
// See the function documentation for the full list.
package tensor
