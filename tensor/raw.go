package tensor

import (
	"github.com/arc-ml/arc/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, dtype, and device information
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Optional dimension names via SetNames()/DimForName()
//   - Reference-counted buffer sharing via Clone()
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Shares buffer via reference counting
type RawTensor = tensor.RawTensor
