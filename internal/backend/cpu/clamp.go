package cpu

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/arc-ml/arc/internal/tensor"
)

// ClampScalarInto clamps x into out with optional scalar bounds. The ops
// layer has already resolved promotion, so x, out and the bounds share a
// dtype family; out may alias x for the in-place variants. A nil bound is
// absent. NaN elements of x pass through unchanged; NaN bounds are handled
// by the caller with a fill.
func (cpu *CPUBackend) ClampScalarInto(out, x *tensor.RawTensor, lo, hi *tensor.Scalar) {
	if out.DType() != x.DType() {
		panic(fmt.Sprintf("clamp: output dtype %s does not match input %s", out.DType(), x.DType()))
	}
	if isHalf(x.DType()) {
		x32 := cpu.widenHalf(x)
		out32 := cpu.newRaw(x.Shape(), tensor.Float32)
		cpu.ClampScalarInto(out32, x32, lo, hi)
		cpu.CopyInto(out, cpu.Cast(out32, out.DType()))
		return
	}

	hasLo, hasHi := lo != nil, hi != nil
	switch x.DType() {
	case tensor.Uint8:
		clampElems(out.AsUint8(), x.AsUint8(), boundOf[uint8](lo), boundOf[uint8](hi), hasLo, hasHi)
	case tensor.Int8:
		clampElems(out.AsInt8(), x.AsInt8(), boundOf[int8](lo), boundOf[int8](hi), hasLo, hasHi)
	case tensor.Int16:
		clampElems(out.AsInt16(), x.AsInt16(), boundOf[int16](lo), boundOf[int16](hi), hasLo, hasHi)
	case tensor.Int32:
		clampElems(out.AsInt32(), x.AsInt32(), boundOf[int32](lo), boundOf[int32](hi), hasLo, hasHi)
	case tensor.Int64:
		clampElems(out.AsInt64(), x.AsInt64(), boundOf[int64](lo), boundOf[int64](hi), hasLo, hasHi)
	case tensor.Float32:
		clampElems(out.AsFloat32(), x.AsFloat32(), floatBoundOf[float32](lo), floatBoundOf[float32](hi), hasLo, hasHi)
	case tensor.Float64:
		clampElems(out.AsFloat64(), x.AsFloat64(), floatBoundOf[float64](lo), floatBoundOf[float64](hi), hasLo, hasHi)
	default:
		panic(fmt.Sprintf("clamp: unsupported dtype %s", x.DType()))
	}
}

func boundOf[T constraints.Integer](s *tensor.Scalar) T {
	if s == nil {
		return 0
	}
	return T(s.Int64())
}

func floatBoundOf[T constraints.Float](s *tensor.Scalar) T {
	if s == nil {
		return 0
	}
	return T(s.Float64())
}

func clampElems[T constraints.Ordered](dst, src []T, lo, hi T, hasLo, hasHi bool) {
	for i := range dst {
		v := src[i]
		if hasLo && v < lo {
			v = lo
		}
		if hasHi && v > hi {
			v = hi
		}
		dst[i] = v
	}
}
