package cpu

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/arc-ml/arc/internal/parallel"
	"github.com/arc-ml/arc/internal/tensor"
)

// MaxDimInto reduces x along dim, writing per-slice maxima into values and
// the position of each maximum into indices. Ties resolve to the lowest
// index; a NaN in the slice wins (first NaN position).
func (cpu *CPUBackend) MaxDimInto(values, indices, x *tensor.RawTensor, dim int, keepDim bool) {
	cpu.minMaxDim(values, indices, x, dim, false)
}

// MinDimInto reduces x along dim, writing per-slice minima into values and
// the position of each minimum into indices. Ties resolve to the lowest
// index; a NaN in the slice wins (first NaN position).
func (cpu *CPUBackend) MinDimInto(values, indices, x *tensor.RawTensor, dim int, keepDim bool) {
	cpu.minMaxDim(values, indices, x, dim, true)
}

func (cpu *CPUBackend) minMaxDim(values, indices, x *tensor.RawTensor, dim int, takeMin bool) {
	if isHalf(x.DType()) {
		x32 := cpu.widenHalf(x)
		v32 := cpu.newRaw(values.Shape(), tensor.Float32)
		cpu.minMaxDim(v32, indices, x32, dim, takeMin)
		cpu.CopyInto(values, cpu.Cast(v32, values.DType()))
		return
	}

	switch x.DType() {
	case tensor.Bool:
		reduceMinMaxBool(cpu.par, values.AsBool(), indices.AsInt64(), x.AsBool(), x.Shape(), dim, takeMin)
	case tensor.Uint8:
		reduceMinMax(cpu.par, values.AsUint8(), indices.AsInt64(), x.AsUint8(), x.Shape(), dim, takeMin)
	case tensor.Int8:
		reduceMinMax(cpu.par, values.AsInt8(), indices.AsInt64(), x.AsInt8(), x.Shape(), dim, takeMin)
	case tensor.Int16:
		reduceMinMax(cpu.par, values.AsInt16(), indices.AsInt64(), x.AsInt16(), x.Shape(), dim, takeMin)
	case tensor.Int32:
		reduceMinMax(cpu.par, values.AsInt32(), indices.AsInt64(), x.AsInt32(), x.Shape(), dim, takeMin)
	case tensor.Int64:
		reduceMinMax(cpu.par, values.AsInt64(), indices.AsInt64(), x.AsInt64(), x.Shape(), dim, takeMin)
	case tensor.Float32:
		reduceMinMax(cpu.par, values.AsFloat32(), indices.AsInt64(), x.AsFloat32(), x.Shape(), dim, takeMin)
	case tensor.Float64:
		reduceMinMax(cpu.par, values.AsFloat64(), indices.AsInt64(), x.AsFloat64(), x.Shape(), dim, takeMin)
	default:
		panic(fmt.Sprintf("min/max: unsupported dtype %s", x.DType()))
	}
}

// groupBase maps a flat output index to the base offset of its reduced slice.
// The decomposition runs innermost-dimension-first so output order stays
// row-major with the reduced dimension removed.
func groupBase(group int, shape tensor.Shape, strides []int, dim int) int {
	baseIdx := 0
	remaining := group
	for i := len(shape) - 1; i >= 0; i-- {
		if i == dim {
			continue
		}
		coord := remaining % shape[i]
		remaining /= shape[i]
		baseIdx += coord * strides[i]
	}
	return baseIdx
}

func reduceMinMax[T constraints.Ordered](par parallel.Config, values []T, indices []int64, data []T, shape tensor.Shape, dim int, takeMin bool) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	parallel.For(len(values), func(group int) {
		baseIdx := groupBase(group, shape, strides, dim)
		best := data[baseIdx]
		bestIdx := int64(0)
		for i := 1; i < dimSize; i++ {
			v := data[baseIdx+i*dimStride]
			if (takeMin && v < best) || (!takeMin && v > best) || (v != v && best == best) {
				best = v
				bestIdx = int64(i)
			}
		}
		values[group] = best
		indices[group] = bestIdx
	}, par)
}

func reduceMinMaxBool(par parallel.Config, values []bool, indices []int64, data []bool, shape tensor.Shape, dim int, takeMin bool) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	parallel.For(len(values), func(group int) {
		baseIdx := groupBase(group, shape, strides, dim)
		best := data[baseIdx]
		bestIdx := int64(0)
		for i := 1; i < dimSize; i++ {
			v := data[baseIdx+i*dimStride]
			// false < true
			if (takeMin && !v && best) || (!takeMin && v && !best) {
				best = v
				bestIdx = int64(i)
			}
		}
		values[group] = best
		indices[group] = bestIdx
	}, par)
}
