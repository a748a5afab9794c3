package cpu

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/arc-ml/arc/internal/parallel"
	"github.com/arc-ml/arc/internal/tensor"
)

// ModeDimInto reduces x along dim to the most frequent value per slice.
// Ties between equally-frequent candidates resolve to the smallest value;
// the reported index is the lowest position holding that value.
func (cpu *CPUBackend) ModeDimInto(values, indices, x *tensor.RawTensor, dim int, keepDim bool) {
	if isHalf(x.DType()) {
		x32 := cpu.widenHalf(x)
		v32 := cpu.newRaw(values.Shape(), tensor.Float32)
		cpu.ModeDimInto(v32, indices, x32, dim, keepDim)
		cpu.CopyInto(values, cpu.Cast(v32, values.DType()))
		return
	}

	switch x.DType() {
	case tensor.Bool:
		reduceModeBool(cpu.par, values.AsBool(), indices.AsInt64(), x.AsBool(), x.Shape(), dim)
	case tensor.Uint8:
		reduceMode(cpu.par, values.AsUint8(), indices.AsInt64(), x.AsUint8(), x.Shape(), dim)
	case tensor.Int8:
		reduceMode(cpu.par, values.AsInt8(), indices.AsInt64(), x.AsInt8(), x.Shape(), dim)
	case tensor.Int16:
		reduceMode(cpu.par, values.AsInt16(), indices.AsInt64(), x.AsInt16(), x.Shape(), dim)
	case tensor.Int32:
		reduceMode(cpu.par, values.AsInt32(), indices.AsInt64(), x.AsInt32(), x.Shape(), dim)
	case tensor.Int64:
		reduceMode(cpu.par, values.AsInt64(), indices.AsInt64(), x.AsInt64(), x.Shape(), dim)
	case tensor.Float32:
		reduceMode(cpu.par, values.AsFloat32(), indices.AsInt64(), x.AsFloat32(), x.Shape(), dim)
	case tensor.Float64:
		reduceMode(cpu.par, values.AsFloat64(), indices.AsInt64(), x.AsFloat64(), x.Shape(), dim)
	default:
		panic(fmt.Sprintf("mode: unsupported dtype %s", x.DType()))
	}
}

// reduceModeBool counts the two values directly. false < true, so false wins
// an even split.
func reduceModeBool(par parallel.Config, values []bool, indices []int64, data []bool, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	parallel.For(len(values), func(group int) {
		baseIdx := groupBase(group, shape, strides, dim)

		trues := 0
		for i := 0; i < dimSize; i++ {
			if data[baseIdx+i*dimStride] {
				trues++
			}
		}
		best := trues > dimSize-trues

		bestIdx := int64(0)
		for i := 0; i < dimSize; i++ {
			if data[baseIdx+i*dimStride] == best {
				bestIdx = int64(i)
				break
			}
		}
		values[group] = best
		indices[group] = bestIdx
	}, par)
}

func reduceMode[T constraints.Ordered](par parallel.Config, values []T, indices []int64, data []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	parallel.For(len(values), func(group int) {
		baseIdx := groupBase(group, shape, strides, dim)

		counts := make(map[T]int, dimSize)
		for i := 0; i < dimSize; i++ {
			counts[data[baseIdx+i*dimStride]]++
		}

		bestVal := data[baseIdx]
		bestCount := counts[bestVal]
		for i := 1; i < dimSize; i++ {
			v := data[baseIdx+i*dimStride]
			c := counts[v]
			if c > bestCount || (c == bestCount && v < bestVal) {
				bestVal = v
				bestCount = c
			}
		}

		bestIdx := int64(0)
		for i := 0; i < dimSize; i++ {
			if data[baseIdx+i*dimStride] == bestVal {
				bestIdx = int64(i)
				break
			}
		}
		values[group] = bestVal
		indices[group] = bestIdx
	}, par)
}
