package cpu

import (
	"fmt"

	"github.com/arc-ml/arc/internal/tensor"
)

// Cast converts the tensor to a different data type.
//
// Integer-to-integer casts run through an int64 lane so 64-bit values keep
// full precision; complex targets go through a complex128 lane; everything
// else converts through float64.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	// No-op if same dtype
	if x.DType() == dtype {
		return x
	}

	result := cpu.newRaw(x.Shape(), dtype)
	castImpl(result, x)
	return result
}

func castImpl(result, x *tensor.RawTensor) {
	from, to := x.DType(), result.DType()
	switch {
	case from.IsComplex() && !to.IsComplex():
		panic(fmt.Sprintf("cast: cannot cast %s to %s", from, to))
	case to.IsComplex():
		storeComplex128(result, toComplex128(x))
	case from.IsIntegral(true) && to.IsIntegral(true):
		storeInt64(result, toInt64(x))
	default:
		storeFloat64(result, toFloat64(x))
	}
}

// toFloat64 reads any real-valued tensor as a float64 lane.
func toFloat64(x *tensor.RawTensor) []float64 {
	out := make([]float64, x.NumElements())
	switch x.DType() {
	case tensor.Bool:
		for i, v := range x.AsBool() {
			if v {
				out[i] = 1
			}
		}
	case tensor.Uint8:
		convertSlice(out, x.AsUint8(), func(v uint8) float64 { return float64(v) })
	case tensor.Int8:
		convertSlice(out, x.AsInt8(), func(v int8) float64 { return float64(v) })
	case tensor.Int16:
		convertSlice(out, x.AsInt16(), func(v int16) float64 { return float64(v) })
	case tensor.Int32:
		convertSlice(out, x.AsInt32(), func(v int32) float64 { return float64(v) })
	case tensor.Int64:
		convertSlice(out, x.AsInt64(), func(v int64) float64 { return float64(v) })
	case tensor.Float16:
		src := x.AsFloat16()
		for i := range out {
			out[i] = float64(src[i].Float32())
		}
	case tensor.BFloat16:
		src := x.AsBFloat16()
		for i := range out {
			out[i] = float64(src[i].Float32())
		}
	case tensor.Float32:
		convertSlice(out, x.AsFloat32(), func(v float32) float64 { return float64(v) })
	case tensor.Float64:
		copy(out, x.AsFloat64())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
	return out
}

func storeFloat64(x *tensor.RawTensor, vals []float64) {
	switch x.DType() {
	case tensor.Bool:
		dst := x.AsBool()
		for i, v := range vals {
			dst[i] = v != 0
		}
	case tensor.Uint8:
		convertSlice(x.AsUint8(), vals, func(v float64) uint8 { return uint8(v) })
	case tensor.Int8:
		convertSlice(x.AsInt8(), vals, func(v float64) int8 { return int8(v) })
	case tensor.Int16:
		convertSlice(x.AsInt16(), vals, func(v float64) int16 { return int16(v) })
	case tensor.Int32:
		convertSlice(x.AsInt32(), vals, func(v float64) int32 { return int32(v) })
	case tensor.Int64:
		convertSlice(x.AsInt64(), vals, func(v float64) int64 { return int64(v) })
	case tensor.Float16:
		dst := x.AsFloat16()
		for i, v := range vals {
			dst[i] = tensor.Float16FromFloat32(float32(v))
		}
	case tensor.BFloat16:
		dst := x.AsBFloat16()
		for i, v := range vals {
			dst[i] = tensor.BFloat16FromFloat32(float32(v))
		}
	case tensor.Float32:
		convertSlice(x.AsFloat32(), vals, func(v float64) float32 { return float32(v) })
	case tensor.Float64:
		copy(x.AsFloat64(), vals)
	default:
		panic(fmt.Sprintf("cast: unsupported destination dtype %s", x.DType()))
	}
}

// toInt64 reads any integral (or bool) tensor as an int64 lane.
func toInt64(x *tensor.RawTensor) []int64 {
	out := make([]int64, x.NumElements())
	switch x.DType() {
	case tensor.Bool:
		for i, v := range x.AsBool() {
			if v {
				out[i] = 1
			}
		}
	case tensor.Uint8:
		convertSlice(out, x.AsUint8(), func(v uint8) int64 { return int64(v) })
	case tensor.Int8:
		convertSlice(out, x.AsInt8(), func(v int8) int64 { return int64(v) })
	case tensor.Int16:
		convertSlice(out, x.AsInt16(), func(v int16) int64 { return int64(v) })
	case tensor.Int32:
		convertSlice(out, x.AsInt32(), func(v int32) int64 { return int64(v) })
	case tensor.Int64:
		copy(out, x.AsInt64())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
	return out
}

func storeInt64(x *tensor.RawTensor, vals []int64) {
	switch x.DType() {
	case tensor.Bool:
		dst := x.AsBool()
		for i, v := range vals {
			dst[i] = v != 0
		}
	case tensor.Uint8:
		convertSlice(x.AsUint8(), vals, func(v int64) uint8 { return uint8(v) })
	case tensor.Int8:
		convertSlice(x.AsInt8(), vals, func(v int64) int8 { return int8(v) })
	case tensor.Int16:
		convertSlice(x.AsInt16(), vals, func(v int64) int16 { return int16(v) })
	case tensor.Int32:
		convertSlice(x.AsInt32(), vals, func(v int64) int32 { return int32(v) })
	case tensor.Int64:
		copy(x.AsInt64(), vals)
	default:
		panic(fmt.Sprintf("cast: unsupported destination dtype %s", x.DType()))
	}
}

// toComplex128 reads any tensor as a complex128 lane; real dtypes get a zero
// imaginary part.
func toComplex128(x *tensor.RawTensor) []complex128 {
	switch x.DType() {
	case tensor.Complex64:
		out := make([]complex128, x.NumElements())
		convertSlice(out, x.AsComplex64(), func(v complex64) complex128 { return complex128(v) })
		return out
	case tensor.Complex128:
		out := make([]complex128, x.NumElements())
		copy(out, x.AsComplex128())
		return out
	default:
		vals := toFloat64(x)
		out := make([]complex128, len(vals))
		for i, v := range vals {
			out[i] = complex(v, 0)
		}
		return out
	}
}

func storeComplex128(x *tensor.RawTensor, vals []complex128) {
	switch x.DType() {
	case tensor.Complex64:
		convertSlice(x.AsComplex64(), vals, func(v complex128) complex64 { return complex64(v) })
	case tensor.Complex128:
		copy(x.AsComplex128(), vals)
	default:
		panic(fmt.Sprintf("cast: unsupported destination dtype %s", x.DType()))
	}
}

func convertSlice[D, S any](dst []D, src []S, conv func(S) D) {
	for i := range dst {
		dst[i] = conv(src[i])
	}
}
