package cpu

import (
	"fmt"
	"math/cmplx"

	"golang.org/x/exp/constraints"

	"github.com/arc-ml/arc/internal/tensor"
)

// Number constrains the element types the numeric kernels operate on.
// 16-bit floats are widened to float32 before reaching these kernels.
type Number interface {
	constraints.Integer | constraints.Float
}

// broadcastPair expands a and b to their common broadcast shape.
func (cpu *CPUBackend) broadcastPair(name string, a, b *tensor.RawTensor) (_, _ *tensor.RawTensor, shape tensor.Shape) {
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	if !a.Shape().Equal(outShape) {
		a = cpu.Expand(a, outShape)
	}
	if !b.Shape().Equal(outShape) {
		b = cpu.Expand(b, outShape)
	}
	return a, b, outShape
}

func sameDType(name string, a, b *tensor.RawTensor) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s (cast operands before dispatch)", name, a.DType(), b.DType()))
	}
}

// Eq returns a == b element-wise as a Bool tensor.
func (cpu *CPUBackend) Eq(a, b *tensor.RawTensor) *tensor.RawTensor {
	sameDType("eq", a, b)
	a, b, shape := cpu.broadcastPair("eq", a, b)
	a, b = cpu.widenHalf(a), cpu.widenHalf(b)
	out := cpu.newRaw(shape, tensor.Bool)
	dst := out.AsBool()
	switch a.DType() {
	case tensor.Bool:
		cmpEq(dst, a.AsBool(), b.AsBool())
	case tensor.Uint8:
		cmpEq(dst, a.AsUint8(), b.AsUint8())
	case tensor.Int8:
		cmpEq(dst, a.AsInt8(), b.AsInt8())
	case tensor.Int16:
		cmpEq(dst, a.AsInt16(), b.AsInt16())
	case tensor.Int32:
		cmpEq(dst, a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		cmpEq(dst, a.AsInt64(), b.AsInt64())
	case tensor.Float32:
		cmpEq(dst, a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		cmpEq(dst, a.AsFloat64(), b.AsFloat64())
	case tensor.Complex64:
		cmpEq(dst, a.AsComplex64(), b.AsComplex64())
	case tensor.Complex128:
		cmpEq(dst, a.AsComplex128(), b.AsComplex128())
	default:
		panic(fmt.Sprintf("eq: unsupported dtype %s", a.DType()))
	}
	return out
}

// Ne returns a != b element-wise as a Bool tensor.
func (cpu *CPUBackend) Ne(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := cpu.Eq(a, b)
	dst := out.AsBool()
	for i := range dst {
		dst[i] = !dst[i]
	}
	return out
}

// LowerEqual returns a <= b element-wise as a Bool tensor.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	sameDType("lowerEqual", a, b)
	a, b, shape := cpu.broadcastPair("lowerEqual", a, b)
	a, b = cpu.widenHalf(a), cpu.widenHalf(b)
	out := cpu.newRaw(shape, tensor.Bool)
	dst := out.AsBool()
	switch a.DType() {
	case tensor.Uint8:
		cmpLe(dst, a.AsUint8(), b.AsUint8())
	case tensor.Int8:
		cmpLe(dst, a.AsInt8(), b.AsInt8())
	case tensor.Int16:
		cmpLe(dst, a.AsInt16(), b.AsInt16())
	case tensor.Int32:
		cmpLe(dst, a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		cmpLe(dst, a.AsInt64(), b.AsInt64())
	case tensor.Float32:
		cmpLe(dst, a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		cmpLe(dst, a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("lowerEqual: unsupported dtype %s", a.DType()))
	}
	return out
}

// Minimum returns min(a, b) element-wise; NaN in either operand propagates.
func (cpu *CPUBackend) Minimum(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.minMax("minimum", a, b, true)
}

// Maximum returns max(a, b) element-wise; NaN in either operand propagates.
func (cpu *CPUBackend) Maximum(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.minMax("maximum", a, b, false)
}

func (cpu *CPUBackend) minMax(name string, a, b *tensor.RawTensor, takeMin bool) *tensor.RawTensor {
	sameDType(name, a, b)
	origDType := a.DType()
	a, b, shape := cpu.broadcastPair(name, a, b)
	a, b = cpu.widenHalf(a), cpu.widenHalf(b)
	out := cpu.newRaw(shape, a.DType())
	switch a.DType() {
	case tensor.Uint8:
		minMaxElems(out.AsUint8(), a.AsUint8(), b.AsUint8(), takeMin)
	case tensor.Int8:
		minMaxElems(out.AsInt8(), a.AsInt8(), b.AsInt8(), takeMin)
	case tensor.Int16:
		minMaxElems(out.AsInt16(), a.AsInt16(), b.AsInt16(), takeMin)
	case tensor.Int32:
		minMaxElems(out.AsInt32(), a.AsInt32(), b.AsInt32(), takeMin)
	case tensor.Int64:
		minMaxElems(out.AsInt64(), a.AsInt64(), b.AsInt64(), takeMin)
	case tensor.Float32:
		minMaxElems(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), takeMin)
	case tensor.Float64:
		minMaxElems(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), takeMin)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
	if isHalf(origDType) {
		return cpu.Cast(out, origDType)
	}
	return out
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	sameDType("sub", a, b)
	origDType := a.DType()
	a, b, shape := cpu.broadcastPair("sub", a, b)
	a, b = cpu.widenHalf(a), cpu.widenHalf(b)
	out := cpu.newRaw(shape, a.DType())
	switch a.DType() {
	case tensor.Uint8:
		subElems(out.AsUint8(), a.AsUint8(), b.AsUint8())
	case tensor.Int8:
		subElems(out.AsInt8(), a.AsInt8(), b.AsInt8())
	case tensor.Int16:
		subElems(out.AsInt16(), a.AsInt16(), b.AsInt16())
	case tensor.Int32:
		subElems(out.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		subElems(out.AsInt64(), a.AsInt64(), b.AsInt64())
	case tensor.Float32:
		subElems(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		subElems(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Complex64:
		subComplexElems(out.AsComplex64(), a.AsComplex64(), b.AsComplex64())
	case tensor.Complex128:
		subComplexElems(out.AsComplex128(), a.AsComplex128(), b.AsComplex128())
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %s", a.DType()))
	}
	if isHalf(origDType) {
		return cpu.Cast(out, origDType)
	}
	return out
}

// Abs returns the element-wise absolute value. Complex inputs produce the
// float magnitude (complex64 -> float32, complex128 -> float64).
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	origDType := x.DType()
	x = cpu.widenHalf(x)
	switch x.DType() {
	case tensor.Complex64:
		out := cpu.newRaw(x.Shape(), tensor.Float32)
		dst, src := out.AsFloat32(), x.AsComplex64()
		for i := range dst {
			dst[i] = float32(cmplx.Abs(complex128(src[i])))
		}
		return out
	case tensor.Complex128:
		out := cpu.newRaw(x.Shape(), tensor.Float64)
		dst, src := out.AsFloat64(), x.AsComplex128()
		for i := range dst {
			dst[i] = cmplx.Abs(src[i])
		}
		return out
	}
	out := cpu.newRaw(x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Uint8:
		copy(out.AsUint8(), x.AsUint8())
	case tensor.Int8:
		absElems(out.AsInt8(), x.AsInt8())
	case tensor.Int16:
		absElems(out.AsInt16(), x.AsInt16())
	case tensor.Int32:
		absElems(out.AsInt32(), x.AsInt32())
	case tensor.Int64:
		absElems(out.AsInt64(), x.AsInt64())
	case tensor.Float32:
		absElems(out.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		absElems(out.AsFloat64(), x.AsFloat64())
	default:
		panic(fmt.Sprintf("abs: unsupported dtype %s", x.DType()))
	}
	if isHalf(origDType) {
		return cpu.Cast(out, origDType)
	}
	return out
}

// Or computes element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinary("or", a, b, func(x, y bool) bool { return x || y })
}

// And computes element-wise logical AND.
func (cpu *CPUBackend) And(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.boolBinary("and", a, b, func(x, y bool) bool { return x && y })
}

func (cpu *CPUBackend) boolBinary(name string, a, b *tensor.RawTensor, f func(x, y bool) bool) *tensor.RawTensor {
	if a.DType() != tensor.Bool || b.DType() != tensor.Bool {
		panic(name + ": both tensors must be bool dtype")
	}
	a, b, shape := cpu.broadcastPair(name, a, b)
	out := cpu.newRaw(shape, tensor.Bool)
	dst, aData, bData := out.AsBool(), a.AsBool(), b.AsBool()
	for i := range dst {
		dst[i] = f(aData[i], bData[i])
	}
	return out
}

// Not computes element-wise logical NOT.
func (cpu *CPUBackend) Not(x *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Bool {
		panic("not: tensor must be bool dtype")
	}
	out := cpu.newRaw(x.Shape(), tensor.Bool)
	dst, src := out.AsBool(), x.AsBool()
	for i := range dst {
		dst[i] = !src[i]
	}
	return out
}

// Real returns the real part of x as a float tensor.
// For real dtypes it is an identity copy.
func (cpu *CPUBackend) Real(x *tensor.RawTensor) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Complex64:
		out := cpu.newRaw(x.Shape(), tensor.Float32)
		dst, src := out.AsFloat32(), x.AsComplex64()
		for i := range dst {
			dst[i] = real(src[i])
		}
		return out
	case tensor.Complex128:
		out := cpu.newRaw(x.Shape(), tensor.Float64)
		dst, src := out.AsFloat64(), x.AsComplex128()
		for i := range dst {
			dst[i] = real(src[i])
		}
		return out
	default:
		out := cpu.newRaw(x.Shape(), x.DType())
		cpu.CopyInto(out, x)
		return out
	}
}

// Imag returns the imaginary part of x as a float tensor.
// For real dtypes it is all zeros.
func (cpu *CPUBackend) Imag(x *tensor.RawTensor) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Complex64:
		out := cpu.newRaw(x.Shape(), tensor.Float32)
		dst, src := out.AsFloat32(), x.AsComplex64()
		for i := range dst {
			dst[i] = imag(src[i])
		}
		return out
	case tensor.Complex128:
		out := cpu.newRaw(x.Shape(), tensor.Float64)
		dst, src := out.AsFloat64(), x.AsComplex128()
		for i := range dst {
			dst[i] = imag(src[i])
		}
		return out
	default:
		return cpu.newRaw(x.Shape(), x.DType()) // zero-initialized
	}
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar tensor.Scalar) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar,
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar tensor.Scalar) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar,
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
}

func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, scalar tensor.Scalar,
	intOp func(a, b int64) int64, floatOp func(a, b float64) float64) *tensor.RawTensor {
	origDType := x.DType()
	x = cpu.widenHalf(x)
	out := cpu.newRaw(x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Uint8:
		scalarOpElems(out.AsUint8(), x.AsUint8(), uint8(scalar.Int64()), func(a, b uint8) uint8 { return uint8(intOp(int64(a), int64(b))) })
	case tensor.Int8:
		scalarOpElems(out.AsInt8(), x.AsInt8(), int8(scalar.Int64()), func(a, b int8) int8 { return int8(intOp(int64(a), int64(b))) })
	case tensor.Int16:
		scalarOpElems(out.AsInt16(), x.AsInt16(), int16(scalar.Int64()), func(a, b int16) int16 { return int16(intOp(int64(a), int64(b))) })
	case tensor.Int32:
		scalarOpElems(out.AsInt32(), x.AsInt32(), int32(scalar.Int64()), func(a, b int32) int32 { return int32(intOp(int64(a), int64(b))) })
	case tensor.Int64:
		scalarOpElems(out.AsInt64(), x.AsInt64(), scalar.Int64(), intOp)
	case tensor.Float32:
		scalarOpElems(out.AsFloat32(), x.AsFloat32(), float32(scalar.Float64()), func(a, b float32) float32 { return float32(floatOp(float64(a), float64(b))) })
	case tensor.Float64:
		scalarOpElems(out.AsFloat64(), x.AsFloat64(), scalar.Float64(), floatOp)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}
	if isHalf(origDType) {
		return cpu.Cast(out, origDType)
	}
	return out
}

// Fill sets every element of x to value.
func (cpu *CPUBackend) Fill(x *tensor.RawTensor, value tensor.Scalar) {
	switch x.DType() {
	case tensor.Bool:
		fillElems(x.AsBool(), value.Bool())
	case tensor.Uint8:
		fillElems(x.AsUint8(), uint8(value.Int64()))
	case tensor.Int8:
		fillElems(x.AsInt8(), int8(value.Int64()))
	case tensor.Int16:
		fillElems(x.AsInt16(), int16(value.Int64()))
	case tensor.Int32:
		fillElems(x.AsInt32(), int32(value.Int64()))
	case tensor.Int64:
		fillElems(x.AsInt64(), value.Int64())
	case tensor.Float16:
		fillElems(x.AsFloat16(), tensor.Float16FromFloat32(float32(value.Float64())))
	case tensor.BFloat16:
		fillElems(x.AsBFloat16(), tensor.BFloat16FromFloat32(float32(value.Float64())))
	case tensor.Float32:
		fillElems(x.AsFloat32(), float32(value.Float64()))
	case tensor.Float64:
		fillElems(x.AsFloat64(), value.Float64())
	case tensor.Complex64:
		fillElems(x.AsComplex64(), complex64(value.Complex128()))
	case tensor.Complex128:
		fillElems(x.AsComplex128(), value.Complex128())
	default:
		panic(fmt.Sprintf("fill: unsupported dtype %s", x.DType()))
	}
}

// CopyInto copies src's elements into dst. Both must share dtype and element
// count; shapes may differ (used to undo flattening).
func (cpu *CPUBackend) CopyInto(dst, src *tensor.RawTensor) {
	if dst.DType() != src.DType() {
		panic(fmt.Sprintf("copy: dtype mismatch %s vs %s", dst.DType(), src.DType()))
	}
	if dst.NumElements() != src.NumElements() {
		panic(fmt.Sprintf("copy: element count mismatch %d vs %d", dst.NumElements(), src.NumElements()))
	}
	n := dst.ByteSize()
	copy(dst.Data()[:n], src.Data()[:n])
}

// Expand materializes x broadcast to shape as a contiguous tensor.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out := cpu.newRaw(shape, x.DType())
	sz := x.DType().Size()
	inStrides := computeBroadcastStridesForShape(x.Shape(), shape)
	outStrides := shape.ComputeStrides()
	src, dst := x.Data(), out.Data()
	forEach(cpu.par, shape.NumElements(), func(i int) {
		flat := computeFlatIndex(i, outStrides, inStrides)
		copy(dst[i*sz:(i+1)*sz], src[flat*sz:flat*sz+sz])
	})
	return out
}

// computeBroadcastStridesForShape computes strides for broadcasting a shape to outShape.
// Returns strides where dimensions of size 1 have stride 0 (for broadcasting).
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	// Pad input shape with 1s on the left
	inDim := len(inShape)
	offset := outDim - inDim

	// Compute original strides
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension, stride is 0
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			// Normal dimension, use original stride
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// computeFlatIndex computes the flat index in the source array for a given output index.
// outStrides: strides of the output shape.
// inStrides: broadcast-adjusted strides of the input shape.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	ndim := len(outStrides)
	flatIdx := 0

	for i := 0; i < ndim; i++ {
		// Extract coordinate along dimension i
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]

		// Add to flat index using input stride
		flatIdx += coord * inStrides[i]
	}

	return flatIdx
}

// ============================================================================
// Generic element loops
// ============================================================================

func cmpEq[T comparable](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] == b[i]
	}
}

func cmpLe[T constraints.Ordered](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] <= b[i]
	}
}

func minMaxElems[T constraints.Ordered](dst, a, b []T, takeMin bool) {
	for i := range dst {
		x, y := a[i], b[i]
		v := y
		// NaN in either operand propagates; NaN comparisons are false, so the
		// ordered branch alone would drop NaNs from the left operand.
		if (takeMin && x < y) || (!takeMin && x > y) || x != x {
			v = x
		}
		dst[i] = v
	}
}

func subComplexElems[T complex64 | complex128](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func subElems[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func absElems[T constraints.Signed | constraints.Float](dst, src []T) {
	for i := range dst {
		v := src[i]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

func scalarOpElems[T Number](dst, src []T, v T, f func(a, b T) T) {
	for i := range dst {
		dst[i] = f(src[i], v)
	}
}

func fillElems[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}
