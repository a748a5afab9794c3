package cpu

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/arc-ml/arc/internal/tensor"
)

// SortStable1D sorts a 1-D tensor, returning sorted values and the
// permutation that produced them (order[k] is the pre-sort position of the
// k-th sorted element). The sort is stable: equal values keep their input
// order, which the sort-based isin path relies on.
func (cpu *CPUBackend) SortStable1D(x *tensor.RawTensor, descending bool) (values, order *tensor.RawTensor) {
	if len(x.Shape()) != 1 {
		panic(fmt.Sprintf("sort: expected rank-1 tensor, got shape %v", x.Shape()))
	}
	n := x.NumElements()
	values = cpu.newRaw(x.Shape(), x.DType())
	order = cpu.newRaw(tensor.Shape{n}, tensor.Int64)

	switch x.DType() {
	case tensor.Uint8:
		sortStable(values.AsUint8(), order.AsInt64(), x.AsUint8(), descending)
	case tensor.Int8:
		sortStable(values.AsInt8(), order.AsInt64(), x.AsInt8(), descending)
	case tensor.Int16:
		sortStable(values.AsInt16(), order.AsInt64(), x.AsInt16(), descending)
	case tensor.Int32:
		sortStable(values.AsInt32(), order.AsInt64(), x.AsInt32(), descending)
	case tensor.Int64:
		sortStable(values.AsInt64(), order.AsInt64(), x.AsInt64(), descending)
	case tensor.Float32:
		sortStable(values.AsFloat32(), order.AsInt64(), x.AsFloat32(), descending)
	case tensor.Float64:
		sortStable(values.AsFloat64(), order.AsInt64(), x.AsFloat64(), descending)
	default:
		panic(fmt.Sprintf("sort: unsupported dtype %s", x.DType()))
	}
	return values, order
}

func sortStable[T constraints.Ordered](dstVals []T, dstOrder []int64, src []T, descending bool) {
	idx := make([]int, len(src))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := src[idx[i]], src[idx[j]]
		if descending {
			return a > b
		}
		return a < b
	})
	for k, i := range idx {
		dstVals[k] = src[i]
		dstOrder[k] = int64(i)
	}
}

// Unique1D reduces x (flattened) to its distinct values in first-occurrence
// order. When returnInverse is set, the second result maps every original
// position to its value's position in the unique array.
func (cpu *CPUBackend) Unique1D(x *tensor.RawTensor, returnInverse bool) (values, inverse *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Uint8:
		return uniqueResult(cpu, x.AsUint8(), x.DType(), returnInverse)
	case tensor.Int8:
		return uniqueResult(cpu, x.AsInt8(), x.DType(), returnInverse)
	case tensor.Int16:
		return uniqueResult(cpu, x.AsInt16(), x.DType(), returnInverse)
	case tensor.Int32:
		return uniqueResult(cpu, x.AsInt32(), x.DType(), returnInverse)
	case tensor.Int64:
		return uniqueResult(cpu, x.AsInt64(), x.DType(), returnInverse)
	case tensor.Float32:
		return uniqueResult(cpu, x.AsFloat32(), x.DType(), returnInverse)
	case tensor.Float64:
		return uniqueResult(cpu, x.AsFloat64(), x.DType(), returnInverse)
	default:
		panic(fmt.Sprintf("unique: unsupported dtype %s", x.DType()))
	}
}

func uniqueResult[T constraints.Ordered](cpu *CPUBackend, src []T, dt tensor.DataType, returnInverse bool) (values, inverse *tensor.RawTensor) {
	vals, inv := uniqueImpl(src)
	values = cpu.newRaw(tensor.Shape{len(vals)}, dt)
	copyTyped(values, vals)
	if returnInverse {
		inverse = cpu.newRaw(tensor.Shape{len(inv)}, tensor.Int64)
		copy(inverse.AsInt64(), inv)
	}
	return values, inverse
}

func uniqueImpl[T constraints.Ordered](src []T) (vals []T, inverse []int64) {
	seen := make(map[T]int64, len(src))
	inverse = make([]int64, len(src))
	for i, v := range src {
		if v != v {
			// NaN never matches a map key (or itself): each occurrence is
			// its own unique value.
			inverse[i] = int64(len(vals))
			vals = append(vals, v)
			continue
		}
		pos, ok := seen[v]
		if !ok {
			pos = int64(len(vals))
			seen[v] = pos
			vals = append(vals, v)
		}
		inverse[i] = pos
	}
	return vals, inverse
}

// copyTyped copies a Go slice into a freshly allocated tensor of matching dtype.
func copyTyped[T constraints.Ordered](dst *tensor.RawTensor, src []T) {
	switch d := any(src).(type) {
	case []uint8:
		copy(dst.AsUint8(), d)
	case []int8:
		copy(dst.AsInt8(), d)
	case []int16:
		copy(dst.AsInt16(), d)
	case []int32:
		copy(dst.AsInt32(), d)
	case []int64:
		copy(dst.AsInt64(), d)
	case []float32:
		copy(dst.AsFloat32(), d)
	case []float64:
		copy(dst.AsFloat64(), d)
	default:
		panic("copyTyped: unsupported slice type")
	}
}

// Cat1D concatenates 1-D tensors of one dtype along dimension 0.
func (cpu *CPUBackend) Cat1D(tensors []*tensor.RawTensor) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}
	dt := tensors[0].DType()
	total := 0
	for _, t := range tensors {
		if t.DType() != dt {
			panic(fmt.Sprintf("cat: dtype mismatch %s vs %s", t.DType(), dt))
		}
		if len(t.Shape()) != 1 {
			panic(fmt.Sprintf("cat: expected rank-1 tensors, got shape %v", t.Shape()))
		}
		total += t.NumElements()
	}
	out := cpu.newRaw(tensor.Shape{total}, dt)
	dst := out.Data()
	off := 0
	for _, t := range tensors {
		n := t.ByteSize()
		copy(dst[off:off+n], t.Data()[:n])
		off += n
	}
	return out
}

// Flatten returns a rank-1 view of x sharing its storage.
func (cpu *CPUBackend) Flatten(x *tensor.RawTensor) *tensor.RawTensor {
	flat := x.Clone()
	if err := flat.Resize(tensor.Shape{x.NumElements()}); err != nil {
		panic(err)
	}
	return flat
}

// Slice1D returns a view of a 1-D tensor covering [start, end).
func (cpu *CPUBackend) Slice1D(x *tensor.RawTensor, start, end int) *tensor.RawTensor {
	v, err := x.Slice1D(start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// IndexCopy1D scatters src into dst by position: dst[index[k]] = src[k].
func (cpu *CPUBackend) IndexCopy1D(dst, index, src *tensor.RawTensor) {
	if index.DType() != tensor.Int64 {
		panic("indexCopy: index must be int64")
	}
	sameDType("indexCopy", dst, src)
	sz := dst.DType().Size()
	idx := index.AsInt64()
	dstData, srcData := dst.Data(), src.Data()
	for k, i := range idx {
		copy(dstData[int(i)*sz:(int(i)+1)*sz], srcData[k*sz:k*sz+sz])
	}
}

// IndexSelect1D gathers from a 1-D tensor: out[k] = x[index[k]].
func (cpu *CPUBackend) IndexSelect1D(x, index *tensor.RawTensor) *tensor.RawTensor {
	if index.DType() != tensor.Int64 {
		panic("indexSelect: index must be int64")
	}
	out := cpu.newRaw(index.Shape().Clone(), x.DType())
	sz := x.DType().Size()
	idx := index.AsInt64()
	dstData, srcData := out.Data(), x.Data()
	for k, i := range idx {
		copy(dstData[k*sz:(k+1)*sz], srcData[int(i)*sz:int(i)*sz+sz])
	}
	return out
}

// NonZero returns one Int64 tensor per dimension holding the coordinates of
// the nonzero (or true) elements, numpy-style.
func (cpu *CPUBackend) NonZero(x *tensor.RawTensor) []*tensor.RawTensor {
	mask := cpu.nonZeroMask(x)
	count := 0
	for _, v := range mask {
		if v {
			count++
		}
	}

	shape := x.Shape()
	rank := len(shape)
	strides := shape.ComputeStrides()
	outs := make([]*tensor.RawTensor, rank)
	coords := make([][]int64, rank)
	for d := 0; d < rank; d++ {
		outs[d] = cpu.newRaw(tensor.Shape{count}, tensor.Int64)
		coords[d] = outs[d].AsInt64()
	}

	k := 0
	for i, v := range mask {
		if !v {
			continue
		}
		rem := i
		for d := 0; d < rank; d++ {
			coords[d][k] = int64(rem / strides[d])
			rem %= strides[d]
		}
		k++
	}
	return outs
}

func (cpu *CPUBackend) nonZeroMask(x *tensor.RawTensor) []bool {
	switch x.DType() {
	case tensor.Bool:
		return x.AsBool()
	case tensor.Complex64:
		mask := make([]bool, x.NumElements())
		for i, v := range x.AsComplex64() {
			mask[i] = v != 0
		}
		return mask
	case tensor.Complex128:
		mask := make([]bool, x.NumElements())
		for i, v := range x.AsComplex128() {
			mask[i] = v != 0
		}
		return mask
	default:
		return cpu.Cast(x, tensor.Bool).AsBool()
	}
}

// All reports whether every element of a bool tensor is true.
// Vacuously true for empty tensors.
func (cpu *CPUBackend) All(x *tensor.RawTensor) bool {
	for _, v := range x.AsBool() {
		if !v {
			return false
		}
	}
	return true
}

// Any reports whether at least one element of a bool tensor is true.
func (cpu *CPUBackend) Any(x *tensor.RawTensor) bool {
	for _, v := range x.AsBool() {
		if v {
			return true
		}
	}
	return false
}
