package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations: the ops layer
// validates shapes and dtypes, resolves promotion, allocates outputs, and then
// drives one of these kernels. Backends are injected explicitly; there is no
// ambient global dispatch table.
//
// Implementations:
//   - CPU: Pure Go kernels with worker-pool parallelism
type Backend interface {
	// Element-wise comparison primitives (return Bool tensors, broadcasting).
	Eq(a, b *RawTensor) *RawTensor
	Ne(a, b *RawTensor) *RawTensor
	LowerEqual(a, b *RawTensor) *RawTensor

	// Element-wise numeric primitives (broadcasting, same dtype in and out).
	Minimum(a, b *RawTensor) *RawTensor
	Maximum(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor

	// Boolean operations (element-wise on bool tensors).
	Or(a, b *RawTensor) *RawTensor
	And(a, b *RawTensor) *RawTensor
	Not(x *RawTensor) *RawTensor

	// Complex decomposition: the real/imaginary parts as float tensors.
	// For real dtypes Real is an identity copy and Imag is all zeros.
	Real(x *RawTensor) *RawTensor
	Imag(x *RawTensor) *RawTensor

	// Scalar operations (element-wise with a scalar operand).
	AddScalar(x *RawTensor, scalar Scalar) *RawTensor
	MulScalar(x *RawTensor, scalar Scalar) *RawTensor

	// Buffer primitives.
	Fill(x *RawTensor, value Scalar)
	CopyInto(dst, src *RawTensor)
	Cast(x *RawTensor, dtype DataType) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor

	// Clamp kernels (scalar bounds; nil bound means absent).
	ClampScalarInto(out, x *RawTensor, lo, hi *Scalar)

	// Order-statistic reduction kernels. Outputs are pre-sized by the caller;
	// the kernel fills values and indices for every reduced slice.
	MaxDimInto(values, indices, x *RawTensor, dim int, keepDim bool)
	MinDimInto(values, indices, x *RawTensor, dim int, keepDim bool)
	ModeDimInto(values, indices, x *RawTensor, dim int, keepDim bool)

	// Brute-force membership kernel: out[i] = invert XOR (elements[i] in test).
	// out must be pre-filled with invert.
	IsInDefault(elements, testElements *RawTensor, invert bool, out *RawTensor)

	// Conditional selection: out[i] = cond[i] ? a[i] : b[i] (broadcasting).
	WhereInto(out, cond, a, b *RawTensor)

	// Array primitives consumed by the sort-based isin path.
	SortStable1D(x *RawTensor, descending bool) (values, order *RawTensor)
	Unique1D(x *RawTensor, returnInverse bool) (values, inverse *RawTensor)
	Cat1D(tensors []*RawTensor) *RawTensor
	Flatten(x *RawTensor) *RawTensor
	Slice1D(x *RawTensor, start, end int) *RawTensor
	IndexCopy1D(dst, index, src *RawTensor)
	IndexSelect1D(x, index *RawTensor) *RawTensor
	NonZero(x *RawTensor) []*RawTensor

	// Mask reductions.
	All(x *RawTensor) bool
	Any(x *RawTensor) bool

	// Metadata
	Name() string
	Device() Device
}
