package tensor

// mockBackend satisfies Backend for tests that only exercise creation,
// metadata and storage access. Kernel methods panic: anything that needs real
// compute belongs in the cpu package tests or the external tensor_test
// package.
type mockBackend struct{}

// NewMockBackend creates a compute-free backend for storage-level tests.
func NewMockBackend() *mockBackend {
	return &mockBackend{}
}

func (m *mockBackend) Name() string   { return "mock" }
func (m *mockBackend) Device() Device { return CPU }

func (m *mockBackend) Eq(a, b *RawTensor) *RawTensor         { panic("not implemented in mock") }
func (m *mockBackend) Ne(a, b *RawTensor) *RawTensor         { panic("not implemented in mock") }
func (m *mockBackend) LowerEqual(a, b *RawTensor) *RawTensor { panic("not implemented in mock") }
func (m *mockBackend) Minimum(a, b *RawTensor) *RawTensor    { panic("not implemented in mock") }
func (m *mockBackend) Maximum(a, b *RawTensor) *RawTensor    { panic("not implemented in mock") }
func (m *mockBackend) Sub(a, b *RawTensor) *RawTensor        { panic("not implemented in mock") }
func (m *mockBackend) Abs(x *RawTensor) *RawTensor           { panic("not implemented in mock") }
func (m *mockBackend) Or(a, b *RawTensor) *RawTensor         { panic("not implemented in mock") }
func (m *mockBackend) And(a, b *RawTensor) *RawTensor        { panic("not implemented in mock") }
func (m *mockBackend) Not(x *RawTensor) *RawTensor           { panic("not implemented in mock") }
func (m *mockBackend) Real(x *RawTensor) *RawTensor          { panic("not implemented in mock") }
func (m *mockBackend) Imag(x *RawTensor) *RawTensor          { panic("not implemented in mock") }

func (m *mockBackend) AddScalar(x *RawTensor, scalar Scalar) *RawTensor {
	panic("not implemented in mock")
}

func (m *mockBackend) MulScalar(x *RawTensor, scalar Scalar) *RawTensor {
	panic("not implemented in mock")
}

func (m *mockBackend) Fill(x *RawTensor, value Scalar)          { panic("not implemented in mock") }
func (m *mockBackend) CopyInto(dst, src *RawTensor)             { panic("not implemented in mock") }
func (m *mockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	panic("not implemented in mock")
}
func (m *mockBackend) Expand(x *RawTensor, shape Shape) *RawTensor {
	panic("not implemented in mock")
}

func (m *mockBackend) ClampScalarInto(out, x *RawTensor, lo, hi *Scalar) {
	panic("not implemented in mock")
}

func (m *mockBackend) MaxDimInto(values, indices, x *RawTensor, dim int, keepDim bool) {
	panic("not implemented in mock")
}

func (m *mockBackend) MinDimInto(values, indices, x *RawTensor, dim int, keepDim bool) {
	panic("not implemented in mock")
}

func (m *mockBackend) ModeDimInto(values, indices, x *RawTensor, dim int, keepDim bool) {
	panic("not implemented in mock")
}

func (m *mockBackend) IsInDefault(elements, testElements *RawTensor, invert bool, out *RawTensor) {
	panic("not implemented in mock")
}

func (m *mockBackend) WhereInto(out, cond, a, b *RawTensor) { panic("not implemented in mock") }

func (m *mockBackend) SortStable1D(x *RawTensor, descending bool) (values, order *RawTensor) {
	panic("not implemented in mock")
}

func (m *mockBackend) Unique1D(x *RawTensor, returnInverse bool) (values, inverse *RawTensor) {
	panic("not implemented in mock")
}

func (m *mockBackend) Cat1D(tensors []*RawTensor) *RawTensor { panic("not implemented in mock") }
func (m *mockBackend) Flatten(x *RawTensor) *RawTensor       { panic("not implemented in mock") }

func (m *mockBackend) Slice1D(x *RawTensor, start, end int) *RawTensor {
	panic("not implemented in mock")
}

func (m *mockBackend) IndexCopy1D(dst, index, src *RawTensor) { panic("not implemented in mock") }

func (m *mockBackend) IndexSelect1D(x, index *RawTensor) *RawTensor {
	panic("not implemented in mock")
}

func (m *mockBackend) NonZero(x *RawTensor) []*RawTensor { panic("not implemented in mock") }
func (m *mockBackend) All(x *RawTensor) bool             { panic("not implemented in mock") }
func (m *mockBackend) Any(x *RawTensor) bool             { panic("not implemented in mock") }

// Compile-time check.
var _ Backend = (*mockBackend)(nil)
