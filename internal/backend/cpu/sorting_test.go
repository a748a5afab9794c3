package cpu

import (
	"math"
	"testing"

	"github.com/arc-ml/arc/internal/tensor"
)

func rawFloat64(t *testing.T, shape tensor.Shape, data []float64) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Float64, tensor.CPU)
	copy(raw.AsFloat64(), data)
	return raw
}

func rawInt64(t *testing.T, shape tensor.Shape, data []int64) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Int64, tensor.CPU)
	copy(raw.AsInt64(), data)
	return raw
}

func rawFloat32(t *testing.T, shape tensor.Shape, data []float32) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Float32, tensor.CPU)
	copy(raw.AsFloat32(), data)
	return raw
}

func rawBool(t *testing.T, shape tensor.Shape, data []bool) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Bool, tensor.CPU)
	copy(raw.AsBool(), data)
	return raw
}

func TestSortStable1D(t *testing.T) {
	backend := New()
	x := rawInt64(t, tensor.Shape{5}, []int64{3, 1, 2, 1, 0})

	values, order := backend.SortStable1D(x, false)

	wantValues := []int64{0, 1, 1, 2, 3}
	// Equal values keep input order: the 1 at position 1 sorts before the 1
	// at position 3.
	wantOrder := []int64{4, 1, 3, 2, 0}
	for i := range wantValues {
		if values.AsInt64()[i] != wantValues[i] {
			t.Errorf("values[%d] = %d, want %d", i, values.AsInt64()[i], wantValues[i])
		}
		if order.AsInt64()[i] != wantOrder[i] {
			t.Errorf("order[%d] = %d, want %d", i, order.AsInt64()[i], wantOrder[i])
		}
	}
}

func TestSortStable1DDescending(t *testing.T) {
	backend := New()
	x := rawFloat64(t, tensor.Shape{4}, []float64{1.5, 3, 0.5, 3})

	values, order := backend.SortStable1D(x, true)

	wantValues := []float64{3, 3, 1.5, 0.5}
	wantOrder := []int64{1, 3, 0, 2}
	for i := range wantValues {
		if values.AsFloat64()[i] != wantValues[i] {
			t.Errorf("values[%d] = %v, want %v", i, values.AsFloat64()[i], wantValues[i])
		}
		if order.AsInt64()[i] != wantOrder[i] {
			t.Errorf("order[%d] = %d, want %d", i, order.AsInt64()[i], wantOrder[i])
		}
	}
}

func TestUnique1D(t *testing.T) {
	backend := New()
	x := rawInt64(t, tensor.Shape{6}, []int64{2, 7, 2, 9, 7, 2})

	values, inverse := backend.Unique1D(x, true)

	wantValues := []int64{2, 7, 9}
	if values.NumElements() != len(wantValues) {
		t.Fatalf("unique count = %d, want %d", values.NumElements(), len(wantValues))
	}
	for i, want := range wantValues {
		if values.AsInt64()[i] != want {
			t.Errorf("values[%d] = %d, want %d", i, values.AsInt64()[i], want)
		}
	}

	wantInverse := []int64{0, 1, 0, 2, 1, 0}
	for i, want := range wantInverse {
		if inverse.AsInt64()[i] != want {
			t.Errorf("inverse[%d] = %d, want %d", i, inverse.AsInt64()[i], want)
		}
	}
}

func TestUnique1DNoInverse(t *testing.T) {
	backend := New()
	x := rawInt64(t, tensor.Shape{3}, []int64{1, 1, 1})

	values, inverse := backend.Unique1D(x, false)

	if values.NumElements() != 1 || values.AsInt64()[0] != 1 {
		t.Errorf("values = %v, want [1]", values.AsInt64())
	}
	if inverse != nil {
		t.Error("inverse should be nil when not requested")
	}
}

func TestUnique1DNaN(t *testing.T) {
	backend := New()
	nan := math.NaN()
	x := rawFloat64(t, tensor.Shape{4}, []float64{nan, 1, nan, 1})

	values, inverse := backend.Unique1D(x, true)

	// Each NaN is distinct from every other value, itself included.
	if values.NumElements() != 3 {
		t.Fatalf("unique count = %d, want 3 (two NaNs plus 1)", values.NumElements())
	}
	vals := values.AsFloat64()
	if !math.IsNaN(vals[0]) || vals[1] != 1 || !math.IsNaN(vals[2]) {
		t.Errorf("values = %v, want [NaN 1 NaN]", vals)
	}
	wantInverse := []int64{0, 1, 2, 1}
	for i, want := range wantInverse {
		if inverse.AsInt64()[i] != want {
			t.Errorf("inverse[%d] = %d, want %d", i, inverse.AsInt64()[i], want)
		}
	}
}

func TestCat1D(t *testing.T) {
	backend := New()
	a := rawInt64(t, tensor.Shape{2}, []int64{1, 2})
	b := rawInt64(t, tensor.Shape{0}, nil)
	c := rawInt64(t, tensor.Shape{3}, []int64{3, 4, 5})

	out := backend.Cat1D([]*tensor.RawTensor{a, b, c})

	want := []int64{1, 2, 3, 4, 5}
	if out.NumElements() != len(want) {
		t.Fatalf("cat length = %d, want %d", out.NumElements(), len(want))
	}
	for i, w := range want {
		if out.AsInt64()[i] != w {
			t.Errorf("cat[%d] = %d, want %d", i, out.AsInt64()[i], w)
		}
	}
}

func TestFlatten(t *testing.T) {
	backend := New()
	x := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	flat := backend.Flatten(x)

	if !flat.Shape().Equal(tensor.Shape{6}) {
		t.Errorf("flatten shape = %v, want [6]", flat.Shape())
	}
	if flat.AsFloat32()[3] != 4 {
		t.Errorf("flatten[3] = %v, want 4", flat.AsFloat32()[3])
	}
}

func TestIndexCopy1D(t *testing.T) {
	backend := New()
	dst := rawInt64(t, tensor.Shape{4}, []int64{0, 0, 0, 0})
	index := rawInt64(t, tensor.Shape{3}, []int64{2, 0, 3})
	src := rawInt64(t, tensor.Shape{3}, []int64{10, 20, 30})

	backend.IndexCopy1D(dst, index, src)

	want := []int64{20, 0, 10, 30}
	for i, w := range want {
		if dst.AsInt64()[i] != w {
			t.Errorf("dst[%d] = %d, want %d", i, dst.AsInt64()[i], w)
		}
	}
}

func TestIndexSelect1D(t *testing.T) {
	backend := New()
	x := rawFloat64(t, tensor.Shape{4}, []float64{10, 20, 30, 40})
	index := rawInt64(t, tensor.Shape{5}, []int64{3, 0, 0, 2, 1})

	out := backend.IndexSelect1D(x, index)

	want := []float64{40, 10, 10, 30, 20}
	for i, w := range want {
		if out.AsFloat64()[i] != w {
			t.Errorf("out[%d] = %v, want %v", i, out.AsFloat64()[i], w)
		}
	}
}

func TestNonZero(t *testing.T) {
	backend := New()
	x := rawFloat32(t, tensor.Shape{2, 3}, []float32{0, 1, 0, 2, 0, 3})

	coords := backend.NonZero(x)

	if len(coords) != 2 {
		t.Fatalf("NonZero returned %d coordinate tensors, want 2", len(coords))
	}
	wantRows := []int64{0, 1, 1}
	wantCols := []int64{1, 0, 2}
	if coords[0].NumElements() != len(wantRows) {
		t.Fatalf("NonZero count = %d, want %d", coords[0].NumElements(), len(wantRows))
	}
	for i := range wantRows {
		if coords[0].AsInt64()[i] != wantRows[i] {
			t.Errorf("rows[%d] = %d, want %d", i, coords[0].AsInt64()[i], wantRows[i])
		}
		if coords[1].AsInt64()[i] != wantCols[i] {
			t.Errorf("cols[%d] = %d, want %d", i, coords[1].AsInt64()[i], wantCols[i])
		}
	}
}

func TestNonZeroBool(t *testing.T) {
	backend := New()
	x := rawBool(t, tensor.Shape{4}, []bool{true, false, false, true})

	coords := backend.NonZero(x)

	if len(coords) != 1 {
		t.Fatalf("NonZero returned %d coordinate tensors, want 1", len(coords))
	}
	want := []int64{0, 3}
	for i, w := range want {
		if coords[0].AsInt64()[i] != w {
			t.Errorf("coords[%d] = %d, want %d", i, coords[0].AsInt64()[i], w)
		}
	}
}

func TestAllAny(t *testing.T) {
	backend := New()
	mixed := rawBool(t, tensor.Shape{3}, []bool{true, false, true})
	full := rawBool(t, tensor.Shape{2}, []bool{true, true})
	empty := rawBool(t, tensor.Shape{0}, nil)

	if backend.All(mixed) {
		t.Error("All(mixed) = true, want false")
	}
	if !backend.Any(mixed) {
		t.Error("Any(mixed) = false, want true")
	}
	if !backend.All(full) {
		t.Error("All(full) = false, want true")
	}
	if !backend.All(empty) {
		t.Error("All(empty) = false, want vacuous true")
	}
	if backend.Any(empty) {
		t.Error("Any(empty) = true, want false")
	}
}
