package tensor_test

import (
	"math"
	"testing"

	"github.com/arc-ml/arc/internal/backend/cpu"
	"github.com/arc-ml/arc/internal/tensor"
)

func TestTensorEqual(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend)
	b, _ := tensor.FromSlice([]float32{1, 0, 3, 0}, tensor.Shape{4}, backend)

	mask := a.Equal(b)

	expected := []bool{true, false, true, false}
	for i, v := range mask.Data() {
		if v != expected[i] {
			t.Errorf("Equal[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestTensorNotEqualNaN(t *testing.T) {
	backend := cpu.New()
	nan := float32(math.NaN())
	a, _ := tensor.FromSlice([]float32{1, nan, 3}, tensor.Shape{3}, backend)

	// NaN != NaN, so self-inequality is exactly the NaN mask.
	mask := a.Ne(a)

	expected := []bool{false, true, false}
	for i, v := range mask.Data() {
		if v != expected[i] {
			t.Errorf("Ne[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestTensorLowerEqual(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]int64{1, 5, 3}, tensor.Shape{3}, backend)
	b, _ := tensor.FromSlice([]int64{2, 4, 3}, tensor.Shape{3}, backend)

	mask := a.Le(b)

	expected := []bool{true, false, true}
	for i, v := range mask.Data() {
		if v != expected[i] {
			t.Errorf("Le[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestTensorMinimumMaximum(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{1, 8, 3}, tensor.Shape{3}, backend)
	b, _ := tensor.FromSlice([]float64{2, 4, 3}, tensor.Shape{3}, backend)

	lo := a.Minimum(b).Data()
	hi := a.Maximum(b).Data()

	wantLo := []float64{1, 4, 3}
	wantHi := []float64{2, 8, 3}
	for i := range wantLo {
		if lo[i] != wantLo[i] {
			t.Errorf("Minimum[%d] = %v, want %v", i, lo[i], wantLo[i])
		}
		if hi[i] != wantHi[i] {
			t.Errorf("Maximum[%d] = %v, want %v", i, hi[i], wantHi[i])
		}
	}
}

func TestTensorMinimumNaNPropagates(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{math.NaN(), 2}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float64{1, math.NaN()}, tensor.Shape{2}, backend)

	got := a.Minimum(b).Data()
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("Minimum[%d] = %v, want NaN", i, v)
		}
	}
}

func TestTensorSubBroadcast(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float32{10, 20, 30, 40, 50, 60}, tensor.Shape{2, 3}, backend)
	b, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)

	c := a.Sub(b)

	expected := []float32{9, 18, 27, 39, 48, 57}
	for i, v := range c.Data() {
		if v != expected[i] {
			t.Errorf("Sub[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestTensorAbs(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]int32{-3, 0, 7}, tensor.Shape{3}, backend)

	got := a.Abs().Data()

	expected := []int32{3, 0, 7}
	for i, v := range got {
		if v != expected[i] {
			t.Errorf("Abs[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestTensorScalarOps(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)

	sum := a.AddScalar(0.5).Data()
	prod := a.MulScalar(2).Data()

	wantSum := []float64{1.5, 2.5, 3.5}
	wantProd := []float64{2, 4, 6}
	for i := range wantSum {
		if sum[i] != wantSum[i] {
			t.Errorf("AddScalar[%d] = %v, want %v", i, sum[i], wantSum[i])
		}
		if prod[i] != wantProd[i] {
			t.Errorf("MulScalar[%d] = %v, want %v", i, prod[i], wantProd[i])
		}
	}
}

func TestTensorExpand(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, backend)

	e := a.Expand(tensor.Shape{3, 2})

	expected := []float32{1, 1, 2, 2, 3, 3}
	for i, v := range e.Data() {
		if v != expected[i] {
			t.Errorf("Expand[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestBoolTensorLogic(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]bool{true, true, false, false}, tensor.Shape{4}, backend)
	b, _ := tensor.FromSlice([]bool{true, false, true, false}, tensor.Shape{4}, backend)

	or := a.Or(b).Data()
	and := a.And(b).Data()
	not := a.Not().Data()

	wantOr := []bool{true, true, true, false}
	wantAnd := []bool{true, false, false, false}
	wantNot := []bool{false, false, true, true}
	for i := range wantOr {
		if or[i] != wantOr[i] {
			t.Errorf("Or[%d] = %v, want %v", i, or[i], wantOr[i])
		}
		if and[i] != wantAnd[i] {
			t.Errorf("And[%d] = %v, want %v", i, and[i], wantAnd[i])
		}
		if not[i] != wantNot[i] {
			t.Errorf("Not[%d] = %v, want %v", i, not[i], wantNot[i])
		}
	}
}

func TestBoolTensorAllAny(t *testing.T) {
	backend := cpu.New()
	mixed, _ := tensor.FromSlice([]bool{true, false}, tensor.Shape{2}, backend)
	full, _ := tensor.FromSlice([]bool{true, true}, tensor.Shape{2}, backend)
	empty := tensor.Zeros[bool](tensor.Shape{0}, backend)

	if mixed.All() {
		t.Error("All() on mixed mask should be false")
	}
	if !mixed.Any() {
		t.Error("Any() on mixed mask should be true")
	}
	if !full.All() {
		t.Error("All() on all-true mask should be true")
	}
	if !empty.All() {
		t.Error("All() on empty mask should be vacuously true")
	}
	if empty.Any() {
		t.Error("Any() on empty mask should be false")
	}
}

func TestTensorConversions(t *testing.T) {
	backend := cpu.New()
	a, _ := tensor.FromSlice([]float32{1.5, -2.5, 0}, tensor.Shape{3}, backend)

	f64 := a.Float64().Data()
	i32 := a.Int32().Data()
	mask := a.Bool().Data()

	wantF64 := []float64{1.5, -2.5, 0}
	wantI32 := []int32{1, -2, 0} // truncation toward zero
	wantMask := []bool{true, true, false}
	for i := range wantF64 {
		if f64[i] != wantF64[i] {
			t.Errorf("Float64[%d] = %v, want %v", i, f64[i], wantF64[i])
		}
		if i32[i] != wantI32[i] {
			t.Errorf("Int32[%d] = %v, want %v", i, i32[i], wantI32[i])
		}
		if mask[i] != wantMask[i] {
			t.Errorf("Bool[%d] = %v, want %v", i, mask[i], wantMask[i])
		}
	}
}
